package authorlist

import (
	"errors"
	"fmt"
)

// Check verifies the cross references of a document: organization
// identifiers and names are unique, every author affiliation points at an
// organization, and every collaboration back-reference resolves.
func (d *Document) Check() error {
	var errs []error

	collabs := map[string]bool{}
	if d.Collaborations != nil {
		for _, c := range d.Collaborations.Items {
			collabs[c.ID] = true
		}
	}

	orgs := map[string]bool{}
	names := map[string]string{}
	for _, o := range d.Organizations.Items {
		if orgs[o.ID] {
			errs = append(errs, fmt.Errorf("organization id %s is not unique", o.ID))
		}
		orgs[o.ID] = true

		if prev, ok := names[o.Name]; ok {
			errs = append(errs, fmt.Errorf("organizations %s and %s share the name %q", prev, o.ID, o.Name))
		} else {
			names[o.Name] = o.ID
		}

		if o.Status != nil && !collabs[o.Status.CollaborationID] {
			errs = append(errs, fmt.Errorf("organization %s references unknown collaboration %s", o.ID, o.Status.CollaborationID))
		}
	}

	for i, p := range d.Authors.Persons {
		for _, id := range p.AffiliationIDs() {
			if !orgs[id] {
				errs = append(errs, fmt.Errorf("author %d (%s %s) references unknown organization %s", i+1, p.GivenName, p.FamilyName, id))
			}
		}
	}

	return errors.Join(errs...)
}
