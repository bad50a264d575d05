package authorlist

import (
	"time"

	"github.com/lehigh-university-libraries/authorlist/helpers"
	"github.com/lehigh-university-libraries/authorlist/profile"
	"github.com/lehigh-university-libraries/authorlist/roster"
)

// BuildOptions configures Build.
type BuildOptions struct {
	// Profile selects the document variant (default: the minimal profile)
	Profile *profile.Profile

	// Created is rendered as cal:creationDate
	Created time.Time

	// PublicationReference fills cal:publicationReference; absent renders empty
	PublicationReference roster.Field
}

func (o *BuildOptions) resolvedProfile() *profile.Profile {
	if o.Profile != nil {
		return o.Profile
	}
	p := &profile.Profile{Name: profile.Default}
	p.ApplyDefaults()
	return p
}

// Generate indexes the affiliations of rows with the profile's ordering and
// builds the document.
func Generate(rows []roster.Row, opts BuildOptions) (*Document, *roster.Index) {
	idx := roster.BuildIndex(rows, opts.resolvedProfile().IndexOptions())
	return Build(rows, idx, opts), idx
}

// Build assembles the author-list document. idx must have been built from
// the same rows.
func Build(rows []roster.Row, idx *roster.Index, opts BuildOptions) *Document {
	p := opts.resolvedProfile()

	doc := &Document{
		XmlnsFoaf:            NSFoaf,
		XmlnsCal:             NSCal,
		CreationDate:         opts.Created.Format(p.TimestampLayout()),
		PublicationReference: xmlText("publication reference", opts.PublicationReference.String()),
	}

	if p.IncludeCollaboration {
		doc.Collaborations = &Collaborations{
			Items: []Collaboration{{
				ID:               CollaborationID,
				Name:             xmlText("collaboration name", p.Collaboration.Name),
				ExperimentNumber: xmlText("experiment number", p.Collaboration.Experiment),
			}},
		}
	}

	for i, name := range idx.Entries() {
		org := Organization{
			ID:     roster.FormatID(i + 1),
			Domain: OrgDomain,
			Name:   xmlText("affiliation", name),
		}
		if p.IncludeCollaboration {
			org.Status = &OrgStatus{CollaborationID: CollaborationID}
		}
		doc.Organizations.Items = append(doc.Organizations.Items, org)
	}

	doc.Authors.Persons = make([]Person, 0, len(rows))
	for _, row := range rows {
		doc.Authors.Persons = append(doc.Authors.Persons, buildPerson(row, idx, p))
	}

	return doc
}

func buildPerson(row roster.Row, idx *roster.Index, p *profile.Profile) Person {
	person := Person{
		GivenName:  xmlText("given name", row.GivenName.String()),
		FamilyName: xmlText("family name", row.FamilyName.String()),
	}

	if p.PaperName == profile.PaperNameAbbreviatedPlusFamily {
		person.PaperName = xmlText("paper name", helpers.PaperName(row.AbbrevGivenName.String(), row.GivenName.String(), row.FamilyName.String()))
	}

	if row.ExternalID.Valid {
		person.IDs = []AuthorID{{Source: SourceORCID, Value: xmlText("author id", helpers.NormalizeORCID(row.ExternalID.Value))}}
		person.IDsFirst = p.IdentifierPlacement == profile.PlaceBeforeAffiliations
	}

	for _, id := range idx.AuthorIDs(row) {
		person.Affiliations = append(person.Affiliations, AuthorAffiliation{OrganizationID: id})
	}

	return person
}
