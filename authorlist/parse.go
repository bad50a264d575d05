package authorlist

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/beevik/etree"
)

// Parse reads an author-list document. Elements are matched by namespace
// URI, so any prefixes bound to the foaf and cal namespaces are accepted.
func Parse(r io.Reader) (*Document, error) {
	tree := etree.NewDocument()
	if _, err := tree.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parsing author list XML: %w", err)
	}

	root := tree.Root()
	if root == nil {
		return nil, errors.New("parsing author list XML: document has no root element")
	}
	if root.Tag != "collaborationauthorlist" {
		return nil, fmt.Errorf("parsing author list XML: unexpected root element %q", root.Tag)
	}

	doc := &Document{
		XmlnsFoaf: NSFoaf,
		XmlnsCal:  NSCal,
	}

	for _, child := range root.ChildElements() {
		switch name(child) {
		case cal("creationDate"):
			doc.CreationDate = child.Text()
		case cal("publicationReference"):
			doc.PublicationReference = child.Text()
		case cal("collaborations"):
			doc.Collaborations = &Collaborations{}
			for _, el := range children(child, cal("collaboration")) {
				doc.Collaborations.Items = append(doc.Collaborations.Items, parseCollaboration(el))
			}
		case cal("organizations"):
			for _, el := range children(child, foaf("Organization")) {
				doc.Organizations.Items = append(doc.Organizations.Items, parseOrganization(el))
			}
		case cal("authors"):
			for _, el := range children(child, foaf("Person")) {
				doc.Authors.Persons = append(doc.Authors.Persons, parsePerson(el))
			}
		default:
			slog.Debug("ignoring unexpected element", "parent", root.Tag, "tag", child.FullTag())
		}
	}

	return doc, nil
}

type qname struct {
	space, local string
}

func name(el *etree.Element) qname {
	return qname{space: el.NamespaceURI(), local: el.Tag}
}

func cal(local string) qname  { return qname{space: NSCal, local: local} }
func foaf(local string) qname { return qname{space: NSFoaf, local: local} }

func children(el *etree.Element, want qname) []*etree.Element {
	var out []*etree.Element
	for _, child := range el.ChildElements() {
		if name(child) == want {
			out = append(out, child)
		}
	}
	return out
}

func parseCollaboration(el *etree.Element) Collaboration {
	c := Collaboration{ID: el.SelectAttrValue("id", "")}
	for _, child := range el.ChildElements() {
		switch name(child) {
		case foaf("name"):
			c.Name = child.Text()
		case cal("experimentNumber"):
			c.ExperimentNumber = child.Text()
		}
	}
	return c
}

func parseOrganization(el *etree.Element) Organization {
	o := Organization{ID: el.SelectAttrValue("id", "")}
	for _, child := range el.ChildElements() {
		switch name(child) {
		case cal("orgDomain"):
			o.Domain = child.Text()
		case foaf("name"):
			o.Name = child.Text()
		case cal("orgStatus"):
			o.Status = &OrgStatus{
				CollaborationID: child.SelectAttrValue("collaborationid", ""),
				Value:           child.Text(),
			}
		}
	}
	return o
}

// parsePerson records whether cal:authorids came before
// cal:authorAffiliations so that re-serializing keeps the element order.
func parsePerson(el *etree.Element) Person {
	var p Person
	seenAffiliations := false

	for _, child := range el.ChildElements() {
		switch name(child) {
		case foaf("givenName"):
			p.GivenName = child.Text()
		case foaf("familyName"):
			p.FamilyName = child.Text()
		case cal("authorNamePaper"):
			p.PaperName = child.Text()
		case cal("authorids"):
			for _, id := range children(child, cal("authorid")) {
				p.IDs = append(p.IDs, AuthorID{
					Source: id.SelectAttrValue("source", ""),
					Value:  id.Text(),
				})
			}
			p.IDsFirst = len(p.IDs) > 0 && !seenAffiliations
		case cal("authorAffiliations"):
			for _, aff := range children(child, cal("authorAffiliation")) {
				p.Affiliations = append(p.Affiliations, AuthorAffiliation{
					OrganizationID: aff.SelectAttrValue("organizationid", ""),
				})
			}
			seenAffiliations = true
		}
	}

	return p
}
