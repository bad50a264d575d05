// Package authorlist builds and serializes INSPIRE author-list documents
// (the collaborationauthorlist schema).
package authorlist

import (
	"encoding/xml"
)

// XML namespaces declared on the document root.
const (
	NSFoaf = "http://xmlns.com/foaf/0.1/"
	NSCal  = "http://inspirehep.net/info/HepNames/tools/authors_xml/"
)

// Fixed values of the output format.
const (
	CollaborationID = "c1"
	OrgDomain       = "http://"
	SourceORCID     = "ORCID"
)

// XML types for marshaling the author list. Element names carry the
// namespace prefixes declared on the root.

// Document is the collaborationauthorlist root element.
type Document struct {
	XMLName   xml.Name `xml:"collaborationauthorlist"`
	XmlnsFoaf string   `xml:"xmlns:foaf,attr"`
	XmlnsCal  string   `xml:"xmlns:cal,attr"`

	CreationDate         string          `xml:"cal:creationDate"`
	PublicationReference string          `xml:"cal:publicationReference"`
	Collaborations       *Collaborations `xml:"cal:collaborations,omitempty"`
	Organizations        Organizations   `xml:"cal:organizations"`
	Authors              Authors         `xml:"cal:authors"`
}

// Collaborations wraps the collaboration records.
type Collaborations struct {
	Items []Collaboration `xml:"cal:collaboration"`
}

// Collaboration is the group all listed authors belong to.
type Collaboration struct {
	ID               string `xml:"id,attr"`
	Name             string `xml:"foaf:name"`
	ExperimentNumber string `xml:"cal:experimentNumber"`
}

// Organizations wraps the organization records.
type Organizations struct {
	Items []Organization `xml:"foaf:Organization"`
}

// Organization is one unique affiliation.
type Organization struct {
	ID     string     `xml:"id,attr"`
	Domain string     `xml:"cal:orgDomain"`
	Name   string     `xml:"foaf:name"`
	Status *OrgStatus `xml:"cal:orgStatus,omitempty"`
}

// OrgStatus back-references the collaboration an organization belongs to.
type OrgStatus struct {
	CollaborationID string `xml:"collaborationid,attr"`
	Value           string `xml:",chardata"`
}

// Authors wraps the author records.
type Authors struct {
	Persons []Person `xml:"foaf:Person"`
}

// Person is one author. Its element order is decided by IDsFirst, so it
// marshals itself; see person.go.
type Person struct {
	GivenName    string
	FamilyName   string
	PaperName    string
	IDs          []AuthorID
	Affiliations []AuthorAffiliation
	// IDsFirst places cal:authorids before cal:authorAffiliations.
	IDsFirst bool
}

// AuthorID is an external researcher identifier.
type AuthorID struct {
	Source string `xml:"source,attr"`
	Value  string `xml:",chardata"`
}

// AuthorAffiliation references an organization by identifier.
type AuthorAffiliation struct {
	OrganizationID string `xml:"organizationid,attr"`
}

// OrganizationIDs returns the identifiers of the organization list in order.
func (d *Document) OrganizationIDs() []string {
	ids := make([]string, 0, len(d.Organizations.Items))
	for _, o := range d.Organizations.Items {
		ids = append(ids, o.ID)
	}
	return ids
}

// AffiliationIDs returns the organization identifiers referenced by the
// person, in order.
func (p *Person) AffiliationIDs() []string {
	ids := make([]string, 0, len(p.Affiliations))
	for _, a := range p.Affiliations {
		ids = append(ids, a.OrganizationID)
	}
	return ids
}
