package authorlist

import (
	"encoding/xml"
)

type authorIDsXML struct {
	IDs []AuthorID `xml:"cal:authorid"`
}

type authorAffiliationsXML struct {
	Items []AuthorAffiliation `xml:"cal:authorAffiliation"`
}

// MarshalXML writes the person's children, placing the identifier block
// before or after the affiliations.
func (p Person) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if err := e.EncodeElement(p.GivenName, prefixed("foaf:givenName")); err != nil {
		return err
	}
	if err := e.EncodeElement(p.FamilyName, prefixed("foaf:familyName")); err != nil {
		return err
	}
	if p.PaperName != "" {
		if err := e.EncodeElement(p.PaperName, prefixed("cal:authorNamePaper")); err != nil {
			return err
		}
	}

	writeIDs := func() error {
		if len(p.IDs) == 0 {
			return nil
		}
		return e.EncodeElement(authorIDsXML{IDs: p.IDs}, prefixed("cal:authorids"))
	}
	writeAffiliations := func() error {
		return e.EncodeElement(authorAffiliationsXML{Items: p.Affiliations}, prefixed("cal:authorAffiliations"))
	}

	order := []func() error{writeAffiliations, writeIDs}
	if p.IDsFirst {
		order = []func() error{writeIDs, writeAffiliations}
	}
	for _, write := range order {
		if err := write(); err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

func prefixed(name string) xml.StartElement {
	return xml.StartElement{Name: xml.Name{Local: name}}
}
