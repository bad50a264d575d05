// Package roster holds the author rows read from a spreadsheet and the
// affiliation index derived from them.
package roster

import "strings"

// Column positions of the author spreadsheet.
const (
	ColGivenName = iota
	ColAbbrevGivenName
	ColFamilyName
	ColReserved
	ColExternalID
	ColAffiliationA
	ColAffiliationB
	ColAffiliationC
	ColSortKey

	// NumColumns is the width of a fully populated row.
	NumColumns
)

// AffiliationSlots is the number of affiliation columns per row.
const AffiliationSlots = ColAffiliationC - ColAffiliationA + 1

// Field is an optional text cell.
type Field struct {
	Value string
	Valid bool
}

// Text returns a present field holding s, or an absent field when s is blank.
func Text(s string) Field {
	s = strings.TrimSpace(s)
	if s == "" {
		return Field{}
	}
	return Field{Value: s, Valid: true}
}

// String returns the value, or "" when absent.
func (f Field) String() string {
	if !f.Valid {
		return ""
	}
	return f.Value
}

// Row is one author line of the spreadsheet.
type Row struct {
	GivenName       Field
	AbbrevGivenName Field
	FamilyName      Field
	Reserved        Field
	// ExternalID is a researcher identifier such as an ORCID iD.
	ExternalID   Field
	Affiliations [AffiliationSlots]Field
	// SortKey orders rows before processing; it is not emitted.
	SortKey Field
}

// RowFromCells maps positional cells onto a Row. Missing trailing cells are
// absent; cells beyond NumColumns are ignored.
func RowFromCells(cells []Field) Row {
	at := func(i int) Field {
		if i < len(cells) {
			return cells[i]
		}
		return Field{}
	}

	r := Row{
		GivenName:       at(ColGivenName),
		AbbrevGivenName: at(ColAbbrevGivenName),
		FamilyName:      at(ColFamilyName),
		Reserved:        at(ColReserved),
		ExternalID:      at(ColExternalID),
		SortKey:         at(ColSortKey),
	}
	for i := range r.Affiliations {
		r.Affiliations[i] = at(ColAffiliationA + i)
	}
	return r
}

// AffiliationNames returns the present affiliation strings in slot order.
func (r Row) AffiliationNames() []string {
	var names []string
	for _, a := range r.Affiliations {
		if a.Valid {
			names = append(names, a.Value)
		}
	}
	return names
}

// IsBlank reports whether no field of the row is present.
func (r Row) IsBlank() bool {
	if r.GivenName.Valid || r.AbbrevGivenName.Valid || r.FamilyName.Valid ||
		r.Reserved.Valid || r.ExternalID.Valid || r.SortKey.Valid {
		return false
	}
	return len(r.AffiliationNames()) == 0
}
