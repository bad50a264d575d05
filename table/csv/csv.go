// Package csv provides a reader plugin for comma- and tab-separated author
// sheets.
package csv

import (
	"github.com/lehigh-university-libraries/authorlist/table"
)

// Format implements the CSV format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ table.Format = (*Format)(nil)
	_ table.Reader = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "csv"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Comma-separated values (.csv, tab-separated .tsv)"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"csv", "tsv"}
}

func init() {
	table.Register(&Format{})
}
