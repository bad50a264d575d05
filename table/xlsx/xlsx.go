// Package xlsx provides a reader plugin for Office Open XML workbooks.
package xlsx

import (
	"github.com/lehigh-university-libraries/authorlist/table"
)

// Format implements the XLSX format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ table.Format = (*Format)(nil)
	_ table.Reader = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "xlsx"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Excel workbook (.xlsx, .xlsm)"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"xlsx", "xlsm"}
}

func init() {
	table.Register(&Format{})
}
