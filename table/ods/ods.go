// Package ods provides a reader plugin for OpenDocument spreadsheets.
package ods

import (
	"github.com/lehigh-university-libraries/authorlist/table"
)

// XML namespaces used in content.xml.
const (
	nsOffice = "urn:oasis:names:tc:opendocument:xmlns:office:1.0"
	nsTable  = "urn:oasis:names:tc:opendocument:xmlns:table:1.0"
	nsText   = "urn:oasis:names:tc:opendocument:xmlns:text:1.0"
)

// Format implements the ODS format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ table.Format = (*Format)(nil)
	_ table.Reader = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "ods"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "OpenDocument spreadsheet (.ods)"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"ods"}
}

func init() {
	table.Register(&Format{})
}
