// Package table defines the interface for spreadsheet reader plugins.
package table

import (
	"errors"

	"github.com/lehigh-university-libraries/authorlist/roster"
)

// ErrRead marks failures to open or parse the input spreadsheet.
var ErrRead = errors.New("reading spreadsheet")

// Format describes a spreadsheet format.
type Format interface {
	// Name returns the format identifier (e.g., "csv", "xlsx", "ods")
	Name() string

	// Description returns a human-readable format description
	Description() string

	// Extensions returns file extensions associated with this format
	Extensions() []string
}

// Reader is a format that can load a sheet as a grid of cells.
type Reader interface {
	Format

	// Read returns every row of the selected sheet, header included.
	// Rows may have different lengths; blank cells are absent fields.
	Read(path string, opts *ReadOptions) ([][]roster.Field, error)
}

// ReadOptions contains options for reading.
type ReadOptions struct {
	// Format forces a reader instead of detecting it from the extension
	Format string

	// Sheet names the worksheet to read (default: the first one)
	Sheet string

	// Header treats the first row as column titles and skips it
	Header bool
}

// NewReadOptions creates ReadOptions with defaults.
func NewReadOptions() *ReadOptions {
	return &ReadOptions{
		Header: true,
	}
}
