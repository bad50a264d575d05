package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lehigh-university-libraries/authorlist/roster"
	"github.com/lehigh-university-libraries/authorlist/table"
)

// Read parses a CSV or TSV file into cells. The delimiter follows the file
// extension.
func (f *Format) Read(path string, _ *table.ReadOptions) (grid [][]roster.Field, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		reader.Comma = '\t'
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}

	grid = make([][]roster.Field, 0, len(records))
	for _, record := range records {
		cells := make([]roster.Field, len(record))
		for i, value := range record {
			cells[i] = roster.Text(value)
		}
		grid = append(grid, cells)
	}
	return grid, nil
}
