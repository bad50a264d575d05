package table

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strconv"

	"github.com/lehigh-university-libraries/authorlist/roster"
)

// Load reads the author rows of a spreadsheet using the default registry.
func Load(path string, opts *ReadOptions) ([]roster.Row, error) {
	return DefaultRegistry.Load(path, opts)
}

// Load reads the author rows of a spreadsheet. The header row and blank rows
// are dropped. When any row carries a sort key the rows are reordered by it.
// All errors wrap ErrRead.
func (r *Registry) Load(path string, opts *ReadOptions) ([]roster.Row, error) {
	if opts == nil {
		opts = NewReadOptions()
	}

	var (
		reader Reader
		err    error
	)
	if opts.Format != "" {
		reader, err = r.GetReader(opts.Format)
	} else {
		reader, err = r.DetectFormat(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	grid, err := reader.Read(path, opts)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}

	// readers differ on whether leading empty rows are reported
	for len(grid) > 0 && roster.RowFromCells(grid[0]).IsBlank() {
		grid = grid[1:]
	}
	if opts.Header && len(grid) > 0 {
		grid = grid[1:]
	}

	rows := make([]roster.Row, 0, len(grid))
	for _, cells := range grid {
		row := roster.RowFromCells(cells)
		if row.IsBlank() {
			continue
		}
		rows = append(rows, row)
	}

	if SortByKey(rows) {
		slog.Debug("rows reordered by sort key", "rows", len(rows))
	}
	slog.Debug("spreadsheet loaded", "path", path, "format", reader.Name(), "rows", len(rows))

	return rows, nil
}

// SortByKey stably reorders rows by ascending sort key and reports whether
// any row had one. Numeric keys sort before text keys; numbers compare by
// value and text by code point. Rows without a key keep their order after
// keyed rows.
func SortByKey(rows []roster.Row) bool {
	keyed := false
	for _, row := range rows {
		if row.SortKey.Valid {
			keyed = true
			break
		}
	}
	if !keyed {
		return false
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].SortKey, rows[j].SortKey
		switch {
		case !a.Valid:
			return false
		case !b.Valid:
			return true
		}
		return keyLess(a.Value, b.Value)
	})
	return true
}

// keyLess is a strict weak order over sort keys.
func keyLess(a, b string) bool {
	fa, numA := numericKey(a)
	fb, numB := numericKey(b)
	switch {
	case numA && numB:
		return fa < fb
	case numA != numB:
		return numA
	}
	return a < b
}

// numericKey parses finite numbers; NaN and infinities count as text.
func numericKey(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
