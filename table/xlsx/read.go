package xlsx

import (
	"fmt"
	"slices"

	"github.com/xuri/excelize/v2"

	"github.com/lehigh-university-libraries/authorlist/roster"
	"github.com/lehigh-university-libraries/authorlist/table"
)

// Read loads the selected worksheet (the first one by default).
func (f *Format) Read(path string, opts *table.ReadOptions) (grid [][]roster.Field, err error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer func() {
		if cerr := wb.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing workbook: %w", cerr)
		}
	}()

	sheet, err := pickSheet(wb.GetSheetList(), opts)
	if err != nil {
		return nil, err
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	grid = make([][]roster.Field, 0, len(rows))
	for _, row := range rows {
		cells := make([]roster.Field, len(row))
		for i, value := range row {
			cells[i] = roster.Text(value)
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

func pickSheet(sheets []string, opts *table.ReadOptions) (string, error) {
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}
	if opts == nil || opts.Sheet == "" {
		return sheets[0], nil
	}
	if !slices.Contains(sheets, opts.Sheet) {
		return "", fmt.Errorf("sheet %q not found (have %v)", opts.Sheet, sheets)
	}
	return opts.Sheet, nil
}
