package ods

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/lehigh-university-libraries/authorlist/roster"
	"github.com/lehigh-university-libraries/authorlist/table"
)

// Read loads the selected table (the first one by default) from the
// content.xml part of the archive.
func (f *Format) Read(path string, opts *table.ReadOptions) (grid [][]roster.Field, err error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening ODS archive: %w", err)
	}
	defer func() {
		if cerr := zr.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing ODS archive: %w", cerr)
		}
	}()

	content, err := zr.Open("content.xml")
	if err != nil {
		return nil, fmt.Errorf("ODS archive has no content.xml: %w", err)
	}
	defer content.Close()

	sheet := ""
	if opts != nil {
		sheet = opts.Sheet
	}
	return ReadContent(content, sheet)
}

// ReadContent parses an ODS content.xml stream. Repeated rows and columns are
// expanded, except trailing empty ones which spreadsheet applications emit
// up to the sheet limits.
func ReadContent(r io.Reader, sheet string) ([][]roster.Field, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parsing content.xml: %w", err)
	}
	if doc.Root() == nil {
		return nil, errors.New("parsing content.xml: no root element")
	}

	tbl := findTable(doc.Root(), sheet)
	if tbl == nil {
		if sheet != "" {
			return nil, fmt.Errorf("sheet %q not found", sheet)
		}
		return nil, fmt.Errorf("spreadsheet has no tables")
	}

	var g gridBuilder
	g.rows(tbl)
	return g.grid, nil
}

func is(el *etree.Element, space, local string) bool {
	return el.Tag == local && el.NamespaceURI() == space
}

func attr(el *etree.Element, space, local string) string {
	for i := range el.Attr {
		a := &el.Attr[i]
		if a.Key == local && a.NamespaceURI() == space {
			return a.Value
		}
	}
	return ""
}

// findTable returns the first table:table in document order, or the one
// named sheet.
func findTable(el *etree.Element, sheet string) *etree.Element {
	for _, child := range el.ChildElements() {
		if is(child, nsTable, "table") {
			if sheet == "" || attr(child, nsTable, "name") == sheet {
				return child
			}
			continue
		}
		if found := findTable(child, sheet); found != nil {
			return found
		}
	}
	return nil
}

type gridBuilder struct {
	grid [][]roster.Field
	// pendingRows are empty rows not yet known to be followed by data.
	pendingRows int
}

// rows walks table rows, descending into header-rows, row groups and the
// like.
func (g *gridBuilder) rows(parent *etree.Element) {
	for _, child := range parent.ChildElements() {
		if child.NamespaceURI() != nsTable {
			continue
		}
		switch child.Tag {
		case "table-row":
			g.row(child)
		case "table-header-rows", "table-rows", "table-row-group":
			g.rows(child)
		}
	}
}

func (g *gridBuilder) row(el *etree.Element) {
	var (
		row []roster.Field
		// pendingCells are empty cells not yet known to be followed by data.
		pendingCells int
	)

	for _, cell := range el.ChildElements() {
		if !is(cell, nsTable, "table-cell") && !is(cell, nsTable, "covered-table-cell") {
			continue
		}
		n := repeat(attr(cell, nsTable, "number-columns-repeated"))
		field := roster.Text(cellValue(cell))
		if !field.Valid {
			pendingCells += n
			continue
		}
		for i := 0; i < pendingCells; i++ {
			row = append(row, roster.Field{})
		}
		pendingCells = 0
		for i := 0; i < n; i++ {
			row = append(row, field)
		}
	}

	n := repeat(attr(el, nsTable, "number-rows-repeated"))
	if len(row) == 0 {
		g.pendingRows += n
		return
	}
	for i := 0; i < g.pendingRows; i++ {
		g.grid = append(g.grid, nil)
	}
	g.pendingRows = 0
	for i := 0; i < n; i++ {
		cp := make([]roster.Field, len(row))
		copy(cp, row)
		g.grid = append(g.grid, cp)
	}
}

// cellValue prefers office:value for numeric cells so that sort keys are
// not affected by display formatting.
func cellValue(cell *etree.Element) string {
	switch attr(cell, nsOffice, "value-type") {
	case "float", "percentage", "currency":
		if v := attr(cell, nsOffice, "value"); v != "" {
			return v
		}
	}

	var paragraphs []string
	for _, child := range cell.ChildElements() {
		if is(child, nsText, "p") {
			var b strings.Builder
			paragraphText(child, &b)
			paragraphs = append(paragraphs, b.String())
		}
	}
	return strings.Join(paragraphs, "\n")
}

func paragraphText(el *etree.Element, b *strings.Builder) {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			if t.NamespaceURI() != nsText {
				continue
			}
			switch t.Tag {
			case "s":
				b.WriteString(strings.Repeat(" ", repeat(attr(t, nsText, "c"))))
			case "tab":
				b.WriteByte('\t')
			case "line-break":
				b.WriteByte('\n')
			case "note", "annotation":
			default:
				// span, a and other inline markup
				paragraphText(t, b)
			}
		}
	}
}

func repeat(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
