// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render lays out a meal plan as a styled, paginated PDF table.
//
// Layout goes through the Document interface, which accepts a title and a
// table and writes the finished document. PDFDocument implements it on
// gofpdf; tests substitute a recording fake.
package render

import "io"

// Document collects content and writes it out as a paginated document.
type Document interface {
	// AddTitle appends a heading.
	AddTitle(text string)
	// AddTable appends a table.
	AddTable(t Table)
	// Write lays out everything added so far and writes it to w.
	Write(w io.Writer) error
}

// Table is a cell matrix with per-column widths and style directives.
// Header and every row must have len(ColumnWidths) cells.
type Table struct {
	Header       []string
	Rows         [][]string
	ColumnWidths []float64
	Style        TableStyle
}

// Width returns the total width of all columns.
func (t Table) Width() float64 {
	var w float64
	for _, cw := range t.ColumnWidths {
		w += cw
	}
	return w
}

// PageSetup is the page size and margin, in points.
type PageSetup struct {
	Width, Height float64
	Margin        float64
}

// Letter is US Letter with half-inch margins on all sides.
var Letter = PageSetup{Width: 8.5 * Inch, Height: 11 * Inch, Margin: 0.5 * Inch}

// ContentWidth returns the width between the left and right margins.
func (p PageSetup) ContentWidth() float64 {
	return p.Width - 2*p.Margin
}
