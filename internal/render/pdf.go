// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"io"
	"math"

	"github.com/jung-kurt/gofpdf"
)

// PDFDocument is a Document backed by gofpdf. Content is recorded by
// AddTitle and AddTable and laid out in one pass by Write, so a single
// PDFDocument can be written more than once.
type PDFDocument struct {
	page       PageSetup
	titleStyle TitleStyle
	compress   bool
	meta       string
	flowables  []flowable
}

// PDFOption configures a PDFDocument.
type PDFOption func(*PDFDocument)

// WithPage overrides the page setup (default Letter).
func WithPage(p PageSetup) PDFOption {
	return func(d *PDFDocument) { d.page = p }
}

// WithTitleStyle overrides the title style (default DefaultTitleStyle).
func WithTitleStyle(s TitleStyle) PDFOption {
	return func(d *PDFDocument) { d.titleStyle = s }
}

// WithCompression enables or disables stream compression.
func WithCompression(on bool) PDFOption {
	return func(d *PDFDocument) { d.compress = on }
}

// NewPDFDocument returns an empty Letter-sized document.
func NewPDFDocument(opts ...PDFOption) *PDFDocument {
	d := &PDFDocument{
		page:       Letter,
		titleStyle: DefaultTitleStyle,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// AddTitle appends a heading. The first title also becomes the PDF's
// document title metadata.
func (d *PDFDocument) AddTitle(text string) {
	if d.meta == "" {
		d.meta = text
	}
	d.flowables = append(d.flowables, titleFlowable{text: text, style: d.titleStyle})
}

// AddTable appends a table.
func (d *PDFDocument) AddTable(t Table) {
	d.flowables = append(d.flowables, tableFlowable{t})
}

// Write lays out the recorded content and writes the PDF to w.
func (d *PDFDocument) Write(w io.Writer) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: d.page.Width, Ht: d.page.Height},
	})
	pdf.SetMargins(d.page.Margin, d.page.Margin, d.page.Margin)
	pdf.SetAutoPageBreak(false, d.page.Margin)
	pdf.SetCellMargin(0)
	pdf.SetCompression(d.compress)
	pdf.SetCreator("mealplan-pdf", false)
	if d.meta != "" {
		pdf.SetTitle(d.meta, true)
	}
	pdf.AddPage()

	l := &layout{
		pdf:  pdf,
		tr:   pdf.UnicodeTranslatorFromDescriptor(""),
		page: d.page,
		y:    d.page.Margin,
	}
	for _, f := range d.flowables {
		f.draw(l)
		if err := pdf.Error(); err != nil {
			return fmt.Errorf("laying out document: %w", err)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

// flowable is a block of content that draws itself at the layout cursor,
// starting new pages as needed.
type flowable interface {
	draw(l *layout)
}

// layout tracks the vertical cursor while flowables are drawn.
type layout struct {
	pdf  *gofpdf.Fpdf
	tr   func(string) string
	page PageSetup
	y    float64
}

func (l *layout) top() float64    { return l.page.Margin }
func (l *layout) bottom() float64 { return l.page.Height - l.page.Margin }

// atTop reports whether nothing has been drawn on the current page.
func (l *layout) atTop() bool { return l.y <= l.top() }

func (l *layout) newPage() {
	l.pdf.AddPage()
	l.y = l.top()
}

func (l *layout) setFont(f Font) {
	l.pdf.SetFont(f.Family, f.Style, f.Size)
}

// wrap splits text into lines no wider than width in the current font.
// Explicit newlines always break.
func (l *layout) wrap(text string, width float64) []string {
	if text == "" {
		return nil
	}
	raw := l.pdf.SplitLines([]byte(l.tr(text)), width)
	lines := make([]string, len(raw))
	for i, b := range raw {
		lines[i] = string(b)
	}
	return lines
}

type titleFlowable struct {
	text  string
	style TitleStyle
}

func (t titleFlowable) draw(l *layout) {
	s := t.style
	l.setFont(s.Font)
	l.pdf.SetTextColor(s.Color.R, s.Color.G, s.Color.B)

	width := l.page.ContentWidth()
	for _, line := range l.wrap(t.text, width) {
		if l.y+s.Font.Leading > l.bottom() && !l.atTop() {
			l.newPage()
		}
		l.pdf.SetXY(l.page.Margin, l.y)
		l.pdf.CellFormat(width, s.Font.Leading, line, "", 0, string(s.Align), false, 0, "")
		l.y += s.Font.Leading
	}
	l.y += s.SpaceAfter
}

type tableFlowable struct {
	t Table
}

// cellLines holds the wrapped lines of each cell in a row.
type cellLines [][]string

// maxLines returns the line count of the tallest cell, at least one.
func (c cellLines) maxLines() int {
	n := 1
	for _, lines := range c {
		if len(lines) > n {
			n = len(lines)
		}
	}
	return n
}

// split returns the first n lines of every cell and the remainder.
func (c cellLines) split(n int) (head, rest cellLines) {
	head = make(cellLines, len(c))
	rest = make(cellLines, len(c))
	for i, lines := range c {
		if len(lines) <= n {
			head[i] = lines
			continue
		}
		head[i] = lines[:n]
		rest[i] = lines[n:]
	}
	return head, rest
}

func (tf tableFlowable) draw(l *layout) {
	t := tf.t
	s := t.Style
	x0 := l.page.Margin + math.Max(0, (l.page.ContentWidth()-t.Width())/2)

	header := tf.wrapRow(l, t.Header, s.HeaderFont)
	headerHeight := rowHeight(header.maxLines(), s.HeaderFont, s.Padding)
	pageRoom := l.bottom() - l.top()
	if s.RepeatHeader {
		pageRoom -= headerHeight
	}

	// bodyTop is where the first body row of the current page starts.
	var bodyTop float64
	// The header rule is stroked after the page's body rows so their fills
	// and grid lie beneath it.
	rulePending := false
	drawRule := func() {
		if !rulePending {
			return
		}
		rulePending = false
		c := s.HeaderRuleColor
		l.pdf.SetDrawColor(c.R, c.G, c.B)
		l.pdf.SetLineWidth(s.HeaderRuleWidth)
		l.pdf.Line(x0, bodyTop, x0+t.Width(), bodyTop)
	}
	drawHeader := func() {
		if l.y+headerHeight > l.bottom() && !l.atTop() {
			l.newPage()
		}
		tf.drawRow(l, x0, header, s.HeaderFont, s.HeaderColor, s.HeaderAlign, &s.HeaderFill)
		bodyTop = l.y
		rulePending = s.HeaderRuleWidth > 0
	}
	continuePage := func() {
		drawRule()
		l.newPage()
		bodyTop = l.y
		if s.RepeatHeader {
			drawHeader()
		}
	}

	drawHeader()
	for i, cells := range t.Rows {
		var fill *Color
		if len(s.RowFills) > 0 {
			fill = &s.RowFills[i%len(s.RowFills)]
		}
		row := tf.wrapRow(l, cells, s.BodyFont)

		for {
			fit := int((l.bottom() - l.y - 2*s.Padding + 1e-6) / s.BodyFont.Leading)
			if fit >= row.maxLines() {
				tf.drawRow(l, x0, row, s.BodyFont, s.BodyColor, s.BodyAlign, fill)
				break
			}
			fresh := l.y <= bodyTop
			// A row that fits on a page moves whole; taller rows split at
			// line granularity.
			if !fresh && rowHeight(row.maxLines(), s.BodyFont, s.Padding) <= pageRoom {
				continuePage()
				continue
			}
			if fit < 1 {
				if !fresh {
					continuePage()
					continue
				}
				fit = 1
			}
			head, rest := row.split(fit)
			tf.drawRow(l, x0, head, s.BodyFont, s.BodyColor, s.BodyAlign, fill)
			row = rest
			continuePage()
		}
	}
	drawRule()
}

// rowHeight returns the height of a row holding n lines.
func rowHeight(n int, f Font, pad float64) float64 {
	return float64(n)*f.Leading + 2*pad
}

func (tf tableFlowable) wrapRow(l *layout, cells []string, f Font) cellLines {
	l.setFont(f)
	row := make(cellLines, len(tf.t.ColumnWidths))
	for i, w := range tf.t.ColumnWidths {
		if i < len(cells) {
			row[i] = l.wrap(cells[i], w-2*tf.t.Style.Padding)
		}
	}
	return row
}

// drawRow draws one row at the cursor and advances it by the row height.
func (tf tableFlowable) drawRow(l *layout, x0 float64, row cellLines, f Font, color Color, align Align, fill *Color) {
	s := tf.t.Style
	h := rowHeight(row.maxLines(), f, s.Padding)
	pdf := l.pdf

	if fill != nil {
		pdf.SetFillColor(fill.R, fill.G, fill.B)
		x := x0
		for _, w := range tf.t.ColumnWidths {
			pdf.Rect(x, l.y, w, h, "F")
			x += w
		}
	}

	l.setFont(f)
	pdf.SetTextColor(color.R, color.G, color.B)
	x := x0
	for i, w := range tf.t.ColumnWidths {
		for k, line := range row[i] {
			pdf.SetXY(x+s.Padding, l.y+s.Padding+float64(k)*f.Leading)
			pdf.CellFormat(w-2*s.Padding, f.Leading, line, "", 0, string(align), false, 0, "")
		}
		x += w
	}

	if s.GridWidth > 0 {
		pdf.SetDrawColor(s.GridColor.R, s.GridColor.G, s.GridColor.B)
		pdf.SetLineWidth(s.GridWidth)
		x = x0
		for _, w := range tf.t.ColumnWidths {
			pdf.Rect(x, l.y, w, h, "D")
			x += w
		}
	}

	l.y += h
}
