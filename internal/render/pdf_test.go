// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/mealplan-pdf/pkg/types"
)

// pageTexts parses a PDF and returns the plain text of every page.
func pageTexts(t *testing.T, data []byte) []string {
	t.Helper()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	texts := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		text, err := r.Page(i).GetPlainText(nil)
		require.NoError(t, err)
		texts = append(texts, text)
	}
	return texts
}

func renderPlan(t *testing.T, plan types.MealPlan, opts ...PDFOption) []byte {
	t.Helper()
	doc := NewPDFDocument(opts...)
	Render(plan, doc, types.RenderConfig{})

	var buf bytes.Buffer
	require.NoError(t, doc.Write(&buf))
	return buf.Bytes()
}

func TestPDFDocument_MondayScenario(t *testing.T) {
	data := renderPlan(t, mondayPlan())
	require.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	pages := pageTexts(t, data)
	require.Len(t, pages, 1)
	text := pages[0]
	for _, want := range []string{"MEAL PLAN", "Day", "Breakfast", "Mid-Morning", "Evening", "Monday", "Oatmeal", "Salmon"} {
		assert.Contains(t, text, want)
	}
	assert.NotContains(t, text, "Tuesday")
}

func TestPDFDocument_EmptyPlan(t *testing.T) {
	pages := pageTexts(t, renderPlan(t, types.MealPlan{}))

	require.Len(t, pages, 1)
	assert.Contains(t, pages[0], "MEAL PLAN")
	assert.Contains(t, pages[0], "Afternoon")
	for _, d := range types.Days() {
		assert.NotContains(t, pages[0], d.String())
	}
}

func TestPDFDocument_Compressed(t *testing.T) {
	pages := pageTexts(t, renderPlan(t, mondayPlan(), WithCompression(true)))
	require.Len(t, pages, 1)
	assert.Contains(t, pages[0], "Oatmeal")
}

func TestPDFDocument_HeaderRepeatsOnEveryPage(t *testing.T) {
	pages := pageTexts(t, renderPlan(t, fullWeek(strings.Repeat("quinoa kale bowl ", 60))))

	require.Greater(t, len(pages), 1)
	assert.Contains(t, pages[0], "MEAL PLAN")
	for i, p := range pages {
		assert.Contains(t, p, "Evening", "page %d should carry the header row", i+1)
	}
	assert.NotContains(t, pages[1], "MEAL PLAN")
}

func TestPDFDocument_RowTallerThanPageSplits(t *testing.T) {
	plan := types.MealPlan{
		types.Monday: {types.Breakfast: strings.Repeat("porridge ", 1500)},
		types.Friday: {types.Dinner: "Fish tacos"},
	}

	pages := pageTexts(t, renderPlan(t, plan))

	require.Greater(t, len(pages), 1)
	assert.Contains(t, pages[0], "Monday")
	assert.Contains(t, pages[len(pages)-1], "Fish tacos")
}

// fullWeek returns a plan with every day present and the given text in
// every slot.
func fullWeek(text string) types.MealPlan {
	plan := types.MealPlan{}
	for _, d := range types.Days() {
		var m types.Meals
		for _, s := range types.Slots() {
			m[s] = text
		}
		plan[d] = m
	}
	return plan
}

func TestPDFDocument_HeaderRuleStrokedAfterBody(t *testing.T) {
	data := renderPlan(t, fullWeek(strings.Repeat("quinoa kale bowl ", 60)))
	pages := pageTexts(t, data)
	require.Greater(t, len(pages), 1)

	rule := regexp.MustCompile(`0\.173 0\.243 0\.314 RG\n2\.00 w\n36\.00 [0-9.]+ m 576\.00 [0-9.]+ l S`)
	var ruled int
	for _, content := range strings.Split(string(data), "endstream") {
		loc := rule.FindStringIndex(content)
		if loc == nil {
			continue
		}
		ruled++
		assert.Greater(t, loc[0], strings.LastIndex(content, " re f"), "body fills must come before the rule")
		assert.Greater(t, loc[0], strings.LastIndex(content, " re S"), "grid lines must come before the rule")
	}
	assert.Equal(t, len(pages), ruled)
}

func TestPDFDocument_StripesAndPadding(t *testing.T) {
	content := string(renderPlan(t, fullWeek("Apple")))

	fills := regexp.MustCompile(`(?m)^(1\.000 g|0\.973 0\.976 0\.980 rg)$`).FindAllString(content, -1)
	white, stripe := "1.000 g", "0.973 0.976 0.980 rg"
	assert.Equal(t, []string{white, stripe, white, stripe, white, stripe, white}, fills)

	// Cell text starts one padding in from the cell edge.
	assert.Regexp(t, `BT 40\.00 [0-9.]+ Td \(Monday\) Tj`, content)
	assert.Regexp(t, `BT 94\.00 [0-9.]+ Td \(Apple\) Tj`, content)
}

func TestPDFDocument_NonASCII(t *testing.T) {
	plan := types.MealPlan{types.Monday: {types.Breakfast: "Crème brûlée – café"}}
	data := renderPlan(t, plan)
	assert.NotEmpty(t, pageTexts(t, data))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestPDFDocument_WriteError(t *testing.T) {
	doc := NewPDFDocument()
	Render(mondayPlan(), doc, types.RenderConfig{})

	err := doc.Write(failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing PDF")
}

func TestPDFDocument_WriteTwice(t *testing.T) {
	doc := NewPDFDocument()
	Render(mondayPlan(), doc, types.RenderConfig{})

	var a, b bytes.Buffer
	require.NoError(t, doc.Write(&a))
	require.NoError(t, doc.Write(&b))
	assert.Len(t, pageTexts(t, b.Bytes()), 1)
}

func TestWrap(t *testing.T) {
	f := gofpdf.New("P", "pt", "Letter", "")
	f.SetCellMargin(0)
	f.AddPage()
	l := &layout{pdf: f, tr: f.UnicodeTranslatorFromDescriptor(""), page: Letter}
	l.setFont(DefaultTableStyle.BodyFont)

	assert.Nil(t, l.wrap("", 73))
	assert.Equal(t, []string{"Oatmeal with banana"}, l.wrap("Oatmeal with banana", 73))
	assert.Equal(t, []string{"Mid-Morning", "Snack"}, l.wrap("Mid-Morning\nSnack", 73))

	lines := l.wrap(strings.Repeat("spinach ", 40), 73)
	assert.Greater(t, len(lines), 3)
	for _, line := range lines {
		assert.LessOrEqual(t, f.GetStringWidth(line), 73.0+0.01)
	}
}

func TestCellLines(t *testing.T) {
	row := cellLines{{"a", "b", "c"}, nil, {"x"}}
	assert.Equal(t, 3, row.maxLines())
	assert.Equal(t, 1, cellLines{nil, nil}.maxLines())

	head, rest := row.split(2)
	assert.Equal(t, cellLines{{"a", "b"}, nil, {"x"}}, head)
	assert.Equal(t, cellLines{{"c"}, nil, nil}, rest)
	assert.Equal(t, 1, rest.maxLines())
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#2c3e50")
	require.NoError(t, err)
	assert.Equal(t, Color{44, 62, 80}, c)

	c, err = ParseHex("f8f9fa")
	require.NoError(t, err)
	assert.Equal(t, Color{248, 249, 250}, c)

	for _, bad := range []string{"", "#fff", "#zzzzzz"} {
		_, err := ParseHex(bad)
		assert.Error(t, err, bad)
	}
	assert.Panics(t, func() { Hex("nope") })
}
