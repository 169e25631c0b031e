// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"github.com/pdiddy/mealplan-pdf/pkg/types"
)

const (
	// DayColumnWidth is the width of the narrow Day column.
	DayColumnWidth = 0.75 * Inch
	// MealColumnWidth is the width of each of the six meal columns. Together
	// with the Day column they fill the Letter content width.
	MealColumnWidth = 1.125 * Inch
)

// HeaderLabels are the column headings, Day first and then one per meal
// slot in column order. Long labels break onto a second line.
var HeaderLabels = []string{
	"Day",
	"Breakfast",
	"Mid-Morning\nSnack",
	"Lunch",
	"Afternoon\nSnack",
	"Dinner",
	"Evening",
}

// ColumnWidths returns the Day column width followed by six meal column
// widths.
func ColumnWidths() []float64 {
	widths := []float64{DayColumnWidth}
	for range types.Slots() {
		widths = append(widths, MealColumnWidth)
	}
	return widths
}

// MealPlanTable shapes plan into a table with one body row per day present,
// in canonical week order. Days missing from plan get no row.
func MealPlanTable(plan types.MealPlan, style TableStyle) Table {
	t := Table{
		Header:       append([]string(nil), HeaderLabels...),
		ColumnWidths: ColumnWidths(),
		Style:        style,
	}
	for _, day := range plan.Days() {
		meals := plan[day]
		row := make([]string, 0, 1+types.NumSlots)
		row = append(row, day.String())
		for _, slot := range types.Slots() {
			row = append(row, meals[slot])
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Render appends the title and the meal plan table to doc. An empty title
// falls back to types.DefaultTitle.
func Render(plan types.MealPlan, doc Document, cfg types.RenderConfig) {
	title := cfg.Title
	if title == "" {
		title = types.DefaultTitle
	}
	doc.AddTitle(title)
	doc.AddTable(MealPlanTable(plan, DefaultTableStyle))
}
