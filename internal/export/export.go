// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes a parsed meal plan as YAML or JSON, days in
// canonical week order, so the parser's view of a file can be inspected.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mealplan-pdf/pkg/types"
)

// PlanFile is the serialized form of a meal plan.
type PlanFile struct {
	Source string      `json:"source,omitempty" yaml:"source,omitempty"`
	Days   []DayRecord `json:"days" yaml:"days"`
}

// DayRecord holds one day's six meal slots.
type DayRecord struct {
	Day             string `json:"day" yaml:"day"`
	Breakfast       string `json:"breakfast" yaml:"breakfast"`
	MidMorningSnack string `json:"mid_morning_snack" yaml:"mid_morning_snack"`
	Lunch           string `json:"lunch" yaml:"lunch"`
	AfternoonSnack  string `json:"afternoon_snack" yaml:"afternoon_snack"`
	Dinner          string `json:"dinner" yaml:"dinner"`
	Evening         string `json:"evening" yaml:"evening"`
}

// FromPlan builds a PlanFile from plan. source is recorded as given.
func FromPlan(plan types.MealPlan, source string) PlanFile {
	pf := PlanFile{Source: source, Days: []DayRecord{}}
	for _, d := range plan.Days() {
		m := plan[d]
		pf.Days = append(pf.Days, DayRecord{
			Day:             d.String(),
			Breakfast:       m[types.Breakfast],
			MidMorningSnack: m[types.MidMorningSnack],
			Lunch:           m[types.Lunch],
			AfternoonSnack:  m[types.AfternoonSnack],
			Dinner:          m[types.Dinner],
			Evening:         m[types.Evening],
		})
	}
	return pf
}

// WriteYAML encodes pf as YAML to w.
func WriteYAML(w io.Writer, pf PlanFile) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&pf); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// WriteJSON encodes pf as indented JSON to w.
func WriteJSON(w io.Writer, pf PlanFile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&pf); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}
