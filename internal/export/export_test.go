// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mealplan-pdf/pkg/types"
)

func samplePlan() types.MealPlan {
	return types.MealPlan{
		types.Wednesday: {types.Lunch: "Lentil soup"},
		types.Monday:    {types.Breakfast: "Oatmeal", types.Evening: "Herbal tea"},
	}
}

func TestFromPlan(t *testing.T) {
	pf := FromPlan(samplePlan(), "week.txt")

	assert.Equal(t, "week.txt", pf.Source)
	require.Len(t, pf.Days, 2)
	assert.Equal(t, DayRecord{Day: "Monday", Breakfast: "Oatmeal", Evening: "Herbal tea"}, pf.Days[0])
	assert.Equal(t, DayRecord{Day: "Wednesday", Lunch: "Lentil soup"}, pf.Days[1])
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, FromPlan(samplePlan(), "")))

	out := buf.String()
	assert.NotContains(t, out, "source:")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Monday")), bytes.Index(buf.Bytes(), []byte("Wednesday")))

	var got PlanFile
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Lentil soup", got.Days[1].Lunch)
	assert.Equal(t, "", got.Days[1].Dinner)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, FromPlan(samplePlan(), "week.txt")))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.Equal(t, "week.txt", raw["source"])
	days, ok := raw["days"].([]any)
	require.True(t, ok)
	first := days[0].(map[string]any)
	assert.Equal(t, "Monday", first["day"])
	assert.Equal(t, "Herbal tea", first["evening"])
	assert.Equal(t, "", first["mid_morning_snack"])
}

func TestWriteJSON_EmptyPlan(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, FromPlan(types.MealPlan{}, "")))
	assert.JSONEq(t, `{"days": []}`, buf.String())
}
