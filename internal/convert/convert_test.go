// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/mealplan-pdf/pkg/types"
)

const mondayPlan = `Monday
Breakfast: Oatmeal with banana
Lunch: Grilled chicken salad
Dinner: Salmon and rice
`

// writeInput creates a meal plan text file in a temp dir and returns its
// path and the dir.
func writeInput(t *testing.T, name, content string) (path, dir string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path, dir
}

// pdfText returns the text of every page of the PDF at path, joined.
func pdfText(t *testing.T, path string) (text string, pages int) {
	t.Helper()
	f, r, err := pdf.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		s, err := r.Page(i).GetPlainText(nil)
		require.NoError(t, err)
		b.WriteString(s)
	}
	return b.String(), r.NumPage()
}

func TestConvertFile(t *testing.T) {
	in, dir := writeInput(t, "meal_plan.html", mondayPlan)
	out := filepath.Join(dir, "meal_plan.pdf")

	var log bytes.Buffer
	err := ConvertFile(types.ConvertConfig{InputPath: in, OutputPath: out}, &log)
	require.NoError(t, err)

	assert.Equal(t,
		"Parsing meal plan from "+in+"...\n"+
			"Generating PDF: "+out+"...\n"+
			"✓ PDF created successfully: "+out+"\n",
		log.String())

	text, pages := pdfText(t, out)
	assert.Equal(t, 1, pages)
	assert.Contains(t, text, "Monday")
	assert.Contains(t, text, "Salmon and rice")
}

func TestConvertFile_EmptyInput(t *testing.T) {
	in, dir := writeInput(t, "empty.txt", "")
	out := filepath.Join(dir, "empty.pdf")

	var log bytes.Buffer
	require.NoError(t, ConvertFile(types.ConvertConfig{InputPath: in, OutputPath: out}, &log))

	text, pages := pdfText(t, out)
	assert.Equal(t, 1, pages)
	assert.Contains(t, text, "MEAL PLAN")
	assert.Contains(t, text, "Breakfast")
	assert.NotContains(t, text, "Monday")
}

func TestConvertFile_MissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.pdf")

	var log bytes.Buffer
	err := ConvertFile(types.ConvertConfig{
		InputPath:  filepath.Join(dir, "missing.txt"),
		OutputPath: out,
	}, &log)

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, log.String(), "Parsing meal plan")
	assert.NotContains(t, log.String(), "Generating PDF")
	assert.NoFileExists(t, out)
}

func TestConvertFile_UnwritableOutput(t *testing.T) {
	in, dir := writeInput(t, "plan.txt", mondayPlan)
	out := filepath.Join(dir, "no-such-dir", "plan.pdf")

	var log bytes.Buffer
	err := ConvertFile(types.ConvertConfig{InputPath: in, OutputPath: out}, &log)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating PDF")
	assert.Contains(t, log.String(), "Generating PDF")
	assert.NotContains(t, log.String(), "created successfully")
}

func TestConvertFile_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(DefaultInput, []byte(mondayPlan), 0o644))

	var log bytes.Buffer
	require.NoError(t, ConvertFile(types.ConvertConfig{}, &log))

	assert.FileExists(t, filepath.Join(dir, DefaultOutput))
	assert.Contains(t, log.String(), DefaultInput)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "week1.pdf"), OutputPath("plans/week1.txt", "out"))
	assert.Equal(t, filepath.Join("out", "week2.pdf"), OutputPath("week2", "out"))
}

func TestConvertBatch(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "week1.txt")
	empty := filepath.Join(dir, "week2.txt")
	require.NoError(t, os.WriteFile(good, []byte(mondayPlan), 0o644))
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	missing := filepath.Join(dir, "week3.txt")

	outDir := filepath.Join(dir, "pdf")
	var log bytes.Buffer
	result := ConvertBatch([]string{good, empty, missing}, outDir, types.RenderConfig{}, &log)

	assert.Equal(t, 2, result.Converted)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 3, result.Total())
	assert.True(t, result.HasFailures())

	assert.FileExists(t, filepath.Join(outDir, "week1.pdf"))
	assert.FileExists(t, filepath.Join(outDir, "week2.pdf"))
	assert.NoFileExists(t, filepath.Join(outDir, "week3.pdf"))

	output := log.String()
	assert.Contains(t, output, "converted: "+good)
	assert.Contains(t, output, "failed:  "+missing)
	assert.Contains(t, output, "Batch summary: 2 converted, 1 failed (total: 3)")
}

func TestConvertBatch_NoFailures(t *testing.T) {
	in, dir := writeInput(t, "plan.txt", mondayPlan)

	var log bytes.Buffer
	result := ConvertBatch([]string{in}, dir, types.RenderConfig{Compress: true, Title: "Week 1"}, &log)

	assert.False(t, result.HasFailures())
	text, _ := pdfText(t, filepath.Join(dir, "plan.pdf"))
	assert.Contains(t, text, "Week 1")
}

func TestConvertFile_Sample(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sample.pdf")
	in := filepath.Join("..", "..", "testdata", "sample_plan.txt")

	var log bytes.Buffer
	require.NoError(t, ConvertFile(types.ConvertConfig{
		RenderConfig: types.RenderConfig{Compress: true},
		InputPath:    in,
		OutputPath:   out,
	}, &log))

	text, pages := pdfText(t, out)
	assert.GreaterOrEqual(t, pages, 1)
	for _, d := range types.Days() {
		assert.Contains(t, text, d.String())
	}
}
