// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs the text-to-PDF pipeline: parse a meal plan file,
// render it, and write the PDF, reporting progress to a writer.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/mealplan-pdf/internal/parse"
	"github.com/pdiddy/mealplan-pdf/internal/render"
	"github.com/pdiddy/mealplan-pdf/pkg/types"
)

const (
	// DefaultInput is the meal plan read when no input is configured.
	DefaultInput = "meal_plan.html"
	// DefaultOutput is the PDF written when no output is configured.
	DefaultOutput = "meal_plan.pdf"
)

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertFile parses cfg.InputPath and writes the rendered plan to
// cfg.OutputPath, printing one line before parsing, one before generating,
// and one on success. Empty paths fall back to DefaultInput and
// DefaultOutput.
func ConvertFile(cfg types.ConvertConfig, w io.Writer) error {
	in, out := cfg.InputPath, cfg.OutputPath
	if in == "" {
		in = DefaultInput
	}
	if out == "" {
		out = DefaultOutput
	}

	fmt.Fprintf(w, "Parsing meal plan from %s...\n", in)
	plan, err := parse.ParseFile(in)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Generating PDF: %s...\n", out)
	if err := WritePDF(plan, out, cfg.RenderConfig); err != nil {
		return err
	}

	fmt.Fprintf(w, "✓ PDF created successfully: %s\n", out)
	return nil
}

// WritePDF renders plan and writes it to path, creating or truncating the
// file. A failed write may leave a partial file behind.
func WritePDF(plan types.MealPlan, path string, cfg types.RenderConfig) (err error) {
	doc := render.NewPDFDocument(render.WithCompression(cfg.Compress))
	render.Render(plan, doc, cfg)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating PDF %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing PDF %s: %w", path, cerr)
		}
	}()

	if err := doc.Write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// OutputPath returns the PDF path for input inside outDir: the input's base
// name with its extension replaced by ".pdf".
func OutputPath(input, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(outDir, base+".pdf")
}

// ConvertBatch converts each input to a PDF in outDir, printing per-file
// status to w and returning a summary. A failure on one file does not stop
// the rest.
func ConvertBatch(inputs []string, outDir string, cfg types.RenderConfig, w io.Writer) BatchResult {
	var result BatchResult

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", outDir, err)
		result.Failed = len(inputs)
		return result
	}

	for _, in := range inputs {
		out := OutputPath(in, outDir)
		plan, err := parse.ParseFile(in)
		if err == nil {
			err = WritePDF(plan, out, cfg)
		}
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", in, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "converted: %s -> %s (%d days)\n", in, out, len(plan))
		result.Converted++
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result
}
