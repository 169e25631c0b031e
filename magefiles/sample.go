//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	sampleInput  = "testdata/sample_plan.txt"
	sampleOutput = "bin/sample_plan.pdf"
)

// Sample builds the CLI and renders testdata/sample_plan.txt to
// bin/sample_plan.pdf.
func Sample() error {
	mg.Deps(Build)
	bin := filepath.Join(binDir, binName)
	if err := sh.RunV(bin, "convert", "--input", sampleInput, "--output", sampleOutput); err != nil {
		return fmt.Errorf("rendering sample: %w", err)
	}
	return nil
}
