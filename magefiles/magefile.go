//go:build mage

// Package main contains Mage build targets for mealplan-pdf developer tooling.
package main

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/sh"

	"github.com/pdiddy/mealplan-pdf/internal/parse"
)

const (
	binDir  = "bin"
	binName = "mealplan-pdf"
	cmdPkg  = "./cmd/mealplan-pdf"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests for every package.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Stats prints project metrics: Go production/test LOC, sample plan
// coverage under testdata/, and the word count of the root Markdown docs.
func Stats() error {
	prodLines, testLines, err := countGoLines(".")
	if err != nil {
		return err
	}
	plans, err := samplePlanStats("testdata")
	if err != nil {
		return err
	}
	docWords, err := countDocWords(".")
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Sample plans:                   %d (%d days, %d meals)\n", plans.files, plans.days, plans.meals)
	fmt.Printf("Words (Markdown docs):          %d\n", docWords)
	return nil
}

// countGoLines counts non-blank lines in the module's Go files, split into
// production and _test.go files. The example pack and build output are
// skipped.
func countGoLines(root string) (prod, test int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (strings.HasPrefix(d.Name(), "_") || strings.HasPrefix(d.Name(), ".") || d.Name() == binDir) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		n, err := countNonBlank(path)
		if err != nil {
			return err
		}
		if strings.HasSuffix(path, "_test.go") {
			test += n
		} else {
			prod += n
		}
		return nil
	})
	return prod, test, err
}

func countNonBlank(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	n := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			n++
		}
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	return n, nil
}

type planStats struct {
	files, days, meals int
}

// samplePlanStats parses every .txt plan in dir and totals the days and
// filled meal slots found.
func samplePlanStats(dir string) (planStats, error) {
	var st planStats
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return st, err
	}
	for _, path := range paths {
		plan, err := parse.ParseFile(path)
		if err != nil {
			return st, err
		}
		st.files++
		for _, day := range plan.Days() {
			st.days++
			for _, meal := range plan[day] {
				if meal != "" {
					st.meals++
				}
			}
		}
	}
	return st, nil
}

// countDocWords counts whitespace-separated words in the Markdown files at
// the top of root.
func countDocWords(root string) (int, error) {
	paths, err := filepath.Glob(filepath.Join(root, "*.md"))
	if err != nil {
		return 0, err
	}
	total := 0
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return 0, fmt.Errorf("reading %s: %w", path, err)
		}
		total += len(strings.Fields(string(data)))
	}
	return total, nil
}
