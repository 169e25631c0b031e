// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse reads a plain-text weekly meal plan into a types.MealPlan.
//
// The grammar is line oriented. A line holding only a day name starts that
// day's block; within a block, lines beginning with a slot prefix such as
// "Breakfast:" set the slot. Everything else is ignored.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/mealplan-pdf/pkg/types"
)

// eveningPrefix matches any line that begins with "Evening", including
// "Evening snack:" and "Evening (if needed):".
const eveningPrefix = "Evening"

// slotPrefixes lists the exact prefixes tested, in order, for every slot
// except Evening.
var slotPrefixes = []struct {
	prefix string
	slot   types.MealSlot
}{
	{"Breakfast:", types.Breakfast},
	{"Mid-Morning Snack:", types.MidMorningSnack},
	{"Lunch:", types.Lunch},
	{"Afternoon Snack:", types.AfternoonSnack},
	{"Dinner:", types.Dinner},
}

// ParseFile opens path and parses its contents.
func ParseFile(path string) (types.MealPlan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading meal plan %s: %w", path, err)
	}
	defer f.Close()

	plan, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading meal plan %s: %w", path, err)
	}
	return plan, nil
}

// Parse reads r line by line and returns the plan it describes. Lines that
// match no rule are dropped silently; the only errors are read errors. Lines
// have no length limit.
func Parse(r io.Reader) (types.MealPlan, error) {
	p := planBuilder{plan: make(types.MealPlan)}

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		p.add(strings.TrimSpace(line))
		if err == io.EOF {
			return p.plan, nil
		}
	}
}

// planBuilder accumulates lines into a plan, tracking the day that slot
// lines attach to.
type planBuilder struct {
	plan    types.MealPlan
	current types.Day
	haveDay bool
}

func (p *planBuilder) add(line string) {
	if line == "" {
		return
	}
	if day, ok := types.ParseDay(line); ok {
		p.current, p.haveDay = day, true
		p.plan[day] = types.Meals{}
		return
	}
	if !p.haveDay {
		return
	}

	slot, text, ok := matchSlot(line)
	if !ok {
		return
	}
	meals := p.plan[p.current]
	meals[slot] = text
	p.plan[p.current] = meals
}

// matchSlot reports which slot line belongs to and the trimmed text after
// its prefix.
func matchSlot(line string) (types.MealSlot, string, bool) {
	for _, p := range slotPrefixes {
		if rest, ok := strings.CutPrefix(line, p.prefix); ok {
			return p.slot, strings.TrimSpace(rest), true
		}
	}
	if strings.HasPrefix(line, eveningPrefix) {
		text := line
		if i := strings.IndexByte(line[len(eveningPrefix):], ':'); i >= 0 {
			text = line[len(eveningPrefix)+i+1:]
		}
		return types.Evening, strings.TrimSpace(text), true
	}
	return 0, "", false
}
