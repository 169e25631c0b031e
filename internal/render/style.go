// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strconv"
	"strings"
)

// Inch is one inch in points, the unit used for all render geometry.
const Inch = 72.0

// Color is an RGB color with 0-255 components.
type Color struct {
	R, G, B int
}

var (
	White = Color{255, 255, 255}
	Grey  = Color{128, 128, 128}
)

// Hex parses a "#rrggbb" color. It panics on malformed input and is meant
// for package-level style literals.
func Hex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseHex parses a "#rrggbb" or "rrggbb" color.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}, nil
}

// Font selects a core PDF font. Style is "", "B", "I", or "BI". Leading is
// the distance between baselines of wrapped lines.
type Font struct {
	Family  string
	Style   string
	Size    float64
	Leading float64
}

// Align is a horizontal text alignment: "L", "C", or "R".
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// TitleStyle controls how a document title is drawn.
type TitleStyle struct {
	Font       Font
	Color      Color
	Align      Align
	SpaceAfter float64
}

// TableStyle holds the per-region style directives for a table.
type TableStyle struct {
	HeaderFont  Font
	HeaderColor Color
	HeaderFill  Color
	HeaderAlign Align

	BodyFont  Font
	BodyColor Color
	BodyAlign Align

	// RowFills is the stripe pattern cycled over body rows, starting with
	// the first body row. Empty means no fill.
	RowFills []Color

	GridWidth float64
	GridColor Color

	// HeaderRuleWidth is the width of the rule beneath the header row;
	// zero disables it.
	HeaderRuleWidth float64
	HeaderRuleColor Color

	// Padding is applied on all four sides of every cell.
	Padding float64

	// RepeatHeader redraws the header row at the top of every page the
	// table continues onto.
	RepeatHeader bool
}

var navy = Hex("#2c3e50")

// DefaultTitleStyle is the centered 18 pt bold heading.
var DefaultTitleStyle = TitleStyle{
	Font:       Font{Family: "Helvetica", Style: "B", Size: 18, Leading: 22},
	Color:      Hex("#1a1a1a"),
	Align:      AlignCenter,
	SpaceAfter: 20 + 0.2*Inch,
}

// DefaultTableStyle is the striped, gridded meal plan table style.
var DefaultTableStyle = TableStyle{
	HeaderFont:  Font{Family: "Helvetica", Style: "B", Size: 9, Leading: 12},
	HeaderColor: White,
	HeaderFill:  navy,
	HeaderAlign: AlignCenter,

	BodyFont:  Font{Family: "Helvetica", Size: 7, Leading: 8},
	BodyColor: Color{},
	BodyAlign: AlignLeft,

	RowFills: []Color{White, Hex("#f8f9fa")},

	GridWidth: 0.5,
	GridColor: Grey,

	HeaderRuleWidth: 2,
	HeaderRuleColor: navy,

	Padding:      4,
	RepeatHeader: true,
}
