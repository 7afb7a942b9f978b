// Package glyph defines placed text units and lays text out along paths.
//
// A [Placement] is the unit every generator produces and every sink
// consumes: a string (usually one character, sometimes a whole word),
// where it sits, how it is rotated and how it is styled. Generators return
// fresh slices of placements; nothing mutates a list once it is built.
//
// Glyph widths come from a [Measurer]. Production code measures with real
// font faces (see package fonts); tests use [TableMeasurer].
package glyph

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/seedglyph/pkg/geom"
)

// Anchor selects which point of the text box sits on Placement.Position.
type Anchor string

const (
	// AnchorStart puts the left end of the baseline on the position.
	AnchorStart Anchor = "start"
	// AnchorMiddle centres the baseline on the position.
	AnchorMiddle Anchor = "middle"
)

// Font weights understood by the measurer and the sinks.
const (
	WeightNormal = "normal"
	WeightMedium = "medium"
	WeightBold   = "bold"
)

// DefaultFamily is the family name written into vector output.
const DefaultFamily = "LLAL-linear"

// Style holds the font and fill of a placement.
type Style struct {
	FontFamily string         `json:"font_family"`
	FontSize   float64        `json:"font_size"`
	FontWeight string         `json:"font_weight"`
	FontWidth  float64        `json:"font_width"` // percent of regular width; 0 means 100
	Fill       colorful.Color `json:"fill"`
}

// WidthScale returns the horizontal scale implied by FontWidth.
func (s Style) WidthScale() float64 {
	if s.FontWidth <= 0 {
		return 1
	}
	return s.FontWidth / 100
}

// Placement is one rendered text unit.
type Placement struct {
	Text     string     `json:"text"`
	Position geom.Point `json:"position"`
	Rotation float64    `json:"rotation"` // degrees, clockwise on screen
	Anchor   Anchor     `json:"anchor"`
	Style    Style      `json:"style"`
}

// Measurer reports the advance width of text set in style. Implementations
// must be deterministic and free of side effects visible to the caller.
type Measurer interface {
	MeasureText(text string, style Style) float64
}

// TableMeasurer measures from a fixed table of widths in em units, scaled
// by font size and font width. Strings missing from the table are measured
// rune by rune, falling back to Default for unknown runes.
type TableMeasurer struct {
	Widths  map[string]float64
	Default float64
}

// MeasureText implements Measurer.
func (m TableMeasurer) MeasureText(text string, style Style) float64 {
	em, ok := m.Widths[text]
	if !ok {
		for _, r := range text {
			w, ok := m.Widths[string(r)]
			if !ok {
				w = m.Default
			}
			em += w
		}
	}
	return em * style.FontSize * style.WidthScale()
}
