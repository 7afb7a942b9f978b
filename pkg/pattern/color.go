package pattern

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/seedglyph/pkg/seed"
)

// ColorMode selects how glyph fills are chosen.
type ColorMode string

const (
	// ColorBlackWhite fills black, optionally blanking glyphs to the background.
	ColorBlackWhite ColorMode = "blackWhite"
	// ColorColorful draws a uniform random RGB colour per glyph.
	ColorColorful ColorMode = "colorful"
	// ColorMonochrome draws a random grey per glyph.
	ColorMonochrome ColorMode = "monochrome"
	// ColorGradient interpolates from blue to red by element index.
	ColorGradient ColorMode = "gradient"
)

// ColorModes lists the accepted modes in display order.
var ColorModes = []ColorMode{ColorBlackWhite, ColorColorful, ColorMonochrome, ColorGradient}

// gradientSteps is the element index at which the gradient reaches its end.
const gradientSteps = 20

// Fixed fills.
var (
	Black = colorful.Color{R: 0, G: 0, B: 0}
	White = colorful.Color{R: 1, G: 1, B: 1}

	gradientStart = colorful.Color{R: 0, G: 0.5, B: 1}
	gradientEnd   = colorful.Color{R: 1, G: 0.5, B: 0}
)

// ColorPolicy picks the fill of each placed glyph.
type ColorPolicy struct {
	Mode ColorMode
	// UseBlanks enables blanking in black-and-white mode.
	UseBlanks bool
	// BlankPercent is the chance, in percent, that a glyph is blanked.
	BlankPercent float64
	// Background is the blanking colour.
	Background colorful.Color
}

// Color returns the fill for the glyph with the given element index.
//
// Draws taken from r depend on the mode: black-and-white draws once when
// blanks are enabled, colorful draws three times (R, G, B), monochrome once
// and gradient never.
func (p ColorPolicy) Color(r *seed.Random, index int) colorful.Color {
	switch p.Mode {
	case ColorColorful:
		red := r.Float64()
		green := r.Float64()
		blue := r.Float64()
		return colorful.Color{R: red, G: green, B: blue}
	case ColorMonochrome:
		g := r.Float64()
		return colorful.Color{R: g, G: g, B: g}
	case ColorGradient:
		t := float64(index) / gradientSteps
		t = min(1, max(0, t))
		return gradientStart.BlendRgb(gradientEnd, t)
	default:
		if p.UseBlanks && r.CoinToss(p.BlankPercent) {
			return p.Background
		}
		return Black
	}
}
