package glyph

import (
	"math"

	"github.com/matzehuels/seedglyph/pkg/errors"
	"github.com/matzehuels/seedglyph/pkg/geom"
)

// Alignment is the result of laying text along a path.
type Alignment struct {
	Placements []Placement
	// Dropped lists the rune indices that ran past the end of an open path.
	Dropped []int
}

// Offsets returns the arc-length centre of every rune of text.
//
// Each rune is measured alone, and each adjacent pair is measured together;
// the pair width minus the two half widths is the kerned distance between
// the two centres. The first rune is centred at 0.
func Offsets(text string, style Style, m Measurer) []float64 {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	widths := make([]float64, len(runes))
	for i, r := range runes {
		widths[i] = m.MeasureText(string(r), style)
	}
	offsets := make([]float64, len(runes))
	for i := 1; i < len(runes); i++ {
		pair := m.MeasureText(string(runes[i-1:i+1]), style)
		offsets[i] = offsets[i-1] + pair - widths[i-1]/2 - widths[i]/2
	}
	return offsets
}

// Align places each rune of text on p, centred on its offset and rotated to
// the path's tangent.
//
// Offsets past the end of a closed path wrap around. Offsets past the end
// of an open path are dropped and their indices reported in
// Alignment.Dropped.
func Align(text string, p *geom.Path, style Style, m Measurer) (Alignment, error) {
	if p == nil || !(p.Length() > 0) {
		return Alignment{}, errors.New(errors.ErrCodeDegeneratePath, "cannot align text to an empty path")
	}

	runes := []rune(text)
	offsets := Offsets(text, style, m)
	length := p.Length()

	out := Alignment{Placements: make([]Placement, 0, len(runes))}
	for i, off := range offsets {
		if off > length {
			if !p.IsClosed() {
				out.Dropped = append(out.Dropped, i)
				continue
			}
			off = math.Mod(off, length)
		}
		out.Placements = append(out.Placements, Placement{
			Text:     string(runes[i]),
			Position: p.PointAt(off),
			Rotation: p.TangentAngleAt(off),
			Anchor:   AnchorMiddle,
			Style:    style,
		})
	}
	return out, nil
}
