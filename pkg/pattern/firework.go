package pattern

import (
	"math"

	"github.com/matzehuels/seedglyph/pkg/geom"
	"github.com/matzehuels/seedglyph/pkg/glyph"
	"github.com/matzehuels/seedglyph/pkg/seed"
)

// fireworkGap is the space left after each element, as a fraction of its
// font size.
const fireworkGap = 0.1

// Firework lays out s.Rays rays from center, each carrying s.Elements
// copies of the text placed end to end. Element k is set at
// BaseFontSize*FontSizeScale^k; the next element starts after the measured
// width of the current one plus a tenth of its font size.
//
// Gradient fills are keyed by the placement's index across all rays.
func Firework(r *seed.Random, s FireworkSettings, center geom.Point, m glyph.Measurer) []glyph.Placement {
	if s.Rays <= 0 || s.Elements <= 0 {
		return nil
	}
	policy := s.Policy()
	out := make([]glyph.Placement, 0, s.Rays*s.Elements)

	for ray := 0; ray < s.Rays; ray++ {
		angle := float64(ray)/float64(s.Rays)*360 + s.Rotation
		dist := 0.0
		for el := 0; el < s.Elements; el++ {
			st := glyph.Style{
				FontFamily: glyph.DefaultFamily,
				FontSize:   s.BaseFontSize * math.Pow(s.FontSizeScale, float64(el)),
				FontWeight: glyph.WeightNormal,
			}
			st.Fill = policy.Color(r, len(out))

			out = append(out, glyph.Placement{
				Text:     s.Text,
				Position: center.Add(geom.Polar(dist, angle)),
				Rotation: angle,
				Anchor:   glyph.AnchorStart,
				Style:    st,
			})
			// Advance by the unrotated width; rotation does not widen the ray.
			dist += m.MeasureText(s.Text, st) + st.FontSize*fireworkGap
		}
	}
	return out
}
