package pattern

import (
	"math"

	"github.com/matzehuels/seedglyph/pkg/geom"
	"github.com/matzehuels/seedglyph/pkg/glyph"
	"github.com/matzehuels/seedglyph/pkg/seed"
)

const (
	spiralElementsPerArc = 20
	spiralStep           = 10.0 // degrees
	rotationJitter       = 30.0 // degrees either side
)

// Policy returns the colour policy the arc family uses. Blanking is a
// firework feature; arcs never blank.
func (s ArcSettings) Policy() ColorPolicy {
	return ColorPolicy{Mode: s.ColorMode, Background: White}
}

func (s ArcSettings) style() glyph.Style {
	return glyph.Style{
		FontFamily: glyph.DefaultFamily,
		FontSize:   s.FontSize,
		FontWeight: glyph.WeightNormal,
	}
}

// Arcs lays out the arc family selected by s.Pattern around center.
// Unknown patterns produce no placements.
func Arcs(r *seed.Random, s ArcSettings, center geom.Point) []glyph.Placement {
	switch s.Pattern {
	case PatternConcentric:
		return concentric(r, s, center)
	case PatternSpiral:
		return spiral(r, s, center)
	case PatternCone:
		return cone(r, s, center)
	default:
		return nil
	}
}

// concentric places text on nArcs rings, evenly spread across the arc span.
func concentric(r *seed.Random, s ArcSettings, center geom.Point) []glyph.Placement {
	var out []glyph.Placement
	for ring := 0; ring < s.Arcs; ring++ {
		radius := s.Radius + float64(ring)*s.RadiusSpacing
		arcLength := 2 * math.Pi * radius * (s.ArcSpan / 360)
		n := int(math.Floor(arcLength / s.TextSpacing))
		if n <= 0 {
			continue
		}
		step := s.ArcSpan / float64(n)
		for i := 0; i < n; i++ {
			angle := s.StartAngle + float64(i)*step
			pos := center.Add(geom.Polar(radius, angle))
			out = append(out, s.place(r, pos, angle, ring))
		}
	}
	return out
}

// spiral steps 10° per element while the radius grows by a twentieth of
// the ring spacing.
func spiral(r *seed.Random, s ArcSettings, center geom.Point) []glyph.Placement {
	total := s.Arcs * spiralElementsPerArc
	growth := s.RadiusSpacing / spiralElementsPerArc
	out := make([]glyph.Placement, 0, total)
	for i := 0; i < total; i++ {
		angle := float64(i) * spiralStep
		radius := s.Radius + float64(i)*growth
		pos := center.Add(geom.Polar(radius, angle))
		out = append(out, s.place(r, pos, angle, i))
	}
	return out
}

// cone stacks nArcs horizontal levels from the top of a cone of height
// 2*radius; each level's radius shrinks linearly toward the apex.
func cone(r *seed.Random, s ArcSettings, center geom.Point) []glyph.Placement {
	height := s.Radius * 2
	levels := float64(s.Arcs)
	var out []glyph.Placement
	for level := 0; level < s.Arcs; level++ {
		y := center.Y - height/2 + float64(level)*height/levels
		levelRadius := s.Radius * (1 - float64(level)/levels)
		n := max(1, int(math.Floor(levelRadius/(s.TextSpacing/2))))
		for i := 0; i < n; i++ {
			angle := float64(i) / float64(n) * 360
			pos := geom.Pt(center.X+math.Cos(geom.Radians(angle))*levelRadius, y)
			out = append(out, s.place(r, pos, angle, level))
		}
	}
	return out
}

// place builds one placement: colour draws first, then the optional
// rotation jitter draw.
func (s ArcSettings) place(r *seed.Random, pos geom.Point, angle float64, index int) glyph.Placement {
	st := s.style()
	st.Fill = s.Policy().Color(r, index)

	rot := angle
	if s.Direction == Counterclockwise {
		rot = -angle
	}
	if s.RandomRotation {
		rot += r.Float64()*2*rotationJitter - rotationJitter
	}
	return glyph.Placement{
		Text:     s.Text,
		Position: pos,
		Rotation: rot,
		Anchor:   glyph.AnchorStart,
		Style:    st,
	}
}
