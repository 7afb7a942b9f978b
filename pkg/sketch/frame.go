package sketch

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/seedglyph/pkg/errors"
	"github.com/matzehuels/seedglyph/pkg/fonts"
	"github.com/matzehuels/seedglyph/pkg/geom"
	"github.com/matzehuels/seedglyph/pkg/glyph"
	"github.com/matzehuels/seedglyph/pkg/pattern"
	"github.com/matzehuels/seedglyph/pkg/seed"
)

// PathStrokeWidth is the stroke width of a displayed path.
const PathStrokeWidth = 2

// Frame is one generated picture: everything a sink needs to render it.
type Frame struct {
	Kind       Kind
	Token      seed.Token
	Settings   Settings
	Bounds     geom.Rect
	Background colorful.Color
	Placements []glyph.Placement

	// Path is the path text was aligned to (text-path only).
	Path      *geom.Path
	ShowPath  bool
	PathColor colorful.Color

	// Dropped lists glyph indices that ran off the end of an open path.
	Dropped []int
	// Degenerate reports that the path could not carry text.
	Degenerate bool
}

// Generate lays out the sketch selected by s for tok inside bounds.
//
// The random stream is rebuilt from tok and the defaults of s.Kind are
// replayed before any layout draw, so the output depends only on the
// arguments. A path that cannot carry text yields a frame without text
// rather than an error.
func Generate(tok seed.Token, s Settings, bounds geom.Rect, m glyph.Measurer) (Frame, error) {
	if !(bounds.W > 0) || !(bounds.H > 0) {
		return Frame{}, errors.New(errors.ErrCodeInvalidSettings, "canvas must have positive size, got %vx%v", bounds.W, bounds.H)
	}
	if err := s.Validate(); err != nil {
		return Frame{}, err
	}
	r, err := seed.FromToken(tok)
	if err != nil {
		return Frame{}, err
	}
	if _, err := Defaults(s.Kind, r); err != nil {
		return Frame{}, err
	}

	f := Frame{
		Kind:       s.Kind,
		Token:      tok,
		Settings:   s.Clone(),
		Bounds:     bounds,
		Background: pattern.White,
	}
	switch s.Kind {
	case KindFirework:
		f.Placements = pattern.Firework(r, *s.Firework, bounds.Center(), m)
	case KindArc:
		f.Placements = pattern.Arcs(r, *s.Arc, bounds.Center())
	case KindTextPath:
		if err := layoutTextPath(r, *s.TextPath, m, &f); err != nil {
			return Frame{}, err
		}
	}
	return f, nil
}

func buildPath(r *seed.Random, s TextPathSettings, bounds geom.Rect) (*geom.Path, error) {
	switch s.PathStyle {
	case PathCircle:
		return geom.Circle(bounds)
	case PathSpiral:
		return geom.Spiral(bounds, s.SpiralTurns)
	default:
		return geom.Curve(r, bounds, s.CurveComplexity)
	}
}

func layoutTextPath(r *seed.Random, s TextPathSettings, m glyph.Measurer, f *Frame) error {
	textColor, err := parseColor("text_color", s.TextColor)
	if err != nil {
		return err
	}
	pathColor, err := parseColor("path_color", s.PathColor)
	if err != nil {
		return err
	}

	p, err := buildPath(r, s, f.Bounds)
	if errors.Is(err, errors.ErrCodeDegeneratePath) {
		f.Degenerate = true
		return nil
	}
	if err != nil {
		return err
	}
	f.Path = p
	f.ShowPath = s.ShowPath
	f.PathColor = pathColor

	style := glyph.Style{
		FontFamily: fonts.FamilyForWidth(s.FontWidth),
		FontSize:   s.FontSize,
		FontWeight: glyph.WeightNormal,
		FontWidth:  s.FontWidth,
		Fill:       textColor,
	}
	al, err := glyph.Align(s.Text, p, style, m)
	if errors.Is(err, errors.ErrCodeDegeneratePath) {
		f.Degenerate = true
		return nil
	}
	if err != nil {
		return err
	}
	f.Placements = al.Placements
	f.Dropped = al.Dropped
	return nil
}
