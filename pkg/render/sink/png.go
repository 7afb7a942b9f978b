package sink

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/seedglyph/pkg/errors"
	"github.com/matzehuels/seedglyph/pkg/fonts"
	"github.com/matzehuels/seedglyph/pkg/geom"
	"github.com/matzehuels/seedglyph/pkg/glyph"
	"github.com/matzehuels/seedglyph/pkg/sketch"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale   float64
	library *fonts.Library
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithFontLibrary rasterizes with faces from lib. The library is used by
// one render at a time; by default each render opens its own.
func WithFontLibrary(lib *fonts.Library) PNGOption {
	return func(r *pngRenderer) { r.library = lib }
}

// RenderPNG rasterizes the frame.
func RenderPNG(f sketch.Frame, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	if !(r.scale > 0) || r.scale > 16 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png scale must be in (0, 16], got %v", r.scale)
	}
	if r.library == nil {
		r.library = fonts.NewLibrary()
		defer r.library.Close()
	}

	w, h := canvasSize(f, r.scale)
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty canvas %dx%d", w, h)
	}
	dc := gg.NewContext(w, h)
	dc.SetColor(f.Background)
	dc.Clear()
	dc.Scale(r.scale, r.scale)

	if f.Path != nil && f.ShowPath {
		tracePath(dc, f.Path)
		dc.SetColor(f.PathColor)
		dc.SetLineWidth(sketch.PathStrokeWidth * r.scale)
		dc.Stroke()
	}

	canvas := geom.NewRect(0, 0, f.Bounds.W, f.Bounds.H)
	maxFace := math.Hypot(f.Bounds.W, f.Bounds.H) * r.scale
	for _, p := range f.Placements {
		if !onCanvas(r.library, p, canvas) {
			continue
		}
		if err := drawPlacement(dc, r.library, p, r.scale, maxFace); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode png")
	}
	return buf.Bytes(), nil
}

func tracePath(dc *gg.Context, p *geom.Path) {
	first := true
	p.Walk(func(from, c1, c2, to geom.Point) {
		if first {
			dc.MoveTo(from.X, from.Y)
			first = false
		}
		dc.CubicTo(c1.X, c1.Y, c2.X, c2.Y, to.X, to.Y)
	})
	if p.IsClosed() {
		dc.ClosePath()
	}
}

// onCanvas reports whether any part of p can reach the canvas. The glyph
// run may turn about its anchor, so the test uses a square of half side
// width plus one em around the position.
func onCanvas(lib *fonts.Library, p glyph.Placement, canvas geom.Rect) bool {
	reach := lib.MeasureText(p.Text, p.Style) + p.Style.FontSize
	if math.IsNaN(reach) || math.IsNaN(p.Position.X) || math.IsNaN(p.Position.Y) {
		return false
	}
	return p.Position.X+reach >= canvas.Left() && p.Position.X-reach <= canvas.Right() &&
		p.Position.Y+reach >= canvas.Top() && p.Position.Y-reach <= canvas.Bottom()
}

// drawPlacement sets one placement. The face is opened at the output
// resolution and the context scale undone around it so glyphs stay crisp.
// Faces larger than maxFace pixels are opened at maxFace and scaled up,
// since a glyph mask grows with the square of the face size.
func drawPlacement(dc *gg.Context, lib *fonts.Library, p glyph.Placement, scale, maxFace float64) error {
	size := p.Style.FontSize * scale
	k := 1.0
	if size > maxFace {
		k = size / maxFace
		size = maxFace
	}
	face, err := lib.Face(p.Style.FontWeight, size)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "font face for %q", p.Text)
	}
	ax := 0.0
	if p.Anchor == glyph.AnchorMiddle {
		ax = 0.5
	}

	dc.Push()
	defer dc.Pop()
	dc.Translate(p.Position.X, p.Position.Y)
	dc.Rotate(gg.Radians(p.Rotation))
	dc.Scale(p.Style.WidthScale()*k/scale, k/scale)
	dc.SetFontFace(face)
	dc.SetColor(p.Style.Fill)
	dc.DrawStringAnchored(p.Text, 0, 0, ax, 0)
	return nil
}
