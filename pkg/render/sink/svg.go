package sink

import (
	"bytes"
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/seedglyph/pkg/fonts"
	"github.com/matzehuels/seedglyph/pkg/glyph"
	"github.com/matzehuels/seedglyph/pkg/sketch"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	embedFont bool
	title     string
}

// WithEmbeddedFont embeds the bundled regular face as an @font-face rule so
// the output renders identically without LLAL-linear installed.
func WithEmbeddedFont() SVGOption { return func(r *svgRenderer) { r.embedFont = true } }

// WithTitle overrides the document title.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// RenderSVG renders the frame as a standalone SVG document.
func RenderSVG(f sketch.Frame, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if r.title == "" {
		r.title = defaultTitle(f)
	}

	w, h := canvasSize(f, 1)
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(w, h)
	canvas.Title(r.title)
	canvas.Desc(fmt.Sprintf("seed %s", f.Token))

	if r.embedFont {
		canvas.Style("text/css", fmt.Sprintf(
			"@font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s) format('truetype'); }",
			fonts.EmbeddedFamily, fonts.RegularBase64()))
	}

	canvas.Rect(0, 0, w, h, "fill:"+f.Background.Hex())

	if f.Path != nil && f.ShowPath {
		canvas.Path(f.Path.SVGData(), fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d",
			f.PathColor.Hex(), sketch.PathStrokeWidth))
	}

	for _, p := range f.Placements {
		canvas.Gtransform(fmt.Sprintf("translate(%.2f,%.2f) rotate(%.2f)", p.Position.X, p.Position.Y, p.Rotation))
		canvas.Text(0, 0, p.Text, textStyle(p))
		canvas.Gend()
	}

	canvas.End()
	return buf.Bytes()
}

func defaultTitle(f sketch.Frame) string {
	name := string(f.Kind)
	if info, err := sketch.Lookup(f.Kind); err == nil {
		name = info.Name
	}
	return fmt.Sprintf("%s %s", name, f.Token)
}

func canvasSize(f sketch.Frame, scale float64) (int, int) {
	return int(math.Ceil(f.Bounds.W * scale)), int(math.Ceil(f.Bounds.H * scale))
}

func textStyle(p glyph.Placement) string {
	family := p.Style.FontFamily
	if family == "" {
		family = glyph.DefaultFamily
	}
	weight := p.Style.FontWeight
	if weight == "" {
		weight = glyph.WeightNormal
	}
	anchor := p.Anchor
	if anchor == "" {
		anchor = glyph.AnchorStart
	}
	return fmt.Sprintf("font-family:'%s', %s;font-size:%.2fpx;font-weight:%s;font-stretch:%.0f%%;fill:%s;text-anchor:%s",
		family, fonts.FallbackFontFamily, p.Style.FontSize, weight,
		p.Style.WidthScale()*100, p.Style.Fill.Hex(), anchor)
}
