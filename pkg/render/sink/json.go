package sink

import (
	"encoding/json"

	"github.com/matzehuels/seedglyph/pkg/sketch"
)

type jsonOutput struct {
	Sketch     string          `json:"sketch"`
	Token      string          `json:"token"`
	Width      float64         `json:"width"`
	Height     float64         `json:"height"`
	Background string          `json:"background"`
	Settings   sketch.Settings `json:"settings"`
	Path       *jsonPath       `json:"path,omitempty"`
	Glyphs     []jsonGlyph     `json:"glyphs"`
	Dropped    []int           `json:"dropped,omitempty"`
	Degenerate bool            `json:"degenerate,omitempty"`
}

type jsonPath struct {
	Data   string  `json:"data"`
	Closed bool    `json:"closed"`
	Length float64 `json:"length"`
	Color  string  `json:"color"`
	Shown  bool    `json:"shown"`
}

type jsonGlyph struct {
	Text       string  `json:"text"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Rotation   float64 `json:"rotation"`
	Anchor     string  `json:"anchor"`
	FontFamily string  `json:"font_family"`
	FontSize   float64 `json:"font_size"`
	FontWeight string  `json:"font_weight"`
	FontWidth  float64 `json:"font_width"`
	Fill       string  `json:"fill"`
}

// RenderJSON exports the frame as a pretty-printed JSON document: the
// token, the effective settings and every placed glyph. Decoding the token
// and settings with this program reproduces the glyph list exactly.
func RenderJSON(f sketch.Frame) ([]byte, error) {
	out := jsonOutput{
		Sketch:     string(f.Kind),
		Token:      string(f.Token),
		Width:      f.Bounds.W,
		Height:     f.Bounds.H,
		Background: f.Background.Hex(),
		Settings:   f.Settings,
		Glyphs:     make([]jsonGlyph, 0, len(f.Placements)),
		Dropped:    f.Dropped,
		Degenerate: f.Degenerate,
	}
	if f.Path != nil {
		out.Path = &jsonPath{
			Data:   f.Path.SVGData(),
			Closed: f.Path.IsClosed(),
			Length: f.Path.Length(),
			Color:  f.PathColor.Hex(),
			Shown:  f.ShowPath,
		}
	}
	for _, p := range f.Placements {
		out.Glyphs = append(out.Glyphs, jsonGlyph{
			Text:       p.Text,
			X:          p.Position.X,
			Y:          p.Position.Y,
			Rotation:   p.Rotation,
			Anchor:     string(p.Anchor),
			FontFamily: p.Style.FontFamily,
			FontSize:   p.Style.FontSize,
			FontWeight: p.Style.FontWeight,
			FontWidth:  p.Style.WidthScale() * 100,
			Fill:       p.Style.Fill.Hex(),
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
