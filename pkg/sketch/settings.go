package sketch

import (
	"bytes"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/seedglyph/pkg/errors"
	"github.com/matzehuels/seedglyph/pkg/pattern"
	"github.com/matzehuels/seedglyph/pkg/seed"
)

// PathStyle selects the path text is set along.
type PathStyle string

const (
	PathCurve  PathStyle = "curve"
	PathCircle PathStyle = "circle"
	PathSpiral PathStyle = "spiral"
)

// Named font widths, in percent.
const (
	WidthCondensed = 50
	WidthRegular   = 100
	WidthExtended  = 150
	WidthExpanded  = 200
)

// TextPathSettings configure the text-path sketch.
type TextPathSettings struct {
	Text            string    `toml:"text" json:"text"`
	FontSize        float64   `toml:"font_size" json:"font_size"`
	FontWidth       float64   `toml:"font_width" json:"font_width"`
	ShowPath        bool      `toml:"show_path" json:"show_path"`
	PathStyle       PathStyle `toml:"path_style" json:"path_style"`
	CurveComplexity int       `toml:"curve_complexity" json:"curve_complexity"`
	SpiralTurns     float64   `toml:"spiral_turns" json:"spiral_turns"`
	PathColor       string    `toml:"path_color" json:"path_color"`
	TextColor       string    `toml:"text_color" json:"text_color"`
}

// DefaultTextPathSettings returns the fixed text-path defaults. They draw
// nothing from the token; the token shapes the curve instead.
func DefaultTextPathSettings() TextPathSettings {
	return TextPathSettings{
		Text:            pattern.DefaultText,
		FontSize:        18,
		FontWidth:       WidthRegular,
		ShowPath:        true,
		PathStyle:       PathCurve,
		CurveComplexity: 3,
		SpiralTurns:     3,
		PathColor:       "#ff0000",
		TextColor:       "#000000",
	}
}

// Validate rejects settings the path builders cannot honour.
func (s TextPathSettings) Validate() error {
	if err := errors.ValidateText("text", s.Text); err != nil {
		return err
	}
	if err := errors.ValidateRange("font_size", s.FontSize, 8, 48); err != nil {
		return err
	}
	switch s.FontWidth {
	case WidthCondensed, WidthRegular, WidthExtended, WidthExpanded:
	default:
		return errors.New(errors.ErrCodeInvalidSettings, "font_width must be one of 50, 100, 150, 200, got %v", s.FontWidth)
	}
	if err := errors.ValidateOneOf("path_style", string(s.PathStyle),
		string(PathCurve), string(PathCircle), string(PathSpiral)); err != nil {
		return err
	}
	if err := errors.ValidateRange("curve_complexity", float64(s.CurveComplexity), 2, 8); err != nil {
		return err
	}
	if err := errors.ValidateRange("spiral_turns", s.SpiralTurns, 1, 10); err != nil {
		return err
	}
	if _, err := parseColor("path_color", s.PathColor); err != nil {
		return err
	}
	_, err := parseColor("text_color", s.TextColor)
	return err
}

func parseColor(field, hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, errors.New(errors.ErrCodeInvalidSettings, "%s must be a #rrggbb colour, got %q", field, hex)
	}
	return c, nil
}

// Settings is the settings snapshot of one sketch. Only the section of the
// selected kind is set.
type Settings struct {
	Kind     Kind                      `toml:"sketch" json:"sketch"`
	Firework *pattern.FireworkSettings `toml:"firework,omitempty" json:"firework,omitempty"`
	Arc      *pattern.ArcSettings      `toml:"arc,omitempty" json:"arc,omitempty"`
	TextPath *TextPathSettings         `toml:"text_path,omitempty" json:"text_path,omitempty"`
}

// Defaults draws the default settings of kind from r. Firework and arc
// defaults consume draws; text-path defaults are fixed.
func Defaults(kind Kind, r *seed.Random) (Settings, error) {
	s := Settings{Kind: kind}
	switch kind {
	case KindFirework:
		fw := pattern.DefaultFireworkSettings(r)
		s.Firework = &fw
	case KindArc:
		arc := pattern.DefaultArcSettings(r)
		s.Arc = &arc
	case KindTextPath:
		tp := DefaultTextPathSettings()
		s.TextPath = &tp
	default:
		return Settings{}, errors.New(errors.ErrCodeInvalidSketch, "unknown sketch %q", kind)
	}
	return s, nil
}

// DefaultsForToken derives the default settings of kind for tok.
func DefaultsForToken(kind Kind, tok seed.Token) (Settings, error) {
	r, err := seed.FromToken(tok)
	if err != nil {
		return Settings{}, err
	}
	return Defaults(kind, r)
}

// Validate checks the section of the selected kind.
func (s Settings) Validate() error {
	switch s.Kind {
	case KindFirework:
		if s.Firework == nil {
			return errors.New(errors.ErrCodeInvalidSettings, "missing [firework] settings")
		}
		return s.Firework.Validate()
	case KindArc:
		if s.Arc == nil {
			return errors.New(errors.ErrCodeInvalidSettings, "missing [arc] settings")
		}
		return s.Arc.Validate()
	case KindTextPath:
		if s.TextPath == nil {
			return errors.New(errors.ErrCodeInvalidSettings, "missing [text_path] settings")
		}
		return s.TextPath.Validate()
	default:
		return errors.New(errors.ErrCodeInvalidSketch, "unknown sketch %q", s.Kind)
	}
}

// Clone returns a deep copy.
func (s Settings) Clone() Settings {
	out := Settings{Kind: s.Kind}
	if s.Firework != nil {
		fw := *s.Firework
		out.Firework = &fw
	}
	if s.Arc != nil {
		arc := *s.Arc
		out.Arc = &arc
	}
	if s.TextPath != nil {
		tp := *s.TextPath
		out.TextPath = &tp
	}
	return out
}

// PeekKind returns the sketch named by the top-level "sketch" key of a TOML
// settings document, or "" when the key is absent.
func PeekKind(data []byte) (Kind, error) {
	var head struct {
		Sketch string `toml:"sketch"`
	}
	if _, err := toml.Decode(string(data), &head); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidSettings, err, "parse settings")
	}
	if head.Sketch == "" {
		return "", nil
	}
	return ParseKind(head.Sketch)
}

// DecodeSettings overlays a TOML document on base. Keys absent from data
// keep their base values; unknown keys are rejected. Sections for other
// sketches are dropped.
func DecodeSettings(data []byte, base Settings) (Settings, error) {
	out := base.Clone()
	md, err := toml.Decode(string(data), &out)
	if err != nil {
		return Settings{}, errors.Wrap(errors.ErrCodeInvalidSettings, err, "parse settings")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Settings{}, errors.New(errors.ErrCodeInvalidSettings, "unknown settings: %s", strings.Join(keys, ", "))
	}
	if out.Kind != base.Kind {
		return Settings{}, errors.New(errors.ErrCodeInvalidSettings,
			"settings are for sketch %q, not %q", out.Kind, base.Kind)
	}

	switch out.Kind {
	case KindFirework:
		out.Arc, out.TextPath = nil, nil
	case KindArc:
		out.Firework, out.TextPath = nil, nil
	case KindTextPath:
		out.Firework, out.Arc = nil, nil
	}
	return out, nil
}

// EncodeSettings renders s as a TOML document.
func EncodeSettings(s Settings) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode settings")
	}
	return buf.Bytes(), nil
}
