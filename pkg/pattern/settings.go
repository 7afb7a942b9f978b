// Package pattern places repeated text directly in polar space.
//
// The arc family (concentric rings, spiral, cone) and the firework rays
// need no path: every placement is computed from the settings, the canvas
// centre and, for fills and rotation jitter, draws from a [seed.Random].
// Draw order is part of the output: the same token and the same settings
// always yield the same placements.
package pattern

import (
	"github.com/matzehuels/seedglyph/pkg/errors"
	"github.com/matzehuels/seedglyph/pkg/seed"
)

// DefaultText is the glyph text every sketch starts with.
const DefaultText = "LLAL"

// ArcPattern selects the arc-family layout.
type ArcPattern string

const (
	PatternConcentric ArcPattern = "concentric"
	PatternSpiral     ArcPattern = "spiral"
	PatternCone       ArcPattern = "cone"
)

// Direction sets the sign of the glyph rotation in the arc family.
type Direction string

const (
	Clockwise        Direction = "clockwise"
	Counterclockwise Direction = "counterclockwise"
)

// ArcSettings configure the arc family.
type ArcSettings struct {
	Arcs           int        `toml:"arcs" json:"arcs"`
	Radius         float64    `toml:"radius" json:"radius"`
	RadiusSpacing  float64    `toml:"radius_spacing" json:"radius_spacing"`
	FontSize       float64    `toml:"font_size" json:"font_size"`
	TextSpacing    float64    `toml:"text_spacing" json:"text_spacing"`
	StartAngle     float64    `toml:"start_angle" json:"start_angle"`
	ArcSpan        float64    `toml:"arc_span" json:"arc_span"`
	Text           string     `toml:"text" json:"text"`
	Pattern        ArcPattern `toml:"pattern" json:"pattern"`
	ColorMode      ColorMode  `toml:"color_mode" json:"color_mode"`
	Direction      Direction  `toml:"direction" json:"direction"`
	RandomRotation bool       `toml:"random_rotation" json:"random_rotation"`
	FontVariation  float64    `toml:"font_variation" json:"font_variation"`
}

// DefaultArcSettings draws arc settings from r. It consumes eight draws, in
// field order.
func DefaultArcSettings(r *seed.Random) ArcSettings {
	s := ArcSettings{}
	s.Arcs = r.Int(3, 8)
	s.Radius = float64(r.Int(80, 200))
	s.RadiusSpacing = float64(r.Int(30, 80))
	s.FontSize = float64(r.Int(16, 40))
	s.TextSpacing = float64(r.Int(15, 45))
	s.StartAngle = r.Float64() * 360
	s.ArcSpan = float64(r.Int(120, 360))
	s.Text = DefaultText
	s.Pattern = PatternConcentric
	s.ColorMode = ColorBlackWhite
	s.Direction = Clockwise
	s.RandomRotation = false
	s.FontVariation = float64(r.Int(50, 200))
	return s
}

// Validate rejects settings outside the ranges the arc family is drawn
// for. The bounds keep a render's glyph count and glyph size finite.
func (s ArcSettings) Validate() error {
	checks := []error{
		errors.ValidateRange("arcs", float64(s.Arcs), 1, 15),
		errors.ValidateRange("radius", s.Radius, 50, 300),
		errors.ValidateRange("radius_spacing", s.RadiusSpacing, 20, 100),
		errors.ValidateRange("font_size", s.FontSize, 10, 60),
		errors.ValidateRange("text_spacing", s.TextSpacing, 10, 80),
		errors.ValidateRange("start_angle", s.StartAngle, 0, 360),
		errors.ValidateRange("arc_span", s.ArcSpan, 60, 360),
		errors.ValidateRange("font_variation", s.FontVariation, 50, 200),
		errors.ValidateText("text", s.Text),
		errors.ValidateOneOf("pattern", string(s.Pattern),
			string(PatternConcentric), string(PatternSpiral), string(PatternCone)),
		validateColorMode(s.ColorMode),
		errors.ValidateOneOf("direction", string(s.Direction), string(Clockwise), string(Counterclockwise)),
	}
	return firstError(checks)
}

// FireworkSettings configure the firework rays.
type FireworkSettings struct {
	Rays          int       `toml:"rays" json:"rays"`
	Elements      int       `toml:"elements" json:"elements"`
	BaseFontSize  float64   `toml:"base_font_size" json:"base_font_size"`
	FontSizeScale float64   `toml:"font_size_scale" json:"font_size_scale"`
	BlanksPercent float64   `toml:"blanks_percent" json:"blanks_percent"`
	UseBlanks     bool      `toml:"use_blanks" json:"use_blanks"`
	Rotation      float64   `toml:"rotation" json:"rotation"`
	Text          string    `toml:"text" json:"text"`
	ColorMode     ColorMode `toml:"color_mode" json:"color_mode"`
}

// DefaultFireworkSettings draws firework settings from r in field order:
// rays, elements, base font size, scale, blank chance, rotation.
func DefaultFireworkSettings(r *seed.Random) FireworkSettings {
	s := FireworkSettings{}
	s.Rays = r.Int(5, 15)
	s.Elements = r.Int(3, 8)
	s.BaseFontSize = float64(r.Int(12, 30))
	s.FontSizeScale = 1.2 + r.Float64()*0.8
	s.BlanksPercent = float64(r.Int(10, 50))
	s.UseBlanks = true
	s.Rotation = r.Float64() * 360
	s.Text = DefaultText
	s.ColorMode = ColorBlackWhite
	return s
}

// Validate rejects settings outside the firework ranges. Font sizes grow
// geometrically along a ray, so elements and font_size_scale are tight.
func (s FireworkSettings) Validate() error {
	checks := []error{
		errors.ValidateRange("rays", float64(s.Rays), 3, 25),
		errors.ValidateRange("elements", float64(s.Elements), 2, 12),
		errors.ValidateRange("base_font_size", s.BaseFontSize, 8, 50),
		errors.ValidateRange("font_size_scale", s.FontSizeScale, 1, 3),
		errors.ValidateRange("blanks_percent", s.BlanksPercent, 0, 100),
		errors.ValidateRange("rotation", s.Rotation, 0, 360),
		errors.ValidateText("text", s.Text),
		validateColorMode(s.ColorMode),
	}
	return firstError(checks)
}

// Policy returns the colour policy the firework uses.
func (s FireworkSettings) Policy() ColorPolicy {
	return ColorPolicy{Mode: s.ColorMode, UseBlanks: s.UseBlanks, BlankPercent: s.BlanksPercent, Background: White}
}

func validateColorMode(m ColorMode) error {
	allowed := make([]string, len(ColorModes))
	for i, c := range ColorModes {
		allowed[i] = string(c)
	}
	return errors.ValidateOneOf("color_mode", string(m), allowed...)
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
