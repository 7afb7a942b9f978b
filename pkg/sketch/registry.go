// Package sketch ties tokens, settings and generators into renderable
// frames.
//
// A sketch is one of the registered kinds: firework rays, the arc family or
// text along a path. Every frame is a pure function of (kind, token,
// settings, bounds): generation rebuilds the random stream from the token,
// replays the seed-derived defaults and only then lays out glyphs, so a
// settings change never perturbs the draws a token stands for.
//
// # Lifecycle
//
// An [Instance] holds the live state of one sketch: its token, its settings
// snapshot and the last good frame. Update and Reseed replace that state
// atomically and leave it untouched when they fail.
package sketch

import (
	"github.com/matzehuels/seedglyph/pkg/errors"
)

// Kind names a registered sketch.
type Kind string

const (
	KindFirework Kind = "firework"
	KindArc      Kind = "arc"
	KindTextPath Kind = "text-path"
)

// DefaultKind is the sketch used when none is requested.
const DefaultKind = KindFirework

// Info describes a registered sketch.
type Info struct {
	Kind        Kind   `json:"kind"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var registry = []Info{
	{
		Kind:        KindFirework,
		Name:        "Firework",
		Description: "Rays of text growing outward from the centre, each copy larger than the last",
	},
	{
		Kind:        KindArc,
		Name:        "Arc Text",
		Description: "Text arranged on concentric arcs, a spiral or a stacked cone",
	},
	{
		Kind:        KindTextPath,
		Name:        "Text Path",
		Description: "Text set along a random curve, a circle or a spiral with kerned spacing",
	},
}

// Registry returns the registered sketches in display order.
func Registry() []Info {
	return append([]Info(nil), registry...)
}

// Kinds returns the registered kinds as strings, for flag help and
// validation messages.
func Kinds() []string {
	out := make([]string, len(registry))
	for i, info := range registry {
		out[i] = string(info.Kind)
	}
	return out
}

// ParseKind resolves a sketch name. The empty string selects DefaultKind.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return DefaultKind, nil
	}
	for _, info := range registry {
		if string(info.Kind) == s {
			return info.Kind, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidSketch, "unknown sketch %q", s)
}

// Lookup returns the registry entry for k.
func Lookup(k Kind) (Info, error) {
	for _, info := range registry {
		if info.Kind == k {
			return info, nil
		}
	}
	return Info{}, errors.New(errors.ErrCodeInvalidSketch, "unknown sketch %q", k)
}
