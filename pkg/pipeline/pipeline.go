// Package pipeline runs the resolve → generate → render flow shared by the
// CLI and the HTTP service.
//
// # Stages
//
//  1. Resolve: pick the sketch, resolve the seed token (fresh when empty)
//     and derive the settings from the token plus any TOML overrides
//  2. Generate: lay out the frame for the canvas
//  3. Render: encode the frame in each requested format, through the
//     artifact cache
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Sketch:  "arc",
//	    Token:   "0xA1B2C3D4",
//	    Formats: []render.Format{render.FormatSVG},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts[render.FormatSVG]
package pipeline

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/seedglyph/pkg/cache"
	"github.com/matzehuels/seedglyph/pkg/errors"
	"github.com/matzehuels/seedglyph/pkg/render"
	"github.com/matzehuels/seedglyph/pkg/seed"
	"github.com/matzehuels/seedglyph/pkg/sketch"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 600.0

	// MaxDimension bounds either canvas side.
	MaxDimension = 8192.0

	// DefaultScale is the PNG resolution multiplier.
	DefaultScale = 2.0

	// MaxScale bounds the PNG resolution multiplier.
	MaxScale = 8.0
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Resolve options
	Sketch   string `json:"sketch,omitempty"`
	Token    string `json:"seed,omitempty"`
	Settings []byte `json:"-"` // TOML document applied over the token's defaults

	// Generate options
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Render options
	Formats   []render.Format `json:"formats,omitempty"`
	Scale     float64         `json:"scale,omitempty"`
	EmbedFont bool            `json:"embed_font,omitempty"`
	Refresh   bool            `json:"refresh,omitempty"` // skip cache reads

	// Runtime options (not serialized)
	FallbackOnBadToken bool         `json:"-"`
	Entropy            seed.Entropy `json:"-"`
	Logger             *log.Logger  `json:"-"`

	kind      sketch.Kind
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Token seed.Token
	// Fresh reports that Token was manufactured rather than requested.
	Fresh bool
	Frame sketch.Frame
	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[render.Format][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Placements   int
	Dropped      int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks artifact cache hits.
type CacheInfo struct {
	// Hits counts formats served from cache.
	Hits int
	// RenderHit reports that every artifact came from cache.
	RenderHit bool
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	kind, err := sketch.ParseKind(o.Sketch)
	if err != nil {
		return err
	}
	o.kind = kind
	o.Sketch = string(kind)

	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if err := validateDimension("width", o.Width); err != nil {
		return err
	}
	if err := validateDimension("height", o.Height); err != nil {
		return err
	}

	if len(o.Formats) == 0 {
		o.Formats = []render.Format{render.FormatSVG}
	}
	for _, f := range o.Formats {
		if _, err := render.ParseFormat(string(f)); err != nil {
			return err
		}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if !(o.Scale > 0) || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be in (0, %v], got %v", MaxScale, o.Scale)
	}

	if o.Entropy == nil {
		o.Entropy = seed.SystemEntropy{}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

func validateDimension(name string, v float64) error {
	if math.IsNaN(v) || v < 1 || v > MaxDimension {
		return errors.New(errors.ErrCodeInvalidInput, "%s must be between 1 and %v, got %v", name, MaxDimension, v)
	}
	return nil
}

// Kind returns the resolved sketch kind. Valid after ValidateAndSetDefaults.
func (o *Options) Kind() sketch.Kind { return o.kind }

// ArtifactKeyOpts returns cache key options for one format.
func (o *Options) ArtifactKeyOpts(f render.Format) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format: string(f),
		Width:  o.Width,
		Height: o.Height,
	}
	switch f {
	case render.FormatPNG:
		opts.Scale = o.Scale
	case render.FormatSVG, render.FormatPDF:
		opts.EmbedFont = o.EmbedFont
	}
	return opts
}

// String summarizes the options for log lines.
func (o *Options) String() string {
	return fmt.Sprintf("%s %s %vx%v %v", o.Sketch, o.Token, o.Width, o.Height, o.Formats)
}
