package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/seedglyph/pkg/cache"
	"github.com/matzehuels/seedglyph/pkg/fonts"
	"github.com/matzehuels/seedglyph/pkg/geom"
	"github.com/matzehuels/seedglyph/pkg/glyph"
	"github.com/matzehuels/seedglyph/pkg/observability"
	"github.com/matzehuels/seedglyph/pkg/render"
	"github.com/matzehuels/seedglyph/pkg/sketch"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it so the caching logic lives in one place.
//
// The Runner holds no per-run state. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Cache    cache.Cache
	Keyer    cache.Keyer
	Logger   *log.Logger
	Measurer glyph.Measurer
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// Text is measured with the shared bundled font library.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:    c,
		Keyer:    keyer,
		Logger:   logger,
		Measurer: fonts.Default(),
	}
}

// Execute runs the complete resolve → generate → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	generateStart := time.Now()
	hooks.OnGenerateStart(ctx, string(opts.Kind()), opts.Token)
	inst, err := r.Load(opts)
	if err != nil {
		hooks.OnGenerateComplete(ctx, string(opts.Kind()), 0, time.Since(generateStart), err)
		return nil, err
	}
	frame := inst.Frame()
	result := &Result{
		Token: inst.Token(),
		Fresh: inst.Fresh(),
		Frame: frame,
		Stats: Stats{
			Placements:   len(frame.Placements),
			Dropped:      len(frame.Dropped),
			GenerateTime: time.Since(generateStart),
		},
	}
	hooks.OnGenerateComplete(ctx, string(frame.Kind), result.Stats.Placements, result.Stats.GenerateTime, nil)

	if frame.Degenerate {
		opts.Logger.Warn("path too short to carry text", "sketch", frame.Kind, "seed", frame.Token)
	}
	opts.Logger.Info("generated frame",
		"sketch", frame.Kind,
		"seed", result.Token,
		"fresh", result.Fresh,
		"glyphs", result.Stats.Placements,
		"duration", result.Stats.GenerateTime)

	formats := formatNames(opts.Formats)
	renderStart := time.Now()
	hooks.OnRenderStart(ctx, formats)
	artifacts, hits, err := r.RenderWithCacheInfo(ctx, frame, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheInfo = CacheInfo{Hits: hits, RenderHit: hits == len(opts.Formats)}

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hits,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load resolves the token and settings of opts and generates the first
// frame.
func (r *Runner) Load(opts Options) (*sketch.Instance, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	m := r.Measurer
	if m == nil {
		m = fonts.Default()
	}
	return sketch.Load(sketch.Options{
		Kind:               opts.Kind(),
		Token:              opts.Token,
		Overrides:          opts.Settings,
		Bounds:             geom.NewRect(0, 0, opts.Width, opts.Height),
		Measurer:           m,
		Entropy:            opts.Entropy,
		FallbackOnBadToken: opts.FallbackOnBadToken,
	})
}

// RenderWithCacheInfo renders every format of opts, serving what it can
// from cache, and returns how many formats were cache hits. Cache failures
// are logged and never fail the run.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, f sketch.Frame, opts Options) (map[render.Format][]byte, int, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, 0, err
	}

	settingsHash, err := SettingsHash(f.Settings)
	if err != nil {
		return nil, 0, err
	}

	hooks := observability.Cache()
	artifacts := make(map[render.Format][]byte, len(opts.Formats))
	hits := 0
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(string(f.Kind), string(f.Token), settingsHash, opts.ArtifactKeyOpts(format))

		if !opts.Refresh {
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				opts.Logger.Warn("cache read failed", "format", format, "err", err)
			} else if hit {
				hooks.OnCacheHit(ctx, string(format))
				artifacts[format] = data
				hits++
				continue
			}
			hooks.OnCacheMiss(ctx, string(format))
		}

		data, err := Render(ctx, f, format, opts)
		if err != nil {
			return nil, hits, renderError(format, err)
		}
		artifacts[format] = data

		if err := r.Cache.Set(ctx, key, data, cache.ArtifactTTL); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "err", err)
		} else {
			hooks.OnCacheSet(ctx, string(format), len(data))
		}
	}
	return artifacts, hits, nil
}

// SettingsHash is the cache identity of effective settings.
func SettingsHash(s sketch.Settings) (string, error) {
	data, err := sketch.EncodeSettings(s)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func formatNames(formats []render.Format) []string {
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = string(f)
	}
	return out
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
