// Package pkg provides the core libraries for Seedglyph generative text art.
//
// # Overview
//
// Seedglyph lays text out as fireworks, arcs and paths. Every picture is
// drawn from a short seed token ("0x" and eight hex digits, or a base58
// string), so the same token and settings always give the same picture.
// The pkg directory is organized into four main areas:
//
//  1. Randomness - [seed] turns a token into a deterministic generator
//  2. Layout - [geom], [glyph], [pattern] and [sketch] place glyphs
//  3. Output - [render] and [render/sink] write SVG, PNG, PDF and JSON
//  4. Orchestration - [pipeline] and [cache] run and memoize renders
//
// # Architecture
//
// The typical data flow through Seedglyph:
//
//	seed token
//	     ↓
//	[seed] package (sfc32 generator state)
//	     ↓
//	[sketch] package (default settings, overrides, frame generation)
//	     ↓
//	[render/sink] package (SVG/PNG/PDF/JSON)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/seedglyph/pkg/fonts"
//	    "github.com/matzehuels/seedglyph/pkg/geom"
//	    "github.com/matzehuels/seedglyph/pkg/render/sink"
//	    "github.com/matzehuels/seedglyph/pkg/sketch"
//	)
//
//	inst, err := sketch.Load(sketch.Options{
//	    Kind:     sketch.KindArc,
//	    Token:    "0xA1B2C3D4",
//	    Bounds:   geom.NewRect(0, 0, 800, 600),
//	    Measurer: fonts.Default(),
//	})
//	svg := sink.RenderSVG(inst.Frame())
//
// # Main Packages
//
// [seed] - Token parsing, the sfc32 generator and fresh-token manufacture.
//
// [geom] - Points, rectangles and cubic Bézier paths with arc-length
// sampling.
//
// [glyph] - Glyph styles, placements and path alignment with kerning.
//
// [fonts] - The bundled Go fonts, used both to measure and to rasterize.
//
// [pattern] - Firework rays and the arc family (concentric, spiral, cone).
//
// [sketch] - The sketch registry, TOML settings and frame generation.
//
// [render] - Output formats and SVG to PDF conversion.
//
// [pipeline] - Validated options and the cached generate → render runner
// shared by the CLI and the HTTP service.
//
// [cache] - File, Redis and no-op artifact caches.
//
// [observability] - Optional hooks for metrics and tracing.
//
// [errors] - Coded errors and settings validation.
//
// [seed]: github.com/matzehuels/seedglyph/pkg/seed
// [geom]: github.com/matzehuels/seedglyph/pkg/geom
// [glyph]: github.com/matzehuels/seedglyph/pkg/glyph
// [fonts]: github.com/matzehuels/seedglyph/pkg/fonts
// [pattern]: github.com/matzehuels/seedglyph/pkg/pattern
// [sketch]: github.com/matzehuels/seedglyph/pkg/sketch
// [render]: github.com/matzehuels/seedglyph/pkg/render
// [render/sink]: github.com/matzehuels/seedglyph/pkg/render/sink
// [pipeline]: github.com/matzehuels/seedglyph/pkg/pipeline
// [cache]: github.com/matzehuels/seedglyph/pkg/cache
// [observability]: github.com/matzehuels/seedglyph/pkg/observability
// [errors]: github.com/matzehuels/seedglyph/pkg/errors
package pkg
