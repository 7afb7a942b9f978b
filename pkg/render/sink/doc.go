// Package sink renders generated frames into output formats.
//
// # Overview
//
// A "sink" transforms a [sketch.Frame] into bytes. This package provides:
//
//   - SVG: vector output written with github.com/ajstarks/svgo
//   - PNG: raster output drawn with github.com/fogleman/gg
//   - PDF: print-ready output (requires rsvg-convert)
//   - JSON: the placed glyphs, settings and token for external tools
//
// Every placement becomes a text element translated to its position and
// rotated about it, so SVG and PNG agree on layout. Displayed paths are
// stroked underneath the text.
//
//	svg := sink.RenderSVG(frame, sink.WithEmbeddedFont())
//	png, err := sink.RenderPNG(frame, sink.WithScale(2))
//	pdf, err := sink.RenderPDF(ctx, frame)
//
// PDF conversion requires librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [sketch.Frame]: github.com/matzehuels/seedglyph/pkg/sketch.Frame
package sink
