// Package render holds the format plumbing shared by all sinks.
//
// # Formats
//
// A rendered sketch is exported as SVG, PNG, PDF or JSON. [ParseFormats]
// reads the comma-separated lists accepted by the CLI, and [Filename] builds
// the shareable export name, which carries the token:
//
//	render.Filename("firework", "0x3e07f56d", render.FormatSVG)
//	// firework_0x3e07f56d.svg
//
// # Format Conversion
//
// [ToPDF] converts any SVG to PDF using the external rsvg-convert tool
// (from librsvg). SVG and PNG are produced natively by the [sink]
// subpackage.
//
//	svg, err := sink.RenderSVG(frame)
//	pdf, err := render.ToPDF(ctx, svg)
//
// [sink]: github.com/matzehuels/seedglyph/pkg/render/sink
package render
