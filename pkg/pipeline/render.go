package pipeline

import (
	"context"

	"github.com/matzehuels/seedglyph/pkg/errors"
	"github.com/matzehuels/seedglyph/pkg/render"
	"github.com/matzehuels/seedglyph/pkg/render/sink"
	"github.com/matzehuels/seedglyph/pkg/sketch"
)

// Render encodes f in one format.
func Render(ctx context.Context, f sketch.Frame, format render.Format, opts Options) ([]byte, error) {
	var svgOpts []sink.SVGOption
	if opts.EmbedFont {
		svgOpts = append(svgOpts, sink.WithEmbeddedFont())
	}

	switch format {
	case render.FormatSVG:
		return sink.RenderSVG(f, svgOpts...), nil
	case render.FormatPNG:
		scale := opts.Scale
		if scale == 0 {
			scale = DefaultScale
		}
		return sink.RenderPNG(f, sink.WithScale(scale))
	case render.FormatPDF:
		return sink.RenderPDF(ctx, f, sink.WithPDFSVGOptions(svgOpts...))
	case render.FormatJSON:
		return sink.RenderJSON(f)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
}

// RenderAll encodes f in every format of opts.
func RenderAll(ctx context.Context, f sketch.Frame, opts Options) (map[render.Format][]byte, error) {
	artifacts := make(map[render.Format][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := Render(ctx, f, format, opts)
		if err != nil {
			return nil, renderError(format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// renderError keeps the code of err so callers can tell a missing converter
// from a bad request.
func renderError(format render.Format, err error) error {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeRenderFailed
	}
	return errors.Wrap(code, err, "render %s", format)
}
