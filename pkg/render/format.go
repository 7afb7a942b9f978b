package render

import (
	"fmt"
	"strings"

	"github.com/matzehuels/seedglyph/pkg/errors"
)

// Format is an output format.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatPDF  Format = "pdf"
	FormatJSON Format = "json"
)

// Formats lists the supported formats in preference order.
var Formats = []Format{FormatSVG, FormatPNG, FormatPDF, FormatJSON}

// Ext returns the file extension, without the dot.
func (f Format) Ext() string { return string(f) }

// ContentType returns the MIME type served for f.
func (f Format) ContentType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	case FormatJSON:
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

// ParseFormat resolves a single format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be svg, png, pdf or json)", s)
}

// ParseFormats parses a comma-separated format list, dropping duplicates.
// An empty list selects SVG.
func ParseFormats(s string) ([]Format, error) {
	if strings.TrimSpace(s) == "" {
		return []Format{FormatSVG}, nil
	}
	seen := make(map[Format]bool)
	var out []Format
	for _, part := range strings.Split(s, ",") {
		f, err := ParseFormat(part)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out, nil
}

// Filename returns the export name of a rendered sketch:
// <sketch>_<token>.<ext>.
func Filename(sketch, token string, f Format) string {
	return fmt.Sprintf("%s_%s.%s", sketch, token, f.Ext())
}
