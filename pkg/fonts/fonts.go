// Package fonts provides the bundled typefaces used to measure and rasterize
// glyphs.
//
// The faces are the Go fonts shipped with golang.org/x/image, so measuring
// and PNG rendering work without any system fonts installed. Vector output
// names the LLAL-linear family and embeds the bundled face as a fallback.
package fonts

import (
	"encoding/base64"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/matzehuels/seedglyph/pkg/errors"
	"github.com/matzehuels/seedglyph/pkg/glyph"
)

// FallbackFontFamily is the CSS font-family list written into SVG output.
const FallbackFontFamily = `'LLAL-linear', 'Go', 'Helvetica Neue', Arial, sans-serif`

// EmbeddedFamily is the @font-face name of the embedded regular face.
const EmbeddedFamily = "Go"

// measureSize is the size faces are measured at; widths scale linearly.
const measureSize = 100

// FamilyForWidth maps a font width in percent to a named LLAL-linear
// variant. Widths other than the four named ones use the regular variant.
func FamilyForWidth(width float64) string {
	switch width {
	case 50:
		return "LLAL-linear-condensed"
	case 150:
		return "LLAL-linear-extended"
	case 200:
		return "LLAL-linear-expanded"
	default:
		return "LLAL-linear-regular"
	}
}

// TTF returns the raw font data for weight.
func TTF(weight string) []byte {
	switch weight {
	case glyph.WeightBold:
		return gobold.TTF
	case glyph.WeightMedium:
		return gomedium.TTF
	default:
		return goregular.TTF
	}
}

// Cache for the base64-encoded regular face (computed once on first access).
var (
	regularBase64     string
	regularBase64Once sync.Once
)

// RegularBase64 returns the regular face as a base64 string for @font-face
// embedding. The result is cached after first computation.
func RegularBase64() string {
	regularBase64Once.Do(func() {
		regularBase64 = base64.StdEncoding.EncodeToString(goregular.TTF)
	})
	return regularBase64
}

type faceKey struct {
	weight string
	size   float64
}

// Library parses the bundled fonts lazily and caches faces by weight and
// size. It is safe for concurrent use and implements glyph.Measurer.
type Library struct {
	mu     sync.Mutex
	parsed map[string]*opentype.Font
	faces  map[faceKey]font.Face
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{
		parsed: make(map[string]*opentype.Font),
		faces:  make(map[faceKey]font.Face),
	}
}

var (
	defaultLibrary     *Library
	defaultLibraryOnce sync.Once
)

// Default returns the process-wide library.
func Default() *Library {
	defaultLibraryOnce.Do(func() { defaultLibrary = NewLibrary() })
	return defaultLibrary
}

func normalizeWeight(weight string) string {
	switch weight {
	case glyph.WeightBold, glyph.WeightMedium:
		return weight
	default:
		return glyph.WeightNormal
	}
}

// Face returns a face for weight at size pixels (72 DPI).
func (l *Library) Face(weight string, size float64) (font.Face, error) {
	if !(size > 0) || math.IsInf(size, 0) {
		return nil, errors.New(errors.ErrCodeInvalidSettings, "font size must be positive, got %v", size)
	}
	key := faceKey{normalizeWeight(weight), size}

	l.mu.Lock()
	defer l.mu.Unlock()

	if f, ok := l.faces[key]; ok {
		return f, nil
	}
	otf, ok := l.parsed[key.weight]
	if !ok {
		var err error
		otf, err = opentype.Parse(TTF(key.weight))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse bundled font")
		}
		l.parsed[key.weight] = otf
	}
	f, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create font face")
	}
	l.faces[key] = f
	return f, nil
}

// MeasureText returns the advance width of text in style, including pair
// kerning, scaled by the style's font width.
func (l *Library) MeasureText(text string, style glyph.Style) float64 {
	if text == "" || !(style.FontSize > 0) {
		return 0
	}
	face, err := l.Face(style.FontWeight, measureSize)
	if err != nil {
		// Bundled fonts always parse; keep measuring with a nominal half em.
		return float64(len([]rune(text))) * style.FontSize * 0.5 * style.WidthScale()
	}

	l.mu.Lock()
	adv := font.MeasureString(face, text)
	l.mu.Unlock()

	w := float64(adv) / 64
	return w * style.FontSize / measureSize * style.WidthScale()
}

// Close releases all cached faces.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for k, f := range l.faces {
		_ = f.Close()
		delete(l.faces, k)
	}
	return nil
}

var _ glyph.Measurer = (*Library)(nil)
