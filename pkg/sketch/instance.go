package sketch

import (
	"github.com/matzehuels/seedglyph/pkg/errors"
	"github.com/matzehuels/seedglyph/pkg/geom"
	"github.com/matzehuels/seedglyph/pkg/glyph"
	"github.com/matzehuels/seedglyph/pkg/seed"
)

// Options configure Load.
type Options struct {
	Kind Kind
	// Token is the requested token; empty asks for a fresh one.
	Token string
	// Overrides is an optional TOML document applied over the defaults.
	Overrides []byte
	Bounds    geom.Rect
	Measurer  glyph.Measurer
	// Entropy manufactures fresh tokens. Defaults to seed.SystemEntropy.
	Entropy seed.Entropy
	// FallbackOnBadToken replaces a malformed token with a fresh one
	// instead of failing.
	FallbackOnBadToken bool
}

// Instance is a loaded sketch. It is not safe for concurrent use.
type Instance struct {
	bounds   geom.Rect
	measurer glyph.Measurer
	entropy  seed.Entropy

	token    seed.Token
	fresh    bool
	settings Settings
	frame    Frame
}

// Load resolves the token, derives the settings and generates the first
// frame.
func Load(opts Options) (*Instance, error) {
	if opts.Measurer == nil {
		return nil, errors.New(errors.ErrCodeInternal, "sketch: no measurer")
	}
	if opts.Entropy == nil {
		opts.Entropy = seed.SystemEntropy{}
	}
	kind := opts.Kind
	if kind == "" {
		kind = DefaultKind
	}
	if _, err := Lookup(kind); err != nil {
		return nil, err
	}

	var (
		tok   seed.Token
		fresh bool
		err   error
	)
	if opts.Token != "" && !opts.FallbackOnBadToken {
		tok, err = seed.ParseToken(opts.Token)
	} else {
		tok, fresh, err = seed.Resolve(opts.Token, opts.Entropy)
	}
	if err != nil {
		return nil, err
	}

	s, err := DefaultsForToken(kind, tok)
	if err != nil {
		return nil, err
	}
	if len(opts.Overrides) > 0 {
		if s, err = DecodeSettings(opts.Overrides, s); err != nil {
			return nil, err
		}
	}

	frame, err := Generate(tok, s, opts.Bounds, opts.Measurer)
	if err != nil {
		return nil, err
	}
	return &Instance{
		bounds:   opts.Bounds,
		measurer: opts.Measurer,
		entropy:  opts.Entropy,
		token:    tok,
		fresh:    fresh,
		settings: s,
		frame:    frame,
	}, nil
}

// Kind returns the sketch kind.
func (i *Instance) Kind() Kind { return i.settings.Kind }

// Token returns the current token.
func (i *Instance) Token() seed.Token { return i.token }

// Fresh reports whether the current token was manufactured rather than
// requested.
func (i *Instance) Fresh() bool { return i.fresh }

// Settings returns a copy of the current settings.
func (i *Instance) Settings() Settings { return i.settings.Clone() }

// Frame returns the last generated frame.
func (i *Instance) Frame() Frame { return i.frame }

// Update regenerates with s. On failure the previous settings and frame
// stay in place.
func (i *Instance) Update(s Settings) error {
	if s.Kind != i.settings.Kind {
		return errors.New(errors.ErrCodeInvalidSettings, "settings are for sketch %q, not %q", s.Kind, i.settings.Kind)
	}
	frame, err := Generate(i.token, s, i.bounds, i.measurer)
	if err != nil {
		return err
	}
	i.settings = s.Clone()
	i.frame = frame
	return nil
}

// Override applies a TOML document over the current settings and
// regenerates.
func (i *Instance) Override(data []byte) error {
	s, err := DecodeSettings(data, i.settings)
	if err != nil {
		return err
	}
	return i.Update(s)
}

// Reseed switches to a fresh token with fresh defaults.
func (i *Instance) Reseed() error {
	tok, err := seed.NewToken(i.entropy)
	if err != nil {
		return err
	}
	return i.reset(tok, true)
}

// SetToken switches to tok with its defaults.
func (i *Instance) SetToken(s string) error {
	tok, err := seed.ParseToken(s)
	if err != nil {
		return err
	}
	return i.reset(tok, false)
}

func (i *Instance) reset(tok seed.Token, fresh bool) error {
	s, err := DefaultsForToken(i.settings.Kind, tok)
	if err != nil {
		return err
	}
	frame, err := Generate(tok, s, i.bounds, i.measurer)
	if err != nil {
		return err
	}
	i.token, i.fresh, i.settings, i.frame = tok, fresh, s, frame
	return nil
}

// Resize regenerates the current token and settings for new bounds.
func (i *Instance) Resize(bounds geom.Rect) error {
	frame, err := Generate(i.token, i.settings, bounds, i.measurer)
	if err != nil {
		return err
	}
	i.bounds = bounds
	i.frame = frame
	return nil
}
