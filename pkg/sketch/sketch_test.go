package sketch

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/seedglyph/pkg/errors"
	"github.com/matzehuels/seedglyph/pkg/geom"
	"github.com/matzehuels/seedglyph/pkg/glyph"
	"github.com/matzehuels/seedglyph/pkg/pattern"
	"github.com/matzehuels/seedglyph/pkg/seed"
)

const testToken = seed.Token("0xA1B2C3D4")

var (
	canvas   = geom.NewRect(0, 0, 800, 600)
	measurer = glyph.TableMeasurer{Default: 0.6}
)

type fixedEntropy struct {
	now time.Time
	f   float64
}

func (e fixedEntropy) Now() time.Time   { return e.now }
func (e fixedEntropy) Float64() float64 { return e.f }

// countingEntropy yields a different draw on every call.
type countingEntropy struct{ n int }

func (e *countingEntropy) Now() time.Time { return time.UnixMilli(1700000000000) }
func (e *countingEntropy) Float64() float64 {
	e.n++
	return float64(e.n) / 1000
}

var fixed = fixedEntropy{now: time.UnixMilli(1700000000000), f: 0.5}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"", KindFirework, false},
		{"firework", KindFirework, false},
		{"arc", KindArc, false},
		{"text-path", KindTextPath, false},
		{"Firework", "", true},
		{"mandala", "", true},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidSketch) {
			t.Errorf("ParseKind(%q) error code = %s, want INVALID_SKETCH", tt.in, errors.GetCode(err))
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRegistry(t *testing.T) {
	reg := Registry()
	if diff := cmp.Diff([]string{"firework", "arc", "text-path"}, Kinds()); diff != "" {
		t.Errorf("Kinds mismatch (-want +got):\n%s", diff)
	}
	for _, info := range reg {
		if info.Name == "" || info.Description == "" {
			t.Errorf("sketch %q lacks a name or description", info.Kind)
		}
	}
	reg[0].Name = "mutated"
	if Registry()[0].Name == "mutated" {
		t.Error("Registry should return a copy")
	}
}

func TestDefaultsDrawCounts(t *testing.T) {
	tests := []struct {
		kind  Kind
		draws int
	}{
		{KindFirework, 6},
		{KindArc, 8},
		{KindTextPath, 0},
	}
	for _, tt := range tests {
		r, _ := seed.FromToken(testToken)
		if _, err := Defaults(tt.kind, r); err != nil {
			t.Fatalf("Defaults(%s): %v", tt.kind, err)
		}
		ref, _ := seed.FromToken(testToken)
		for i := 0; i < tt.draws; i++ {
			ref.Float64()
		}
		if r.State() != ref.State() {
			t.Errorf("Defaults(%s) should consume %d draws", tt.kind, tt.draws)
		}
	}

	if _, err := Defaults("mandala", seed.New(seed.State{})); !errors.Is(err, errors.ErrCodeInvalidSketch) {
		t.Errorf("Defaults(unknown) error = %v, want INVALID_SKETCH", err)
	}
}

func TestDecodeSettingsOverlay(t *testing.T) {
	base, err := DefaultsForToken(KindFirework, testToken)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeSettings([]byte("[firework]\nrays = 6\nfont_size_scale = 1.5\n"), base)
	if err != nil {
		t.Fatal(err)
	}

	want := base.Clone()
	want.Firework.Rays = 6
	want.Firework.FontSizeScale = 1.5
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DecodeSettings mismatch (-want +got):\n%s", diff)
	}
	if base.Firework.Rays != 5 {
		t.Errorf("DecodeSettings modified its base: rays = %d", base.Firework.Rays)
	}
}

func TestDecodeSettingsErrors(t *testing.T) {
	base, err := DefaultsForToken(KindFirework, testToken)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		doc  string
	}{
		{"syntax", "[firework\nrays = 6"},
		{"unknown key", "[firework]\nsparkle = true\n"},
		{"wrong type", "[firework]\nrays = \"six\"\n"},
		{"other sketch", "sketch = \"arc\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeSettings([]byte(tt.doc), base); !errors.Is(err, errors.ErrCodeInvalidSettings) {
				t.Errorf("DecodeSettings error = %v, want INVALID_SETTINGS", err)
			}
		})
	}
}

func TestDecodeSettingsDropsOtherSections(t *testing.T) {
	base, err := DefaultsForToken(KindTextPath, testToken)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeSettings([]byte("[text_path]\npath_style = \"circle\"\n[arc]\narcs = 4\n"), base)
	if err != nil {
		t.Fatal(err)
	}
	if got.Arc != nil {
		t.Error("arc section should be dropped for a text-path sketch")
	}
	if got.TextPath.PathStyle != PathCircle {
		t.Errorf("path_style = %q, want circle", got.TextPath.PathStyle)
	}
}

func TestEncodeSettings(t *testing.T) {
	s, err := DefaultsForToken(KindArc, testToken)
	if err != nil {
		t.Fatal(err)
	}
	data, err := EncodeSettings(s)
	if err != nil {
		t.Fatal(err)
	}
	doc := string(data)
	for _, want := range []string{`sketch = "arc"`, "[arc]", "arcs = 3", `pattern = "concentric"`} {
		if !strings.Contains(doc, want) {
			t.Errorf("encoded settings lack %q:\n%s", want, doc)
		}
	}
	if strings.Contains(doc, "[firework]") || strings.Contains(doc, "[text_path]") {
		t.Errorf("encoded settings carry unused sections:\n%s", doc)
	}

	back, err := DecodeSettings(data, s)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(s, back); diff != "" {
		t.Errorf("decoding the encoded defaults changed them (-want +got):\n%s", diff)
	}
}

func TestTextPathSettingsBounds(t *testing.T) {
	tests := []struct {
		field  string
		set    func(*TextPathSettings, float64)
		lo, hi float64
		step   float64
	}{
		{"font_size", func(s *TextPathSettings, v float64) { s.FontSize = v }, 8, 48, 1},
		{"curve_complexity", func(s *TextPathSettings, v float64) { s.CurveComplexity = int(v) }, 2, 8, 1},
		{"spiral_turns", func(s *TextPathSettings, v float64) { s.SpiralTurns = v }, 1, 10, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			for _, v := range []float64{tt.lo, tt.hi} {
				s := DefaultTextPathSettings()
				tt.set(&s, v)
				if err := s.Validate(); err != nil {
					t.Errorf("%s=%v: unexpected error %v", tt.field, v, err)
				}
			}
			for _, v := range []float64{tt.lo - tt.step, tt.hi + tt.step} {
				s := DefaultTextPathSettings()
				tt.set(&s, v)
				if err := s.Validate(); !errors.Is(err, errors.ErrCodeInvalidSettings) {
					t.Errorf("%s=%v: error = %v, want INVALID_SETTINGS", tt.field, v, err)
				}
			}
		})
	}
}

func TestPeekKind(t *testing.T) {
	if k, err := PeekKind([]byte("sketch = \"text-path\"\n")); err != nil || k != KindTextPath {
		t.Errorf("PeekKind = %q, %v", k, err)
	}
	if k, err := PeekKind([]byte("[arc]\narcs = 2\n")); err != nil || k != "" {
		t.Errorf("PeekKind without key = %q, %v", k, err)
	}
	if _, err := PeekKind([]byte("sketch = \"mandala\"\n")); !errors.Is(err, errors.ErrCodeInvalidSketch) {
		t.Errorf("PeekKind(unknown) error = %v", err)
	}
}

func TestTextPathSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TextPathSettings)
	}{
		{"odd width", func(s *TextPathSettings) { s.FontWidth = 120 }},
		{"bad style", func(s *TextPathSettings) { s.PathStyle = "zigzag" }},
		{"zero complexity", func(s *TextPathSettings) { s.CurveComplexity = 0 }},
		{"bad colour", func(s *TextPathSettings) { s.PathColor = "red" }},
		{"empty text", func(s *TextPathSettings) { s.Text = "" }},
	}
	if err := DefaultTextPathSettings().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultTextPathSettings()
			tt.mutate(&s)
			if err := s.Validate(); !errors.Is(err, errors.ErrCodeInvalidSettings) {
				t.Errorf("Validate() error = %v, want INVALID_SETTINGS", err)
			}
		})
	}
}

func TestFireworkScenario(t *testing.T) {
	inst, err := Load(Options{
		Kind:      KindFirework,
		Token:     string(testToken),
		Overrides: []byte("[firework]\nrays = 6\nelements = 3\nfont_size_scale = 1.5\n"),
		Bounds:    canvas,
		Measurer:  measurer,
	})
	if err != nil {
		t.Fatal(err)
	}
	f := inst.Frame()
	if len(f.Placements) != 18 {
		t.Fatalf("placements = %d, want 18", len(f.Placements))
	}
	rot := inst.Settings().Firework.Rotation
	if math.Abs(rot-210.09678723290563) > 1e-12 {
		t.Errorf("rotation = %v, want the seed-derived 210.0968", rot)
	}
	for k := 0; k < 6; k++ {
		p := f.Placements[k*3]
		if want := float64(k)*60 + rot; math.Abs(p.Rotation-want) > 1e-9 {
			t.Errorf("ray %d rotation = %v, want %v", k, p.Rotation, want)
		}
		if p.Position != canvas.Center() {
			t.Errorf("ray %d should start at the canvas centre", k)
		}
	}
}

func TestGenerateIgnoresSettingsForDraws(t *testing.T) {
	s, err := DefaultsForToken(KindFirework, testToken)
	if err != nil {
		t.Fatal(err)
	}
	a, err := Generate(testToken, s, canvas, measurer)
	if err != nil {
		t.Fatal(err)
	}

	changed := s.Clone()
	changed.Firework.Rays = 12
	b, err := Generate(testToken, changed, canvas, measurer)
	if err != nil {
		t.Fatal(err)
	}
	// The first fill draw follows the replayed defaults in both runs.
	if a.Placements[0].Style.Fill != b.Placements[0].Style.Fill {
		t.Error("changing the ray count shifted the random stream")
	}

	again, err := Generate(testToken, s, canvas, measurer)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a.Placements, again.Placements); diff != "" {
		t.Errorf("Generate is not reproducible:\n%s", diff)
	}
}

func TestGenerateTextPath(t *testing.T) {
	tests := []struct {
		style  PathStyle
		closed bool
	}{
		{PathCurve, false},
		{PathCircle, true},
		{PathSpiral, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			s, err := DefaultsForToken(KindTextPath, testToken)
			if err != nil {
				t.Fatal(err)
			}
			s.TextPath.PathStyle = tt.style
			f, err := Generate(testToken, s, canvas, measurer)
			if err != nil {
				t.Fatal(err)
			}
			if len(f.Placements) != 4 || len(f.Dropped) != 0 {
				t.Errorf("placements = %d, dropped = %v; want 4 and none", len(f.Placements), f.Dropped)
			}
			if f.Path == nil || f.Path.IsClosed() != tt.closed {
				t.Fatalf("path = %v, want closed=%v", f.Path, tt.closed)
			}
			if !f.ShowPath || f.PathColor.Hex() != "#ff0000" {
				t.Errorf("path display = %v %s", f.ShowPath, f.PathColor.Hex())
			}
			for _, p := range f.Placements {
				if p.Style.FontFamily != "LLAL-linear-regular" || p.Anchor != glyph.AnchorMiddle {
					t.Errorf("placement style = %+v anchor %s", p.Style, p.Anchor)
				}
			}
		})
	}
}

func TestGenerateDegeneratePath(t *testing.T) {
	s, err := DefaultsForToken(KindTextPath, testToken)
	if err != nil {
		t.Fatal(err)
	}
	tiny := geom.NewRect(0, 0, 40, 40)
	for _, style := range []PathStyle{PathCurve, PathCircle, PathSpiral} {
		s.TextPath.PathStyle = style
		f, err := Generate(testToken, s, tiny, measurer)
		if err != nil {
			t.Fatalf("%s: a degenerate path should not fail generation: %v", style, err)
		}
		if !f.Degenerate || len(f.Placements) != 0 || f.Path != nil {
			t.Errorf("%s: frame = degenerate %v, %d placements, path %v", style, f.Degenerate, len(f.Placements), f.Path)
		}
	}
}

func TestGenerateRejects(t *testing.T) {
	s, _ := DefaultsForToken(KindArc, testToken)
	if _, err := Generate(testToken, s, geom.NewRect(0, 0, 0, 600), measurer); !errors.Is(err, errors.ErrCodeInvalidSettings) {
		t.Errorf("zero-width canvas error = %v", err)
	}
	if _, err := Generate("0xbad0", s, canvas, measurer); !errors.Is(err, errors.ErrCodeMalformedToken) {
		t.Errorf("malformed token error = %v", err)
	}
	bad := s.Clone()
	bad.Arc.Arcs = -1
	if _, err := Generate(testToken, bad, canvas, measurer); !errors.Is(err, errors.ErrCodeInvalidSettings) {
		t.Errorf("invalid settings error = %v", err)
	}
}

func TestLoadTokens(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		fallback  bool
		want      seed.Token
		wantFresh bool
		wantCode  errors.Code
	}{
		{"requested", "0xA1B2C3D4", false, "0xA1B2C3D4", false, ""},
		{"empty gets fresh", "", false, "0x241fad65", true, ""},
		{"malformed strict", "0x1230", false, "", false, errors.ErrCodeMalformedToken},
		{"malformed fallback", "0x1230", true, "0x241fad65", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, err := Load(Options{
				Token:              tt.token,
				Bounds:             canvas,
				Measurer:           measurer,
				Entropy:            fixed,
				FallbackOnBadToken: tt.fallback,
			})
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Errorf("Load error = %v, want %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if inst.Token() != tt.want || inst.Fresh() != tt.wantFresh {
				t.Errorf("token = %s fresh=%v, want %s fresh=%v", inst.Token(), inst.Fresh(), tt.want, tt.wantFresh)
			}
			if inst.Kind() != KindFirework {
				t.Errorf("kind = %s, want firework", inst.Kind())
			}
		})
	}
}

func TestLoadRejectsUnknownSketch(t *testing.T) {
	_, err := Load(Options{Kind: "mandala", Bounds: canvas, Measurer: measurer, Entropy: fixed})
	if !errors.Is(err, errors.ErrCodeInvalidSketch) {
		t.Errorf("Load error = %v, want INVALID_SKETCH", err)
	}
}

func TestInstanceUpdateKeepsFrameOnError(t *testing.T) {
	inst, err := Load(Options{Kind: KindArc, Token: string(testToken), Bounds: canvas, Measurer: measurer})
	if err != nil {
		t.Fatal(err)
	}
	before := inst.Frame()

	bad := inst.Settings()
	bad.Arc.TextSpacing = 0
	if err := inst.Update(bad); !errors.Is(err, errors.ErrCodeInvalidSettings) {
		t.Fatalf("Update error = %v, want INVALID_SETTINGS", err)
	}
	if diff := cmp.Diff(before.Placements, inst.Frame().Placements); diff != "" {
		t.Errorf("failed update replaced the frame:\n%s", diff)
	}
	if inst.Settings().Arc.TextSpacing == 0 {
		t.Error("failed update replaced the settings")
	}

	if err := inst.Override([]byte("[arc]\nsparkle = 1\n")); err == nil {
		t.Error("Override with an unknown key should fail")
	}

	good := inst.Settings()
	good.Arc.Pattern = pattern.PatternSpiral
	if err := inst.Update(good); err != nil {
		t.Fatal(err)
	}
	if got := len(inst.Frame().Placements); got != good.Arc.Arcs*20 {
		t.Errorf("spiral placements = %d, want %d", got, good.Arc.Arcs*20)
	}
	first := inst.Frame()
	if err := inst.Update(good); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first.Placements, inst.Frame().Placements); diff != "" {
		t.Errorf("Update is not idempotent:\n%s", diff)
	}

	wrongKind, _ := DefaultsForToken(KindFirework, testToken)
	if err := inst.Update(wrongKind); !errors.Is(err, errors.ErrCodeInvalidSettings) {
		t.Errorf("Update with another sketch's settings error = %v", err)
	}
}

func TestInstanceReseed(t *testing.T) {
	src := &countingEntropy{}
	inst, err := Load(Options{Kind: KindFirework, Bounds: canvas, Measurer: measurer, Entropy: src})
	if err != nil {
		t.Fatal(err)
	}
	first := inst.Token()
	if err := inst.Override([]byte("[firework]\nrays = 20\n")); err != nil {
		t.Fatal(err)
	}
	if err := inst.Reseed(); err != nil {
		t.Fatal(err)
	}
	if inst.Token() == first {
		t.Errorf("Reseed kept token %s", first)
	}
	want, err := DefaultsForToken(KindFirework, inst.Token())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, inst.Settings()); diff != "" {
		t.Errorf("Reseed should restore seed defaults (-want +got):\n%s", diff)
	}
}

func TestInstanceSetTokenAndResize(t *testing.T) {
	inst, err := Load(Options{Kind: KindFirework, Token: string(testToken), Bounds: canvas, Measurer: measurer})
	if err != nil {
		t.Fatal(err)
	}
	before := inst.Frame()
	if err := inst.SetToken("0xzz"); !errors.Is(err, errors.ErrCodeMalformedToken) {
		t.Errorf("SetToken(malformed) error = %v", err)
	}
	if inst.Token() != testToken || len(inst.Frame().Placements) != len(before.Placements) {
		t.Error("failed SetToken changed the instance")
	}

	if err := inst.Resize(geom.NewRect(0, 0, 200, 100)); err != nil {
		t.Fatal(err)
	}
	if got := inst.Frame().Placements[0].Position; got != geom.Pt(100, 50) {
		t.Errorf("after resize the firework should start at the new centre, got %+v", got)
	}
	if err := inst.Resize(geom.NewRect(0, 0, -1, 100)); err == nil {
		t.Error("Resize to a negative size should fail")
	}
	if inst.Frame().Bounds != geom.NewRect(0, 0, 200, 100) {
		t.Error("failed Resize replaced the frame")
	}

	if err := inst.SetToken("0x1a2b3c4d"); err != nil {
		t.Fatal(err)
	}
	if inst.Token() != "0x1a2b3c4d" || inst.Fresh() {
		t.Errorf("SetToken: token %s fresh %v", inst.Token(), inst.Fresh())
	}
}
