package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/seedglyph/pkg/errors"
	"github.com/matzehuels/seedglyph/pkg/seed"
)

func newRandom(t *testing.T) *seed.Random {
	t.Helper()
	r, err := seed.FromToken("0xA1B2C3D4")
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestCurveAnchors(t *testing.T) {
	bounds := NewRect(0, 0, 800, 600)
	p, err := Curve(newRandom(t), bounds, 3)
	if err != nil {
		t.Fatal(err)
	}

	segs := p.Segments()
	if len(segs) != 4 {
		t.Fatalf("anchors = %d, want 4", len(segs))
	}
	usable := bounds.Inset(Margin)
	for i, s := range segs {
		if !usable.Contains(s.Point) {
			t.Errorf("anchor %d at %+v outside %+v", i, s.Point, usable)
		}
	}

	if !segs[0].HandleIn.IsZero() {
		t.Error("first anchor should have no incoming handle")
	}
	if !segs[3].HandleOut.IsZero() {
		t.Error("last anchor should have no outgoing handle")
	}
	for i := 1; i < 3; i++ {
		if segs[i].HandleIn.IsZero() || segs[i].HandleOut.IsZero() {
			t.Errorf("interior anchor %d should have both handles", i)
		}
	}
	if p.IsClosed() {
		t.Error("curve should be open")
	}
}

func TestCurveHandles(t *testing.T) {
	p, err := Curve(newRandom(t), NewRect(0, 0, 800, 600), 4)
	if err != nil {
		t.Fatal(err)
	}
	segs := p.Segments()
	for i := 1; i < len(segs); i++ {
		prev, cur := segs[i-1], segs[i]
		dist := cur.Point.Distance(prev.Point)
		if got := cur.HandleIn.Length(); got < dist*0.3-1e-9 || got > dist*0.3+1e-9 {
			t.Errorf("anchor %d incoming handle length = %v, want %v", i, got, dist*0.3)
		}
		// The incoming handle leans back toward the previous anchor, within ±15°.
		toPrev := prev.Point.Sub(cur.Point).Angle()
		if d := angleDiff(cur.HandleIn.Angle(), toPrev); d > 15+1e-9 {
			t.Errorf("anchor %d incoming handle deviates %v° from the previous anchor", i, d)
		}
	}
}

func TestCurveDeterministic(t *testing.T) {
	bounds := NewRect(0, 0, 640, 480)
	a, err := Curve(newRandom(t), bounds, 5)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Curve(newRandom(t), bounds, 5)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a.Segments(), b.Segments()); diff != "" {
		t.Errorf("same token produced different curves:\n%s", diff)
	}
	if a.Length() != b.Length() {
		t.Errorf("lengths differ: %v vs %v", a.Length(), b.Length())
	}
}

func TestCurveConsumesFourDrawsPerInteriorAnchor(t *testing.T) {
	// 4 anchors: 8 position draws + 3 incoming + 3 outgoing handle draws.
	r := newRandom(t)
	if _, err := Curve(r, NewRect(0, 0, 800, 600), 3); err != nil {
		t.Fatal(err)
	}
	ref := newRandom(t)
	for i := 0; i < 14; i++ {
		ref.Float64()
	}
	if r.State() != ref.State() {
		t.Error("Curve(complexity=3) should consume exactly 14 draws")
	}
}

func TestCurveInvalidComplexity(t *testing.T) {
	r := newRandom(t)
	before := r.State()
	if _, err := Curve(r, NewRect(0, 0, 800, 600), 0); !errors.Is(err, errors.ErrCodeDegeneratePath) {
		t.Errorf("Curve(0) error = %v, want DEGENERATE_PATH", err)
	}
	if r.State() != before {
		t.Error("a rejected curve should not consume draws")
	}
}

func angleDiff(a, b float64) float64 {
	d := a - b
	for d > 180 {
		d -= 360
	}
	for d < -180 {
		d += 360
	}
	if d < 0 {
		d = -d
	}
	return d
}
