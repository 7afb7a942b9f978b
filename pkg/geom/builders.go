package geom

import (
	"math"

	"github.com/matzehuels/seedglyph/pkg/errors"
	"github.com/matzehuels/seedglyph/pkg/seed"
)

const (
	// Margin keeps generated paths away from the canvas edge.
	Margin = 20.0

	// kappa places cubic handles so four segments approximate a circle.
	kappa = 0.5522847498307936

	curveJitterX   = 0.2  // fraction of usable width
	curveJitterY   = 0.6  // fraction of usable height
	handleFraction = 0.3  // handle length relative to neighbour distance
	handleJitter   = 30.0 // total degrees of handle angle jitter
	radiusFraction = 0.4  // circle and spiral radius relative to the shorter side
	spiralStep     = 5.0  // degrees between spiral samples
)

// Curve builds a random smooth curve with complexity+1 anchors spread
// across bounds.
//
// Draw order: for each anchor an x jitter then a y jitter; then for each
// anchor an incoming-handle jitter (all but the first) and an
// outgoing-handle jitter (all but the last).
func Curve(r *seed.Random, bounds Rect, complexity int) (*Path, error) {
	if complexity < 1 {
		return nil, errors.New(errors.ErrCodeDegeneratePath, "curve complexity must be at least 1, got %d", complexity)
	}
	usable := bounds.Inset(Margin)
	cy := usable.Center().Y

	points := make([]Point, complexity+1)
	for i := range points {
		baseX := usable.Left() + usable.W/float64(complexity)*float64(i)
		x := baseX + (r.Float64()-0.5)*usable.W*curveJitterX
		y := cy + (r.Float64()-0.5)*usable.H*curveJitterY
		points[i] = usable.Clamp(Pt(x, y))
	}

	segs := make([]Segment, len(points))
	for i, pt := range points {
		segs[i].Point = pt
		if i > 0 {
			prev := points[i-1]
			angle := pt.Sub(prev).Angle() + 180 + (r.Float64()-0.5)*handleJitter
			segs[i].HandleIn = Polar(pt.Distance(prev)*handleFraction, angle)
		}
		if i < len(points)-1 {
			next := points[i+1]
			angle := next.Sub(pt).Angle() + (r.Float64()-0.5)*handleJitter
			segs[i].HandleOut = Polar(pt.Distance(next)*handleFraction, angle)
		}
	}
	return NewPath(segs, false)
}

// MaxRadius returns the circle and spiral radius for bounds. Bounds too
// small to hold the margin yield 0.
func MaxRadius(bounds Rect) float64 {
	return math.Max(0, math.Min(bounds.W-2*Margin, bounds.H-2*Margin)*radiusFraction)
}

// Circle builds a closed circle centred in bounds. The path starts at the
// leftmost point and runs clockwise on screen.
func Circle(bounds Rect) (*Path, error) {
	return CircleAt(bounds.Center(), MaxRadius(bounds))
}

// CircleAt builds a closed circle of the given radius around c.
func CircleAt(c Point, radius float64) (*Path, error) {
	k := radius * kappa
	segs := []Segment{
		{Point: c.Add(Pt(-radius, 0)), HandleIn: Pt(0, k), HandleOut: Pt(0, -k)},
		{Point: c.Add(Pt(0, -radius)), HandleIn: Pt(-k, 0), HandleOut: Pt(k, 0)},
		{Point: c.Add(Pt(radius, 0)), HandleIn: Pt(0, -k), HandleOut: Pt(0, k)},
		{Point: c.Add(Pt(0, radius)), HandleIn: Pt(k, 0), HandleOut: Pt(-k, 0)},
	}
	return NewPath(segs, true)
}

// Spiral builds an open spiral of the given number of turns centred in
// bounds, sampled every 5°, its radius growing linearly from zero.
func Spiral(bounds Rect, turns float64) (*Path, error) {
	total := turns * 360
	if !(total > 0) {
		return nil, errors.New(errors.ErrCodeDegeneratePath, "spiral needs a positive number of turns, got %v", turns)
	}
	c := bounds.Center()
	maxR := MaxRadius(bounds)

	var segs []Segment
	for deg := 0.0; deg <= total; deg += spiralStep {
		segs = append(segs, Segment{Point: c.Add(Polar(deg/total*maxR, deg))})
	}
	return NewPath(segs, false)
}
