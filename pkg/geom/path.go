package geom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/matzehuels/seedglyph/pkg/errors"
)

// cubicSamples is the number of chords tabulated per curved segment.
const cubicSamples = 64

// Segment is one anchor of a path. Handles are relative to Point; a zero
// handle means no handle on that side.
type Segment struct {
	Point     Point `json:"point"`
	HandleIn  Point `json:"handle_in"`
	HandleOut Point `json:"handle_out"`
}

// sample is one row of the arc-length table.
type sample struct {
	s   float64 // cumulative length
	seg int     // segment index
	t   float64 // curve parameter within seg
}

// Path is an immutable sequence of anchors queryable by arc length.
type Path struct {
	segments []Segment
	closed   bool
	curves   []cubic
	table    []sample
	length   float64
}

// NewPath builds a path through segs. It fails with DEGENERATE_PATH when
// fewer than two anchors are given or the total length is zero.
func NewPath(segs []Segment, closed bool) (*Path, error) {
	if len(segs) < 2 {
		return nil, errors.New(errors.ErrCodeDegeneratePath, "path needs at least 2 anchors, got %d", len(segs))
	}

	p := &Path{
		segments: append([]Segment(nil), segs...),
		closed:   closed,
	}
	n := len(segs) - 1
	if closed {
		n++
	}
	p.curves = make([]cubic, n)
	for i := range p.curves {
		a, b := segs[i], segs[(i+1)%len(segs)]
		p.curves[i] = cubic{
			p0: a.Point,
			p1: a.Point.Add(a.HandleOut),
			p2: b.Point.Add(b.HandleIn),
			p3: b.Point,
		}
	}
	p.tabulate()

	if !(p.length > 0) {
		return nil, errors.New(errors.ErrCodeDegeneratePath, "path has zero length")
	}
	return p, nil
}

func (p *Path) tabulate() {
	p.table = append(p.table[:0], sample{})
	var s float64
	for i, c := range p.curves {
		steps := cubicSamples
		if c.straight() {
			steps = 1
		}
		prev := c.p0
		for k := 1; k <= steps; k++ {
			t := float64(k) / float64(steps)
			pt := c.eval(t)
			s += prev.Distance(pt)
			prev = pt
			p.table = append(p.table, sample{s: s, seg: i, t: t})
		}
	}
	p.length = s
}

// Length returns the total arc length.
func (p *Path) Length() float64 { return p.length }

// IsClosed reports whether the path loops back to its first anchor.
func (p *Path) IsClosed() bool { return p.closed }

// Segments returns a copy of the anchors.
func (p *Path) Segments() []Segment { return append([]Segment(nil), p.segments...) }

// locate maps an arc length, clamped to [0, Length], to a segment and curve
// parameter.
func (p *Path) locate(s float64) (int, float64) {
	s = min(p.length, max(0, s))
	i := sort.Search(len(p.table), func(i int) bool { return p.table[i].s >= s })
	if i == 0 {
		return 0, 0
	}
	a, b := p.table[i-1], p.table[i]
	if a.seg != b.seg {
		a = sample{s: a.s, seg: b.seg, t: 0}
	}
	if b.s == a.s {
		return b.seg, b.t
	}
	f := (s - a.s) / (b.s - a.s)
	return b.seg, a.t + f*(b.t-a.t)
}

// PointAt returns the point at arc length s from the start.
func (p *Path) PointAt(s float64) Point {
	seg, t := p.locate(s)
	return p.curves[seg].eval(t)
}

// TangentAngleAt returns the direction of travel at arc length s in degrees,
// in (-180, 180].
func (p *Path) TangentAngleAt(s float64) float64 {
	seg, t := p.locate(s)
	return p.curves[seg].tangent(t).Angle()
}

// SVGData returns the path in SVG path-data syntax.
func (p *Path) SVGData() string {
	var b strings.Builder
	start := p.curves[0].p0
	fmt.Fprintf(&b, "M%.2f %.2f", start.X, start.Y)
	for _, c := range p.curves {
		if c.straight() {
			fmt.Fprintf(&b, " L%.2f %.2f", c.p3.X, c.p3.Y)
			continue
		}
		fmt.Fprintf(&b, " C%.2f %.2f %.2f %.2f %.2f %.2f", c.p1.X, c.p1.Y, c.p2.X, c.p2.Y, c.p3.X, c.p3.Y)
	}
	if p.closed {
		b.WriteString(" Z")
	}
	return b.String()
}

// Walk calls fn for every drawing command of the path, in order. Straight
// segments report c1 == from and c2 == to.
func (p *Path) Walk(fn func(from, c1, c2, to Point)) {
	for _, c := range p.curves {
		fn(c.p0, c.p1, c.p2, c.p3)
	}
}
