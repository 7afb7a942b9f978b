package geom

import "math"

// Point is a position or a vector in canvas coordinates (y grows downward).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point { return Point{p.X * s, p.Y * s} }

// Lerp interpolates between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Length returns the vector length.
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

// Distance returns the distance between p and q.
func (p Point) Distance(q Point) float64 { return q.Sub(p).Length() }

// IsZero reports whether both coordinates are zero.
func (p Point) IsZero() bool { return p.X == 0 && p.Y == 0 }

// Angle returns the vector direction in degrees, in (-180, 180].
func (p Point) Angle() float64 { return Degrees(math.Atan2(p.Y, p.X)) }

// Polar returns the vector of the given length pointing at deg degrees.
func Polar(length, deg float64) Point {
	rad := Radians(deg)
	return Point{length * math.Cos(rad), length * math.Sin(rad)}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// NewRect returns the rectangle at (x, y) with size w×h.
func NewRect(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// Left returns the minimum x.
func (r Rect) Left() float64 { return r.X }

// Right returns the maximum x.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the minimum y.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the maximum y.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the centre point.
func (r Rect) Center() Point { return Point{r.X + r.W/2, r.Y + r.H/2} }

// Inset shrinks the rectangle by m on every side. Sizes stop at zero.
func (r Rect) Inset(m float64) Rect {
	return Rect{X: r.X + m, Y: r.Y + m, W: max(0, r.W-2*m), H: max(0, r.H-2*m)}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Clamp moves p to the nearest point inside r.
func (r Rect) Clamp(p Point) Point {
	return Point{
		X: min(r.Right(), max(r.Left(), p.X)),
		Y: min(r.Bottom(), max(r.Top(), p.Y)),
	}
}
