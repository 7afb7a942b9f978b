package geom

// cubic is a cubic Bézier with absolute control points.
type cubic struct {
	p0, p1, p2, p3 Point
}

// eval evaluates the curve at t in [0, 1]. Straight segments are
// parametrized linearly so that the arc-length table stays exact on them.
func (c cubic) eval(t float64) Point {
	if c.straight() {
		return c.p0.Lerp(c.p3, t)
	}
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Point{
		X: a*c.p0.X + b*c.p1.X + d*c.p2.X + e*c.p3.X,
		Y: a*c.p0.Y + b*c.p1.Y + d*c.p2.Y + e*c.p3.Y,
	}
}

// deriv evaluates the first derivative at t.
func (c cubic) deriv(t float64) Point {
	mt := 1 - t
	d0 := c.p1.Sub(c.p0).Mul(3 * mt * mt)
	d1 := c.p2.Sub(c.p1).Mul(6 * mt * t)
	d2 := c.p3.Sub(c.p2).Mul(3 * t * t)
	return d0.Add(d1).Add(d2)
}

// straight reports whether the control points sit on the endpoints.
func (c cubic) straight() bool {
	return c.p1 == c.p0 && c.p2 == c.p3
}

// tangent returns a non-zero direction at t where one exists. Handles that
// collapse onto an endpoint zero the derivative there; the chord stands in.
func (c cubic) tangent(t float64) Point {
	if c.straight() {
		return c.p3.Sub(c.p0)
	}
	if d := c.deriv(t); d.Length() > 1e-9 {
		return d
	}
	const h = 1e-4
	if t < 0.5 {
		return c.eval(t + h).Sub(c.eval(t))
	}
	if d := c.eval(t).Sub(c.eval(t - h)); !d.IsZero() {
		return d
	}
	return c.p3.Sub(c.p0)
}
