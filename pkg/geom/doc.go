// Package geom provides the paths that text is aligned to.
//
// A [Path] is a sequence of anchors, each with optional incoming and outgoing
// handles (offsets relative to the anchor, the way vector editors store
// them). Consecutive anchors are joined by a cubic Bézier segment, or by a
// straight line when both handles are zero. Closed paths add a segment from
// the last anchor back to the first.
//
// Paths are queried by arc length rather than by curve parameter:
//
//	p, _ := geom.Circle(geom.NewRect(0, 0, 800, 600))
//	pt := p.PointAt(p.Length() / 4)
//	deg := p.TangentAngleAt(p.Length() / 4)
//
// Construction tabulates cumulative length over fixed sub-samples of every
// segment; queries binary-search the table and evaluate the exact curve at
// the interpolated parameter. Paths are immutable once built.
//
// # Builders
//
//   - [Curve]: a random wavy curve across a bounding rectangle.
//   - [Circle]: a closed circle centred in the rectangle.
//   - [Spiral]: an open Archimedean spiral sampled every 5°.
package geom
