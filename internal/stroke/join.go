package stroke

import (
	"math"

	"github.com/gogpu/pathmesh"
)

// smoothThreshold is the |sin| of the turn angle below which a forward
// junction is treated as smooth and gets no join geometry.
const smoothThreshold = 1e-9

// Triangle is a solid wedge triangle.
type Triangle [3]pathmesh.Point

// Geometry is the solid fill for one junction or end.
type Geometry struct {
	Triangles []Triangle
	// Masked reports that the ends meeting here must not use the endpoint
	// distance test.
	Masked bool
}

// Join returns the geometry joining a segment arriving at p with
// direction in to one leaving p with direction out. Directions need not
// be normalized but must be nonzero.
func Join(p, in, out pathmesh.Point, halfWidth float64, join pathmesh.LineJoin, miterLimit float64) Geometry {
	if join == pathmesh.LineJoinRound {
		return Geometry{}
	}

	d0, d1 := in.Normalize(), out.Normalize()
	cross := d0.Cross(d1)
	dot := d0.Dot(d1)
	if math.Abs(cross) < smoothThreshold {
		// Straight continuation or full reversal; a bevel would have zero
		// area and a miter would be unbounded.
		return Geometry{Masked: true}
	}

	// The outer side is opposite the turn.
	side := -1.0
	if cross < 0 {
		side = 1
	}
	o0 := p.Add(d0.Perp().Mul(side * halfWidth))
	o1 := p.Add(d1.Perp().Mul(side * halfWidth))

	if join == pathmesh.LineJoinMiter && miterWithinLimit(dot, miterLimit) {
		if tip, ok := pathmesh.IntersectLines(o0, d0, o1, d1); ok {
			return Geometry{
				Triangles: orient(Triangle{p, o0, tip}, Triangle{p, tip, o1}),
				Masked:    true,
			}
		}
	}
	return Geometry{Triangles: orient(Triangle{p, o0, o1}), Masked: true}
}

// miterWithinLimit reports whether 1/sin(θ/2) ≤ limit, where cos of the
// turn angle is dot. With θ = π - turn, 1/sin²(θ/2) = 2/(1 + dot).
func miterWithinLimit(dot, limit float64) bool {
	return 2 < (1+dot)*limit*limit
}

// Cap returns the geometry for an open end at p, where dir points away
// from the stroke.
func Cap(p, dir pathmesh.Point, halfWidth float64, lineCap pathmesh.LineCap) Geometry {
	switch lineCap {
	case pathmesh.LineCapRound:
		return Geometry{}
	case pathmesh.LineCapSquare:
		d := dir.Normalize()
		if d == (pathmesh.Point{}) {
			return Geometry{Masked: true}
		}
		n := d.Perp().Mul(halfWidth)
		ext := d.Mul(halfWidth)
		a, b := p.Add(n), p.Sub(n)
		c, e := b.Add(ext), a.Add(ext)
		return Geometry{Triangles: orient(Triangle{a, b, c}, Triangle{a, c, e}), Masked: true}
	default:
		return Geometry{Masked: true}
	}
}

// orient makes every triangle counter-clockwise in a y-up frame.
func orient(tris ...Triangle) []Triangle {
	for i, t := range tris {
		if t[1].Sub(t[0]).Cross(t[2].Sub(t[0])) < 0 {
			tris[i][1], tris[i][2] = t[2], t[1]
		}
	}
	return tris
}
