package pathmesh

import "math"

// linearAreaRatio is the control-triangle area, relative to the squared
// extent of the control polygon, below which a quadratic is treated as a
// straight line.
const linearAreaRatio = 1e-9

// QuadraticDescriptor holds a quadratic with the constants shared by the
// fill classifier and the stroke generator. In power form the curve is
// P0 + 2t·A + t²·B.
type QuadraticDescriptor struct {
	Quad QuadBez
	// A is P1 - P0.
	A Point
	// B is P0 - 2P1 + P2.
	B Point
}

// Describe computes the shared constants of q.
func Describe(q QuadBez) QuadraticDescriptor {
	return QuadraticDescriptor{
		Quad: q,
		A:    q.P1.Sub(q.P0),
		B:    q.P0.Sub(q.P1.Mul(2)).Add(q.P2),
	}
}

// SignedArea returns the signed area of the control triangle (P0, P1, P2).
// Positive means counter-clockwise in a y-up frame.
func (d QuadraticDescriptor) SignedArea() float64 {
	return 0.5 * d.Quad.P1.Sub(d.Quad.P0).Cross(d.Quad.P2.Sub(d.Quad.P0))
}

// IsLinear reports whether the control triangle is too thin for the
// quadratic math: all control points coincide or are collinear up to
// rounding.
func (d QuadraticDescriptor) IsLinear() bool {
	q := d.Quad
	extent := math.Max(q.P1.Sub(q.P0).LengthSquared(),
		math.Max(q.P2.Sub(q.P1).LengthSquared(), q.P2.Sub(q.P0).LengthSquared()))
	if extent == 0 {
		return true
	}
	return math.Abs(d.SignedArea()) <= linearAreaRatio*extent
}

// NearestPointCubic returns the coefficients of (P - B(t))·B'(t) = 0 for a
// query point, as a·t³ + b·t² + c·t + d. a and b depend only on the curve.
func (d QuadraticDescriptor) NearestPointCubic(pt Point) (a, b, c, dd float64) {
	m := d.Quad.P0.Sub(pt)
	a = d.B.Dot(d.B)
	b = 3 * d.A.Dot(d.B)
	c = 2*d.A.Dot(d.A) + m.Dot(d.B)
	dd = m.Dot(d.A)
	return a, b, c, dd
}

// Nearest returns the parameter in [0, 1] of the point on the curve closest
// to pt, and the distance to it. Both endpoints are always candidates.
func (d QuadraticDescriptor) Nearest(pt Point) (t, dist float64) {
	a, b, c, dd := d.NearestPointCubic(pt)
	t = 0
	best := d.Quad.P0.Distance(pt)
	if e := d.Quad.P2.Distance(pt); e < best {
		t, best = 1, e
	}
	for _, r := range SolveCubicInUnitInterval(a, b, c, dd) {
		if e := d.Quad.Eval(r).Distance(pt); e < best {
			t, best = r, e
		}
	}
	return t, best
}
