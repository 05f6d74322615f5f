package pathmesh

import (
	"math"
	"sort"
)

// Segment is one piece of a subpath: a Line, QuadBez or CubicBez.
// The set of implementations is closed.
type Segment interface {
	// Start returns the point at t=0.
	Start() Point
	// End returns the point at t=1.
	End() Point
	// Eval returns the point at parameter t in [0, 1].
	Eval(t float64) Point
	// BoundingBox returns the tight axis-aligned bounds.
	BoundingBox() Rect

	isSegment()
}

// Rect is an axis-aligned rectangle with Min <= Max.
type Rect struct {
	Min, Max Point
}

// NewRect returns the rectangle spanned by two corner points.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// Width returns Max.X - Min.X.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns Max.Y - Min.Y.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Include returns r grown to contain p.
func (r Rect) Include(p Point) Rect {
	return r.Union(Rect{Min: p, Max: p})
}

// Inset returns r grown by d on every side (shrunk for negative d).
func (r Rect) Inset(d float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: Point{X: r.Max.X + d, Y: r.Max.Y + d},
	}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// -------------------------------------------------------------------
// Line
// -------------------------------------------------------------------

// Line is a straight segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

func (Line) isSegment() {}

// Eval returns the point at parameter t.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Start returns P0.
func (l Line) Start() Point {
	return l.P0
}

// End returns P1.
func (l Line) End() Point {
	return l.P1
}

// BoundingBox returns the bounds of the two endpoints.
func (l Line) BoundingBox() Rect {
	return NewRect(l.P0, l.P1)
}

// Length returns the length of the segment.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// Quad returns the line as a quadratic with its control point at the midpoint.
func (l Line) Quad() QuadBez {
	return QuadBez{P0: l.P0, P1: l.P0.Lerp(l.P1, 0.5), P2: l.P1}
}

// -------------------------------------------------------------------
// QuadBez
// -------------------------------------------------------------------

// QuadBez is a quadratic Bézier curve. P1 is the control point.
type QuadBez struct {
	P0, P1, P2 Point
}

func (QuadBez) isSegment() {}

// Eval returns (1-t)²P0 + 2(1-t)t·P1 + t²P2.
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Start returns P0.
func (q QuadBez) Start() Point {
	return q.P0
}

// End returns P2.
func (q QuadBez) End() Point {
	return q.P2
}

// Tangent returns the derivative at t. It is zero only when all three
// control points coincide, or at the turning point of a collinear quad.
func (q QuadBez) Tangent(t float64) Point {
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	return d0.Lerp(d1, t).Mul(2)
}

// Subdivide splits the curve at t=0.5.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	mid := q.Eval(0.5)
	return QuadBez{P0: q.P0, P1: q.P0.Lerp(q.P1, 0.5), P2: mid},
		QuadBez{P0: mid, P1: q.P1.Lerp(q.P2, 0.5), P2: q.P2}
}

// Subsegment returns the portion of the curve between t0 and t1.
func (q QuadBez) Subsegment(t0, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	tan := q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0)
	return QuadBez{P0: p0, P1: p0.Add(tan.Mul(t1 - t0)), P2: p2}
}

// Extrema returns the parameters in (0, 1) where x or y has a turning point.
func (q QuadBez) Extrema() []float64 {
	var result []float64
	d0 := q.P1.Sub(q.P0)
	dd := q.P2.Sub(q.P1).Sub(d0)
	if dd.X != 0 {
		if t := -d0.X / dd.X; t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	if dd.Y != 0 {
		if t := -d0.Y / dd.Y; t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight bounds of the curve.
func (q QuadBez) BoundingBox() Rect {
	bbox := NewRect(q.P0, q.P2)
	for _, t := range q.Extrema() {
		bbox = bbox.Include(q.Eval(t))
	}
	return bbox
}

// Raise returns the exact cubic representation of q.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		P0: q.P0,
		P1: q.P0.Lerp(q.P1, 2.0/3.0),
		P2: q.P2.Lerp(q.P1, 2.0/3.0),
		P3: q.P2,
	}
}

// -------------------------------------------------------------------
// CubicBez
// -------------------------------------------------------------------

// CubicBez is a cubic Bézier curve. P1 and P2 are the control points.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

func (CubicBez) isSegment() {}

// Eval returns the point at parameter t.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	t2 := t * t
	return Point{
		X: mt2*mt*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t2*t*c.P3.X,
		Y: mt2*mt*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t2*t*c.P3.Y,
	}
}

// Start returns P0.
func (c CubicBez) Start() Point {
	return c.P0
}

// End returns P3.
func (c CubicBez) End() Point {
	return c.P3
}

// Subdivide splits the curve at t=0.5 by de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	return c.SplitAt(0.5)
}

// SplitAt splits the curve at parameter t by de Casteljau.
func (c CubicBez) SplitAt(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	mid := p012.Lerp(p123, t)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// Deriv returns the derivative curve.
func (c CubicBez) Deriv() QuadBez {
	return QuadBez{
		P0: c.P1.Sub(c.P0).Mul(3),
		P1: c.P2.Sub(c.P1).Mul(3),
		P2: c.P3.Sub(c.P2).Mul(3),
	}
}

// ThirdDifference returns P3 - 3P2 + 3P1 - P0, the constant part of the
// third derivative divided by 6. It is zero exactly when c is a raised
// quadratic.
func (c CubicBez) ThirdDifference() Point {
	return c.P3.Sub(c.P2.Mul(3)).Add(c.P1.Mul(3)).Sub(c.P0)
}

// Extrema returns the parameters in [0, 1] where x or y has a turning point.
func (c CubicBez) Extrema() []float64 {
	result := make([]float64, 0, 4)
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	result = append(result, SolveQuadraticInUnitInterval(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)...)
	result = append(result, SolveQuadraticInUnitInterval(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)

	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight bounds of the curve.
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRect(c.P0, c.P3)
	for _, t := range c.Extrema() {
		bbox = bbox.Include(c.Eval(t))
	}
	return bbox
}
