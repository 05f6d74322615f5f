package stroke

import (
	"math"

	"github.com/gogpu/pathmesh"
)

// evalEpsilon admits nearest-point roots this far outside [0, 1].
const evalEpsilon = 1e-9

// Caps flags endpoints whose distance is not a coverage candidate because
// explicit join or cap geometry owns that end.
type Caps uint8

const (
	// NoStartCap disables the t = 0 endpoint candidate.
	NoStartCap Caps = 1 << iota
	// NoEndCap disables the t = 1 endpoint candidate.
	NoEndCap
)

// Vertex is one corner of a stroke quad.
type Vertex struct {
	Position pathmesh.Point
	// Local is Position - P0 of the piece.
	Local pathmesh.Point
	// A and B are the piece's power-form constants; B is zero for
	// straight pieces.
	A, B pathmesh.Point
	// BOver3A is the shift from the depressed variable back to t.
	BOver3A float64
	// P and Q are the depressed nearest-point cubic coefficients at
	// Position. Zero for straight pieces.
	P, Q float64
	Caps Caps
}

// newVertex computes the attributes of the piece described by d at pos.
func newVertex(pos pathmesh.Point, d pathmesh.QuadraticDescriptor, caps Caps) Vertex {
	v := Vertex{
		Position: pos,
		Local:    pos.Sub(d.Quad.P0),
		A:        d.A,
		B:        d.B,
		Caps:     caps,
	}
	if d.B == (pathmesh.Point{}) {
		return v
	}
	a, b, c, dd := d.NearestPointCubic(pos)
	shift := b / (3 * a)
	v.BOver3A = shift
	v.P = c/a - 3*shift*shift
	v.Q = 2*shift*shift*shift - shift*c/a + dd/a
	return v
}

// lerpVertex blends three vertices with barycentric weights. Per-piece
// constants are taken from the first vertex.
func lerpVertex(v0, v1, v2 Vertex, w [3]float64) Vertex {
	mix := func(a, b, c pathmesh.Point) pathmesh.Point {
		return a.Mul(w[0]).Add(b.Mul(w[1])).Add(c.Mul(w[2]))
	}
	return Vertex{
		Position: mix(v0.Position, v1.Position, v2.Position),
		Local:    mix(v0.Local, v1.Local, v2.Local),
		A:        v0.A,
		B:        v0.B,
		BOver3A:  v0.BOver3A,
		P:        w[0]*v0.P + w[1]*v1.P + w[2]*v2.P,
		Q:        w[0]*v0.Q + w[1]*v1.Q + w[2]*v2.Q,
		Caps:     v0.Caps,
	}
}

// Eval decides stroke coverage for a fragment with interpolated attributes
// v. It returns whether the distance to the piece is within the half-width
// and the distance itself.
//
// Candidates are the real roots of the depressed cubic mapped back by
// t = s - BOver3A and kept in [0, 1], plus the endpoints that v.Caps does
// not mask. Straight pieces solve the linear projection instead.
func Eval(v Vertex, halfWidthSq float64) (covered bool, dist float64) {
	best := math.Inf(1)
	try := func(t float64) {
		if t < -evalEpsilon || t > 1+evalEpsilon {
			return
		}
		t = math.Min(math.Max(t, 0), 1)
		onCurve := v.A.Mul(2 * t).Add(v.B.Mul(t * t))
		if d := v.Local.Sub(onCurve).LengthSquared(); d < best {
			best = d
		}
	}

	if v.B == (pathmesh.Point{}) {
		if aa := v.A.Dot(v.A); aa > 0 {
			try(v.Local.Dot(v.A) / (2 * aa))
		}
	} else {
		for _, s := range pathmesh.SolveDepressedCubic(v.P, v.Q) {
			try(s - v.BOver3A)
		}
	}
	if v.Caps&NoStartCap == 0 {
		try(0)
	}
	if v.Caps&NoEndCap == 0 {
		try(1)
	}

	if math.IsInf(best, 1) {
		return false, best
	}
	return best <= halfWidthSq, math.Sqrt(best)
}
