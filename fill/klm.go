package fill

import (
	"math"

	"github.com/gogpu/pathmesh"
)

// CurveType is the Loop–Blinn classification of a curve.
type CurveType int

const (
	// CurveSerpentine has up to three real inflection points.
	CurveSerpentine CurveType = iota
	// CurveLoop crosses itself (possibly outside [0, 1]).
	CurveLoop
	// CurveCusp has a point of zero velocity.
	CurveCusp
	// CurveCuspAtInfinity has its cusp at the projective point at
	// infinity; within the plane it renders like a serpentine.
	CurveCuspAtInfinity
	// CurveQuadratic is a quadratic, or a cubic that is an exact
	// degree-elevated quadratic.
	CurveQuadratic
	// CurveLine has collinear control points.
	CurveLine
)

// String returns the curve type name.
func (t CurveType) String() string {
	switch t {
	case CurveSerpentine:
		return "serpentine"
	case CurveLoop:
		return "loop"
	case CurveCusp:
		return "cusp"
	case CurveCuspAtInfinity:
		return "cusp-at-infinity"
	case CurveQuadratic:
		return "quadratic"
	case CurveLine:
		return "line"
	default:
		return "unknown"
	}
}

// KLM is an implicit-function texture coordinate.
type KLM struct {
	K, L, M float64
}

// quadKLM maps the control points of every quadratic onto the canonical
// parabola u² - v = 0, with k = u, l = v, m = 1.
var quadKLM = [3]KLM{
	{K: 0, L: 0, M: 1},
	{K: 0.5, L: 0, M: 1},
	{K: 1, L: 1, M: 1},
}

// Classification is the fill classification of a quadratic.
type Classification struct {
	Type CurveType
	// KLM holds the coordinates for P0, P1 and P2. Zero for lines.
	KLM [3]KLM
	// Sign is the sign of the control triangle's area: the winding
	// contribution of the sliver between chord and curve.
	Sign float64
}

// ClassifyQuad classifies a quadratic. Near-zero-area control triangles
// are reported as CurveLine and need no curve triangle.
func ClassifyQuad(q pathmesh.QuadBez) Classification {
	d := pathmesh.Describe(q)
	if d.IsLinear() {
		return Classification{Type: CurveLine}
	}
	sign := 1.0
	if d.SignedArea() < 0 {
		sign = -1
	}
	return Classification{Type: CurveQuadratic, KLM: quadKLM, Sign: sign}
}

// EvalKLM reports whether an interpolated (k, l, m) lies strictly between
// chord and curve.
func EvalKLM(k, l, m float64) bool {
	return k*k-l*m < 0
}

// classifyEpsilon is the threshold, relative to the largest discriminant
// term, below which a term counts as zero.
const classifyEpsilon = 1e-9

// CubicClass is the Loop–Blinn classification of a cubic.
type CubicClass struct {
	Type CurveType
	// D1, D2 and D3 are the discriminant terms, scaled so the largest
	// magnitude is 1.
	D1, D2, D3 float64
	// Inflections lists inflection parameters in [0, 1].
	Inflections []float64
}

// ClassifyCubic computes the Loop–Blinn discriminants of a cubic.
//
// Cubics are approximated by quadratics before tessellation, so this is a
// diagnostic: the tessellator reports how many of each type it consumed.
func ClassifyCubic(c pathmesh.CubicBez) CubicClass {
	b0 := homogeneous(c.P0)
	b1 := homogeneous(c.P1)
	b2 := homogeneous(c.P2)
	b3 := homogeneous(c.P3)

	a1 := det3(b0, b3, b2)
	a2 := det3(b1, b0, b3)
	a3 := det3(b2, b1, b0)

	d1 := a1 - 2*a2 + 3*a3
	d2 := -a2 + 3*a3
	d3 := 3 * a3
	if s := math.Max(math.Abs(d1), math.Max(math.Abs(d2), math.Abs(d3))); s > 0 {
		d1, d2, d3 = snap(d1/s), snap(d2/s), snap(d3/s)
	}

	cls := CubicClass{D1: d1, D2: d2, D3: d3, Inflections: inflections(c)}
	switch {
	case d1 == 0 && d2 == 0 && d3 == 0:
		cls.Type = CurveLine
	case d1 == 0 && d2 == 0:
		cls.Type = CurveQuadratic
	case d1 == 0:
		cls.Type = CurveCuspAtInfinity
	default:
		switch disc := snap(3*d2*d2 - 4*d1*d3); {
		case disc > 0:
			cls.Type = CurveSerpentine
		case disc < 0:
			cls.Type = CurveLoop
		default:
			cls.Type = CurveCusp
		}
	}
	return cls
}

// inflections solves B'(t) × B″(t) = 0. The cubic term cancels, so the
// equation is at most quadratic.
func inflections(c pathmesh.CubicBez) []float64 {
	a := c.P1.Sub(c.P0)
	b := c.P2.Sub(c.P1.Mul(2)).Add(c.P0)
	d := c.ThirdDifference()
	return pathmesh.SolveCubicInUnitInterval(0, b.Cross(d), a.Cross(d), a.Cross(b))
}

type vec3 [3]float64

func homogeneous(p pathmesh.Point) vec3 {
	return vec3{p.X, p.Y, 1}
}

func det3(a, b, c vec3) float64 {
	return a[0]*(b[1]*c[2]-b[2]*c[1]) -
		a[1]*(b[0]*c[2]-b[2]*c[0]) +
		a[2]*(b[0]*c[1]-b[1]*c[0])
}

func snap(x float64) float64 {
	if math.Abs(x) < classifyEpsilon {
		return 0
	}
	return x
}
