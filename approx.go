package pathmesh

import "math"

// quadFitErrorScale is √3/36. For the midpoint quadratic fit of a cubic,
// the deviation at each parameter t is K/2 · t(1-t)(1-2t) with
// K = P3 - 3P2 + 3P1 - P0, whose maximum magnitude on [0, 1] is √3/36·|K|.
var quadFitErrorScale = math.Sqrt(3) / 36

// Approximation is the quadratic chain replacing one cubic.
type Approximation struct {
	// Quads are in the cubic's t order; each starts where the previous ends.
	Quads []QuadBez
	// Ranges holds the cubic parameter interval covered by each quad.
	Ranges [][2]float64
	// MaxError is the largest error bound among the emitted quads.
	MaxError float64
}

// QuadFit returns the endpoint-matching quadratic for c, with control point
// (3P1 - P0 + 3P2 - P3)/4, and the closed-form bound on its deviation from
// c at corresponding parameters.
func QuadFit(c CubicBez) (QuadBez, float64) {
	ctrl := c.P1.Mul(3).Sub(c.P0).Add(c.P2.Mul(3)).Sub(c.P3).Mul(0.25)
	return QuadBez{P0: c.P0, P1: ctrl, P2: c.P3}, quadFitErrorScale * c.ThirdDifference().Length()
}

type approxItem struct {
	cubic  CubicBez
	t0, t1 float64
	depth  int
}

// ApproximateCubic replaces c by quadratics that each stay within tol of the
// matching cubic sub-arc at every parameter.
//
// Sub-arcs are halved by de Casteljau until their fit meets tol. If the
// depth cap is reached first, the capped sub-arcs are emitted as their
// best fit and a *ToleranceError is returned along with the chain.
func ApproximateCubic(c CubicBez, tol Tolerance, opts ...ApproxOption) (Approximation, error) {
	if err := tol.Validate(); err != nil {
		return Approximation{}, err
	}
	o := defaultApproxOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var (
		out    Approximation
		capped bool
		eps    = float64(tol)
	)
	stack := []approxItem{{cubic: c, t0: 0, t1: 1}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		q, bound := QuadFit(it.cubic)
		if bound > eps && it.depth < o.maxDepth {
			left, right := it.cubic.Subdivide()
			mid := (it.t0 + it.t1) / 2
			// Right first so the left half is popped next.
			stack = append(stack,
				approxItem{cubic: right, t0: mid, t1: it.t1, depth: it.depth + 1},
				approxItem{cubic: left, t0: it.t0, t1: mid, depth: it.depth + 1},
			)
			continue
		}
		if bound > eps {
			capped = true
		}
		out.Quads = append(out.Quads, q)
		out.Ranges = append(out.Ranges, [2]float64{it.t0, it.t1})
		out.MaxError = math.Max(out.MaxError, bound)
	}

	if capped {
		Logger().Warn("pathmesh: cubic approximation hit depth cap",
			"tolerance", eps, "achieved", out.MaxError, "depth", o.maxDepth)
		return out, &ToleranceError{Tolerance: eps, Achieved: out.MaxError, Depth: o.maxDepth}
	}
	return out, nil
}
