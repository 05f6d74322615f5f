package pathmesh

import "math"

// Polynomial root solvers for the curve math: quadratic roots for extrema
// and inflections, cubic roots for nearest-point queries on quadratics.

const (
	// cubicDegenerateRatio is how small |a| may be relative to the largest
	// other coefficient before a cubic is solved as a quadratic.
	cubicDegenerateRatio = 1e-12

	// rootSnapRatio bounds the rounding noise of a depressed cubic relative
	// to the root scale of the equation. P, and the discriminant, within it
	// of zero are treated as exactly zero so repeated roots come back with
	// multiplicity.
	rootSnapRatio = 1e-12
)

// SolveQuadratic finds real roots of ax² + bx + c = 0, sorted ascending.
//
// If a is zero or so small that the scaled coefficients overflow, the
// equation is solved as linear. If all coefficients are zero a single 0 is
// returned.
func SolveQuadratic(a, b, c float64) []float64 {
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		return solveLinear(b, c)
	}
	return solveQuadraticNormal(sc0, sc1)
}

func solveQuadraticNormal(sc0, sc1 float64) []float64 {
	arg := sc1*sc1 - 4.0*sc0
	if !isFinite(arg) {
		// Discriminant overflow: take x ≈ -sc1 and the other from the product.
		return orderedPair(-sc1, sc0/-sc1)
	}
	if arg < 0.0 {
		return nil
	}
	if arg == 0.0 {
		return []float64{-0.5 * sc1}
	}

	// Numerically stable form, avoids cancellation.
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	return orderedPair(root1, sc0/root1)
}

func orderedPair(root1, root2 float64) []float64 {
	if !isFinite(root2) {
		return []float64{root1}
	}
	if root1 > root2 {
		return []float64{root2, root1}
	}
	return []float64{root1, root2}
}

func solveLinear(b, c float64) []float64 {
	root := -c / b
	if isFinite(root) {
		return []float64{root}
	}
	if c == 0.0 && b == 0.0 {
		return []float64{0.0}
	}
	return nil
}

// DepressedCubic is s³ + P·s + Q = 0, reached from a·t³ + b·t² + c·t + d = 0
// by t = s - Shift with Shift = b/(3a).
type DepressedCubic struct {
	Shift float64
	P, Q  float64
	// Scale is the root magnitude of the original cubic,
	// max(|b/a|, √|c/a|, ∛|d/a|). Rounding noise in P and Q is measured
	// against it.
	Scale float64
}

// DepressCubic reduces a general cubic to depressed form.
// ok is false when a is degenerate (see SolveCubic).
func DepressCubic(a, b, c, d float64) (dc DepressedCubic, ok bool) {
	if cubicIsDegenerate(a, b, c, d) {
		return DepressedCubic{}, false
	}
	a2 := a * a
	dc.Shift = b / (3 * a)
	dc.P = (3*a*c - b*b) / (3 * a2)
	dc.Q = (2*b*b*b - 9*a*b*c + 27*a2*d) / (27 * a2 * a)
	dc.Scale = math.Max(math.Abs(b/a), math.Max(math.Sqrt(math.Abs(c/a)), math.Cbrt(math.Abs(d/a))))
	return dc, isFinite(dc.P) && isFinite(dc.Q) && isFinite(dc.Scale)
}

// Roots returns the real roots in the original variable t.
func (dc DepressedCubic) Roots() []float64 {
	roots := solveDepressedCubic(dc.P, dc.Q, dc.Scale)
	for i := range roots {
		roots[i] -= dc.Shift
	}
	return roots
}

// Discriminant returns Q²/4 + P³/27. Positive means one real root.
func (dc DepressedCubic) Discriminant() float64 {
	return dc.Q*dc.Q/4 + dc.P*dc.P*dc.P/27
}

// SolveCubic finds real roots of a·t³ + b·t² + c·t + d = 0.
//
// Roots are returned with multiplicity (one or three values) in no
// particular order; callers filter them by domain. When a is zero or
// negligible next to the other coefficients the remaining quadratic (or
// linear) equation is solved instead.
func SolveCubic(a, b, c, d float64) []float64 {
	dc, ok := DepressCubic(a, b, c, d)
	if !ok {
		return SolveQuadratic(b, c, d)
	}
	return dc.Roots()
}

// SolveDepressedCubic finds real roots of s³ + p·s + q = 0.
//
// With Δ = q²/4 + p³/27, Δ > 0 has one real root given by Cardano's formula
// and Δ ≤ 0 has three real roots (possibly repeated) given by the
// trigonometric form. Rounding noise is measured against the root scale
// max(√|p|, ∛|q|); SolveCubic uses the scale of the original coefficients
// instead, which is what keeps repeated roots of a general cubic intact.
func SolveDepressedCubic(p, q float64) []float64 {
	return solveDepressedCubic(p, q, math.Max(math.Sqrt(math.Abs(p)), math.Cbrt(math.Abs(q))))
}

func solveDepressedCubic(p, q, scale float64) []float64 {
	s2 := scale * scale
	s3 := s2 * scale
	if math.Abs(p) <= rootSnapRatio*s2 {
		p = 0
		if math.Abs(q) <= rootSnapRatio*s3 {
			q = 0
		}
	}

	halfQ := q / 2
	p3 := p * p * p / 27
	disc := halfQ*halfQ + p3
	// Noise in disc grows with |q|·δq + p²·δp, not with disc itself.
	if disc > 0 && disc <= rootSnapRatio*(math.Abs(halfQ)*s3+p*p/9*s2) {
		disc = 0
	}

	switch {
	case p == 0 && q == 0:
		return []float64{0, 0, 0}
	case disc > 0:
		sq := math.Sqrt(disc)
		s := math.Cbrt(-halfQ+sq) - math.Cbrt(halfQ+sq)
		// One Newton step recovers the digits lost to cancellation in u - v.
		if d := 3*s*s + p; d != 0 {
			s -= (s*s*s + p*s + q) / d
		}
		return []float64{s}
	case p == 0:
		c := math.Cbrt(-q)
		return []float64{c, c, c}
	case disc == 0:
		// Simple root 3q/p and double root -3q/(2p).
		double := -1.5 * q / p
		return []float64{3 * q / p, double, double}
	}

	r := math.Sqrt(-p3)
	cosArg := -halfQ / r
	if cosArg > 1 {
		cosArg = 1
	} else if cosArg < -1 {
		cosArg = -1
	}
	phi := math.Acos(cosArg) / 3
	m := 2 * math.Sqrt(-p/3)
	return []float64{
		m * math.Cos(phi),
		m * math.Cos(phi+2*math.Pi/3),
		m * math.Cos(phi+4*math.Pi/3),
	}
}

func cubicIsDegenerate(a, b, c, d float64) bool {
	if a == 0 || !isFinite(a) {
		return true
	}
	scale := math.Max(math.Abs(b), math.Max(math.Abs(c), math.Abs(d)))
	return math.Abs(a) <= cubicDegenerateRatio*scale
}

// SolveQuadraticInUnitInterval returns roots of ax² + bx + c = 0 in [0, 1].
func SolveQuadraticInUnitInterval(a, b, c float64) []float64 {
	return FilterUnitInterval(SolveQuadratic(a, b, c))
}

// SolveCubicInUnitInterval returns roots of a·t³ + b·t² + c·t + d = 0 in [0, 1].
func SolveCubicInUnitInterval(a, b, c, d float64) []float64 {
	return FilterUnitInterval(SolveCubic(a, b, c, d))
}

// FilterUnitInterval keeps the roots in [0, 1], clamping values within a
// tiny epsilon of either end. The input slice is not modified.
func FilterUnitInterval(roots []float64) []float64 {
	if len(roots) == 0 {
		return nil
	}

	const eps = 1e-12
	result := make([]float64, 0, len(roots))
	for _, r := range roots {
		if r >= -eps && r <= 1.0+eps {
			result = append(result, math.Min(math.Max(r, 0), 1))
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
