package pathmesh

import "fmt"

// Tolerance is the error budget for cubic-to-quadratic approximation.
//
// For filling it is an absolute distance in path units. For stroking it is
// a fraction of the stroke half-width; the stroke generator converts it
// with Tolerance.Scale before approximating.
type Tolerance float64

// DefaultFillTolerance is a quarter of a device pixel, which is below
// what a single-sample rasterizer can resolve.
const DefaultFillTolerance Tolerance = 0.25

// DefaultStrokeTolerance is 1% of the stroke half-width.
const DefaultStrokeTolerance Tolerance = 0.01

// Validate returns ErrInvalidTolerance unless tol is positive and finite.
func (tol Tolerance) Validate() error {
	if !(tol > 0) || !isFinite(float64(tol)) {
		return fmt.Errorf("%w: got %g", ErrInvalidTolerance, float64(tol))
	}
	return nil
}

// Scale returns tol multiplied by s.
func (tol Tolerance) Scale(s float64) Tolerance {
	return Tolerance(float64(tol) * s)
}

// FillRule decides which winding counts are inside.
type FillRule int

const (
	// FillRuleNonZero treats any nonzero winding count as inside.
	FillRuleNonZero FillRule = iota

	// FillRuleEvenOdd treats odd winding counts as inside.
	FillRuleEvenOdd
)

// Inside reports whether a point with the given winding count is filled.
func (r FillRule) Inside(winding int) bool {
	if r == FillRuleEvenOdd {
		return winding%2 != 0
	}
	return winding != 0
}

// String returns the SVG name of the rule.
func (r FillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "nonzero"
	case FillRuleEvenOdd:
		return "evenodd"
	default:
		return "unknown"
	}
}

// ParseFillRule parses the SVG names "nonzero" and "evenodd".
func ParseFillRule(s string) (FillRule, error) {
	switch s {
	case "nonzero":
		return FillRuleNonZero, nil
	case "evenodd":
		return FillRuleEvenOdd, nil
	default:
		return 0, fmt.Errorf("pathmesh: unknown fill rule %q", s)
	}
}

// ApproxOption configures ApproximateCubic and Path.Normalize.
//
// Example:
//
//	quads, err := pathmesh.ApproximateCubic(c, 0.1, pathmesh.WithMaxDepth(20))
type ApproxOption func(*approxOptions)

type approxOptions struct {
	maxDepth int
}

// DefaultMaxDepth caps cubic subdivision. Each level shrinks the error
// bound by a factor of eight, so 16 levels cover a dynamic range of 8^16.
const DefaultMaxDepth = 16

func defaultApproxOptions() approxOptions {
	return approxOptions{maxDepth: DefaultMaxDepth}
}

// WithMaxDepth sets the subdivision depth cap. Values below zero are
// treated as zero (no subdivision).
func WithMaxDepth(depth int) ApproxOption {
	return func(o *approxOptions) {
		o.maxDepth = max(depth, 0)
	}
}
