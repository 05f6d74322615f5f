package pathmesh

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors below wrap them, so callers can match with
// errors.Is and still get detail with errors.As.
var (
	// ErrInvalidTolerance is returned for a tolerance that is not a
	// positive finite number.
	ErrInvalidTolerance = errors.New("pathmesh: tolerance must be positive and finite")

	// ErrToleranceUnsatisfiable is returned when cubic approximation hits
	// its subdivision depth cap before meeting the tolerance.
	ErrToleranceUnsatisfiable = errors.New("pathmesh: tolerance cannot be met within the subdivision depth")

	// ErrNoCurrentPoint is returned for a drawing command issued before MoveTo.
	ErrNoCurrentPoint = errors.New("pathmesh: no current point")

	// ErrNonFinite is returned for NaN or infinite coordinates.
	ErrNonFinite = errors.New("pathmesh: non-finite coordinate")

	// ErrNotContiguous is returned when consecutive segments do not share
	// an endpoint.
	ErrNotContiguous = errors.New("pathmesh: segments are not contiguous")

	// ErrOpenSubpath is returned when an open subpath is filled.
	ErrOpenSubpath = errors.New("pathmesh: open subpath cannot be filled")

	// ErrEmptyPath is returned when a path has no segments at all.
	ErrEmptyPath = errors.New("pathmesh: path is empty")

	// ErrInvalidStroke is returned for a stroke style with a non-positive
	// width or a miter limit below 1.
	ErrInvalidStroke = errors.New("pathmesh: invalid stroke style")

	// ErrInvalidSVGPath is returned for malformed SVG path data.
	ErrInvalidSVGPath = errors.New("pathmesh: invalid SVG path data")
)

// ToleranceError reports a cubic whose approximation was cut off at the
// depth cap. The best-effort result is still returned alongside it.
type ToleranceError struct {
	// Tolerance is the requested maximum deviation.
	Tolerance float64
	// Achieved is the largest error bound actually emitted.
	Achieved float64
	// Depth is the subdivision depth cap that was hit.
	Depth int
}

func (e *ToleranceError) Error() string {
	return fmt.Sprintf("pathmesh: tolerance %g not met at depth %d (achieved %g)",
		e.Tolerance, e.Depth, e.Achieved)
}

func (e *ToleranceError) Unwrap() error { return ErrToleranceUnsatisfiable }

// ContiguityError identifies the first segment whose start does not match
// the end of the segment before it.
type ContiguityError struct {
	Subpath int
	Segment int
	Gap     Point
}

func (e *ContiguityError) Error() string {
	return fmt.Sprintf("pathmesh: subpath %d segment %d starts %v away from previous end",
		e.Subpath, e.Segment, e.Gap)
}

func (e *ContiguityError) Unwrap() error { return ErrNotContiguous }

// OpenSubpathError identifies an open subpath passed to the fill tessellator.
type OpenSubpathError struct {
	Subpath int
}

func (e *OpenSubpathError) Error() string {
	return fmt.Sprintf("pathmesh: subpath %d is open and cannot be filled", e.Subpath)
}

func (e *OpenSubpathError) Unwrap() error { return ErrOpenSubpath }

// SVGPathError reports where SVG path data could not be parsed.
type SVGPathError struct {
	Offset int
	Msg    string
}

func (e *SVGPathError) Error() string {
	return fmt.Sprintf("pathmesh: invalid SVG path data at offset %d: %s", e.Offset, e.Msg)
}

func (e *SVGPathError) Unwrap() error { return ErrInvalidSVGPath }
