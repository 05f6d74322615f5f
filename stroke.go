package pathmesh

import "fmt"

// LineCap specifies the shape of open subpath ends.
type LineCap int

const (
	// LineCapButt ends the stroke flat at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound ends the stroke with a half disk.
	LineCapRound
	// LineCapSquare extends the stroke by half its width past the endpoint.
	LineCapSquare
)

// String returns the SVG name of the cap.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "unknown"
	}
}

// ParseLineCap parses the SVG names "butt", "round" and "square".
func ParseLineCap(s string) (LineCap, error) {
	for _, c := range []LineCap{LineCapButt, LineCapRound, LineCapSquare} {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("pathmesh: unknown line cap %q", s)
}

// LineJoin specifies the shape where two segments meet.
type LineJoin int

const (
	// LineJoinMiter extends the outer edges to their intersection, falling
	// back to a bevel past the miter limit.
	LineJoinMiter LineJoin = iota
	// LineJoinRound fills the junction with a disk.
	LineJoinRound
	// LineJoinBevel connects the outer corners with a straight edge.
	LineJoinBevel
)

// String returns the SVG name of the join.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return "unknown"
	}
}

// ParseLineJoin parses the SVG names "miter", "round" and "bevel".
func ParseLineJoin(s string) (LineJoin, error) {
	for _, j := range []LineJoin{LineJoinMiter, LineJoinRound, LineJoinBevel} {
		if j.String() == s {
			return j, nil
		}
	}
	return 0, fmt.Errorf("pathmesh: unknown line join %q", s)
}

// StrokeStyle describes how a path is stroked.
type StrokeStyle struct {
	// Width is the full stroke width. Default: 1.0
	Width float64

	// Cap is the shape of open subpath ends. Default: LineCapButt
	Cap LineCap

	// Join is the shape of segment junctions. Default: LineJoinMiter
	Join LineJoin

	// MiterLimit is the maximum ratio of miter length to stroke width
	// before a miter join becomes a bevel. Default: 4.0
	MiterLimit float64
}

// DefaultStrokeStyle returns a 1-unit stroke with butt caps and miter
// joins limited at 4.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
	}
}

// WithWidth returns a copy with the given width.
func (s StrokeStyle) WithWidth(w float64) StrokeStyle {
	s.Width = w
	return s
}

// WithCap returns a copy with the given cap.
func (s StrokeStyle) WithCap(lineCap LineCap) StrokeStyle {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy with the given join.
func (s StrokeStyle) WithJoin(join LineJoin) StrokeStyle {
	s.Join = join
	return s
}

// WithMiterLimit returns a copy with the given miter limit.
// A limit of 1 turns every miter into a bevel.
func (s StrokeStyle) WithMiterLimit(limit float64) StrokeStyle {
	s.MiterLimit = limit
	return s
}

// HalfWidth returns Width / 2.
func (s StrokeStyle) HalfWidth() float64 {
	return s.Width / 2
}

// Validate returns ErrInvalidStroke for a non-positive or non-finite
// width, a miter limit below 1, or an unknown cap or join.
func (s StrokeStyle) Validate() error {
	switch {
	case !(s.Width > 0) || !isFinite(s.Width):
		return fmt.Errorf("%w: width %g", ErrInvalidStroke, s.Width)
	case s.Join == LineJoinMiter && (!(s.MiterLimit >= 1) || !isFinite(s.MiterLimit)):
		return fmt.Errorf("%w: miter limit %g", ErrInvalidStroke, s.MiterLimit)
	case s.Cap < LineCapButt || s.Cap > LineCapSquare:
		return fmt.Errorf("%w: cap %d", ErrInvalidStroke, int(s.Cap))
	case s.Join < LineJoinMiter || s.Join > LineJoinBevel:
		return fmt.Errorf("%w: join %d", ErrInvalidStroke, int(s.Join))
	}
	return nil
}
