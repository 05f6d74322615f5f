package pathmesh

import (
	"fmt"
	"math"
)

// circleKappa is the control distance, as a fraction of the radius, for a
// cubic approximating a quarter circle.
const circleKappa = 0.5522847498

// PathBuilder accumulates drawing commands into a Path.
// All methods return the builder for chaining. The first error is kept
// and reported by Build; later commands are ignored.
//
// Example:
//
//	path, err := pathmesh.BuildPath().
//		MoveTo(0, 0).
//		QuadTo(1, 2, 2, 0).
//		Close().
//		Build()
type PathBuilder struct {
	subpaths []Subpath
	segs     []Segment

	start, current Point
	hasCurrent     bool

	err error
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{}
}

// CurrentPoint returns the pen position, if any.
func (b *PathBuilder) CurrentPoint() (Point, bool) {
	return b.current, b.hasCurrent
}

// MoveTo ends the current subpath (leaving it open) and starts a new one.
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	p := Pt(x, y)
	if !b.check("MoveTo", false, p) {
		return b
	}
	b.flush(false)
	b.start, b.current, b.hasCurrent = p, p, true
	return b
}

// LineTo adds a line from the current point.
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	p := Pt(x, y)
	if !b.check("LineTo", true, p) {
		return b
	}
	if p != b.current {
		b.segs = append(b.segs, Line{P0: b.current, P1: p})
	}
	b.current = p
	return b
}

// QuadTo adds a quadratic curve with control point (cx, cy).
func (b *PathBuilder) QuadTo(cx, cy, x, y float64) *PathBuilder {
	c, p := Pt(cx, cy), Pt(x, y)
	if !b.check("QuadTo", true, c, p) {
		return b
	}
	if c != b.current || p != b.current {
		b.segs = append(b.segs, QuadBez{P0: b.current, P1: c, P2: p})
	}
	b.current = p
	return b
}

// CubicTo adds a cubic curve with control points (c1x, c1y) and (c2x, c2y).
func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder {
	c1, c2, p := Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y)
	if !b.check("CubicTo", true, c1, c2, p) {
		return b
	}
	if c1 != b.current || c2 != b.current || p != b.current {
		b.segs = append(b.segs, CubicBez{P0: b.current, P1: c1, P2: c2, P3: p})
	}
	b.current = p
	return b
}

// RelMoveTo is MoveTo relative to the current point (or the origin).
func (b *PathBuilder) RelMoveTo(dx, dy float64) *PathBuilder {
	o := b.current
	return b.MoveTo(o.X+dx, o.Y+dy)
}

// RelLineTo is LineTo relative to the current point.
func (b *PathBuilder) RelLineTo(dx, dy float64) *PathBuilder {
	o := b.current
	return b.LineTo(o.X+dx, o.Y+dy)
}

// RelQuadTo is QuadTo with all points relative to the current point.
func (b *PathBuilder) RelQuadTo(dcx, dcy, dx, dy float64) *PathBuilder {
	o := b.current
	return b.QuadTo(o.X+dcx, o.Y+dcy, o.X+dx, o.Y+dy)
}

// RelCubicTo is CubicTo with all points relative to the current point.
func (b *PathBuilder) RelCubicTo(dc1x, dc1y, dc2x, dc2y, dx, dy float64) *PathBuilder {
	o := b.current
	return b.CubicTo(o.X+dc1x, o.Y+dc1y, o.X+dc2x, o.Y+dc2y, o.X+dx, o.Y+dy)
}

// Close adds a line back to the subpath start if needed and marks the
// subpath closed. The current point moves to the subpath start.
func (b *PathBuilder) Close() *PathBuilder {
	if !b.check("Close", true) {
		return b
	}
	if len(b.segs) > 0 && b.current != b.start {
		b.segs = append(b.segs, Line{P0: b.current, P1: b.start})
	}
	b.flush(true)
	b.current = b.start
	return b
}

// Rect adds a closed axis-aligned rectangle.
func (b *PathBuilder) Rect(x, y, w, h float64) *PathBuilder {
	return b.MoveTo(x, y).LineTo(x+w, y).LineTo(x+w, y+h).LineTo(x, y+h).Close()
}

// Ellipse adds a closed ellipse made of four cubic arcs.
func (b *PathBuilder) Ellipse(cx, cy, rx, ry float64) *PathBuilder {
	kx := circleKappa * rx
	ky := circleKappa * ry
	return b.MoveTo(cx+rx, cy).
		CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry).
		CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy).
		CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry).
		CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy).
		Close()
}

// Circle adds a closed circle.
func (b *PathBuilder) Circle(cx, cy, r float64) *PathBuilder {
	return b.Ellipse(cx, cy, r, r)
}

// Polygon adds a closed regular polygon with its first vertex at the top.
func (b *PathBuilder) Polygon(cx, cy, radius float64, sides int) *PathBuilder {
	if sides < 3 {
		return b
	}
	step := 2 * math.Pi / float64(sides)
	for i := range sides {
		sin, cos := math.Sincos(-math.Pi/2 + float64(i)*step)
		x, y := cx+radius*cos, cy+radius*sin
		if i == 0 {
			b.MoveTo(x, y)
		} else {
			b.LineTo(x, y)
		}
	}
	return b.Close()
}

// Build validates and returns the path, or the first error recorded.
func (b *PathBuilder) Build() (*Path, error) {
	if b.err != nil {
		return nil, b.err
	}
	b.flush(false)
	return NewPath(b.subpaths...)
}

// check records the first error and reports whether the command may proceed.
func (b *PathBuilder) check(op string, needCurrent bool, pts ...Point) bool {
	if b.err != nil {
		return false
	}
	if needCurrent && !b.hasCurrent {
		b.err = fmt.Errorf("%s: %w", op, ErrNoCurrentPoint)
		return false
	}
	for _, p := range pts {
		if !p.IsFinite() {
			b.err = fmt.Errorf("%s(%v): %w", op, p, ErrNonFinite)
			return false
		}
	}
	return true
}

// flush moves the pending segments into a finished subpath.
func (b *PathBuilder) flush(closed bool) {
	if len(b.segs) == 0 {
		return
	}
	b.subpaths = append(b.subpaths, Subpath{Segments: b.segs, Closed: closed})
	b.segs = nil
}
