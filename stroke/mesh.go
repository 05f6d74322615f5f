package stroke

import (
	"math"

	"github.com/gogpu/pathmesh"
)

// QuadIndices splits a Quad into two triangles.
var QuadIndices = [6]uint16{0, 1, 2, 0, 2, 3}

// Quad is the oriented rectangle covering one piece's band. Vertices run
// around the rectangle.
type Quad struct {
	Vertices [4]Vertex
	// Piece is the quadratic the quad was built for.
	Piece pathmesh.QuadBez
}

// Interpolate returns the attributes at pt, and whether pt is inside the
// quad.
func (q Quad) Interpolate(pt pathmesh.Point) (Vertex, bool) {
	v := q.Vertices
	for _, tri := range [2][3]int{{0, 1, 2}, {0, 2, 3}} {
		a, b, c := v[tri[0]], v[tri[1]], v[tri[2]]
		if w, ok := barycentric(a.Position, b.Position, c.Position, pt); ok {
			return lerpVertex(a, b, c, w), true
		}
	}
	return Vertex{}, false
}

// Triangle is a solid join or cap triangle.
type Triangle [3]pathmesh.Point

// Contains reports whether pt lies in the triangle (edges included).
func (t Triangle) Contains(pt pathmesh.Point) bool {
	_, ok := barycentric(t[0], t[1], t[2], pt)
	return ok
}

// Stats summarizes stroke generation.
type Stats struct {
	Subpaths int
	// Pieces is the number of quads.
	Pieces int
	// StraightPieces counts pieces evaluated as lines.
	StraightPieces int
	// SplitOvershoots counts collinear quadratics that double back and
	// were split at their extremum.
	SplitOvershoots int
	Joins           int
	Caps            int
}

// Mesh is the output of Generator.Generate.
type Mesh struct {
	Quads []Quad
	// Solid holds bevel and miter join wedges and square caps.
	Solid       []Triangle
	HalfWidth   float64
	HalfWidthSq float64
	Bounds      pathmesh.Rect
	Stats       Stats
}

// Covered reports whether pt is inside the stroke: inside some quad whose
// interpolated attributes pass Eval, or inside a solid triangle.
func (m *Mesh) Covered(pt pathmesh.Point) bool {
	for _, q := range m.Quads {
		v, ok := q.Interpolate(pt)
		if !ok {
			continue
		}
		if covered, _ := Eval(v, m.HalfWidthSq); covered {
			return true
		}
	}
	for _, t := range m.Solid {
		if t.Contains(pt) {
			return true
		}
	}
	return false
}

// Distance returns the smallest Eval distance over the quads containing
// pt, or +Inf when no quad contains it.
func (m *Mesh) Distance(pt pathmesh.Point) float64 {
	best := math.Inf(1)
	for _, q := range m.Quads {
		if v, ok := q.Interpolate(pt); ok {
			if _, d := Eval(v, m.HalfWidthSq); d < best {
				best = d
			}
		}
	}
	return best
}

func barycentric(a, b, c, pt pathmesh.Point) (w [3]float64, ok bool) {
	e1, e2 := b.Sub(a), c.Sub(a)
	den := e1.Cross(e2)
	if den == 0 {
		return w, false
	}
	rel := pt.Sub(a)
	w[1] = rel.Cross(e2) / den
	w[2] = e1.Cross(rel) / den
	w[0] = 1 - w[1] - w[2]
	const eps = -1e-12
	return w, w[0] >= eps && w[1] >= eps && w[2] >= eps
}
