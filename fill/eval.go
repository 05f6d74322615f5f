package fill

import "github.com/gogpu/pathmesh"

// barycentric returns the weights of pt in tri, or ok=false when pt is
// outside it or the triangle is degenerate. Points on an edge are inside.
func barycentric(tri Triangle, pt pathmesh.Point) (w [3]float64, ok bool) {
	e1 := tri[1].Sub(tri[0])
	e2 := tri[2].Sub(tri[0])
	den := e1.Cross(e2)
	if den == 0 {
		return w, false
	}
	rel := pt.Sub(tri[0])
	w[1] = rel.Cross(e2) / den
	w[2] = e1.Cross(rel) / den
	w[0] = 1 - w[1] - w[2]
	const eps = -1e-12
	return w, w[0] >= eps && w[1] >= eps && w[2] >= eps
}

// Contains reports whether pt lies in the triangle (edges included).
func (t Triangle) Contains(pt pathmesh.Point) bool {
	_, ok := barycentric(t, pt)
	return ok
}

// Interpolate returns the (k, l, m) at pt, and whether pt is inside the
// triangle.
func (c CurveTriangle) Interpolate(pt pathmesh.Point) (KLM, bool) {
	w, ok := barycentric(c.P, pt)
	if !ok {
		return KLM{}, false
	}
	var out KLM
	for i, v := range c.KLM {
		out.K += w[i] * v.K
		out.L += w[i] * v.L
		out.M += w[i] * v.M
	}
	return out, true
}

// Winding returns the winding number the mesh assigns to pt, the sum a
// stencil pass accumulates for a sample at pt.
//
// Points exactly on a shared triangle edge are counted by every triangle
// touching them, so queries should avoid fan edges.
func (m *Mesh) Winding(pt pathmesh.Point) int {
	w := 0
	for _, tri := range m.Fan {
		if !tri.Contains(pt) {
			continue
		}
		if tri.Area() > 0 {
			w++
		} else {
			w--
		}
	}
	for _, ct := range m.Curves {
		klm, ok := ct.Interpolate(pt)
		if !ok || !EvalKLM(klm.K, klm.L, klm.M) {
			continue
		}
		if ct.Sign > 0 {
			w++
		} else {
			w--
		}
	}
	return w
}

// Covered applies the mesh's fill rule to Winding(pt).
func (m *Mesh) Covered(pt pathmesh.Point) bool {
	return m.Rule.Inside(m.Winding(pt))
}

// CoverQuad returns two triangles covering the mesh bounds plus a
// one-unit margin, for the stencil cover pass.
func (m *Mesh) CoverQuad() [2]Triangle {
	r := m.Bounds.Inset(coverPadding)
	a, b := r.Min, pathmesh.Pt(r.Max.X, r.Min.Y)
	c, d := r.Max, pathmesh.Pt(r.Min.X, r.Max.Y)
	return [2]Triangle{{a, b, c}, {a, c, d}}
}

// TriangleCount returns the total number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Fan) + len(m.Curves)
}
