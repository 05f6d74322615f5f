// Package fill turns a closed path into Loop–Blinn fill geometry.
//
// The mesh has two parts. Fan triangles connect every segment's chord to
// the start of its subpath; rendered with a winding-counting stencil they
// produce the polygon with straight chords. Curve triangles cover each
// quadratic's control triangle and carry texture coordinates (k, l, m)
// whose implicit function k² - l·m is negative exactly between the chord
// and the curve, adding or removing that sliver.
//
// Mesh.Winding and Mesh.Covered evaluate the same contract on the CPU and
// are the reference for the GPU shaders in package gpu.
//
// Example:
//
//	t := fill.NewTessellator(fill.WithFillRule(pathmesh.FillRuleEvenOdd))
//	defer t.Close()
//	mesh, err := t.Tessellate(path)
package fill
