// Package pathmesh turns vector paths into GPU-ready geometry.
//
// # Overview
//
// A path of lines, quadratic and cubic Bézier segments is converted into
// vertex data for two operations:
//
//   - filling, via a triangle fan plus Loop–Blinn curve triangles whose
//     signed contributions are accumulated under a nonzero or even-odd
//     rule (package fill);
//   - stroking, via conservative quads around each quadratic segment whose
//     vertices carry the coefficients of the nearest-point cubic, solved
//     per fragment (package stroke).
//
// Cubics are never rendered directly. They are replaced by quadratic
// chains with a closed-form error bound (ApproximateCubic), so every
// downstream stage only sees lines and quadratics.
//
// # Quick Start
//
//	path, err := pathmesh.BuildPath().
//		MoveTo(0, 0).
//		CubicTo(40, 80, 120, 80, 160, 0).
//		Close().
//		Build()
//	if err != nil {
//		return err
//	}
//
//	mesh, err := fill.NewTessellator(fill.WithFillRule(pathmesh.FillRuleEvenOdd)).Tessellate(path)
//
// # Package Layout
//
//   - pathmesh: points, curves, paths, the cubic solver and the approximator
//   - fill: Loop–Blinn classification and fill tessellation
//   - stroke: stroke outline generation and the distance test
//   - gpu: vertex layouts, stencil states, shaders and buffer upload
//   - glyph: font glyph outlines as paths
//
// # Coordinate System
//
// No orientation is assumed. Winding signs follow the signed area in the
// input frame, so a y-down path and its y-up mirror produce opposite
// signs with the same coverage.
package pathmesh

// Version is the current version of the module.
const Version = "0.1.0"
