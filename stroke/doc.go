// Package stroke turns a path into quad-based stroke geometry that is
// evaluated analytically per fragment.
//
// Every quadratic piece of the normalized path becomes one oriented quad
// conservatively covering the piece's band of half-width w. Each quad
// vertex carries the coefficients of the nearest-point cubic
//
//	a·t³ + b·t² + c·t + d = 0, a = B·B, b = 3A·B, c = 2A·A + M·B, d = M·A
//
// in depressed form, with M = P0 - P. Because c and d are affine in P, the
// depressed coefficients interpolate exactly across the quad, and a
// fragment solves s³ + p·s + q = 0 to find its distance to the curve.
//
// Eval is the per-fragment contract; Mesh.Covered applies it on the CPU
// as the reference for the stroke_quad shader in package gpu.
package stroke
