// Package glyph converts font glyph outlines into pathmesh paths.
//
// Outlines come either from golang.org/x/image/font/sfnt or from a
// go-text/typesetting face. Paths are in a y-up frame with the baseline
// at y = 0 and one unit per pixel at the requested size. Every contour
// is closed, so glyph paths can be filled directly. Cache memoizes
// outlines per rune and size.
package glyph
