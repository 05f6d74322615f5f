package glyph

import (
	"fmt"

	"github.com/go-text/typesetting/font"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/pathmesh"
)

// TextPath lays s out on one baseline starting at the origin and returns
// the union of its glyph outlines and the total advance. s is normalized
// to NFC first so that combining sequences map to precomposed glyphs.
// No shaping is done: each rune takes its nominal glyph and advance.
func TextPath(face *font.Face, s string, size float64) (*pathmesh.Path, float64, error) {
	return layoutText(s, func(r rune) (Glyph, error) { return FromFace(face, r, size) })
}

func layoutText(s string, load func(rune) (Glyph, error)) (*pathmesh.Path, float64, error) {
	s = norm.NFC.String(s)

	var subpaths []pathmesh.Subpath
	pen := 0.0
	for _, r := range s {
		g, err := load(r)
		if err != nil {
			return nil, 0, err
		}
		if g.Path != nil {
			placed := g.Path.Transform(pathmesh.Translate(pen, 0))
			subpaths = append(subpaths, placed.Subpaths()...)
		}
		pen += g.Advance
	}
	if len(subpaths) == 0 {
		return nil, pen, pathmesh.ErrEmptyPath
	}
	p, err := pathmesh.NewPath(subpaths...)
	if err != nil {
		return nil, 0, fmt.Errorf("glyph: text %q: %w", s, err)
	}
	return p, pen, nil
}
