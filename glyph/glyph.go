package glyph

import (
	"errors"
	"fmt"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/pathmesh"
)

var (
	// ErrNoGlyph is returned when a font has no glyph for a rune.
	ErrNoGlyph = errors.New("glyph: rune not in font")

	// ErrNotOutline is returned for bitmap or color glyphs.
	ErrNotOutline = errors.New("glyph: glyph has no vector outline")

	// ErrInvalidSize is returned for a size that is not positive.
	ErrInvalidSize = errors.New("glyph: size must be positive")
)

// Glyph is one glyph outline. Path is nil for glyphs without contours,
// such as the space.
type Glyph struct {
	Rune    rune
	Path    *pathmesh.Path
	Advance float64
}

// contourBuilder closes every contour before the next one starts.
type contourBuilder struct {
	b    *pathmesh.PathBuilder
	open bool
}

func newContourBuilder() *contourBuilder {
	return &contourBuilder{b: pathmesh.BuildPath()}
}

func (c *contourBuilder) moveTo(p pathmesh.Point) {
	if c.open {
		c.b.Close()
	}
	c.b.MoveTo(p.X, p.Y)
	c.open = true
}

func (c *contourBuilder) lineTo(p pathmesh.Point) { c.b.LineTo(p.X, p.Y) }

func (c *contourBuilder) quadTo(p1, p2 pathmesh.Point) { c.b.QuadTo(p1.X, p1.Y, p2.X, p2.Y) }

func (c *contourBuilder) cubicTo(p1, p2, p3 pathmesh.Point) {
	c.b.CubicTo(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
}

func (c *contourBuilder) build() (*pathmesh.Path, error) {
	if !c.open {
		return nil, nil
	}
	c.b.Close()
	p, err := c.b.Build()
	if err != nil {
		return nil, err
	}
	if p.IsEmpty() {
		return nil, nil
	}
	return p, nil
}

// FromSFNT loads the outline of r from f at size pixels per em.
func FromSFNT(f *sfnt.Font, r rune, size float64) (Glyph, error) {
	if !(size > 0) {
		return Glyph{}, fmt.Errorf("%w: %g", ErrInvalidSize, size)
	}
	var buf sfnt.Buffer
	gid, err := f.GlyphIndex(&buf, r)
	if err != nil {
		return Glyph{}, fmt.Errorf("glyph: index of %q: %w", r, err)
	}
	if gid == 0 {
		return Glyph{}, fmt.Errorf("%w: %q", ErrNoGlyph, r)
	}

	ppem := fixed.Int26_6(size * 64)
	segments, err := f.LoadGlyph(&buf, gid, ppem, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return Glyph{}, fmt.Errorf("%w: %q", ErrNotOutline, r)
		}
		return Glyph{}, fmt.Errorf("glyph: load %q: %w", r, err)
	}
	advance, err := f.GlyphAdvance(&buf, gid, ppem, xfont.HintingNone)
	if err != nil {
		return Glyph{}, fmt.Errorf("glyph: advance of %q: %w", r, err)
	}

	// sfnt coordinates are y-down.
	pt := func(p fixed.Point26_6) pathmesh.Point {
		return pathmesh.Pt(fixedToFloat64(p.X), -fixedToFloat64(p.Y))
	}
	c := newContourBuilder()
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			c.moveTo(pt(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			c.lineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			c.quadTo(pt(seg.Args[0]), pt(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			c.cubicTo(pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		}
	}
	p, err := c.build()
	if err != nil {
		return Glyph{}, fmt.Errorf("glyph: outline of %q: %w", r, err)
	}
	return Glyph{Rune: r, Path: p, Advance: fixedToFloat64(advance)}, nil
}

// FromFace loads the outline of r from face at size pixels per em.
func FromFace(face *font.Face, r rune, size float64) (Glyph, error) {
	if !(size > 0) {
		return Glyph{}, fmt.Errorf("%w: %g", ErrInvalidSize, size)
	}
	gid, ok := face.NominalGlyph(r)
	if !ok {
		return Glyph{}, fmt.Errorf("%w: %q", ErrNoGlyph, r)
	}
	return fromGID(face, r, gid, size)
}

func fromGID(face *font.Face, r rune, gid font.GID, size float64) (Glyph, error) {
	outline, ok := face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return Glyph{}, fmt.Errorf("%w: %q", ErrNotOutline, r)
	}
	scale := size / float64(face.Upem())

	pt := func(p opentype.SegmentPoint) pathmesh.Point {
		return pathmesh.Pt(float64(p.X)*scale, float64(p.Y)*scale)
	}
	c := newContourBuilder()
	for _, seg := range outline.Segments {
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			c.moveTo(pt(seg.Args[0]))
		case opentype.SegmentOpLineTo:
			c.lineTo(pt(seg.Args[0]))
		case opentype.SegmentOpQuadTo:
			c.quadTo(pt(seg.Args[0]), pt(seg.Args[1]))
		case opentype.SegmentOpCubeTo:
			c.cubicTo(pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		}
	}
	p, err := c.build()
	if err != nil {
		return Glyph{}, fmt.Errorf("glyph: outline of %q: %w", r, err)
	}
	return Glyph{
		Rune:    r,
		Path:    p,
		Advance: float64(face.HorizontalAdvance(gid)) * scale,
	}, nil
}

func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
