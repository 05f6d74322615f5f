package glyph

import (
	"github.com/go-text/typesetting/font"

	"github.com/gogpu/pathmesh"
	"github.com/gogpu/pathmesh/internal/cache"
)

// DefaultCacheSize is the outline capacity used when NewCache is given a
// non-positive size.
const DefaultCacheSize = 512

type outlineKey struct {
	r    rune
	size float64
}

// Cache memoizes outlines loaded from one face. It is safe for concurrent
// use. Cached paths are shared between callers and must not be modified.
type Cache struct {
	face     *font.Face
	outlines *cache.Cache[outlineKey, Glyph]
}

// NewCache returns a cache over face holding up to size outlines.
func NewCache(face *font.Face, size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Cache{face: face, outlines: cache.New[outlineKey, Glyph](size)}
}

// Glyph returns the outline of r at size, loading it on first use.
func (c *Cache) Glyph(r rune, size float64) (Glyph, error) {
	return c.outlines.GetOrCreate(outlineKey{r, size}, func() (Glyph, error) {
		return FromFace(c.face, r, size)
	})
}

// TextPath is TextPath with outlines served from the cache.
func (c *Cache) TextPath(s string, size float64) (*pathmesh.Path, float64, error) {
	return layoutText(s, func(r rune) (Glyph, error) { return c.Glyph(r, size) })
}

// Stats reports hit and eviction counts.
func (c *Cache) Stats() cache.Stats {
	return c.outlines.Stats()
}

// Reset drops every cached outline. Counters are kept.
func (c *Cache) Reset() {
	c.outlines.Clear()
}
