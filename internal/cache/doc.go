// Package cache provides a small thread-safe LRU cache used to memoize
// glyph outlines.
//
//	c := cache.New[key, glyph.Glyph](256)
//	g, err := c.GetOrCreate(k, load)
package cache
