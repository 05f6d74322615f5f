package glyph

import (
	"errors"
	"testing"
)

func TestCache(t *testing.T) {
	face := loadFace(t)
	c := NewCache(face, 0)

	p, adv, err := c.TextPath("OOO", 30)
	if err != nil {
		t.Fatalf("TextPath: %v", err)
	}
	want, wantAdv, err := TextPath(face, "OOO", 30)
	if err != nil {
		t.Fatal(err)
	}
	if p.SegmentCount() != want.SegmentCount() || adv != wantAdv {
		t.Errorf("cached text differs: %d segments, advance %v; want %d, %v",
			p.SegmentCount(), adv, want.SegmentCount(), wantAdv)
	}
	if p.Bounds() != want.Bounds() {
		t.Errorf("bounds %v, want %v", p.Bounds(), want.Bounds())
	}

	s := c.Stats()
	if s.Misses != 1 || s.Hits != 2 {
		t.Errorf("hits/misses = %d/%d, want 2/1", s.Hits, s.Misses)
	}

	// A different size is a different outline.
	if _, err := c.Glyph('O', 31); err != nil {
		t.Fatal(err)
	}
	if got := c.Stats().Len; got != 2 {
		t.Errorf("Len = %d, want 2", got)
	}
}

func TestCache_ErrorsNotCached(t *testing.T) {
	c := NewCache(loadFace(t), 4)
	for range 2 {
		if _, err := c.Glyph('O', 0); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("err = %v, want ErrInvalidSize", err)
		}
	}
	if s := c.Stats(); s.Len != 0 || s.Misses != 2 {
		t.Errorf("stats = %+v", s)
	}
}

func TestCache_Reset(t *testing.T) {
	c := NewCache(loadFace(t), 4)
	if _, _, err := c.TextPath("OK", 20); err != nil {
		t.Fatal(err)
	}
	if got := c.Stats().Len; got != 2 {
		t.Fatalf("Len = %d, want 2", got)
	}

	c.Reset()
	if got := c.Stats().Len; got != 0 {
		t.Errorf("Len after Reset = %d", got)
	}
	if _, err := c.Glyph('O', 20); err != nil {
		t.Fatal(err)
	}
	if s := c.Stats(); s.Len != 1 || s.Misses != 3 {
		t.Errorf("stats after reload = %+v, want Len 1 and 3 misses", s)
	}
}
