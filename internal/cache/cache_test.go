package cache

import (
	"errors"
	"strconv"
	"sync"
	"testing"
)

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](10)
	c.Set("key1", 42)

	val, ok := c.Get("key1")
	if !ok || val != 42 {
		t.Errorf("Get(key1) = %d, %v; want 42, true", val, ok)
	}
	if _, ok := c.Get("nonexistent"); ok {
		t.Error("expected nonexistent key to be absent")
	}

	c.Set("key1", 7)
	if val, _ := c.Get("key1"); val != 7 {
		t.Errorf("overwrite: got %d, want 7", val)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](3)
	for i := range 3 {
		c.Set(i, i)
	}
	// Touch 0 so 1 becomes the oldest.
	c.Get(0)
	c.Set(3, 3)

	if _, ok := c.Get(1); ok {
		t.Error("key 1 should have been evicted")
	}
	for _, k := range []int{0, 2, 3} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("key %d missing", k)
		}
	}
	if s := c.Stats(); s.Evictions != 1 || s.Len != 3 {
		t.Errorf("stats = %+v", s)
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](10)
	calls := 0
	create := func() (int, error) {
		calls++
		return 100, nil
	}

	for range 2 {
		val, err := c.GetOrCreate("key", create)
		if err != nil || val != 100 {
			t.Fatalf("GetOrCreate = %d, %v", val, err)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	errBoom := errors.New("boom")
	if _, err := c.GetOrCreate("bad", func() (int, error) { return 0, errBoom }); !errors.Is(err, errBoom) {
		t.Errorf("err = %v, want boom", err)
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("failed create was cached")
	}

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 3 {
		t.Errorf("hits/misses = %d/%d, want 1/3", s.Hits, s.Misses)
	}
	if s.HitRate != 0.25 {
		t.Errorf("HitRate = %v, want 0.25", s.HitRate)
	}
}

func TestCacheClear(t *testing.T) {
	c := New[string, int](0)
	for i := range 100 {
		c.Set(strconv.Itoa(i), i)
	}
	if c.Len() != 100 {
		t.Fatalf("unlimited cache evicted: Len = %d", c.Len())
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d", c.Len())
	}
	c.Set("a", 1)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Error("cache unusable after Clear")
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int, int](16)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				k := (g + i) % 32
				v, err := c.GetOrCreate(k, func() (int, error) { return k * 2, nil })
				if err != nil || v != k*2 {
					t.Errorf("GetOrCreate(%d) = %d, %v", k, v, err)
					return
				}
			}
		}()
	}
	wg.Wait()
	if c.Len() > 16 {
		t.Errorf("Len = %d exceeds capacity", c.Len())
	}
}
