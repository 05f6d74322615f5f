package pathmesh

import (
	"errors"
	"fmt"
)

// Subpath is a run of contiguous segments. Each segment starts exactly
// where the previous one ends; a closed subpath also ends where it starts.
type Subpath struct {
	Segments []Segment
	Closed   bool
}

// Start returns the start point of the first segment.
func (s Subpath) Start() Point {
	if len(s.Segments) == 0 {
		return Point{}
	}
	return s.Segments[0].Start()
}

// End returns the end point of the last segment.
func (s Subpath) End() Point {
	if len(s.Segments) == 0 {
		return Point{}
	}
	return s.Segments[len(s.Segments)-1].End()
}

// validate checks exact endpoint continuity and finiteness.
func (s Subpath) validate(index int) error {
	for i, seg := range s.Segments {
		if !segmentIsFinite(seg) {
			return fmt.Errorf("subpath %d segment %d: %w", index, i, ErrNonFinite)
		}
		if i > 0 {
			if prev, cur := s.Segments[i-1].End(), seg.Start(); prev != cur {
				return &ContiguityError{Subpath: index, Segment: i, Gap: cur.Sub(prev)}
			}
		}
	}
	if s.Closed && len(s.Segments) > 0 && s.End() != s.Start() {
		return &ContiguityError{Subpath: index, Segment: len(s.Segments), Gap: s.Start().Sub(s.End())}
	}
	return nil
}

// Path is an immutable sequence of subpaths. Build one with a PathBuilder,
// ParseSVGPath or NewPath.
type Path struct {
	subpaths []Subpath
}

// NewPath validates and copies the given subpaths into a Path.
// Empty subpaths are dropped.
func NewPath(subpaths ...Subpath) (*Path, error) {
	p := &Path{subpaths: make([]Subpath, 0, len(subpaths))}
	for _, sp := range subpaths {
		if len(sp.Segments) == 0 {
			continue
		}
		p.subpaths = append(p.subpaths, Subpath{
			Segments: append([]Segment(nil), sp.Segments...),
			Closed:   sp.Closed,
		})
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Subpaths returns the subpaths. The returned slice must not be modified.
func (p *Path) Subpaths() []Subpath {
	return p.subpaths
}

// Len returns the number of subpaths.
func (p *Path) Len() int {
	return len(p.subpaths)
}

// SegmentCount returns the total number of segments.
func (p *Path) SegmentCount() int {
	n := 0
	for _, sp := range p.subpaths {
		n += len(sp.Segments)
	}
	return n
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool {
	return p.SegmentCount() == 0
}

// HasCubics reports whether any segment is a CubicBez.
func (p *Path) HasCubics() bool {
	for _, sp := range p.subpaths {
		for _, seg := range sp.Segments {
			if _, ok := seg.(CubicBez); ok {
				return true
			}
		}
	}
	return false
}

// Validate checks that every subpath is contiguous and finite.
func (p *Path) Validate() error {
	for i, sp := range p.subpaths {
		if err := sp.validate(i); err != nil {
			return err
		}
	}
	return nil
}

// Bounds returns the tight bounding box of all segments.
func (p *Path) Bounds() Rect {
	var (
		bbox  Rect
		first = true
	)
	for _, sp := range p.subpaths {
		for _, seg := range sp.Segments {
			b := seg.BoundingBox()
			if first {
				bbox, first = b, false
			} else {
				bbox = bbox.Union(b)
			}
		}
	}
	return bbox
}

// Normalize returns a path in which every cubic is replaced by its
// quadratic approximation within tol. Lines and quadratics pass through
// unchanged.
//
// If some cubic cannot meet tol within the depth cap, the best-effort path
// is returned together with the joined *ToleranceError values.
func (p *Path) Normalize(tol Tolerance, opts ...ApproxOption) (*Path, error) {
	if err := tol.Validate(); err != nil {
		return nil, err
	}
	if !p.HasCubics() {
		return p, nil
	}

	var errs []error
	out := &Path{subpaths: make([]Subpath, len(p.subpaths))}
	for i, sp := range p.subpaths {
		segs := make([]Segment, 0, len(sp.Segments))
		for _, seg := range sp.Segments {
			c, ok := seg.(CubicBez)
			if !ok {
				segs = append(segs, seg)
				continue
			}
			approx, err := ApproximateCubic(c, tol, opts...)
			if err != nil {
				if !errors.Is(err, ErrToleranceUnsatisfiable) {
					return nil, err
				}
				errs = append(errs, err)
			}
			for _, q := range approx.Quads {
				segs = append(segs, q)
			}
		}
		out.subpaths[i] = Subpath{Segments: segs, Closed: sp.Closed}
	}
	return out, errors.Join(errs...)
}

// Transform returns a copy of the path with every point mapped through m.
func (p *Path) Transform(m Matrix) *Path {
	out := &Path{subpaths: make([]Subpath, len(p.subpaths))}
	for i, sp := range p.subpaths {
		segs := make([]Segment, len(sp.Segments))
		for j, seg := range sp.Segments {
			segs[j] = transformSegment(m, seg)
		}
		out.subpaths[i] = Subpath{Segments: segs, Closed: sp.Closed}
	}
	return out
}

func transformSegment(m Matrix, seg Segment) Segment {
	switch s := seg.(type) {
	case Line:
		return Line{P0: m.Apply(s.P0), P1: m.Apply(s.P1)}
	case QuadBez:
		return QuadBez{P0: m.Apply(s.P0), P1: m.Apply(s.P1), P2: m.Apply(s.P2)}
	case CubicBez:
		return CubicBez{P0: m.Apply(s.P0), P1: m.Apply(s.P1), P2: m.Apply(s.P2), P3: m.Apply(s.P3)}
	}
	return seg
}

func segmentIsFinite(seg Segment) bool {
	switch s := seg.(type) {
	case Line:
		return s.P0.IsFinite() && s.P1.IsFinite()
	case QuadBez:
		return s.P0.IsFinite() && s.P1.IsFinite() && s.P2.IsFinite()
	case CubicBez:
		return s.P0.IsFinite() && s.P1.IsFinite() && s.P2.IsFinite() && s.P3.IsFinite()
	}
	return false
}
