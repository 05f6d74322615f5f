package fill

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/pathmesh"
	"github.com/gogpu/pathmesh/internal/parallel"
)

// coverPadding is added around the mesh bounds by Mesh.CoverQuad so that
// anti-aliased edges stay inside the cover pass.
const coverPadding = 1.0

// Triangle is three positions.
type Triangle [3]pathmesh.Point

// Area returns the signed area. Positive is counter-clockwise in a y-up
// frame.
func (t Triangle) Area() float64 {
	return 0.5 * t[1].Sub(t[0]).Cross(t[2].Sub(t[0]))
}

// CurveTriangle is the control triangle of a quadratic with its
// implicit-function coordinates.
type CurveTriangle struct {
	P    Triangle
	KLM  [3]KLM
	Sign float64
}

// Stats summarizes a tessellation.
type Stats struct {
	Subpaths       int
	Segments       int
	FanTriangles   int
	CurveTriangles int
	// LinearQuads counts quadratics treated as straight edges.
	LinearQuads int
	// Cubics counts input cubics by classification.
	Cubics map[CurveType]int
}

// Mesh is the output of Tessellator.Tessellate.
type Mesh struct {
	Fan    []Triangle
	Curves []CurveTriangle
	Rule   pathmesh.FillRule
	Bounds pathmesh.Rect
	Stats  Stats
}

// Option configures a Tessellator.
type Option func(*Tessellator)

// WithTolerance sets the absolute cubic approximation tolerance.
// Default: pathmesh.DefaultFillTolerance.
func WithTolerance(tol pathmesh.Tolerance) Option {
	return func(t *Tessellator) {
		t.tol = tol
	}
}

// WithFillRule sets the rule recorded in the mesh. Default: nonzero.
func WithFillRule(rule pathmesh.FillRule) Option {
	return func(t *Tessellator) {
		t.rule = rule
	}
}

// WithWorkers sets how many goroutines tessellate subpaths. Values of 1 or
// less run sequentially. Default: 1.
func WithWorkers(n int) Option {
	return func(t *Tessellator) {
		t.workers = n
	}
}

// WithApproxOptions passes options to the cubic approximator.
func WithApproxOptions(opts ...pathmesh.ApproxOption) Option {
	return func(t *Tessellator) {
		t.approx = append(t.approx, opts...)
	}
}

// Tessellator builds fill meshes. It is safe for concurrent use; the
// worker pool, if any, is created on first use and released by Close.
type Tessellator struct {
	tol     pathmesh.Tolerance
	rule    pathmesh.FillRule
	workers int
	approx  []pathmesh.ApproxOption

	poolOnce sync.Once
	pool     *parallel.WorkerPool
}

// NewTessellator creates a tessellator.
func NewTessellator(opts ...Option) *Tessellator {
	t := &Tessellator{
		tol:     pathmesh.DefaultFillTolerance,
		rule:    pathmesh.FillRuleNonZero,
		workers: 1,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Close releases the worker pool. Later calls run sequentially.
func (t *Tessellator) Close() {
	// Finishing the once here orders the pool read after any creation
	// and stops later calls from starting a new pool.
	t.poolOnce.Do(func() {})
	if t.pool != nil {
		t.pool.Close()
	}
}

func (t *Tessellator) workerPool() *parallel.WorkerPool {
	if t.workers <= 1 {
		return nil
	}
	t.poolOnce.Do(func() {
		t.pool = parallel.NewWorkerPool(t.workers)
	})
	return t.pool
}

// Tessellate builds the fill mesh of p.
//
// Every subpath must be closed. If a cubic cannot meet the tolerance
// within the depth cap, the best-effort mesh is returned together with an
// error matching pathmesh.ErrToleranceUnsatisfiable.
func (t *Tessellator) Tessellate(p *pathmesh.Path) (*Mesh, error) {
	if err := t.tol.Validate(); err != nil {
		return nil, err
	}
	if p == nil || p.IsEmpty() {
		return nil, pathmesh.ErrEmptyPath
	}
	for i, sp := range p.Subpaths() {
		if !sp.Closed {
			return nil, &pathmesh.OpenSubpathError{Subpath: i}
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	stats := Stats{Subpaths: p.Len(), Cubics: make(map[CurveType]int)}
	for _, sp := range p.Subpaths() {
		for _, seg := range sp.Segments {
			if c, ok := seg.(pathmesh.CubicBez); ok {
				stats.Cubics[ClassifyCubic(c).Type]++
			}
		}
	}

	norm, approxErr := p.Normalize(t.tol, t.approx...)
	if norm == nil {
		return nil, approxErr
	}
	if approxErr != nil && !errors.Is(approxErr, pathmesh.ErrToleranceUnsatisfiable) {
		return nil, approxErr
	}

	parts := parallel.Map(t.workerPool(), norm.Subpaths(), func(_ int, sp pathmesh.Subpath) subpathMesh {
		return tessellateSubpath(sp)
	})

	mesh := &Mesh{Rule: t.rule}
	first := true
	include := func(tri Triangle) {
		for _, v := range tri {
			if first {
				mesh.Bounds = pathmesh.Rect{Min: v, Max: v}
				first = false
			} else {
				mesh.Bounds = mesh.Bounds.Include(v)
			}
		}
	}
	for _, part := range parts {
		mesh.Fan = append(mesh.Fan, part.fan...)
		mesh.Curves = append(mesh.Curves, part.curves...)
		stats.LinearQuads += part.linear
		stats.Segments += part.segments
	}
	for _, tri := range mesh.Fan {
		include(tri)
	}
	for _, ct := range mesh.Curves {
		include(ct.P)
	}
	stats.FanTriangles = len(mesh.Fan)
	stats.CurveTriangles = len(mesh.Curves)
	mesh.Stats = stats

	slogger().Debug("fill: tessellated path",
		slog.Int("subpaths", stats.Subpaths),
		slog.Int("segments", stats.Segments),
		slog.Int("fan", stats.FanTriangles),
		slog.Int("curves", stats.CurveTriangles),
		slog.Int("linear_quads", stats.LinearQuads),
		slog.String("rule", t.rule.String()))

	if approxErr != nil {
		return mesh, fmt.Errorf("fill: %w", approxErr)
	}
	return mesh, nil
}

type subpathMesh struct {
	fan      []Triangle
	curves   []CurveTriangle
	linear   int
	segments int
}

// tessellateSubpath fans every chord from the subpath start and adds a
// curve triangle for every quadratic with a usable control triangle.
func tessellateSubpath(sp pathmesh.Subpath) subpathMesh {
	var out subpathMesh
	anchor := sp.Start()
	out.segments = len(sp.Segments)

	emitFan := func(p0, p1 pathmesh.Point) {
		tri := Triangle{anchor, p0, p1}
		if tri.Area() == 0 {
			return
		}
		out.fan = append(out.fan, tri)
	}

	for _, seg := range sp.Segments {
		switch s := seg.(type) {
		case pathmesh.Line:
			emitFan(s.P0, s.P1)
		case pathmesh.QuadBez:
			emitFan(s.P0, s.P2)
			cls := ClassifyQuad(s)
			if cls.Type == CurveLine {
				out.linear++
				continue
			}
			out.curves = append(out.curves, CurveTriangle{
				P:    Triangle{s.P0, s.P1, s.P2},
				KLM:  cls.KLM,
				Sign: cls.Sign,
			})
		}
	}
	return out
}

func slogger() *slog.Logger {
	return pathmesh.Logger()
}
