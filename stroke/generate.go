package stroke

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/gogpu/pathmesh"
	"github.com/gogpu/pathmesh/internal/parallel"
	istroke "github.com/gogpu/pathmesh/internal/stroke"
)

// Option configures a Generator.
type Option func(*Generator)

// WithTolerance sets the cubic approximation tolerance as a fraction of
// the stroke half-width. Default: pathmesh.DefaultStrokeTolerance.
func WithTolerance(tol pathmesh.Tolerance) Option {
	return func(g *Generator) {
		g.tol = tol
	}
}

// WithWorkers sets how many goroutines process subpaths. Values below 2
// keep generation on the calling goroutine.
func WithWorkers(n int) Option {
	return func(g *Generator) {
		g.workers = n
	}
}

// WithApproxOptions passes options to cubic approximation.
func WithApproxOptions(opts ...pathmesh.ApproxOption) Option {
	return func(g *Generator) {
		g.approx = append(g.approx, opts...)
	}
}

// Generator builds stroke meshes for one style. It is safe for concurrent
// use; Close releases its worker pool.
type Generator struct {
	style   pathmesh.StrokeStyle
	tol     pathmesh.Tolerance
	workers int
	approx  []pathmesh.ApproxOption

	poolOnce sync.Once
	pool     *parallel.WorkerPool
}

// NewGenerator creates a generator for style.
func NewGenerator(style pathmesh.StrokeStyle, opts ...Option) *Generator {
	g := &Generator{
		style:   style,
		tol:     pathmesh.DefaultStrokeTolerance,
		workers: 1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Style returns the stroke style.
func (g *Generator) Style() pathmesh.StrokeStyle { return g.style }

// Close releases the worker pool. Later calls run sequentially.
func (g *Generator) Close() {
	// Finishing the once here orders the pool read after any creation
	// and stops later calls from starting a new pool.
	g.poolOnce.Do(func() {})
	if g.pool != nil {
		g.pool.Close()
	}
}

func (g *Generator) workerPool() *parallel.WorkerPool {
	if g.workers <= 1 {
		return nil
	}
	g.poolOnce.Do(func() {
		g.pool = parallel.NewWorkerPool(g.workers)
	})
	return g.pool
}

// Generate builds the stroke mesh of p.
//
// Cubics are approximated to the tolerance scaled by the half-width. If a
// cubic cannot meet it within the depth cap, the best-effort mesh is
// returned together with an error matching
// pathmesh.ErrToleranceUnsatisfiable.
func (g *Generator) Generate(p *pathmesh.Path) (*Mesh, error) {
	if err := g.style.Validate(); err != nil {
		return nil, err
	}
	if err := g.tol.Validate(); err != nil {
		return nil, err
	}
	if p == nil || p.IsEmpty() {
		return nil, pathmesh.ErrEmptyPath
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	hw := g.style.HalfWidth()
	norm, approxErr := p.Normalize(g.tol.Scale(hw), g.approx...)
	if norm == nil {
		return nil, approxErr
	}
	if approxErr != nil && !errors.Is(approxErr, pathmesh.ErrToleranceUnsatisfiable) {
		return nil, approxErr
	}

	parts := parallel.Map(g.workerPool(), norm.Subpaths(), func(_ int, sp pathmesh.Subpath) subpathStroke {
		return strokeSubpath(sp, g.style)
	})

	mesh := &Mesh{
		HalfWidth:   hw,
		HalfWidthSq: hw * hw,
		Stats:       Stats{Subpaths: p.Len()},
	}
	for _, part := range parts {
		mesh.Quads = append(mesh.Quads, part.quads...)
		mesh.Solid = append(mesh.Solid, part.solid...)
		mesh.Stats.StraightPieces += part.straight
		mesh.Stats.SplitOvershoots += part.overshoots
		mesh.Stats.Joins += part.joins
		mesh.Stats.Caps += part.caps
	}
	mesh.Stats.Pieces = len(mesh.Quads)
	mesh.Bounds = meshBounds(mesh)

	slogger().Debug("stroke: generated mesh",
		slog.Int("subpaths", mesh.Stats.Subpaths),
		slog.Int("quads", mesh.Stats.Pieces),
		slog.Int("solid", len(mesh.Solid)),
		slog.Int("straight", mesh.Stats.StraightPieces),
		slog.Float64("half_width", hw),
		slog.String("join", g.style.Join.String()),
		slog.String("cap", g.style.Cap.String()))

	if approxErr != nil {
		return mesh, fmt.Errorf("stroke: %w", approxErr)
	}
	return mesh, nil
}

func meshBounds(m *Mesh) pathmesh.Rect {
	var bounds pathmesh.Rect
	first := true
	include := func(v pathmesh.Point) {
		if first {
			bounds = pathmesh.Rect{Min: v, Max: v}
			first = false
			return
		}
		bounds = bounds.Include(v)
	}
	for _, q := range m.Quads {
		for _, v := range q.Vertices {
			include(v.Position)
		}
	}
	for _, t := range m.Solid {
		for _, v := range t {
			include(v)
		}
	}
	return bounds
}

// piece is one quadratic of the stroke, possibly a straight span.
type piece struct {
	desc     pathmesh.QuadraticDescriptor
	straight bool
}

func (pc piece) start() pathmesh.Point { return pc.desc.Quad.P0 }
func (pc piece) end() pathmesh.Point   { return pc.desc.Quad.P2 }

// startTangent is the direction leaving P0.
func (pc piece) startTangent() pathmesh.Point {
	q := pc.desc.Quad
	if d := q.P1.Sub(q.P0); d != (pathmesh.Point{}) {
		return d
	}
	return q.P2.Sub(q.P0)
}

// endTangent is the direction arriving at P2.
func (pc piece) endTangent() pathmesh.Point {
	q := pc.desc.Quad
	if d := q.P2.Sub(q.P1); d != (pathmesh.Point{}) {
		return d
	}
	return q.P2.Sub(q.P0)
}

func straightPiece(a, b pathmesh.Point) (piece, bool) {
	if a == b {
		return piece{}, false
	}
	q := pathmesh.Line{P0: a, P1: b}.Quad()
	return piece{
		desc: pathmesh.QuadraticDescriptor{
			Quad: q,
			A:    b.Sub(a).Mul(0.5),
		},
		straight: true,
	}, true
}

type subpathStroke struct {
	quads      []Quad
	solid      []Triangle
	straight   int
	overshoots int
	joins      int
	caps       int
}

// appendPieces adds q, splitting a collinear quadratic that doubles back
// at its extremum so each straight piece runs one way.
func (out *subpathStroke) appendPieces(pieces []piece, q pathmesh.QuadBez) []piece {
	if q.P0 == q.P1 && q.P1 == q.P2 {
		return pieces
	}
	d := pathmesh.Describe(q)
	if !d.IsLinear() {
		return append(pieces, piece{desc: d})
	}
	if bb := d.B.Dot(d.B); bb > 0 {
		if t := -d.A.Dot(d.B) / bb; t > 0 && t < 1 {
			ext := q.Eval(t)
			out.overshoots++
			if pc, ok := straightPiece(q.P0, ext); ok {
				pieces = append(pieces, pc)
			}
			if pc, ok := straightPiece(ext, q.P2); ok {
				pieces = append(pieces, pc)
			}
			return pieces
		}
	}
	if pc, ok := straightPiece(q.P0, q.P2); ok {
		pieces = append(pieces, pc)
	}
	return pieces
}

func strokeSubpath(sp pathmesh.Subpath, style pathmesh.StrokeStyle) subpathStroke {
	var out subpathStroke
	hw := style.HalfWidth()

	var pieces []piece
	for _, seg := range sp.Segments {
		switch s := seg.(type) {
		case pathmesh.Line:
			if pc, ok := straightPiece(s.P0, s.P1); ok {
				pieces = append(pieces, pc)
			}
		case pathmesh.QuadBez:
			pieces = out.appendPieces(pieces, s)
		}
	}
	if len(pieces) == 0 {
		return out
	}

	masks := make([]Caps, len(pieces))
	addSolid := func(g istroke.Geometry) {
		for _, t := range g.Triangles {
			out.solid = append(out.solid, Triangle(t))
		}
	}
	join := func(prev, next int) {
		g := istroke.Join(pieces[next].start(), pieces[prev].endTangent(), pieces[next].startTangent(),
			hw, style.Join, style.MiterLimit)
		if g.Masked {
			masks[prev] |= NoEndCap
			masks[next] |= NoStartCap
		}
		addSolid(g)
		out.joins++
	}

	for i := 1; i < len(pieces); i++ {
		join(i-1, i)
	}
	last := len(pieces) - 1
	if sp.Closed {
		if last > 0 {
			join(last, 0)
		}
	} else {
		start := istroke.Cap(pieces[0].start(), pieces[0].startTangent().Neg(), hw, style.Cap)
		end := istroke.Cap(pieces[last].end(), pieces[last].endTangent(), hw, style.Cap)
		if start.Masked {
			masks[0] |= NoStartCap
		}
		if end.Masked {
			masks[last] |= NoEndCap
		}
		addSolid(start)
		addSolid(end)
		out.caps += 2
	}

	out.quads = make([]Quad, len(pieces))
	for i, pc := range pieces {
		if pc.straight {
			out.straight++
		}
		corners := boundingQuad(pc.desc.Quad, hw)
		q := Quad{Piece: pc.desc.Quad}
		for j, c := range corners {
			q.Vertices[j] = newVertex(c, pc.desc, masks[i])
		}
		out.quads[i] = q
	}
	return out
}

// boundingQuad returns a rectangle aligned with the chord of q that
// contains the control polygon grown by halfWidth.
func boundingQuad(q pathmesh.QuadBez, halfWidth float64) [4]pathmesh.Point {
	axis := q.P2.Sub(q.P0)
	if axis.LengthSquared() == 0 {
		axis = q.P1.Sub(q.P0)
	}
	axis = axis.Normalize()
	if axis == (pathmesh.Point{}) {
		axis = pathmesh.Pt(1, 0)
	}
	normal := axis.Perp()

	umin, umax := math.Inf(1), math.Inf(-1)
	vmin, vmax := math.Inf(1), math.Inf(-1)
	for _, p := range [3]pathmesh.Point{q.P0, q.P1, q.P2} {
		r := p.Sub(q.P0)
		u, v := r.Dot(axis), r.Dot(normal)
		umin, umax = math.Min(umin, u), math.Max(umax, u)
		vmin, vmax = math.Min(vmin, v), math.Max(vmax, v)
	}
	umin, umax = umin-halfWidth, umax+halfWidth
	vmin, vmax = vmin-halfWidth, vmax+halfWidth

	corner := func(u, v float64) pathmesh.Point {
		return q.P0.Add(axis.Mul(u)).Add(normal.Mul(v))
	}
	return [4]pathmesh.Point{
		corner(umin, vmin),
		corner(umax, vmin),
		corner(umax, vmax),
		corner(umin, vmax),
	}
}

func slogger() *slog.Logger {
	return pathmesh.Logger()
}
