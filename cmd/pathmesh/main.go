// Command pathmesh converts vector paths into fill and stroke meshes and
// reports what was generated.
//
// Usage:
//
//	pathmesh -d "M0 0 Q50 100 100 0" -mode stroke -stroke-width 8 -output arch.png
//	pathmesh -text "Go" -size 96 -mode fill -output go.png
//
// Without -d or -text a built-in demo path is used.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"sort"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/pathmesh"
	"github.com/gogpu/pathmesh/fill"
	"github.com/gogpu/pathmesh/glyph"
	"github.com/gogpu/pathmesh/stroke"
)

type config struct {
	data       string
	text       string
	fontFile   string
	size       float64
	mode       string
	rule       string
	tolerance  float64
	width      float64
	cap        string
	join       string
	miterLimit float64
	workers    int
	output     string
	imgWidth   int
	imgHeight  int
	verbose    bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.data, "d", "", "SVG path data")
	flag.StringVar(&cfg.text, "text", "", "text to outline")
	flag.StringVar(&cfg.fontFile, "font", "", "TrueType font file for -text (default Go Regular)")
	flag.Float64Var(&cfg.size, "size", 64, "font size for -text")
	flag.StringVar(&cfg.mode, "mode", "both", "fill, stroke or both")
	flag.StringVar(&cfg.rule, "fill-rule", "nonzero", "nonzero or evenodd")
	flag.Float64Var(&cfg.tolerance, "tolerance", 0, "absolute tolerance (0 selects the per-mode default)")
	flag.Float64Var(&cfg.width, "stroke-width", 4, "stroke width")
	flag.StringVar(&cfg.cap, "cap", "butt", "line cap: butt, round or square")
	flag.StringVar(&cfg.join, "join", "miter", "line join: miter, round or bevel")
	flag.Float64Var(&cfg.miterLimit, "miter-limit", 4, "miter limit")
	flag.IntVar(&cfg.workers, "workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	flag.StringVar(&cfg.output, "output", "", "write a coverage preview PNG")
	flag.IntVar(&cfg.imgWidth, "width", 512, "preview width")
	flag.IntVar(&cfg.imgHeight, "height", 512, "preview height")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flag.Parse()

	if cfg.verbose {
		pathmesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("pathmesh: %v", err)
	}
}

func run(cfg config, w io.Writer) error {
	p, flipY, err := loadPath(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "path: %d subpaths, %d segments, bounds %v\n", p.Len(), p.SegmentCount(), p.Bounds())

	doFill, doStroke, err := parseMode(cfg.mode)
	if err != nil {
		return err
	}

	var prev preview
	if doFill {
		m, err := fillPath(cfg, p)
		if err != nil {
			return err
		}
		if m != nil {
			printFill(w, m)
			prev.fill = m
		}
	}
	if doStroke {
		m, err := strokePath(cfg, p)
		if err != nil {
			return err
		}
		printStroke(w, m)
		prev.stroke = m
	}

	if cfg.output == "" {
		return nil
	}
	prev.flipY = flipY
	if err := prev.savePNG(cfg.output, cfg.imgWidth, cfg.imgHeight); err != nil {
		return err
	}
	log.Printf("Preview saved to %s (%dx%d)\n", cfg.output, cfg.imgWidth, cfg.imgHeight)
	return nil
}

// loadPath returns the input path and whether it is y-up.
func loadPath(cfg config) (*pathmesh.Path, bool, error) {
	switch {
	case cfg.data != "" && cfg.text != "":
		return nil, false, errors.New("-d and -text are mutually exclusive")
	case cfg.data != "":
		p, err := pathmesh.ParseSVGPath(cfg.data)
		return p, false, err
	case cfg.text != "":
		ttf := goregular.TTF
		if cfg.fontFile != "" {
			b, err := os.ReadFile(cfg.fontFile)
			if err != nil {
				return nil, false, err
			}
			ttf = b
		}
		face, err := font.ParseTTF(bytes.NewReader(ttf))
		if err != nil {
			return nil, false, fmt.Errorf("parse font: %w", err)
		}
		p, _, err := glyph.TextPath(face, cfg.text, cfg.size)
		return p, true, err
	default:
		p, err := demoPath()
		return p, false, err
	}
}

// demoPath is a wave, a star and a ring.
func demoPath() (*pathmesh.Path, error) {
	return pathmesh.BuildPath().
		MoveTo(0, 0).
		CubicTo(50, -50, 100, 50, 150, 0).
		CubicTo(200, -30, 250, 30, 300, 0).
		LineTo(300, 60).
		LineTo(0, 60).
		Close().
		Polygon(150, 160, 60, 5).
		Circle(150, 160, 25).
		Build()
}

func parseMode(mode string) (doFill, doStroke bool, err error) {
	switch mode {
	case "fill":
		return true, false, nil
	case "stroke":
		return false, true, nil
	case "both":
		return true, true, nil
	default:
		return false, false, fmt.Errorf("unknown mode %q", mode)
	}
}

// fillPath returns a nil mesh when the path has open subpaths.
func fillPath(cfg config, p *pathmesh.Path) (*fill.Mesh, error) {
	rule, err := pathmesh.ParseFillRule(cfg.rule)
	if err != nil {
		return nil, err
	}
	opts := []fill.Option{fill.WithFillRule(rule), fill.WithWorkers(cfg.workers)}
	if cfg.tolerance > 0 {
		opts = append(opts, fill.WithTolerance(pathmesh.Tolerance(cfg.tolerance)))
	}
	tess := fill.NewTessellator(opts...)
	defer tess.Close()

	m, err := tess.Tessellate(p)
	var open *pathmesh.OpenSubpathError
	switch {
	case errors.As(err, &open):
		log.Printf("skipping fill: %v", err)
		return nil, nil
	case errors.Is(err, pathmesh.ErrToleranceUnsatisfiable) && m != nil:
		log.Printf("fill: %v", err)
		return m, nil
	case err != nil:
		return nil, err
	}
	return m, nil
}

func strokePath(cfg config, p *pathmesh.Path) (*stroke.Mesh, error) {
	lineCap, err := pathmesh.ParseLineCap(cfg.cap)
	if err != nil {
		return nil, err
	}
	lineJoin, err := pathmesh.ParseLineJoin(cfg.join)
	if err != nil {
		return nil, err
	}
	style := pathmesh.DefaultStrokeStyle().
		WithWidth(cfg.width).
		WithCap(lineCap).
		WithJoin(lineJoin).
		WithMiterLimit(cfg.miterLimit)

	opts := []stroke.Option{stroke.WithWorkers(cfg.workers)}
	if cfg.tolerance > 0 {
		opts = append(opts, stroke.WithTolerance(pathmesh.Tolerance(cfg.tolerance)))
	}
	gen := stroke.NewGenerator(style, opts...)
	defer gen.Close()

	m, err := gen.Generate(p)
	if errors.Is(err, pathmesh.ErrToleranceUnsatisfiable) && m != nil {
		log.Printf("stroke: %v", err)
		return m, nil
	}
	return m, err
}

func printFill(w io.Writer, m *fill.Mesh) {
	s := m.Stats
	fmt.Fprintf(w, "fill (%s): %d fan triangles, %d curve triangles, %d linear quads\n",
		m.Rule, s.FanTriangles, s.CurveTriangles, s.LinearQuads)
	types := make([]fill.CurveType, 0, len(s.Cubics))
	for t := range s.Cubics {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	for _, t := range types {
		fmt.Fprintf(w, "  cubic %-16s %d\n", t, s.Cubics[t])
	}
}

func printStroke(w io.Writer, m *stroke.Mesh) {
	s := m.Stats
	fmt.Fprintf(w, "stroke: %d quads (%d straight, %d overshoot splits), %d joins, %d caps, %d solid triangles\n",
		len(m.Quads), s.StraightPieces, s.SplitOvershoots, s.Joins, s.Caps, len(m.Solid))
}
