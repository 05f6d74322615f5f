package main

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/gogpu/pathmesh"
	"github.com/gogpu/pathmesh/fill"
	"github.com/gogpu/pathmesh/stroke"
)

const previewMargin = 16

var (
	background = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xff}
	fillColor  = color.NRGBA{R: 0x4c, G: 0x9f, B: 0xff, A: 0xff}
	strokeTint = color.NRGBA{R: 0xff, G: 0xb0, B: 0x3a, A: 0xff}
)

// preview rasterizes meshes by point sampling, one sample per pixel
// center, the same coverage tests the shaders perform.
type preview struct {
	fill   *fill.Mesh
	stroke *stroke.Mesh
	flipY  bool
}

func (p *preview) bounds() (pathmesh.Rect, bool) {
	switch {
	case p.fill != nil && p.stroke != nil:
		return p.fill.Bounds.Union(p.stroke.Bounds), true
	case p.fill != nil:
		return p.fill.Bounds, true
	case p.stroke != nil:
		return p.stroke.Bounds, true
	default:
		return pathmesh.Rect{}, false
	}
}

// toPath maps pixel centers into path space, fitting the mesh bounds into
// the image with a uniform scale.
func (p *preview) toPath(w, h int) (pathmesh.Matrix, bool) {
	r, ok := p.bounds()
	if !ok || r.Width() <= 0 || r.Height() <= 0 {
		return pathmesh.Identity(), false
	}
	availW := float64(w - 2*previewMargin)
	availH := float64(h - 2*previewMargin)
	if availW <= 0 || availH <= 0 {
		return pathmesh.Identity(), false
	}
	s := min(availW/r.Width(), availH/r.Height())

	cx := (r.Min.X + r.Max.X) / 2
	cy := (r.Min.Y + r.Max.Y) / 2
	sy := 1 / s
	if p.flipY {
		sy = -sy
	}
	return pathmesh.Translate(cx, cy).
		Multiply(pathmesh.Scale(1/s, sy)).
		Multiply(pathmesh.Translate(-float64(w)/2, -float64(h)/2)), true
}

func (p *preview) render(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	m, ok := p.toPath(w, h)
	for y := range h {
		for x := range w {
			c := background
			if ok {
				pt := m.Apply(pathmesh.Pt(float64(x)+0.5, float64(y)+0.5))
				if p.fill != nil && p.fill.Covered(pt) {
					c = fillColor
				}
				if p.stroke != nil && p.stroke.Covered(pt) {
					c = strokeTint
				}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func (p *preview) savePNG(path string, w, h int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.render(w, h)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
