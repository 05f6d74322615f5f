//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/pathmesh"
	"github.com/gogpu/pathmesh/fill"
	"github.com/gogpu/pathmesh/stroke"
)

func appendPoint(dst []float32, p pathmesh.Point) []float32 {
	return append(dst, float32(p.X), float32(p.Y))
}

// PackFan returns the fan triangles as FanLayout vertices.
func PackFan(m *fill.Mesh) []float32 {
	out := make([]float32, 0, len(m.Fan)*3*fanFloats)
	for _, tri := range m.Fan {
		for _, p := range tri {
			out = appendPoint(out, p)
		}
	}
	return out
}

// PackCurves returns the curve triangles as CurveLayout vertices.
func PackCurves(m *fill.Mesh) []float32 {
	out := make([]float32, 0, len(m.Curves)*3*curveFloats)
	for _, ct := range m.Curves {
		for i, p := range ct.P {
			k := ct.KLM[i]
			out = appendPoint(out, p)
			out = append(out, float32(k.K), float32(k.L), float32(k.M), float32(ct.Sign))
		}
	}
	return out
}

// PackCover returns the cover quad of m as FanLayout vertices.
func PackCover(m *fill.Mesh) []float32 {
	out := make([]float32, 0, 6*fanFloats)
	for _, tri := range m.CoverQuad() {
		for _, p := range tri {
			out = appendPoint(out, p)
		}
	}
	return out
}

// PackStroke returns the stroke quads as StrokeLayout vertices, two
// triangles per quad.
func PackStroke(m *stroke.Mesh) []float32 {
	out := make([]float32, 0, len(m.Quads)*len(stroke.QuadIndices)*strokeFloats)
	for _, q := range m.Quads {
		for _, idx := range stroke.QuadIndices {
			v := q.Vertices[idx]
			out = appendPoint(out, v.Position)
			out = appendPoint(out, v.Local)
			out = appendPoint(out, v.A)
			out = appendPoint(out, v.B)
			out = append(out, float32(v.BOver3A), float32(v.P), float32(v.Q), float32(v.Caps))
		}
	}
	return out
}

// PackSolid returns the stroke join and cap triangles as SolidLayout
// vertices.
func PackSolid(m *stroke.Mesh) []float32 {
	out := make([]float32, 0, len(m.Solid)*3*fanFloats)
	for _, tri := range m.Solid {
		for _, p := range tri {
			out = appendPoint(out, p)
		}
	}
	return out
}

// Bytes encodes vertex data little-endian for Queue.WriteBuffer.
func Bytes(data []float32) []byte {
	buf := make([]byte, len(data)*4)
	le := binary.LittleEndian
	for i, f := range data {
		le.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}
