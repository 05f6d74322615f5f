//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/pathmesh"
)

// UniformsSize is the size of the shader Uniforms block in bytes.
const UniformsSize = 48

// Uniforms is the uniform block shared by all shaders. Clip-space
// position is position*Scale + Translate.
type Uniforms struct {
	Scale       [2]float32
	Translate   [2]float32
	HalfWidthSq float32
	Color       [4]float32
}

// NewUniforms maps viewport onto clip space with y pointing up and sets
// the fill color. halfWidthSq is only read by the stroke shader.
func NewUniforms(viewport pathmesh.Rect, color [4]float32, halfWidthSq float64) Uniforms {
	u := Uniforms{HalfWidthSq: float32(halfWidthSq), Color: color}
	if w := viewport.Width(); w > 0 {
		u.Scale[0] = float32(2 / w)
		u.Translate[0] = float32(-1 - 2*viewport.Min.X/w)
	}
	if h := viewport.Height(); h > 0 {
		u.Scale[1] = float32(2 / h)
		u.Translate[1] = float32(-1 - 2*viewport.Min.Y/h)
	}
	return u
}

// Bytes encodes the block in WGSL uniform layout: color starts at
// offset 32.
func (u Uniforms) Bytes() []byte {
	buf := make([]byte, UniformsSize)
	le := binary.LittleEndian
	put := func(off int, f float32) {
		le.PutUint32(buf[off:off+4], math.Float32bits(f))
	}
	put(0, u.Scale[0])
	put(4, u.Scale[1])
	put(8, u.Translate[0])
	put(12, u.Translate[1])
	put(16, u.HalfWidthSq)
	for i, c := range u.Color {
		put(32+4*i, c)
	}
	return buf
}
