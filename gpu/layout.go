//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import "github.com/gogpu/gputypes"

// Vertex strides in bytes.
const (
	FanStride    = 2 * 4
	CurveStride  = 6 * 4
	StrokeStride = 12 * 4
)

// Float counts per vertex.
const (
	fanFloats    = FanStride / 4
	curveFloats  = CurveStride / 4
	strokeFloats = StrokeStride / 4
)

// FanLayout is the layout of fan, solid and cover vertices: a float32x2
// position at location 0.
func FanLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: FanStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
		},
	}
}

// SolidLayout is the layout of stroke join and cap triangles.
func SolidLayout() gputypes.VertexBufferLayout {
	return FanLayout()
}

// CurveLayout is the layout of curve triangle vertices: position at
// location 0 and (k, l, m, sign) at location 1.
func CurveLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: CurveStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1},
		},
	}
}

// StrokeLayout is the layout of stroke quad vertices:
//
//	location 0: position
//	location 1: position - P0
//	location 2: A
//	location 3: B
//	location 4: (b/3a, p, q, caps)
func StrokeLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: StrokeStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
			{Format: gputypes.VertexFormatFloat32x2, Offset: 16, ShaderLocation: 2},
			{Format: gputypes.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 3},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 4},
		},
	}
}
