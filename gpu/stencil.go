//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/pathmesh"
)

// StencilFormat is the depth/stencil format the states are written for.
const StencilFormat = gputypes.TextureFormatDepth24PlusStencil8

func stencilState(front, back hal.StencilFaceState) *hal.DepthStencilState {
	return &hal.DepthStencilState{
		Format:            StencilFormat,
		DepthWriteEnabled: false,
		DepthCompare:      gputypes.CompareFunctionAlways,
		StencilFront:      front,
		StencilBack:       back,
		StencilReadMask:   0xFF,
		StencilWriteMask:  0xFF,
	}
}

func face(compare gputypes.CompareFunction, pass hal.StencilOperation) hal.StencilFaceState {
	return hal.StencilFaceState{
		Compare:     compare,
		FailOp:      hal.StencilOperationKeep,
		DepthFailOp: hal.StencilOperationKeep,
		PassOp:      pass,
	}
}

// StencilState returns the state for the fan and curve passes.
//
// Non-zero: front faces increment and back faces decrement, so the
// stencil holds the winding number modulo 256. Even-odd: both faces
// invert, so the stencil is non-zero for odd windings.
func StencilState(rule pathmesh.FillRule) *hal.DepthStencilState {
	if rule == pathmesh.FillRuleEvenOdd {
		return stencilState(
			face(gputypes.CompareFunctionAlways, hal.StencilOperationInvert),
			face(gputypes.CompareFunctionAlways, hal.StencilOperationInvert),
		)
	}
	return stencilState(
		face(gputypes.CompareFunctionAlways, hal.StencilOperationIncrementWrap),
		face(gputypes.CompareFunctionAlways, hal.StencilOperationDecrementWrap),
	)
}

// CoverState returns the state for the cover pass: draw where the
// stencil is non-zero and reset it to zero.
func CoverState() *hal.DepthStencilState {
	return stencilState(
		face(gputypes.CompareFunctionNotEqual, hal.StencilOperationZero),
		face(gputypes.CompareFunctionNotEqual, hal.StencilOperationZero),
	)
}

// StrokeReference is the stencil reference StrokeState is used with.
const StrokeReference = 0xFF

// StrokeState returns the state for stroke quads and solid triangles.
// With reference StrokeReference and a cleared stencil, the first write
// inverts 0 to 0xFF and later overlapping fragments fail, so each pixel
// is blended once.
func StrokeState() *hal.DepthStencilState {
	return stencilState(
		face(gputypes.CompareFunctionNotEqual, hal.StencilOperationInvert),
		face(gputypes.CompareFunctionNotEqual, hal.StencilOperationInvert),
	)
}
