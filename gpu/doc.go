//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu prepares fill and stroke meshes for a WebGPU HAL device.
//
// It defines the vertex layouts the evaluation shaders expect, packs
// meshes into float32 vertex data, describes the stencil states of the
// stencil-then-cover fill and the single-touch stroke pass, embeds the
// WGSL shaders, and uploads everything through hal.Device and hal.Queue.
//
// Drawing itself (pipelines, render passes, surfaces) is left to the
// caller. A typical fill draw is:
//
//	Pass 1: fan triangles with StencilState(rule), color writes off
//	Pass 2: curve triangles with StencilState(rule), fill_curve shader
//	Pass 3: Mesh.CoverQuad with CoverState(), cover shader
//
// Build with -tags nogpu to exclude this package.
package gpu
