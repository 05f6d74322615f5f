//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"github.com/gogpu/pathmesh/internal/native"
)

//go:embed shaders/common.wgsl
var commonShaderSource string

//go:embed shaders/fill_fan.wgsl
var fillFanShaderSource string

//go:embed shaders/fill_curve.wgsl
var fillCurveShaderSource string

//go:embed shaders/cover.wgsl
var coverShaderSource string

//go:embed shaders/stroke_quad.wgsl
var strokeQuadShaderSource string

// Shader names accepted by ShaderSource and CompileSPIRV.
const (
	ShaderFillFan    = "fill_fan"
	ShaderFillCurve  = "fill_curve"
	ShaderCover      = "cover"
	ShaderStrokeQuad = "stroke_quad"
)

// Every shader has vs_main and fs_main entry points.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// ErrUnknownShader is returned for a shader name that is not embedded.
var ErrUnknownShader = errors.New("gpu: unknown shader")

var shaderSources = map[string]*string{
	ShaderFillFan:    &fillFanShaderSource,
	ShaderFillCurve:  &fillCurveShaderSource,
	ShaderCover:      &coverShaderSource,
	ShaderStrokeQuad: &strokeQuadShaderSource,
}

// ShaderNames returns the embedded shader names in sorted order.
func ShaderNames() []string {
	names := make([]string, 0, len(shaderSources))
	for name := range shaderSources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ShaderSource returns the complete WGSL module for name, with the shared
// uniform block prepended.
func ShaderSource(name string) (string, error) {
	src, ok := shaderSources[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownShader, name)
	}
	return commonShaderSource + "\n" + *src, nil
}

// CompileSPIRV compiles the named shader to SPIR-V words.
func CompileSPIRV(name string) ([]uint32, error) {
	src, err := ShaderSource(name)
	if err != nil {
		return nil, err
	}
	words, err := native.CompileShaderToSPIRV(src)
	if err != nil {
		return nil, fmt.Errorf("gpu: %s: %w", name, err)
	}
	slogger().Debug("gpu: compiled shader", "name", name, "words", len(words))
	return words, nil
}
