//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/pathmesh/fill"
	"github.com/gogpu/pathmesh/internal/native"
	"github.com/gogpu/pathmesh/stroke"
)

var (
	// ErrNilDevice is returned when the device or queue is nil.
	ErrNilDevice = errors.New("gpu: nil device or queue")

	// ErrNoHAL is returned when a provider does not expose HAL objects.
	ErrNoHAL = errors.New("gpu: provider does not expose HAL types")
)

// VertexBuffer is an uploaded vertex buffer. Buffer is nil when there
// were no vertices.
type VertexBuffer struct {
	Buffer   hal.Buffer
	Vertices uint32
}

// FillBuffers holds the three vertex streams of a fill draw.
type FillBuffers struct {
	Fan    VertexBuffer
	Curves VertexBuffer
	Cover  VertexBuffer
}

// StrokeBuffers holds the vertex streams of a stroke draw.
type StrokeBuffers struct {
	Quads VertexBuffer
	Solid VertexBuffer
}

// Uploader creates vertex buffers and shader modules on one device and
// owns them until Destroy.
type Uploader struct {
	mu     sync.Mutex
	device hal.Device
	queue  hal.Queue
	res    native.Resources
}

// NewUploader creates an uploader for device and queue.
func NewUploader(device hal.Device, queue hal.Queue) (*Uploader, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	return &Uploader{
		device: device,
		queue:  queue,
		res:    native.Resources{Device: device},
	}, nil
}

// NewUploaderFromProvider shares the device of an external provider. The
// provider must also implement HalDevice() any and HalQueue() any
// returning hal.Device and hal.Queue.
func NewUploaderFromProvider(provider gpucontext.DeviceProvider) (*Uploader, error) {
	if provider == nil {
		return nil, ErrNilDevice
	}
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHAL
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok {
		return nil, fmt.Errorf("%w: HalDevice is %T", ErrNoHAL, hp.HalDevice())
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok {
		return nil, fmt.Errorf("%w: HalQueue is %T", ErrNoHAL, hp.HalQueue())
	}
	return NewUploader(device, queue)
}

func (u *Uploader) createBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := u.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	if err := u.queue.WriteBuffer(buf, 0, data); err != nil {
		u.device.DestroyBuffer(buf)
		return nil, fmt.Errorf("write %s: %w", label, err)
	}
	u.res.Buffers = append(u.res.Buffers, buf)
	return buf, nil
}

func (u *Uploader) uploadVertices(label string, data []float32, stride int) (VertexBuffer, error) {
	if len(data) == 0 {
		return VertexBuffer{}, nil
	}
	buf, err := u.createBuffer(label, Bytes(data), gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return VertexBuffer{}, err
	}
	return VertexBuffer{Buffer: buf, Vertices: uint32(len(data) * 4 / stride)}, nil
}

// UploadFill uploads the fan, curve and cover streams of m.
func (u *Uploader) UploadFill(m *fill.Mesh) (FillBuffers, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	var out FillBuffers
	var err error
	if out.Fan, err = u.uploadVertices("pathmesh_fill_fan", PackFan(m), FanStride); err != nil {
		return FillBuffers{}, err
	}
	if out.Curves, err = u.uploadVertices("pathmesh_fill_curves", PackCurves(m), CurveStride); err != nil {
		return FillBuffers{}, err
	}
	if out.Cover, err = u.uploadVertices("pathmesh_fill_cover", PackCover(m), FanStride); err != nil {
		return FillBuffers{}, err
	}
	slogger().Debug("gpu: uploaded fill",
		"fan", out.Fan.Vertices, "curves", out.Curves.Vertices, "cover", out.Cover.Vertices)
	return out, nil
}

// UploadStroke uploads the quad and solid streams of m.
func (u *Uploader) UploadStroke(m *stroke.Mesh) (StrokeBuffers, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	var out StrokeBuffers
	var err error
	if out.Quads, err = u.uploadVertices("pathmesh_stroke_quads", PackStroke(m), StrokeStride); err != nil {
		return StrokeBuffers{}, err
	}
	if out.Solid, err = u.uploadVertices("pathmesh_stroke_solid", PackSolid(m), FanStride); err != nil {
		return StrokeBuffers{}, err
	}
	slogger().Debug("gpu: uploaded stroke",
		"quads", out.Quads.Vertices, "solid", out.Solid.Vertices)
	return out, nil
}

// UploadUniforms uploads a uniform buffer for un.
func (u *Uploader) UploadUniforms(un Uniforms) (hal.Buffer, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.createBuffer("pathmesh_uniforms", un.Bytes(), gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
}

// ShaderModules compiles every embedded shader and creates its module,
// keyed by shader name.
func (u *Uploader) ShaderModules() (map[string]hal.ShaderModule, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	modules := make(map[string]hal.ShaderModule, len(shaderSources))
	for _, name := range ShaderNames() {
		words, err := CompileSPIRV(name)
		if err != nil {
			return nil, err
		}
		m, err := native.CreateShaderModule(u.device, "pathmesh_"+name, words)
		if err != nil {
			return nil, fmt.Errorf("create %s module: %w", name, err)
		}
		u.res.ShaderModules = append(u.res.ShaderModules, m)
		modules[name] = m
	}
	return modules, nil
}

// Destroy releases every buffer and shader module the uploader created.
func (u *Uploader) Destroy() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.res.Destroy()
}
