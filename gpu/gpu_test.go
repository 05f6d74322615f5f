//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/pathmesh"
	"github.com/gogpu/pathmesh/fill"
	"github.com/gogpu/pathmesh/stroke"
)

// createNoopDevice creates a noop device and queue for testing.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup
}

func fillMesh(t *testing.T) *fill.Mesh {
	t.Helper()
	p, err := pathmesh.BuildPath().MoveTo(0, 0).LineTo(4, 0).QuadTo(6, 2, 4, 4).LineTo(0, 4).Close().Build()
	if err != nil {
		t.Fatal(err)
	}
	m, err := fill.NewTessellator().Tessellate(p)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func strokeMesh(t *testing.T) *stroke.Mesh {
	t.Helper()
	p, err := pathmesh.BuildPath().MoveTo(0, 0).LineTo(10, 0).QuadTo(15, 5, 10, 10).Build()
	if err != nil {
		t.Fatal(err)
	}
	m, err := stroke.NewGenerator(pathmesh.DefaultStrokeStyle().WithWidth(2).WithCap(pathmesh.LineCapSquare)).Generate(p)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestLayouts(t *testing.T) {
	formatSize := map[gputypes.VertexFormat]uint64{
		gputypes.VertexFormatFloat32x2: 8,
		gputypes.VertexFormatFloat32x4: 16,
	}
	tests := []struct {
		name   string
		layout gputypes.VertexBufferLayout
		stride uint64
	}{
		{"fan", FanLayout(), FanStride},
		{"solid", SolidLayout(), FanStride},
		{"curve", CurveLayout(), CurveStride},
		{"stroke", StrokeLayout(), StrokeStride},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if uint64(tt.layout.ArrayStride) != tt.stride {
				t.Errorf("ArrayStride = %d, want %d", tt.layout.ArrayStride, tt.stride)
			}
			var next uint64
			for i, attr := range tt.layout.Attributes {
				if uint64(attr.Offset) != next {
					t.Errorf("attribute %d at offset %d, want %d", i, attr.Offset, next)
				}
				if int(attr.ShaderLocation) != i {
					t.Errorf("attribute %d at location %d", i, attr.ShaderLocation)
				}
				next += formatSize[attr.Format]
			}
			if next != tt.stride {
				t.Errorf("attributes cover %d bytes, stride is %d", next, tt.stride)
			}
		})
	}
}

func TestPackFill(t *testing.T) {
	m := fillMesh(t)

	fan := PackFan(m)
	if len(fan) != len(m.Fan)*3*fanFloats {
		t.Errorf("PackFan: %d floats for %d triangles", len(fan), len(m.Fan))
	}
	curves := PackCurves(m)
	if len(m.Curves) != 1 || len(curves) != 3*curveFloats {
		t.Fatalf("PackCurves: %d floats for %d curves", len(curves), len(m.Curves))
	}
	// Second vertex of the curve triangle is the control point with
	// klm (1/2, 0, 1).
	v := curves[curveFloats : 2*curveFloats]
	if v[0] != 6 || v[1] != 2 || v[2] != 0.5 || v[3] != 0 || v[4] != 1 {
		t.Errorf("control vertex = %v", v)
	}
	if v[5] != float32(m.Curves[0].Sign) {
		t.Errorf("sign = %v, want %v", v[5], m.Curves[0].Sign)
	}
	if cover := PackCover(m); len(cover) != 6*fanFloats {
		t.Errorf("PackCover: %d floats", len(cover))
	}
}

func TestPackStroke(t *testing.T) {
	m := strokeMesh(t)

	quads := PackStroke(m)
	if want := len(m.Quads) * 6 * strokeFloats; len(quads) != want {
		t.Fatalf("PackStroke: %d floats, want %d", len(quads), want)
	}
	// Triangle vertex 3 repeats quad vertex 0.
	first := quads[:strokeFloats]
	again := quads[3*strokeFloats : 4*strokeFloats]
	for i := range first {
		if first[i] != again[i] {
			t.Fatalf("vertex 3 differs from vertex 0 at float %d", i)
		}
	}
	if caps := first[11]; caps != float32(m.Quads[0].Vertices[0].Caps) {
		t.Errorf("caps = %v", caps)
	}
	if solid := PackSolid(m); len(solid) != len(m.Solid)*3*fanFloats || len(solid) == 0 {
		t.Errorf("PackSolid: %d floats for %d triangles", len(solid), len(m.Solid))
	}
}

func TestBytes(t *testing.T) {
	b := Bytes([]float32{1.5, -2})
	if len(b) != 8 {
		t.Fatalf("len = %d", len(b))
	}
	if got := binary.LittleEndian.Uint32(b); got != 0x3FC00000 {
		t.Errorf("first word = %#x, want 0x3fc00000", got)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(b[4:])); got != -2 {
		t.Errorf("second value = %v", got)
	}
}

func TestUniforms(t *testing.T) {
	u := NewUniforms(pathmesh.NewRect(pathmesh.Pt(0, 0), pathmesh.Pt(100, 50)), [4]float32{1, 0, 0, 1}, 2.25)
	clip := func(x, y float32) (float32, float32) {
		return x*u.Scale[0] + u.Translate[0], y*u.Scale[1] + u.Translate[1]
	}
	if x, y := clip(0, 0); x != -1 || y != -1 {
		t.Errorf("min corner maps to (%v, %v)", x, y)
	}
	if x, y := clip(100, 50); x != 1 || y != 1 {
		t.Errorf("max corner maps to (%v, %v)", x, y)
	}

	b := u.Bytes()
	if len(b) != UniformsSize {
		t.Fatalf("len = %d", len(b))
	}
	f := func(off int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(b[off:])) }
	if f(16) != 2.25 || f(32) != 1 || f(44) != 1 || f(36) != 0 {
		t.Errorf("unexpected layout: half width %v, color (%v %v %v)", f(16), f(32), f(36), f(44))
	}
}

func TestStencilStates(t *testing.T) {
	nz := StencilState(pathmesh.FillRuleNonZero)
	if nz.StencilFront.PassOp != hal.StencilOperationIncrementWrap ||
		nz.StencilBack.PassOp != hal.StencilOperationDecrementWrap {
		t.Errorf("non-zero ops = %v / %v", nz.StencilFront.PassOp, nz.StencilBack.PassOp)
	}
	eo := StencilState(pathmesh.FillRuleEvenOdd)
	if eo.StencilFront.PassOp != hal.StencilOperationInvert ||
		eo.StencilBack.PassOp != hal.StencilOperationInvert {
		t.Errorf("even-odd ops = %v / %v", eo.StencilFront.PassOp, eo.StencilBack.PassOp)
	}
	cover := CoverState()
	if cover.StencilFront.Compare != gputypes.CompareFunctionNotEqual ||
		cover.StencilFront.PassOp != hal.StencilOperationZero {
		t.Errorf("cover front = %+v", cover.StencilFront)
	}
	for _, s := range []*hal.DepthStencilState{nz, eo, cover, StrokeState()} {
		if s.Format != StencilFormat || s.DepthWriteEnabled {
			t.Errorf("state %+v should only use the stencil", s)
		}
	}
}

func TestShaderSources(t *testing.T) {
	tests := []struct {
		name     string
		required []string
	}{
		{ShaderFillFan, []string{"@vertex", "@fragment", "to_clip"}},
		{ShaderFillCurve, []string{"klm", "discard"}},
		{ShaderCover, []string{"u.color"}},
		{ShaderStrokeQuad, []string{"half_width_sq", "acos", "NO_START_CAP", "discard"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := ShaderSource(tt.name)
			if err != nil {
				t.Fatalf("ShaderSource() error: %v", err)
			}
			for _, want := range append(tt.required, "struct Uniforms", VertexEntryPoint, FragmentEntryPoint) {
				if !strings.Contains(src, want) {
					t.Errorf("source missing %q", want)
				}
			}
		})
	}
	if _, err := ShaderSource("blur"); !errors.Is(err, ErrUnknownShader) {
		t.Errorf("unknown shader error = %v", err)
	}
	if n := len(ShaderNames()); n != 4 {
		t.Errorf("ShaderNames() has %d entries", n)
	}
}

// skipOnNagaLimit skips when naga reports a feature it does not support yet.
func skipOnNagaLimit(t *testing.T, err error) {
	t.Helper()
	msg := err.Error()
	if strings.Contains(msg, "not yet implemented") || strings.Contains(msg, "not supported") {
		t.Skipf("Skipping: naga feature not yet implemented: %v", err)
	}
}

func TestCompileSPIRV(t *testing.T) {
	for _, name := range ShaderNames() {
		t.Run(name, func(t *testing.T) {
			words, err := CompileSPIRV(name)
			if err != nil {
				skipOnNagaLimit(t, err)
				t.Fatalf("CompileSPIRV() error: %v", err)
			}
			if len(words) < 5 || words[0] != 0x07230203 {
				t.Errorf("not a SPIR-V module: %d words", len(words))
			}
		})
	}
	if _, err := CompileSPIRV("blur"); !errors.Is(err, ErrUnknownShader) {
		t.Errorf("unknown shader error = %v", err)
	}
}

func TestUploader(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	u, err := NewUploader(device, queue)
	if err != nil {
		t.Fatalf("NewUploader() error: %v", err)
	}
	defer u.Destroy()

	fm := fillMesh(t)
	fb, err := u.UploadFill(fm)
	if err != nil {
		t.Fatalf("UploadFill() error: %v", err)
	}
	if fb.Fan.Buffer == nil || fb.Fan.Vertices != uint32(3*len(fm.Fan)) {
		t.Errorf("fan buffer = %+v", fb.Fan)
	}
	if fb.Curves.Vertices != 3 || fb.Cover.Vertices != 6 {
		t.Errorf("curves %d, cover %d vertices", fb.Curves.Vertices, fb.Cover.Vertices)
	}

	sm := strokeMesh(t)
	sb, err := u.UploadStroke(sm)
	if err != nil {
		t.Fatalf("UploadStroke() error: %v", err)
	}
	if sb.Quads.Vertices != uint32(6*len(sm.Quads)) || sb.Solid.Vertices != uint32(3*len(sm.Solid)) {
		t.Errorf("stroke buffers = %+v", sb)
	}

	if buf, err := u.UploadUniforms(NewUniforms(fm.Bounds, [4]float32{0, 0, 0, 1}, 0)); err != nil || buf == nil {
		t.Errorf("UploadUniforms() = %v, %v", buf, err)
	}
	if n := len(u.res.Buffers); n != 6 {
		t.Errorf("tracked %d buffers, want 6", n)
	}

	u.Destroy()
	if len(u.res.Buffers) != 0 {
		t.Error("Destroy should release tracked buffers")
	}
}

// failingQueue rejects every write.
type failingQueue struct {
	hal.Queue
	err error
}

func (q failingQueue) WriteBuffer(hal.Buffer, uint64, []byte) error { return q.err }

// countingDevice records destroyed buffers.
type countingDevice struct {
	hal.Device
	destroyed int
}

func (d *countingDevice) DestroyBuffer(b hal.Buffer) {
	d.destroyed++
	d.Device.DestroyBuffer(b)
}

func TestUploader_WriteError(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	errWrite := errors.New("queue lost")
	dev := &countingDevice{Device: device}
	u, err := NewUploader(dev, failingQueue{Queue: queue, err: errWrite})
	if err != nil {
		t.Fatal(err)
	}
	defer u.Destroy()

	fb, err := u.UploadFill(fillMesh(t))
	if !errors.Is(err, errWrite) {
		t.Fatalf("UploadFill() error = %v, want %v", err, errWrite)
	}
	if fb.Fan.Buffer != nil {
		t.Error("failed upload returned a buffer")
	}
	if dev.destroyed != 1 {
		t.Errorf("destroyed %d buffers, want 1", dev.destroyed)
	}
	if n := len(u.res.Buffers); n != 0 {
		t.Errorf("tracked %d buffers after a failed write", n)
	}

	if _, err := u.UploadUniforms(Uniforms{}); !errors.Is(err, errWrite) {
		t.Errorf("UploadUniforms() error = %v", err)
	}
}

func TestUploader_EmptyStream(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	u, err := NewUploader(device, queue)
	if err != nil {
		t.Fatal(err)
	}
	defer u.Destroy()

	p, err := pathmesh.BuildPath().Rect(0, 0, 1, 1).Build()
	if err != nil {
		t.Fatal(err)
	}
	m, err := fill.NewTessellator().Tessellate(p)
	if err != nil {
		t.Fatal(err)
	}
	fb, err := u.UploadFill(m)
	if err != nil {
		t.Fatal(err)
	}
	if fb.Curves.Buffer != nil || fb.Curves.Vertices != 0 {
		t.Errorf("a mesh without curves should not create a curve buffer: %+v", fb.Curves)
	}
}

func TestUploader_ShaderModules(t *testing.T) {
	if _, err := CompileSPIRV(ShaderStrokeQuad); err != nil {
		skipOnNagaLimit(t, err)
	}
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	u, err := NewUploader(device, queue)
	if err != nil {
		t.Fatal(err)
	}
	defer u.Destroy()

	modules, err := u.ShaderModules()
	if err != nil {
		t.Fatalf("ShaderModules() error: %v", err)
	}
	for _, name := range ShaderNames() {
		if modules[name] == nil {
			t.Errorf("missing module %q", name)
		}
	}
}

// mockDevice implements gpucontext.Device for testing.
type mockDevice struct{}

func (m *mockDevice) Poll(wait bool) {}
func (m *mockDevice) Destroy()       {}

type mockQueue struct{}

type mockAdapter struct{}

// mockProvider implements gpucontext.DeviceProvider without HAL access.
type mockProvider struct{}

func (mockProvider) Device() gpucontext.Device             { return &mockDevice{} }
func (mockProvider) Queue() gpucontext.Queue               { return &mockQueue{} }
func (mockProvider) Adapter() gpucontext.Adapter           { return &mockAdapter{} }
func (mockProvider) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }
func (mockProvider) AdapterInfo() gpucontext.AdapterInfo   { return gpucontext.AdapterInfo{} }

var (
	_ gpucontext.DeviceProvider = mockProvider{}
	_ gpucontext.DeviceProvider = mockHalProvider{}
)

// mockHalProvider also exposes HAL objects.
type mockHalProvider struct {
	mockProvider
	device hal.Device
	queue  hal.Queue
}

func (m mockHalProvider) HalDevice() any { return m.device }
func (m mockHalProvider) HalQueue() any  { return m.queue }

func TestNewUploaderFromProvider(t *testing.T) {
	if _, err := NewUploaderFromProvider(nil); !errors.Is(err, ErrNilDevice) {
		t.Errorf("nil provider: %v", err)
	}
	if _, err := NewUploaderFromProvider(mockProvider{}); !errors.Is(err, ErrNoHAL) {
		t.Errorf("provider without HAL: %v", err)
	}
	if _, err := NewUploaderFromProvider(mockHalProvider{}); !errors.Is(err, ErrNoHAL) {
		t.Errorf("provider with nil HAL objects: %v", err)
	}

	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()
	u, err := NewUploaderFromProvider(mockHalProvider{device: device, queue: queue})
	if err != nil {
		t.Fatalf("NewUploaderFromProvider() error: %v", err)
	}
	u.Destroy()
}

func TestNewUploader_Nil(t *testing.T) {
	if _, err := NewUploader(nil, nil); !errors.Is(err, ErrNilDevice) {
		t.Errorf("error = %v, want ErrNilDevice", err)
	}
}
