package native

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

// ErrInvalidSPIRV is returned when compiled output is not a SPIR-V module.
var ErrInvalidSPIRV = errors.New("native: output is not SPIR-V")

// CompileShaderToSPIRV compiles WGSL source to SPIR-V words.
func CompileShaderToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}
	return SPIRVWords(spirvBytes)
}

// SPIRVWords converts little-endian SPIR-V bytes to words and checks the
// magic number.
func SPIRVWords(spirvBytes []byte) ([]uint32, error) {
	if len(spirvBytes) < 4 || len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSPIRV, len(spirvBytes))
	}
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	if words[0] != spirvMagic {
		return nil, fmt.Errorf("%w: magic %#08x", ErrInvalidSPIRV, words[0])
	}
	return words, nil
}

// CreateShaderModule creates a HAL shader module from SPIR-V code.
func CreateShaderModule(device hal.Device, label string, spirvCode []uint32) (hal.ShaderModule, error) {
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: spirvCode,
		},
	})
}

// Resources tracks HAL objects created on one device so they can be
// released together.
type Resources struct {
	Device        hal.Device
	Buffers       []hal.Buffer
	ShaderModules []hal.ShaderModule
}

// Destroy releases buffers before shader modules and clears the lists.
// Safe to call more than once.
func (r *Resources) Destroy() {
	if r.Device == nil {
		return
	}
	for _, b := range r.Buffers {
		if b != nil {
			r.Device.DestroyBuffer(b)
		}
	}
	for _, m := range r.ShaderModules {
		if m != nil {
			r.Device.DestroyShaderModule(m)
		}
	}
	r.Buffers = nil
	r.ShaderModules = nil
}
