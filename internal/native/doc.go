// Package native holds the HAL helpers shared by GPU upload code: WGSL to
// SPIR-V compilation through naga, shader module creation, and grouped
// resource release.
package native
