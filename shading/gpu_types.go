package shading

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUSurfaceUniform is the GPU-aligned parameter block for the globe surface
// shaders. Matches the WGSL SurfaceParams struct layout. Size: 80 bytes.
type GPUSurfaceUniform struct {
	Model      [16]float32 // offset  0: model matrix carrying the globe rotation (mat4x4<f32>)
	Time       float32     // offset 64: elapsed time in seconds (f32)
	Ambient    float32     // offset 68: ambient light intensity (f32)
	Hemisphere float32     // offset 72: hemisphere light intensity (f32)
	_pad       float32     // offset 76: padding to 80 bytes
}

// Size returns the size of the GPUSurfaceUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (g *GPUSurfaceUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUSurfaceUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUSurfaceUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Model[i]))
	}
	binary.LittleEndian.PutUint32(buf[64:], math.Float32bits(g.Time))
	binary.LittleEndian.PutUint32(buf[68:], math.Float32bits(g.Ambient))
	binary.LittleEndian.PutUint32(buf[72:], math.Float32bits(g.Hemisphere))
	return buf
}

// GPUCoreGlowUniform is the GPU-aligned parameter block for the core glow
// shader. Matches the WGSL GlowParams struct layout. Size: 80 bytes.
type GPUCoreGlowUniform struct {
	Model  [16]float32 // offset  0: model matrix carrying the globe rotation (mat4x4<f32>)
	Time   float32     // offset 64: elapsed time in seconds, drives the pulse (f32)
	Radius float32     // offset 68: glow sphere radius for distance normalization (f32)
	_pad   [2]float32  // offset 72: padding to 80 bytes
}

// Size returns the size of the GPUCoreGlowUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (g *GPUCoreGlowUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCoreGlowUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCoreGlowUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Model[i]))
	}
	binary.LittleEndian.PutUint32(buf[64:], math.Float32bits(g.Time))
	binary.LittleEndian.PutUint32(buf[68:], math.Float32bits(g.Radius))
	return buf
}
