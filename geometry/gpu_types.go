package geometry

import "github.com/cogentcore/webgpu/wgpu"

// MeshVertex is the GPU-aligned vertex format for triangle meshes.
// Matches the WGSL vertex input layout used by the core glow shader.
// Size: 32 bytes.
type MeshVertex struct {
	Position [3]float32 // offset  0: object-space position (vec3<f32>)
	Normal   [3]float32 // offset 12: object-space normal (vec3<f32>)
	UV       [2]float32 // offset 24: texture coordinates (vec2<f32>)
}

// SurfacePoint is the GPU-aligned instance record for one surface sample point.
// Uploaded as a read-only storage buffer indexed by instance_index in the
// surface vertex shader. Size: 32 bytes (vec3 + f32 + vec2 + padding).
type SurfacePoint struct {
	Position [3]float32 // offset  0: world-space point position (vec3<f32>)
	Size     float32    // offset 12: point sprite size in world units (f32)
	UV       [2]float32 // offset 16: equirectangular texture coordinates (vec2<f32>)
	_pad     [2]float32 // offset 24: padding to 32 bytes
}

// QuadVertexLayout returns the vertex buffer layout for the billboard corner quad.
// A single vec2 corner attribute at location 0, expanded to a camera-facing
// quad in the vertex shader.
//
// Returns:
//   - wgpu.VertexBufferLayout: the vertex buffer layout for the quad mesh
func QuadVertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 8, // vec2<f32>
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				Format:         wgpu.VertexFormatFloat32x2,
				Offset:         0,
				ShaderLocation: 0,
			},
		},
	}
}

// MeshVertexLayout returns the vertex buffer layout matching MeshVertex.
// Position at location 0, normal at location 1, uv at location 2.
//
// Returns:
//   - wgpu.VertexBufferLayout: the vertex buffer layout for triangle meshes
func MeshVertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 32, // MeshVertex
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				Format:         wgpu.VertexFormatFloat32x3,
				Offset:         0,
				ShaderLocation: 0,
			},
			{
				Format:         wgpu.VertexFormatFloat32x3,
				Offset:         12,
				ShaderLocation: 1,
			},
			{
				Format:         wgpu.VertexFormatFloat32x2,
				Offset:         24,
				ShaderLocation: 2,
			},
		},
	}
}
