package shader

import "github.com/cogentcore/webgpu/wgpu"

// ShaderBuilderOption is a functional option used to configure a shader during construction.
type ShaderBuilderOption func(*shader)

// WithSource sets the WGSL source code for the shader.
//
// Parameters:
//   - source: the WGSL source code
//
// Returns:
//   - ShaderBuilderOption: a function that sets the shader source
func WithSource(source string) ShaderBuilderOption {
	return func(s *shader) {
		s.source = source
	}
}

// WithEntryPoint overrides the default entry point name
// ("vs_main" for vertex shaders, "fs_main" for fragment shaders).
//
// Parameters:
//   - entryPoint: the entry point function name
//
// Returns:
//   - ShaderBuilderOption: a function that sets the entry point
func WithEntryPoint(entryPoint string) ShaderBuilderOption {
	return func(s *shader) {
		s.entryPoint = entryPoint
	}
}

// WithBindGroupLayoutDescriptor declares the bind group layout for a group index.
// The renderer creates the GPU layout from this descriptor when building pipelines.
//
// Parameters:
//   - group: the bind group index as referenced in the WGSL source
//   - descriptor: the layout descriptor for the group
//
// Returns:
//   - ShaderBuilderOption: a function that registers the descriptor
func WithBindGroupLayoutDescriptor(group int, descriptor wgpu.BindGroupLayoutDescriptor) ShaderBuilderOption {
	return func(s *shader) {
		s.bindGroupLayoutDescriptors[group] = descriptor
	}
}

// WithVertexLayouts sets the vertex buffer layouts for a vertex shader.
//
// Parameters:
//   - layouts: vertex buffer layouts matching the shader's vertex inputs
//
// Returns:
//   - ShaderBuilderOption: a function that sets the vertex layouts
func WithVertexLayouts(layouts []wgpu.VertexBufferLayout) ShaderBuilderOption {
	return func(s *shader) {
		s.vertexLayouts = layouts
	}
}
