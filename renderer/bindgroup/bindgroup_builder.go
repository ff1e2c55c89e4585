package bindgroup

import "github.com/cogentcore/webgpu/wgpu"

// ProviderOption is a functional option used to configure a Provider during construction.
type ProviderOption func(*provider)

// WithBindGroup sets the bind group for this provider.
//
// Parameters:
//   - bg: the bind group to set for this provider
//
// Returns:
//   - ProviderOption: a function that sets the bind group for this provider
func WithBindGroup(bg *wgpu.BindGroup) ProviderOption {
	return func(p *provider) {
		p.bindGroup = bg
	}
}

// WithBindGroupLayout sets the bind group layout for this provider.
//
// Parameters:
//   - bgl: the bind group layout to use for this provider
//
// Returns:
//   - ProviderOption: a function that sets the bind group layout for this provider
func WithBindGroupLayout(bgl *wgpu.BindGroupLayout) ProviderOption {
	return func(p *provider) {
		p.bindGroupLayout = bgl
	}
}

// WithBuffer sets a buffer for a specific binding index.
//
// Parameters:
//   - binding: the binding index for this buffer
//   - buf: the buffer to associate with this binding
//
// Returns:
//   - ProviderOption: a function that sets the buffer for the specified binding
func WithBuffer(binding int, buf *wgpu.Buffer) ProviderOption {
	return func(p *provider) {
		p.buffers[binding] = buf
	}
}

// WithInstanceCount sets the instance count for instanced draw calls.
//
// Parameters:
//   - count: the instance count
//
// Returns:
//   - ProviderOption: a function that sets the instance count
func WithInstanceCount(count int) ProviderOption {
	return func(p *provider) {
		p.instanceCount = count
	}
}
