package starfield

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/jthornhill/globeview/camera"
	"github.com/jthornhill/globeview/geometry"
	"github.com/jthornhill/globeview/renderer/pipeline"
	"github.com/jthornhill/globeview/renderer/shader"
)

// PipelineKey is the cache key for the star billboard render pipeline.
const PipelineKey = "starfield"

// starShaderSource renders stars as camera-facing billboards. Each instance
// reads its star record from the storage buffer and expands the quad corner
// in view space, so the quad always faces the camera. Fragments modulate the
// sprite texture with a radial falloff and discard below the alpha threshold,
// so fully transparent sprite pixels cost no blending.
const starShaderSource = `
struct CameraUniform {
    view: mat4x4<f32>,
    proj: mat4x4<f32>,
    view_proj: mat4x4<f32>,
    camera_position: vec3<f32>,
};

@group(0) @binding(0) var<uniform> camera: CameraUniform;

struct Star {
    position: vec3<f32>,
    size: f32,
    color: vec3<f32>,
};

@group(1) @binding(0) var<storage, read> stars: array<Star>;
@group(1) @binding(1) var sprite_texture: texture_2d<f32>;
@group(1) @binding(2) var sprite_sampler: sampler;

struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) color: vec3<f32>,
    @location(1) corner: vec2<f32>,
};

@vertex
fn vs_main(
    @location(0) corner: vec2<f32>,
    @builtin(instance_index) instance: u32,
) -> VertexOutput {
    let star = stars[instance];

    var view_pos = camera.view * vec4<f32>(star.position, 1.0);
    view_pos = vec4<f32>(view_pos.xy + corner * star.size, view_pos.z, view_pos.w);

    var out: VertexOutput;
    out.clip_position = camera.proj * view_pos;
    out.color = star.color;
    out.corner = corner;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    let sprite = textureSample(sprite_texture, sprite_sampler, in.corner * 0.5 + 0.5);

    let d = length(in.corner);
    if d > 1.0 {
        discard;
    }
    let falloff = (1.0 - d) * (1.0 - d);

    let alpha = sprite.a * falloff;
    if alpha < 0.01 {
        discard;
    }
    return vec4<f32>(in.color * sprite.rgb * alpha, alpha);
}
`

// InstanceBindGroupLayout returns the layout descriptor for the star
// resources at group 1: instance storage buffer, sprite texture, and sampler.
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the star resources layout descriptor
func InstanceBindGroupLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "Star Instance Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeReadOnlyStorage,
					MinBindingSize: 32,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	}
}

// VertexShader creates the star billboard vertex shader.
//
// Returns:
//   - shader.Shader: the vertex shader
func VertexShader() shader.Shader {
	return shader.NewShader("starfield_vs", shader.ShaderTypeVertex,
		shader.WithSource(starShaderSource),
		shader.WithBindGroupLayoutDescriptor(0, camera.BindGroupLayout()),
		shader.WithBindGroupLayoutDescriptor(1, InstanceBindGroupLayout()),
		shader.WithVertexLayouts([]wgpu.VertexBufferLayout{geometry.QuadVertexLayout()}),
	)
}

// FragmentShader creates the star billboard fragment shader.
//
// Returns:
//   - shader.Shader: the fragment shader
func FragmentShader() shader.Shader {
	return shader.NewShader("starfield_fs", shader.ShaderTypeFragment,
		shader.WithSource(starShaderSource),
	)
}

// NewPipeline creates the star billboard render pipeline. Stars blend
// additively and test against depth without writing it, so they never occlude
// the globe but disappear behind it.
//
// Returns:
//   - pipeline.Pipeline: the star render pipeline
func NewPipeline() pipeline.Pipeline {
	return pipeline.NewPipeline(PipelineKey,
		pipeline.WithVertexShader(VertexShader()),
		pipeline.WithFragmentShader(FragmentShader()),
		pipeline.WithDepthWriteEnabled(false),
		pipeline.WithBlendEnabled(true),
		pipeline.WithBlendState(&wgpu.BlendState{
			Color: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorSrcAlpha,
				DstFactor: wgpu.BlendFactorOne,
				Operation: wgpu.BlendOperationAdd,
			},
			Alpha: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorOne,
				DstFactor: wgpu.BlendFactorOne,
				Operation: wgpu.BlendOperationAdd,
			},
		}),
	)
}
