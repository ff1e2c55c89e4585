package shading

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/jthornhill/globeview/camera"
	"github.com/jthornhill/globeview/geometry"
	"github.com/jthornhill/globeview/renderer/pipeline"
	"github.com/jthornhill/globeview/renderer/shader"
)

// CoreGlowPipelineKey is the cache key for the core glow render pipeline.
const CoreGlowPipelineKey = "core_glow"

// coreGlowShaderSource renders a pulsing golden glow on the inside of a
// sphere nested within the globe surface. Front faces are culled so only the
// far interior is rasterized, which reads as a glow seen through the surface
// points. Additive blending sums overlapping contributions into a luminous
// look without any lighting computation.
const coreGlowShaderSource = `
struct CameraUniform {
    view: mat4x4<f32>,
    proj: mat4x4<f32>,
    view_proj: mat4x4<f32>,
    camera_position: vec3<f32>,
};

@group(0) @binding(0) var<uniform> camera: CameraUniform;

struct GlowParams {
    model: mat4x4<f32>,
    time: f32,
    radius: f32,
};

@group(1) @binding(0) var<uniform> params: GlowParams;

struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) local_position: vec3<f32>,
    @location(1) world_normal: vec3<f32>,
    @location(2) world_position: vec3<f32>,
};

@vertex
fn vs_main(
    @location(0) position: vec3<f32>,
    @location(1) normal: vec3<f32>,
    @location(2) uv: vec2<f32>,
) -> VertexOutput {
    let world_pos = params.model * vec4<f32>(position, 1.0);

    var out: VertexOutput;
    out.clip_position = camera.view_proj * world_pos;
    out.local_position = position;
    out.world_normal = normalize((params.model * vec4<f32>(normal, 0.0)).xyz);
    out.world_position = world_pos.xyz;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    let dist = length(in.local_position) / params.radius;
    let glow = pow(1.0 - smoothstep(0.0, 1.0, dist), 2.0);

    let pulse = 0.8 + 0.2 * sin(params.time * 2.0);

    let view_dir = normalize(camera.camera_position - in.world_position);
    let facing = max(0.0, dot(normalize(in.world_normal), view_dir));
    let rim = (1.0 - facing) * (1.0 - facing);

    let alpha = glow * pulse * 0.6 + rim * 0.3;
    let golden = vec3<f32>(1.0, 0.78, 0.25);
    return vec4<f32>(golden * alpha, alpha);
}
`

// CoreGlowBindGroupLayout returns the layout descriptor for the glow
// parameter uniform at group 1, binding 0.
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the glow layout descriptor
func CoreGlowBindGroupLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "Core Glow Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: 80,
				},
			},
		},
	}
}

// CoreGlowVertexShader creates the core glow vertex shader.
//
// Returns:
//   - shader.Shader: the vertex shader
func CoreGlowVertexShader() shader.Shader {
	return shader.NewShader("core_glow_vs", shader.ShaderTypeVertex,
		shader.WithSource(coreGlowShaderSource),
		shader.WithBindGroupLayoutDescriptor(0, camera.BindGroupLayout()),
		shader.WithBindGroupLayoutDescriptor(1, CoreGlowBindGroupLayout()),
		shader.WithVertexLayouts([]wgpu.VertexBufferLayout{geometry.MeshVertexLayout()}),
	)
}

// CoreGlowFragmentShader creates the core glow fragment shader.
//
// Returns:
//   - shader.Shader: the fragment shader
func CoreGlowFragmentShader() shader.Shader {
	return shader.NewShader("core_glow_fs", shader.ShaderTypeFragment,
		shader.WithSource(coreGlowShaderSource),
	)
}

// NewCoreGlowPipeline creates the core glow render pipeline. Front faces are
// culled, blending is additive, and depth writes are off so the glow never
// occludes anything.
//
// Returns:
//   - pipeline.Pipeline: the core glow render pipeline
func NewCoreGlowPipeline() pipeline.Pipeline {
	return pipeline.NewPipeline(CoreGlowPipelineKey,
		pipeline.WithVertexShader(CoreGlowVertexShader()),
		pipeline.WithFragmentShader(CoreGlowFragmentShader()),
		pipeline.WithDepthWriteEnabled(false),
		pipeline.WithCullMode(wgpu.CullModeFront),
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
