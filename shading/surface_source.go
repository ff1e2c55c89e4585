package shading

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/jthornhill/globeview/camera"
	"github.com/jthornhill/globeview/geometry"
	"github.com/jthornhill/globeview/renderer/pipeline"
	"github.com/jthornhill/globeview/renderer/shader"
)

// Variant selects the globe surface shading style.
type Variant int

const (
	// VariantPlain renders the surface with the raw color texture.
	VariantPlain Variant = iota

	// VariantGolden renders the surface with land border highlighting and a
	// golden center glow.
	VariantGolden
)

// String returns the variant name.
//
// Returns:
//   - string: "plain" or "golden"
func (v Variant) String() string {
	switch v {
	case VariantGolden:
		return "golden"
	default:
		return "plain"
	}
}

// SurfacePipelineKey returns the pipeline cache key for the given variant.
//
// Parameters:
//   - v: the shading variant
//
// Returns:
//   - string: the pipeline key
func SurfacePipelineKey(v Variant) string {
	return "surface_" + v.String()
}

// surfaceVertexSource renders the globe surface points as camera-facing
// billboards. The vertex stage computes a binary visibility scalar from the
// view-space normal so the fragment stage can cull points on the far side of
// the sphere, which billboards do not get for free.
const surfaceVertexSource = `
struct CameraUniform {
    view: mat4x4<f32>,
    proj: mat4x4<f32>,
    view_proj: mat4x4<f32>,
    camera_position: vec3<f32>,
};

@group(0) @binding(0) var<uniform> camera: CameraUniform;

struct SurfaceParams {
    model: mat4x4<f32>,
    time: f32,
    ambient: f32,
    hemisphere: f32,
};

@group(1) @binding(0) var<uniform> params: SurfaceParams;

struct SurfacePoint {
    position: vec3<f32>,
    size: f32,
    uv: vec2<f32>,
};

@group(1) @binding(1) var<storage, read> points: array<SurfacePoint>;
@group(1) @binding(2) var color_texture: texture_2d<f32>;
@group(1) @binding(3) var surface_sampler: sampler;
@group(1) @binding(4) var alpha_texture: texture_2d<f32>;

struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) uv: vec2<f32>,
    @location(1) visibility: f32,
    @location(2) corner: vec2<f32>,
    @location(3) shade: f32,
};

@vertex
fn vs_main(
    @location(0) corner: vec2<f32>,
    @builtin(instance_index) instance: u32,
) -> VertexOutput {
    let p = points[instance];
    let world_pos = params.model * vec4<f32>(p.position, 1.0);
    let normal = normalize((params.model * vec4<f32>(normalize(p.position), 0.0)).xyz);

    var view_pos = camera.view * world_pos;
    let view_normal = normalize((camera.view * vec4<f32>(normal, 0.0)).xyz);
    let facing = dot(normalize(-view_pos.xyz), view_normal);

    view_pos = vec4<f32>(view_pos.xy + corner * p.size, view_pos.z, view_pos.w);

    var out: VertexOutput;
    out.clip_position = camera.proj * view_pos;
    out.uv = p.uv;
    out.visibility = select(0.0, 1.0, facing >= 0.0);
    out.corner = corner;
    out.shade = params.ambient + params.hemisphere * (0.5 + 0.5 * normal.y);
    return out;
}
`

// surfacePlainFragmentSource samples the color texture directly and derives
// opacity from the inverted red channel of the alpha texture. Texture samples
// happen before any discard to keep control flow uniform.
const surfacePlainFragmentSource = surfaceVertexSource + `
@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    let base = textureSample(color_texture, surface_sampler, in.uv);
    let mask = textureSample(alpha_texture, surface_sampler, in.uv).r;

    if in.visibility < 0.5 {
        discard;
    }
    if length(in.corner) > 1.0 {
        discard;
    }

    let alpha = 1.0 - mask;
    if alpha < 0.01 {
        discard;
    }
    return vec4<f32>(base.rgb * in.shade, alpha);
}
`

// surfaceGoldenFragmentSource adds land border highlighting and a golden
// center glow on top of the plain variant. The color texture's green channel
// doubles as the land mask: neighbor sampling at one texel estimates the
// local gradient, which lights up coastlines. The texel offset assumes a
// 1024x1024 source texture.
const surfaceGoldenFragmentSource = surfaceVertexSource + `
const TEXEL: f32 = 1.0 / 1024.0;

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    let base = textureSample(color_texture, surface_sampler, in.uv);
    let mask = textureSample(alpha_texture, surface_sampler, in.uv).r;
    let g_left = textureSample(color_texture, surface_sampler, in.uv + vec2<f32>(-TEXEL, 0.0)).g;
    let g_right = textureSample(color_texture, surface_sampler, in.uv + vec2<f32>(TEXEL, 0.0)).g;
    let g_down = textureSample(color_texture, surface_sampler, in.uv + vec2<f32>(0.0, -TEXEL)).g;
    let g_up = textureSample(color_texture, surface_sampler, in.uv + vec2<f32>(0.0, TEXEL)).g;

    if in.visibility < 0.5 {
        discard;
    }
    if length(in.corner) > 1.0 {
        discard;
    }

    let dist = distance(in.uv, vec2<f32>(0.5, 0.5));
    let outer_glow = pow(1.0 - smoothstep(0.0, 1.0, dist), 2.0);
    let inner_glow = pow(1.0 - smoothstep(0.0, 1.0, dist), 6.0);

    let edge = abs(g_right - g_left) + abs(g_up - g_down);
    let border = smoothstep(0.05, 0.2, edge);

    var color: vec3<f32>;
    if base.g > 0.5 {
        color = mix(vec3<f32>(0.05, 0.08, 0.12), vec3<f32>(0.85, 0.9, 1.0), border);
    } else {
        color = base.rgb * 0.3;
    }

    let golden = vec3<f32>(1.0, 0.78, 0.25);
    color = mix(color, golden, clamp(outer_glow * 0.35 + inner_glow * 0.5, 0.0, 1.0));

    var alpha = 1.0 - mask;
    alpha = alpha * (1.0 - 0.7 * smoothstep(0.3, 0.5, dist));
    if alpha < 0.01 {
        discard;
    }
    return vec4<f32>(color * in.shade, alpha);
}
`

// SurfaceBindGroupLayout returns the layout descriptor for the surface
// resources at group 1: parameter uniform, point storage buffer, color
// texture, sampler, and alpha texture.
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the surface layout descriptor
func SurfaceBindGroupLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "Surface Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: 80,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeReadOnlyStorage,
					MinBindingSize: 32,
				},
			},
			{
				Binding:    2,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    3,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
			{
				Binding:    4,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
		},
	}
}

// SurfaceVertexShader creates the surface vertex shader for the given variant.
//
// Parameters:
//   - v: the shading variant
//
// Returns:
//   - shader.Shader: the vertex shader
func SurfaceVertexShader(v Variant) shader.Shader {
	source := surfacePlainFragmentSource
	if v == VariantGolden {
		source = surfaceGoldenFragmentSource
	}
	return shader.NewShader("surface_"+v.String()+"_vs", shader.ShaderTypeVertex,
		shader.WithSource(source),
		shader.WithBindGroupLayoutDescriptor(0, camera.BindGroupLayout()),
		shader.WithBindGroupLayoutDescriptor(1, SurfaceBindGroupLayout()),
		shader.WithVertexLayouts([]wgpu.VertexBufferLayout{geometry.QuadVertexLayout()}),
	)
}

// SurfaceFragmentShader creates the surface fragment shader for the given variant.
//
// Parameters:
//   - v: the shading variant
//
// Returns:
//   - shader.Shader: the fragment shader
func SurfaceFragmentShader(v Variant) shader.Shader {
	source := surfacePlainFragmentSource
	if v == VariantGolden {
		source = surfaceGoldenFragmentSource
	}
	return shader.NewShader("surface_"+v.String()+"_fs", shader.ShaderTypeFragment,
		shader.WithSource(source),
	)
}

// NewSurfacePipeline creates the globe surface render pipeline for the given
// variant. Surface points blend with standard alpha blending and write depth
// so stars behind the globe are occluded.
//
// Parameters:
//   - v: the shading variant
//
// Returns:
//   - pipeline.Pipeline: the surface render pipeline
func NewSurfacePipeline(v Variant) pipeline.Pipeline {
	return pipeline.NewPipeline(SurfacePipelineKey(v),
		pipeline.WithVertexShader(SurfaceVertexShader(v)),
		pipeline.WithFragmentShader(SurfaceFragmentShader(v)),
		pipeline.WithBlendEnabled(true),
	)
}
