package globe

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/jthornhill/globeview/common"
	"github.com/jthornhill/globeview/geometry"
	"github.com/jthornhill/globeview/renderer"
	"github.com/jthornhill/globeview/renderer/bindgroup"
	"github.com/jthornhill/globeview/shading"
)

// surfaceRenderable draws the globe surface as an instanced billboard point
// cloud. Each surface grid point becomes one camera-facing quad shaded by the
// configured variant.
type surfaceRenderable struct {
	grid     *geometry.SurfaceGrid
	provider bindgroup.Provider
	uniform  shading.GPUSurfaceUniform
}

func newSurface(radius float32, detail int, pointSize float32, ambient, hemisphere float32) *surfaceRenderable {
	s := &surfaceRenderable{
		grid:     geometry.NewSurfaceGrid(radius, detail, pointSize),
		provider: bindgroup.NewProvider("globe_surface"),
	}
	s.uniform.Ambient = ambient
	s.uniform.Hemisphere = hemisphere
	return s
}

// init uploads the quad mesh, textures, point storage buffer, and parameter
// uniform for the surface.
func (s *surfaceRenderable) init(r renderer.Renderer, colorTexture, alphaTexture common.TextureStagingData) error {
	quad := geometry.NewQuadMesh()
	if err := r.InitMeshBuffers(s.provider, quad.VertexData, quad.IndexData, quad.IndexCount); err != nil {
		return fmt.Errorf("failed to create surface quad buffers: %w", err)
	}

	if err := r.InitTextureView(s.provider, 2, colorTexture); err != nil {
		return fmt.Errorf("failed to create surface color texture: %w", err)
	}
	if err := r.InitSampler(s.provider, 3, defaultSampler()); err != nil {
		return fmt.Errorf("failed to create surface sampler: %w", err)
	}
	if err := r.InitTextureView(s.provider, 4, alphaTexture); err != nil {
		return fmt.Errorf("failed to create surface alpha texture: %w", err)
	}

	points := s.grid.Bytes()
	if err := r.InitBindGroup(
		s.provider,
		shading.SurfaceBindGroupLayout(),
		nil,
		map[int]uint64{1: uint64(len(points))},
	); err != nil {
		return fmt.Errorf("failed to create surface bind group: %w", err)
	}

	r.WriteBuffers([]bindgroup.BufferWrite{
		{Provider: s.provider, Binding: 1, Offset: 0, Data: points},
	})
	s.provider.SetInstanceCount(s.grid.Count())
	return nil
}

// write stages the per-frame parameter update.
func (s *surfaceRenderable) write(model [16]float32, time float32) bindgroup.BufferWrite {
	s.uniform.Model = model
	s.uniform.Time = time
	return bindgroup.BufferWrite{
		Provider: s.provider,
		Binding:  0,
		Offset:   0,
		Data:     s.uniform.Marshal(),
	}
}

func (s *surfaceRenderable) draw(r renderer.Renderer, variant shading.Variant, cameraProvider bindgroup.Provider) error {
	return r.DrawCall(
		shading.SurfacePipelineKey(variant),
		s.provider,
		uint32(s.provider.InstanceCount()),
		[]bindgroup.Provider{cameraProvider, s.provider},
	)
}

func (s *surfaceRenderable) release() {
	s.provider.Release()
}

// defaultSampler returns the linear-filtering repeat sampler shared by the
// surface textures. Repeat addressing keeps the equirectangular seam and the
// neighbor-offset edge sampling continuous at the UV wrap.
func defaultSampler() common.SamplerStagingData {
	return common.SamplerStagingData{
		AddressModeU:  wgpu.AddressModeRepeat,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeLinear,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	}
}
