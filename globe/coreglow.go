package globe

import (
	"fmt"

	"github.com/jthornhill/globeview/geometry"
	"github.com/jthornhill/globeview/renderer"
	"github.com/jthornhill/globeview/renderer/bindgroup"
	"github.com/jthornhill/globeview/shading"
)

// coreGlowSegments and coreGlowRings size the glow sphere mesh. The glow is
// a smooth gradient, so a coarse sphere is enough.
const (
	coreGlowSegments = 32
	coreGlowRings    = 16
)

// coreGlowRenderable draws the pulsing golden glow sphere nested inside the
// globe surface.
type coreGlowRenderable struct {
	radius   float32
	provider bindgroup.Provider
	uniform  shading.GPUCoreGlowUniform
}

func newCoreGlow(radius float32) *coreGlowRenderable {
	return &coreGlowRenderable{
		radius:   radius,
		provider: bindgroup.NewProvider("core_glow"),
	}
}

func (c *coreGlowRenderable) init(r renderer.Renderer) error {
	sphere := geometry.NewSphereMesh(c.radius, coreGlowSegments, coreGlowRings)
	if err := r.InitMeshBuffers(c.provider, sphere.VertexData, sphere.IndexData, sphere.IndexCount); err != nil {
		return fmt.Errorf("failed to create glow sphere buffers: %w", err)
	}
	if err := r.InitBindGroup(c.provider, shading.CoreGlowBindGroupLayout(), nil, nil); err != nil {
		return fmt.Errorf("failed to create glow bind group: %w", err)
	}
	c.uniform.Radius = c.radius
	return nil
}

// write stages the per-frame parameter update.
func (c *coreGlowRenderable) write(model [16]float32, time float32) bindgroup.BufferWrite {
	c.uniform.Model = model
	c.uniform.Time = time
	return bindgroup.BufferWrite{
		Provider: c.provider,
		Binding:  0,
		Offset:   0,
		Data:     c.uniform.Marshal(),
	}
}

func (c *coreGlowRenderable) draw(r renderer.Renderer, cameraProvider bindgroup.Provider) error {
	return r.DrawCall(
		shading.CoreGlowPipelineKey,
		c.provider,
		1,
		[]bindgroup.Provider{cameraProvider, c.provider},
	)
}

func (c *coreGlowRenderable) release() {
	c.provider.Release()
}
