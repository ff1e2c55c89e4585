package globe

import (
	"fmt"
	"log"
	"time"

	"github.com/jthornhill/globeview/camera"
	"github.com/jthornhill/globeview/common"
	"github.com/jthornhill/globeview/profiler"
	"github.com/jthornhill/globeview/renderer"
	"github.com/jthornhill/globeview/renderer/bindgroup"
	"github.com/jthornhill/globeview/shading"
	"github.com/jthornhill/globeview/starfield"
	"github.com/jthornhill/globeview/window"
)

// coreRadiusRatio sizes the glow sphere relative to the globe surface.
const coreRadiusRatio = 0.9

// Globe composes the window, renderer, camera, star field, and globe
// renderables into a running visualization. Run blocks until the window
// closes; Pause, Resume, and Dispose control the frame loop from callbacks
// or other goroutines.
type Globe interface {
	// Run enters the window message loop and renders frames until the window
	// closes. Blocks the calling goroutine. Draw errors within a frame are
	// logged and rendering continues; failing to begin a frame is fatal and
	// shuts the loop down.
	//
	// Returns:
	//   - error: the first fatal frame error, or nil if the window closed normally
	Run() error

	// Pause halts frame rendering. Idempotent; the window stays responsive.
	Pause()

	// Resume restarts frame rendering after Pause. Idempotent; has no effect
	// while the window is hidden.
	Resume()

	// Dispose releases all GPU resources and closes the window. The globe
	// must not be used after Dispose.
	Dispose()

	// Camera returns the viewer camera.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// StarField returns the generated star field.
	//
	// Returns:
	//   - starfield.StarField: the star field
	StarField() starfield.StarField
}

type globe struct {
	cfg config

	window   window.Window
	renderer renderer.Renderer
	camera   camera.Camera
	stars    starfield.StarField
	surface  *surfaceRenderable
	coreGlow *coreGlowRenderable

	loop  *frameLoop
	prof  *profiler.Profiler
	start time.Time

	rotation float32
	model    [16]float32

	dragging     bool
	lastX, lastY int32

	frameErr error
	disposed bool
}

var _ Globe = &globe{}

// NewGlobe creates the visualization from the given options: a window, a WGPU
// renderer targeting it, an orbit camera, a procedurally generated star field,
// and the globe surface and core glow renderables. All GPU resources are
// created up front; the returned Globe only needs Run.
//
// Parameters:
//   - options: variadic list of GlobeOption functions to configure the globe
//
// Returns:
//   - Globe: the composed visualization
//   - error: an error if the configuration is invalid or GPU setup fails
func NewGlobe(options ...GlobeOption) (Globe, error) {
	cfg := defaultConfig()
	for _, opt := range options {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	g := &globe{
		cfg:   cfg,
		loop:  &frameLoop{},
		start: time.Now(),
	}
	common.Identity(g.model[:])

	if cfg.profile {
		g.prof = profiler.NewProfiler(time.Second)
	}

	g.window = window.NewWindow(
		window.WithTitle(cfg.title),
		window.WithWidth(cfg.width),
		window.WithHeight(cfg.height),
	)

	rendererOptions := []renderer.RendererBuilderOption{
		renderer.WithMSAA(cfg.msaa),
	}
	if cfg.presentMode != nil {
		rendererOptions = append(rendererOptions, renderer.WithPresentMode(*cfg.presentMode))
	}
	g.renderer = renderer.NewRenderer(renderer.BackendTypeWGPU, g.window, rendererOptions...)

	controller := camera.NewOrbitController(cfg.orbitOptions...)
	g.camera = camera.NewCamera(
		camera.WithController(controller),
		camera.WithAspect(float32(g.window.Width())/float32(g.window.Height())),
	)

	stars, err := starfield.NewStarField(cfg.starOptions...)
	if err != nil {
		g.teardownOnSetupFailure()
		return nil, err
	}
	g.stars = stars

	g.surface = newSurface(cfg.radius, cfg.detail, cfg.pointSize, cfg.ambient, cfg.hemisphere)
	g.coreGlow = newCoreGlow(cfg.radius * coreRadiusRatio)

	if err := g.initGPU(); err != nil {
		g.teardownOnSetupFailure()
		return nil, err
	}

	g.wireCallbacks()
	return g, nil
}

// initGPU registers the render pipelines and uploads all static resources.
func (g *globe) initGPU() error {
	if err := g.renderer.RegisterPipelines(
		shading.NewSurfacePipeline(g.cfg.variant),
		shading.NewCoreGlowPipeline(),
		starfield.NewPipeline(),
	); err != nil {
		return fmt.Errorf("failed to register render pipelines: %w", err)
	}

	if err := g.renderer.InitBindGroup(
		g.camera.BindGroupProvider(), camera.BindGroupLayout(), nil, nil,
	); err != nil {
		return fmt.Errorf("failed to create camera bind group: %w", err)
	}

	colorTexture := g.cfg.colorTexture.DecodeOrFallback()
	alphaTexture := g.cfg.alphaTexture.DecodeOrFallback()

	if err := g.surface.init(g.renderer, colorTexture, alphaTexture); err != nil {
		return err
	}
	if err := g.coreGlow.init(g.renderer); err != nil {
		return err
	}
	return g.stars.Init(g.renderer, g.cfg.spriteTexture.DecodeOrFallback())
}

// wireCallbacks attaches window event handlers: resize reconfigures the
// surface and camera aspect, scroll zooms, drag orbits, and minimizing the
// window auto-pauses the loop.
func (g *globe) wireCallbacks() {
	g.window.SetResizeCallback(func(width, height int) {
		if width == 0 || height == 0 {
			return
		}
		g.renderer.Resize(width, height)
		g.camera.SetAspect(float32(width) / float32(height))
	})

	g.window.SetScrollCallback(func(delta float32) {
		if ctrl := g.camera.Controller(); ctrl != nil {
			ctrl.Zoom(delta)
		}
	})

	g.window.SetMouseDownCallback(func(x, y int32) {
		g.dragging = true
		g.lastX, g.lastY = x, y
	})

	g.window.SetMouseUpCallback(func(x, y int32) {
		g.dragging = false
	})

	g.window.SetMouseMoveCallback(func(x, y int32) {
		if !g.dragging {
			return
		}
		dx := float32(x - g.lastX)
		dy := float32(y - g.lastY)
		g.lastX, g.lastY = x, y
		if ctrl := g.camera.Controller(); ctrl != nil {
			ctrl.Drag(dx, dy)
		}
	})

	g.window.SetVisibilityCallback(func(visible bool) {
		g.loop.SetHidden(!visible)
	})

	g.window.SetUpdateCallback(g.frame)
}

// frame renders one frame: advance rotation and time, update the camera,
// stage the uniform writes, then submit the three draw calls.
func (g *globe) frame() {
	if !g.loop.Running() {
		return
	}

	g.rotation += g.cfg.rotationSpeed
	common.RotationY(g.model[:], g.rotation)

	g.camera.Update()
	elapsed := float32(time.Since(g.start).Seconds())

	cameraUniform := g.camera.Uniform()
	g.renderer.WriteBuffers([]bindgroup.BufferWrite{
		{Provider: g.camera.BindGroupProvider(), Binding: 0, Offset: 0, Data: cameraUniform.Marshal()},
		g.surface.write(g.model, elapsed),
		g.coreGlow.write(g.model, elapsed),
	})

	if err := g.renderer.BeginFrame(); err != nil {
		g.fail(fmt.Errorf("failed to begin frame: %w", err))
		return
	}

	if err := g.surface.draw(g.renderer, g.cfg.variant, g.camera.BindGroupProvider()); err != nil {
		log.Printf("surface draw failed: %v", err)
	}
	if g.stars.Count() > 0 {
		if err := g.renderer.DrawCall(
			starfield.PipelineKey,
			g.stars.BindGroupProvider(),
			uint32(g.stars.Count()),
			[]bindgroup.Provider{g.camera.BindGroupProvider(), g.stars.BindGroupProvider()},
		); err != nil {
			log.Printf("star draw failed: %v", err)
		}
	}
	if err := g.coreGlow.draw(g.renderer, g.camera.BindGroupProvider()); err != nil {
		log.Printf("core glow draw failed: %v", err)
	}

	g.renderer.EndFrame()
	g.renderer.Present()

	if g.prof != nil {
		g.prof.Tick()
	}
}

func (g *globe) Run() error {
	g.window.ProcessMessages()
	return g.frameErr
}

// fail records the first fatal frame error, permanently halts the loop, and
// closes the window so ProcessMessages returns and Run can surface the error.
func (g *globe) fail(err error) {
	log.Printf("fatal frame error: %v", err)
	if g.frameErr == nil {
		g.frameErr = err
	}
	g.loop.Dispose()
	if closeErr := g.window.Close(); closeErr != nil {
		log.Printf("failed to close window: %v", closeErr)
	}
}

func (g *globe) Pause() {
	g.loop.Pause()
}

func (g *globe) Resume() {
	g.loop.Resume()
}

func (g *globe) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true
	g.loop.Dispose()

	g.surface.release()
	g.coreGlow.release()
	g.stars.Release()
	g.camera.BindGroupProvider().Release()
	g.renderer.Release()

	if err := g.window.Close(); err != nil {
		log.Printf("failed to close window: %v", err)
	}
}

func (g *globe) Camera() camera.Camera {
	return g.camera
}

func (g *globe) StarField() starfield.StarField {
	return g.stars
}

// teardownOnSetupFailure releases the partially constructed window and
// renderer when NewGlobe fails mid-setup.
func (g *globe) teardownOnSetupFailure() {
	if g.renderer != nil {
		g.renderer.Release()
	}
	if g.window != nil {
		if err := g.window.Close(); err != nil {
			log.Printf("failed to close window: %v", err)
		}
	}
}
