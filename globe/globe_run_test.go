package globe

import (
	"errors"
	"testing"
	"time"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/jthornhill/globeview/camera"
	"github.com/jthornhill/globeview/common"
	"github.com/jthornhill/globeview/renderer"
	"github.com/jthornhill/globeview/renderer/bindgroup"
	"github.com/jthornhill/globeview/renderer/pipeline"
	"github.com/jthornhill/globeview/starfield"
	"github.com/jthornhill/globeview/window"
)

// stubWindow drives the update callback for a fixed number of iterations,
// standing in for the GLFW message loop.
type stubWindow struct {
	update    func()
	maxFrames int
	closed    bool
}

var _ window.Window = &stubWindow{}

func (w *stubWindow) SetUpdateCallback(callback func())             { w.update = callback }
func (w *stubWindow) SetResizeCallback(func(width, height int))     {}
func (w *stubWindow) SetScrollCallback(func(delta float32))         {}
func (w *stubWindow) SetMouseDownCallback(func(x, y int32))         {}
func (w *stubWindow) SetMouseUpCallback(func(x, y int32))           {}
func (w *stubWindow) SetMouseMoveCallback(func(x, y int32))         {}
func (w *stubWindow) SetVisibilityCallback(func(visible bool))      {}
func (w *stubWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor    { return nil }
func (w *stubWindow) IsRunning() bool                               { return !w.closed }
func (w *stubWindow) Close() error                                  { w.closed = true; return nil }
func (w *stubWindow) Width() int                                    { return 1280 }
func (w *stubWindow) Height() int                                   { return 720 }

func (w *stubWindow) ProcessMessages() {
	for frame := 0; !w.closed && frame < w.maxFrames; frame++ {
		if w.update != nil {
			w.update()
		}
	}
}

// stubRenderer counts frame calls and returns configured errors.
type stubRenderer struct {
	beginErr error
	drawErr  error

	beginCalls int
	drawCalls  int
	presented  int
}

var _ renderer.Renderer = &stubRenderer{}

func (r *stubRenderer) Pipeline(string) pipeline.Pipeline         { return nil }
func (r *stubRenderer) Pipelines() map[string]pipeline.Pipeline   { return nil }
func (r *stubRenderer) RegisterPipelines(...pipeline.Pipeline) error { return nil }
func (r *stubRenderer) Resize(width, height int)                  {}
func (r *stubRenderer) InitMeshBuffers(bindgroup.Provider, []byte, []byte, int) error { return nil }
func (r *stubRenderer) InitBindGroup(bindgroup.Provider, wgpu.BindGroupLayoutDescriptor, map[int]wgpu.BufferUsage, map[int]uint64) error {
	return nil
}
func (r *stubRenderer) InitTextureView(bindgroup.Provider, int, common.TextureStagingData) error {
	return nil
}
func (r *stubRenderer) InitSampler(bindgroup.Provider, int, common.SamplerStagingData) error {
	return nil
}
func (r *stubRenderer) WriteBuffers([]bindgroup.BufferWrite) {}
func (r *stubRenderer) BeginFrame() error {
	r.beginCalls++
	return r.beginErr
}
func (r *stubRenderer) DrawCall(string, bindgroup.Provider, uint32, []bindgroup.Provider) error {
	r.drawCalls++
	return r.drawErr
}
func (r *stubRenderer) EndFrame()                            {}
func (r *stubRenderer) Present()                             { r.presented++ }
func (r *stubRenderer) SetPresentMode(renderer.PresentMode)  {}
func (r *stubRenderer) Release()                             {}

// newTestGlobe assembles a globe around stub window and renderer, wired the
// way NewGlobe wires the frame callback.
func newTestGlobe(t *testing.T, rend renderer.Renderer, win window.Window) *globe {
	t.Helper()

	stars, err := starfield.NewStarField(starfield.WithCount(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := defaultConfig()
	g := &globe{
		cfg:      cfg,
		loop:     &frameLoop{},
		start:    time.Now(),
		window:   win,
		renderer: rend,
		camera:   camera.NewCamera(camera.WithController(camera.NewOrbitController())),
		stars:    stars,
		surface:  newSurface(cfg.radius, 8, cfg.pointSize, cfg.ambient, cfg.hemisphere),
		coreGlow: newCoreGlow(cfg.radius * coreRadiusRatio),
	}
	common.Identity(g.model[:])
	win.SetUpdateCallback(g.frame)
	return g
}

func TestRunReturnsFatalFrameError(t *testing.T) {
	win := &stubWindow{maxFrames: 10}
	rend := &stubRenderer{beginErr: errors.New("surface lost")}
	g := newTestGlobe(t, rend, win)

	err := g.Run()
	if err == nil || !errors.Is(err, rend.beginErr) {
		t.Fatalf("Run returned %v, want error wrapping %v", err, rend.beginErr)
	}
	if rend.beginCalls != 1 {
		t.Fatalf("frame loop ran %d frames after the fatal error, want 1", rend.beginCalls)
	}
	if !win.closed {
		t.Fatal("window left open after fatal frame error")
	}
	if g.loop.Running() {
		t.Fatal("frame loop still running after fatal frame error")
	}
}

func TestRunContinuesPastDrawErrors(t *testing.T) {
	win := &stubWindow{maxFrames: 3}
	rend := &stubRenderer{drawErr: errors.New("pipeline missing")}
	g := newTestGlobe(t, rend, win)

	if err := g.Run(); err != nil {
		t.Fatalf("draw errors must not abort the loop, got %v", err)
	}
	if rend.beginCalls != 3 {
		t.Fatalf("rendered %d frames, want 3", rend.beginCalls)
	}
	if rend.presented != 3 {
		t.Fatalf("presented %d frames, want 3", rend.presented)
	}
}

func TestRunReturnsNilOnNormalExit(t *testing.T) {
	win := &stubWindow{maxFrames: 2}
	rend := &stubRenderer{}
	g := newTestGlobe(t, rend, win)

	if err := g.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// surface and core glow draw once each per frame; the empty star field is skipped
	if rend.drawCalls != 4 {
		t.Fatalf("draw calls %d, want 4", rend.drawCalls)
	}
}
