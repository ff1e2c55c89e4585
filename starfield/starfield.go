package starfield

import (
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jthornhill/globeview/common"
	"github.com/jthornhill/globeview/geometry"
	"github.com/jthornhill/globeview/renderer"
	"github.com/jthornhill/globeview/renderer/bindgroup"
)

// generationChunkSize is the number of stars generated per worker task.
// Each chunk gets its own PCG stream keyed by chunk index, so the field
// is identical for a given seed regardless of worker count.
const generationChunkSize = 1024

// One pool serves every generation for the process lifetime. Pool workers
// never exit once started, so a pool per field would strand its workers
// on an idle task channel after generation completes.
var (
	generationPoolOnce sync.Once
	generationPool     worker.DynamicWorkerPool
)

func sharedGenerationPool() worker.DynamicWorkerPool {
	generationPoolOnce.Do(func() {
		generationPool = worker.NewDynamicWorkerPool(max(runtime.NumCPU()-1, 1), 256, 1*time.Second)
	})
	return generationPool
}

// StarField holds a procedurally generated set of stars distributed inside a
// spherical shell, along with the GPU resources needed to render them as
// camera-facing billboards.
type StarField interface {
	// Count returns the number of stars in the field.
	//
	// Returns:
	//   - int: the star count
	Count() int

	// Seed returns the seed the field was generated from.
	//
	// Returns:
	//   - uint64: the generation seed
	Seed() uint64

	// Positions returns the flat position buffer, 3 floats per star (x, y, z).
	//
	// Returns:
	//   - []float32: a buffer of length 3*Count()
	Positions() []float32

	// Colors returns the flat color buffer, 3 floats per star (r, g, b).
	//
	// Returns:
	//   - []float32: a buffer of length 3*Count()
	Colors() []float32

	// Sizes returns the per-star billboard sizes.
	//
	// Returns:
	//   - []float32: a buffer of length Count()
	Sizes() []float32

	// Instances returns the stars packed as GPU instance records.
	//
	// Returns:
	//   - []StarInstance: one record per star
	Instances() []StarInstance

	// BindGroupProvider returns the Provider holding the star field's GPU resources.
	//
	// Returns:
	//   - bindgroup.Provider: the provider
	BindGroupProvider() bindgroup.Provider

	// Init uploads the billboard quad mesh, the sprite texture, and the star
	// instance storage buffer to the GPU via the given Renderer. Must be
	// called once before drawing.
	//
	// Parameters:
	//   - r: the Renderer to create GPU resources with
	//   - sprite: the decoded point sprite texture
	//
	// Returns:
	//   - error: an error if buffer or bind group creation fails
	Init(r renderer.Renderer, sprite common.TextureStagingData) error

	// Release releases the GPU resources held by the star field's provider.
	Release()
}

type starField struct {
	count   int
	seed    uint64
	sampler ShellSampler
	workers int

	minShell float32
	maxShell float32

	hue          float64
	hueJitter    float64
	saturation   float64
	minLightness float64
	maxLightness float64
	sizeBase     float32
	sizeScale    float32

	positions []float32
	colors    []float32
	sizes     []float32
	instances []StarInstance

	provider bindgroup.Provider
}

var _ StarField = &starField{}

// NewStarField generates a star field from the given options.
// Generation is deterministic for a given seed and star count: stars are
// produced in fixed-size chunks, each from its own random stream, so the
// result does not depend on how many workers run the chunks.
//
// Parameters:
//   - options: variadic list of StarFieldOption functions to configure the field
//
// Returns:
//   - StarField: the generated field
//   - error: an error if the configuration is invalid
func NewStarField(options ...StarFieldOption) (StarField, error) {
	s := &starField{
		count:        6000,
		seed:         1,
		workers:      max(runtime.NumCPU()-1, 1),
		hue:          0.62,
		hueJitter:    0.05,
		saturation:   0.7,
		minLightness: 0.35,
		maxLightness: 0.85,
		sizeBase:     2.0,
		sizeScale:    3.0,
		minShell:     500,
		maxShell:     1200,
	}
	for _, opt := range options {
		opt(s)
	}

	if s.count < 0 {
		return nil, fmt.Errorf("star count must not be negative, got %d", s.count)
	}
	if s.minLightness > s.maxLightness {
		return nil, fmt.Errorf("lightness range [%v, %v] is inverted", s.minLightness, s.maxLightness)
	}

	sampler, err := NewShellSampler(s.minShell, s.maxShell)
	if err != nil {
		return nil, err
	}
	s.sampler = sampler
	s.provider = bindgroup.NewProvider("starfield")

	s.generate()
	return s, nil
}

// generate fills the flat buffers and instance records using the shared
// worker pool. Chunks cover disjoint index ranges, so workers write without
// synchronization; the semaphore bounds in-flight chunks to s.workers.
func (s *starField) generate() {
	n := s.count
	s.positions = make([]float32, 3*n)
	s.colors = make([]float32, 3*n)
	s.sizes = make([]float32, n)
	s.instances = make([]StarInstance, n)
	if n == 0 {
		return
	}

	pool := sharedGenerationPool()
	sem := make(chan struct{}, s.workers)
	var wg sync.WaitGroup

	chunks := (n + generationChunkSize - 1) / generationChunkSize
	for chunk := 0; chunk < chunks; chunk++ {
		start := chunk * generationChunkSize
		end := min(start+generationChunkSize, n)
		stream := uint64(chunk) + 1

		wg.Add(1)
		sem <- struct{}{}
		pool.SubmitTask(worker.Task{
			ID: chunk,
			Do: func() (any, error) {
				defer wg.Done()
				defer func() { <-sem }()
				rng := rand.New(rand.NewPCG(s.seed, stream))
				s.generateRange(rng, start, end)
				return nil, nil
			},
		})
	}
	wg.Wait()
}

func (s *starField) generateRange(rng *rand.Rand, start, end int) {
	for i := start; i < end; i++ {
		x, y, z := s.sampler.Sample(rng.Float64(), rng.Float64(), rng.Float64())

		hue := s.hue + (rng.Float64()*2-1)*s.hueJitter
		if hue < 0 {
			hue += 1
		} else if hue >= 1 {
			hue -= 1
		}
		lightness := s.minLightness + rng.Float64()*(s.maxLightness-s.minLightness)
		c := colorful.Hsl(hue*360, s.saturation, lightness)

		size := s.sizeBase + float32(rng.Float64())*s.sizeScale

		s.positions[3*i] = x
		s.positions[3*i+1] = y
		s.positions[3*i+2] = z
		s.colors[3*i] = float32(c.R)
		s.colors[3*i+1] = float32(c.G)
		s.colors[3*i+2] = float32(c.B)
		s.sizes[i] = size

		s.instances[i] = StarInstance{
			Position: [3]float32{x, y, z},
			Size:     size,
			Color:    [3]float32{float32(c.R), float32(c.G), float32(c.B)},
		}
	}
}

func (s *starField) Count() int {
	return s.count
}

func (s *starField) Seed() uint64 {
	return s.seed
}

func (s *starField) Positions() []float32 {
	return s.positions
}

func (s *starField) Colors() []float32 {
	return s.colors
}

func (s *starField) Sizes() []float32 {
	return s.sizes
}

func (s *starField) Instances() []StarInstance {
	return s.instances
}

func (s *starField) BindGroupProvider() bindgroup.Provider {
	return s.provider
}

func (s *starField) Init(r renderer.Renderer, sprite common.TextureStagingData) error {
	quad := geometry.NewQuadMesh()
	if err := r.InitMeshBuffers(s.provider, quad.VertexData, quad.IndexData, quad.IndexCount); err != nil {
		return fmt.Errorf("failed to create star quad buffers: %w", err)
	}

	if err := r.InitTextureView(s.provider, 1, sprite); err != nil {
		return fmt.Errorf("failed to create star sprite texture: %w", err)
	}
	if err := r.InitSampler(s.provider, 2, common.SamplerStagingData{
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeLinear,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	}); err != nil {
		return fmt.Errorf("failed to create star sprite sampler: %w", err)
	}

	// Storage buffers cannot be zero sized. An empty field still gets a
	// minimal buffer; the draw is skipped via InstanceCount.
	data := common.SliceToBytes(s.instances)
	bufferSize := uint64(len(data))
	if bufferSize < 32 {
		bufferSize = 32
	}

	if err := r.InitBindGroup(
		s.provider,
		InstanceBindGroupLayout(),
		nil,
		map[int]uint64{0: bufferSize},
	); err != nil {
		return fmt.Errorf("failed to create star instance bind group: %w", err)
	}

	if len(data) > 0 {
		r.WriteBuffers([]bindgroup.BufferWrite{
			{Provider: s.provider, Binding: 0, Offset: 0, Data: data},
		})
	}

	s.provider.SetInstanceCount(s.count)
	return nil
}

func (s *starField) Release() {
	s.provider.Release()
}
