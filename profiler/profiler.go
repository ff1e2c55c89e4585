package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame rate and heap statistics for the render loop.
// Stats are written to the log once per interval.
type Profiler struct {
	frameCount int
	lastTime   time.Time
	interval   time.Duration
	memStats   runtime.MemStats
	fps        float64

	// now is the clock source, replaceable in tests.
	now func() time.Time
}

// NewProfiler creates a new Profiler logging at the given interval.
// Intervals of zero or less fall back to one second.
//
// Parameters:
//   - interval: how often stats are logged
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(interval time.Duration) *Profiler {
	if interval <= 0 {
		interval = time.Second
	}
	return &Profiler{
		interval: interval,
		lastTime: time.Now(),
		now:      time.Now,
	}
}

// Tick should be called once per rendered frame.
// Logs frame rate and heap statistics when the interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.interval {
		return false
	}

	p.fps = float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	log.Printf("[Profiler] FPS: %.2f | Heap: %.2f MB | GC: %d | Sys: %.2f MB",
		p.fps, allocMB, p.memStats.NumGC, sysMB)

	p.frameCount = 0
	p.lastTime = currentTime
	return true
}

// FPS returns the most recently computed frame rate.
// Zero until the first interval has elapsed.
//
// Returns:
//   - float64: frames per second over the last logged interval
func (p *Profiler) FPS() float64 {
	return p.fps
}
