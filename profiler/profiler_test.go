package profiler

import (
	"testing"
	"time"
)

func TestProfilerTicksBelowInterval(t *testing.T) {
	p := NewProfiler(time.Second)
	base := time.Now()
	p.lastTime = base
	p.now = func() time.Time { return base.Add(100 * time.Millisecond) }

	if p.Tick() {
		t.Fatal("tick before interval should not log")
	}
	if p.FPS() != 0 {
		t.Fatalf("fps %v before first interval, want 0", p.FPS())
	}
}

func TestProfilerComputesFPS(t *testing.T) {
	p := NewProfiler(time.Second)
	base := time.Now()
	p.lastTime = base
	p.now = func() time.Time { return base.Add(500 * time.Millisecond) }

	for i := 0; i < 29; i++ {
		if p.Tick() {
			t.Fatalf("tick %d logged before interval elapsed", i)
		}
	}

	p.now = func() time.Time { return base.Add(time.Second) }
	if !p.Tick() {
		t.Fatal("tick at interval should log")
	}
	if fps := p.FPS(); fps < 29 || fps > 31 {
		t.Fatalf("fps %v, want ~30", fps)
	}
}

func TestProfilerDefaultInterval(t *testing.T) {
	p := NewProfiler(0)
	if p.interval != time.Second {
		t.Fatalf("interval %v, want 1s fallback", p.interval)
	}
}
