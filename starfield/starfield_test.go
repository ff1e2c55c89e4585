package starfield

import (
	"math"
	"runtime"
	"testing"
	"time"
)

func TestStarFieldBufferLengths(t *testing.T) {
	field, err := NewStarField(WithCount(1000), WithSeed(11))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if field.Count() != 1000 {
		t.Fatalf("count %d, want 1000", field.Count())
	}
	if len(field.Positions()) != 3000 {
		t.Fatalf("positions length %d, want 3000", len(field.Positions()))
	}
	if len(field.Colors()) != 3000 {
		t.Fatalf("colors length %d, want 3000", len(field.Colors()))
	}
	if len(field.Sizes()) != 1000 {
		t.Fatalf("sizes length %d, want 1000", len(field.Sizes()))
	}
	if len(field.Instances()) != 1000 {
		t.Fatalf("instances length %d, want 1000", len(field.Instances()))
	}
}

func TestStarFieldEmpty(t *testing.T) {
	field, err := NewStarField(WithCount(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if field.Count() != 0 {
		t.Fatalf("count %d, want 0", field.Count())
	}
	if len(field.Positions()) != 0 || len(field.Colors()) != 0 || len(field.Sizes()) != 0 {
		t.Fatal("empty field has non-empty buffers")
	}
}

func TestStarFieldColorAndSizeBounds(t *testing.T) {
	field, err := NewStarField(WithCount(2000), WithSeed(13), WithSizeRange(2, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, c := range field.Colors() {
		if c < 0 || c > 1 {
			t.Fatalf("color component %d = %v outside [0, 1]", i, c)
		}
	}
	for i, s := range field.Sizes() {
		if s <= 0 || s > 5 {
			t.Fatalf("size %d = %v outside (0, 5]", i, s)
		}
	}
}

func TestStarFieldShellScenario(t *testing.T) {
	field, err := NewStarField(WithCount(100), WithSeed(17), WithShell(25, 50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	positions := field.Positions()
	if len(positions) != 300 || len(field.Colors()) != 300 || len(field.Sizes()) != 100 {
		t.Fatalf("buffer lengths %d/%d/%d, want 300/300/100",
			len(positions), len(field.Colors()), len(field.Sizes()))
	}
	for i := 0; i < 100; i++ {
		x := float64(positions[3*i])
		y := float64(positions[3*i+1])
		z := float64(positions[3*i+2])
		norm := math.Sqrt(x*x + y*y + z*z)
		if norm < 25-1e-6 || norm > 50+1e-6 {
			t.Fatalf("star %d norm %v outside [25, 50]", i, norm)
		}
	}
}

// TestStarFieldDeterminism checks that the field depends only on the seed,
// not on how the generation chunks are spread over workers.
func TestStarFieldDeterminism(t *testing.T) {
	a, err := NewStarField(WithCount(3000), WithSeed(99), WithWorkers(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewStarField(WithCount(3000), WithSeed(99), WithWorkers(8))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pa, pb := a.Positions(), b.Positions()
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("position %d differs: %v vs %v", i, pa[i], pb[i])
		}
	}
	ca, cb := a.Colors(), b.Colors()
	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("color %d differs: %v vs %v", i, ca[i], cb[i])
		}
	}
	sa, sb := a.Sizes(), b.Sizes()
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("size %d differs: %v vs %v", i, sa[i], sb[i])
		}
	}
}

func TestStarFieldSeedsDiffer(t *testing.T) {
	a, err := NewStarField(WithCount(100), WithSeed(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewStarField(WithCount(100), WithSeed(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	same := true
	pa, pb := a.Positions(), b.Positions()
	for i := range pa {
		if pa[i] != pb[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical positions")
	}
}

// TestStarFieldGenerationGoroutineGrowth checks that repeated generation does
// not accumulate goroutines. The shared pool's workers are created once; after
// that, every generation runs on the same workers.
func TestStarFieldGenerationGoroutineGrowth(t *testing.T) {
	// First generation brings up the shared pool.
	if _, err := NewStarField(WithCount(4096), WithSeed(3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := runtime.NumGoroutine()

	for i := 0; i < 5; i++ {
		if _, err := NewStarField(WithCount(4096), WithSeed(uint64(i+1)), WithWorkers(4)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	after := runtime.NumGoroutine()
	deadline := time.Now().Add(2 * time.Second)
	for after > before && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
		after = runtime.NumGoroutine()
	}
	if after > before {
		t.Fatalf("goroutines grew from %d to %d across repeated generation", before, after)
	}
}

func TestStarFieldInstancesMatchBuffers(t *testing.T) {
	field, err := NewStarField(WithCount(500), WithSeed(23))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	positions := field.Positions()
	sizes := field.Sizes()
	for i, inst := range field.Instances() {
		if inst.Position[0] != positions[3*i] || inst.Position[1] != positions[3*i+1] || inst.Position[2] != positions[3*i+2] {
			t.Fatalf("instance %d position mismatch", i)
		}
		if inst.Size != sizes[i] {
			t.Fatalf("instance %d size mismatch", i)
		}
	}
}

func TestNewStarFieldRejectsInvalidConfig(t *testing.T) {
	if _, err := NewStarField(WithCount(-1)); err == nil {
		t.Fatal("expected error for negative count")
	}
	if _, err := NewStarField(WithShell(0, 100)); err == nil {
		t.Fatal("expected error for zero inner shell radius")
	}
	if _, err := NewStarField(WithShell(200, 100)); err == nil {
		t.Fatal("expected error for inverted shell bounds")
	}
	if _, err := NewStarField(WithLightnessRange(0.9, 0.1)); err == nil {
		t.Fatal("expected error for inverted lightness range")
	}
}
