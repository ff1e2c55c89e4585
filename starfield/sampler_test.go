package starfield

import (
	"math"
	"math/rand/v2"
	"sort"
	"testing"
)

func TestShellSamplerRadiusBounds(t *testing.T) {
	sampler, err := NewShellSampler(500, 1200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 10000; i++ {
		x, y, z := sampler.Sample(rng.Float64(), rng.Float64(), rng.Float64())
		norm := math.Sqrt(float64(x)*float64(x) + float64(y)*float64(y) + float64(z)*float64(z))
		if norm < 500-1e-3 || norm > 1200+1e-3 {
			t.Fatalf("sample %d norm %v outside [500, 1200]", i, norm)
		}
	}
}

func TestShellSamplerDegenerateShell(t *testing.T) {
	sampler, err := NewShellSampler(100, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 1000; i++ {
		x, y, z := sampler.Sample(rng.Float64(), rng.Float64(), rng.Float64())
		norm := math.Sqrt(float64(x)*float64(x) + float64(y)*float64(y) + float64(z)*float64(z))
		if math.Abs(norm-100) > 1e-3 {
			t.Fatalf("degenerate shell sample %d norm %v, want 100", i, norm)
		}
	}
}

// TestShellSamplerPolarUniformity guards against pole clustering. With the
// inverse-CDF construction the cosine of the polar angle is uniform on
// [-1, 1]; sampling the polar angle directly instead would fail this.
func TestShellSamplerPolarUniformity(t *testing.T) {
	sampler, err := NewShellSampler(1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const n = 10000
	rng := rand.New(rand.NewPCG(5, 6))
	cosines := make([]float64, n)
	for i := range cosines {
		_, _, z := sampler.Sample(rng.Float64(), rng.Float64(), rng.Float64())
		cosines[i] = float64(z) // radius is 1, so z is cos(phi)
	}
	sort.Float64s(cosines)

	// Kolmogorov-Smirnov statistic against Uniform[-1, 1]
	var maxD float64
	for i, c := range cosines {
		cdf := (c + 1) / 2
		empiricalHi := float64(i+1) / n
		empiricalLo := float64(i) / n
		if d := math.Abs(empiricalHi - cdf); d > maxD {
			maxD = d
		}
		if d := math.Abs(cdf - empiricalLo); d > maxD {
			maxD = d
		}
	}

	// critical value at alpha = 0.001 is ~1.95/sqrt(n)
	critical := 1.95 / math.Sqrt(n)
	if maxD > critical {
		t.Fatalf("KS statistic %v exceeds %v, polar angle not uniform in cosine", maxD, critical)
	}
}

func TestNewShellSamplerRejectsInvalidBounds(t *testing.T) {
	if _, err := NewShellSampler(0, 100); err == nil {
		t.Fatal("expected error for zero inner radius")
	}
	if _, err := NewShellSampler(-5, 100); err == nil {
		t.Fatal("expected error for negative inner radius")
	}
	if _, err := NewShellSampler(200, 100); err == nil {
		t.Fatal("expected error for outer radius below inner radius")
	}
}
