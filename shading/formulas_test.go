package shading

import (
	"math"
	"testing"
)

func TestSmoothstep(t *testing.T) {
	if got := Smoothstep(0, 1, -0.5); got != 0 {
		t.Fatalf("below edge0: got %v, want 0", got)
	}
	if got := Smoothstep(0, 1, 1.5); got != 1 {
		t.Fatalf("above edge1: got %v, want 1", got)
	}
	if got := Smoothstep(0, 1, 0.5); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("midpoint: got %v, want 0.5", got)
	}
	// monotonic over the transition
	prev := -1.0
	for x := 0.0; x <= 1.0; x += 0.01 {
		v := Smoothstep(0, 1, x)
		if v < prev {
			t.Fatalf("not monotonic at %v", x)
		}
		prev = v
	}
}

func TestVisibilityFacing(t *testing.T) {
	// point in front of the camera with its normal toward the camera
	if got := Visibility([3]float64{0, 0, -10}, [3]float64{0, 0, 1}); got != 1 {
		t.Fatalf("camera-facing point: got %v, want 1", got)
	}
	// normal pointing away
	if got := Visibility([3]float64{0, 0, -10}, [3]float64{0, 0, -1}); got != 0 {
		t.Fatalf("back-facing point: got %v, want 0", got)
	}
	// grazing normal counts as visible
	if got := Visibility([3]float64{0, 0, -10}, [3]float64{1, 0, 0}); got != 1 {
		t.Fatalf("grazing point: got %v, want 1", got)
	}
}

func TestDiscardThreshold(t *testing.T) {
	if !DiscardsFragment(0.4) {
		t.Fatal("visibility 0.4 must be discarded")
	}
	if DiscardsFragment(0.6) {
		t.Fatal("visibility 0.6 must contribute")
	}
}

func TestPulse(t *testing.T) {
	if got := Pulse(0); math.Abs(got-0.8) > 1e-12 {
		t.Fatalf("Pulse(0) = %v, want 0.8", got)
	}
	if got := Pulse(math.Pi / 4); math.Abs(got-1.0) > 1e-12 {
		t.Fatalf("Pulse(pi/4) = %v, want 1.0", got)
	}
	// bounded oscillation
	for time := 0.0; time < 10; time += 0.1 {
		p := Pulse(time)
		if p < 0.6-1e-12 || p > 1.0+1e-12 {
			t.Fatalf("Pulse(%v) = %v outside [0.6, 1.0]", time, p)
		}
	}
}

func TestRim(t *testing.T) {
	// head-on view: no rim
	if got := Rim([3]float64{0, 0, 1}, [3]float64{0, 0, 1}); got != 0 {
		t.Fatalf("head-on rim = %v, want 0", got)
	}
	// grazing angle: full rim
	if got := Rim([3]float64{1, 0, 0}, [3]float64{0, 0, 1}); got != 1 {
		t.Fatalf("grazing rim = %v, want 1", got)
	}
	// negative dot clamps to full rim
	if got := Rim([3]float64{0, 0, -1}, [3]float64{0, 0, 1}); got != 1 {
		t.Fatalf("back-facing rim = %v, want 1", got)
	}
	// 45 degrees: (1 - cos45)^2
	want := (1 - math.Sqrt2/2) * (1 - math.Sqrt2/2)
	got := Rim([3]float64{math.Sqrt2 / 2, 0, math.Sqrt2 / 2}, [3]float64{0, 0, 1})
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("45 degree rim = %v, want %v", got, want)
	}
}

func TestGlowWeight(t *testing.T) {
	if got := GlowWeight(0, 2); got != 1 {
		t.Fatalf("center glow = %v, want 1", got)
	}
	if got := GlowWeight(1, 2); got != 0 {
		t.Fatalf("edge glow = %v, want 0", got)
	}
	// higher power tightens the falloff
	if GlowWeight(0.5, 6) >= GlowWeight(0.5, 2) {
		t.Fatal("higher power should produce a tighter glow")
	}
	// monotonically decreasing
	prev := 2.0
	for d := 0.0; d <= 1.0; d += 0.05 {
		v := GlowWeight(d, 2)
		if v > prev {
			t.Fatalf("glow not decreasing at %v", d)
		}
		prev = v
	}
}

func TestEdgeFade(t *testing.T) {
	if got := EdgeFade(0); got != 1 {
		t.Fatalf("center fade = %v, want 1", got)
	}
	if got := EdgeFade(0.2); got != 1 {
		t.Fatalf("inside transition fade = %v, want 1", got)
	}
	if got := EdgeFade(0.5); math.Abs(got-0.3) > 1e-12 {
		t.Fatalf("edge fade = %v, want 0.3 (70%% reduction)", got)
	}
	if got := EdgeFade(0.7); math.Abs(got-0.3) > 1e-12 {
		t.Fatalf("beyond edge fade = %v, want 0.3", got)
	}
}

func TestCoreGlowAlpha(t *testing.T) {
	if got := CoreGlowAlpha(0, 0.8, 0); got != 0 {
		t.Fatalf("no glow no rim alpha = %v, want 0", got)
	}
	want := 1.0*0.8*0.6 + 0.5*0.3
	if got := CoreGlowAlpha(1, 0.8, 0.5); math.Abs(got-want) > 1e-12 {
		t.Fatalf("alpha = %v, want %v", got, want)
	}
}

func TestUniformSizes(t *testing.T) {
	var surface GPUSurfaceUniform
	if surface.Size() != 80 {
		t.Fatalf("surface uniform size %d, want 80", surface.Size())
	}
	if len(surface.Marshal()) != 80 {
		t.Fatalf("surface uniform marshal length %d, want 80", len(surface.Marshal()))
	}

	var glow GPUCoreGlowUniform
	if glow.Size() != 80 {
		t.Fatalf("glow uniform size %d, want 80", glow.Size())
	}
	if len(glow.Marshal()) != 80 {
		t.Fatalf("glow uniform marshal length %d, want 80", len(glow.Marshal()))
	}
}

func TestVariantKeys(t *testing.T) {
	if SurfacePipelineKey(VariantPlain) != "surface_plain" {
		t.Fatalf("plain key = %q", SurfacePipelineKey(VariantPlain))
	}
	if SurfacePipelineKey(VariantGolden) != "surface_golden" {
		t.Fatalf("golden key = %q", SurfacePipelineKey(VariantGolden))
	}
}
