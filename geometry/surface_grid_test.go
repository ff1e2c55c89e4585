package geometry

import (
	"math"
	"testing"
)

func TestSurfaceGridPointsOnSphere(t *testing.T) {
	radius := float32(100)
	grid := NewSurfaceGrid(radius, 64, 1.2)

	if grid.Count() == 0 {
		t.Fatal("grid has no points")
	}
	for i, p := range grid.Points() {
		norm := math.Sqrt(float64(p.Position[0]*p.Position[0] + p.Position[1]*p.Position[1] + p.Position[2]*p.Position[2]))
		if math.Abs(norm-float64(radius)) > 1e-3 {
			t.Fatalf("point %d norm %v, want %v", i, norm, radius)
		}
		if p.Size != 1.2 {
			t.Fatalf("point %d size %v, want 1.2", i, p.Size)
		}
		if p.UV[0] < 0 || p.UV[0] > 1 || p.UV[1] < 0 || p.UV[1] > 1 {
			t.Fatalf("point %d uv out of range: %v", i, p.UV)
		}
	}
}

func TestSurfaceGridDensityScalesWithDetail(t *testing.T) {
	coarse := NewSurfaceGrid(100, 16, 1)
	fine := NewSurfaceGrid(100, 64, 1)
	if fine.Count() <= coarse.Count() {
		t.Fatalf("detail 64 produced %d points, detail 16 produced %d", fine.Count(), coarse.Count())
	}
}

func TestSurfaceGridClampsDetail(t *testing.T) {
	grid := NewSurfaceGrid(100, 0, 1)
	if grid.Count() == 0 {
		t.Fatal("clamped grid has no points")
	}
}

func TestSurfaceGridBytes(t *testing.T) {
	grid := NewSurfaceGrid(50, 8, 1)
	// SurfacePoint is 32 bytes on the GPU
	if len(grid.Bytes()) != grid.Count()*32 {
		t.Fatalf("expected %d bytes, got %d", grid.Count()*32, len(grid.Bytes()))
	}
}

func TestSurfaceGridPolesHaveSparseRings(t *testing.T) {
	grid := NewSurfaceGrid(100, 32, 1)

	// count points in the top ring band versus the equator band
	var polar, equatorial int
	for _, p := range grid.Points() {
		lat := math.Asin(float64(p.Position[1]) / 100)
		switch {
		case lat > 1.45:
			polar++
		case math.Abs(lat) < 0.05:
			equatorial++
		}
	}
	if polar >= equatorial {
		t.Fatalf("polar band (%d points) should be sparser than equatorial band (%d points)", polar, equatorial)
	}
}
