package camera

import (
	"math"
	"testing"
)

func TestOrbitControllerDefaults(t *testing.T) {
	c := NewOrbitController()
	if c.Radius() != 400 {
		t.Fatalf("default radius %v, want 400", c.Radius())
	}
	tx, ty, tz := c.Target()
	if tx != 0 || ty != 0 || tz != 0 {
		t.Fatalf("default target (%v, %v, %v), want origin", tx, ty, tz)
	}
}

func TestOrbitControllerPositionRadius(t *testing.T) {
	c := NewOrbitController(WithRadius(300))
	px, py, pz := c.Position()
	norm := math.Sqrt(float64(px*px + py*py + pz*pz))
	if math.Abs(norm-300) > 1e-3 {
		t.Fatalf("position norm %v, want 300", norm)
	}
}

func TestOrbitControllerDrag(t *testing.T) {
	c := NewOrbitController()
	azimuth := c.Azimuth()
	elevation := c.Elevation()

	c.Drag(100, 50)
	if c.Azimuth() == azimuth {
		t.Fatal("horizontal drag did not change azimuth")
	}
	if c.Elevation() == elevation {
		t.Fatal("vertical drag did not change elevation")
	}

	// orbit never changes the distance to the target
	px, py, pz := c.Position()
	norm := math.Sqrt(float64(px*px + py*py + pz*pz))
	if math.Abs(norm-float64(c.Radius())) > 1e-3 {
		t.Fatalf("drag changed radius: %v vs %v", norm, c.Radius())
	}
}

func TestOrbitControllerElevationClamped(t *testing.T) {
	c := NewOrbitController()
	// drag far past the pole
	c.Drag(0, 1e6)
	limit := float32(math.Pi/2 - 0.1)
	if c.Elevation() > limit+1e-5 {
		t.Fatalf("elevation %v exceeds clamp %v", c.Elevation(), limit)
	}
	c.Drag(0, -2e6)
	if c.Elevation() < -limit-1e-5 {
		t.Fatalf("elevation %v below clamp %v", c.Elevation(), -limit)
	}
}

func TestOrbitControllerZoomClamped(t *testing.T) {
	c := NewOrbitController(WithRadiusBounds(150, 1600))
	c.Zoom(1e6)
	if c.Radius() != 150 {
		t.Fatalf("zoom in clamped radius %v, want 150", c.Radius())
	}
	c.Zoom(-1e6)
	if c.Radius() != 1600 {
		t.Fatalf("zoom out clamped radius %v, want 1600", c.Radius())
	}
}

func TestOrbitControllerTargetOffset(t *testing.T) {
	c := NewOrbitController(WithTarget(10, 20, 30), WithRadius(200))
	px, py, pz := c.Position()
	dx, dy, dz := px-10, py-20, pz-30
	norm := math.Sqrt(float64(dx*dx + dy*dy + dz*dz))
	if math.Abs(norm-200) > 1e-3 {
		t.Fatalf("distance to target %v, want 200", norm)
	}
}

func TestCameraUniform(t *testing.T) {
	c := NewCamera(WithController(NewOrbitController(WithRadius(400))))
	c.Update()

	u := c.Uniform()
	if u.Size() != 208 {
		t.Fatalf("uniform size %d, want 208", u.Size())
	}
	if len(u.Marshal()) != 208 {
		t.Fatalf("marshal length %d, want 208", len(u.Marshal()))
	}

	px := u.CameraPosition
	norm := math.Sqrt(float64(px[0]*px[0] + px[1]*px[1] + px[2]*px[2]))
	if math.Abs(norm-400) > 1e-3 {
		t.Fatalf("camera position norm %v, want 400", norm)
	}

	var identity [16]float32
	identity[0], identity[5], identity[10], identity[15] = 1, 1, 1, 1
	if u.View == identity {
		t.Fatal("view matrix still identity after Update")
	}
	if u.ViewProj == identity {
		t.Fatal("view-projection matrix still identity after Update")
	}
}
