package common

import (
	"math"
	"testing"
)

// transform applies a column-major 4x4 matrix to a point (w=1) and returns
// the result after perspective divide.
func transform(m []float32, x, y, z float32) (float32, float32, float32) {
	ox := m[0]*x + m[4]*y + m[8]*z + m[12]
	oy := m[1]*x + m[5]*y + m[9]*z + m[13]
	oz := m[2]*x + m[6]*y + m[10]*z + m[14]
	ow := m[3]*x + m[7]*y + m[11]*z + m[15]
	if ow != 0 && ow != 1 {
		return ox / ow, oy / ow, oz / ow
	}
	return ox, oy, oz
}

func TestMul4Identity(t *testing.T) {
	var id, m, out [16]float32
	Identity(id[:])
	RotationY(m[:], 0.7)

	Mul4(out[:], id[:], m[:])
	if out != m {
		t.Fatalf("identity*m mismatch: %v", out)
	}
	Mul4(out[:], m[:], id[:])
	if out != m {
		t.Fatalf("m*identity mismatch: %v", out)
	}
}

func TestMul4AliasedOutput(t *testing.T) {
	var a, b, want [16]float32
	RotationY(a[:], 0.3)
	RotationY(b[:], 0.5)
	Mul4(want[:], a[:], b[:])

	// out aliasing a must still produce the correct product
	Mul4(a[:], a[:], b[:])
	if a != want {
		t.Fatalf("aliased Mul4 mismatch: got %v want %v", a, want)
	}
}

func TestRotationYComposition(t *testing.T) {
	var a, b, ab, c [16]float32
	RotationY(a[:], 0.4)
	RotationY(b[:], 0.6)
	Mul4(ab[:], a[:], b[:])
	RotationY(c[:], 1.0)

	for i := range 16 {
		if math.Abs(float64(ab[i]-c[i])) > 1e-6 {
			t.Fatalf("rotation composition mismatch at %d: %v vs %v", i, ab[i], c[i])
		}
	}
}

func TestRotationYPreservesY(t *testing.T) {
	var m [16]float32
	RotationY(m[:], 1.3)
	_, y, _ := transform(m[:], 0, 5, 0)
	if math.Abs(float64(y-5)) > 1e-6 {
		t.Fatalf("rotation about Y moved the Y axis: %v", y)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	var m [16]float32
	near, far := float32(1.0), float32(10000.0)
	Perspective(m[:], float32(math.Pi/6), 16.0/9.0, near, far)

	// camera looks down -Z in view space
	_, _, nearDepth := transform(m[:], 0, 0, -near)
	_, _, farDepth := transform(m[:], 0, 0, -far)

	if math.Abs(float64(nearDepth)) > 1e-5 {
		t.Fatalf("near plane depth = %v, want 0", nearDepth)
	}
	if math.Abs(float64(farDepth-1)) > 1e-5 {
		t.Fatalf("far plane depth = %v, want 1", farDepth)
	}
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	var m [16]float32
	LookAt(m[:], 0, 0, 400, 0, 0, 0, 0, 1, 0)

	x, y, z := transform(m[:], 0, 0, 400)
	if math.Abs(float64(x)) > 1e-4 || math.Abs(float64(y)) > 1e-4 || math.Abs(float64(z)) > 1e-4 {
		t.Fatalf("eye not mapped to origin: (%v, %v, %v)", x, y, z)
	}

	// target lies on the -Z axis in view space
	x, y, z = transform(m[:], 0, 0, 0)
	if math.Abs(float64(x)) > 1e-4 || math.Abs(float64(y)) > 1e-4 {
		t.Fatalf("target off the view axis: (%v, %v)", x, y)
	}
	if z >= 0 {
		t.Fatalf("target in front of camera should have negative view Z, got %v", z)
	}
}

func TestSliceToBytes(t *testing.T) {
	floats := []float32{1, 2, 3}
	b := SliceToBytes(floats)
	if len(b) != 12 {
		t.Fatalf("expected 12 bytes, got %d", len(b))
	}
	if b2 := SliceToBytes([]float32(nil)); b2 != nil {
		t.Fatalf("empty slice should yield nil, got %v", b2)
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce(0, 5); got != 5 {
		t.Fatalf("Coalesce(0, 5) = %d", got)
	}
	if got := Coalesce(3, 5); got != 3 {
		t.Fatalf("Coalesce(3, 5) = %d", got)
	}
}
