package geometry

import (
	"math"
	"testing"
)

func TestNewQuadMesh(t *testing.T) {
	quad := NewQuadMesh()
	if len(quad.VertexData) != 4*2*4 {
		t.Fatalf("expected 32 bytes of vertex data, got %d", len(quad.VertexData))
	}
	if quad.IndexCount != 6 {
		t.Fatalf("expected 6 indices, got %d", quad.IndexCount)
	}
	if len(quad.IndexData) != 6*4 {
		t.Fatalf("expected 24 bytes of index data, got %d", len(quad.IndexData))
	}
}

func TestNewSphereMeshVertexCount(t *testing.T) {
	segments, rings := 32, 16
	sphere := NewSphereMesh(100, segments, rings)

	wantVerts := (segments + 1) * (rings + 1)
	vertexSize := 32 // MeshVertex: 3 position + 3 normal + 2 uv floats
	if len(sphere.VertexData) != wantVerts*vertexSize {
		t.Fatalf("expected %d vertices, got %d bytes", wantVerts, len(sphere.VertexData))
	}
	if sphere.IndexCount != segments*rings*6 {
		t.Fatalf("expected %d indices, got %d", segments*rings*6, sphere.IndexCount)
	}
}

func TestNewSphereMeshVertexNorms(t *testing.T) {
	radius := float32(100)
	sphere := NewSphereMesh(radius, 16, 8)

	// reinterpret the raw bytes back into vertex records
	vertexCount := len(sphere.VertexData) / 32
	for i := 0; i < vertexCount; i++ {
		v := vertexAt(sphere.VertexData, i)

		norm := math.Sqrt(float64(v.Position[0]*v.Position[0] + v.Position[1]*v.Position[1] + v.Position[2]*v.Position[2]))
		if math.Abs(norm-float64(radius)) > 1e-3 {
			t.Fatalf("vertex %d norm %v, want %v", i, norm, radius)
		}

		nNorm := math.Sqrt(float64(v.Normal[0]*v.Normal[0] + v.Normal[1]*v.Normal[1] + v.Normal[2]*v.Normal[2]))
		if math.Abs(nNorm-1) > 1e-5 {
			t.Fatalf("vertex %d normal not unit length: %v", i, nNorm)
		}

		if v.UV[0] < 0 || v.UV[0] > 1 || v.UV[1] < 0 || v.UV[1] > 1 {
			t.Fatalf("vertex %d uv out of range: %v", i, v.UV)
		}
	}
}

func TestNewSphereMeshClampsParameters(t *testing.T) {
	sphere := NewSphereMesh(10, 1, 1)
	// clamped to 3 segments, 2 rings
	if sphere.IndexCount != 3*2*6 {
		t.Fatalf("expected clamped index count 36, got %d", sphere.IndexCount)
	}
}

func TestMeshVertexLayout(t *testing.T) {
	layout := MeshVertexLayout()
	if layout.ArrayStride != 32 {
		t.Fatalf("expected stride 32, got %d", layout.ArrayStride)
	}
	if len(layout.Attributes) != 3 {
		t.Fatalf("expected 3 attributes, got %d", len(layout.Attributes))
	}
}

func TestQuadVertexLayout(t *testing.T) {
	layout := QuadVertexLayout()
	if layout.ArrayStride != 8 {
		t.Fatalf("expected stride 8, got %d", layout.ArrayStride)
	}
	if len(layout.Attributes) != 1 {
		t.Fatalf("expected 1 attribute, got %d", len(layout.Attributes))
	}
}

// vertexAt decodes the i-th MeshVertex from raw vertex bytes.
func vertexAt(data []byte, i int) MeshVertex {
	var v MeshVertex
	base := i * 32
	for f := 0; f < 3; f++ {
		v.Position[f] = float32FromBytes(data[base+f*4:])
	}
	for f := 0; f < 3; f++ {
		v.Normal[f] = float32FromBytes(data[base+12+f*4:])
	}
	for f := 0; f < 2; f++ {
		v.UV[f] = float32FromBytes(data[base+24+f*4:])
	}
	return v
}

func float32FromBytes(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}
