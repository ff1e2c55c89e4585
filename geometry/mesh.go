package geometry

import (
	"math"

	"github.com/jthornhill/globeview/common"
)

// Mesh holds CPU-side mesh data pending GPU upload via Renderer.InitMeshBuffers.
type Mesh struct {
	// VertexData is the raw vertex buffer bytes.
	VertexData []byte

	// IndexData is the raw index buffer bytes (uint32 indices).
	IndexData []byte

	// IndexCount is the number of indices, used for draw calls.
	IndexCount int
}

// NewQuadMesh creates a unit corner quad used for billboard rendering.
// The four vertices are vec2 corners in [-1, 1]; the vertex shader scales and
// orients them toward the camera per instance.
//
// Returns:
//   - *Mesh: the quad mesh (4 vertices, 6 indices)
func NewQuadMesh() *Mesh {
	corners := []float32{
		-1, -1,
		1, -1,
		1, 1,
		-1, 1,
	}
	indices := []uint32{
		0, 1, 2,
		0, 2, 3,
	}
	return &Mesh{
		VertexData: common.SliceToBytes(corners),
		IndexData:  common.SliceToBytes(indices),
		IndexCount: len(indices),
	}
}

// NewSphereMesh creates a UV sphere mesh centered at the origin.
// Vertices are MeshVertex records with outward-facing normals and
// equirectangular texture coordinates. Winding is counter-clockwise
// when viewed from outside.
//
// Parameters:
//   - radius: sphere radius in world units
//   - segments: number of longitudinal divisions (minimum 3)
//   - rings: number of latitudinal divisions (minimum 2)
//
// Returns:
//   - *Mesh: the sphere mesh
func NewSphereMesh(radius float32, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	vertices := make([]MeshVertex, 0, (rings+1)*(segments+1))
	for ring := 0; ring <= rings; ring++ {
		// phi runs from 0 at the north pole to pi at the south pole
		phi := math.Pi * float64(ring) / float64(rings)
		sinPhi := math.Sin(phi)
		cosPhi := math.Cos(phi)
		for seg := 0; seg <= segments; seg++ {
			theta := 2 * math.Pi * float64(seg) / float64(segments)
			nx := float32(sinPhi * math.Sin(theta))
			ny := float32(cosPhi)
			nz := float32(sinPhi * math.Cos(theta))
			vertices = append(vertices, MeshVertex{
				Position: [3]float32{nx * radius, ny * radius, nz * radius},
				Normal:   [3]float32{nx, ny, nz},
				UV: [2]float32{
					float32(seg) / float32(segments),
					float32(ring) / float32(rings),
				},
			})
		}
	}

	indices := make([]uint32, 0, rings*segments*6)
	stride := uint32(segments + 1)
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			a := uint32(ring)*stride + uint32(seg)
			b := a + stride
			indices = append(indices,
				a, b, a+1,
				a+1, b, b+1,
			)
		}
	}

	return &Mesh{
		VertexData: common.SliceToBytes(vertices),
		IndexData:  common.SliceToBytes(indices),
		IndexCount: len(indices),
	}
}
