package geometry

import (
	"math"

	"github.com/jthornhill/globeview/common"
)

// SurfaceGrid holds the sample points covering a sphere's surface.
// Points are laid out ring by ring from the north pole to the south pole,
// with per-ring point counts proportional to the ring circumference so
// density stays even across latitudes.
type SurfaceGrid struct {
	points []SurfacePoint
}

// NewSurfaceGrid generates surface sample points for a sphere of the given radius.
// detail controls the number of latitude rings; each ring gets a point count
// proportional to cos(latitude) so spacing is roughly uniform in arc length.
// Each point carries equirectangular texture coordinates for sampling a
// world texture in the fragment shader.
//
// Parameters:
//   - radius: sphere radius in world units
//   - detail: number of latitude rings (minimum 2)
//   - pointSize: billboard size for each point in world units
//
// Returns:
//   - *SurfaceGrid: the generated grid
func NewSurfaceGrid(radius float32, detail int, pointSize float32) *SurfaceGrid {
	if detail < 2 {
		detail = 2
	}

	// Angular spacing between rings. Rings sit at the centers of detail
	// latitude bands, avoiding degenerate single points at the poles.
	step := math.Pi / float64(detail)

	points := make([]SurfacePoint, 0, detail*detail*2)
	for ring := 0; ring < detail; ring++ {
		// lat runs from just below the north pole to just above the south pole
		lat := math.Pi/2 - (float64(ring)+0.5)*step
		sinLat := math.Sin(lat)
		cosLat := math.Cos(lat)

		circumference := 2 * math.Pi * cosLat
		cols := int(math.Round(circumference / step))
		if cols < 1 {
			cols = 1
		}

		for col := 0; col < cols; col++ {
			lon := 2 * math.Pi * float64(col) / float64(cols)
			points = append(points, SurfacePoint{
				Position: [3]float32{
					radius * float32(cosLat*math.Sin(lon)),
					radius * float32(sinLat),
					radius * float32(cosLat*math.Cos(lon)),
				},
				Size: pointSize,
				UV: [2]float32{
					float32(lon / (2 * math.Pi)),
					float32(0.5 - lat/math.Pi),
				},
			})
		}
	}

	return &SurfaceGrid{points: points}
}

// Points returns the generated surface points.
//
// Returns:
//   - []SurfacePoint: the sample points
func (g *SurfaceGrid) Points() []SurfacePoint {
	return g.points
}

// Count returns the number of surface points.
//
// Returns:
//   - int: the point count
func (g *SurfaceGrid) Count() int {
	return len(g.points)
}

// Bytes returns the points serialized for GPU storage buffer upload.
//
// Returns:
//   - []byte: the raw instance data
func (g *SurfaceGrid) Bytes() []byte {
	return common.SliceToBytes(g.points)
}
