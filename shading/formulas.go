package shading

import "math"

// VisibilityThreshold is the cutoff below which a surface fragment is discarded.
// Visibility is binary at the vertex stage but interpolated across the
// billboard, so the fragment stage thresholds at the midpoint.
const VisibilityThreshold = 0.5

// AlphaDiscardThreshold is the opacity below which a fragment is discarded
// rather than blended, avoiding overdraw from fully transparent pixels.
const AlphaDiscardThreshold = 0.01

// Smoothstep is the standard cubic soft threshold. It returns 0 for x <= edge0,
// 1 for x >= edge1, and interpolates with zero derivative at both ends in between.
//
// Parameters:
//   - edge0: the lower edge
//   - edge1: the upper edge
//   - x: the input value
//
// Returns:
//   - float64: the interpolated value in [0, 1]
func Smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

// Visibility computes the back-face visibility scalar for a surface point.
// The point faces the camera when its view-space normal points back along the
// view-space position direction. Returns 1 for camera-facing points, 0 otherwise.
//
// Parameters:
//   - viewPos: the view-space position of the point
//   - viewNormal: the view-space normal of the point
//
// Returns:
//   - float64: 1 if the point faces the camera, 0 otherwise
func Visibility(viewPos, viewNormal [3]float64) float64 {
	// dot(normalize(-viewPos), viewNormal) >= 0 means camera-facing. The
	// normalization does not change the sign, so the dot alone decides.
	d := -viewPos[0]*viewNormal[0] - viewPos[1]*viewNormal[1] - viewPos[2]*viewNormal[2]
	if d >= 0 {
		return 1
	}
	return 0
}

// DiscardsFragment reports whether the surface fragment shader discards a
// fragment with the given interpolated visibility.
//
// Parameters:
//   - visibility: the interpolated visibility scalar
//
// Returns:
//   - bool: true if the fragment is discarded
func DiscardsFragment(visibility float64) bool {
	return visibility < VisibilityThreshold
}

// Pulse computes the core glow pulsing factor at the given time in seconds.
// Oscillates between 0.6 and 1.0 with a period of pi seconds.
//
// Parameters:
//   - time: elapsed time in seconds
//
// Returns:
//   - float64: the pulse factor
func Pulse(time float64) float64 {
	return 0.8 + 0.2*math.Sin(time*2)
}

// Rim computes the rim lighting term from the surface normal and the view
// direction, both unit vectors. The term is strongest at grazing angles where
// the normal is perpendicular to the view direction.
//
// Parameters:
//   - normal: the unit surface normal
//   - viewDir: the unit direction from the surface toward the camera
//
// Returns:
//   - float64: the rim term in [0, 1]
func Rim(normal, viewDir [3]float64) float64 {
	d := normal[0]*viewDir[0] + normal[1]*viewDir[1] + normal[2]*viewDir[2]
	if d < 0 {
		d = 0
	}
	f := 1 - d
	return f * f
}

// GlowWeight computes the radially decreasing glow weight used by the golden
// surface variant and the core glow. dist is the normalized distance from the
// glow center in [0, 1]. The smoothstep fades the glow out toward the edge
// and the power curve tightens it toward the center.
//
// Parameters:
//   - dist: the normalized distance from the glow center
//   - power: the tightening exponent
//
// Returns:
//   - float64: the glow weight in [0, 1]
func GlowWeight(dist, power float64) float64 {
	return math.Pow(1-Smoothstep(0, 1, dist), power)
}

// EdgeFade computes the alpha multiplier that fades surface fragments toward
// the UV periphery. dist is the distance from the UV center (0.5, 0.5). The
// fade reaches at most a 70% reduction at the outer edge.
//
// Parameters:
//   - dist: the distance from the UV center
//
// Returns:
//   - float64: the alpha multiplier in [0.3, 1]
func EdgeFade(dist float64) float64 {
	return 1 - 0.7*Smoothstep(0.3, 0.5, dist)
}

// CoreGlowAlpha computes the final core glow alpha from its component terms.
//
// Parameters:
//   - glow: the radial glow weight
//   - pulse: the pulsing factor
//   - rim: the rim lighting term
//
// Returns:
//   - float64: the fragment alpha
func CoreGlowAlpha(glow, pulse, rim float64) float64 {
	return glow*pulse*0.6 + rim*0.3
}
