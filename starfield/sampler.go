package starfield

import (
	"fmt"
	"math"
)

// ShellSampler maps uniform random values to positions inside a spherical shell.
// The mapping is the inverse-CDF construction for a uniform direction on the
// sphere: theta = 2*pi*u, phi = acos(2*v - 1), with the radius interpolated
// linearly between the shell bounds by w.
type ShellSampler interface {
	// Sample maps three uniform values in [0, 1) to a shell position.
	//
	// Parameters:
	//   - u: drives the azimuthal angle theta
	//   - v: drives the polar angle phi
	//   - w: drives the radius within the shell bounds
	//
	// Returns:
	//   - x, y, z: the sampled position
	Sample(u, v, w float64) (x, y, z float32)

	// MinRadius returns the inner shell radius.
	//
	// Returns:
	//   - float32: the inner radius
	MinRadius() float32

	// MaxRadius returns the outer shell radius.
	//
	// Returns:
	//   - float32: the outer radius
	MaxRadius() float32
}

type shellSampler struct {
	minRadius float32
	maxRadius float32
}

var _ ShellSampler = &shellSampler{}

// NewShellSampler creates a ShellSampler for the given radius bounds.
//
// Parameters:
//   - minRadius: inner shell radius, must be positive
//   - maxRadius: outer shell radius, must be >= minRadius
//
// Returns:
//   - ShellSampler: the sampler
//   - error: an error if the bounds are invalid
func NewShellSampler(minRadius, maxRadius float32) (ShellSampler, error) {
	if minRadius <= 0 {
		return nil, fmt.Errorf("shell inner radius must be positive, got %v", minRadius)
	}
	if maxRadius < minRadius {
		return nil, fmt.Errorf("shell outer radius %v must not be less than inner radius %v", maxRadius, minRadius)
	}
	return &shellSampler{
		minRadius: minRadius,
		maxRadius: maxRadius,
	}, nil
}

func (s *shellSampler) Sample(u, v, w float64) (x, y, z float32) {
	theta := 2 * math.Pi * u
	phi := math.Acos(2*v - 1)
	r := float64(s.minRadius) + w*float64(s.maxRadius-s.minRadius)

	sinPhi := math.Sin(phi)
	x = float32(r * sinPhi * math.Cos(theta))
	y = float32(r * sinPhi * math.Sin(theta))
	z = float32(r * math.Cos(phi))
	return
}

func (s *shellSampler) MinRadius() float32 {
	return s.minRadius
}

func (s *shellSampler) MaxRadius() float32 {
	return s.maxRadius
}
