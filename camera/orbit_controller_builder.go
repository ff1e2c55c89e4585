package camera

// ControllerOption is a functional option for configuring an orbit controller.
type ControllerOption func(*orbitControllerImpl)

// WithTarget sets the orbit target/pivot point.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - ControllerOption: option function to apply
func WithTarget(x, y, z float32) ControllerOption {
	return func(cc *orbitControllerImpl) {
		cc.target = [3]float32{x, y, z}
	}
}

// WithRadius sets the initial orbit radius.
//
// Parameters:
//   - radius: initial distance from target
//
// Returns:
//   - ControllerOption: option function to apply
func WithRadius(radius float32) ControllerOption {
	return func(cc *orbitControllerImpl) {
		cc.radius = radius
	}
}

// WithRadiusBounds sets the minimum and maximum orbit radius.
//
// Parameters:
//   - minRadius: minimum zoom distance
//   - maxRadius: maximum zoom distance
//
// Returns:
//   - ControllerOption: option function to apply
func WithRadiusBounds(minRadius, maxRadius float32) ControllerOption {
	return func(cc *orbitControllerImpl) {
		cc.minRadius = minRadius
		cc.maxRadius = maxRadius
	}
}

// WithElevationBounds sets the minimum and maximum elevation angles.
//
// Parameters:
//   - minElevation: minimum elevation in radians
//   - maxElevation: maximum elevation in radians
//
// Returns:
//   - ControllerOption: option function to apply
func WithElevationBounds(minElevation, maxElevation float32) ControllerOption {
	return func(cc *orbitControllerImpl) {
		cc.minElevation = minElevation
		cc.maxElevation = maxElevation
	}
}

// WithMouseSensitivity sets the drag sensitivity in radians per pixel.
//
// Parameters:
//   - sensitivity: radians of rotation per pixel of mouse movement
//
// Returns:
//   - ControllerOption: option function to apply
func WithMouseSensitivity(sensitivity float32) ControllerOption {
	return func(cc *orbitControllerImpl) {
		cc.mouseSensitivity = sensitivity
	}
}

// WithZoomSpeed sets the zoom speed multiplier applied to scroll deltas.
//
// Parameters:
//   - speed: world units per scroll step
//
// Returns:
//   - ControllerOption: option function to apply
func WithZoomSpeed(speed float32) ControllerOption {
	return func(cc *orbitControllerImpl) {
		cc.zoomSpeed = speed
	}
}
