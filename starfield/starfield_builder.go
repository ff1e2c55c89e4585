package starfield

// StarFieldOption defines a function that modifies the star field configuration.
type StarFieldOption func(*starField)

// WithCount sets the number of stars to generate.
// Default is 6000.
//
// Parameters:
//   - count: the star count
//
// Returns:
//   - StarFieldOption: the option function
func WithCount(count int) StarFieldOption {
	return func(s *starField) {
		s.count = count
	}
}

// WithSeed sets the generation seed. The same seed and count always produce
// the same field.
// Default is 1.
//
// Parameters:
//   - seed: the generation seed
//
// Returns:
//   - StarFieldOption: the option function
func WithSeed(seed uint64) StarFieldOption {
	return func(s *starField) {
		s.seed = seed
	}
}

// WithShell sets the inner and outer radii of the spherical shell the stars
// are distributed in.
// Default is 500 to 1200.
//
// Parameters:
//   - minRadius: inner shell radius
//   - maxRadius: outer shell radius
//
// Returns:
//   - StarFieldOption: the option function
func WithShell(minRadius, maxRadius float32) StarFieldOption {
	return func(s *starField) {
		s.minShell = minRadius
		s.maxShell = maxRadius
	}
}

// WithHue sets the base hue and jitter for star colors. Hue is in [0, 1)
// around the color wheel; each star's hue is drawn uniformly from
// [hue-jitter, hue+jitter], wrapping at the ends.
// Default is 0.62 with jitter 0.05.
//
// Parameters:
//   - hue: the base hue
//   - jitter: the maximum hue deviation
//
// Returns:
//   - StarFieldOption: the option function
func WithHue(hue, jitter float64) StarFieldOption {
	return func(s *starField) {
		s.hue = hue
		s.hueJitter = jitter
	}
}

// WithSaturation sets the HSL saturation for star colors.
// Default is 0.7.
//
// Parameters:
//   - saturation: the saturation in [0, 1]
//
// Returns:
//   - StarFieldOption: the option function
func WithSaturation(saturation float64) StarFieldOption {
	return func(s *starField) {
		s.saturation = saturation
	}
}

// WithLightnessRange sets the HSL lightness range star colors are drawn from.
// Default is 0.35 to 0.85.
//
// Parameters:
//   - minLightness: the minimum lightness
//   - maxLightness: the maximum lightness
//
// Returns:
//   - StarFieldOption: the option function
func WithLightnessRange(minLightness, maxLightness float64) StarFieldOption {
	return func(s *starField) {
		s.minLightness = minLightness
		s.maxLightness = maxLightness
	}
}

// WithSizeRange sets the billboard size distribution. Each star's size is
// base + uniform(0, scale) in world units.
// Default is base 2.0, scale 3.0.
//
// Parameters:
//   - base: the minimum billboard size
//   - scale: the size of the uniform range above the base
//
// Returns:
//   - StarFieldOption: the option function
func WithSizeRange(base, scale float32) StarFieldOption {
	return func(s *starField) {
		s.sizeBase = base
		s.sizeScale = scale
	}
}

// WithWorkers sets the maximum number of generation chunks processed
// concurrently on the shared worker pool.
// Default is the CPU count minus one, with a minimum of one.
//
// Parameters:
//   - workers: the concurrency limit (minimum 1)
//
// Returns:
//   - StarFieldOption: the option function
func WithWorkers(workers int) StarFieldOption {
	return func(s *starField) {
		if workers < 1 {
			workers = 1
		}
		s.workers = workers
	}
}
