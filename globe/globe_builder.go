package globe

import (
	"fmt"

	"github.com/jthornhill/globeview/camera"
	"github.com/jthornhill/globeview/common"
	"github.com/jthornhill/globeview/renderer"
	"github.com/jthornhill/globeview/shading"
	"github.com/jthornhill/globeview/starfield"
)

// config holds the globe construction parameters collected from options.
type config struct {
	title  string
	width  int
	height int

	variant       shading.Variant
	radius        float32
	detail        int
	pointSize     float32
	rotationSpeed float32

	colorTexture  *common.TextureAsset
	alphaTexture  *common.TextureAsset
	spriteTexture *common.TextureAsset

	ambient    float32
	hemisphere float32

	msaa        renderer.MSAASampleCount
	presentMode *renderer.PresentMode

	starOptions  []starfield.StarFieldOption
	orbitOptions []camera.ControllerOption

	profile bool
}

func defaultConfig() config {
	return config{
		title:         "globeview",
		width:         1280,
		height:        720,
		variant:       shading.VariantPlain,
		radius:        100,
		detail:        240,
		pointSize:     1.2,
		rotationSpeed: 0.0008,
		ambient:       0.4,
		hemisphere:    0.6,
		msaa:          renderer.MSAA4x,
	}
}

// validate fails fast on configuration the renderables cannot express,
// rather than silently clamping.
func (c *config) validate() error {
	if c.width <= 0 || c.height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.width, c.height)
	}
	if c.radius <= 0 {
		return fmt.Errorf("globe radius must be positive, got %v", c.radius)
	}
	if c.detail < 2 {
		return fmt.Errorf("surface detail must be at least 2, got %d", c.detail)
	}
	if c.pointSize <= 0 {
		return fmt.Errorf("surface point size must be positive, got %v", c.pointSize)
	}
	if c.ambient < 0 || c.hemisphere < 0 {
		return fmt.Errorf("light intensities must not be negative, got ambient %v hemisphere %v", c.ambient, c.hemisphere)
	}
	return nil
}

// GlobeOption defines a function that modifies the globe configuration.
type GlobeOption func(*config)

// WithTitle sets the window title.
// Default is "globeview".
//
// Parameters:
//   - title: the window title
//
// Returns:
//   - GlobeOption: the option function
func WithTitle(title string) GlobeOption {
	return func(c *config) {
		c.title = title
	}
}

// WithWindowSize sets the initial window dimensions in pixels.
// Default is 1280x720.
//
// Parameters:
//   - width: window width in pixels
//   - height: window height in pixels
//
// Returns:
//   - GlobeOption: the option function
func WithWindowSize(width, height int) GlobeOption {
	return func(c *config) {
		c.width = width
		c.height = height
	}
}

// WithVariant sets the surface shading variant.
// Default is VariantPlain.
//
// Parameters:
//   - v: the shading variant
//
// Returns:
//   - GlobeOption: the option function
func WithVariant(v shading.Variant) GlobeOption {
	return func(c *config) {
		c.variant = v
	}
}

// WithRadius sets the globe radius in world units.
// Default is 100.
//
// Parameters:
//   - radius: the globe radius
//
// Returns:
//   - GlobeOption: the option function
func WithRadius(radius float32) GlobeOption {
	return func(c *config) {
		c.radius = radius
	}
}

// WithDetail sets the surface detail level, the number of latitude rings in
// the surface point grid.
// Default is 240.
//
// Parameters:
//   - detail: the latitude ring count
//
// Returns:
//   - GlobeOption: the option function
func WithDetail(detail int) GlobeOption {
	return func(c *config) {
		c.detail = detail
	}
}

// WithPointSize sets the billboard size of each surface point in world units.
// Default is 1.2.
//
// Parameters:
//   - size: the point billboard size
//
// Returns:
//   - GlobeOption: the option function
func WithPointSize(size float32) GlobeOption {
	return func(c *config) {
		c.pointSize = size
	}
}

// WithRotationSpeed sets the globe rotation in radians per frame.
// Default is 0.0008.
//
// Parameters:
//   - speed: radians added to the rotation each frame
//
// Returns:
//   - GlobeOption: the option function
func WithRotationSpeed(speed float32) GlobeOption {
	return func(c *config) {
		c.rotationSpeed = speed
	}
}

// WithColorTexture sets the equirectangular base color texture asset.
// When absent or undecodable, rendering proceeds with a 1x1 white fallback.
//
// Parameters:
//   - asset: the color texture asset
//
// Returns:
//   - GlobeOption: the option function
func WithColorTexture(asset *common.TextureAsset) GlobeOption {
	return func(c *config) {
		c.colorTexture = asset
	}
}

// WithAlphaTexture sets the grayscale mask texture asset whose red channel is
// inverted into surface opacity.
// When absent or undecodable, rendering proceeds with a 1x1 white fallback.
//
// Parameters:
//   - asset: the alpha texture asset
//
// Returns:
//   - GlobeOption: the option function
func WithAlphaTexture(asset *common.TextureAsset) GlobeOption {
	return func(c *config) {
		c.alphaTexture = asset
	}
}

// WithStarSprite sets the point sprite texture for the star field.
// When absent or undecodable, rendering proceeds with a 1x1 white fallback
// and the stars fall back to plain radial falloff.
//
// Parameters:
//   - asset: the sprite texture asset
//
// Returns:
//   - GlobeOption: the option function
func WithStarSprite(asset *common.TextureAsset) GlobeOption {
	return func(c *config) {
		c.spriteTexture = asset
	}
}

// WithLighting sets the ambient and hemisphere light intensities modulating
// surface brightness. The hemisphere term favors the upper half of the globe.
// Defaults are 0.4 ambient, 0.6 hemisphere.
//
// Parameters:
//   - ambient: uniform base intensity
//   - hemisphere: intensity of the top-down gradient term
//
// Returns:
//   - GlobeOption: the option function
func WithLighting(ambient, hemisphere float32) GlobeOption {
	return func(c *config) {
		c.ambient = ambient
		c.hemisphere = hemisphere
	}
}

// WithMSAA sets the multisample anti-aliasing level.
// Default is 4x.
//
// Parameters:
//   - samples: the MSAA sample count
//
// Returns:
//   - GlobeOption: the option function
func WithMSAA(samples renderer.MSAASampleCount) GlobeOption {
	return func(c *config) {
		c.msaa = samples
	}
}

// WithPresentMode sets the surface present mode.
// Default is VSync.
//
// Parameters:
//   - mode: the present mode
//
// Returns:
//   - GlobeOption: the option function
func WithPresentMode(mode renderer.PresentMode) GlobeOption {
	return func(c *config) {
		c.presentMode = &mode
	}
}

// WithStarFieldOptions forwards options to the star field builder.
//
// Parameters:
//   - options: star field options
//
// Returns:
//   - GlobeOption: the option function
func WithStarFieldOptions(options ...starfield.StarFieldOption) GlobeOption {
	return func(c *config) {
		c.starOptions = append(c.starOptions, options...)
	}
}

// WithOrbitOptions forwards options to the orbit camera controller.
//
// Parameters:
//   - options: orbit controller options
//
// Returns:
//   - GlobeOption: the option function
func WithOrbitOptions(options ...camera.ControllerOption) GlobeOption {
	return func(c *config) {
		c.orbitOptions = append(c.orbitOptions, options...)
	}
}

// WithProfiling enables per-second frame rate and heap logging.
// Default is off.
//
// Returns:
//   - GlobeOption: the option function
func WithProfiling() GlobeOption {
	return func(c *config) {
		c.profile = true
	}
}
