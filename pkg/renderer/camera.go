package renderer

import (
	"math"
	"math/rand"

	"github.com/vhxs/go-ray-tracing/pkg/core"
)

// Camera generates rays for rendering
type Camera struct {
	config      CameraConfig
	imageHeight int
	center      core.Vec3 // Camera center
	pixel00Loc  core.Vec3 // Location of pixel 0, 0
	pixelDeltaU core.Vec3 // Offset to pixel to the right
	pixelDeltaV core.Vec3 // Offset to pixel below
}

// NewCamera derives the viewport geometry from config
func NewCamera(config CameraConfig) (*Camera, error) {
	config = config.withDefaultView()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Truncated, not rounded: 400 wide at 16:9 is 225 rows, 10 wide is 5
	imageHeight := int(float64(config.ImageWidth) / config.AspectRatio)
	if imageHeight < 1 {
		imageHeight = 1
	}

	center := config.LookFrom

	// Viewport dimensions
	focalLength := config.LookFrom.Subtract(config.LookAt).Length()
	h := 1.0
	if config.VFov > 0 {
		h = math.Tan(config.VFov * math.Pi / 180 / 2)
	}
	viewportHeight := 2 * h * focalLength
	viewportWidth := viewportHeight * (float64(config.ImageWidth) / float64(imageHeight))

	// Orthonormal camera basis
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(config.ImageWidth))
	pixelDeltaV := viewportV.Divide(float64(imageHeight))

	viewportUpperLeft := center.
		Subtract(w.Multiply(focalLength)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	return &Camera{
		config:      config,
		imageHeight: imageHeight,
		center:      center,
		pixel00Loc:  pixel00Loc,
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
	}, nil
}

// ImageWidth returns the image width in pixels
func (c *Camera) ImageWidth() int { return c.config.ImageWidth }

// ImageHeight returns the derived image height in pixels
func (c *Camera) ImageHeight() int { return c.imageHeight }

// SamplesPerPixel returns the number of samples averaged per pixel
func (c *Camera) SamplesPerPixel() int { return c.config.SamplesPerPixel }

// MaxDepth returns the bounce limit for each camera ray
func (c *Camera) MaxDepth() int { return c.config.MaxDepth }

// Center returns the camera origin
func (c *Camera) Center() core.Vec3 { return c.center }

// PixelCenter returns the world-space center of pixel (i, j), counted from the top-left
func (c *Camera) PixelCenter(i, j int) core.Vec3 {
	return c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
}

// GetRay returns a ray from the camera center through a random point in the square around pixel (i, j)
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	offsetX := random.Float64() - 0.5
	offsetY := random.Float64() - 0.5

	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetY))

	return core.NewRay(c.center, pixelSample.Subtract(c.center))
}
