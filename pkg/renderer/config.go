package renderer

import (
	"errors"
	"fmt"

	"github.com/vhxs/go-ray-tracing/pkg/core"
)

var (
	ErrInvalidAspectRatio = errors.New("aspect ratio must be positive")
	ErrInvalidWidth       = errors.New("image width must be positive")
	ErrInvalidSamples     = errors.New("samples per pixel must be at least 1")
	ErrInvalidDepth       = errors.New("max depth must not be negative")
	ErrInvalidView        = errors.New("camera view is degenerate")
)

// CameraConfig contains camera and sampling configuration
type CameraConfig struct {
	AspectRatio     float64 // Ideal ratio of image width over height
	ImageWidth      int     // Rendered image width in pixels
	SamplesPerPixel int     // Number of jittered rays per pixel
	MaxDepth        int     // Maximum ray bounce depth

	VFov     float64   // Vertical field of view in degrees (0 = 90°, a viewport of height 2 at unit focal length)
	LookFrom core.Vec3 // Camera center
	LookAt   core.Vec3 // Point the camera looks at
	VUp      core.Vec3 // Camera-relative up direction
}

// DefaultCameraConfig returns a camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		VUp:             core.NewVec3(0, 1, 0),
	}
}

// MergeCameraConfig returns base with every non-zero field of overrides applied
func MergeCameraConfig(base, overrides CameraConfig) CameraConfig {
	result := base
	if overrides.AspectRatio != 0 {
		result.AspectRatio = overrides.AspectRatio
	}
	if overrides.ImageWidth != 0 {
		result.ImageWidth = overrides.ImageWidth
	}
	if overrides.SamplesPerPixel != 0 {
		result.SamplesPerPixel = overrides.SamplesPerPixel
	}
	if overrides.MaxDepth != 0 {
		result.MaxDepth = overrides.MaxDepth
	}
	if overrides.VFov != 0 {
		result.VFov = overrides.VFov
	}
	zero := core.Vec3{}
	if overrides.LookFrom != zero || overrides.LookAt != zero {
		result.LookFrom = overrides.LookFrom
		result.LookAt = overrides.LookAt
	}
	if overrides.VUp != zero {
		result.VUp = overrides.VUp
	}
	return result
}

// withDefaultView fills an unset view with the fixed camera at the origin looking down -Z, +Y up
func (c CameraConfig) withDefaultView() CameraConfig {
	zero := core.Vec3{}
	if c.LookFrom == zero && c.LookAt == zero {
		c.LookAt = core.NewVec3(0, 0, -1)
	}
	if c.VUp == zero {
		c.VUp = core.NewVec3(0, 1, 0)
	}
	return c
}

// Validate checks the configuration for values the camera cannot work with.
// A zero view (LookFrom, LookAt and VUp unset) is the fixed camera, not an error.
func (c CameraConfig) Validate() error {
	c = c.withDefaultView()
	if !(c.AspectRatio > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidAspectRatio, c.AspectRatio)
	}
	if c.ImageWidth < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, c.ImageWidth)
	}
	if c.SamplesPerPixel < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSamples, c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDepth, c.MaxDepth)
	}
	if c.VFov < 0 || c.VFov >= 180 {
		return fmt.Errorf("%w: field of view %v outside [0, 180)", ErrInvalidView, c.VFov)
	}
	w := c.LookFrom.Subtract(c.LookAt)
	if w.NearZero() {
		return fmt.Errorf("%w: look-from and look-at coincide", ErrInvalidView)
	}
	if c.VUp.Cross(w).NearZero() {
		return fmt.Errorf("%w: up vector is parallel to the view direction", ErrInvalidView)
	}
	return nil
}
