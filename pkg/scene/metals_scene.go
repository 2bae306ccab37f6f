package scene

import (
	"golang.org/x/image/colornames"

	"github.com/vhxs/go-ray-tracing/pkg/core"
	"github.com/vhxs/go-ray-tracing/pkg/geometry"
	"github.com/vhxs/go-ray-tracing/pkg/material"
	"github.com/vhxs/go-ray-tracing/pkg/renderer"
)

// NewMetalsScene creates a row of metal spheres whose fuzz grows from left to right
func NewMetalsScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.DefaultCameraConfig()
	defaultCameraConfig.VFov = 40
	defaultCameraConfig.LookFrom = core.NewVec3(0, 0.5, 2)
	defaultCameraConfig.LookAt = core.NewVec3(0, 0, -1)

	ground := material.NewLambertian(colorToVec3(colornames.Darkolivegreen))
	metals := []core.Material{
		material.NewMetal(colorToVec3(colornames.Silver), 0.0),
		material.NewMetal(colorToVec3(colornames.Gold), 0.1),
		material.NewMetal(colorToVec3(colornames.Peru), 0.3),
		material.NewMetal(colorToVec3(colornames.Lightsteelblue), 0.6),
	}

	s := &Scene{
		Name:        "metals",
		Description: "Row of metal spheres from mirror to brushed",
		Camera:      cameraConfig(defaultCameraConfig, cameraOverrides),
		Shapes: []core.Shape{
			geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		},
	}

	// Spheres are spaced one diameter apart and centered on x=0
	for i, m := range metals {
		x := float64(i) - float64(len(metals)-1)/2
		s.Shapes = append(s.Shapes, geometry.NewSphere(core.NewVec3(x, 0, -1), 0.45, m))
	}

	return s
}
