package scene

import (
	"github.com/vhxs/go-ray-tracing/pkg/core"
	"github.com/vhxs/go-ray-tracing/pkg/geometry"
	"github.com/vhxs/go-ray-tracing/pkg/material"
	"github.com/vhxs/go-ray-tracing/pkg/renderer"
)

// NewDefaultScene creates the two-sphere scene: a diffuse sphere on a ground sphere of radius 100
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	return &Scene{
		Name:        "default",
		Description: "Diffuse sphere resting on a large ground sphere",
		Camera:      cameraConfig(renderer.DefaultCameraConfig(), cameraOverrides),
		Shapes: []core.Shape{
			geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray),
			geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, gray),
		},
	}
}
