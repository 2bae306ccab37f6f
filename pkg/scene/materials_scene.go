package scene

import (
	"github.com/vhxs/go-ray-tracing/pkg/core"
	"github.com/vhxs/go-ray-tracing/pkg/geometry"
	"github.com/vhxs/go-ray-tracing/pkg/material"
	"github.com/vhxs/go-ray-tracing/pkg/renderer"
)

// NewMaterialsScene creates one sphere of each material on a yellow ground, viewed through a narrow lens
func NewMaterialsScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.DefaultCameraConfig()
	defaultCameraConfig.VFov = 20
	defaultCameraConfig.LookFrom = core.NewVec3(-2, 2, 1)
	defaultCameraConfig.LookAt = core.NewVec3(0, 0, -1)

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	bubble := material.NewDielectric(1.0 / 1.5) // Air inside the glass
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	return &Scene{
		Name:        "materials",
		Description: "Diffuse, hollow glass and fuzzy metal spheres seen from above",
		Camera:      cameraConfig(defaultCameraConfig, cameraOverrides),
		Shapes: []core.Shape{
			geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
			geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, center),
			geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
			geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4, bubble),
			geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
		},
	}
}
