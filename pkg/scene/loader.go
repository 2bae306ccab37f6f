package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/vhxs/go-ray-tracing/pkg/core"
	"github.com/vhxs/go-ray-tracing/pkg/geometry"
	"github.com/vhxs/go-ray-tracing/pkg/material"
	"github.com/vhxs/go-ray-tracing/pkg/renderer"
)

// sceneFile is the JSON layout of a scene description
type sceneFile struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Camera      cameraFile              `json:"camera"`
	Materials   map[string]materialFile `json:"materials"`
	Spheres     []sphereFile            `json:"spheres"`
}

type cameraFile struct {
	AspectRatio     float64 `json:"aspectRatio"`
	ImageWidth      int     `json:"imageWidth"`
	SamplesPerPixel int     `json:"samplesPerPixel"`
	MaxDepth        int     `json:"maxDepth"`
	VFov            float64 `json:"vfov"`
	LookFrom        *vector `json:"lookFrom"`
	LookAt          *vector `json:"lookAt"`
	VUp             *vector `json:"vup"`
}

type materialFile struct {
	Type            string  `json:"type"` // lambertian, metal or dielectric
	Albedo          *Color  `json:"albedo"`
	Fuzz            float64 `json:"fuzz"`
	RefractionIndex float64 `json:"refractionIndex"`
}

type sphereFile struct {
	Center   vector  `json:"center"`
	Radius   float64 `json:"radius"`
	Material string  `json:"material"` // Key into the materials table
}

// vector is a JSON array of exactly three numbers
type vector core.Vec3

func (v *vector) UnmarshalJSON(data []byte) error {
	var xyz []float64
	if err := json.Unmarshal(data, &xyz); err != nil {
		return fmt.Errorf("vector must be an array of three numbers: %w", err)
	}
	if len(xyz) != 3 {
		return fmt.Errorf("vector must have 3 components, got %d", len(xyz))
	}
	*v = vector{X: xyz[0], Y: xyz[1], Z: xyz[2]}
	return nil
}

// Color is a linear RGB color read from JSON, either as [r, g, b] in [0, 1] or as an SVG color name such as "steelblue"
type Color core.Vec3

func (c *Color) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		named, ok := colornames.Map[strings.ToLower(strings.ReplaceAll(name, " ", ""))]
		if !ok {
			return fmt.Errorf("unknown color name %q", name)
		}
		*c = Color(colorToVec3(named))
		return nil
	}

	var rgb vector
	if err := rgb.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("color must be a name or an [r, g, b] array: %w", err)
	}
	*c = Color(rgb)
	return nil
}

// colorToVec3 converts an 8-bit color to linear components in [0, 1]
func colorToVec3(c color.RGBA) core.Vec3 {
	return core.NewVec3(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}

// LoadFile reads a JSON scene description from path. The scene is named after the file unless it names itself.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	s, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		base := filepath.Base(path)
		s.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return s, nil
}

// Load decodes a JSON scene description and builds its spheres and materials
func Load(r io.Reader) (*Scene, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var file sceneFile
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}

	materials := make(map[string]core.Material, len(file.Materials))
	for name, m := range file.Materials {
		mat, err := m.build()
		if err != nil {
			return nil, fmt.Errorf("%w: material %q: %v", ErrInvalidScene, name, err)
		}
		materials[name] = mat
	}

	shapes := make([]core.Shape, 0, len(file.Spheres))
	for i, sf := range file.Spheres {
		if !(sf.Radius > 0) {
			return nil, fmt.Errorf("%w: sphere %d: radius must be positive, got %v", ErrInvalidScene, i, sf.Radius)
		}
		mat, ok := materials[sf.Material]
		if !ok {
			return nil, fmt.Errorf("%w: sphere %d: unknown material %q", ErrInvalidScene, i, sf.Material)
		}
		shapes = append(shapes, geometry.NewSphere(core.Vec3(sf.Center), sf.Radius, mat))
	}

	camera := file.Camera.config()
	if err := camera.Validate(); err != nil {
		return nil, fmt.Errorf("%w: camera: %v", ErrInvalidScene, err)
	}

	return &Scene{
		Name:        file.Name,
		Description: file.Description,
		Camera:      camera,
		Shapes:      shapes,
	}, nil
}

func (m materialFile) build() (core.Material, error) {
	albedo := func() (core.Vec3, error) {
		if m.Albedo == nil {
			return core.Vec3{}, fmt.Errorf("%s material needs an albedo", m.Type)
		}
		return core.Vec3(*m.Albedo), nil
	}

	switch strings.ToLower(m.Type) {
	case "lambertian":
		a, err := albedo()
		if err != nil {
			return nil, err
		}
		return material.NewLambertian(a), nil
	case "metal":
		a, err := albedo()
		if err != nil {
			return nil, err
		}
		return material.NewMetal(a, m.Fuzz), nil
	case "dielectric":
		if !(m.RefractionIndex > 0) {
			return nil, fmt.Errorf("refraction index must be positive, got %v", m.RefractionIndex)
		}
		return material.NewDielectric(m.RefractionIndex), nil
	default:
		return nil, fmt.Errorf("unknown material type %q", m.Type)
	}
}

// config fills in the default camera wherever the file leaves a field out
func (c cameraFile) config() renderer.CameraConfig {
	config := renderer.DefaultCameraConfig()
	if c.AspectRatio != 0 {
		config.AspectRatio = c.AspectRatio
	}
	if c.ImageWidth != 0 {
		config.ImageWidth = c.ImageWidth
	}
	if c.SamplesPerPixel != 0 {
		config.SamplesPerPixel = c.SamplesPerPixel
	}
	if c.MaxDepth != 0 {
		config.MaxDepth = c.MaxDepth
	}
	config.VFov = c.VFov
	if c.LookFrom != nil {
		config.LookFrom = core.Vec3(*c.LookFrom)
	}
	if c.LookAt != nil {
		config.LookAt = core.Vec3(*c.LookAt)
	}
	if c.VUp != nil {
		config.VUp = core.Vec3(*c.VUp)
	}
	return config
}
