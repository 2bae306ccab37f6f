package scene

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vhxs/go-ray-tracing/pkg/core"
	"github.com/vhxs/go-ray-tracing/pkg/geometry"
	"github.com/vhxs/go-ray-tracing/pkg/renderer"
)

var (
	ErrUnknownScene = errors.New("unknown scene")
	ErrInvalidScene = errors.New("invalid scene")
)

// Scene owns the spheres and materials of a render together with the camera that views them.
// Shapes must not be modified while a render of World() is running.
type Scene struct {
	Name        string
	Description string
	Camera      renderer.CameraConfig
	Shapes      []core.Shape
}

// World returns the surface list rays are traced against. It references the scene's shapes, it does not copy them.
func (s *Scene) World() *geometry.ShapeList {
	return geometry.NewShapeList(s.Shapes...)
}

// builtIns are the scenes constructed in code, by name
var builtIns = map[string]func(cameraOverrides ...renderer.CameraConfig) *Scene{
	"default":   NewDefaultScene,
	"materials": NewMaterialsScene,
	"metals":    NewMetalsScene,
}

// NewScene builds the built-in scene called name
func NewScene(name string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	build, ok := builtIns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return build(cameraOverrides...), nil
}

// Open returns the built-in scene called name, or loads name as a scene file when it has a .json extension
func Open(name string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		s, err := LoadFile(name)
		if err != nil {
			return nil, err
		}
		if len(cameraOverrides) > 0 {
			s.Camera = renderer.MergeCameraConfig(s.Camera, cameraOverrides[0])
		}
		return s, nil
	}
	return NewScene(name, cameraOverrides...)
}

// cameraConfig applies the optional override to a scene's own camera
func cameraConfig(base renderer.CameraConfig, overrides []renderer.CameraConfig) renderer.CameraConfig {
	if len(overrides) > 0 {
		return renderer.MergeCameraConfig(base, overrides[0])
	}
	return base
}
