package geometry

import "github.com/vhxs/go-ray-tracing/pkg/core"

// ShapeList is an ordered collection of shapes searched linearly for the nearest hit.
// It references shapes owned by the caller and never copies or releases them.
type ShapeList struct {
	shapes []core.Shape
}

// NewShapeList creates a list over the given shapes, preserving their order
func NewShapeList(shapes ...core.Shape) *ShapeList {
	list := &ShapeList{shapes: make([]core.Shape, 0, len(shapes))}
	list.shapes = append(list.shapes, shapes...)
	return list
}

// Add appends a shape to the end of the list
func (l *ShapeList) Add(shape core.Shape) {
	l.shapes = append(l.shapes, shape)
}

// Clear removes every shape from the list
func (l *ShapeList) Clear() {
	l.shapes = nil
}

// Len returns the number of shapes in the list
func (l *ShapeList) Len() int {
	return len(l.shapes)
}

// Shapes returns the shapes in scan order
func (l *ShapeList) Shapes() []core.Shape {
	return l.shapes
}

// Hit finds the closest intersection among all shapes.
// Each successful hit shrinks the search window, so a later shape only wins when strictly nearer.
func (l *ShapeList) Hit(ray core.Ray, rayT core.Interval, rec *core.HitRecord) bool {
	var temp core.HitRecord
	hitAnything := false
	closestSoFar := rayT.Max

	for _, shape := range l.shapes {
		if shape.Hit(ray, core.NewInterval(rayT.Min, closestSoFar), &temp) {
			hitAnything = true
			closestSoFar = temp.T
			*rec = temp
		}
	}

	return hitAnything
}
