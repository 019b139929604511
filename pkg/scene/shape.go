// Package scene holds the annotation model: a flat arena of rectangle
// shapes keyed by stable IDs, plus the handle geometry used to resize and
// rotate them. Nothing in here knows about any GUI toolkit; coordinates are
// scene units (pixels of the displayed frame).
package scene

import (
	"image/color"
	"math"

	"github.com/redmarklab/redmark/pkg/geom"
)

// ShapeID identifies a shape for its whole life. IDs are never reused, so
// a command holding one can detect that its shape is gone.
type ShapeID uint64

// MinSize is the smallest width or height a resize may produce.
const MinSize = 10.0

// Shape is one rectangle annotation. Rect is in the shape's local
// coordinates; Rotation turns the rect about its center; Pos then offsets
// it into the scene. A point maps to the scene as
// pos + center + R(rot)·(local − center).
type Shape struct {
	ID          ShapeID
	Rect        geom.Rect
	Rotation    float64 // degrees
	Pos         geom.Point
	Color       color.NRGBA
	StrokeWidth float64
}

// NewShape returns a shape with the default stroke at the given local rect.
func NewShape(r geom.Rect) Shape {
	return Shape{
		Rect:        r,
		Color:       DefaultStroke,
		StrokeWidth: DefaultStrokeWidth,
	}
}

// ToScene maps a local point into scene coordinates.
func (s *Shape) ToScene(p geom.Point) geom.Point {
	return geom.RotateAbout(p, s.Rect.Center(), s.Rotation).Add(s.Pos)
}

// FromScene maps a scene point into local coordinates. Exact inverse of
// ToScene.
func (s *Shape) FromScene(p geom.Point) geom.Point {
	return geom.RotateAbout(p.Sub(s.Pos), s.Rect.Center(), -s.Rotation)
}

// SceneCenter returns the shape's center in scene coordinates.
func (s *Shape) SceneCenter() geom.Point {
	return s.Rect.Center().Add(s.Pos)
}

// SceneBounds returns the axis-aligned scene extent of the rotated rect.
func (s *Shape) SceneBounds() geom.Rect {
	corners := s.Rect.Corners()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		p := s.ToScene(c)
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return geom.Rect{Min: geom.Point{X: minX, Y: minY}, W: maxX - minX, H: maxY - minY}
}

// HitTest reports whether a scene point falls inside the rotated rect.
func (s *Shape) HitTest(p geom.Point) bool {
	return s.Rect.Contains(s.FromScene(p))
}

// Translate moves the shape in the scene.
func (s *Shape) Translate(d geom.Point) {
	s.Pos = s.Pos.Add(d)
}

// Snapshot is the value-type geometry state a command captures. Style
// (color, stroke) is not part of it; gestures only change geometry.
type Snapshot struct {
	Rect     geom.Rect
	Rotation float64
	Pos      geom.Point
}

// Snapshot captures the current geometry.
func (s *Shape) Snapshot() Snapshot {
	return Snapshot{Rect: s.Rect, Rotation: s.Rotation, Pos: s.Pos}
}

// Restore applies a captured geometry.
func (s *Shape) Restore(snap Snapshot) {
	s.Rect = snap.Rect
	s.Rotation = snap.Rotation
	s.Pos = snap.Pos
}

// EqualWithin reports whether two snapshots differ by less than tol in
// every component. Gesture-end change detection uses tol 0.1.
func (a Snapshot) EqualWithin(b Snapshot, tol float64) bool {
	close := func(x, y float64) bool { return math.Abs(x-y) < tol }
	return close(a.Rect.Min.X, b.Rect.Min.X) &&
		close(a.Rect.Min.Y, b.Rect.Min.Y) &&
		close(a.Rect.W, b.Rect.W) &&
		close(a.Rect.H, b.Rect.H) &&
		close(a.Rotation, b.Rotation) &&
		close(a.Pos.X, b.Pos.X) &&
		close(a.Pos.Y, b.Pos.Y)
}
