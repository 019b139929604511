// Package geom provides the float64 plane geometry the editor is built on.
// All interactive math stays in floats; rounding to pixels happens only at
// the raster boundary.
package geom

import "math"

// Point is a position or offset in scene coordinates.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Rect is an axis-aligned rectangle described by its min corner and size.
// Width and height may be negative in intermediate states; Normalized folds
// them back.
type Rect struct {
	Min Point
	W   float64
	H   float64
}

// R is shorthand for Rect{{x, y}, w, h}.
func R(x, y, w, h float64) Rect {
	return Rect{Min: Point{X: x, Y: y}, W: w, H: h}
}

// RectFromPoints returns the normalized rectangle spanning two corners.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		Min: Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		W:   math.Abs(a.X - b.X),
		H:   math.Abs(a.Y - b.Y),
	}
}

// Max returns the corner opposite Min.
func (r Rect) Max() Point {
	return Point{X: r.Min.X + r.W, Y: r.Min.Y + r.H}
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() Point {
	return Point{X: r.Min.X + r.W/2, Y: r.Min.Y + r.H/2}
}

// Empty reports whether the rectangle encloses no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Normalized folds negative width/height so Min is the true top-left.
func (r Rect) Normalized() Rect {
	if r.W < 0 {
		r.Min.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Min.Y += r.H
		r.H = -r.H
	}
	return r
}

// Contains reports whether p lies inside the rectangle (inclusive of Min,
// exclusive of Max).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Min.X+r.W &&
		p.Y >= r.Min.Y && p.Y < r.Min.Y+r.H
}

// Intersect returns the overlap of r and s. The result is empty when they
// do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	x0 := math.Max(r.Min.X, s.Min.X)
	y0 := math.Max(r.Min.Y, s.Min.Y)
	x1 := math.Min(r.Min.X+r.W, s.Min.X+s.W)
	y1 := math.Min(r.Min.Y+r.H, s.Min.Y+s.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{Min: Point{X: x0, Y: y0}, W: x1 - x0, H: y1 - y0}
}

// Union returns the smallest rectangle covering both r and s. An empty
// operand yields the other.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	x0 := math.Min(r.Min.X, s.Min.X)
	y0 := math.Min(r.Min.Y, s.Min.Y)
	x1 := math.Max(r.Min.X+r.W, s.Min.X+s.W)
	y1 := math.Max(r.Min.Y+r.H, s.Min.Y+s.H)
	return Rect{Min: Point{X: x0, Y: y0}, W: x1 - x0, H: y1 - y0}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect {
	r.Min = r.Min.Add(d)
	return r
}

// Inset returns r shrunk by m on every side. A negative margin grows it.
func (r Rect) Inset(m float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X + m, Y: r.Min.Y + m},
		W:   r.W - 2*m,
		H:   r.H - 2*m,
	}
}

// Corners returns the four corners clockwise from Min.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		r.Min,
		{X: r.Min.X + r.W, Y: r.Min.Y},
		{X: r.Min.X + r.W, Y: r.Min.Y + r.H},
		{X: r.Min.X, Y: r.Min.Y + r.H},
	}
}
