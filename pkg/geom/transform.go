package geom

import "math"

// Transform represents a 2D transformation (translate + rotate + scale).
type Transform struct {
	TranslateX float64 // Translation in X
	TranslateY float64 // Translation in Y
	Rotate     float64 // Rotation in degrees
	ScaleX     float64 // Scale factor in X
	ScaleY     float64 // Scale factor in Y
}

// NewTransform creates an identity transform.
func NewTransform() Transform {
	return Transform{
		ScaleX: 1.0,
		ScaleY: 1.0,
	}
}

// Apply applies the transformation to a point: scale, then rotate, then
// translate.
func (t Transform) Apply(p Point) Point {
	x, y := p.X, p.Y

	x *= t.ScaleX
	y *= t.ScaleY

	if t.Rotate != 0 {
		rad := t.Rotate * math.Pi / 180.0
		cos := math.Cos(rad)
		sin := math.Sin(rad)
		newX := x*cos - y*sin
		newY := x*sin + y*cos
		x = newX
		y = newY
	}

	x += t.TranslateX
	y += t.TranslateY

	return Point{X: x, Y: y}
}

// ApplyInverse applies the inverse transformation.
func (t Transform) ApplyInverse(p Point) Point {
	x, y := p.X, p.Y

	x -= t.TranslateX
	y -= t.TranslateY

	if t.Rotate != 0 {
		rad := -t.Rotate * math.Pi / 180.0
		cos := math.Cos(rad)
		sin := math.Sin(rad)
		newX := x*cos - y*sin
		newY := x*sin + y*cos
		x = newX
		y = newY
	}

	if t.ScaleX != 0 {
		x /= t.ScaleX
	}
	if t.ScaleY != 0 {
		y /= t.ScaleY
	}

	return Point{X: x, Y: y}
}

// RotateAbout rotates p by deg degrees around the pivot point.
func RotateAbout(p Point, pivot Point, deg float64) Point {
	if deg == 0 {
		return p
	}
	rad := deg * math.Pi / 180.0
	cos := math.Cos(rad)
	sin := math.Sin(rad)
	dx := p.X - pivot.X
	dy := p.Y - pivot.Y
	return Point{
		X: pivot.X + dx*cos - dy*sin,
		Y: pivot.Y + dx*sin + dy*cos,
	}
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
