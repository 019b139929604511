package canvas

import (
	"math"

	"github.com/redmarklab/redmark/pkg/geom"
)

const (
	// ZoomStep is the factor one zoom tick applies.
	ZoomStep = 1.15

	// MinZoom and MaxZoom bound the zoom level.
	MinZoom = 0.1
	MaxZoom = 10.0

	// FitPadding leaves a margin around content fitted to the view.
	FitPadding = 0.9
)

// Camera is the viewport onto the scene. Zoom is screen pixels per scene
// pixel; higher values are more zoomed in.
type Camera struct {
	// Center position in scene coordinates.
	CenterX float64
	CenterY float64

	// Zoom level (screen pixels per scene pixel).
	Zoom float64

	// Screen dimensions (pixels).
	ScreenWidth  int
	ScreenHeight int

	// OnZoomChanged fires after every effective zoom change.
	OnZoomChanged func(zoom float64)
}

// NewCamera creates a camera at 1:1 zoom.
func NewCamera(screenWidth, screenHeight int) *Camera {
	return &Camera{
		Zoom:         1.0,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// SceneToScreen converts scene coordinates to screen coordinates (pixels).
func (c *Camera) SceneToScreen(p geom.Point) geom.Point {
	// Translate so camera center is at origin, zoom, then move to the
	// screen center.
	x := (p.X - c.CenterX) * c.Zoom
	y := (p.Y - c.CenterY) * c.Zoom
	x += float64(c.ScreenWidth) / 2.0
	y += float64(c.ScreenHeight) / 2.0
	return geom.Point{X: x, Y: y}
}

// ScreenToScene converts screen coordinates (pixels) to scene coordinates.
func (c *Camera) ScreenToScene(p geom.Point) geom.Point {
	x := p.X - float64(c.ScreenWidth)/2.0
	y := p.Y - float64(c.ScreenHeight)/2.0
	x /= c.Zoom
	y /= c.Zoom
	return geom.Point{X: x + c.CenterX, Y: y + c.CenterY}
}

// Pan moves the camera by screen pixel offsets.
func (c *Camera) Pan(deltaX, deltaY float64) {
	c.CenterX -= deltaX / c.Zoom
	c.CenterY -= deltaY / c.Zoom
}

// SetZoom applies a zoom level clamped to [MinZoom, MaxZoom].
func (c *Camera) SetZoom(zoom float64) {
	zoom = math.Min(MaxZoom, math.Max(MinZoom, zoom))
	if zoom == c.Zoom {
		return
	}
	c.Zoom = zoom
	if c.OnZoomChanged != nil {
		c.OnZoomChanged(c.Zoom)
	}
}

// ZoomIn zooms in one step about the view center.
func (c *Camera) ZoomIn() {
	c.SetZoom(c.Zoom * ZoomStep)
}

// ZoomOut zooms out one step about the view center.
func (c *Camera) ZoomOut() {
	c.SetZoom(c.Zoom / ZoomStep)
}

// ZoomAt zooms by factor at a specific screen position, keeping the scene
// point under the cursor stationary. factor > 1 zooms in.
func (c *Camera) ZoomAt(screen geom.Point, factor float64) {
	before := c.ScreenToScene(screen)
	c.SetZoom(c.Zoom * factor)
	after := c.ScreenToScene(screen)

	// Shift the center so the anchor lands where it started.
	c.CenterX += before.X - after.X
	c.CenterY += before.Y - after.Y
}

// Fit adjusts the camera so bounds fill the view, padded and centered.
func (c *Camera) Fit(bounds geom.Rect) {
	if bounds.W <= 0 || bounds.H <= 0 {
		return
	}
	center := bounds.Center()
	c.CenterX = center.X
	c.CenterY = center.Y

	zoomX := float64(c.ScreenWidth) * FitPadding / bounds.W
	zoomY := float64(c.ScreenHeight) * FitPadding / bounds.H
	c.SetZoom(math.Min(zoomX, zoomY))
}

// UpdateScreenSize updates the camera when the window is resized.
func (c *Camera) UpdateScreenSize(width, height int) {
	c.ScreenWidth = width
	c.ScreenHeight = height
}

// VisibleBounds returns the visible area in scene coordinates.
func (c *Camera) VisibleBounds() geom.Rect {
	topLeft := c.ScreenToScene(geom.Point{})
	bottomRight := c.ScreenToScene(geom.Point{
		X: float64(c.ScreenWidth),
		Y: float64(c.ScreenHeight),
	})
	return geom.RectFromPoints(topLeft, bottomRight)
}
