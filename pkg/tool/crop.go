package tool

import (
	"fmt"
	"math"

	"github.com/redmarklab/redmark/pkg/canvas"
	"github.com/redmarklab/redmark/pkg/geom"
	"github.com/redmarklab/redmark/pkg/scene"
)

const (
	// CropHandleSize is the on-screen edge length of a crop handle in px.
	CropHandleSize = 10.0

	// MinCropSize is the smallest edge a newly dragged selection may have;
	// smaller drags restore the previous selection on release.
	MinCropSize = 20.0
)

type cropState uint8

const (
	cropIdle cropState = iota
	cropCreating
	cropMoving
	cropResizing
)

var cropStateNames = map[cropState]string{
	cropIdle:     "idle",
	cropCreating: "creating",
	cropMoving:   "moving",
	cropResizing: "resizing",
}

func (s cropState) String() string {
	if name, ok := cropStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("cropState(%d)", s)
}

// CropTool edits the crop selection during an active crop session. A drag
// on a handle resizes (flipping through zero is fine, the rect just
// normalizes), a drag inside moves the selection clamped to the image,
// and a drag outside starts a new selection from scratch.
type CropTool struct {
	state    cropState
	handle   scene.Handle
	pressed  geom.Rect  // selection as it was at press, resize reference
	anchor   geom.Point // first corner of a new selection
	grab     geom.Point // pointer offset from selection min while moving
	previous geom.Rect  // restored when a new selection ends up too small
}

// NewCrop returns an idle crop tool.
func NewCrop() *CropTool {
	return &CropTool{}
}

func (t *CropTool) Kind() canvas.Kind { return canvas.KindCrop }

// Activate seeds the selection with the whole image if the session did
// not already provide one.
func (t *CropTool) Activate(c *canvas.Canvas) {
	if c.Session() != canvas.SessionActive {
		return
	}
	if c.CropSelection().Empty() {
		c.SetCropSelection(c.DisplayBounds())
	}
}

func (t *CropTool) Deactivate(*canvas.Canvas) {
	t.state = cropIdle
}

func (t *CropTool) Press(c *canvas.Canvas, ev canvas.PointerEvent) {
	if c.Session() != canvas.SessionActive || !ev.Buttons.Contain(canvas.ButtonPrimary) {
		return
	}
	sel := c.CropSelection()

	if h := hitCropHandle(sel, ev.Scene, c.Camera.Zoom); h != scene.HandleNone {
		t.state = cropResizing
		t.handle = h
		t.pressed = sel
		return
	}
	if sel.Contains(ev.Scene) {
		t.state = cropMoving
		t.grab = ev.Scene.Sub(sel.Min)
		return
	}
	t.state = cropCreating
	t.previous = sel
	t.anchor = ev.Scene
	c.SetCropSelection(geom.RectFromPoints(ev.Scene, ev.Scene))
}

func (t *CropTool) Move(c *canvas.Canvas, ev canvas.PointerEvent) {
	switch t.state {
	case cropResizing:
		c.SetCropSelection(resizeSelection(t.pressed, t.handle, ev.Scene))
	case cropMoving:
		sel := c.CropSelection()
		sel.Min = ev.Scene.Sub(t.grab)
		c.SetCropSelection(clampSelection(sel, c.DisplayBounds()))
	case cropCreating:
		c.SetCropSelection(geom.RectFromPoints(t.anchor, ev.Scene))
	}
}

func (t *CropTool) Release(c *canvas.Canvas, ev canvas.PointerEvent) {
	if t.state == cropCreating {
		sel := c.CropSelection()
		if sel.W < MinCropSize || sel.H < MinCropSize {
			c.SetCropSelection(t.previous)
		}
	}
	t.state = cropIdle
}

// resizeSelection drags one handle of the selection as it was at press to
// the pointer. Corner handles pin the opposite corner; edge handles pin
// the other three edges. Crossing the pinned edge flips the rect.
func resizeSelection(pressed geom.Rect, h scene.Handle, p geom.Point) geom.Rect {
	min, max := pressed.Min, pressed.Max()
	switch h {
	case scene.HandleTopLeft:
		return geom.RectFromPoints(max, p)
	case scene.HandleTopRight:
		return geom.RectFromPoints(geom.Pt(min.X, max.Y), p)
	case scene.HandleBottomRight:
		return geom.RectFromPoints(min, p)
	case scene.HandleBottomLeft:
		return geom.RectFromPoints(geom.Pt(max.X, min.Y), p)
	case scene.HandleTop:
		return geom.RectFromPoints(geom.Pt(min.X, max.Y), geom.Pt(max.X, p.Y))
	case scene.HandleBottom:
		return geom.RectFromPoints(min, geom.Pt(max.X, p.Y))
	case scene.HandleLeft:
		return geom.RectFromPoints(geom.Pt(max.X, min.Y), geom.Pt(p.X, max.Y))
	case scene.HandleRight:
		return geom.RectFromPoints(min, geom.Pt(p.X, max.Y))
	}
	return pressed
}

// clampSelection keeps a moved selection inside bounds without resizing
// it.
func clampSelection(sel, bounds geom.Rect) geom.Rect {
	sel.Min.X = math.Max(bounds.Min.X, math.Min(sel.Min.X, bounds.Min.X+bounds.W-sel.W))
	sel.Min.Y = math.Max(bounds.Min.Y, math.Min(sel.Min.Y, bounds.Min.Y+bounds.H-sel.H))
	return sel
}

var cropHandles = []scene.Handle{
	scene.HandleTopLeft, scene.HandleTop, scene.HandleTopRight,
	scene.HandleRight, scene.HandleBottomRight, scene.HandleBottom,
	scene.HandleBottomLeft, scene.HandleLeft,
}

func cropHandlePos(r geom.Rect, h scene.Handle) geom.Point {
	left, top := r.Min.X, r.Min.Y
	right, bottom := r.Min.X+r.W, r.Min.Y+r.H
	cx, cy := r.Min.X+r.W/2, r.Min.Y+r.H/2
	switch h {
	case scene.HandleTopLeft:
		return geom.Pt(left, top)
	case scene.HandleTop:
		return geom.Pt(cx, top)
	case scene.HandleTopRight:
		return geom.Pt(right, top)
	case scene.HandleRight:
		return geom.Pt(right, cy)
	case scene.HandleBottomRight:
		return geom.Pt(right, bottom)
	case scene.HandleBottom:
		return geom.Pt(cx, bottom)
	case scene.HandleBottomLeft:
		return geom.Pt(left, bottom)
	case scene.HandleLeft:
		return geom.Pt(left, cy)
	}
	return geom.Pt(cx, cy)
}

// SelectionHandles returns the eight crop handle placements for drawing.
func SelectionHandles(sel geom.Rect) []scene.Placement {
	out := make([]scene.Placement, 0, len(cropHandles))
	for _, h := range cropHandles {
		out = append(out, scene.Placement{Handle: h, Scene: cropHandlePos(sel, h)})
	}
	return out
}

func hitCropHandle(sel geom.Rect, p geom.Point, zoom float64) scene.Handle {
	if zoom <= 0 {
		zoom = 1
	}
	radius := (CropHandleSize/2 + 2) / zoom
	for _, h := range cropHandles {
		if cropHandlePos(sel, h).Distance(p) <= radius {
			return h
		}
	}
	return scene.HandleNone
}

// OverlayRects splits the area of bounds outside sel into four strips,
// the parts the viewport dims while cropping. Empty strips come back with
// zero width or height.
func OverlayRects(bounds, sel geom.Rect) [4]geom.Rect {
	s := sel.Intersect(bounds)
	if s.Empty() {
		return [4]geom.Rect{bounds}
	}
	top := geom.R(bounds.Min.X, bounds.Min.Y, bounds.W, s.Min.Y-bounds.Min.Y)
	bottom := geom.R(bounds.Min.X, s.Min.Y+s.H, bounds.W, bounds.Min.Y+bounds.H-(s.Min.Y+s.H))
	left := geom.R(bounds.Min.X, s.Min.Y, s.Min.X-bounds.Min.X, s.H)
	right := geom.R(s.Min.X+s.W, s.Min.Y, bounds.Min.X+bounds.W-(s.Min.X+s.W), s.H)
	return [4]geom.Rect{top, bottom, left, right}
}
