package scene

import (
	"math"

	"github.com/redmarklab/redmark/pkg/geom"
)

// Handle identifies one of the shape's control points.
type Handle uint8

const (
	HandleNone Handle = iota
	HandleTopLeft
	HandleTop
	HandleTopRight
	HandleRight
	HandleBottomRight
	HandleBottom
	HandleBottomLeft
	HandleLeft
	HandleRotate
)

var handleNames = map[Handle]string{
	HandleNone:        "none",
	HandleTopLeft:     "top-left",
	HandleTop:         "top",
	HandleTopRight:    "top-right",
	HandleRight:       "right",
	HandleBottomRight: "bottom-right",
	HandleBottom:      "bottom",
	HandleBottomLeft:  "bottom-left",
	HandleLeft:        "left",
	HandleRotate:      "rotate",
}

func (h Handle) String() string {
	if name, ok := handleNames[h]; ok {
		return name
	}
	return "handle(?)"
}

const (
	// HandleSize is the on-screen edge length of a control point in px.
	// Scene-space extents divide by the zoom so the drawn size is constant.
	HandleSize = 8.0

	// RotateHandleOffset is the on-screen distance of the rotation handle
	// above the top edge, in px.
	RotateHandleOffset = 30.0

	// RotateSnapStep and RotateSnapTolerance control angle snapping: within
	// the tolerance of a multiple of the step, the angle locks to it.
	RotateSnapStep      = 45.0
	RotateSnapTolerance = 5.0

	// ModifyTolerance is the per-component threshold below which a gesture
	// counts as a no-op and emits no modification.
	ModifyTolerance = 0.1
)

// anchorFractions gives, per resize handle, the fraction of the local rect
// that must stay fixed in scene space while dragging. (0,0) is the rect's
// min corner, (1,1) its max corner.
var anchorFractions = map[Handle]geom.Point{
	HandleTopLeft:     {X: 1, Y: 1},
	HandleTop:         {X: 0.5, Y: 1},
	HandleTopRight:    {X: 0, Y: 1},
	HandleLeft:        {X: 1, Y: 0.5},
	HandleRight:       {X: 0, Y: 0.5},
	HandleBottomLeft:  {X: 1, Y: 0},
	HandleBottom:      {X: 0.5, Y: 0},
	HandleBottomRight: {X: 0, Y: 0},
}

func anchorPoint(r geom.Rect, frac geom.Point) geom.Point {
	return geom.Point{X: r.Min.X + frac.X*r.W, Y: r.Min.Y + frac.Y*r.H}
}

// Placement is one handle's position in scene coordinates.
type Placement struct {
	Handle Handle
	Scene  geom.Point
}

// resizeHandleLocal returns the local-coordinate position of a resize
// handle on the rect.
func resizeHandleLocal(r geom.Rect, h Handle) geom.Point {
	left, top := r.Min.X, r.Min.Y
	right, bottom := r.Min.X+r.W, r.Min.Y+r.H
	cx, cy := r.Min.X+r.W/2, r.Min.Y+r.H/2
	switch h {
	case HandleTopLeft:
		return geom.Point{X: left, Y: top}
	case HandleTop:
		return geom.Point{X: cx, Y: top}
	case HandleTopRight:
		return geom.Point{X: right, Y: top}
	case HandleRight:
		return geom.Point{X: right, Y: cy}
	case HandleBottomRight:
		return geom.Point{X: right, Y: bottom}
	case HandleBottom:
		return geom.Point{X: cx, Y: bottom}
	case HandleBottomLeft:
		return geom.Point{X: left, Y: bottom}
	case HandleLeft:
		return geom.Point{X: left, Y: cy}
	}
	return geom.Point{X: cx, Y: cy}
}

var resizeHandles = []Handle{
	HandleTopLeft, HandleTop, HandleTopRight, HandleRight,
	HandleBottomRight, HandleBottom, HandleBottomLeft, HandleLeft,
}

// Layout returns the scene positions of all nine handles at the given
// zoom. The rotation handle sits a constant screen distance above the top
// edge, so its scene offset shrinks as the zoom grows.
func Layout(s *Shape, zoom float64) []Placement {
	if zoom <= 0 {
		zoom = 1
	}
	out := make([]Placement, 0, len(resizeHandles)+1)
	for _, h := range resizeHandles {
		out = append(out, Placement{Handle: h, Scene: s.ToScene(resizeHandleLocal(s.Rect, h))})
	}
	rotLocal := geom.Point{
		X: s.Rect.Min.X + s.Rect.W/2,
		Y: s.Rect.Min.Y - RotateHandleOffset/zoom,
	}
	out = append(out, Placement{Handle: HandleRotate, Scene: s.ToScene(rotLocal)})
	return out
}

// HitHandle returns the handle under a scene point, or HandleNone. The
// rotation handle wins ties so it stays grabbable when it overlaps the top
// edge at low zoom.
func HitHandle(s *Shape, p geom.Point, zoom float64) Handle {
	if zoom <= 0 {
		zoom = 1
	}
	radius := (HandleSize/2 + 2) / zoom
	placements := Layout(s, zoom)
	for i := len(placements) - 1; i >= 0; i-- {
		if placements[i].Scene.Distance(p) <= radius {
			return placements[i].Handle
		}
	}
	return HandleNone
}

// ResizeTo drags a resize handle to a local-coordinate point. The edge(s)
// the handle controls follow the pointer, clamped so width and height stay
// at least MinSize, and the shape is translated so the opposite anchor
// never moves in scene space. Called on every pointer move.
func ResizeTo(s *Shape, h Handle, local geom.Point) {
	frac, ok := anchorFractions[h]
	if !ok {
		return
	}
	anchorBefore := s.ToScene(anchorPoint(s.Rect, frac))

	left, top := s.Rect.Min.X, s.Rect.Min.Y
	right, bottom := left+s.Rect.W, top+s.Rect.H
	switch h {
	case HandleTopLeft:
		left = math.Min(local.X, right-MinSize)
		top = math.Min(local.Y, bottom-MinSize)
	case HandleTop:
		top = math.Min(local.Y, bottom-MinSize)
	case HandleTopRight:
		right = math.Max(local.X, left+MinSize)
		top = math.Min(local.Y, bottom-MinSize)
	case HandleRight:
		right = math.Max(local.X, left+MinSize)
	case HandleBottomRight:
		right = math.Max(local.X, left+MinSize)
		bottom = math.Max(local.Y, top+MinSize)
	case HandleBottom:
		bottom = math.Max(local.Y, top+MinSize)
	case HandleBottomLeft:
		left = math.Min(local.X, right-MinSize)
		bottom = math.Max(local.Y, top+MinSize)
	case HandleLeft:
		left = math.Min(local.X, right-MinSize)
	}
	s.Rect = geom.R(left, top, right-left, bottom-top)

	anchorAfter := s.ToScene(anchorPoint(s.Rect, frac))
	s.Pos = s.Pos.Add(anchorBefore.Sub(anchorAfter))
}

// RotateTo points the shape's up axis at the scene point: the angle is
// atan2 of the vector from the scene center plus 90 degrees, snapped to
// the nearest 45-degree multiple when within the snap tolerance.
func RotateTo(s *Shape, p geom.Point) {
	c := s.SceneCenter()
	angle := geom.Degrees(math.Atan2(p.Y-c.Y, p.X-c.X)) + 90
	nearest := math.Round(angle/RotateSnapStep) * RotateSnapStep
	if math.Abs(angle-nearest) < RotateSnapTolerance {
		angle = nearest
	}
	s.Rotation = angle
}
