package scene

import (
	"math"
	"testing"

	"github.com/redmarklab/redmark/pkg/geom"
)

// dragTargets gives, per handle, a local pointer position that moves the
// implicated edges outward without hitting the minimum size.
var dragTargets = map[Handle]geom.Point{
	HandleTopLeft:     {X: 80, Y: 85},
	HandleTop:         {X: 140, Y: 82},
	HandleTopRight:    {X: 200, Y: 88},
	HandleRight:       {X: 210, Y: 130},
	HandleBottomRight: {X: 195, Y: 180},
	HandleBottom:      {X: 140, Y: 175},
	HandleBottomLeft:  {X: 85, Y: 182},
	HandleLeft:        {X: 78, Y: 130},
}

func TestResizeKeepsAnchorFixed(t *testing.T) {
	for _, rotation := range []float64{0, 30} {
		for h, target := range dragTargets {
			s := NewShape(geom.R(100, 100, 80, 60))
			s.Rotation = rotation
			s.Pos = geom.Pt(13, -4)

			frac := anchorFractions[h]
			before := s.ToScene(anchorPoint(s.Rect, frac))
			ResizeTo(&s, h, target)
			after := s.ToScene(anchorPoint(s.Rect, frac))

			if before.Distance(after) > 1e-9 {
				t.Fatalf("rotation %v handle %v: anchor moved from %+v to %+v",
					rotation, h, before, after)
			}
		}
	}
}

func TestResizeMovesDraggedEdge(t *testing.T) {
	s := NewShape(geom.R(100, 100, 80, 60))
	ResizeTo(&s, HandleRight, geom.Pt(210, 0))
	if math.Abs(s.Rect.W-110) > 1e-9 {
		t.Fatalf("width got %v, want 110", s.Rect.W)
	}
	if math.Abs(s.Rect.Min.X-100) > 1e-9 || math.Abs(s.Rect.H-60) > 1e-9 {
		t.Fatalf("untouched edges moved: %+v", s.Rect)
	}
}

func TestResizeClampsToMinSize(t *testing.T) {
	s := NewShape(geom.R(100, 100, 80, 60))
	// Drag the right edge far past the left edge.
	ResizeTo(&s, HandleRight, geom.Pt(0, 0))
	if s.Rect.W != MinSize {
		t.Fatalf("width got %v, want %v", s.Rect.W, MinSize)
	}
	s = NewShape(geom.R(100, 100, 80, 60))
	ResizeTo(&s, HandleTop, geom.Pt(0, 500))
	if s.Rect.H != MinSize {
		t.Fatalf("height got %v, want %v", s.Rect.H, MinSize)
	}
}

func TestResizeIgnoresNonResizeHandles(t *testing.T) {
	s := NewShape(geom.R(100, 100, 80, 60))
	want := s.Rect
	ResizeTo(&s, HandleRotate, geom.Pt(0, 0))
	ResizeTo(&s, HandleNone, geom.Pt(0, 0))
	if s.Rect != want {
		t.Fatalf("rect changed: %+v", s.Rect)
	}
}

// pointerForAngle places a pointer so the raw (pre-snap) rotation comes to
// the given angle in degrees.
func pointerForAngle(s *Shape, angle float64) geom.Point {
	c := s.SceneCenter()
	rad := geom.Radians(angle - 90)
	return geom.Pt(c.X+100*math.Cos(rad), c.Y+100*math.Sin(rad))
}

func TestRotateSnap(t *testing.T) {
	tests := []struct {
		raw  float64
		want float64
	}{
		{43, 45},
		{44, 45},
		{45, 45},
		{46, 45},
		{47, 45},
		{20, 20},
		{50, 50}, // exactly 5° off, not snapped
		{91, 90},
		{-2, 0},
	}
	for _, tt := range tests {
		s := NewShape(geom.R(0, 0, 100, 50))
		RotateTo(&s, pointerForAngle(&s, tt.raw))
		if math.Abs(s.Rotation-tt.want) > 1e-6 {
			t.Fatalf("raw %v: got %v, want %v", tt.raw, s.Rotation, tt.want)
		}
	}
}

func TestLayoutRotateHandleScalesWithZoom(t *testing.T) {
	s := NewShape(geom.R(0, 0, 100, 50))
	find := func(placements []Placement, h Handle) geom.Point {
		for _, p := range placements {
			if p.Handle == h {
				return p.Scene
			}
		}
		t.Fatalf("handle %v missing from layout", h)
		return geom.Point{}
	}
	at1 := find(Layout(&s, 1), HandleRotate)
	pointsClose(t, at1, geom.Pt(50, -30), 1e-9)
	at2 := find(Layout(&s, 2), HandleRotate)
	pointsClose(t, at2, geom.Pt(50, -15), 1e-9)
}

func TestLayoutHasNineHandles(t *testing.T) {
	s := NewShape(geom.R(0, 0, 100, 50))
	placements := Layout(&s, 1)
	if len(placements) != 9 {
		t.Fatalf("got %d placements, want 9", len(placements))
	}
}

func TestHitHandle(t *testing.T) {
	s := NewShape(geom.R(0, 0, 100, 50))
	if h := HitHandle(&s, geom.Pt(0, 0), 1); h != HandleTopLeft {
		t.Fatalf("got %v, want top-left", h)
	}
	if h := HitHandle(&s, geom.Pt(100, 50), 1); h != HandleBottomRight {
		t.Fatalf("got %v, want bottom-right", h)
	}
	if h := HitHandle(&s, geom.Pt(50, -30), 1); h != HandleRotate {
		t.Fatalf("got %v, want rotate", h)
	}
	if h := HitHandle(&s, geom.Pt(50, 25), 1); h != HandleNone {
		t.Fatalf("center hit got %v, want none", h)
	}
}

func TestHitHandleRadiusShrinksWithZoom(t *testing.T) {
	s := NewShape(geom.R(0, 0, 100, 50))
	// 5 scene units off the corner: inside the 6-unit radius at zoom 1,
	// outside the 3-unit radius at zoom 2.
	p := geom.Pt(5, 0)
	if h := HitHandle(&s, p, 1); h != HandleTopLeft {
		t.Fatalf("zoom 1: got %v, want top-left", h)
	}
	if h := HitHandle(&s, p, 2); h != HandleNone {
		t.Fatalf("zoom 2: got %v, want none", h)
	}
}
