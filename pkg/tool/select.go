// Package tool implements the canvas interaction strategies: selecting
// and transforming shapes, drawing new rectangles, and adjusting the crop
// selection. Tools mutate the model through the canvas and scene APIs and
// report completed gestures through the canvas callbacks; command wrapping
// is the editor's job.
package tool

import (
	"fmt"

	"github.com/redmarklab/redmark/pkg/canvas"
	"github.com/redmarklab/redmark/pkg/geom"
	"github.com/redmarklab/redmark/pkg/scene"
)

type selectGesture uint8

const (
	gestureNone selectGesture = iota
	gestureMove
	gestureResize
	gestureRotate
)

var selectGestureNames = map[selectGesture]string{
	gestureNone:   "none",
	gestureMove:   "move",
	gestureResize: "resize",
	gestureRotate: "rotate",
}

func (g selectGesture) String() string {
	if name, ok := selectGestureNames[g]; ok {
		return name
	}
	return fmt.Sprintf("gesture(%d)", g)
}

// SelectTool picks shapes and drives move, resize and rotate gestures.
// One completed gesture produces at most one shape-modified event, with
// the geometry from gesture start and end.
type SelectTool struct {
	gesture selectGesture
	target  scene.ShapeID
	handle  scene.Handle
	start   scene.Snapshot
	last    geom.Point
}

// NewSelect returns an idle select tool.
func NewSelect() *SelectTool {
	return &SelectTool{}
}

func (t *SelectTool) Kind() canvas.Kind { return canvas.KindSelect }

func (t *SelectTool) Activate(*canvas.Canvas) {}

func (t *SelectTool) Deactivate(*canvas.Canvas) {
	t.reset()
}

// Press resolves what the pointer grabbed, in priority order: a handle of
// the selected shape, then the topmost shape under the pointer, then
// empty space, which clears the selection.
func (t *SelectTool) Press(c *canvas.Canvas, ev canvas.PointerEvent) {
	if !ev.Buttons.Contain(canvas.ButtonPrimary) {
		return
	}
	zoom := c.Camera.Zoom

	if sel, ok := c.Scene.Selected(); ok {
		if h := scene.HitHandle(sel, ev.Scene, zoom); h != scene.HandleNone {
			t.target = sel.ID
			t.handle = h
			t.start = sel.Snapshot()
			if h == scene.HandleRotate {
				t.gesture = gestureRotate
			} else {
				t.gesture = gestureResize
			}
			return
		}
	}

	if s, ok := c.Scene.ShapeAt(ev.Scene); ok {
		c.Scene.Select(s.ID)
		t.target = s.ID
		t.start = s.Snapshot()
		t.last = ev.Scene
		t.gesture = gestureMove
		return
	}

	c.Scene.ClearSelection()
	t.reset()
}

func (t *SelectTool) Move(c *canvas.Canvas, ev canvas.PointerEvent) {
	if t.gesture == gestureNone {
		return
	}
	s, err := c.Scene.Get(t.target)
	if err != nil {
		t.reset()
		return
	}
	switch t.gesture {
	case gestureMove:
		s.Translate(ev.Scene.Sub(t.last))
		t.last = ev.Scene
	case gestureResize:
		scene.ResizeTo(s, t.handle, s.FromScene(ev.Scene))
	case gestureRotate:
		scene.RotateTo(s, ev.Scene)
	}
}

// Release ends the gesture. The start and end snapshots are compared with
// the modification tolerance; only a real change emits an event, so a
// plain click to select never pollutes the undo history.
func (t *SelectTool) Release(c *canvas.Canvas, ev canvas.PointerEvent) {
	if t.gesture == gestureNone {
		return
	}
	defer t.reset()
	s, err := c.Scene.Get(t.target)
	if err != nil {
		return
	}
	after := s.Snapshot()
	if after.EqualWithin(t.start, scene.ModifyTolerance) {
		return
	}
	if c.OnShapeModified != nil {
		c.OnShapeModified(t.target, t.start, after)
	}
}

func (t *SelectTool) reset() {
	t.gesture = gestureNone
	t.target = 0
	t.handle = scene.HandleNone
}
