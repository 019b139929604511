package tool

import (
	"github.com/redmarklab/redmark/pkg/canvas"
	"github.com/redmarklab/redmark/pkg/geom"
	"github.com/redmarklab/redmark/pkg/scene"
)

// CommitMinSize is the smallest draft dimension that survives release.
// Anything smaller is a stray click and is dropped silently.
const CommitMinSize = 5.0

// RectTool draws new rectangle annotations. While dragging it exposes the
// draft through the canvas for display; on release a large-enough draft
// goes into the scene, gets selected, and drawing-finished fires with its
// ID so the editor can record the command and switch back to selection.
type RectTool struct {
	drawing bool
	anchor  geom.Point
	draft   scene.Shape
}

// NewRect returns an idle rectangle tool.
func NewRect() *RectTool {
	return &RectTool{}
}

func (t *RectTool) Kind() canvas.Kind { return canvas.KindRect }

func (t *RectTool) Activate(*canvas.Canvas) {}

func (t *RectTool) Deactivate(c *canvas.Canvas) {
	t.drawing = false
	c.SetDraft(nil)
}

func (t *RectTool) Press(c *canvas.Canvas, ev canvas.PointerEvent) {
	if !ev.Buttons.Contain(canvas.ButtonPrimary) {
		return
	}
	t.drawing = true
	t.anchor = ev.Scene
	t.draft = scene.NewShape(geom.RectFromPoints(ev.Scene, ev.Scene))
	c.SetDraft(&t.draft)
}

func (t *RectTool) Move(c *canvas.Canvas, ev canvas.PointerEvent) {
	if !t.drawing {
		return
	}
	t.draft.Rect = geom.RectFromPoints(t.anchor, ev.Scene)
}

func (t *RectTool) Release(c *canvas.Canvas, ev canvas.PointerEvent) {
	if !t.drawing {
		return
	}
	t.drawing = false
	c.SetDraft(nil)

	r := geom.RectFromPoints(t.anchor, ev.Scene)
	if r.W < CommitMinSize || r.H < CommitMinSize {
		return
	}
	shape := scene.NewShape(r)
	id := c.Scene.Add(shape)
	c.Scene.Select(id)
	if c.OnDrawingFinished != nil {
		c.OnDrawingFinished(id)
	}
}
