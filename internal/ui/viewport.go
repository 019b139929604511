package ui

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/redmarklab/redmark/pkg/canvas"
	"github.com/redmarklab/redmark/pkg/geom"
	"github.com/redmarklab/redmark/pkg/scene"
	"github.com/redmarklab/redmark/pkg/tool"
)

var (
	viewportBg = color.NRGBA{R: 28, G: 30, B: 34, A: 255}
	hintColor  = color.NRGBA{R: 235, G: 238, B: 245, A: 160}
	promptFg   = color.NRGBA{R: 150, G: 156, B: 168, A: 255}
)

// layoutViewport draws the image and annotations under the camera
// transform and collects pointer input over the same area. Handles and
// other chrome draw in screen space on top, so they stay the same size at
// any zoom.
func (a *App) layoutViewport(gtx layout.Context) layout.Dimensions {
	maxSize := gtx.Constraints.Max
	cam := a.ed.Canvas.Camera
	cam.UpdateScreenSize(maxSize.X, maxSize.Y)
	if a.fitPending {
		a.fitPending = false
		cam.Fit(a.ed.Canvas.DisplayBounds())
	}
	a.processViewportPointer(gtx)

	return layout.Stack{}.Layout(gtx,
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			defer clip.Rect{Max: maxSize}.Push(gtx.Ops).Pop()
			paint.FillShape(gtx.Ops, viewportBg, clip.Rect{Max: maxSize}.Op())
			if a.ed.Canvas.Display() == nil {
				return a.layoutOpenPrompt(gtx, maxSize)
			}
			a.drawViewportContent(gtx)
			return layout.Dimensions{Size: maxSize}
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			area := clip.Rect{Max: maxSize}.Push(gtx.Ops)
			event.Op(gtx.Ops, a)
			area.Pop()
			return layout.Dimensions{Size: maxSize}
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			if a.ed.Canvas.Display() == nil {
				return layout.Dimensions{}
			}
			return layout.Inset{Top: unit.Dp(8), Left: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				hint := material.Caption(a.gvTheme.Theme, a.viewportHint())
				hint.Color = hintColor
				return hint.Layout(gtx)
			})
		}),
	)
}

func (a *App) processViewportPointer(gtx layout.Context) {
	cam := a.ed.Canvas.Camera
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  a,
			Kinds:   pointer.Press | pointer.Release | pointer.Drag | pointer.Scroll,
			ScrollY: pointer.ScrollRange{Min: -120, Max: 120},
		})
		if !ok {
			break
		}
		pev, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		if pev.Kind == pointer.Scroll {
			factor := canvas.ZoomStep
			if pev.Scroll.Y > 0 {
				factor = 1 / canvas.ZoomStep
			}
			cam.ZoomAt(geom.Pt(float64(pev.Position.X), float64(pev.Position.Y)), factor)
			gtx.Execute(op.InvalidateCmd{})
			continue
		}
		a.ed.Canvas.HandlePointer(a.pointerToCanvas(pev))
		gtx.Execute(op.InvalidateCmd{})
	}
}

// pointerToCanvas translates a Gio pointer event into the engine's
// toolkit-free form, folding the tracked space bar into the modifiers.
func (a *App) pointerToCanvas(pev pointer.Event) canvas.PointerEvent {
	var kind canvas.EventKind
	switch pev.Kind {
	case pointer.Press:
		kind = canvas.PointerPress
	case pointer.Drag:
		kind = canvas.PointerMove
	case pointer.Release:
		kind = canvas.PointerRelease
	}
	screen := geom.Pt(float64(pev.Position.X), float64(pev.Position.Y))
	return canvas.PointerEvent{
		Kind:      kind,
		Scene:     a.ed.Canvas.Camera.ScreenToScene(screen),
		Screen:    screen,
		Buttons:   pointerButtons(pev.Buttons),
		Modifiers: a.pointerModifiers(pev.Modifiers),
	}
}

func pointerButtons(b pointer.Buttons) canvas.Buttons {
	var out canvas.Buttons
	if b.Contain(pointer.ButtonPrimary) {
		out |= canvas.ButtonPrimary
	}
	if b.Contain(pointer.ButtonSecondary) {
		out |= canvas.ButtonSecondary
	}
	if b.Contain(pointer.ButtonTertiary) {
		out |= canvas.ButtonTertiary
	}
	return out
}

func (a *App) pointerModifiers(m key.Modifiers) canvas.Modifiers {
	var out canvas.Modifiers
	if m.Contain(key.ModShift) {
		out |= canvas.ModShift
	}
	if m.Contain(key.ModCtrl) {
		out |= canvas.ModCtrl
	}
	if m.Contain(key.ModAlt) {
		out |= canvas.ModAlt
	}
	if a.spaceHeld {
		out |= canvas.ModSpace
	}
	return out
}

func (a *App) drawViewportContent(gtx layout.Context) {
	c := a.ed.Canvas
	cam := c.Camera
	zoom := cam.Zoom

	// paint.NewImageOp uploads; reuse the op until the frame changes.
	if d := c.Display(); d != a.displaySrc {
		a.displaySrc = d
		a.displayOp = paint.NewImageOp(d)
	}

	tr := op.Affine(f32.Affine2D{}.
		Offset(f32.Pt(float32(-cam.CenterX), float32(-cam.CenterY))).
		Scale(f32.Point{}, f32.Pt(float32(zoom), float32(zoom))).
		Offset(f32.Pt(float32(cam.ScreenWidth)/2, float32(cam.ScreenHeight)/2))).
		Push(gtx.Ops)

	db := c.DisplayBounds()
	img := clip.Rect{Max: image.Pt(int(db.W), int(db.H))}.Push(gtx.Ops)
	a.displayOp.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	img.Pop()

	inSession := c.Session() == canvas.SessionActive
	selID := c.Scene.SelectedID()
	for _, s := range c.Scene.Shapes() {
		a.drawShape(gtx, s, zoom, s.ID == selID && !inSession)
	}
	if d := c.Draft(); d != nil {
		// Preview in the color the committed shape will get.
		draft := *d
		draft.Color = scene.StrokeColor(a.ed.StrokeColorName())
		a.drawShape(gtx, &draft, zoom, false)
	}
	if inSession {
		for _, r := range tool.OverlayRects(db, c.CropSelection()) {
			if r.Empty() {
				continue
			}
			fillRectPath(gtx.Ops, r, scene.ColorCropOverlay)
		}
	}
	tr.Pop()

	if inSession {
		a.drawCropChrome(gtx)
		return
	}
	if sel, ok := c.Scene.Selected(); ok {
		a.drawSelectionChrome(gtx, sel)
	}
}

// drawShape strokes one annotation in scene space. The stroke width is
// scene units, so it scales with the zoom like the image does.
func (a *App) drawShape(gtx layout.Context, s *scene.Shape, zoom float64, selected bool) {
	if s.Rotation != 0 {
		ctr := s.SceneCenter()
		defer op.Affine(f32.Affine2D{}.Rotate(
			f32.Pt(float32(ctr.X), float32(ctr.Y)),
			float32(geom.Radians(s.Rotation)),
		)).Push(gtx.Ops).Pop()
	}
	r := s.Rect.Translate(s.Pos)
	strokeRectPath(gtx.Ops, r, s.StrokeWidth, s.Color)
	if selected {
		strokeRectPath(gtx.Ops, r.Inset(-2/zoom), 1.5/zoom, scene.ColorSelection)
	}
}

// drawSelectionChrome draws the nine handles of the selected shape in
// screen space: eight resize squares plus the rotation knob on its stem.
func (a *App) drawSelectionChrome(gtx layout.Context, sel *scene.Shape) {
	cam := a.ed.Canvas.Camera
	var top, rotate geom.Point
	haveRotate := false
	for _, pl := range scene.Layout(sel, cam.Zoom) {
		at := cam.SceneToScreen(pl.Scene)
		if pl.Handle == scene.HandleRotate {
			rotate = at
			haveRotate = true
			continue
		}
		if pl.Handle == scene.HandleTop {
			top = at
		}
		handleSquare(gtx.Ops, at, scene.HandleSize)
	}
	if haveRotate {
		strokeLine(gtx.Ops, top, rotate, 1.5, scene.ColorRotateHandle)
		fillCircle(gtx.Ops, rotate, scene.HandleSize/2+1, scene.ColorRotateHandle)
	}
}

func (a *App) drawCropChrome(gtx layout.Context) {
	c := a.ed.Canvas
	cam := c.Camera
	sel := c.CropSelection()
	if sel.Empty() {
		return
	}
	p0 := cam.SceneToScreen(sel.Min)
	p1 := cam.SceneToScreen(sel.Max())
	strokeRectPath(gtx.Ops, geom.RectFromPoints(p0, p1), 2, scene.ColorCropBorder)
	for _, pl := range tool.SelectionHandles(sel) {
		handleSquare(gtx.Ops, cam.SceneToScreen(pl.Scene), tool.CropHandleSize)
	}
}

func (a *App) layoutOpenPrompt(gtx layout.Context, maxSize image.Point) layout.Dimensions {
	gtx.Constraints.Min = maxSize
	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		lbl := material.Body1(a.gvTheme.Theme, "Open an image to start annotating (Ctrl+O)")
		lbl.Color = promptFg
		return lbl.Layout(gtx)
	})
}

func (a *App) viewportHint() string {
	if a.ed.Canvas.Session() == canvas.SessionActive {
		return "Drag the selection, Enter applies, Esc cancels"
	}
	if a.ed.ActiveTool() == canvas.KindRect {
		return "Drag to draw a rectangle"
	}
	return "Click selects, drag moves, scroll zooms, middle drag pans"
}

func strokeRectPath(ops *op.Ops, r geom.Rect, width float64, col color.NRGBA) {
	mx := r.Max()
	var p clip.Path
	p.Begin(ops)
	p.MoveTo(f32.Pt(float32(r.Min.X), float32(r.Min.Y)))
	p.LineTo(f32.Pt(float32(mx.X), float32(r.Min.Y)))
	p.LineTo(f32.Pt(float32(mx.X), float32(mx.Y)))
	p.LineTo(f32.Pt(float32(r.Min.X), float32(mx.Y)))
	p.Close()
	paint.FillShape(ops, col, clip.Stroke{Path: p.End(), Width: float32(width)}.Op())
}

func fillRectPath(ops *op.Ops, r geom.Rect, col color.NRGBA) {
	mx := r.Max()
	var p clip.Path
	p.Begin(ops)
	p.MoveTo(f32.Pt(float32(r.Min.X), float32(r.Min.Y)))
	p.LineTo(f32.Pt(float32(mx.X), float32(r.Min.Y)))
	p.LineTo(f32.Pt(float32(mx.X), float32(mx.Y)))
	p.LineTo(f32.Pt(float32(r.Min.X), float32(mx.Y)))
	p.Close()
	paint.FillShape(ops, col, clip.Outline{Path: p.End()}.Op())
}

func strokeLine(ops *op.Ops, from, to geom.Point, width float64, col color.NRGBA) {
	var p clip.Path
	p.Begin(ops)
	p.MoveTo(f32.Pt(float32(from.X), float32(from.Y)))
	p.LineTo(f32.Pt(float32(to.X), float32(to.Y)))
	paint.FillShape(ops, col, clip.Stroke{Path: p.End(), Width: float32(width)}.Op())
}

func handleSquare(ops *op.Ops, at geom.Point, size float64) {
	half := size / 2
	r := geom.R(at.X-half, at.Y-half, size, size)
	fillRectPath(ops, r, scene.ColorHandleFill)
	strokeRectPath(ops, r, 1, scene.ColorHandleStroke)
}

func fillCircle(ops *op.Ops, at geom.Point, radius float64, col color.NRGBA) {
	bounds := image.Rect(
		int(at.X-radius), int(at.Y-radius),
		int(at.X+radius), int(at.Y+radius),
	)
	paint.FillShape(ops, col, clip.Ellipse(bounds).Op(ops))
}
