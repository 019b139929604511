// Package editor is the facade the UI talks to: one type composing the
// canvas, the undo history, the image source and the save flow, with the
// tool set wired up and gesture events recorded as commands.
package editor

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/redmarklab/redmark/pkg/canvas"
	"github.com/redmarklab/redmark/pkg/command"
	"github.com/redmarklab/redmark/pkg/geom"
	"github.com/redmarklab/redmark/pkg/raster"
	"github.com/redmarklab/redmark/pkg/render"
	"github.com/redmarklab/redmark/pkg/scene"
	"github.com/redmarklab/redmark/pkg/tool"
)

// ErrNoSource is returned by Save before any image has been opened.
var ErrNoSource = errors.New("no image opened")

// Editor owns one editing session.
type Editor struct {
	Canvas  *canvas.Canvas
	History *command.History

	source     *raster.Source
	tools      map[canvas.Kind]canvas.Tool
	backedUp   bool
	stroke     color.NRGBA
	strokeName string

	// OnSaved fires after a successful save with the written path.
	OnSaved func(path string)
}

// New returns an editor with no image loaded.
func New() *Editor {
	e := &Editor{
		Canvas:  canvas.New(),
		History: command.NewHistory(0),
		tools: map[canvas.Kind]canvas.Tool{
			canvas.KindSelect: tool.NewSelect(),
			canvas.KindCrop:   tool.NewCrop(),
			canvas.KindRect:   tool.NewRect(),
		},
		stroke:     scene.DefaultStroke,
		strokeName: "red",
	}
	e.Canvas.OnShapeModified = e.shapeModified
	e.Canvas.OnDrawingFinished = e.drawingFinished
	e.Canvas.SetTool(e.tools[canvas.KindSelect])
	return e
}

// Open loads the image at path and resets the session around it.
func (e *Editor) Open(path string) error {
	src, err := raster.Load(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	e.source = src
	e.backedUp = false
	e.Canvas.Load(src.Original)
	e.History.Clear()
	e.SetTool(canvas.KindSelect)
	return nil
}

// Path returns the opened file's path, empty before Open.
func (e *Editor) Path() string {
	if e.source == nil {
		return ""
	}
	return e.source.Path
}

// SetTool switches the active tool. Picking the crop tool starts a crop
// session; leaving it with a session still active cancels the session, so
// the crop tool and crop mode stay in lockstep.
func (e *Editor) SetTool(k canvas.Kind) {
	t, ok := e.tools[k]
	if !ok {
		return
	}
	if cur := e.Canvas.ActiveTool(); cur != nil && cur.Kind() == k {
		return
	}
	if k == canvas.KindCrop && e.Canvas.Session() != canvas.SessionActive {
		e.Canvas.BeginCropSession()
	}
	if k != canvas.KindCrop && e.Canvas.Session() == canvas.SessionActive {
		e.Canvas.EndCropSession(false, geom.Rect{})
	}
	e.Canvas.SetTool(t)
}

// ActiveTool reports the active tool's kind.
func (e *Editor) ActiveTool() canvas.Kind {
	if t := e.Canvas.ActiveTool(); t != nil {
		return t.Kind()
	}
	return canvas.KindSelect
}

// SetAdjustments applies brightness and contrast, clamped. Debouncing is
// the caller's concern; this applies immediately.
func (e *Editor) SetAdjustments(brightness, contrast int) {
	e.Canvas.SetAdjustments(raster.Adjustments{Brightness: brightness, Contrast: contrast})
}

// SetStrokeColor picks the palette color new annotations get and recolors
// the selected one, if any. Unknown names fall back to the default.
func (e *Editor) SetStrokeColor(name string) {
	e.strokeName = name
	e.stroke = scene.StrokeColor(name)
	if s, ok := e.Canvas.Scene.Selected(); ok {
		s.Color = e.stroke
	}
}

// StrokeColorName reports the current palette selection.
func (e *Editor) StrokeColorName() string {
	return e.strokeName
}

// Undo reverts the most recent command.
func (e *Editor) Undo() error {
	return e.History.Undo()
}

// Redo re-applies the most recently undone command.
func (e *Editor) Redo() error {
	return e.History.Redo()
}

// DeleteSelected removes the selected shape through the history. A no-op
// when nothing is selected.
func (e *Editor) DeleteSelected() error {
	id := e.Canvas.Scene.SelectedID()
	if id == 0 {
		return nil
	}
	return e.History.Execute(command.NewRemoveAnnotation(e.Canvas.Scene, id))
}

// BeginCrop enters crop mode.
func (e *Editor) BeginCrop() {
	e.SetTool(canvas.KindCrop)
}

// ConfirmCrop commits the crop tool's selection and returns to the
// select tool.
func (e *Editor) ConfirmCrop() {
	if e.Canvas.Session() != canvas.SessionActive {
		return
	}
	e.Canvas.EndCropSession(true, e.Canvas.CropSelection())
	e.SetTool(canvas.KindSelect)
}

// CancelCrop abandons the crop session and returns to the select tool.
func (e *Editor) CancelCrop() {
	if e.Canvas.Session() != canvas.SessionActive {
		return
	}
	e.Canvas.EndCropSession(false, geom.Rect{})
	e.SetTool(canvas.KindSelect)
}

// Save writes the flattened result back to the source path. The pristine
// original is backed up beside it before the first write; an empty render
// is an error, never reported as success.
func (e *Editor) Save() error {
	if e.source == nil {
		return ErrNoSource
	}
	if !e.backedUp {
		if _, err := e.source.BackupOriginal(); err != nil {
			return fmt.Errorf("save: %w", err)
		}
		e.backedUp = true
	}
	img, err := e.Canvas.RenderToImage()
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if img == nil || img.Bounds().Empty() {
		return fmt.Errorf("save %s: empty render", e.source.Path)
	}
	if err := raster.Save(img, e.source.Path); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if e.OnSaved != nil {
		e.OnSaved(e.source.Path)
	}
	return nil
}

// ResetAll throws away every edit: full crop, identity adjustments, empty
// scene, cleared history, view fitted to the restored original.
func (e *Editor) ResetAll() {
	orig := e.Canvas.Original()
	if orig == nil {
		return
	}
	e.Canvas.Load(orig)
	e.History.Clear()
	e.Canvas.Camera.Fit(e.Canvas.DisplayBounds())
}

// RenderPNG returns the flattened result as PNG bytes, for the clipboard.
func (e *Editor) RenderPNG() ([]byte, error) {
	img, err := e.Canvas.RenderToImage()
	if err != nil {
		return nil, err
	}
	return render.EncodePNG(img)
}

func (e *Editor) shapeModified(id scene.ShapeID, before, after scene.Snapshot) {
	// The gesture already left the shape in the after state; recording
	// the command re-applies it, which Restore makes idempotent.
	e.History.Execute(command.NewTransformAnnotation(e.Canvas.Scene, id, before, after))
}

func (e *Editor) drawingFinished(id scene.ShapeID) {
	s, err := e.Canvas.Scene.Get(id)
	if err != nil {
		return
	}
	s.Color = e.stroke
	e.History.Execute(command.NewAddAnnotation(e.Canvas.Scene, *s))
	e.SetTool(canvas.KindSelect)
	e.Canvas.Scene.Select(id)
}
