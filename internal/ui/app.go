// Package ui is the Gio desktop shell around the editing engine: a toolbar
// and status bar wrapped around the viewport, with keyboard shortcuts and
// the file picker. All engine calls happen on the frame loop; background
// work hands results over through channels.
package ui

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"golang.design/x/clipboard"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/oligo/gioview/menu"
	"github.com/oligo/gioview/theme"
	"github.com/sirupsen/logrus"

	"github.com/redmarklab/redmark/pkg/canvas"
	"github.com/redmarklab/redmark/pkg/editor"
	"github.com/redmarklab/redmark/pkg/raster"
	"github.com/redmarklab/redmark/pkg/scene"
)

// App drives the editor window.
type App struct {
	window *app.Window
	ops    op.Ops

	gvTheme *theme.Theme
	ed      *editor.Editor
	log     *logrus.Logger
	picker  *explorer.Explorer

	// Paths picked off the frame loop arrive here.
	opened      chan string
	pickOnStart bool

	openBtn    widget.Clickable
	selectBtn  widget.Clickable
	rectBtn    widget.Clickable
	cropBtn    widget.Clickable
	undoBtn    widget.Clickable
	redoBtn    widget.Clickable
	deleteBtn  widget.Clickable
	zoomInBtn  widget.Clickable
	zoomOutBtn widget.Clickable
	fitBtn     widget.Clickable
	resetBtn   widget.Clickable
	saveBtn    widget.Clickable
	copyBtn    widget.Clickable

	openIcon    *widget.Icon
	selectIcon  *widget.Icon
	rectIcon    *widget.Icon
	cropIcon    *widget.Icon
	undoIcon    *widget.Icon
	redoIcon    *widget.Icon
	deleteIcon  *widget.Icon
	zoomInIcon  *widget.Icon
	zoomOutIcon *widget.Icon
	fitIcon     *widget.Icon
	resetIcon   *widget.Icon
	saveIcon    *widget.Icon
	copyIcon    *widget.Icon

	brightness widget.Float
	contrast   widget.Float
	debounce   editor.Debouncer

	colorMenu    *menu.DropdownMenu
	colorMenuBtn widget.Clickable

	// Viewport state; the drawing side lives in viewport.go.
	displayOp  paint.ImageOp
	displaySrc *image.NRGBA
	fitPending bool
	spaceHeld  bool

	dirty   bool
	status  string
	clipErr error
}

// New builds the app around an editor session. A nil editor starts empty;
// pickOnStart opens the file picker on the first frame.
func New(w *app.Window, ed *editor.Editor, log *logrus.Logger, pickOnStart bool) *App {
	if w == nil {
		w = new(app.Window)
	}
	if ed == nil {
		ed = editor.New()
	}
	if log == nil {
		log = logrus.New()
	}
	w.Option(app.Title("redmark"), app.Size(unit.Dp(1280), unit.Dp(840)))

	gv := theme.NewTheme("", nil, true)
	a := &App{
		window:      w,
		gvTheme:     gv,
		ed:          ed,
		log:         log,
		opened:      make(chan string, 1),
		pickOnStart: pickOnStart,
	}
	gv.WithPalette(theme.Palette{
		Bg:         color.NRGBA{R: 246, G: 247, B: 250, A: 255},
		Fg:         color.NRGBA{R: 32, G: 35, B: 42, A: 255},
		ContrastBg: color.NRGBA{R: 70, G: 130, B: 255, A: 255},
		ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Bg2:        color.NRGBA{R: 228, G: 231, B: 238, A: 255},
	})

	a.openIcon = newIcon(icons.FileFolderOpen)
	a.selectIcon = newIcon(icons.MapsNearMe)
	a.rectIcon = newIcon(icons.ToggleCheckBoxOutlineBlank)
	a.cropIcon = newIcon(icons.ImageCrop)
	a.undoIcon = newIcon(icons.ContentUndo)
	a.redoIcon = newIcon(icons.ContentRedo)
	a.deleteIcon = newIcon(icons.ActionDelete)
	a.zoomInIcon = newIcon(icons.ActionZoomIn)
	a.zoomOutIcon = newIcon(icons.ActionZoomOut)
	a.fitIcon = newIcon(icons.NavigationFullscreen)
	a.resetIcon = newIcon(icons.ActionAutorenew)
	a.saveIcon = newIcon(icons.ContentSave)
	a.copyIcon = newIcon(icons.ContentContentCopy)

	a.brightness.Value = 0.5
	a.contrast.Value = 0.5
	a.colorMenu = a.buildColorMenu()
	a.picker = explorer.NewExplorer(w)

	if err := clipboard.Init(); err != nil {
		a.clipErr = err
		log.WithError(err).Warn("clipboard unavailable")
	}

	ed.History.OnChange = func() {
		a.dirty = true
	}
	prevSaved := ed.OnSaved
	ed.OnSaved = func(path string) {
		if prevSaved != nil {
			prevSaved(path)
		}
		a.dirty = false
		a.log.WithField("path", path).Info("image saved")
		a.setStatus("Saved " + filepath.Base(path))
	}
	ed.Canvas.Camera.OnZoomChanged = func(float64) {
		a.invalidate()
	}
	if ed.Canvas.Display() != nil {
		// Image opened before the window existed; fit on the first frame.
		a.fitPending = true
		a.syncSliders()
	}
	return a
}

// Run blocks processing window events until the window closes.
func (a *App) Run() error {
	for {
		e := a.window.Event()
		switch ev := e.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	select {
	case path := <-a.opened:
		a.loadImage(path)
	default:
	}
	if a.pickOnStart {
		a.pickOnStart = false
		a.doOpen()
	}

	a.handleKeys(gtx)
	a.pollAdjustments(gtx)

	paint.FillShape(gtx.Ops, a.gvTheme.Palette.Bg, clip.Rect{Max: gtx.Constraints.Max}.Op())
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(a.layoutToolbar),
		layout.Rigid(a.layoutDivider),
		layout.Flexed(1, a.layoutViewport),
		layout.Rigid(a.layoutDivider),
		layout.Rigid(a.layoutStatusBar),
	)
}

func (a *App) layoutToolbar(gtx layout.Context) layout.Dimensions {
	inset := layout.Inset{Left: unit.Dp(8), Right: unit.Dp(8), Top: unit.Dp(4), Bottom: unit.Dp(4)}
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if a.openBtn.Clicked(gtx) {
					a.doOpen()
				}
				return a.iconButton(gtx, &a.openBtn, a.openIcon, "Open", false)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if a.selectBtn.Clicked(gtx) {
					a.setTool(canvas.KindSelect)
				}
				return a.iconButton(gtx, &a.selectBtn, a.selectIcon, "Select (V)", a.ed.ActiveTool() == canvas.KindSelect)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if a.rectBtn.Clicked(gtx) {
					a.setTool(canvas.KindRect)
				}
				return a.iconButton(gtx, &a.rectBtn, a.rectIcon, "Rectangle (R)", a.ed.ActiveTool() == canvas.KindRect)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if a.cropBtn.Clicked(gtx) {
					a.setTool(canvas.KindCrop)
				}
				return a.iconButton(gtx, &a.cropBtn, a.cropIcon, "Crop (C)", a.ed.ActiveTool() == canvas.KindCrop)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if a.undoBtn.Clicked(gtx) {
					a.doUndo()
				}
				return a.iconButton(gtx, &a.undoBtn, a.undoIcon, "Undo (Ctrl+Z)", false)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if a.redoBtn.Clicked(gtx) {
					a.doRedo()
				}
				return a.iconButton(gtx, &a.redoBtn, a.redoIcon, "Redo (Ctrl+Y)", false)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if a.deleteBtn.Clicked(gtx) {
					a.doDelete()
				}
				return a.iconButton(gtx, &a.deleteBtn, a.deleteIcon, "Delete annotation (Del)", false)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if a.zoomInBtn.Clicked(gtx) {
					a.ed.Canvas.Camera.ZoomIn()
				}
				return a.iconButton(gtx, &a.zoomInBtn, a.zoomInIcon, "Zoom in", false)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if a.zoomOutBtn.Clicked(gtx) {
					a.ed.Canvas.Camera.ZoomOut()
				}
				return a.iconButton(gtx, &a.zoomOutBtn, a.zoomOutIcon, "Zoom out", false)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if a.fitBtn.Clicked(gtx) {
					a.requestFit()
				}
				return a.iconButton(gtx, &a.fitBtn, a.fitIcon, "Fit to window", false)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
			layout.Rigid(a.layoutColorButton),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions { return layout.Dimensions{} }),
			layout.Rigid(a.layoutAdjustments),
			layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if a.resetBtn.Clicked(gtx) {
					a.doReset()
				}
				return a.iconButton(gtx, &a.resetBtn, a.resetIcon, "Revert to original", false)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if a.copyBtn.Clicked(gtx) {
					a.doCopy()
				}
				return a.iconButton(gtx, &a.copyBtn, a.copyIcon, "Copy to clipboard (Ctrl+C)", false)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if a.saveBtn.Clicked(gtx) {
					a.doSave()
				}
				return a.iconButton(gtx, &a.saveBtn, a.saveIcon, "Save (Ctrl+S)", false)
			}),
		)
	})
}

func (a *App) layoutColorButton(gtx layout.Context) layout.Dimensions {
	if a.colorMenu != nil && a.colorMenuBtn.Clicked(gtx) {
		a.colorMenu.ToggleVisibility(gtx)
	}
	dims := material.Clickable(gtx, &a.colorMenuBtn, func(gtx layout.Context) layout.Dimensions {
		return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return a.colorSwatch(gtx, scene.StrokeColor(a.ed.StrokeColorName()))
				}),
				layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
				layout.Rigid(material.Body2(a.gvTheme.Theme, "Stroke").Layout),
			)
		})
	})
	if a.colorMenu != nil {
		a.colorMenu.Layout(gtx, a.gvTheme)
	}
	return dims
}

func (a *App) layoutAdjustments(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(material.Caption(a.gvTheme.Theme, "Brightness").Layout),
		layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutSlider(gtx, &a.brightness)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutSliderValue(gtx, a.brightness.Value)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(14)}.Layout),
		layout.Rigid(material.Caption(a.gvTheme.Theme, "Contrast").Layout),
		layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutSlider(gtx, &a.contrast)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutSliderValue(gtx, a.contrast.Value)
		}),
	)
}

func (a *App) layoutSlider(gtx layout.Context, f *widget.Float) layout.Dimensions {
	width := gtx.Dp(unit.Dp(120))
	gtx.Constraints.Min.X = width
	gtx.Constraints.Max.X = width
	prev := f.Value
	dims := material.Slider(a.gvTheme.Theme, f).Layout(gtx)
	if f.Value != prev {
		a.debounce.Set(raster.Adjustments{
			Brightness: sliderAdjustment(a.brightness.Value),
			Contrast:   sliderAdjustment(a.contrast.Value),
		}, gtx.Now)
	}
	return dims
}

func (a *App) layoutSliderValue(gtx layout.Context, v float32) layout.Dimensions {
	gtx.Constraints.Min.X = gtx.Dp(unit.Dp(34))
	lbl := material.Caption(a.gvTheme.Theme, fmt.Sprintf("%+d", sliderAdjustment(v)))
	return lbl.Layout(gtx)
}

// pollAdjustments applies the debounced slider values once they mature, and
// schedules a wakeup frame for the deadline otherwise.
func (a *App) pollAdjustments(gtx layout.Context) {
	if a.debounce.Due(gtx.Now) {
		if adj, ok := a.debounce.Take(); ok {
			a.ed.SetAdjustments(adj.Brightness, adj.Contrast)
			a.dirty = true
		}
		return
	}
	if deadline, ok := a.debounce.Deadline(); ok {
		gtx.Execute(op.InvalidateCmd{At: deadline})
	}
}

func (a *App) layoutDivider(gtx layout.Context) layout.Dimensions {
	size := image.Pt(gtx.Constraints.Max.X, gtx.Dp(unit.Dp(1)))
	paint.FillShape(gtx.Ops, a.gvTheme.Bg2, clip.Rect{Max: size}.Op())
	return layout.Dimensions{Size: size}
}

func (a *App) layoutStatusBar(gtx layout.Context) layout.Dimensions {
	inset := layout.Inset{Left: unit.Dp(16), Right: unit.Dp(16), Top: unit.Dp(6), Bottom: unit.Dp(6)}
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				msg := a.status
				if msg == "" {
					if p := a.ed.Path(); p != "" {
						msg = filepath.Base(p)
					} else {
						msg = "No image"
					}
				}
				return material.Body2(a.gvTheme.Theme, msg).Layout(gtx)
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions { return layout.Dimensions{} }),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				// Fixed width so zoom changes do not shuffle the bar.
				gtx.Constraints.Min.X = gtx.Dp(unit.Dp(220))
				marker := ""
				if a.dirty {
					marker = " · unsaved"
				}
				text := fmt.Sprintf("%s · %.0f%%%s", a.ed.ActiveTool().Label(), a.ed.Canvas.Camera.Zoom*100, marker)
				return material.Body2(a.gvTheme.Theme, text).Layout(gtx)
			}),
		)
	})
}

func (a *App) handleKeys(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(
			key.Filter{Name: "V"},
			key.Filter{Name: "R"},
			key.Filter{Name: "C"},
			key.Filter{Name: "Z", Required: key.ModShortcut},
			key.Filter{Name: "Y", Required: key.ModShortcut},
			key.Filter{Name: "S", Required: key.ModShortcut},
			key.Filter{Name: "C", Required: key.ModShortcut},
			key.Filter{Name: "O", Required: key.ModShortcut},
			key.Filter{Name: key.NameDeleteForward},
			key.Filter{Name: key.NameDeleteBackward},
			key.Filter{Name: key.NameReturn},
			key.Filter{Name: key.NameEscape},
			key.Filter{Name: key.NameSpace},
		)
		if !ok {
			break
		}
		e, ok := ev.(key.Event)
		if !ok {
			continue
		}
		if e.Name == key.NameSpace {
			a.spaceHeld = e.State == key.Press
			continue
		}
		if e.State != key.Press {
			continue
		}
		switch e.Name {
		case "V":
			a.setTool(canvas.KindSelect)
		case "R":
			a.setTool(canvas.KindRect)
		case "C":
			if e.Modifiers.Contain(key.ModShortcut) {
				a.doCopy()
			} else {
				a.setTool(canvas.KindCrop)
			}
		case "Z":
			a.doUndo()
		case "Y":
			a.doRedo()
		case "S":
			a.doSave()
		case "O":
			a.doOpen()
		case key.NameDeleteForward, key.NameDeleteBackward:
			a.doDelete()
		case key.NameReturn:
			a.doConfirmCrop()
		case key.NameEscape:
			a.doEscape()
		}
	}
}

func (a *App) doOpen() {
	if a.picker == nil {
		return
	}
	go func() {
		file, err := a.picker.ChooseFile("png", "jpg", "jpeg")
		if err != nil {
			if err != explorer.ErrUserDecline {
				a.log.WithError(err).Error("file picker failed")
			}
			return
		}
		defer file.Close()
		f, ok := file.(*os.File)
		if !ok {
			a.log.Error("picker returned a pathless file")
			return
		}
		select {
		case a.opened <- f.Name():
		default:
		}
		a.window.Invalidate()
	}()
}

func (a *App) loadImage(path string) {
	if err := a.ed.Open(path); err != nil {
		a.log.WithError(err).WithField("path", path).Error("open image failed")
		a.setStatus(fmt.Sprintf("Open failed: %v", err))
		return
	}
	a.dirty = false
	a.syncSliders()
	a.requestFit()
	a.log.WithField("path", path).Info("image opened")
	a.setStatus("Opened " + filepath.Base(path))
}

func (a *App) setTool(k canvas.Kind) {
	a.ed.SetTool(k)
	if k == canvas.KindCrop {
		a.setStatus("Crop: drag the selection, Enter applies, Esc cancels")
		return
	}
	a.setStatus(k.Label() + " tool")
}

func (a *App) doUndo() {
	if !a.ed.History.CanUndo() {
		a.setStatus("Nothing to undo")
		return
	}
	if err := a.ed.Undo(); err != nil {
		a.log.WithError(err).Warn("undo failed")
		a.setStatus(fmt.Sprintf("Undo failed: %v", err))
		return
	}
	a.setStatus("Undone")
}

func (a *App) doRedo() {
	if !a.ed.History.CanRedo() {
		a.setStatus("Nothing to redo")
		return
	}
	if err := a.ed.Redo(); err != nil {
		a.log.WithError(err).Warn("redo failed")
		a.setStatus(fmt.Sprintf("Redo failed: %v", err))
		return
	}
	a.setStatus("Redone")
}

func (a *App) doDelete() {
	if a.ed.Canvas.Scene.SelectedID() == 0 {
		a.setStatus("Nothing selected")
		return
	}
	if err := a.ed.DeleteSelected(); err != nil {
		a.log.WithError(err).Warn("delete failed")
		a.setStatus(fmt.Sprintf("Delete failed: %v", err))
		return
	}
	a.setStatus("Annotation deleted")
}

func (a *App) doSave() {
	if err := a.ed.Save(); err != nil {
		if errors.Is(err, editor.ErrNoSource) {
			a.setStatus("No image to save")
			return
		}
		a.log.WithError(err).Error("save failed")
		a.setStatus(fmt.Sprintf("Save failed: %v", err))
	}
}

func (a *App) doCopy() {
	data, err := a.ed.RenderPNG()
	if err != nil {
		if errors.Is(err, canvas.ErrNoImage) {
			a.setStatus("Nothing to copy")
			return
		}
		a.log.WithError(err).Error("render for clipboard failed")
		a.setStatus(fmt.Sprintf("Copy failed: %v", err))
		return
	}
	if a.clipErr != nil {
		a.setStatus("Clipboard unavailable")
		return
	}
	clipboard.Write(clipboard.FmtImage, data)
	a.setStatus("Copied to clipboard")
}

func (a *App) doReset() {
	if a.ed.Canvas.Original() == nil {
		return
	}
	a.ed.ResetAll()
	a.syncSliders()
	a.setStatus("Reverted to original")
}

func (a *App) doConfirmCrop() {
	if a.ed.Canvas.Session() != canvas.SessionActive {
		return
	}
	a.ed.ConfirmCrop()
	a.dirty = true
	a.setStatus("Crop applied")
}

func (a *App) doEscape() {
	if a.ed.Canvas.Session() == canvas.SessionActive {
		a.ed.CancelCrop()
		a.setStatus("Crop cancelled")
		return
	}
	a.ed.Canvas.Scene.ClearSelection()
}

func (a *App) pickStroke(name string) {
	recolored := a.ed.Canvas.Scene.SelectedID() != 0
	a.ed.SetStrokeColor(name)
	if recolored {
		a.dirty = true
	}
	a.setStatus("Stroke color: " + name)
}

func (a *App) syncSliders() {
	adj := a.ed.Canvas.Adjustments()
	a.brightness.Value = float32(adj.Brightness+100) / 200
	a.contrast.Value = float32(adj.Contrast+100) / 200
}

func (a *App) requestFit() {
	a.fitPending = true
	a.invalidate()
}

func (a *App) setStatus(s string) {
	a.status = s
	a.invalidate()
}

func (a *App) invalidate() {
	if a.window != nil {
		a.window.Invalidate()
	}
}

func (a *App) iconButton(gtx layout.Context, btn *widget.Clickable, icon *widget.Icon, desc string, active bool) layout.Dimensions {
	if icon == nil {
		return material.Button(a.gvTheme.Theme, btn, desc).Layout(gtx)
	}
	ib := material.IconButton(a.gvTheme.Theme, btn, icon, desc)
	ib.Size = unit.Dp(20)
	ib.Inset = layout.UniformInset(unit.Dp(6))
	ib.Background = color.NRGBA{}
	ib.Color = a.gvTheme.Palette.Fg
	if active {
		ib.Background = a.gvTheme.Palette.ContrastBg
		ib.Color = a.gvTheme.Palette.ContrastFg
	}
	return ib.Layout(gtx)
}

func (a *App) colorSwatch(gtx layout.Context, col color.NRGBA) layout.Dimensions {
	size := gtx.Dp(unit.Dp(14))
	sz := image.Pt(size, size)
	paint.FillShape(gtx.Ops, col, clip.Rect{Max: sz}.Op())
	return layout.Dimensions{Size: sz}
}

func (a *App) buildColorMenu() *menu.DropdownMenu {
	opts := make([]menu.MenuOption, 0, len(scene.StrokeNames))
	for _, name := range scene.StrokeNames {
		n := name
		opts = append(opts, menu.MenuOption{
			OnClicked: func() error {
				a.pickStroke(n)
				return nil
			},
			Layout: func(gtx menu.C, th *theme.Theme) menu.D {
				lbl := material.Body1(th.Theme, n)
				if n == a.ed.StrokeColorName() {
					lbl.Color = th.Palette.ContrastBg
				}
				return layout.Inset{Left: unit.Dp(4), Right: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return a.colorSwatch(gtx, scene.StrokeColor(n))
						}),
						layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
						layout.Rigid(lbl.Layout),
					)
				})
			},
		})
	}
	drop := menu.NewDropdownMenu([][]menu.MenuOption{opts})
	drop.MaxWidth = unit.Dp(160)
	return drop
}

func sliderAdjustment(v float32) int {
	return int(math.Round(float64(v)*200)) - 100
}

func newIcon(data []byte) *widget.Icon {
	icon, err := widget.NewIcon(data)
	if err != nil {
		return nil
	}
	return icon
}
