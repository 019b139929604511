// Package canvas ties the editing model together: the loaded image, the
// crop rect and tone adjustments that derive the display frame, the shape
// arena, the camera, the crop session and the active tool. It has no GUI
// dependencies; a host feeds it pointer events and draws its state.
package canvas

import (
	"errors"
	"image"

	"github.com/redmarklab/redmark/pkg/geom"
	"github.com/redmarklab/redmark/pkg/raster"
	"github.com/redmarklab/redmark/pkg/render"
	"github.com/redmarklab/redmark/pkg/scene"
)

// ErrNoImage is returned when an operation needs a loaded image.
var ErrNoImage = errors.New("no image loaded")

// Canvas is the complete editing state for one image.
type Canvas struct {
	original *image.NRGBA
	crop     geom.Rect // region of the original shown when idle
	adjust   raster.Adjustments
	display  *image.NRGBA // cached frame derived from the three above

	Scene  *scene.Scene
	Camera *Camera

	session   SessionState
	selection geom.Rect // crop selection, original coords, active session only

	tool  Tool
	draft *scene.Shape // shape being drawn, not yet in the arena

	panning bool
	lastPan geom.Point

	// OnShapeModified fires once per completed gesture that changed a
	// shape's geometry. OnDrawingFinished fires when a new shape is
	// committed. OnSessionChanged fires on crop session transitions.
	OnShapeModified   func(id scene.ShapeID, before, after scene.Snapshot)
	OnDrawingFinished func(id scene.ShapeID)
	OnSessionChanged  func(state SessionState)
}

// New returns an empty canvas. The camera starts with a nominal screen
// size; the host updates it on the first layout.
func New() *Canvas {
	return &Canvas{
		Scene:  scene.New(),
		Camera: NewCamera(800, 600),
	}
}

// Load installs a new original image and resets everything derived from
// it: full crop, zero adjustments, cleared scene, idle session, zoom back
// to 1:1 centered on the image. The host typically fits the view right
// after, once it knows the real viewport size.
func (c *Canvas) Load(img *image.NRGBA) {
	c.original = img
	c.crop = raster.FullBounds(img)
	c.adjust = raster.Adjustments{}
	c.Scene.Clear()
	c.draft = nil
	c.panning = false
	c.setSession(SessionIdle)
	c.updateDisplay()

	center := c.DisplayBounds().Center()
	c.Camera.CenterX = center.X
	c.Camera.CenterY = center.Y
	c.Camera.SetZoom(1.0)
}

// Original returns the unmodified loaded image, nil when nothing is loaded.
func (c *Canvas) Original() *image.NRGBA {
	return c.original
}

// OriginalBounds returns the original image extent.
func (c *Canvas) OriginalBounds() geom.Rect {
	return raster.FullBounds(c.original)
}

// Display returns the current display frame: the raw original during a
// crop session, otherwise the filtered crop of the original.
func (c *Canvas) Display() *image.NRGBA {
	return c.display
}

// DisplayBounds returns the display frame extent in scene coordinates.
func (c *Canvas) DisplayBounds() geom.Rect {
	return raster.FullBounds(c.display)
}

// CropRect returns the committed crop region in original coordinates.
func (c *Canvas) CropRect() geom.Rect {
	return c.crop
}

// Adjustments returns the current tone adjustments.
func (c *Canvas) Adjustments() raster.Adjustments {
	return c.adjust
}

// SetAdjustments clamps and applies tone adjustments, recomputing the
// display frame.
func (c *Canvas) SetAdjustments(a raster.Adjustments) {
	c.adjust = a.Clamped()
	c.updateDisplay()
}

// SetTool swaps the active tool, running the deactivate/activate hooks.
func (c *Canvas) SetTool(t Tool) {
	if c.tool != nil {
		c.tool.Deactivate(c)
	}
	c.tool = t
	if c.tool != nil {
		c.tool.Activate(c)
	}
}

// ActiveTool returns the current tool, nil when none is set.
func (c *Canvas) ActiveTool() Tool {
	return c.tool
}

// SetDraft installs the transient shape being drawn, nil to clear it.
func (c *Canvas) SetDraft(s *scene.Shape) {
	c.draft = s
}

// Draft returns the shape being drawn, nil when none.
func (c *Canvas) Draft() *scene.Shape {
	return c.draft
}

// RenderToImage flattens the display frame and every committed annotation
// into a new image. Selection chrome, handles and the draft are never
// included.
func (c *Canvas) RenderToImage() (*image.NRGBA, error) {
	if c.display == nil {
		return nil, ErrNoImage
	}
	return render.Flatten(c.display, c.Scene.Shapes()), nil
}

// updateDisplay recomputes the cached display frame from the original,
// the crop rect, the adjustments and the session state.
func (c *Canvas) updateDisplay() {
	if c.original == nil {
		c.display = nil
		return
	}
	if c.session == SessionActive {
		c.display = c.original
		return
	}
	c.display = c.adjust.Apply(raster.Crop(c.original, c.crop))
}
