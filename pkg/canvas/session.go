package canvas

import (
	"fmt"

	"github.com/redmarklab/redmark/pkg/geom"
)

// SessionState is the crop session mode. While a session is active the
// display shows the raw original and the crop tool edits a selection on it;
// idle means normal filtered-and-cropped editing.
type SessionState uint8

const (
	SessionIdle SessionState = iota
	SessionActive
)

var sessionNames = map[SessionState]string{
	SessionIdle:   "Idle",
	SessionActive: "Active",
}

func (s SessionState) String() string {
	if name, ok := sessionNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SessionState(%d)", s)
}

// BeginCropSession switches the canvas into crop mode: the display becomes
// the raw original, annotations are translated by +crop.Min so they stay
// over the same pixels, and the view re-fits. The current crop rect is
// returned as the initial selection, in original-image coordinates. Calling
// it while already active returns the live selection unchanged.
func (c *Canvas) BeginCropSession() geom.Rect {
	if c.session == SessionActive {
		return c.selection
	}
	c.selection = c.crop
	c.Scene.TranslateAll(c.crop.Min)
	c.setSession(SessionActive)
	c.updateDisplay()
	c.Camera.Fit(c.DisplayBounds())
	return c.selection
}

// EndCropSession leaves crop mode. On confirm the new crop is the selection
// intersected with the original bounds; on cancel the saved crop is kept,
// so a begin/cancel pair round-trips to the identical display. Annotations
// translate by -final.Min back into display coordinates and the view
// re-fits. A no-op when no session is active.
func (c *Canvas) EndCropSession(confirm bool, selection geom.Rect) {
	if c.session != SessionActive {
		return
	}
	if confirm {
		next := selection.Normalized().Intersect(c.OriginalBounds())
		// A selection entirely outside the image would leave nothing to
		// show; keep the previous crop instead.
		if !next.Empty() {
			c.crop = next
		}
	}
	c.Scene.TranslateAll(geom.Point{X: -c.crop.Min.X, Y: -c.crop.Min.Y})
	c.setSession(SessionIdle)
	c.updateDisplay()
	c.Camera.Fit(c.DisplayBounds())
}

// Session reports the crop session state.
func (c *Canvas) Session() SessionState {
	return c.session
}

// CropSelection returns the live selection while a session is active.
func (c *Canvas) CropSelection() geom.Rect {
	return c.selection
}

// SetCropSelection stores the live selection, normalized. The crop tool
// writes through this as it drags so the viewport chrome and the session
// share one source of truth.
func (c *Canvas) SetCropSelection(r geom.Rect) {
	c.selection = r.Normalized()
}

func (c *Canvas) setSession(s SessionState) {
	if s == c.session {
		return
	}
	c.session = s
	if c.OnSessionChanged != nil {
		c.OnSessionChanged(s)
	}
}
