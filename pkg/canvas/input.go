package canvas

import (
	"fmt"

	"github.com/redmarklab/redmark/pkg/geom"
)

// EventKind classifies a pointer event.
type EventKind uint8

const (
	PointerPress EventKind = iota
	PointerMove
	PointerRelease
)

var eventKindNames = map[EventKind]string{
	PointerPress:   "press",
	PointerMove:    "move",
	PointerRelease: "release",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", k)
}

// Buttons is a set of pressed pointer buttons.
type Buttons uint8

const (
	ButtonPrimary Buttons = 1 << iota
	ButtonSecondary
	ButtonTertiary
)

// Contain reports whether all of b2 are pressed.
func (b Buttons) Contain(b2 Buttons) bool {
	return b&b2 == b2
}

// Modifiers is a set of held modifier keys. ModSpace is the held space
// bar, which the host tracks and folds in.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSpace
)

// Contain reports whether all of m2 are held.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

// PointerEvent is one pointer message from the host. Scene is the position
// mapped through the camera; Screen is raw window pixels, used for panning
// so the drag speed is zoom-independent.
type PointerEvent struct {
	Kind      EventKind
	Scene     geom.Point
	Screen    geom.Point
	Buttons   Buttons
	Modifiers Modifiers
}

// HandlePointer routes one pointer event. Panning takes priority: a press
// with the middle button or the space bar held starts a pan, and until
// that drag releases the active tool sees nothing. Panning only moves the
// camera, never the model. All other events go to the active tool.
func (c *Canvas) HandlePointer(ev PointerEvent) {
	if c.original == nil {
		return
	}
	if c.panning || c.wantsPan(ev) {
		c.handlePan(ev)
		return
	}
	if c.tool == nil {
		return
	}
	switch ev.Kind {
	case PointerPress:
		c.tool.Press(c, ev)
	case PointerMove:
		c.tool.Move(c, ev)
	case PointerRelease:
		c.tool.Release(c, ev)
	}
}

func (c *Canvas) wantsPan(ev PointerEvent) bool {
	if ev.Kind != PointerPress {
		return false
	}
	return ev.Buttons.Contain(ButtonTertiary) || ev.Modifiers.Contain(ModSpace)
}

func (c *Canvas) handlePan(ev PointerEvent) {
	switch ev.Kind {
	case PointerPress:
		c.panning = true
		c.lastPan = ev.Screen
	case PointerMove:
		if !c.panning {
			return
		}
		d := ev.Screen.Sub(c.lastPan)
		c.Camera.Pan(d.X, d.Y)
		c.lastPan = ev.Screen
	case PointerRelease:
		c.panning = false
	}
}

// Panning reports whether a pan drag is in progress.
func (c *Canvas) Panning() bool {
	return c.panning
}
