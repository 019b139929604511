package canvas

import "fmt"

// Kind identifies a tool.
type Kind uint8

const (
	KindSelect Kind = iota
	KindCrop
	KindRect
)

type kindInfo struct {
	name     string
	label    string
	shortcut string
}

var kinds = map[Kind]kindInfo{
	KindSelect: {name: "select", label: "Select", shortcut: "V"},
	KindCrop:   {name: "crop", label: "Crop", shortcut: "C"},
	KindRect:   {name: "rect", label: "Rectangle", shortcut: "R"},
}

func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Label is the toolbar caption for the tool.
func (k Kind) Label() string {
	return kinds[k].label
}

// Shortcut is the keyboard key that activates the tool.
func (k Kind) Shortcut() string {
	return kinds[k].shortcut
}

// Tool is an interaction strategy the canvas routes pointer events to.
// Implementations keep their own gesture state; the canvas calls
// Activate/Deactivate when the tool is swapped in or out.
type Tool interface {
	Kind() Kind
	Activate(c *Canvas)
	Deactivate(c *Canvas)
	Press(c *Canvas, ev PointerEvent)
	Move(c *Canvas, ev PointerEvent)
	Release(c *Canvas, ev PointerEvent)
}
