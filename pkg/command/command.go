// Package command implements undoable editor operations and the bounded
// history that sequences them. Commands capture value-type state and act on
// the scene through stable IDs, so a command whose target has vanished
// fails loudly instead of silently corrupting the timeline.
package command

// Command is one undoable operation. Execute must be safe to call again
// after Undo (redo path), and both directions report failure instead of
// guessing.
type Command interface {
	Execute() error
	Undo() error
	Name() string
}

// DefaultMaxDepth bounds the undo stack.
const DefaultMaxDepth = 50

// History is the undo/redo timeline. Not safe for concurrent use; the
// editor runs single-threaded.
type History struct {
	undo     []Command
	redo     []Command
	maxDepth int

	// OnChange fires after every successful mutation of the stacks.
	OnChange func()
}

// NewHistory returns a history bounded to maxDepth entries; values < 1
// fall back to DefaultMaxDepth.
func NewHistory(maxDepth int) *History {
	if maxDepth < 1 {
		maxDepth = DefaultMaxDepth
	}
	return &History{maxDepth: maxDepth}
}

// Execute runs the command. Only a successful command is recorded; the
// redo stack is cleared and the oldest entry evicted past the cap.
func (h *History) Execute(cmd Command) error {
	if err := cmd.Execute(); err != nil {
		return err
	}
	h.undo = append(h.undo, cmd)
	if len(h.undo) > h.maxDepth {
		h.undo = h.undo[1:]
	}
	h.redo = h.redo[:0]
	h.changed()
	return nil
}

// Undo reverts the most recent command. An empty stack is a no-op. On
// failure the command is pushed back so the stack stays consistent.
func (h *History) Undo() error {
	if len(h.undo) == 0 {
		return nil
	}
	cmd := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	if err := cmd.Undo(); err != nil {
		h.undo = append(h.undo, cmd)
		return err
	}
	h.redo = append(h.redo, cmd)
	h.changed()
	return nil
}

// Redo re-applies the most recently undone command. Mirror of Undo.
func (h *History) Redo() error {
	if len(h.redo) == 0 {
		return nil
	}
	cmd := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	if err := cmd.Execute(); err != nil {
		h.redo = append(h.redo, cmd)
		return err
	}
	h.undo = append(h.undo, cmd)
	h.changed()
	return nil
}

// CanUndo reports whether an undo is available.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether a redo is available.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Len returns the undo stack depth.
func (h *History) Len() int {
	return len(h.undo)
}

// Clear drops both stacks.
func (h *History) Clear() {
	if len(h.undo) == 0 && len(h.redo) == 0 {
		return
	}
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
	h.changed()
}

func (h *History) changed() {
	if h.OnChange != nil {
		h.OnChange()
	}
}
