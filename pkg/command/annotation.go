package command

import (
	"fmt"

	"github.com/redmarklab/redmark/pkg/scene"
)

// AddAnnotation inserts a shape into the scene. The ID is allocated at
// construction so undo/redo cycles keep referring to the same shape.
type AddAnnotation struct {
	scene *scene.Scene
	shape scene.Shape
}

// NewAddAnnotation prepares an insert of the given shape value.
func NewAddAnnotation(sc *scene.Scene, sh scene.Shape) *AddAnnotation {
	if sh.ID == 0 {
		sh.ID = sc.AllocateID()
	}
	return &AddAnnotation{scene: sc, shape: sh}
}

// ShapeID returns the ID the shape was assigned.
func (c *AddAnnotation) ShapeID() scene.ShapeID {
	return c.shape.ID
}

func (c *AddAnnotation) Execute() error {
	c.scene.Insert(c.shape)
	return nil
}

func (c *AddAnnotation) Undo() error {
	if err := c.scene.Remove(c.shape.ID); err != nil {
		return fmt.Errorf("undo %s: %w", c.Name(), err)
	}
	return nil
}

func (c *AddAnnotation) Name() string {
	return "add annotation"
}

// RemoveAnnotation deletes a shape by ID, capturing its value on execute
// so undo can bring it back exactly.
type RemoveAnnotation struct {
	scene    *scene.Scene
	id       scene.ShapeID
	captured scene.Shape
}

// NewRemoveAnnotation prepares a removal of the shape with the given ID.
func NewRemoveAnnotation(sc *scene.Scene, id scene.ShapeID) *RemoveAnnotation {
	return &RemoveAnnotation{scene: sc, id: id}
}

func (c *RemoveAnnotation) Execute() error {
	s, err := c.scene.Get(c.id)
	if err != nil {
		return fmt.Errorf("%s: %w", c.Name(), err)
	}
	c.captured = *s
	if err := c.scene.Remove(c.id); err != nil {
		return fmt.Errorf("%s: %w", c.Name(), err)
	}
	return nil
}

func (c *RemoveAnnotation) Undo() error {
	c.scene.Insert(c.captured)
	return nil
}

func (c *RemoveAnnotation) Name() string {
	return "remove annotation"
}

// TransformAnnotation records a completed move/resize/rotate gesture as a
// pair of geometry snapshots. The live shape already carries the new
// geometry when the command is recorded, so the first Execute is
// idempotent.
type TransformAnnotation struct {
	scene    *scene.Scene
	id       scene.ShapeID
	oldState scene.Snapshot
	newState scene.Snapshot
}

// NewTransformAnnotation builds the gesture command from before/after
// snapshots.
func NewTransformAnnotation(sc *scene.Scene, id scene.ShapeID, oldState, newState scene.Snapshot) *TransformAnnotation {
	return &TransformAnnotation{scene: sc, id: id, oldState: oldState, newState: newState}
}

func (c *TransformAnnotation) Execute() error {
	s, err := c.scene.Get(c.id)
	if err != nil {
		return fmt.Errorf("%s: %w", c.Name(), err)
	}
	s.Restore(c.newState)
	return nil
}

func (c *TransformAnnotation) Undo() error {
	s, err := c.scene.Get(c.id)
	if err != nil {
		return fmt.Errorf("undo %s: %w", c.Name(), err)
	}
	s.Restore(c.oldState)
	return nil
}

func (c *TransformAnnotation) Name() string {
	return "transform annotation"
}
