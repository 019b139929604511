package scene

import (
	"errors"
	"fmt"

	"github.com/redmarklab/redmark/pkg/geom"
)

// ErrShapeNotFound is returned when an operation names a shape ID that is
// not in the arena. Operating on a deleted shape is always an error, never
// a silent no-op, so stale commands surface instead of corrupting history.
var ErrShapeNotFound = errors.New("shape not found")

// Scene is the annotation arena: shapes by ID plus a z-order. The zero
// ShapeID never names a shape.
type Scene struct {
	shapes   map[ShapeID]*Shape
	order    []ShapeID
	nextID   ShapeID
	selected ShapeID
}

// New returns an empty arena.
func New() *Scene {
	return &Scene{
		shapes: make(map[ShapeID]*Shape),
		nextID: 1,
	}
}

// AllocateID hands out the next stable ID without inserting anything.
// Commands allocate before first execute so redo reuses the same ID.
func (sc *Scene) AllocateID() ShapeID {
	id := sc.nextID
	sc.nextID++
	return id
}

// Add inserts a shape, allocating an ID when the shape has none, and
// returns the ID.
func (sc *Scene) Add(s Shape) ShapeID {
	if s.ID == 0 {
		s.ID = sc.AllocateID()
	}
	sc.Insert(s)
	return s.ID
}

// Insert puts a shape with a pre-assigned ID into the arena. Inserting an
// ID already present replaces that shape's state in place (idempotent for
// command re-execution). The ID counter never moves backwards.
func (sc *Scene) Insert(s Shape) {
	if s.ID == 0 {
		return
	}
	if s.ID >= sc.nextID {
		sc.nextID = s.ID + 1
	}
	if existing, ok := sc.shapes[s.ID]; ok {
		*existing = s
		return
	}
	stored := s
	sc.shapes[s.ID] = &stored
	sc.order = append(sc.order, s.ID)
}

// Remove deletes a shape. Removing the selected shape clears the
// selection.
func (sc *Scene) Remove(id ShapeID) error {
	if _, ok := sc.shapes[id]; !ok {
		return fmt.Errorf("remove %d: %w", id, ErrShapeNotFound)
	}
	delete(sc.shapes, id)
	for i, oid := range sc.order {
		if oid == id {
			sc.order = append(sc.order[:i], sc.order[i+1:]...)
			break
		}
	}
	if sc.selected == id {
		sc.selected = 0
	}
	return nil
}

// Get returns the live shape for an ID.
func (sc *Scene) Get(id ShapeID) (*Shape, error) {
	s, ok := sc.shapes[id]
	if !ok {
		return nil, fmt.Errorf("get %d: %w", id, ErrShapeNotFound)
	}
	return s, nil
}

// Shapes returns the live shapes bottom-to-top.
func (sc *Scene) Shapes() []*Shape {
	out := make([]*Shape, 0, len(sc.order))
	for _, id := range sc.order {
		out = append(out, sc.shapes[id])
	}
	return out
}

// Len reports the number of shapes.
func (sc *Scene) Len() int {
	return len(sc.order)
}

// ShapeAt returns the topmost shape containing the scene point.
func (sc *Scene) ShapeAt(p geom.Point) (*Shape, bool) {
	for i := len(sc.order) - 1; i >= 0; i-- {
		s := sc.shapes[sc.order[i]]
		if s.HitTest(p) {
			return s, true
		}
	}
	return nil, false
}

// TranslateAll shifts every shape by d. Crop transitions use this to keep
// annotations anchored to the same image pixels.
func (sc *Scene) TranslateAll(d geom.Point) {
	for _, s := range sc.shapes {
		s.Translate(d)
	}
}

// Clear removes everything and resets the selection. IDs keep counting up.
func (sc *Scene) Clear() {
	sc.shapes = make(map[ShapeID]*Shape)
	sc.order = sc.order[:0]
	sc.selected = 0
}

// Select marks a shape as selected.
func (sc *Scene) Select(id ShapeID) error {
	if _, ok := sc.shapes[id]; !ok {
		return fmt.Errorf("select %d: %w", id, ErrShapeNotFound)
	}
	sc.selected = id
	return nil
}

// Selected returns the selected shape, if any.
func (sc *Scene) Selected() (*Shape, bool) {
	if sc.selected == 0 {
		return nil, false
	}
	s, ok := sc.shapes[sc.selected]
	return s, ok
}

// SelectedID returns the selected shape's ID, zero when none.
func (sc *Scene) SelectedID() ShapeID {
	return sc.selected
}

// ClearSelection deselects.
func (sc *Scene) ClearSelection() {
	sc.selected = 0
}

// Bounds returns the union of every shape's scene extent.
func (sc *Scene) Bounds() geom.Rect {
	var bounds geom.Rect
	for _, id := range sc.order {
		bounds = bounds.Union(sc.shapes[id].SceneBounds())
	}
	return bounds
}
