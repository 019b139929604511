package command

import (
	"errors"
	"testing"

	"github.com/redmarklab/redmark/pkg/geom"
	"github.com/redmarklab/redmark/pkg/scene"
)

func TestAddAnnotationRoundTrip(t *testing.T) {
	sc := scene.New()
	h := NewHistory(0)
	cmd := NewAddAnnotation(sc, scene.NewShape(geom.R(10, 10, 40, 30)))
	if err := h.Execute(cmd); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if sc.Len() != 1 {
		t.Fatalf("scene len got %d, want 1", sc.Len())
	}
	id := cmd.ShapeID()
	if id == 0 {
		t.Fatalf("shape should have a stable id")
	}

	if err := h.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if sc.Len() != 0 {
		t.Fatalf("scene len after undo got %d, want 0", sc.Len())
	}

	if err := h.Redo(); err != nil {
		t.Fatalf("redo: %v", err)
	}
	s, err := sc.Get(id)
	if err != nil {
		t.Fatalf("shape missing after redo: %v", err)
	}
	if s.Rect != geom.R(10, 10, 40, 30) {
		t.Fatalf("rect got %+v", s.Rect)
	}
}

func TestAddAnnotationUndoAfterExternalDelete(t *testing.T) {
	sc := scene.New()
	h := NewHistory(0)
	cmd := NewAddAnnotation(sc, scene.NewShape(geom.R(0, 0, 20, 20)))
	h.Execute(cmd)

	// Something else removed the shape; the stale undo must error and
	// stay on the stack.
	if err := sc.Remove(cmd.ShapeID()); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := h.Undo(); !errors.Is(err, scene.ErrShapeNotFound) {
		t.Fatalf("got %v, want ErrShapeNotFound", err)
	}
	if !h.CanUndo() {
		t.Fatalf("failed undo should keep the command")
	}
}

func TestRemoveAnnotationRoundTrip(t *testing.T) {
	sc := scene.New()
	h := NewHistory(0)
	sh := scene.NewShape(geom.R(5, 6, 30, 30))
	sh.Rotation = 15
	id := sc.Add(sh)

	cmd := NewRemoveAnnotation(sc, id)
	if err := h.Execute(cmd); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if sc.Len() != 0 {
		t.Fatalf("scene len got %d, want 0", sc.Len())
	}

	if err := h.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	got, err := sc.Get(id)
	if err != nil {
		t.Fatalf("shape missing after undo: %v", err)
	}
	if got.Rotation != 15 || got.Rect != geom.R(5, 6, 30, 30) {
		t.Fatalf("restored shape got %+v", got)
	}
}

func TestRemoveAnnotationMissingShape(t *testing.T) {
	sc := scene.New()
	h := NewHistory(0)
	if err := h.Execute(NewRemoveAnnotation(sc, 99)); !errors.Is(err, scene.ErrShapeNotFound) {
		t.Fatalf("got %v, want ErrShapeNotFound", err)
	}
	if h.CanUndo() {
		t.Fatalf("failed execute must not be recorded")
	}
}

func TestTransformAnnotationRoundTrip(t *testing.T) {
	sc := scene.New()
	h := NewHistory(0)
	id := sc.Add(scene.NewShape(geom.R(0, 0, 40, 40)))
	s, _ := sc.Get(id)

	oldState := s.Snapshot()
	// The gesture already moved the live shape.
	s.Pos = geom.Pt(25, 10)
	s.Rotation = 45
	newState := s.Snapshot()

	if err := h.Execute(NewTransformAnnotation(sc, id, oldState, newState)); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if s.Pos != geom.Pt(25, 10) {
		t.Fatalf("execute should be idempotent, pos got %+v", s.Pos)
	}

	if err := h.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if s.Pos != (geom.Pt(0, 0)) || s.Rotation != 0 {
		t.Fatalf("undo gave pos %+v rot %v", s.Pos, s.Rotation)
	}

	if err := h.Redo(); err != nil {
		t.Fatalf("redo: %v", err)
	}
	if s.Pos != geom.Pt(25, 10) || s.Rotation != 45 {
		t.Fatalf("redo gave pos %+v rot %v", s.Pos, s.Rotation)
	}
}

func TestTransformAnnotationDeletedShape(t *testing.T) {
	sc := scene.New()
	id := sc.Add(scene.NewShape(geom.R(0, 0, 40, 40)))
	s, _ := sc.Get(id)
	oldState := s.Snapshot()
	s.Pos = geom.Pt(9, 9)
	cmd := NewTransformAnnotation(sc, id, oldState, s.Snapshot())

	sc.Remove(id)
	if err := cmd.Execute(); !errors.Is(err, scene.ErrShapeNotFound) {
		t.Fatalf("execute got %v, want ErrShapeNotFound", err)
	}
	if err := cmd.Undo(); !errors.Is(err, scene.ErrShapeNotFound) {
		t.Fatalf("undo got %v, want ErrShapeNotFound", err)
	}
}
