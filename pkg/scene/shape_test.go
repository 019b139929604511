package scene

import (
	"math"
	"testing"

	"github.com/redmarklab/redmark/pkg/geom"
)

func pointsClose(t *testing.T, got, want geom.Point, tol float64) {
	t.Helper()
	if math.Abs(got.X-want.X) > tol || math.Abs(got.Y-want.Y) > tol {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestToSceneUnrotated(t *testing.T) {
	s := NewShape(geom.R(10, 20, 100, 50))
	s.Pos = geom.Pt(5, 7)
	got := s.ToScene(geom.Pt(10, 20))
	pointsClose(t, got, geom.Pt(15, 27), 1e-9)
}

func TestToSceneRotated(t *testing.T) {
	s := NewShape(geom.R(0, 0, 100, 50))
	s.Rotation = 90
	s.Pos = geom.Pt(10, 20)
	// Local origin is (-50,-25) from the center; rotating 90° gives
	// (25,-50), so the scene point is center + that + pos.
	got := s.ToScene(geom.Pt(0, 0))
	pointsClose(t, got, geom.Pt(85, -5), 1e-9)
}

func TestFromSceneInvertsToScene(t *testing.T) {
	s := NewShape(geom.R(30, 40, 80, 60))
	s.Rotation = 33
	s.Pos = geom.Pt(-12, 9)
	locals := []geom.Point{{X: 30, Y: 40}, {X: 70, Y: 70}, {X: 110, Y: 100}}
	for _, p := range locals {
		back := s.FromScene(s.ToScene(p))
		pointsClose(t, back, p, 1e-9)
	}
}

func TestHitTestRotated(t *testing.T) {
	s := NewShape(geom.R(0, 0, 100, 50))
	s.Rotation = 90
	if !s.HitTest(geom.Pt(70, 70)) {
		t.Fatalf("(70,70) should be inside the rotated rect")
	}
	if s.HitTest(geom.Pt(80, 0)) {
		t.Fatalf("(80,0) should be outside the rotated rect")
	}
}

func TestSceneBoundsRotated(t *testing.T) {
	s := NewShape(geom.R(0, 0, 100, 50))
	s.Rotation = 90
	b := s.SceneBounds()
	want := geom.R(25, -25, 50, 100)
	if math.Abs(b.Min.X-want.Min.X) > 1e-9 || math.Abs(b.Min.Y-want.Min.Y) > 1e-9 ||
		math.Abs(b.W-want.W) > 1e-9 || math.Abs(b.H-want.H) > 1e-9 {
		t.Fatalf("got %+v, want %+v", b, want)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewShape(geom.R(1, 2, 30, 40))
	s.Rotation = 15
	s.Pos = geom.Pt(3, 4)
	snap := s.Snapshot()

	s.Rect = geom.R(9, 9, 99, 99)
	s.Rotation = 90
	s.Pos = geom.Pt(0, 0)
	s.Restore(snap)

	if s.Rect != geom.R(1, 2, 30, 40) || s.Rotation != 15 || s.Pos != geom.Pt(3, 4) {
		t.Fatalf("restore gave %+v", s)
	}
}

func TestSnapshotEqualWithin(t *testing.T) {
	a := Snapshot{Rect: geom.R(0, 0, 100, 50), Rotation: 10, Pos: geom.Pt(5, 5)}
	b := a
	b.Pos.X += 0.05
	if !a.EqualWithin(b, ModifyTolerance) {
		t.Fatalf("0.05 drift should be within tolerance")
	}
	b.Rotation += 0.2
	if a.EqualWithin(b, ModifyTolerance) {
		t.Fatalf("0.2 rotation change should exceed tolerance")
	}
}
