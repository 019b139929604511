package geom

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func pointsClose(a, b Point) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func TestRectFromPointsNormalizes(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want Rect
	}{
		{"forward", Pt(10, 20), Pt(30, 50), R(10, 20, 20, 30)},
		{"backward", Pt(30, 50), Pt(10, 20), R(10, 20, 20, 30)},
		{"mixed", Pt(30, 20), Pt(10, 50), R(10, 20, 20, 30)},
		{"degenerate", Pt(5, 5), Pt(5, 5), R(5, 5, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RectFromPoints(tt.a, tt.b)
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectNormalized(t *testing.T) {
	r := R(100, 100, -40, -30).Normalized()
	want := R(60, 70, 40, 30)
	if r != want {
		t.Fatalf("got %+v, want %+v", r, want)
	}
}

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		r, s Rect
		want Rect
	}{
		{"overlap", R(0, 0, 100, 100), R(50, 50, 100, 100), R(50, 50, 50, 50)},
		{"contained", R(0, 0, 100, 100), R(20, 30, 10, 10), R(20, 30, 10, 10)},
		{"disjoint", R(0, 0, 10, 10), R(50, 50, 10, 10), Rect{}},
		{"touching edges", R(0, 0, 10, 10), R(10, 0, 10, 10), Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.r.Intersect(tt.s)
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := R(10, 10, 20, 20)
	if !r.Contains(Pt(10, 10)) {
		t.Fatalf("min corner should be inside")
	}
	if r.Contains(Pt(30, 30)) {
		t.Fatalf("max corner should be outside")
	}
	if !r.Contains(Pt(19.5, 29.9)) {
		t.Fatalf("interior point should be inside")
	}
}

func TestRectUnion(t *testing.T) {
	got := R(0, 0, 10, 10).Union(R(20, 20, 10, 10))
	want := R(0, 0, 30, 30)
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if got := (Rect{}).Union(R(5, 5, 1, 1)); got != R(5, 5, 1, 1) {
		t.Fatalf("union with empty got %+v", got)
	}
}

func TestRotateAbout(t *testing.T) {
	p := RotateAbout(Pt(10, 0), Pt(0, 0), 90)
	if !pointsClose(p, Pt(0, 10)) {
		t.Fatalf("got %+v, want (0,10)", p)
	}
	// Rotation about the point itself is a no-op.
	q := RotateAbout(Pt(3, 4), Pt(3, 4), 137)
	if !pointsClose(q, Pt(3, 4)) {
		t.Fatalf("got %+v, want (3,4)", q)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	tr := Transform{TranslateX: 12, TranslateY: -7, Rotate: 33, ScaleX: 2, ScaleY: 0.5}
	points := []Point{Pt(0, 0), Pt(10, 20), Pt(-5, 3.25)}
	for _, p := range points {
		back := tr.ApplyInverse(tr.Apply(p))
		if !pointsClose(back, p) {
			t.Fatalf("round trip of %+v got %+v", p, back)
		}
	}
}

func TestTransformIdentity(t *testing.T) {
	tr := NewTransform()
	p := Pt(42, -17)
	if got := tr.Apply(p); !pointsClose(got, p) {
		t.Fatalf("identity apply got %+v, want %+v", got, p)
	}
}

func TestDegreesRadians(t *testing.T) {
	if got := Degrees(math.Pi); !almostEqual(got, 180) {
		t.Fatalf("got %v, want 180", got)
	}
	if got := Radians(90); !almostEqual(got, math.Pi/2) {
		t.Fatalf("got %v, want pi/2", got)
	}
}
