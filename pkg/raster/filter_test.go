package raster

import (
	"image"
	"testing"
)

func solidNRGBA(w, h int, r, g, b, a uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

func TestApplyIdentityReturnsSameBuffer(t *testing.T) {
	src := solidNRGBA(4, 4, 10, 20, 30, 255)
	out := Adjustments{}.Apply(src)
	if out != src {
		t.Fatalf("identity should return the input buffer unchanged")
	}
}

func TestApplyNil(t *testing.T) {
	if out := (Adjustments{Brightness: 10}).Apply(nil); out != nil {
		t.Fatalf("got %v, want nil", out)
	}
}

func TestApplyBrightness(t *testing.T) {
	src := solidNRGBA(2, 2, 100, 250, 0, 200)
	out := Adjustments{Brightness: 50}.Apply(src)
	if out == src {
		t.Fatalf("non-identity should allocate a new buffer")
	}
	px := out.NRGBAAt(0, 0)
	if px.R != 150 {
		t.Fatalf("R: got %d, want 150", px.R)
	}
	if px.G != 255 {
		t.Fatalf("G: got %d, want 255 (clamped)", px.G)
	}
	if px.B != 50 {
		t.Fatalf("B: got %d, want 50", px.B)
	}
	if px.A != 200 {
		t.Fatalf("A: got %d, want 200 (alpha untouched)", px.A)
	}
}

func TestApplyContrast(t *testing.T) {
	// factor = 259*(128+255)/(255*(259-128)) comes to about 2.9695.
	src := solidNRGBA(1, 1, 100, 200, 128, 255)
	out := Adjustments{Contrast: 128}.Apply(src)
	px := out.NRGBAAt(0, 0)
	if px.R != 44 {
		t.Fatalf("R: got %d, want 44", px.R)
	}
	if px.G != 255 {
		t.Fatalf("G: got %d, want 255 (clamped)", px.G)
	}
	if px.B != 128 {
		t.Fatalf("B: got %d, want 128 (midpoint fixed)", px.B)
	}
}

func TestApplyNegativeContrastCompresses(t *testing.T) {
	src := solidNRGBA(1, 1, 0, 255, 128, 255)
	out := Adjustments{Contrast: -128}.Apply(src)
	px := out.NRGBAAt(0, 0)
	if px.R != 85 {
		t.Fatalf("R: got %d, want 85", px.R)
	}
	if px.G != 170 {
		t.Fatalf("G: got %d, want 170", px.G)
	}
}

func TestApplyContrastBeforeBrightness(t *testing.T) {
	src := solidNRGBA(1, 1, 100, 0, 0, 255)
	out := Adjustments{Brightness: 10, Contrast: 128}.Apply(src)
	// Contrast takes 100 to 44.85, then brightness lands at 54.85.
	if got := out.NRGBAAt(0, 0).R; got != 54 {
		t.Fatalf("got %d, want 54", got)
	}
}

func TestAdjustmentsClamped(t *testing.T) {
	a := Adjustments{Brightness: 500, Contrast: -999}.Clamped()
	if a.Brightness != AdjustLimit || a.Contrast != -AdjustLimit {
		t.Fatalf("got %+v, want ±%d", a, AdjustLimit)
	}
}
