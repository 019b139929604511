package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/redmarklab/redmark/pkg/geom"
	"github.com/redmarklab/redmark/pkg/scene"
)

func whiteNRGBA(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return img
}

func TestFlattenNilBase(t *testing.T) {
	if Flatten(nil, nil) != nil {
		t.Fatalf("nil base should flatten to nil")
	}
}

func TestFlattenNoShapes(t *testing.T) {
	base := whiteNRGBA(40, 30)
	out := Flatten(base, nil)
	if out == base {
		t.Fatalf("flatten must not return the input buffer")
	}
	if !bytes.Equal(out.Pix, base.Pix) {
		t.Fatalf("no shapes should leave pixels untouched")
	}
}

func TestFlattenStrokesRect(t *testing.T) {
	base := whiteNRGBA(100, 100)
	s := scene.NewShape(geom.R(10, 10, 40, 30))
	out := Flatten(base, []*scene.Shape{&s})

	// Top edge midpoint is stroked red.
	edge := out.NRGBAAt(30, 10)
	if edge.R < 200 || edge.G > 80 {
		t.Fatalf("edge pixel got %+v, want red", edge)
	}
	// The interior stays white; shapes are outlines, not fills.
	inside := out.NRGBAAt(30, 25)
	if inside.R != 255 || inside.G != 255 || inside.B != 255 {
		t.Fatalf("interior pixel got %+v, want white", inside)
	}
	far := out.NRGBAAt(80, 80)
	if far.R != 255 || far.G != 255 || far.B != 255 {
		t.Fatalf("far pixel got %+v, want white", far)
	}
}

func TestFlattenRotatedRect(t *testing.T) {
	base := whiteNRGBA(100, 100)
	// A wide bar centered at (50, 50), rotated upright.
	s := scene.NewShape(geom.R(10, 45, 80, 10))
	s.Rotation = 90
	out := Flatten(base, []*scene.Shape{&s})

	// The rotated right edge passes through (55, 50).
	edge := out.NRGBAAt(55, 50)
	if edge.R < 200 || edge.G > 80 {
		t.Fatalf("rotated edge pixel got %+v, want red", edge)
	}
	// Where the unrotated left edge would have been is untouched.
	was := out.NRGBAAt(10, 50)
	if was.R != 255 || was.G != 255 || was.B != 255 {
		t.Fatalf("pixel at unrotated edge got %+v, want white", was)
	}
}

func TestFlattenPreservesAlpha(t *testing.T) {
	base := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			base.SetNRGBA(x, y, color.NRGBA{R: 100, G: 100, B: 100, A: 200})
		}
	}
	out := Flatten(base, nil)
	if got := out.NRGBAAt(5, 5).A; got != 200 {
		t.Fatalf("alpha got %d, want 200", got)
	}
}

func TestEncodePNG(t *testing.T) {
	data, err := EncodePNG(whiteNRGBA(8, 6))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Fatalf("decoded size got %dx%d", b.Dx(), b.Dy())
	}

	if _, err := EncodePNG(nil); err == nil {
		t.Fatalf("nil image should not encode")
	}
}

func TestThumbnailScalesDown(t *testing.T) {
	th := Thumbnail(whiteNRGBA(400, 200), 100)
	if b := th.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Fatalf("size got %dx%d, want 100x50", b.Dx(), b.Dy())
	}
	if px := th.NRGBAAt(50, 25); px.R != 255 || px.A != 255 {
		t.Fatalf("pixel got %+v, want white", px)
	}

	tall := Thumbnail(whiteNRGBA(200, 400), 100)
	if b := tall.Bounds(); b.Dx() != 50 || b.Dy() != 100 {
		t.Fatalf("tall size got %dx%d, want 50x100", b.Dx(), b.Dy())
	}
}

func TestThumbnailWithinBounds(t *testing.T) {
	th := Thumbnail(whiteNRGBA(60, 40), 100)
	if b := th.Bounds(); b.Dx() != 60 || b.Dy() != 40 {
		t.Fatalf("size got %dx%d, want 60x40", b.Dx(), b.Dy())
	}
}
