// Package raster holds the pixel-level side of the editor: image sources,
// the brightness/contrast pipeline, and crop extraction. Buffers are
// *image.NRGBA throughout, which is what the imaging decoder produces.
package raster

import (
	"image"
)

// AdjustLimit bounds both brightness and contrast.
const AdjustLimit = 128

// Adjustments are the display filter parameters. Zero value is identity.
type Adjustments struct {
	Brightness int
	Contrast   int
}

// Clamped returns the adjustments with both values folded into
// [-AdjustLimit, AdjustLimit].
func (a Adjustments) Clamped() Adjustments {
	clamp := func(v int) int {
		if v < -AdjustLimit {
			return -AdjustLimit
		}
		if v > AdjustLimit {
			return AdjustLimit
		}
		return v
	}
	return Adjustments{Brightness: clamp(a.Brightness), Contrast: clamp(a.Contrast)}
}

// IsIdentity reports whether applying would change nothing.
func (a Adjustments) IsIdentity() bool {
	return a.Brightness == 0 && a.Contrast == 0
}

// lut builds the 256-entry channel lookup table. Contrast is applied first
// with the 259-factor curve, then brightness, with a single final clamp.
func (a Adjustments) lut() [256]uint8 {
	var t [256]uint8
	f := 259.0 * float64(a.Contrast+255) / (255.0 * float64(259-a.Contrast))
	for v := 0; v < 256; v++ {
		out := (float64(v)-128.0)*f + 128.0 + float64(a.Brightness)
		if out < 0 {
			out = 0
		}
		if out > 255 {
			out = 255
		}
		t[v] = uint8(out)
	}
	return t
}

// Apply returns src with the adjustments applied to the RGB channels. Alpha
// is never touched. The identity case returns src itself with no copy; a
// nil source stays nil.
func (a Adjustments) Apply(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	a = a.Clamped()
	if a.IsIdentity() {
		return src
	}
	t := a.lut()
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		si := src.PixOffset(b.Min.X, y)
		di := dst.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Pix[di+0] = t[src.Pix[si+0]]
			dst.Pix[di+1] = t[src.Pix[si+1]]
			dst.Pix[di+2] = t[src.Pix[si+2]]
			dst.Pix[di+3] = src.Pix[si+3]
			si += 4
			di += 4
		}
	}
	return dst
}
