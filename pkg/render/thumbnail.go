package render

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/disintegration/imaging"
)

// Thumbnail scales img down so its longest side is maxDim, preserving
// aspect ratio. Images already within bounds are returned as a copy at
// their original size.
func Thumbnail(img image.Image, maxDim int) *image.NRGBA {
	if img == nil || maxDim <= 0 {
		return nil
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return imaging.Clone(img)
	}
	if w >= h {
		h = h * maxDim / w
		w = maxDim
	} else {
		w = w * maxDim / h
		h = maxDim
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
