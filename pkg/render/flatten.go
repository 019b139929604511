// Package render produces final pixels: annotations flattened onto the
// display frame for saving, plus PNG encoding and thumbnailing.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/redmarklab/redmark/pkg/scene"
)

// Flatten draws every shape onto a copy of base and returns the result.
// Only the annotation strokes are drawn; selection chrome, handles and
// drafts are a viewport concern and never reach the output. A nil base
// yields nil.
func Flatten(base *image.NRGBA, shapes []*scene.Shape) *image.NRGBA {
	if base == nil {
		return nil
	}
	dc := gg.NewContextForImage(base)
	for _, s := range shapes {
		strokeShape(dc, s)
	}
	return imaging.Clone(dc.Image())
}

func strokeShape(dc *gg.Context, s *scene.Shape) {
	dc.Push()
	center := s.SceneCenter()
	dc.RotateAbout(gg.Radians(s.Rotation), center.X, center.Y)
	min := s.Rect.Min.Add(s.Pos)
	dc.SetColor(s.Color)
	dc.SetLineWidth(s.StrokeWidth)
	dc.DrawRectangle(min.X, min.Y, s.Rect.W, s.Rect.H)
	dc.Stroke()
	dc.Pop()
}

// EncodePNG returns img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, fmt.Errorf("encode png: nil image")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
