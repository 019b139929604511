package scene

import "image/color"

// Stroke palette offered for annotations. Red is the traditional markup
// color and the default.
var strokeColors = map[string]color.NRGBA{
	"red":    {R: 225, G: 40, B: 40, A: 255},
	"orange": {R: 240, G: 140, B: 20, A: 255},
	"yellow": {R: 235, G: 210, B: 50, A: 255},
	"green":  {R: 60, G: 180, B: 80, A: 255},
	"blue":   {R: 60, G: 110, B: 230, A: 255},
	"white":  {R: 245, G: 245, B: 245, A: 255},
	"black":  {R: 20, G: 20, B: 20, A: 255},
}

// StrokeNames lists the palette in menu order.
var StrokeNames = []string{"red", "orange", "yellow", "green", "blue", "white", "black"}

// DefaultStroke and DefaultStrokeWidth are what new annotations get.
var DefaultStroke = strokeColors["red"]

const DefaultStrokeWidth = 2.0

// StrokeColor looks up a palette color by name, falling back to the
// default for unknown names.
func StrokeColor(name string) color.NRGBA {
	if c, ok := strokeColors[name]; ok {
		return c
	}
	return DefaultStroke
}

// Chrome colors shared by the interactive renderer.
var (
	ColorSelection    = color.NRGBA{R: 70, G: 130, B: 255, A: 255} // selected outline accent
	ColorHandleFill   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	ColorHandleStroke = color.NRGBA{R: 70, G: 130, B: 255, A: 255}
	ColorRotateHandle = color.NRGBA{R: 90, G: 200, B: 120, A: 255}
	ColorCropOverlay  = color.NRGBA{R: 0, G: 0, B: 0, A: 120} // dim outside the selection
	ColorCropBorder   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)
