package render

import (
	"fmt"
	"image/color"
)

// Palette is ColorBrewer Set1 sampled at ten evenly spaced points; the last
// two samples share the grey end of the map.
var Palette = []color.RGBA{
	{R: 0xe4, G: 0x1a, B: 0x1c, A: 0xff},
	{R: 0x37, G: 0x7e, B: 0xb8, A: 0xff},
	{R: 0x4d, G: 0xaf, B: 0x4a, A: 0xff},
	{R: 0x98, G: 0x4e, B: 0xa3, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x00, A: 0xff},
	{R: 0xff, G: 0xff, B: 0x33, A: 0xff},
	{R: 0xa6, G: 0x56, B: 0x28, A: 0xff},
	{R: 0xf7, G: 0x81, B: 0xbf, A: 0xff},
	{R: 0x99, G: 0x99, B: 0x99, A: 0xff},
	{R: 0x99, G: 0x99, B: 0x99, A: 0xff},
}

// ColorIndex maps a 1-based running aircraft count to a palette slot.
// Colours repeat every len(Palette) aircraft.
func ColorIndex(count int) int {
	return count % len(Palette)
}

// Hex formats a palette colour as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func fade(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha * 0xff)}
}

var (
	gray      = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	black     = color.RGBA{A: 0xff}
	zoneColor = fade(gray, 0.1)
)
