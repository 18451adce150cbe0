package viz

import "image/color"

// palette is the fixed 10-color cycle nets are assigned to, in order of
// net-scheduling order, wrapping around past the tenth net.
var palette = []color.RGBA{
	{R: 0xFF, G: 0xCC, B: 0xCC, A: 0xFF},
	{R: 0xCC, G: 0xFF, B: 0xFF, A: 0xFF},
	{R: 0xCC, G: 0xFF, B: 0xCC, A: 0xFF},
	{R: 0xFF, G: 0xCC, B: 0x99, A: 0xFF},
	{R: 0xD9, G: 0xB3, B: 0xFF, A: 0xFF},
	{R: 0xF2, G: 0xB3, B: 0xB3, A: 0xFF},
	{R: 0xFF, G: 0xCC, B: 0xE5, A: 0xFF},
	{R: 0xD9, G: 0xD9, B: 0xFF, A: 0xFF},
	{R: 0xB3, G: 0xFF, B: 0xCC, A: 0xFF},
	{R: 0xC9, G: 0xC9, B: 0xFF, A: 0xFF},
}

func colorFor(netIndex int) color.RGBA {
	return palette[netIndex%len(palette)]
}

var obstacleColor = color.RGBA{A: 0xFF} // black
var viaColor = color.RGBA{A: 0xFF}      // black
var sourceColor = color.RGBA{G: 0x80, A: 0xFF}
var targetColor = color.RGBA{R: 0xFF, A: 0xFF}
