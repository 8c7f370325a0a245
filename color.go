package pcview

import (
	"image/color"
	"math"
)

// Color3 represents an opaque color with red, green and blue components.
// Each component is in the range [0, 1].
type Color3 struct {
	R, G, B float64
}

// Gray is the color assigned to points decoded without color data.
var Gray = Color3{R: 0.5, G: 0.5, B: 0.5}

// RGB creates a color from components in [0, 1].
func RGB(r, g, b float64) Color3 {
	return Color3{R: r, G: g, B: b}
}

// RGB8 creates a color from 8-bit components, dividing each by 255.
func RGB8(r, g, b uint8) Color3 {
	return Color3{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Scale multiplies every component by s.
func (c Color3) Scale(s float64) Color3 {
	return Color3{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Color converts Color3 to the standard color.Color interface.
func (c Color3) Color() color.Color {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// RGB255 returns the components scaled to 8 bits, clamped and rounded.
func (c Color3) RGB255() (r, g, b uint8) {
	return to255(c.R), to255(c.G), to255(c.B)
}

func to255(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
