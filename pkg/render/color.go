package render

import "image/color"

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack = color.RGBA{0, 0, 0, 255}
	ColorWhite = color.RGBA{255, 255, 255, 255}
	ColorGray  = color.RGBA{150, 150, 150, 255}
	ColorGreen = color.RGBA{0, 255, 0, 255}
)

// facePalette colors the six faces of the reference cube.
var facePalette = [...]Color{
	{R: 200, G: 100, B: 100, A: 255},
	{R: 100, G: 100, B: 200, A: 255},
	{R: 100, G: 200, B: 100, A: 255},
	{R: 200, G: 200, B: 100, A: 255},
	{R: 200, G: 100, B: 200, A: 255},
	{R: 100, G: 200, B: 200, A: 255},
}

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Gray returns the opaque gray for an intensity in [0, 1].
// Out-of-range intensities are clamped.
func Gray(intensity float64) Color {
	v := uint8(clamp01(intensity) * 255)
	return RGB(v, v, v)
}

// FacePalette returns the flat color for face index face. Indices past the
// palette map to gray.
func FacePalette(face int) Color {
	if face < 0 || face >= len(facePalette) {
		return ColorGray
	}
	return facePalette[face]
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
