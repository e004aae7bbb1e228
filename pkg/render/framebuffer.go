// Package render implements the softcube geometry pipeline: transform,
// backface culling, flat Lambertian shading and triangle rasterization into
// a Canvas.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/vector"

	"github.com/taigrr/softcube/pkg/math3d"
)

// coverageThreshold is the alpha at which a polygon fill covers a pixel.
// Coverage is thresholded, not blended, so fills stay aliased.
const coverageThreshold = 0x80

// Framebuffer is an in-memory RGBA canvas. Surfaces draw into one and
// blit it on Present.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []color.RGBA // Row-major pixel data

	poly *vector.Rasterizer
	mask *image.Alpha
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{}
	fb.Resize(width, height)
	return fb
}

// Resize reallocates the pixel store when the dimensions change.
func (fb *Framebuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == fb.Width && height == fb.Height && fb.Pixels != nil {
		return
	}
	fb.Width = width
	fb.Height = height
	fb.Pixels = make([]color.RGBA, width*height)
	fb.poly = nil
	fb.mask = nil
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (int, int) {
	return fb.Width, fb.Height
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	n := len(fb.Pixels)
	if n == 0 {
		return
	}
	fb.Pixels[0] = c
	for i := 1; i < n; i *= 2 {
		copy(fb.Pixels[i:], fb.Pixels[:i])
	}
}

// DrawPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) DrawPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.DrawPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// FillPolygon fills a closed polygon. The outline is scan-converted by
// x/image/vector into a coverage mask; pixels at least half covered are
// painted with c.
func (fb *Framebuffer) FillPolygon(pts []math3d.Vec2, c color.RGBA) {
	if len(pts) < 3 || fb.Width == 0 || fb.Height == 0 {
		return
	}

	if fb.poly == nil {
		fb.poly = vector.NewRasterizer(fb.Width, fb.Height)
		fb.mask = image.NewAlpha(image.Rect(0, 0, fb.Width, fb.Height))
	} else {
		fb.poly.Reset(fb.Width, fb.Height)
		clear(fb.mask.Pix)
	}

	fb.poly.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		fb.poly.LineTo(float32(p.X), float32(p.Y))
	}
	fb.poly.ClosePath()

	bounds := fb.mask.Bounds()
	fb.poly.Draw(fb.mask, bounds, image.Opaque, image.Point{})

	// Only visit the polygon's bounding box.
	lo, hi := polygonBounds(pts, fb.Width, fb.Height)
	for y := lo.Y; y < hi.Y; y++ {
		row := fb.mask.Pix[y*fb.mask.Stride:]
		for x := lo.X; x < hi.X; x++ {
			if row[x] >= coverageThreshold {
				fb.Pixels[y*fb.Width+x] = c
			}
		}
	}
}

// polygonBounds returns the clamped pixel bounding box of pts.
func polygonBounds(pts []math3d.Vec2, width, height int) (lo, hi image.Point) {
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	lo = image.Pt(clampInt(int(minX), 0, width), clampInt(int(minY), 0, height))
	hi = image.Pt(clampInt(int(maxX)+2, 0, width), clampInt(int(maxY)+2, 0, height))
	return lo, hi
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, fb.ToImage()); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
