package render

// FarDepth is the depth every buffer entry holds after Clear. Depth runs
// from 0 at the near plane to 1 at the far plane.
const FarDepth = 1.0

// DepthBuffer is a per-pixel depth store the size of the framebuffer.
type DepthBuffer struct {
	width, height int
	data          []float64 // row-major
}

// NewDepthBuffer creates a depth buffer cleared to FarDepth.
func NewDepthBuffer(width, height int) *DepthBuffer {
	d := &DepthBuffer{}
	d.Resize(width, height)
	return d
}

// Resize reallocates the buffer only when the dimensions change. A
// reallocated buffer is cleared.
func (d *DepthBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == d.width && height == d.height && d.data != nil {
		return
	}
	d.width, d.height = width, height
	d.data = make([]float64, width*height)
	d.Clear()
}

// Size returns the buffer dimensions.
func (d *DepthBuffer) Size() (int, int) {
	return d.width, d.height
}

// Clear resets every entry to FarDepth (call before each frame).
func (d *DepthBuffer) Clear() {
	// Use copy-doubling for faster clearing
	n := len(d.data)
	if n == 0 {
		return
	}
	d.data[0] = FarDepth
	for i := 1; i < n; i *= 2 {
		copy(d.data[i:], d.data[:i])
	}
}

// At returns the depth at (x, y), or FarDepth when out of bounds.
func (d *DepthBuffer) At(x, y int) float64 {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return FarDepth
	}
	return d.data[y*d.width+x]
}

// TestAndSet stores z at (x, y) and reports true when z is strictly closer
// than the stored depth. Out-of-bounds coordinates always fail.
func (d *DepthBuffer) TestAndSet(x, y int, z float64) bool {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return false
	}
	i := y*d.width + x
	if z >= d.data[i] {
		return false
	}
	d.data[i] = z
	return true
}
