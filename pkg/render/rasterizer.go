package render

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/taigrr/softcube/pkg/math3d"
)

// Strategy selects how triangles are resolved against each other.
type Strategy int

const (
	// StrategyDepth fills each triangle by scanline as it is submitted,
	// testing every pixel against the depth buffer.
	StrategyDepth Strategy = iota
	// StrategyPainter queues the frame's triangles, sorts them far to near
	// and fills them without a depth test.
	StrategyPainter
)

func (s Strategy) String() string {
	switch s {
	case StrategyDepth:
		return "depth"
	case StrategyPainter:
		return "painter"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy converts a config string to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "depth", "":
		return StrategyDepth, nil
	case "painter":
		return StrategyPainter, nil
	}
	return 0, fmt.Errorf("unknown strategy %q", s)
}

// FillMode selects the painter strategy's triangle fill.
type FillMode int

const (
	// FillBarycentric tests every pixel of the bounding box with
	// barycentric coordinates.
	FillBarycentric FillMode = iota
	// FillPolygon hands the triangle to Canvas.FillPolygon.
	FillPolygon
)

func (f FillMode) String() string {
	switch f {
	case FillBarycentric:
		return "barycentric"
	case FillPolygon:
		return "polygon"
	}
	return fmt.Sprintf("FillMode(%d)", int(f))
}

// ParseFillMode converts a config string to a FillMode.
func ParseFillMode(s string) (FillMode, error) {
	switch s {
	case "barycentric", "":
		return FillBarycentric, nil
	case "polygon":
		return FillPolygon, nil
	}
	return 0, fmt.Errorf("unknown fill mode %q", s)
}

// ProjectedTriangle is a triangle in screen space: X and Y in pixels,
// Z the normalized depth.
type ProjectedTriangle struct {
	P [3]math3d.Vec3
}

// AverageDepth returns the mean depth of the three vertices.
func (t ProjectedTriangle) AverageDepth() float64 {
	return (t.P[0].Z + t.P[1].Z + t.P[2].Z) / 3
}

// ShadedTriangle pairs a projected triangle with its flat color and the
// key used by the painter sort.
type ShadedTriangle struct {
	Tri   ProjectedTriangle
	Color Color
	Depth float64
}

// Shaded tags t with c and its average depth.
func Shaded(t ProjectedTriangle, c Color) ShadedTriangle {
	return ShadedTriangle{Tri: t, Color: c, Depth: t.AverageDepth()}
}

// Rasterizer converts projected triangles into pixels on a Canvas. A frame
// is Begin, any number of Submit calls, then End.
type Rasterizer struct {
	Strategy Strategy
	Fill     FillMode

	canvas Canvas
	depth  *DepthBuffer
	queue  []ShadedTriangle
}

// NewRasterizer creates a depth-buffered rasterizer drawing into canvas.
func NewRasterizer(canvas Canvas) *Rasterizer {
	w, h := canvas.Size()
	return &Rasterizer{
		canvas: canvas,
		depth:  NewDepthBuffer(w, h),
	}
}

// Depth exposes the depth buffer.
func (r *Rasterizer) Depth() *DepthBuffer {
	return r.depth
}

// Begin starts a frame. The depth buffer follows the canvas size and is
// cleared; the painter queue is emptied.
func (r *Rasterizer) Begin() {
	w, h := r.canvas.Size()
	r.depth.Resize(w, h)
	if r.Strategy == StrategyDepth {
		r.depth.Clear()
	}
	r.queue = r.queue[:0]
}

// Submit rasterizes t immediately with StrategyDepth, or queues it with
// StrategyPainter.
func (r *Rasterizer) Submit(t ShadedTriangle) {
	if r.Strategy == StrategyPainter {
		r.queue = append(r.queue, t)
		return
	}
	r.FillTriangleDepth(t.Tri, t.Color)
}

// End finishes a frame. With StrategyPainter the queued triangles are
// drawn farthest first.
func (r *Rasterizer) End() {
	if r.Strategy != StrategyPainter {
		return
	}
	slices.SortStableFunc(r.queue, func(a, b ShadedTriangle) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
	for _, t := range r.queue {
		switch r.Fill {
		case FillPolygon:
			r.canvas.FillPolygon([]math3d.Vec2{
				math3d.XY(t.Tri.P[0]), math3d.XY(t.Tri.P[1]), math3d.XY(t.Tri.P[2]),
			}, t.Color)
		default:
			r.FillTriangleBarycentric(t.Tri, t.Color)
		}
	}
	r.queue = r.queue[:0]
}

// FillTriangleDepth fills t by scanline, interpolating depth along the
// edges and across each span. A pixel is written only when its depth is
// strictly less than the buffered value.
func (r *Rasterizer) FillTriangleDepth(t ProjectedTriangle, c Color) {
	x1, y1, z1 := int(t.P[0].X), int(t.P[0].Y), t.P[0].Z
	x2, y2, z2 := int(t.P[1].X), int(t.P[1].Y), t.P[1].Z
	x3, y3, z3 := int(t.P[2].X), int(t.P[2].Y), t.P[2].Z

	// Sort by Y, carrying X and Z along
	if y1 > y2 {
		x1, x2, y1, y2, z1, z2 = x2, x1, y2, y1, z2, z1
	}
	if y1 > y3 {
		x1, x3, y1, y3, z1, z3 = x3, x1, y3, y1, z3, z1
	}
	if y2 > y3 {
		x2, x3, y2, y3, z2, z3 = x3, x2, y3, y2, z3, z2
	}

	w, h := r.canvas.Size()
	for y := max(y1, 0); y <= min(y3, h-1); y++ {
		var xa, xb, za, zb float64
		if y <= y2 {
			xa, za = edge(x1, y1, z1, x2, y2, z2, y)
		} else {
			xa, za = edge(x2, y2, z2, x3, y3, z3, y)
		}
		xb, zb = edge(x1, y1, z1, x3, y3, z3, y)

		if xa > xb {
			xa, xb = xb, xa
			za, zb = zb, za
		}

		startX, endX := int(xa), int(xb)
		for x := max(startX, 0); x <= min(endX, w-1); x++ {
			z := za
			if endX != startX {
				s := float64(x-startX) / float64(endX-startX)
				z = za + s*(zb-za)
			}
			if r.depth.TestAndSet(x, y, z) {
				r.canvas.DrawPixel(x, y, c)
			}
		}
	}
}

// edge interpolates X and Z along the edge (xa,ya,za)-(xb,yb,zb) at row y.
// A horizontal edge holds the start values.
func edge(xa, ya int, za float64, xb, yb int, zb float64, y int) (float64, float64) {
	if yb == ya {
		return float64(xa), za
	}
	s := float64(y-ya) / float64(yb-ya)
	return float64(xa) + s*float64(xb-xa), za + s*(zb-za)
}

// FillTriangleBarycentric fills t without a depth test by checking each
// pixel of its clamped bounding box.
func (r *Rasterizer) FillTriangleBarycentric(t ProjectedTriangle, c Color) {
	p0, p1, p2 := t.P[0], t.P[1], t.P[2]
	if (p1.X-p0.X)*(p2.Y-p0.Y)-(p1.Y-p0.Y)*(p2.X-p0.X) == 0 {
		return // zero area
	}
	w, h := r.canvas.Size()

	minX := clampInt(int(math.Floor(min3(p0.X, p1.X, p2.X))), 0, w-1)
	maxX := clampInt(int(math.Ceil(max3(p0.X, p1.X, p2.X))), 0, w-1)
	minY := clampInt(int(math.Floor(min3(p0.Y, p1.Y, p2.Y))), 0, h-1)
	maxY := clampInt(int(math.Ceil(max3(p0.Y, p1.Y, p2.Y))), 0, h-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if insideTriangle(p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y, float64(x), float64(y)) {
				r.canvas.DrawPixel(x, y, c)
			}
		}
	}
}

// barycentric computes barycentric coordinates for point (px, py).
// Returns (w0, w1, w2) weights for vertices 0, 1, 2.
func barycentric(x0, y0, x1, y1, x2, y2, px, py float64) math3d.Vec3 {
	v0x, v0y := x2-x0, y2-y0
	v1x, v1y := x1-x0, y1-y0
	v2x, v2y := px-x0, py-y0

	dot00 := v0x*v0x + v0y*v0y
	dot01 := v0x*v1x + v0y*v1y
	dot02 := v0x*v2x + v0y*v2y
	dot11 := v1x*v1x + v1y*v1y
	dot12 := v1x*v2x + v1y*v2y

	invDenom := 1.0 / (dot00*dot11 - dot01*dot01)
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom

	return math3d.V3(1-u-v, v, u)
}

// insideTriangle reports u >= 0, v >= 0, u+v <= 1.
func insideTriangle(x0, y0, x1, y1, x2, y2, px, py float64) bool {
	bc := barycentric(x0, y0, x1, y1, x2, y2, px, py)
	return bc.Z >= 0 && bc.Y >= 0 && bc.Z+bc.Y <= 1
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
