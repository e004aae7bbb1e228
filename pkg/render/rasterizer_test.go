package render

import (
	"math"
	"testing"

	"github.com/taigrr/softcube/pkg/math3d"
)

// createTestRasterizer creates a rasterizer for testing.
func createTestRasterizer(width, height int, s Strategy) (*Rasterizer, *Framebuffer) {
	fb := NewFramebuffer(width, height)
	fb.Clear(ColorBlack)
	r := NewRasterizer(fb)
	r.Strategy = s
	return r, fb
}

// overlapping returns two triangles covering the same pixels at different
// depths.
func overlapping() (near, far ProjectedTriangle) {
	near = ProjectedTriangle{P: [3]math3d.Vec3{{X: 10, Y: 10, Z: 0.3}, {X: 90, Y: 10, Z: 0.3}, {X: 50, Y: 90, Z: 0.3}}}
	far = ProjectedTriangle{P: [3]math3d.Vec3{{X: 10, Y: 10, Z: 0.6}, {X: 90, Y: 10, Z: 0.6}, {X: 50, Y: 90, Z: 0.6}}}
	return near, far
}

func countColor(fb *Framebuffer, c Color) int {
	n := 0
	for _, p := range fb.Pixels {
		if p == c {
			n++
		}
	}
	return n
}

func TestBarycentric(t *testing.T) {
	// Test barycentric coordinates at triangle vertices
	tests := []struct {
		name     string
		px, py   float64
		expected math3d.Vec3
	}{
		{"vertex 0", 0, 0, math3d.V3(1, 0, 0)},
		{"vertex 1", 1, 0, math3d.V3(0, 1, 0)},
		{"vertex 2", 0, 1, math3d.V3(0, 0, 1)},
		{"centroid", 1.0 / 3, 1.0 / 3, math3d.V3(1.0/3, 1.0/3, 1.0/3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Triangle: (0,0), (1,0), (0,1)
			bc := barycentric(0, 0, 1, 0, 0, 1, tc.px, tc.py)
			if !bc.ApproxEqual(tc.expected, 0.001) {
				t.Errorf("barycentric(%v, %v) = %v, want %v", tc.px, tc.py, bc, tc.expected)
			}
		})
	}

	t.Run("outside triangle", func(t *testing.T) {
		if insideTriangle(0, 0, 1, 0, 0, 1, -1, -1) {
			t.Error("(-1, -1) should be outside")
		}
		if insideTriangle(0, 0, 1, 0, 0, 1, 0.75, 0.75) {
			t.Error("(0.75, 0.75) should be outside")
		}
	})
}

func TestDepthMonotonicity(t *testing.T) {
	near, far := overlapping()
	red, blue := RGB(255, 0, 0), RGB(0, 0, 255)

	orders := []struct {
		name  string
		first ShadedTriangle
		then  ShadedTriangle
	}{
		{"near first", Shaded(near, red), Shaded(far, blue)},
		{"far first", Shaded(far, blue), Shaded(near, red)},
	}

	for _, strategy := range []Strategy{StrategyDepth, StrategyPainter} {
		for _, tc := range orders {
			t.Run(strategy.String()+"/"+tc.name, func(t *testing.T) {
				r, fb := createTestRasterizer(100, 100, strategy)
				r.Begin()
				r.Submit(tc.first)
				r.Submit(tc.then)
				r.End()

				if got := fb.GetPixel(50, 40); got != red {
					t.Errorf("center pixel = %v, want nearer color %v", got, red)
				}
				if n := countColor(fb, blue); n != 0 {
					t.Errorf("%d pixels show the farther triangle", n)
				}
			})
		}
	}
}

func TestFillTriangleDepthUpdatesBuffer(t *testing.T) {
	r, fb := createTestRasterizer(100, 100, StrategyDepth)
	near, _ := overlapping()

	r.Begin()
	r.FillTriangleDepth(near, ColorWhite)

	if got := r.Depth().At(50, 40); math.Abs(got-0.3) > 1e-9 {
		t.Errorf("depth at center = %v, want 0.3", got)
	}
	if got := r.Depth().At(1, 95); got != FarDepth {
		t.Errorf("depth outside triangle = %v, want %v", got, FarDepth)
	}
	if countColor(fb, ColorWhite) == 0 {
		t.Error("triangle should produce pixels")
	}

	// A new frame resets the buffer.
	r.Begin()
	if got := r.Depth().At(50, 40); got != FarDepth {
		t.Errorf("depth after Begin = %v, want %v", got, FarDepth)
	}
}

func TestFillTriangleDepthInterpolatesZ(t *testing.T) {
	r, _ := createTestRasterizer(101, 101, StrategyDepth)

	// Depth runs from 0 on the left edge to 1 on the right.
	tri := ProjectedTriangle{P: [3]math3d.Vec3{{X: 0, Y: 0, Z: 0}, {X: 100, Y: 100, Z: 1}, {X: 0, Y: 100, Z: 0}}}
	r.Begin()
	r.FillTriangleDepth(tri, ColorWhite)

	left, mid := r.Depth().At(0, 100), r.Depth().At(50, 100)
	if left != 0 {
		t.Errorf("left depth = %v, want 0", left)
	}
	if math.Abs(mid-0.5) > 1e-9 {
		t.Errorf("mid depth = %v, want 0.5", mid)
	}
}

func TestFillClipsToViewport(t *testing.T) {
	huge := ProjectedTriangle{P: [3]math3d.Vec3{{X: -500, Y: -500, Z: 0.5}, {X: 500, Y: -500, Z: 0.5}, {X: 0, Y: 900, Z: 0.5}}}

	for _, strategy := range []Strategy{StrategyDepth, StrategyPainter} {
		t.Run(strategy.String(), func(t *testing.T) {
			r, fb := createTestRasterizer(20, 10, strategy)
			r.Begin()
			r.Submit(Shaded(huge, ColorWhite)) // must not panic
			r.End()

			if n := countColor(fb, ColorWhite); n != 20*10 {
				t.Errorf("covered %d pixels, want %d", n, 20*10)
			}
		})
	}
}

func TestDegenerateTriangle(t *testing.T) {
	line := ProjectedTriangle{P: [3]math3d.Vec3{{X: 5, Y: 5, Z: 0.5}, {X: 10, Y: 10, Z: 0.5}, {X: 15, Y: 15, Z: 0.5}}}

	r, fb := createTestRasterizer(20, 20, StrategyPainter)
	r.Begin()
	r.Submit(Shaded(line, ColorWhite))
	r.End()

	if n := countColor(fb, ColorWhite); n != 0 {
		t.Errorf("zero-area triangle covered %d pixels", n)
	}
}

func TestPainterSortsFarthestFirst(t *testing.T) {
	r, fb := createTestRasterizer(100, 100, StrategyPainter)
	near, far := overlapping()

	r.Begin()
	r.Submit(Shaded(near, ColorWhite))
	r.Submit(Shaded(far, ColorGray))
	// Nothing is drawn before End.
	if n := countColor(fb, ColorBlack); n != len(fb.Pixels) {
		t.Fatalf("painter drew %d pixels before End", len(fb.Pixels)-n)
	}
	r.End()

	if got := fb.GetPixel(50, 40); got != ColorWhite {
		t.Errorf("center pixel = %v, want %v", got, ColorWhite)
	}
}

func TestPainterPolygonFill(t *testing.T) {
	r, fb := createTestRasterizer(100, 100, StrategyPainter)
	r.Fill = FillPolygon
	near, far := overlapping()

	r.Begin()
	r.Submit(Shaded(near, ColorWhite))
	r.Submit(Shaded(far, ColorGray))
	r.End()

	if got := fb.GetPixel(50, 40); got != ColorWhite {
		t.Errorf("center pixel = %v, want %v", got, ColorWhite)
	}
	if got := fb.GetPixel(5, 95); got != ColorBlack {
		t.Errorf("pixel outside = %v, want background", got)
	}
}

func TestParseEnums(t *testing.T) {
	for _, s := range []Strategy{StrategyDepth, StrategyPainter} {
		got, err := ParseStrategy(s.String())
		if err != nil || got != s {
			t.Errorf("ParseStrategy(%q) = %v, %v", s.String(), got, err)
		}
	}
	for _, f := range []FillMode{FillBarycentric, FillPolygon} {
		got, err := ParseFillMode(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFillMode(%q) = %v, %v", f.String(), got, err)
		}
	}
	if _, err := ParseStrategy("zbuffer"); err == nil {
		t.Error("unknown strategy should fail")
	}
	if _, err := ParseFillMode("spans"); err == nil {
		t.Error("unknown fill mode should fail")
	}
}

func TestMin3Max3(t *testing.T) {
	if min3(1, 2, 3) != 1 || min3(3, 1, 2) != 1 || min3(2, 3, 1) != 1 {
		t.Error("min3 failed")
	}
	if max3(1, 2, 3) != 3 || max3(3, 1, 2) != 3 || max3(2, 3, 1) != 3 {
		t.Error("max3 failed")
	}
}

func BenchmarkFillTriangleDepth(b *testing.B) {
	r, _ := createTestRasterizer(320, 240, StrategyDepth)
	tri := ProjectedTriangle{P: [3]math3d.Vec3{{X: 10, Y: 10, Z: 0.5}, {X: 300, Y: 40, Z: 0.6}, {X: 150, Y: 230, Z: 0.4}}}

	for b.Loop() {
		r.Begin()
		r.FillTriangleDepth(tri, ColorWhite)
	}
}

func BenchmarkFillTriangleBarycentric(b *testing.B) {
	r, _ := createTestRasterizer(320, 240, StrategyPainter)
	tri := ProjectedTriangle{P: [3]math3d.Vec3{{X: 10, Y: 10, Z: 0.5}, {X: 300, Y: 40, Z: 0.6}, {X: 150, Y: 230, Z: 0.4}}}

	for b.Loop() {
		r.FillTriangleBarycentric(tri, ColorWhite)
	}
}
