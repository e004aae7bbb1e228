package render

import "github.com/taigrr/softcube/pkg/math3d"

// Canvas is the drawing half of a presentation surface. Coordinates are in
// pixels with the origin at the top-left; writes outside [0, width) x
// [0, height) are dropped.
type Canvas interface {
	Size() (width, height int)
	DrawPixel(x, y int, c Color)
	DrawLine(x0, y0, x1, y1 int, c Color)
	FillPolygon(pts []math3d.Vec2, c Color)
}
