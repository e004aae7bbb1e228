package render

import (
	"github.com/taigrr/softcube/pkg/math3d"
)

// Wireframe draws screen-space outlines with the canvas line primitive.
type Wireframe struct {
	canvas Canvas
}

// NewWireframe creates a new wireframe renderer.
func NewWireframe(canvas Canvas) *Wireframe {
	return &Wireframe{canvas: canvas}
}

// DrawLine draws a line between two screen-space points, ignoring depth.
func (w *Wireframe) DrawLine(a, b math3d.Vec3, color Color) {
	w.canvas.DrawLine(int(a.X), int(a.Y), int(b.X), int(b.Y), color)
}

// DrawTriangle outlines the three edges of t.
func (w *Wireframe) DrawTriangle(t ProjectedTriangle, color Color) {
	w.DrawLine(t.P[0], t.P[1], color)
	w.DrawLine(t.P[1], t.P[2], color)
	w.DrawLine(t.P[2], t.P[0], color)
}
