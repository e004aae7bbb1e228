// Package models provides the triangle mesh representation for softcube
// together with the built-in reference meshes and file loaders.
package models

import (
	"github.com/taigrr/softcube/pkg/math3d"
)

// Triangle is an ordered triple of points. Counter-clockwise winding, seen
// from outside, makes Normal point outward.
type Triangle struct {
	P [3]math3d.Vec3

	// Normal is only valid after CalculateNormal following the most recent
	// vertex change.
	Normal math3d.Vec3
}

// Tri creates a triangle and computes its normal.
func Tri(a, b, c math3d.Vec3) Triangle {
	t := Triangle{P: [3]math3d.Vec3{a, b, c}}
	t.CalculateNormal()
	return t
}

// CalculateNormal sets Normal to normalize(cross(P1-P0, P2-P0)).
// A zero-area triangle gets a zero normal.
func (t *Triangle) CalculateNormal() {
	edge1 := t.P[1].Sub(t.P[0])
	edge2 := t.P[2].Sub(t.P[0])
	t.Normal = edge1.Cross(edge2).Normalize()
}

// Transform returns a copy with every vertex transformed as a point.
// The copy's normal is zeroed and must be recomputed.
func (t Triangle) Transform(m math3d.Mat4) Triangle {
	return Triangle{P: [3]math3d.Vec3{
		m.MulVec(t.P[0]),
		m.MulVec(t.P[1]),
		m.MulVec(t.P[2]),
	}}
}

// Mesh is an ordered sequence of triangles plus a position offset.
type Mesh struct {
	Name      string
	Triangles []Triangle

	// Position is added to the render offset when the mesh is drawn.
	Position math3d.Vec3
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:      name,
		Triangles: make([]Triangle, 0),
	}
}

// Add appends a triangle built from three points, computing its normal.
func (m *Mesh) Add(a, b, c math3d.Vec3) {
	m.Triangles = append(m.Triangles, Tri(a, b, c))
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Bounds returns the axis-aligned bounding box. An empty mesh returns
// two zero vectors.
func (m *Mesh) Bounds() (lo, hi math3d.Vec3) {
	if len(m.Triangles) == 0 {
		return math3d.Zero3(), math3d.Zero3()
	}

	lo = m.Triangles[0].P[0]
	hi = lo
	for _, t := range m.Triangles {
		for _, p := range t.P {
			lo = lo.Min(p)
			hi = hi.Max(p)
		}
	}
	return lo, hi
}

// Normalize recenters the mesh on the origin and scales it so its largest
// extent equals size. Loaded models arrive in arbitrary units.
func (m *Mesh) Normalize(size float64) {
	lo, hi := m.Bounds()
	ext := hi.Sub(lo)
	largest := max(ext.X, ext.Y, ext.Z)
	if largest == 0 {
		return
	}

	center := lo.Add(hi).Scale(0.5)
	xf := math3d.Translate(center.Negate()).Mul(math3d.Scale(math3d.V3(
		size/largest, size/largest, size/largest,
	)))
	for i, t := range m.Triangles {
		m.Triangles[i] = t.Transform(xf)
		m.Triangles[i].CalculateNormal()
	}
}
