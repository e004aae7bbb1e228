package models

import (
	"math"

	"github.com/taigrr/softcube/pkg/math3d"
)

// Cube face indices, in the order NewCube emits them. Triangle i belongs
// to face i/2.
const (
	FaceFront  = iota // -Z
	FaceBack          // +Z
	FaceLeft          // -X
	FaceRight         // +X
	FaceTop           // +Y
	FaceBottom        // -Y
)

// NewCube creates an axis-aligned cube centred on the origin with the given
// edge length. It has 12 triangles, two per face, wound counter-clockwise
// when seen from outside.
func NewCube(size float64) *Mesh {
	h := size / 2

	// 8 corners
	v := [8]math3d.Vec3{
		{X: -h, Y: -h, Z: -h}, // 0: left-bottom-front
		{X: h, Y: -h, Z: -h},  // 1: right-bottom-front
		{X: h, Y: h, Z: -h},   // 2: right-top-front
		{X: -h, Y: h, Z: -h},  // 3: left-top-front
		{X: -h, Y: -h, Z: h},  // 4: left-bottom-back
		{X: h, Y: -h, Z: h},   // 5: right-bottom-back
		{X: h, Y: h, Z: h},    // 6: right-top-back
		{X: -h, Y: h, Z: h},   // 7: left-top-back
	}

	// Two triangles per face, each row a quad a-b-c-d split as abc, acd.
	quads := [6][4]int{
		FaceFront:  {0, 3, 2, 1},
		FaceBack:   {4, 5, 6, 7},
		FaceLeft:   {0, 4, 7, 3},
		FaceRight:  {1, 2, 6, 5},
		FaceTop:    {3, 7, 6, 2},
		FaceBottom: {0, 1, 5, 4},
	}

	m := NewMesh("cube")
	for _, q := range quads {
		m.Add(v[q[0]], v[q[1]], v[q[2]])
		m.Add(v[q[0]], v[q[2]], v[q[3]])
	}
	return m
}

// NewTetrahedron creates a regular tetrahedron centred on the origin whose
// vertices lie on a sphere of radius size/2.
func NewTetrahedron(size float64) *Mesh {
	s := size / 2 / math.Sqrt(3)

	a := math3d.V3(s, s, s)
	b := math3d.V3(-s, -s, s)
	c := math3d.V3(-s, s, -s)
	d := math3d.V3(s, -s, -s)

	m := NewMesh("tetrahedron")
	m.Add(a, c, b)
	m.Add(a, b, d)
	m.Add(a, d, c)
	m.Add(b, c, d)
	return m
}
