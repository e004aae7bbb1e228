package render

import "github.com/taigrr/softcube/pkg/math3d"

// IsFrontFacing reports whether a triangle with outward normal n and first
// vertex p0 faces a viewer at eye. A zero normal never faces the viewer.
func IsFrontFacing(n, p0, eye math3d.Vec3) bool {
	return n.Dot(eye.Sub(p0)) > 0
}
