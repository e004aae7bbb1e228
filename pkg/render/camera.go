package render

import (
	"github.com/taigrr/softcube/pkg/math3d"
)

// nearGuard is how far in front of the near plane a vertex at or behind it
// is pushed before projection.
const nearGuard = 0.01

// Camera is a fixed viewer looking down +Z with a perspective projection.
// Meshes are pushed Offset units along +Z before projection.
type Camera struct {
	Position math3d.Vec3

	// Projection parameters
	FOV  float64 // Field of view in degrees
	Near float64 // Near plane
	Far  float64 // Far plane

	// Offset is the push-back distance applied to every mesh.
	Offset float64

	// Cached projection, rebuilt when the viewport or parameters change
	projMatrix   math3d.Mat4
	projW, projH int
	projFOV      float64
	projNear     float64
	projFar      float64
}

// NewCamera creates a camera at the origin with the default projection.
func NewCamera() *Camera {
	return &Camera{
		Position: math3d.Zero3(),
		FOV:      math3d.DefaultFOV,
		Near:     math3d.DefaultNear,
		Far:      1000,
		Offset:   3,
	}
}

// ProjectionMatrix returns the projection for a width x height viewport.
func (c *Camera) ProjectionMatrix(width, height int) math3d.Mat4 {
	if width != c.projW || height != c.projH ||
		c.FOV != c.projFOV || c.Near != c.projNear || c.Far != c.projFar {
		c.projMatrix = math3d.Perspective(c.FOV, float64(height)/float64(width), c.Near, c.Far)
		c.projW, c.projH = width, height
		c.projFOV, c.projNear, c.projFar = c.FOV, c.Near, c.Far
	}
	return c.projMatrix
}

// ToScreen projects a camera-space point to pixel coordinates. The
// returned Z is the normalized depth in [0, 1], 0 at the near plane.
// Points at or behind the near plane are first moved just in front of it.
func (c *Camera) ToScreen(p math3d.Vec3, width, height int) math3d.Vec3 {
	if p.Z <= c.Near {
		p.Z = c.Near + nearGuard
	}

	ndc := c.ProjectionMatrix(width, height).MulVec(p)
	return math3d.V3(
		(ndc.X+1)*0.5*float64(width),
		(ndc.Y+1)*0.5*float64(height),
		clamp01(ndc.Z),
	)
}
