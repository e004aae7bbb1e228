package render

import (
	"github.com/taigrr/softcube/pkg/math3d"
	"github.com/taigrr/softcube/pkg/models"
)

// Rotation holds the model angles in radians. Z is applied before X.
type Rotation struct {
	X, Z float64
}

// Matrix returns the combined rotation, Z first then X.
func (r Rotation) Matrix() math3d.Mat4 {
	return math3d.RotateZ(r.Z).Mul(math3d.RotateX(r.X))
}

// ModelMatrix returns the rotation followed by the push-back translation.
func ModelMatrix(rot Rotation, offset math3d.Vec3) math3d.Mat4 {
	return rot.Matrix().Mul(math3d.Translate(offset))
}

// TransformTriangle moves a model-space triangle into camera space and
// recomputes its normal.
func TransformTriangle(t models.Triangle, model math3d.Mat4) models.Triangle {
	out := t.Transform(model)
	out.CalculateNormal()
	return out
}
