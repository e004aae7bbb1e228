package math3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestNormalize(t *testing.T) {
	units := []Vec3{V3(1, 0, 0), V3(0, -1, 0), V3(0, 0, 1), V3(1, 1, 1).Scale(1 / math.Sqrt(3))}
	for _, n := range units {
		assert.True(t, n.Normalize().ApproxEqual(n, eps), "normalize(%v)", n)
	}

	for _, v := range []Vec3{V3(3, 4, 0), V3(-2, 7, 1e-3), V3(1e6, -1e6, 5)} {
		assert.InDelta(t, 1.0, v.Normalize().Len(), eps, "len(normalize(%v))", v)
	}

	assert.Equal(t, Zero3(), Zero3().Normalize())
}

func TestCrossAntiCommutative(t *testing.T) {
	pairs := [][2]Vec3{
		{V3(1, 0, 0), V3(0, 1, 0)},
		{V3(1, 2, 3), V3(4, 5, 6)},
		{V3(-2, 0.5, 9), V3(3, 3, -1)},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		assert.True(t, a.Cross(b).ApproxEqual(b.Cross(a).Negate(), eps), "%v x %v", a, b)
	}

	assert.Equal(t, V3(0, 0, 1), V3(1, 0, 0).Cross(V3(0, 1, 0)))
}

func TestVec3Ops(t *testing.T) {
	a, b := V3(1, 2, 3), V3(4, 5, 6)

	assert.Equal(t, V3(5, 7, 9), a.Add(b))
	assert.Equal(t, V3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, 32.0, a.Dot(b))
	assert.Equal(t, 5.0, V3(3, 4, 0).Len())
	assert.Equal(t, V3(1, 2, 3), a.Min(b))
	assert.Equal(t, V3(4, 5, 6), a.Max(b))
}

func TestMat4ZeroValue(t *testing.T) {
	var m Mat4
	// All-zero matrix yields w == 0, so no divide happens.
	assert.Equal(t, Zero3(), m.MulVec(V3(1, 2, 3)))
}

func TestRotationIdentityAtZero(t *testing.T) {
	v := V3(1.5, -2, 0.25)
	for name, m := range map[string]Mat4{
		"X": RotateX(0),
		"Z": RotateZ(0),
	} {
		assert.Equal(t, Identity(), m, "Rotate%s(0)", name)
		assert.Equal(t, v, m.MulVec(v), "Rotate%s(0) applied", name)
	}
}

func TestRotationTransposeIsInverse(t *testing.T) {
	vectors := []Vec3{V3(1, 0, 0), V3(1, 2, 3), V3(-4, 0.5, 2)}
	angles := []float64{0.3, math.Pi / 2, 2.5, -1}

	for _, a := range angles {
		for _, m := range []Mat4{RotateX(a), RotateZ(a), RotateZ(a).Mul(RotateX(a / 2))} {
			inv := m.Transpose()
			assert.True(t, m.Mul(inv).MulVec(V3(0, 0, 0)).ApproxEqual(Zero3(), eps))
			for _, v := range vectors {
				back := inv.MulVec(m.MulVec(v))
				assert.True(t, back.ApproxEqual(v, eps), "angle %v: %v -> %v", a, v, back)
				assert.InDelta(t, v.Len(), m.MulVec(v).Len(), eps)
			}
		}
	}
}

func TestRotationDirection(t *testing.T) {
	// Row vectors: RotateZ(90°) takes +X to +Y, RotateX(90°) takes +Y to +Z.
	assert.True(t, RotateZ(math.Pi/2).MulVec(V3(1, 0, 0)).ApproxEqual(V3(0, 1, 0), eps))
	assert.True(t, RotateX(math.Pi/2).MulVec(V3(0, 1, 0)).ApproxEqual(V3(0, 0, 1), eps))
}

func TestMulOrder(t *testing.T) {
	v := V3(1, 0, 0)
	// Rotate first, then translate.
	m := RotateZ(math.Pi / 2).Mul(Translate(V3(0, 0, 3)))
	assert.True(t, m.MulVec(v).ApproxEqual(V3(0, 1, 3), eps))
	assert.Equal(t, 3.0, m[3][2])

	// Translate first, then rotate.
	m = Translate(V3(0, 0, 3)).Mul(RotateZ(math.Pi / 2))
	assert.True(t, m.MulVec(v).ApproxEqual(V3(0, 1, 3), eps))
	m = Translate(V3(1, 0, 0)).Mul(RotateZ(math.Pi / 2))
	assert.True(t, m.MulVec(v).ApproxEqual(V3(0, 2, 0), eps))
}

func TestProjection(t *testing.T) {
	const w, h, far = 800.0, 600.0, 1000.0
	m := Projection(w, h, far)

	assert.InDelta(t, 0.75, m[0][0], eps)
	assert.InDelta(t, 1.0, m[1][1], eps)
	assert.InDelta(t, far/(far-DefaultNear), m[2][2], eps)
	assert.InDelta(t, -far*DefaultNear/(far-DefaultNear), m[3][2], eps)
	assert.Equal(t, 1.0, m[2][3])
	assert.Equal(t, 0.0, m[3][3])

	// The forward axis lands on the NDC origin at any depth.
	for _, z := range []float64{0.5, 3, 100} {
		ndc := m.MulVec(V3(0, 0, z))
		assert.InDelta(t, 0, ndc.X, eps)
		assert.InDelta(t, 0, ndc.Y, eps)
	}

	// Depth maps near to 0 and far to 1.
	assert.InDelta(t, 0, m.MulVec(V3(0, 0, DefaultNear)).Z, eps)
	assert.InDelta(t, 1, m.MulVec(V3(0, 0, far)).Z, eps)

	// w is the source z.
	clip := m.MulVec4(V4FromV3(V3(1, 1, 5), 1))
	assert.InDelta(t, 5, clip.W, eps)
}

func TestPerspectiveDivide(t *testing.T) {
	assert.Equal(t, V3(1, 2, 3), Vec4{2, 4, 6, 2}.PerspectiveDivide())
	assert.Equal(t, V3(2, 4, 6), Vec4{2, 4, 6, 0}.PerspectiveDivide())
}

func TestTranspose(t *testing.T) {
	var m Mat4
	m[0][3] = 7
	m[2][1] = -2

	tr := m.Transpose()
	assert.Equal(t, 7.0, tr[3][0])
	assert.Equal(t, -2.0, tr[1][2])
	assert.Equal(t, m, tr.Transpose())
}
