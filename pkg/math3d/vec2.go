package math3d

// Vec2 represents a 2D point, used for screen-space polygons.
type Vec2 struct {
	X, Y float64
}

// XY returns the screen-space projection of v, dropping Z.
func XY(v Vec3) Vec2 {
	return Vec2{v.X, v.Y}
}
