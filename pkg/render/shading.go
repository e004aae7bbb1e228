package render

import (
	"fmt"

	"github.com/taigrr/softcube/pkg/math3d"
)

// ShadeMode selects how a visible triangle is colored.
type ShadeMode int

const (
	// ShadeLambert colors by the clamped cosine between normal and light.
	ShadeLambert ShadeMode = iota
	// ShadePalette colors triangle i flat with FacePalette(i/2), ignoring
	// the light.
	ShadePalette
)

func (m ShadeMode) String() string {
	switch m {
	case ShadeLambert:
		return "lambert"
	case ShadePalette:
		return "palette"
	}
	return fmt.Sprintf("ShadeMode(%d)", int(m))
}

// ParseShadeMode converts a config string to a ShadeMode.
func ParseShadeMode(s string) (ShadeMode, error) {
	switch s {
	case "lambert", "":
		return ShadeLambert, nil
	case "palette":
		return ShadePalette, nil
	}
	return 0, fmt.Errorf("unknown shading mode %q", s)
}

// Light is a single directional light. Direction is the way the light
// travels, so surfaces facing -Direction are fully lit.
type Light struct {
	Direction math3d.Vec3
}

// DefaultLight shines along +Z, into the screen.
func DefaultLight() Light {
	return Light{Direction: math3d.V3(0, 0, 1)}
}

// Intensity returns the Lambertian term for normal n, clamped to [0, 1].
// No ambient or specular contribution.
func (l Light) Intensity(n math3d.Vec3) float64 {
	toLight := l.Direction.Negate().Normalize()
	return clamp01(n.Dot(toLight))
}

// Shade returns the color of triangle index i with camera-space normal n.
func (l Light) Shade(mode ShadeMode, i int, n math3d.Vec3) Color {
	if mode == ShadePalette {
		return FacePalette(i / 2)
	}
	return Gray(l.Intensity(n))
}
