package models

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned by Load for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported model format")

// Load reads a mesh from path, choosing the loader by file extension.
func Load(path string) (*Mesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return LoadOBJ(path)
	case ".glb", ".gltf":
		return LoadGLB(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// LoadOrCube loads the mesh at path. An empty path selects the unit cube.
// On failure the unit cube is returned together with the load error, so
// callers can report it and keep going.
func LoadOrCube(path string) (*Mesh, error) {
	if path == "" {
		return NewCube(1), nil
	}
	mesh, err := Load(path)
	if err != nil {
		return NewCube(1), err
	}
	return mesh, nil
}
