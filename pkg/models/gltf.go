package models

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/softcube/pkg/math3d"
)

var errNoBufferView = errors.New("accessor has no buffer view")

// LoadGLB loads a binary glTF (.glb) or JSON glTF (.gltf) file.
func LoadGLB(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh, err := meshFromDocument(doc, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return mesh, nil
}

// meshFromDocument flattens every triangle primitive of every mesh in doc
// into one triangle list. glTF front faces are counter-clockwise, which is
// already the winding Mesh expects.
func meshFromDocument(doc *gltf.Document, name string) (*Mesh, error) {
	mesh := NewMesh(name)

	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				// Lines, points and strips are not triangle soup
				continue
			}

			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := readPositions(doc, posIdx)
			if err != nil {
				return nil, fmt.Errorf("mesh %q positions: %w", m.Name, err)
			}

			var indices []int
			if prim.Indices != nil {
				indices, err = readIndices(doc, *prim.Indices)
				if err != nil {
					return nil, fmt.Errorf("mesh %q indices: %w", m.Name, err)
				}
			} else {
				indices = make([]int, len(positions))
				for i := range indices {
					indices[i] = i
				}
			}

			for i := 0; i+2 < len(indices); i += 3 {
				a, b, c := indices[i], indices[i+1], indices[i+2]
				if a >= len(positions) || b >= len(positions) || c >= len(positions) {
					continue
				}
				mesh.Add(positions[a], positions[b], positions[c])
			}
		}
	}

	if mesh.TriangleCount() == 0 {
		return nil, ErrNoTriangles
	}
	return mesh, nil
}

// accessor returns accessor idx, or an error when the index is out of range.
func accessor(doc *gltf.Document, idx int) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) || doc.Accessors[idx] == nil {
		return nil, fmt.Errorf("accessor %d out of range", idx)
	}
	return doc.Accessors[idx], nil
}

// accessorBytes returns the buffer slice an accessor reads from, its element
// stride and the element count. Every index on the way to the buffer is
// checked, since gltf.Open does not validate references.
func accessorBytes(doc *gltf.Document, idx, elemSize int) ([]byte, int, int, error) {
	acc, err := accessor(doc, idx)
	if err != nil {
		return nil, 0, 0, err
	}
	if acc.BufferView == nil {
		return nil, 0, 0, errNoBufferView
	}

	vi := *acc.BufferView
	if vi < 0 || vi >= len(doc.BufferViews) || doc.BufferViews[vi] == nil {
		return nil, 0, 0, fmt.Errorf("buffer view %d out of range", vi)
	}
	view := doc.BufferViews[vi]
	if view.Buffer < 0 || view.Buffer >= len(doc.Buffers) || doc.Buffers[view.Buffer] == nil {
		return nil, 0, 0, fmt.Errorf("buffer %d out of range", view.Buffer)
	}
	data := doc.Buffers[view.Buffer].Data
	if data == nil {
		return nil, 0, 0, errors.New("buffer has no data")
	}

	stride := view.ByteStride
	if stride == 0 {
		stride = elemSize
	}
	if acc.Count == 0 {
		return nil, stride, 0, nil
	}
	start := view.ByteOffset + acc.ByteOffset
	end := start + (acc.Count-1)*stride + elemSize
	if start < 0 || end > len(data) {
		return nil, 0, 0, fmt.Errorf("accessor %d overruns buffer", idx)
	}
	return data[start:end], stride, acc.Count, nil
}

// readPositions reads a VEC3 float accessor.
func readPositions(doc *gltf.Document, idx int) ([]math3d.Vec3, error) {
	acc, err := accessor(doc, idx)
	if err != nil {
		return nil, err
	}
	if acc.Type != gltf.AccessorVec3 || acc.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float VEC3, got %v/%v", acc.Type, acc.ComponentType)
	}

	data, stride, count, err := accessorBytes(doc, idx, 12)
	if err != nil {
		return nil, err
	}

	result := make([]math3d.Vec3, count)
	for i := range count {
		off := i * stride
		result[i] = math3d.V3(
			readFloat32(data[off:]),
			readFloat32(data[off+4:]),
			readFloat32(data[off+8:]),
		)
	}
	return result, nil
}

// readIndices reads an unsigned SCALAR accessor.
func readIndices(doc *gltf.Document, idx int) ([]int, error) {
	acc, err := accessor(doc, idx)
	if err != nil {
		return nil, err
	}
	if acc.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR indices, got %v", acc.Type)
	}

	var size int
	switch acc.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unsupported index type %v", acc.ComponentType)
	}

	data, stride, count, err := accessorBytes(doc, idx, size)
	if err != nil {
		return nil, err
	}

	result := make([]int, count)
	for i := range count {
		off := i * stride
		switch size {
		case 1:
			result[i] = int(data[off])
		case 2:
			result[i] = int(binary.LittleEndian.Uint16(data[off:]))
		case 4:
			result[i] = int(binary.LittleEndian.Uint32(data[off:]))
		}
	}
	return result, nil
}

func readFloat32(b []byte) float64 {
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
}
