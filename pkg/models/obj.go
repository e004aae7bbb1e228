package models

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/softcube/pkg/math3d"
)

// ErrNoTriangles is returned when a model file parses but yields no
// usable triangles.
var ErrNoTriangles = errors.New("no triangles")

// maxLineSize bounds a single OBJ line. Exported meshes can put very long
// face records on one line.
const maxLineSize = 16 * 1024 * 1024

// LoadOBJ loads a Wavefront OBJ file.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh, err := ParseOBJ(f, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("parse obj %s: %w", path, err)
	}
	return mesh, nil
}

// ParseOBJ reads OBJ text. Only "v" and "f" records are used; every other
// record is ignored. Face indices are 1-based and may carry texture and
// normal references ("7/2/3"), of which only the vertex index is read.
// Faces with more than three vertices are triangulated as a fan. A face
// with any index that is non-positive or beyond the vertices declared so
// far is skipped. A "v" record always declares a vertex, so numbering
// follows the file; missing or malformed coordinates read as 0.
func ParseOBJ(r io.Reader, name string) (*Mesh, error) {
	mesh := NewMesh(name)
	var verts []math3d.Vec3

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			verts = append(verts, parseVertex(fields[1:]))
		case "f":
			idx, ok := parseFace(fields[1:], len(verts))
			if !ok {
				continue
			}
			for i := 1; i+1 < len(idx); i++ {
				mesh.Add(verts[idx[0]], verts[idx[i]], verts[idx[i+1]])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	if mesh.TriangleCount() == 0 {
		return nil, ErrNoTriangles
	}
	return mesh, nil
}

// parseVertex reads up to three coordinates. A coordinate that is missing
// or does not parse, and every one after it, is 0.
func parseVertex(fields []string) math3d.Vec3 {
	var c [3]float64
	for i := range min(len(fields), 3) {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			break
		}
		c[i] = f
	}
	return math3d.V3(c[0], c[1], c[2])
}

// parseFace returns zero-based vertex indices for a face record.
func parseFace(fields []string, count int) ([]int, bool) {
	if len(fields) < 3 {
		return nil, false
	}
	idx := make([]int, 0, len(fields))
	for _, tok := range fields {
		if slash := strings.IndexByte(tok, '/'); slash >= 0 {
			tok = tok[:slash]
		}
		n, err := strconv.Atoi(tok)
		if err != nil || n <= 0 || n > count {
			return nil, false
		}
		idx = append(idx, n-1)
	}
	return idx, true
}
