package driver

import (
	"strings"

	"github.com/taigrr/softcube/pkg/models"
)

// ModelTetrahedron selects the built-in tetrahedron in scene.model.
const ModelTetrahedron = "tetrahedron"

// LoadScene returns the mesh named by scene.model: a built-in shape, a
// model file, or the unit cube. A model file is recentered and scaled to
// unit size so it fits the camera like the cube does. A file that fails to
// load yields the cube together with the error so the caller can warn and
// continue.
func LoadScene(model string) (*models.Mesh, error) {
	if strings.EqualFold(model, ModelTetrahedron) {
		return models.NewTetrahedron(1), nil
	}
	if model == "" {
		return models.NewCube(1), nil
	}
	mesh, err := models.LoadOrCube(model)
	if err != nil {
		return mesh, err
	}
	mesh.Normalize(1)
	return mesh, nil
}
