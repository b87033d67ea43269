// pkg/entity/models.go
package entity

import (
	"fmt"
	"math/rand/v2"

	"github.com/opd-ai/go-spacerace/pkg/physics"
)

// ModelID selects a wireframe mesh from the asteroid model library
type ModelID string

const (
	ModelCubeSimple  ModelID = "asteroid_cube_simple"
	ModelTetrahedron ModelID = "asteroid_tetrahedron"
	ModelJagged      ModelID = "asteroid_jagged_1"
)

// DefaultModelID is the mesh used when a course file references an
// unknown model. The fallback is intentional at the load boundary only;
// LookupModel itself reports unknown ids as errors.
const DefaultModelID = ModelCubeSimple

// Model is a wireframe mesh in normalized unit space. Vertices are
// scaled by an asteroid's size; edges index into the vertex list.
type Model struct {
	Vertices []physics.Vector3
	Edges    [][2]int
}

var cubeEdges = [][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

var cubeVertices = []physics.Vector3{
	{X: -0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: -0.5, Z: -0.5},
	{X: 0.5, Y: 0.5, Z: -0.5}, {X: -0.5, Y: 0.5, Z: -0.5},
	{X: -0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: -0.5, Z: 0.5},
	{X: 0.5, Y: 0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: 0.5},
}

var tetrahedron = Model{
	Vertices: []physics.Vector3{
		{X: 0.5, Y: 0.5, Z: 0.5}, {X: -0.5, Y: -0.5, Z: 0.5},
		{X: -0.5, Y: 0.5, Z: -0.5}, {X: 0.5, Y: -0.5, Z: -0.5},
	},
	Edges: [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}},
}

// jaggedModel perturbs an enlarged cube with a fixed-seed jitter so the
// mesh looks irregular but is identical on every run.
func jaggedModel() Model {
	rng := rand.New(rand.NewPCG(42, 0))
	vertices := make([]physics.Vector3, len(cubeVertices))
	for i, v := range cubeVertices {
		vertices[i] = physics.Vector3{
			X: v.X*1.2 + (rng.Float64()*0.6 - 0.3),
			Y: v.Y*1.2 + (rng.Float64()*0.6 - 0.3),
			Z: v.Z*1.2 + (rng.Float64()*0.6 - 0.3),
		}
	}
	return Model{Vertices: vertices, Edges: cubeEdges}
}

var models = map[ModelID]Model{
	ModelCubeSimple:  {Vertices: cubeVertices, Edges: cubeEdges},
	ModelTetrahedron: tetrahedron,
	ModelJagged:      jaggedModel(),
}

// modelOrder gives a stable cycling order for the designer
var modelOrder = []ModelID{ModelCubeSimple, ModelTetrahedron, ModelJagged}

// LookupModel returns the mesh for a model id, or an error for ids the
// library does not know.
func LookupModel(id ModelID) (Model, error) {
	model, ok := models[id]
	if !ok {
		return Model{}, fmt.Errorf("unknown asteroid model %q", id)
	}
	return model, nil
}

// ModelIDs returns all known model ids in cycling order
func ModelIDs() []ModelID {
	ids := make([]ModelID, len(modelOrder))
	copy(ids, modelOrder)
	return ids
}
