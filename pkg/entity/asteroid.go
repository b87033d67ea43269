// pkg/entity/asteroid.go
package entity

import (
	"github.com/opd-ai/go-spacerace/pkg/physics"
)

// Asteroid is an obstacle with a library-selected wireframe mesh. Size
// is a uniform scale over the model's unit-space vertices and doubles
// as the collision diameter.
type Asteroid struct {
	ID              ID
	Position        physics.Vector3
	Orientation     physics.Quaternion
	AngularVelocity physics.Vector3 // radians/sec, spins the mesh over time
	Size            float64

	model        ModelID
	baseVertices []physics.Vector3
	edges        [][2]int
	vertices     []physics.Vector3
}

// NewAsteroid creates an asteroid from a library model. Unknown model
// ids are an error; callers that want the silent-fallback behavior must
// substitute DefaultModelID themselves.
func NewAsteroid(id ID, model ModelID, position physics.Vector3, orientation physics.Quaternion,
	size float64, angularVelocity physics.Vector3,
) (*Asteroid, error) {
	asteroid := &Asteroid{
		ID:              id,
		Position:        position,
		Orientation:     orientation,
		AngularVelocity: angularVelocity,
	}
	if err := asteroid.SetModel(model); err != nil {
		return nil, err
	}
	asteroid.SetSize(size)
	return asteroid, nil
}

// SetSize updates the asteroid's size and rescales its vertices
func (a *Asteroid) SetSize(size float64) {
	a.Size = size
	a.vertices = make([]physics.Vector3, len(a.baseVertices))
	for i, v := range a.baseVertices {
		a.vertices[i] = v.Scale(size)
	}
}

// SetModel switches the asteroid to another library model, keeping its
// current size.
func (a *Asteroid) SetModel(model ModelID) error {
	if model == a.model {
		return nil
	}
	m, err := LookupModel(model)
	if err != nil {
		return err
	}
	a.model = model
	a.baseVertices = m.Vertices
	a.edges = m.Edges
	if a.Size != 0 {
		a.SetSize(a.Size)
	}
	return nil
}

// Model returns the id of the asteroid's current mesh
func (a *Asteroid) Model() ModelID {
	return a.model
}

// Vertices returns the size-scaled local-space mesh vertices
func (a *Asteroid) Vertices() []physics.Vector3 {
	return a.vertices
}

// Edges returns the mesh edge index pairs
func (a *Asteroid) Edges() [][2]int {
	return a.edges
}

// Update spins the asteroid: first-order quaternion integration of the
// angular velocity, then renormalization, same scheme as the ship body.
func (a *Asteroid) Update(deltaTime float64) {
	derivative := a.Orientation.Multiply(physics.QuaternionFromVector(a.AngularVelocity)).Scale(0.5)
	a.Orientation = a.Orientation.Add(derivative.Scale(deltaTime)).Normalize()
}

// GetID returns the asteroid's unique identifier
func (a *Asteroid) GetID() ID {
	return a.ID
}

// GetPosition returns the asteroid's world position
func (a *Asteroid) GetPosition() physics.Vector3 {
	return a.Position
}

// GetCollider returns the asteroid's collision sphere. Size is the
// mesh's unit-space scale, so the collision radius is half of it.
func (a *Asteroid) GetCollider() physics.Sphere {
	return physics.Sphere{Center: a.Position, Radius: a.Size / 2}
}

// Render draws the asteroid through the renderer
func (a *Asteroid) Render(r Renderer) {
	r.RenderAsteroid(a)
}
