// pkg/entity/gate.go
package entity

import (
	"github.com/opd-ai/go-spacerace/pkg/physics"
)

var gateEdges = [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}

// Gate is one race gate in the course. Gates are visited in increasing
// Number order; Passed is set during play, Next is a derived display
// flag marking the current target and is never persisted.
type Gate struct {
	ID          ID
	Number      int
	Position    physics.Vector3
	Orientation physics.Quaternion
	Size        float64 // radius of the opening, meters
	Passed      bool
	Next        bool

	vertices []physics.Vector3
}

// NewGate creates a gate with a square wireframe sized to its opening
func NewGate(id ID, number int, position physics.Vector3, orientation physics.Quaternion, size float64) *Gate {
	gate := &Gate{
		ID:          id,
		Number:      number,
		Position:    position,
		Orientation: orientation,
		Size:        size,
	}
	gate.rebuildMesh()
	return gate
}

// SetSize changes the opening radius and rebuilds the mesh
func (g *Gate) SetSize(size float64) {
	g.Size = size
	g.rebuildMesh()
}

func (g *Gate) rebuildMesh() {
	s := g.Size
	g.vertices = []physics.Vector3{
		{X: -s, Y: -s}, {X: s, Y: -s}, {X: s, Y: s}, {X: -s, Y: s},
	}
}

// Vertices returns the gate's local-space mesh vertices
func (g *Gate) Vertices() []physics.Vector3 {
	return g.vertices
}

// Edges returns the gate's mesh edge index pairs
func (g *Gate) Edges() [][2]int {
	return gateEdges
}

// Contains reports whether a point is within the gate's pass radius.
// This is a sphere containment test, not a plane crossing: a ship may
// pass a gate from any direction.
func (g *Gate) Contains(point physics.Vector3) bool {
	return physics.Sphere{Center: g.Position, Radius: g.Size}.Contains(point)
}

// GetID returns the gate's unique identifier
func (g *Gate) GetID() ID {
	return g.ID
}

// GetPosition returns the gate's world position
func (g *Gate) GetPosition() physics.Vector3 {
	return g.Position
}

// GetCollider returns the gate's pass sphere
func (g *Gate) GetCollider() physics.Sphere {
	return physics.Sphere{Center: g.Position, Radius: g.Size}
}

// Update is a no-op; gates do not move during play
func (g *Gate) Update(deltaTime float64) {}

// Render draws the gate through the renderer
func (g *Gate) Render(r Renderer) {
	r.RenderGate(g)
}
