// pkg/entity/ship.go
package entity

import (
	"github.com/opd-ai/go-spacerace/pkg/physics"
)

// ShipVertices is the wedge mesh drawn for the spaceship, in local
// space with the nose along +Z.
var ShipVertices = []physics.Vector3{
	{X: 0, Y: 0, Z: 20},      // nose tip
	{X: -7.5, Y: 5, Z: -20},  // back top left
	{X: 7.5, Y: 5, Z: -20},   // back top right
	{X: 7.5, Y: -5, Z: -20},  // back bottom right
	{X: -7.5, Y: -5, Z: -20}, // back bottom left
}

// ShipEdges connects the nose to the back corners plus the back face
var ShipEdges = [][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 2}, {2, 3}, {3, 4}, {4, 1},
}

// ShipStats contains the tuning parameters for a ship
type ShipStats struct {
	Mass          float64         // kg
	Inertia       physics.Vector3 // diagonal principal moments
	ForwardThrust float64         // N along local +Z at full input
	ReverseThrust float64         // N along local -Z at full input
	YawTorque     float64         // N*m about local Y at full input
	PitchTorque   float64         // N*m about local X at full input
	RollTorque    float64         // N*m about local Z at full input
	Radius        float64         // collision radius, meters
}

// DefaultShipStats returns the stock racer tuning
func DefaultShipStats() ShipStats {
	return ShipStats{
		Mass:          1000,
		Inertia:       physics.Vector3{X: 1000, Y: 1000, Z: 1000},
		ForwardThrust: 20000,
		ReverseThrust: 8000,
		YawTorque:     1500,
		PitchTorque:   1500,
		RollTorque:    1500,
		Radius:        15,
	}
}

// Ship represents the player's spaceship: a rigid body plus tuning and
// the spawn point it resets to.
type Ship struct {
	ID    ID
	Body  *physics.Body
	Stats ShipStats

	start physics.Vector3
}

// NewShip creates a ship at the given start position. Fails if the
// stats describe an invalid rigid body (non-positive mass or inertia).
func NewShip(id ID, stats ShipStats, position physics.Vector3) (*Ship, error) {
	body, err := physics.NewBody(position, stats.Mass, stats.Inertia)
	if err != nil {
		return nil, err
	}
	return &Ship{
		ID:    id,
		Body:  body,
		Stats: stats,
		start: position,
	}, nil
}

// Control converts normalized control inputs in [-1, 1] into forces and
// torques on the body. Called at most once per frame, before Update.
func (s *Ship) Control(thrust, yaw, pitch, roll float64) {
	thrust = clamp(thrust)
	if thrust >= 0 {
		s.Body.ApplyForce(physics.Vector3{Z: thrust * s.Stats.ForwardThrust}, true)
	} else {
		s.Body.ApplyForce(physics.Vector3{Z: thrust * s.Stats.ReverseThrust}, true)
	}
	s.Body.ApplyTorque(physics.Vector3{
		X: clamp(pitch) * s.Stats.PitchTorque,
		Y: clamp(yaw) * s.Stats.YawTorque,
		Z: clamp(roll) * s.Stats.RollTorque,
	})
}

// Update advances the ship's physics by one frame
func (s *Ship) Update(deltaTime float64) {
	s.Body.Update(deltaTime)
}

// Reset returns the ship to its spawn point, at rest, facing +Z
func (s *Ship) Reset() {
	s.Body.Position = s.start
	s.Body.Velocity = physics.Vector3{}
	s.Body.AngularVelocity = physics.Vector3{}
	s.Body.Orientation = physics.IdentityQuaternion()
}

// GetID returns the ship's unique identifier
func (s *Ship) GetID() ID {
	return s.ID
}

// GetPosition returns the ship's world position
func (s *Ship) GetPosition() physics.Vector3 {
	return s.Body.Position
}

// GetCollider returns the ship's collision sphere
func (s *Ship) GetCollider() physics.Sphere {
	return physics.Sphere{Center: s.Body.Position, Radius: s.Stats.Radius}
}

// Render draws the ship through the renderer
func (s *Ship) Render(r Renderer) {
	r.RenderShip(s)
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
