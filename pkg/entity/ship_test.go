package entity

import (
	"math"
	"testing"

	"github.com/opd-ai/go-spacerace/pkg/physics"
)

func newTestShip(t *testing.T) *Ship {
	t.Helper()
	ship, err := NewShip(1, DefaultShipStats(), physics.Vector3{Z: -1000})
	if err != nil {
		t.Fatalf("NewShip: %v", err)
	}
	return ship
}

func TestNewShip_RejectsInvalidStats(t *testing.T) {
	stats := DefaultShipStats()
	stats.Mass = 0
	if _, err := NewShip(1, stats, physics.Vector3{}); err == nil {
		t.Error("expected error for zero mass")
	}

	stats = DefaultShipStats()
	stats.Inertia.Y = -1
	if _, err := NewShip(1, stats, physics.Vector3{}); err == nil {
		t.Error("expected error for negative inertia")
	}
}

func TestShip_ForwardThrustAcceleratesAlongHeading(t *testing.T) {
	ship := newTestShip(t)
	ship.Control(1, 0, 0, 0)
	ship.Update(1.0)

	// Default heading is +Z; full thrust for 1s at 20000 N / 1000 kg.
	if math.Abs(ship.Body.Velocity.Z-20) > 1e-9 {
		t.Errorf("velocity.Z = %f, want 20", ship.Body.Velocity.Z)
	}
	if ship.Body.Velocity.X != 0 || ship.Body.Velocity.Y != 0 {
		t.Errorf("thrust leaked off axis: %v", ship.Body.Velocity)
	}
}

func TestShip_ReverseThrustUsesReverseMagnitude(t *testing.T) {
	ship := newTestShip(t)
	ship.Control(-1, 0, 0, 0)
	ship.Update(1.0)

	if math.Abs(ship.Body.Velocity.Z+8) > 1e-9 {
		t.Errorf("velocity.Z = %f, want -8", ship.Body.Velocity.Z)
	}
}

func TestShip_ControlInputsAreClamped(t *testing.T) {
	ship := newTestShip(t)
	ship.Control(5, 0, 0, 0) // should behave exactly like full thrust
	ship.Update(1.0)

	if math.Abs(ship.Body.Velocity.Z-20) > 1e-9 {
		t.Errorf("velocity.Z = %f, want 20 with clamped input", ship.Body.Velocity.Z)
	}
}

func TestShip_YawTorqueTurnsTheShip(t *testing.T) {
	ship := newTestShip(t)
	for i := 0; i < 120; i++ {
		ship.Control(0, 1, 0, 0)
		ship.Update(1.0 / 60.0)
	}

	forward := ship.Body.Forward()
	if math.Abs(forward.Z-1) < 1e-3 {
		t.Errorf("ship did not yaw: forward = %v", forward)
	}
	if ship.Body.AngularVelocity.Y <= 0 {
		t.Errorf("angular velocity = %v, want positive yaw rate", ship.Body.AngularVelocity)
	}
}

func TestShip_Reset(t *testing.T) {
	ship := newTestShip(t)
	ship.Control(1, 1, 0.5, -0.25)
	for i := 0; i < 60; i++ {
		ship.Update(1.0 / 60.0)
	}

	ship.Reset()

	if ship.Body.Position != (physics.Vector3{Z: -1000}) {
		t.Errorf("position = %v, want spawn point", ship.Body.Position)
	}
	if ship.Body.Velocity != (physics.Vector3{}) || ship.Body.AngularVelocity != (physics.Vector3{}) {
		t.Error("reset did not zero motion")
	}
	if ship.Body.Orientation != physics.IdentityQuaternion() {
		t.Errorf("orientation = %v, want identity", ship.Body.Orientation)
	}
}

func TestShip_Collider(t *testing.T) {
	ship := newTestShip(t)
	collider := ship.GetCollider()
	if collider.Radius != ship.Stats.Radius {
		t.Errorf("collider radius = %f, want %f", collider.Radius, ship.Stats.Radius)
	}
	if collider.Center != ship.Body.Position {
		t.Error("collider is not centered on the ship")
	}
}

func TestShipMesh_EdgesIndexValidVertices(t *testing.T) {
	for _, edge := range ShipEdges {
		for _, idx := range edge {
			if idx < 0 || idx >= len(ShipVertices) {
				t.Fatalf("edge %v references vertex %d of %d", edge, idx, len(ShipVertices))
			}
		}
	}
}
