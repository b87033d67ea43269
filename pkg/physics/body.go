// pkg/physics/body.go
package physics

import "fmt"

// Body is a rigid body with Newtonian linear and angular dynamics.
// Orientation rotates the body's local axes into world space; by
// convention local +Z is forward, +Y is up and +X is right. Angular
// velocity and torque are both expressed in the body frame.
type Body struct {
	Position        Vector3
	Velocity        Vector3
	Orientation     Quaternion
	AngularVelocity Vector3 // radians/sec, body frame
	Mass            float64
	Inertia         Vector3 // diagonal principal moments

	// Accumulated over a frame, consumed and zeroed by Update.
	force  Vector3 // world frame
	torque Vector3 // body frame
}

// NewBody creates a rigid body at the given position. Mass and every
// inertia component must be positive; dividing by a non-positive value
// during integration is never allowed to happen silently.
func NewBody(position Vector3, mass float64, inertia Vector3) (*Body, error) {
	if mass <= 0 {
		return nil, fmt.Errorf("invalid body configuration: mass must be positive, got %g", mass)
	}
	if inertia.X <= 0 || inertia.Y <= 0 || inertia.Z <= 0 {
		return nil, fmt.Errorf("invalid body configuration: inertia components must be positive, got (%g, %g, %g)",
			inertia.X, inertia.Y, inertia.Z)
	}
	return &Body{
		Position:    position,
		Orientation: IdentityQuaternion(),
		Mass:        mass,
		Inertia:     inertia,
	}, nil
}

// ApplyForce accumulates a force for the next Update call. If local is
// true the force is given in the body frame (e.g. main thruster along
// local +Z) and is rotated into world space first. Forces accumulate
// additively, so call order within a frame does not matter.
func (b *Body) ApplyForce(force Vector3, local bool) {
	if local {
		force = b.Orientation.Rotate(force)
	}
	b.force = b.force.Add(force)
}

// ApplyTorque accumulates a body-frame torque for the next Update call
func (b *Body) ApplyTorque(torque Vector3) {
	b.torque = b.torque.Add(torque)
}

// Update advances the body state by dt seconds using semi-implicit
// Euler: velocity integrates before position, angular velocity before
// orientation. The orientation derivative is 0.5 * q * (0, omega),
// integrated first-order and renormalized. Accumulated force and torque
// are consumed and reset; reusing them across frames would be a bug.
func (b *Body) Update(dt float64) {
	acceleration := b.force.Scale(1.0 / b.Mass)
	b.Velocity = b.Velocity.Add(acceleration.Scale(dt))
	b.Position = b.Position.Add(b.Velocity.Scale(dt))

	angularAcceleration := Vector3{
		X: b.torque.X / b.Inertia.X,
		Y: b.torque.Y / b.Inertia.Y,
		Z: b.torque.Z / b.Inertia.Z,
	}
	b.AngularVelocity = b.AngularVelocity.Add(angularAcceleration.Scale(dt))

	derivative := b.Orientation.Multiply(QuaternionFromVector(b.AngularVelocity)).Scale(0.5)
	b.Orientation = b.Orientation.Add(derivative.Scale(dt)).Normalize()

	b.force = Vector3{}
	b.torque = Vector3{}
}

// Forward returns the body's local +Z axis in world space
func (b *Body) Forward() Vector3 {
	return b.Orientation.Rotate(Vector3{Z: 1})
}

// Up returns the body's local +Y axis in world space
func (b *Body) Up() Vector3 {
	return b.Orientation.Rotate(Vector3{Y: 1})
}

// Right returns the body's local +X axis in world space
func (b *Body) Right() Vector3 {
	return b.Orientation.Rotate(Vector3{X: 1})
}
