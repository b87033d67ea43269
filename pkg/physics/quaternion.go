// pkg/physics/quaternion.go
package physics

import "math"

// Quaternion represents a rotation as (w, x, y, z). Orientations are kept
// at unit length; composition uses the Hamilton product, applied right to
// left: Multiply(a, b) rotates by b first, then a.
type Quaternion struct {
	W float64
	X float64
	Y float64
	Z float64
}

// IdentityQuaternion returns the rotation that leaves vectors unchanged
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// Multiply returns the Hamilton product q * other. Not commutative.
func (q Quaternion) Multiply(other Quaternion) Quaternion {
	return Quaternion{
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
	}
}

// Conjugate returns the quaternion with its vector part negated.
// For unit quaternions this is the inverse rotation.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Norm returns the euclidean length of the quaternion
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Normalize returns the quaternion scaled to unit length. A zero
// quaternion has no direction and normalizes to the identity; reaching
// that case from a unit orientation and finite angular velocity is a
// caller precondition violation.
func (q Quaternion) Normalize() Quaternion {
	norm := q.Norm()
	if norm == 0 {
		return IdentityQuaternion()
	}
	return Quaternion{W: q.W / norm, X: q.X / norm, Y: q.Y / norm, Z: q.Z / norm}
}

// Scale multiplies all four components by a scalar. The result is
// generally not a unit quaternion; used for integration arithmetic.
func (q Quaternion) Scale(factor float64) Quaternion {
	return Quaternion{W: q.W * factor, X: q.X * factor, Y: q.Y * factor, Z: q.Z * factor}
}

// Add returns the componentwise sum. Like Scale, this is integration
// arithmetic, not a rotation composition.
func (q Quaternion) Add(other Quaternion) Quaternion {
	return Quaternion{
		W: q.W + other.W,
		X: q.X + other.X,
		Y: q.Y + other.Y,
		Z: q.Z + other.Z,
	}
}

// Rotate applies the rotation to a vector: q * (0,v) * conj(q),
// returning the vector part.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	rotated := q.Multiply(QuaternionFromVector(v)).Multiply(q.Conjugate())
	return Vector3{X: rotated.X, Y: rotated.Y, Z: rotated.Z}
}

// QuaternionFromVector embeds a vector as a pure quaternion (0, x, y, z)
func QuaternionFromVector(v Vector3) Quaternion {
	return Quaternion{X: v.X, Y: v.Y, Z: v.Z}
}

// QuaternionFromAxisAngle builds the unit quaternion rotating by angle
// radians around axis. The axis is normalized first and must be non-zero.
func QuaternionFromAxisAngle(axis Vector3, angle float64) Quaternion {
	axis = axis.Normalize()
	half := angle / 2.0
	sin := math.Sin(half)
	return Quaternion{
		W: math.Cos(half),
		X: axis.X * sin,
		Y: axis.Y * sin,
		Z: axis.Z * sin,
	}
}
