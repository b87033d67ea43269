// pkg/render/camera.go
package render

import (
	"math"

	"github.com/opd-ai/go-spacerace/pkg/physics"
)

// minZoomDistance keeps the designer camera from passing through its
// own orbit target.
const minZoomDistance = 10.0

// ScreenPoint is a sub-pixel position on the output surface
type ScreenPoint struct {
	X float64
	Y float64
}

// Camera manages the viewpoint and the 3D-to-2D projection. It serves
// both the chase view (Follow) and the free-orbiting designer view
// (Orbit/Pan/Zoom).
type Camera struct {
	Position physics.Vector3
	Target   physics.Vector3 // look-at point
	Up       physics.Vector3 // world-up hint
	FOV      float64         // field of view, degrees
	Near     float64         // points closer than this are not drawn
	Width    int             // viewport width, pixels
	Height   int             // viewport height, pixels
}

// NewCamera creates a camera looking at the origin from just behind it
func NewCamera(width, height int, fov float64) *Camera {
	return &Camera{
		Position: physics.Vector3{Z: -50},
		Up:       physics.Vector3{Y: 1},
		FOV:      fov,
		Near:     0.5,
		Width:    width,
		Height:   height,
	}
}

// Follow repositions the camera behind and above a body (chase mode),
// aligning the camera's up with the body's so rolls are followed.
func (c *Camera) Follow(body *physics.Body, offsetBack, offsetUp float64) {
	c.Target = body.Position
	c.Position = body.Position.
		Add(body.Forward().Scale(-offsetBack)).
		Add(body.Up().Scale(offsetUp))
	c.Up = body.Up()
}

// ProjectPoint projects a world-space point to surface coordinates.
// Returns false for points in front of the near plane; a point at
// exactly the near-plane distance is still projected. A degenerate view
// (position equal to target, or up parallel to forward) projects
// nothing rather than producing NaNs.
func (c *Camera) ProjectPoint(point physics.Vector3) (ScreenPoint, bool) {
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	camUp := right.Cross(forward)

	// Transform into camera space.
	p := point.Sub(c.Position)
	px := p.Dot(right)
	py := p.Dot(camUp)
	pz := p.Dot(forward)

	if pz < c.Near {
		return ScreenPoint{}, false
	}

	// Perspective divide, then map [-1, 1] device coordinates onto the
	// surface. Y flips because pixel rows grow downward.
	fovRad := c.FOV * math.Pi / 180
	scale := 1 / (math.Tan(fovRad/2) * pz)
	x := px * scale
	y := py * scale

	return ScreenPoint{
		X: (x + 1) * 0.5 * float64(c.Width),
		Y: (1 - (y+1)*0.5) * float64(c.Height),
	}, true
}

// Orbit rotates the camera around its target by the given yaw and
// pitch deltas in radians (designer view).
func (c *Camera) Orbit(deltaYaw, deltaPitch float64) {
	camVec := c.Position.Sub(c.Target)
	if camVec.Length() == 0 {
		return
	}
	qYaw := physics.QuaternionFromAxisAngle(c.Up, deltaYaw)
	right := c.Up.Cross(camVec.Normalize())
	qPitch := physics.QuaternionFromAxisAngle(right, deltaPitch)
	rotation := qPitch.Multiply(qYaw)
	c.Position = c.Target.Add(rotation.Rotate(camVec))
}

// Pan slides the camera and its target along the ground plane
func (c *Camera) Pan(deltaX, deltaY float64) {
	forward := c.Target.Sub(c.Position)
	forward.Y = 0
	forward = forward.Normalize()
	right := forward.Cross(c.Up)

	move := right.Scale(-deltaX).Add(forward.Scale(deltaY))
	c.Position = c.Position.Add(move)
	c.Target = c.Target.Add(move)
}

// Zoom moves the camera toward (positive delta) or away from its
// target, stopping short of the target itself.
func (c *Camera) Zoom(delta float64) {
	direction := c.Target.Sub(c.Position)
	distance := direction.Length()
	if distance == 0 {
		return
	}
	direction = direction.Scale(1 / distance)
	newDistance := math.Max(minZoomDistance, distance-delta)
	c.Position = c.Target.Sub(direction.Scale(newDistance))
}
