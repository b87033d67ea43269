// pkg/entity/entity.go
package entity

import (
	"github.com/opd-ai/go-spacerace/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

// Entity is the base interface for all course objects
type Entity interface {
	GetID() ID
	GetPosition() physics.Vector3
	GetCollider() physics.Sphere
	Update(deltaTime float64)
	Render(r Renderer)
}

// Renderer draws entities for one frame. Clear begins a frame, Present
// ends it; between the two, entities are drawn in call order with no
// depth resolution.
type Renderer interface {
	Clear()
	RenderShip(ship *Ship)
	RenderGate(gate *Gate)
	RenderAsteroid(asteroid *Asteroid)
	Present()
}
