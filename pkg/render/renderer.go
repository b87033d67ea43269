// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-spacerace/pkg/entity"
	"github.com/opd-ai/go-spacerace/pkg/logging"
)

// NullRenderer is a no-output implementation of entity.Renderer, used
// for headless runs and as a safe fallback when no backend is selected.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger(),
	}
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {}

// RenderShip implements entity.Renderer.
func (d *NullRenderer) RenderShip(ship *entity.Ship) {
	if ship == nil {
		return
	}
	d.logger.Debug(context.Background(), "RenderShip called",
		"ship_id", ship.ID,
		"position", ship.Body.Position,
	)
}

// RenderGate implements entity.Renderer.
func (d *NullRenderer) RenderGate(gate *entity.Gate) {
	if gate == nil {
		return
	}
	d.logger.Debug(context.Background(), "RenderGate called",
		"gate_number", gate.Number,
		"passed", gate.Passed,
	)
}

// RenderAsteroid implements entity.Renderer.
func (d *NullRenderer) RenderAsteroid(asteroid *entity.Asteroid) {
	if asteroid == nil {
		return
	}
	d.logger.Debug(context.Background(), "RenderAsteroid called",
		"asteroid_id", asteroid.ID,
		"model", asteroid.Model(),
	)
}
