// pkg/engine/game.go
package engine

import (
	"context"
	"fmt"

	"github.com/opd-ai/go-spacerace/pkg/config"
	"github.com/opd-ai/go-spacerace/pkg/course"
	"github.com/opd-ai/go-spacerace/pkg/entity"
	"github.com/opd-ai/go-spacerace/pkg/event"
	"github.com/opd-ai/go-spacerace/pkg/logging"
)

// GameStatus is the race state machine
type GameStatus int

const (
	GameStatusWaiting GameStatus = iota
	GameStatusRacing
	GameStatusCrashed
	GameStatusFinished
)

// String returns a readable status name for the HUD and logs
func (s GameStatus) String() string {
	switch s {
	case GameStatusWaiting:
		return "waiting"
	case GameStatusRacing:
		return "racing"
	case GameStatusCrashed:
		return "crashed"
	case GameStatusFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// ControlState is one frame's sampled input, normalized to [-1, 1].
// Frontends fill it from whatever device they poll; the engine never
// sees keys or axes.
type ControlState struct {
	Thrust float64
	Yaw    float64
	Pitch  float64
	Roll   float64
	Reset  bool
	Quit   bool
}

// Game owns all race state: the ship, the loaded course, the target
// gate index and the status machine. All mutation happens through
// Update on the single frame-loop goroutine.
type Game struct {
	Config   *config.GameConfig
	Ship     *entity.Ship
	Course   *course.Course
	Status   GameStatus
	EventBus *event.Bus

	// TargetGate indexes into Course.Gates; gates are passed strictly
	// in slice order.
	TargetGate int
	Elapsed    float64 // race time, seconds

	logger *logging.Logger
}

// NewGame builds a game from configuration and a loaded course
func NewGame(ctx context.Context, cfg *config.GameConfig, crs *course.Course, logger *logging.Logger) (*Game, error) {
	stats, err := cfg.Ship.ShipStats()
	if err != nil {
		return nil, fmt.Errorf("failed to build ship: %w", err)
	}
	start, err := cfg.Ship.StartVector()
	if err != nil {
		return nil, fmt.Errorf("failed to build ship: %w", err)
	}

	ship, err := entity.NewShip(1, stats, start)
	if err != nil {
		return nil, fmt.Errorf("failed to build ship: %w", err)
	}

	game := &Game{
		Config:   cfg,
		Ship:     ship,
		Course:   crs,
		Status:   GameStatusWaiting,
		EventBus: event.NewEventBus(),
		logger:   logger,
	}
	game.markTargetGate()

	logger.Info(ctx, "game created",
		"course", crs.Name,
		"gates", len(crs.Gates),
		"asteroids", len(crs.Asteroids),
		"player", cfg.PlayerName)
	game.EventBus.Publish(event.NewCourseEvent(event.CourseLoaded, game,
		crs.Name, len(crs.Gates), len(crs.Asteroids), 0))

	return game, nil
}

// Start begins the race. A course with no gates finishes immediately.
func (g *Game) Start(ctx context.Context) {
	if g.Status != GameStatusWaiting {
		return
	}
	g.EventBus.Publish(&event.BaseEvent{EventType: event.GameStarted, Source: g})
	if len(g.Course.Gates) == 0 {
		g.finish(ctx)
		return
	}
	g.Status = GameStatusRacing
	g.logger.Info(ctx, "race started", "course", g.Course.Name)
}

// Update advances the game by one frame: apply input, integrate
// physics, then run gate and collision checks. Asteroids keep tumbling
// in every state so the scene stays alive after a crash or finish.
func (g *Game) Update(ctx context.Context, deltaTime float64, in ControlState) {
	if in.Reset {
		g.Reset(ctx)
	}

	for _, asteroid := range g.Course.Asteroids {
		asteroid.Update(deltaTime)
	}

	if g.Status != GameStatusRacing {
		return
	}

	g.Ship.Control(in.Thrust, in.Yaw, in.Pitch, in.Roll)
	g.Ship.Update(deltaTime)
	g.Elapsed += deltaTime

	g.checkGatePass(ctx)
	if g.Status == GameStatusRacing {
		g.checkAsteroidCollision(ctx)
	}
}

// checkGatePass tests only the current target gate. Passing is sphere
// containment, so a gate counts from any approach direction.
func (g *Game) checkGatePass(ctx context.Context) {
	if g.TargetGate >= len(g.Course.Gates) {
		return
	}
	gate := g.Course.Gates[g.TargetGate]
	if !gate.Contains(g.Ship.GetPosition()) {
		return
	}

	gate.Passed = true
	gate.Next = false
	g.TargetGate++
	remaining := len(g.Course.Gates) - g.TargetGate

	g.logger.Info(ctx, "gate passed",
		"gate", gate.Number,
		"remaining", remaining,
		"elapsed", g.Elapsed)
	g.EventBus.Publish(event.NewGateEvent(g, uint64(gate.ID), gate.Number, remaining, g.Elapsed))

	if remaining == 0 {
		g.finish(ctx)
		return
	}
	g.markTargetGate()
}

func (g *Game) checkAsteroidCollision(ctx context.Context) {
	shipPosition := g.Ship.GetPosition()
	shipRadius := g.Ship.Stats.Radius
	for _, asteroid := range g.Course.Asteroids {
		if shipPosition.Distance(asteroid.Position) < asteroid.Size/2+shipRadius {
			g.Status = GameStatusCrashed
			g.logger.Info(ctx, "ship crashed",
				"asteroid", asteroid.ID,
				"elapsed", g.Elapsed)
			g.EventBus.Publish(event.NewCrashEvent(g, uint64(asteroid.ID), g.Elapsed))
			return
		}
	}
}

func (g *Game) finish(ctx context.Context) {
	g.Status = GameStatusFinished
	g.logger.Info(ctx, "course finished",
		"course", g.Course.Name,
		"elapsed", g.Elapsed)
	g.EventBus.Publish(event.NewCourseEvent(event.CourseFinished, g,
		g.Course.Name, len(g.Course.Gates), len(g.Course.Asteroids), g.Elapsed))
	g.EventBus.Publish(&event.BaseEvent{EventType: event.GameEnded, Source: g})
}

// Reset restarts the race: ship back at spawn, gates unpassed, clock
// zeroed. The race is immediately live again.
func (g *Game) Reset(ctx context.Context) {
	g.Ship.Reset()
	for _, gate := range g.Course.Gates {
		gate.Passed = false
		gate.Next = false
	}
	g.TargetGate = 0
	g.Elapsed = 0
	g.markTargetGate()
	if len(g.Course.Gates) > 0 {
		g.Status = GameStatusRacing
	} else {
		g.Status = GameStatusFinished
	}

	g.logger.Info(ctx, "race reset", "course", g.Course.Name)
	g.EventBus.Publish(&event.BaseEvent{EventType: event.ShipReset, Source: g})
}

// markTargetGate maintains the display flag on the current target
func (g *Game) markTargetGate() {
	if g.TargetGate < len(g.Course.Gates) {
		g.Course.Gates[g.TargetGate].Next = true
	}
}

// CurrentGate returns the gate the ship must pass next, or nil when
// the course is complete.
func (g *Game) CurrentGate() *entity.Gate {
	if g.TargetGate >= len(g.Course.Gates) {
		return nil
	}
	return g.Course.Gates[g.TargetGate]
}

// GatesPassed returns how many gates have been passed so far
func (g *Game) GatesPassed() int {
	return g.TargetGate
}

// Render draws every game object through the renderer. Frontends wrap
// this with Clear, boundary drawing and Present.
func (g *Game) Render(r entity.Renderer) {
	for _, gate := range g.Course.Gates {
		gate.Render(r)
	}
	for _, asteroid := range g.Course.Asteroids {
		asteroid.Render(r)
	}
	g.Ship.Render(r)
}
