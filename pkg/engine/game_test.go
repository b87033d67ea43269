package engine

import (
	"context"
	"testing"

	"github.com/opd-ai/go-spacerace/pkg/config"
	"github.com/opd-ai/go-spacerace/pkg/course"
	"github.com/opd-ai/go-spacerace/pkg/entity"
	"github.com/opd-ai/go-spacerace/pkg/event"
	"github.com/opd-ai/go-spacerace/pkg/logging"
	"github.com/opd-ai/go-spacerace/pkg/physics"
)

// newTestGame builds a racing game with the ship starting at a chosen
// position and no asteroids unless the test adds some.
func newTestGame(t *testing.T, start physics.Vector3, gates []*entity.Gate) *Game {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Ship.StartPosition = "(0, 0, 0)"

	crs := course.EmptyCourse("test course")
	crs.Gates = gates

	game, err := NewGame(context.Background(), cfg, crs, logging.NewLogger())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	game.Ship.Body.Position = start
	game.Start(context.Background())
	return game
}

func gateAt(number int, position physics.Vector3, size float64) *entity.Gate {
	return entity.NewGate(entity.ID(number), number, position, physics.IdentityQuaternion(), size)
}

func TestGame_GatePassAdvancesTarget(t *testing.T) {
	// Ship inside the gate's pass sphere: distance 1 < size 800.
	game := newTestGame(t, physics.Vector3{Z: 999}, []*entity.Gate{
		gateAt(1, physics.Vector3{Z: 1000}, 800),
		gateAt(2, physics.Vector3{Z: 5000}, 800),
	})

	game.Update(context.Background(), 1.0/60, ControlState{})

	if !game.Course.Gates[0].Passed {
		t.Error("gate 1 not marked passed")
	}
	if game.TargetGate != 1 {
		t.Errorf("target gate = %d, want 1", game.TargetGate)
	}
	if game.Status != GameStatusRacing {
		t.Errorf("status = %v, want racing", game.Status)
	}
	if !game.Course.Gates[1].Next {
		t.Error("gate 2 not marked as next")
	}
}

func TestGame_OnlyTargetGateIsChecked(t *testing.T) {
	// Ship sits inside gate 2's sphere, but gate 1 is the target.
	game := newTestGame(t, physics.Vector3{Z: 5000}, []*entity.Gate{
		gateAt(1, physics.Vector3{Z: 1000}, 800),
		gateAt(2, physics.Vector3{Z: 5000}, 800),
	})

	game.Update(context.Background(), 1.0/60, ControlState{})

	if game.Course.Gates[1].Passed {
		t.Error("out-of-order gate marked passed")
	}
	if game.TargetGate != 0 {
		t.Errorf("target gate = %d, want 0", game.TargetGate)
	}
}

func TestGame_LastGateFinishesRace(t *testing.T) {
	game := newTestGame(t, physics.Vector3{Z: 999}, []*entity.Gate{
		gateAt(1, physics.Vector3{Z: 1000}, 800),
	})

	var finished []event.Event
	game.EventBus.Subscribe(event.CourseFinished, func(e event.Event) {
		finished = append(finished, e)
	})

	game.Update(context.Background(), 1.0/60, ControlState{})

	if game.Status != GameStatusFinished {
		t.Errorf("status = %v, want finished", game.Status)
	}
	if len(finished) != 1 {
		t.Errorf("received %d finish events, want 1", len(finished))
	}
}

func TestGame_AsteroidCollisionCrashes(t *testing.T) {
	// Distance 15 from the asteroid center; crash threshold is
	// size/2 + shipRadius = 100 + 15.
	game := newTestGame(t, physics.Vector3{Z: 85}, nil)
	asteroid, err := entity.NewAsteroid(10, entity.DefaultModelID,
		physics.Vector3{Z: 100}, physics.IdentityQuaternion(), 200, physics.Vector3{})
	if err != nil {
		t.Fatal(err)
	}
	game.Course.Asteroids = append(game.Course.Asteroids, asteroid)
	game.Status = GameStatusRacing

	var crashes []event.Event
	game.EventBus.Subscribe(event.ShipCrashed, func(e event.Event) {
		crashes = append(crashes, e)
	})

	game.Update(context.Background(), 1.0/60, ControlState{})

	if game.Status != GameStatusCrashed {
		t.Errorf("status = %v, want crashed", game.Status)
	}
	if len(crashes) != 1 {
		t.Fatalf("received %d crash events, want 1", len(crashes))
	}
	if crash := crashes[0].(*event.CrashEvent); crash.AsteroidID != 10 {
		t.Errorf("crash asteroid = %d, want 10", crash.AsteroidID)
	}
}

func TestGame_NoCrashOutsideThreshold(t *testing.T) {
	game := newTestGame(t, physics.Vector3{Z: -50}, nil)
	asteroid, err := entity.NewAsteroid(10, entity.DefaultModelID,
		physics.Vector3{Z: 100}, physics.IdentityQuaternion(), 200, physics.Vector3{})
	if err != nil {
		t.Fatal(err)
	}
	game.Course.Asteroids = append(game.Course.Asteroids, asteroid)
	game.Status = GameStatusRacing

	game.Update(context.Background(), 1.0/60, ControlState{})

	if game.Status != GameStatusRacing {
		t.Errorf("status = %v, want racing", game.Status)
	}
}

func TestGame_CrashFreezesShip(t *testing.T) {
	game := newTestGame(t, physics.Vector3{}, nil)
	game.Status = GameStatusCrashed
	before := game.Ship.GetPosition()

	game.Update(context.Background(), 1.0/60, ControlState{Thrust: 1})

	if game.Ship.GetPosition() != before {
		t.Error("ship moved while crashed")
	}
}

func TestGame_AsteroidsSpinWhileCrashed(t *testing.T) {
	game := newTestGame(t, physics.Vector3{}, nil)
	asteroid, err := entity.NewAsteroid(10, entity.DefaultModelID,
		physics.Vector3{Z: 5000}, physics.IdentityQuaternion(), 200, physics.Vector3{Y: 1})
	if err != nil {
		t.Fatal(err)
	}
	game.Course.Asteroids = append(game.Course.Asteroids, asteroid)
	game.Status = GameStatusCrashed

	game.Update(context.Background(), 0.5, ControlState{})

	if asteroid.Orientation == physics.IdentityQuaternion() {
		t.Error("asteroid did not spin after crash")
	}
}

func TestGame_ResetRestartsRace(t *testing.T) {
	game := newTestGame(t, physics.Vector3{Z: 999}, []*entity.Gate{
		gateAt(1, physics.Vector3{Z: 1000}, 800),
		gateAt(2, physics.Vector3{Z: 5000}, 800),
	})
	game.Update(context.Background(), 1.0/60, ControlState{})
	game.Status = GameStatusCrashed

	game.Update(context.Background(), 1.0/60, ControlState{Reset: true})

	if game.Status != GameStatusRacing {
		t.Errorf("status after reset = %v, want racing", game.Status)
	}
	if game.TargetGate != 0 || game.Elapsed > 1.0 {
		t.Errorf("reset left target=%d elapsed=%f", game.TargetGate, game.Elapsed)
	}
	if game.Course.Gates[0].Passed {
		t.Error("reset did not clear passed flags")
	}
	if !game.Course.Gates[0].Next {
		t.Error("reset did not re-mark the first gate as next")
	}
	if game.Ship.GetPosition() != (physics.Vector3{}) {
		t.Errorf("ship at %+v after reset, want spawn", game.Ship.GetPosition())
	}
}

func TestGame_EmptyCourseFinishesOnStart(t *testing.T) {
	game := newTestGame(t, physics.Vector3{}, nil)
	if game.Status != GameStatusFinished {
		t.Errorf("status = %v, want finished for an empty course", game.Status)
	}
}

func TestGame_ElapsedAccumulatesWhileRacing(t *testing.T) {
	game := newTestGame(t, physics.Vector3{}, []*entity.Gate{
		gateAt(1, physics.Vector3{Z: 100000}, 100),
	})

	for i := 0; i < 60; i++ {
		game.Update(context.Background(), 1.0/60, ControlState{})
	}
	if game.Elapsed < 0.99 || game.Elapsed > 1.01 {
		t.Errorf("elapsed = %f, want ~1.0", game.Elapsed)
	}
}

func TestGame_CurrentGate(t *testing.T) {
	game := newTestGame(t, physics.Vector3{Z: 999}, []*entity.Gate{
		gateAt(1, physics.Vector3{Z: 1000}, 800),
	})
	if gate := game.CurrentGate(); gate == nil || gate.Number != 1 {
		t.Fatalf("current gate = %v", gate)
	}
	game.Update(context.Background(), 1.0/60, ControlState{})
	if gate := game.CurrentGate(); gate != nil {
		t.Errorf("current gate after finish = %v, want nil", gate)
	}
}
