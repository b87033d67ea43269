// Package designer implements the course editor: an in-memory scene
// of gates and asteroids with an orbiting camera, mouse picking and
// keyboard edit operations, loaded from and saved to course files.
package designer

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/opd-ai/go-spacerace/pkg/course"
	"github.com/opd-ai/go-spacerace/pkg/entity"
	"github.com/opd-ai/go-spacerace/pkg/logging"
	"github.com/opd-ai/go-spacerace/pkg/physics"
	"github.com/opd-ai/go-spacerace/pkg/render"
	"github.com/opd-ai/go-spacerace/pkg/validation"
)

// Edit step sizes and floors
const (
	DefaultGateSize     = 800.0
	DefaultAsteroidSize = 200.0

	AsteroidSizeStep = 20.0
	MinAsteroidSize  = 10.0
	GateSizeStep     = 50.0
	MinGateSize      = 50.0

	BoundaryStep = 1000.0
	MinBoundary  = 1000.0

	// PickRadius is the maximum screen distance, in pixels, between a
	// click and an object's projected center.
	PickRadius = 20.0
)

// Scene is the editable course plus editor state. Like the game, it is
// mutated only from the single frontend loop.
type Scene struct {
	Course   *course.Course
	Camera   *render.Camera
	Selected Handle
	Dirty    bool // unsaved changes

	nextID uint64
	logger *logging.Logger
}

// NewScene starts the editor on an empty course
func NewScene(width, height int, fov float64, logger *logging.Logger) *Scene {
	camera := render.NewCamera(width, height, fov)
	camera.Position = physics.Vector3{Y: 4000, Z: -16000}
	camera.Target = physics.Vector3{}
	return &Scene{
		Course: course.EmptyCourse("untitled"),
		Camera: camera,
		nextID: 1,
		logger: logger,
	}
}

func (s *Scene) allocID() uint64 {
	id := s.nextID
	s.nextID++
	return id
}

// AddGate appends a gate at the given position, numbered after the
// existing gates, and selects it.
func (s *Scene) AddGate(position physics.Vector3) Handle {
	gate := entity.NewGate(entity.ID(s.allocID()), len(s.Course.Gates)+1,
		position, physics.IdentityQuaternion(), DefaultGateSize)
	s.Course.Gates = append(s.Course.Gates, gate)
	s.Selected = Handle{Kind: KindGate, ID: uint64(gate.ID)}
	s.Dirty = true
	return s.Selected
}

// AddAsteroid places a jagged asteroid at the given position and
// selects it.
func (s *Scene) AddAsteroid(position physics.Vector3) Handle {
	asteroid, err := entity.NewAsteroid(entity.ID(s.allocID()), entity.ModelJagged,
		position, physics.IdentityQuaternion(), DefaultAsteroidSize, physics.Vector3{})
	if err != nil {
		// ModelJagged is a library constant, so this cannot fail.
		return Handle{}
	}
	s.Course.Asteroids = append(s.Course.Asteroids, asteroid)
	s.Selected = Handle{Kind: KindAsteroid, ID: uint64(asteroid.ID)}
	s.Dirty = true
	return s.Selected
}

// Populate replaces the asteroid field with a random one
func (s *Scene) Populate(rng *rand.Rand, opts course.GeneratorOptions) {
	course.PopulateAsteroids(s.Course, rng, opts)
	// Re-key the generated asteroids into this scene's id space so
	// handles stay unique across the whole session.
	for _, asteroid := range s.Course.Asteroids {
		asteroid.ID = entity.ID(s.allocID())
	}
	if !s.Selected.None() && s.Selected.Kind == KindAsteroid {
		s.Selected = Handle{}
	}
	s.Dirty = true
}

// Delete removes the selected object. Deleting a gate renumbers the
// remaining gates so the sequence stays contiguous.
func (s *Scene) Delete() {
	switch s.Selected.Kind {
	case KindGate:
		for i, gate := range s.Course.Gates {
			if uint64(gate.ID) == s.Selected.ID {
				s.Course.Gates = append(s.Course.Gates[:i], s.Course.Gates[i+1:]...)
				break
			}
		}
		s.renumberGates()
	case KindAsteroid:
		for i, asteroid := range s.Course.Asteroids {
			if uint64(asteroid.ID) == s.Selected.ID {
				s.Course.Asteroids = append(s.Course.Asteroids[:i], s.Course.Asteroids[i+1:]...)
				break
			}
		}
	default:
		return
	}
	s.Selected = Handle{}
	s.Dirty = true
}

// Pick selects the object whose projected center is nearest to the
// given screen point, within PickRadius. Returns the new selection,
// which is empty when nothing is close enough.
func (s *Scene) Pick(screenX, screenY float64) Handle {
	best := Handle{}
	bestDist := PickRadius

	consider := func(h Handle, position physics.Vector3) {
		point, visible := s.Camera.ProjectPoint(position)
		if !visible {
			return
		}
		if dist := math.Hypot(point.X-screenX, point.Y-screenY); dist <= bestDist {
			best = h
			bestDist = dist
		}
	}

	for _, gate := range s.Course.Gates {
		consider(Handle{Kind: KindGate, ID: uint64(gate.ID)}, gate.Position)
	}
	for _, asteroid := range s.Course.Asteroids {
		consider(Handle{Kind: KindAsteroid, ID: uint64(asteroid.ID)}, asteroid.Position)
	}

	s.Selected = best
	return best
}

// Move translates the selected object by a world-space delta
func (s *Scene) Move(delta physics.Vector3) {
	switch s.Selected.Kind {
	case KindGate:
		if gate := s.selectedGate(); gate != nil {
			gate.Position = gate.Position.Add(delta)
			s.Dirty = true
		}
	case KindAsteroid:
		if asteroid := s.selectedAsteroid(); asteroid != nil {
			asteroid.Position = asteroid.Position.Add(delta)
			s.Dirty = true
		}
	}
}

// Rotate spins the selected object about a world axis. The rotation is
// pre-multiplied so the axis stays world-fixed regardless of the
// object's current orientation.
func (s *Scene) Rotate(axis physics.Vector3, angle float64) {
	rotation := physics.QuaternionFromAxisAngle(axis, angle)
	switch s.Selected.Kind {
	case KindGate:
		if gate := s.selectedGate(); gate != nil {
			gate.Orientation = rotation.Multiply(gate.Orientation).Normalize()
			s.Dirty = true
		}
	case KindAsteroid:
		if asteroid := s.selectedAsteroid(); asteroid != nil {
			asteroid.Orientation = rotation.Multiply(asteroid.Orientation).Normalize()
			s.Dirty = true
		}
	}
}

// Resize grows or shrinks the selected object by one step
func (s *Scene) Resize(grow bool) {
	switch s.Selected.Kind {
	case KindGate:
		if gate := s.selectedGate(); gate != nil {
			step := GateSizeStep
			if !grow {
				step = -step
			}
			gate.SetSize(max(gate.Size+step, MinGateSize))
			s.Dirty = true
		}
	case KindAsteroid:
		if asteroid := s.selectedAsteroid(); asteroid != nil {
			step := AsteroidSizeStep
			if !grow {
				step = -step
			}
			asteroid.SetSize(max(asteroid.Size+step, MinAsteroidSize))
			s.Dirty = true
		}
	}
}

// CycleModel switches the selected asteroid to the next library model
func (s *Scene) CycleModel() {
	asteroid := s.selectedAsteroid()
	if asteroid == nil {
		return
	}
	ids := entity.ModelIDs()
	for i, id := range ids {
		if id == asteroid.Model() {
			next := ids[(i+1)%len(ids)]
			if err := asteroid.SetModel(next); err == nil {
				s.Dirty = true
			}
			return
		}
	}
}

// ResizeBoundary grows or shrinks the playable box on all axes
func (s *Scene) ResizeBoundary(grow bool) {
	step := BoundaryStep
	if !grow {
		step = -step
	}
	b := &s.Course.Boundaries
	b.Width = max(b.Width+step, MinBoundary)
	b.Height = max(b.Height+step, MinBoundary)
	b.Depth = max(b.Depth+step, MinBoundary)
	s.Dirty = true
}

// Load replaces the scene with a course file's contents
func (s *Scene) Load(ctx context.Context, path string) error {
	loaded, err := course.Load(ctx, path, s.logger)
	if err != nil {
		return err
	}
	s.Course = loaded
	s.Selected = Handle{}
	s.Dirty = false

	// Continue id allocation above anything the file brought in.
	s.nextID = 1
	for _, gate := range loaded.Gates {
		if uint64(gate.ID) >= s.nextID {
			s.nextID = uint64(gate.ID) + 1
		}
	}
	for _, asteroid := range loaded.Asteroids {
		if uint64(asteroid.ID) >= s.nextID {
			s.nextID = uint64(asteroid.ID) + 1
		}
	}

	s.logger.Info(ctx, "course loaded into designer",
		"path", path,
		"gates", len(loaded.Gates),
		"asteroids", len(loaded.Asteroids))
	return nil
}

// Save renumbers gates to their current order and writes the course.
// The scene stays marked dirty if anything fails.
func (s *Scene) Save(ctx context.Context, path string) error {
	name, err := validation.ValidateCourseName(s.Course.Name)
	if err != nil {
		return fmt.Errorf("cannot save course: %w", err)
	}
	s.Course.Name = name
	s.renumberGates()

	if err := course.Save(s.Course, path); err != nil {
		return err
	}
	s.Dirty = false
	s.logger.Info(ctx, "course saved", "path", path, "gates", len(s.Course.Gates))
	return nil
}

// Snapshot renders the scene into an offscreen image and writes it as
// a WebP preview next to the course file.
func (s *Scene) Snapshot(ctx context.Context, path string) error {
	surface := render.NewImageSurface(s.Camera.Width, s.Camera.Height)
	wireframe := render.NewWireframe(s.Camera, surface)

	wireframe.Clear()
	b := s.Course.Boundaries
	wireframe.DrawBoundary(b.Width, b.Height, b.Depth)
	wireframe.DrawGrid(b.Width/2, BoundaryStep)
	for _, gate := range s.Course.Gates {
		wireframe.RenderGate(gate)
	}
	for _, asteroid := range s.Course.Asteroids {
		wireframe.RenderAsteroid(asteroid)
	}

	if err := surface.SaveWebP(path); err != nil {
		return err
	}
	s.logger.Info(ctx, "snapshot saved", "path", path)
	return nil
}

// renumberGates keeps gate numbers contiguous in slice order
func (s *Scene) renumberGates() {
	for i, gate := range s.Course.Gates {
		gate.Number = i + 1
	}
}

func (s *Scene) selectedGate() *entity.Gate {
	for _, gate := range s.Course.Gates {
		if uint64(gate.ID) == s.Selected.ID {
			return gate
		}
	}
	return nil
}

func (s *Scene) selectedAsteroid() *entity.Asteroid {
	for _, asteroid := range s.Course.Asteroids {
		if uint64(asteroid.ID) == s.Selected.ID {
			return asteroid
		}
	}
	return nil
}
