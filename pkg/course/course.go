// Package course loads, validates and persists race course definitions.
// A course is a bounded box containing an ordered sequence of gates and
// an unordered asteroid field, stored as a single JSON document read
// wholesale at startup and written wholesale on save.
package course

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/opd-ai/go-spacerace/pkg/entity"
	"github.com/opd-ai/go-spacerace/pkg/logging"
	"github.com/opd-ai/go-spacerace/pkg/physics"
)

// FormatVersion is the course file schema version this package writes
const FormatVersion = 1

// Boundaries is the playable box, centered on the world origin
type Boundaries struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// DefaultBoundaries returns the standard 20000-unit cube
func DefaultBoundaries() Boundaries {
	return Boundaries{Width: 20000, Height: 20000, Depth: 20000}
}

// GateRecord is the persisted form of one race gate
type GateRecord struct {
	GateNumber  int        `json:"gate_number"`
	Position    [3]float64 `json:"position"`
	Orientation [4]float64 `json:"orientation"`
	Size        float64    `json:"size"`
}

// AsteroidRecord is the persisted form of one asteroid
type AsteroidRecord struct {
	ModelID         string     `json:"model_id"`
	Position        [3]float64 `json:"position"`
	Orientation     [4]float64 `json:"orientation"`
	Size            float64    `json:"size"`
	AngularVelocity [3]float64 `json:"angular_velocity"`
}

// File is the on-disk JSON document
type File struct {
	Version    int              `json:"version"`
	CourseName string           `json:"course_name"`
	Boundaries *Boundaries      `json:"boundaries,omitempty"`
	RaceGates  []GateRecord     `json:"race_gates"`
	Asteroids  []AsteroidRecord `json:"asteroids"`
}

// Course is the loaded, validated level. Gates are held sorted by gate
// number; the play order is the slice order.
type Course struct {
	Name       string
	Boundaries Boundaries
	Gates      []*entity.Gate
	Asteroids  []*entity.Asteroid
}

// EmptyCourse returns a course with default boundaries and no objects.
// Callers fall back to this when a course file cannot be loaded.
func EmptyCourse(name string) *Course {
	return &Course{
		Name:       name,
		Boundaries: DefaultBoundaries(),
	}
}

// Load reads and validates a course file. All failures here are
// recoverable: callers are expected to log and fall back to an empty
// course rather than abort.
func Load(ctx context.Context, path string, logger *logging.Logger) (*Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read course file: %w", err)
	}
	return Parse(ctx, data, logger)
}

// Parse decodes and validates raw course JSON
func Parse(ctx context.Context, data []byte, logger *logging.Logger) (*Course, error) {
	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse course file: %w", err)
	}
	return fromFile(ctx, &file, logger)
}

func fromFile(ctx context.Context, file *File, logger *logging.Logger) (*Course, error) {
	if err := validateGateNumbers(file.RaceGates); err != nil {
		return nil, err
	}

	course := &Course{
		Name:       file.CourseName,
		Boundaries: DefaultBoundaries(),
	}
	if file.Boundaries != nil {
		course.Boundaries = *file.Boundaries
	}

	records := make([]GateRecord, len(file.RaceGates))
	copy(records, file.RaceGates)
	sort.Slice(records, func(i, j int) bool {
		return records[i].GateNumber < records[j].GateNumber
	})

	var nextID entity.ID = 1
	for _, record := range records {
		gate := entity.NewGate(nextID, record.GateNumber,
			vectorFromArray(record.Position),
			quaternionFromArray(record.Orientation),
			record.Size)
		course.Gates = append(course.Gates, gate)
		nextID++
	}

	for _, record := range file.Asteroids {
		modelID := entity.ModelID(record.ModelID)
		if _, err := entity.LookupModel(modelID); err != nil {
			// Unknown models are not fatal at the load boundary: the
			// course may come from a newer designer. Substitute the
			// default mesh and keep the asteroid.
			if logger != nil {
				logger.Warn(ctx, "unknown asteroid model, using default",
					"model_id", record.ModelID,
					"default", string(entity.DefaultModelID))
			}
			modelID = entity.DefaultModelID
		}
		asteroid, err := entity.NewAsteroid(nextID, modelID,
			vectorFromArray(record.Position),
			quaternionFromArray(record.Orientation),
			record.Size,
			vectorFromArray(record.AngularVelocity))
		if err != nil {
			return nil, fmt.Errorf("failed to build asteroid: %w", err)
		}
		course.Asteroids = append(course.Asteroids, asteroid)
		nextID++
	}

	return course, nil
}

// Save writes the course to path as indented JSON
func Save(course *Course, path string) error {
	data, err := Marshal(course)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write course file: %w", err)
	}
	return nil
}

// Marshal converts a course back into its JSON document form
func Marshal(course *Course) ([]byte, error) {
	bounds := course.Boundaries
	file := File{
		Version:    FormatVersion,
		CourseName: course.Name,
		Boundaries: &bounds,
		RaceGates:  []GateRecord{},
		Asteroids:  []AsteroidRecord{},
	}
	for _, gate := range course.Gates {
		file.RaceGates = append(file.RaceGates, GateRecord{
			GateNumber:  gate.Number,
			Position:    arrayFromVector(gate.Position),
			Orientation: arrayFromQuaternion(gate.Orientation),
			Size:        gate.Size,
		})
	}
	for _, asteroid := range course.Asteroids {
		file.Asteroids = append(file.Asteroids, AsteroidRecord{
			ModelID:         string(asteroid.Model()),
			Position:        arrayFromVector(asteroid.Position),
			Orientation:     arrayFromQuaternion(asteroid.Orientation),
			Size:            asteroid.Size,
			AngularVelocity: arrayFromVector(asteroid.AngularVelocity),
		})
	}

	data, err := json.MarshalIndent(&file, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode course: %w", err)
	}
	return data, nil
}

// validateGateNumbers enforces the course invariant: gate numbers are
// unique and contiguous starting at 1.
func validateGateNumbers(gates []GateRecord) error {
	seen := make(map[int]bool, len(gates))
	for _, gate := range gates {
		if gate.GateNumber < 1 {
			return fmt.Errorf("invalid gate number %d: must be 1 or greater", gate.GateNumber)
		}
		if seen[gate.GateNumber] {
			return fmt.Errorf("duplicate gate number %d", gate.GateNumber)
		}
		seen[gate.GateNumber] = true
	}
	for n := 1; n <= len(gates); n++ {
		if !seen[n] {
			return fmt.Errorf("gate numbers not contiguous: missing %d", n)
		}
	}
	return nil
}

func vectorFromArray(a [3]float64) physics.Vector3 {
	return physics.Vector3{X: a[0], Y: a[1], Z: a[2]}
}

func arrayFromVector(v physics.Vector3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// quaternionFromArray normalizes on the way in; an all-zero record
// becomes the identity orientation.
func quaternionFromArray(a [4]float64) physics.Quaternion {
	return physics.Quaternion{W: a[0], X: a[1], Y: a[2], Z: a[3]}.Normalize()
}

func arrayFromQuaternion(q physics.Quaternion) [4]float64 {
	return [4]float64{q.W, q.X, q.Y, q.Z}
}
