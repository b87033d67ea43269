// pkg/course/generator.go
package course

import (
	"math"
	"math/rand/v2"

	"github.com/opd-ai/go-spacerace/pkg/entity"
	"github.com/opd-ai/go-spacerace/pkg/physics"
)

// GeneratorOptions controls random asteroid field generation
type GeneratorOptions struct {
	Count   int
	MinSize float64 // meters, collision diameter
	MaxSize float64
	MaxSpin float64 // radians/sec about a random axis
}

// DefaultGeneratorOptions returns the standard asteroid field density
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		Count:   50,
		MinSize: 100,
		MaxSize: 500,
		MaxSpin: 0.1,
	}
}

// PopulateAsteroids fills the course with a random asteroid field,
// replacing any existing asteroids. Positions are uniform within the
// course boundaries, models are drawn from the asteroid library, and
// each asteroid gets a slow tumble about a random axis. The caller
// supplies the random source so tests can seed it.
func PopulateAsteroids(course *Course, rng *rand.Rand, opts GeneratorOptions) {
	models := entity.ModelIDs()
	bounds := course.Boundaries

	var nextID entity.ID = 1
	for _, gate := range course.Gates {
		if gate.ID >= nextID {
			nextID = gate.ID + 1
		}
	}

	course.Asteroids = course.Asteroids[:0]
	for i := 0; i < opts.Count; i++ {
		position := physics.Vector3{
			X: (rng.Float64() - 0.5) * bounds.Width,
			Y: (rng.Float64() - 0.5) * bounds.Height,
			Z: (rng.Float64() - 0.5) * bounds.Depth,
		}
		size := opts.MinSize + rng.Float64()*(opts.MaxSize-opts.MinSize)
		orientation := physics.QuaternionFromAxisAngle(randomAxis(rng), rng.Float64()*2*math.Pi)
		spin := randomAxis(rng).Scale(rng.Float64() * opts.MaxSpin)
		model := models[rng.IntN(len(models))]

		asteroid, err := entity.NewAsteroid(nextID, model, position, orientation, size, spin)
		if err != nil {
			// Model came from the library listing, so this cannot fail.
			continue
		}
		course.Asteroids = append(course.Asteroids, asteroid)
		nextID++
	}
}

// randomAxis returns a unit vector uniformly distributed on the sphere
func randomAxis(rng *rand.Rand) physics.Vector3 {
	for {
		v := physics.Vector3{
			X: rng.Float64()*2 - 1,
			Y: rng.Float64()*2 - 1,
			Z: rng.Float64()*2 - 1,
		}
		if l := v.Length(); l > 1e-6 && l <= 1 {
			return v.Scale(1 / l)
		}
	}
}
