package course

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/opd-ai/go-spacerace/pkg/entity"
)

func seededRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 0))
}

func TestPopulateAsteroids_CountAndSizeRange(t *testing.T) {
	c := EmptyCourse("field")
	opts := GeneratorOptions{Count: 40, MinSize: 100, MaxSize: 500, MaxSpin: 0.1}
	PopulateAsteroids(c, seededRand(), opts)

	if len(c.Asteroids) != 40 {
		t.Fatalf("generated %d asteroids, want 40", len(c.Asteroids))
	}
	for _, a := range c.Asteroids {
		if a.Size < opts.MinSize || a.Size > opts.MaxSize {
			t.Errorf("asteroid size %f outside [%f, %f]", a.Size, opts.MinSize, opts.MaxSize)
		}
		if a.AngularVelocity.Length() > opts.MaxSpin+1e-9 {
			t.Errorf("asteroid spin %f exceeds %f", a.AngularVelocity.Length(), opts.MaxSpin)
		}
	}
}

func TestPopulateAsteroids_StaysWithinBoundaries(t *testing.T) {
	c := EmptyCourse("field")
	c.Boundaries = Boundaries{Width: 1000, Height: 2000, Depth: 4000}
	PopulateAsteroids(c, seededRand(), DefaultGeneratorOptions())

	for _, a := range c.Asteroids {
		p := a.Position
		if math.Abs(p.X) > 500 || math.Abs(p.Y) > 1000 || math.Abs(p.Z) > 2000 {
			t.Errorf("asteroid at %+v outside boundaries", p)
		}
	}
}

func TestPopulateAsteroids_UsesLibraryModels(t *testing.T) {
	c := EmptyCourse("field")
	PopulateAsteroids(c, seededRand(), DefaultGeneratorOptions())

	for _, a := range c.Asteroids {
		if _, err := entity.LookupModel(a.Model()); err != nil {
			t.Errorf("generated asteroid uses unknown model %q", a.Model())
		}
	}
}

func TestPopulateAsteroids_DeterministicWithSeed(t *testing.T) {
	first := EmptyCourse("a")
	second := EmptyCourse("b")
	PopulateAsteroids(first, seededRand(), DefaultGeneratorOptions())
	PopulateAsteroids(second, seededRand(), DefaultGeneratorOptions())

	if len(first.Asteroids) != len(second.Asteroids) {
		t.Fatal("seeded runs generated different counts")
	}
	for i := range first.Asteroids {
		if first.Asteroids[i].Position != second.Asteroids[i].Position {
			t.Fatalf("asteroid %d position differs between seeded runs", i)
		}
	}
}

func TestPopulateAsteroids_ReplacesExistingField(t *testing.T) {
	c := EmptyCourse("field")
	PopulateAsteroids(c, seededRand(), GeneratorOptions{Count: 10, MinSize: 100, MaxSize: 200, MaxSpin: 0.1})
	PopulateAsteroids(c, seededRand(), GeneratorOptions{Count: 5, MinSize: 100, MaxSize: 200, MaxSpin: 0.1})
	if len(c.Asteroids) != 5 {
		t.Errorf("repopulated field has %d asteroids, want 5", len(c.Asteroids))
	}
}
