package material

import (
	"math/rand"
	"testing"

	"github.com/vhxs/go-ray-tracing/pkg/core"
)

func TestNewMetal_FuzzClamp(t *testing.T) {
	tests := []struct {
		name         string
		inputFuzz    float64
		expectedFuzz float64
	}{
		{"Valid fuzz 0.0", 0.0, 0.0},
		{"Valid fuzz 0.5", 0.5, 0.5},
		{"Valid fuzz 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
		{"Clamp large positive", 10.0, 1.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzz)
			if metal.Fuzz != tt.expectedFuzz {
				t.Errorf("Expected fuzz %f, got %f", tt.expectedFuzz, metal.Fuzz)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	random := rand.New(rand.NewSource(42))

	// Unnormalized incoming direction: a mirror must reproduce reflect() exactly
	rayIn := core.NewRay(core.NewVec3(0, 2, 2), core.NewVec3(0, -2, -3))
	hit := hitAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), true)

	for i := 0; i < 5; i++ {
		scatter, didScatter := metal.Scatter(rayIn, hit, random)
		if !didScatter {
			t.Fatal("Metal should scatter")
		}

		expected := core.Reflect(rayIn.Direction, hit.Normal)
		if !scatter.Scattered.Direction.Equals(expected) {
			t.Errorf("Perfect reflection failed: expected %v, got %v", expected, scatter.Scattered.Direction)
		}
		if !scatter.Attenuation.Equals(albedo) {
			t.Errorf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
		}
		if !scatter.Scattered.Origin.Equals(hit.Point) {
			t.Errorf("Scattered ray should start at the hit point, got %v", scatter.Scattered.Origin)
		}
	}
}

func TestMetal_FuzzyReflection(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.5)
	random := rand.New(rand.NewSource(42))

	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit := hitAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), true)

	directions := make([]core.Vec3, 10)
	for i := 0; i < 10; i++ {
		scatter, didScatter := metal.Scatter(rayIn, hit, random)
		if !didScatter {
			t.Fatalf("Metal should scatter on iteration %d", i)
		}
		directions[i] = scatter.Scattered.Direction

		// Fuzz sphere of radius 0.5 around the unit mirror direction
		offset := directions[i].Subtract(core.NewVec3(0, 0, 1)).Length()
		if offset > 0.5+1e-12 {
			t.Errorf("Fuzzed direction %v is %f from the mirror direction", directions[i], offset)
		}
	}

	allSame := true
	for i := 1; i < len(directions); i++ {
		if directions[i].Subtract(directions[0]).Length() > 1e-10 {
			allSame = false
			break
		}
	}
	if allSame {
		t.Error("Fuzzy metal should produce varying reflection directions")
	}
}

func TestMetal_ScatterAbsorption(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)
	random := rand.New(rand.NewSource(123))

	// Grazing angle ray that often scatters below the surface with high fuzz
	rayIn := core.NewRay(core.NewVec3(-1, 0, 0.01), core.NewVec3(1, 0, -0.01).Normalize())
	hit := hitAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), true)

	absorptionCount := 0
	scatterCount := 0
	for i := 0; i < 1000; i++ {
		scatter, didScatter := metal.Scatter(rayIn, hit, random)
		if didScatter {
			scatterCount++
			if scatter.Scattered.Direction.Dot(hit.Normal) <= 0 {
				t.Fatalf("Scattered ray %v should be above the surface", scatter.Scattered.Direction)
			}
		} else {
			absorptionCount++
		}
	}

	if absorptionCount == 0 {
		t.Error("Expected some rays to be absorbed with high fuzz at grazing angle")
	}
	if scatterCount == 0 {
		t.Error("Expected some rays to be scattered")
	}
}

func TestMetal_MirrorDoesNotConsumeRandomness(t *testing.T) {
	metal := NewMetal(core.NewVec3(1, 1, 1), 0)
	random := rand.New(rand.NewSource(5))
	reference := rand.New(rand.NewSource(5))

	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(1, 0, -1))
	hit := hitAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), true)
	metal.Scatter(rayIn, hit, random)

	if random.Float64() != reference.Float64() {
		t.Error("A perfect mirror should not draw from the random stream")
	}
}
