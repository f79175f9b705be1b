package material

import (
	"math/rand"
	"testing"

	"github.com/df07/pathtrace/pkg/vecmath"
)

func TestNewMetal_FuzzClamp(t *testing.T) {
	tests := []struct {
		name      string
		inputFuzz float64
		wantFuzz  float64
	}{
		{"valid 0.0", 0.0, 0.0},
		{"valid 0.5", 0.5, 0.5},
		{"valid 1.0", 1.0, 1.0},
		{"clamp above 1.0", 1.5, 1.0},
		{"clamp below 0.0", -0.5, 0.0},
		{"clamp large positive", 10.0, 1.0},
		{"clamp large negative", -10.0, 0.0},
	}

	albedo := vecmath.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzz)
			if metal.Fuzz != tt.wantFuzz {
				t.Errorf("Fuzz = %f, want %f", metal.Fuzz, tt.wantFuzz)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := vecmath.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	random := rand.New(rand.NewSource(42))

	rayIn := vecmath.NewRay(vecmath.NewVec3(0, 1, 1), vecmath.NewVec3(0, -1, -1).Normalize())
	hit := HitRecord{Point: vecmath.NewVec3(0, 0, 0), Normal: vecmath.NewVec3(0, 0, 1)}

	scatter, didScatter := metal.Scatter(rayIn, hit, random)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	expected := vecmath.NewVec3(0, -1, 1).Normalize()
	actual := scatter.Scattered.Direction.Normalize()

	const tolerance = 1e-10
	if actual.Subtract(expected).Length() > tolerance {
		t.Errorf("perfect reflection: expected %v, got %v", expected, actual)
	}
	if scatter.Attenuation != albedo {
		t.Errorf("Attenuation = %v, want %v", scatter.Attenuation, albedo)
	}
}

func TestMetal_FuzzyReflectionVaries(t *testing.T) {
	albedo := vecmath.NewVec3(0.8, 0.8, 0.8)
	metal := NewMetal(albedo, 0.5)
	random := rand.New(rand.NewSource(42))

	rayIn := vecmath.NewRay(vecmath.NewVec3(0, 0, 1), vecmath.NewVec3(0, 0, -1))
	hit := HitRecord{Point: vecmath.NewVec3(0, 0, 0), Normal: vecmath.NewVec3(0, 0, 1)}

	directions := make([]vecmath.Vec3, 10)
	for i := range directions {
		scatter, didScatter := metal.Scatter(rayIn, hit, random)
		if !didScatter {
			t.Fatalf("Metal should scatter on iteration %d", i)
		}
		directions[i] = scatter.Scattered.Direction.Normalize()
	}

	allSame := true
	for i := 1; i < len(directions); i++ {
		if directions[i].Subtract(directions[0]).Length() > 1e-10 {
			allSame = false
			break
		}
	}
	if allSame {
		t.Error("fuzzy metal should produce varying reflection directions")
	}

	for i, dir := range directions {
		if dir.Dot(hit.Normal) <= 0 {
			t.Errorf("direction %d should be above surface, dot=%f", i, dir.Dot(hit.Normal))
		}
	}
}

func TestMetal_GrazingFuzzAbsorbsSomeRays(t *testing.T) {
	metal := NewMetal(vecmath.NewVec3(0.8, 0.8, 0.8), 1.0)
	random := rand.New(rand.NewSource(123))

	rayIn := vecmath.NewRay(vecmath.NewVec3(-1, 0, 0.01), vecmath.NewVec3(1, 0, -0.01).Normalize())
	hit := HitRecord{Point: vecmath.NewVec3(0, 0, 0), Normal: vecmath.NewVec3(0, 0, 1)}

	absorbed, scattered := 0, 0
	for i := 0; i < 1000; i++ {
		_, didScatter := metal.Scatter(rayIn, hit, random)
		if didScatter {
			scattered++
		} else {
			absorbed++
		}
	}

	if absorbed == 0 {
		t.Error("expected some rays absorbed with high fuzz at grazing angle")
	}
	if scattered == 0 {
		t.Error("expected some rays scattered")
	}
}

func TestReflectFunction(t *testing.T) {
	tests := []struct {
		name     string
		incident vecmath.Vec3
		normal   vecmath.Vec3
		expected vecmath.Vec3
	}{
		{
			name:     "45 degree reflection",
			incident: vecmath.NewVec3(1, 0, -1).Normalize(),
			normal:   vecmath.NewVec3(0, 0, 1),
			expected: vecmath.NewVec3(1, 0, 1).Normalize(),
		},
		{
			name:     "normal incidence",
			incident: vecmath.NewVec3(0, 0, -1),
			normal:   vecmath.NewVec3(0, 0, 1),
			expected: vecmath.NewVec3(0, 0, 1),
		},
		{
			name:     "grazing incidence",
			incident: vecmath.NewVec3(1, 0, -0.01).Normalize(),
			normal:   vecmath.NewVec3(0, 0, 1),
			expected: vecmath.NewVec3(1, 0, 0.01).Normalize(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := reflect(tt.incident, tt.normal)
			const tolerance = 1e-10
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("reflect() = %v, want %v", result, tt.expected)
			}
		})
	}
}
