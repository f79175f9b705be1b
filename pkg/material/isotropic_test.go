package material

import (
	"math/rand"
	"testing"

	"github.com/df07/pathtrace/pkg/vecmath"
)

func TestIsotropic_ScattersUniformly(t *testing.T) {
	iso := NewIsotropic(vecmath.NewVec3(0.8, 0.8, 0.8))
	ray := vecmath.NewRay(vecmath.NewVec3(0, 0, 0), vecmath.NewVec3(1, 0, 0))
	hit := HitRecord{Point: vecmath.NewVec3(1, 0, 0), Normal: vecmath.NewVec3(-1, 0, 0), T: 1.0}
	random := rand.New(rand.NewSource(7))

	seenPositive, seenNegative := false, false
	for i := 0; i < 200; i++ {
		result, scattered := iso.Scatter(ray, hit, random)
		if !scattered {
			t.Fatal("Isotropic should always scatter")
		}
		if result.Attenuation != iso.Albedo {
			t.Errorf("Attenuation = %v, want %v", result.Attenuation, iso.Albedo)
		}
		if result.Scattered.Direction.Dot(hit.Normal) > 0 {
			seenPositive = true
		} else {
			seenNegative = true
		}
	}

	if !seenPositive || !seenNegative {
		t.Error("Isotropic scatter directions should land on both sides of the surface normal, unlike Lambertian")
	}
}

func TestIsotropic_InterfaceCompliance(t *testing.T) {
	var _ Material = NewIsotropic(vecmath.NewVec3(1, 1, 1))
}
