package material

import (
	"math/rand"

	"github.com/df07/pathtrace/pkg/sampling"
	"github.com/df07/pathtrace/pkg/vecmath"
)

// Metal is a metallic material with specular reflection.
type Metal struct {
	Albedo vecmath.Vec3
	Fuzz   float64 // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new Metal material, clamping fuzz to [0, 1].
func NewMetal(albedo vecmath.Vec3, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements Material for specular reflection with optional fuzz.
// A scattered direction that ends up below the surface absorbs the ray.
func (m *Metal) Scatter(rayIn vecmath.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)

	if m.Fuzz > 0 {
		perturbation := sampling.UnitSphereSurface(random).Multiply(m.Fuzz)
		reflected = reflected.Add(perturbation)
	}

	scattered := vecmath.NewRay(hit.Point, reflected)
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{Attenuation: m.Albedo, Scattered: scattered}, true
}

// reflect computes the mirror reflection of v off a surface with normal n.
func reflect(v, n vecmath.Vec3) vecmath.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
