package material

import (
	"math/rand"

	"github.com/df07/pathtrace/pkg/sampling"
	"github.com/df07/pathtrace/pkg/vecmath"
)

// Isotropic is the phase function used by Volume's interior: it scatters
// uniformly in every direction regardless of the incoming ray, unlike
// Lambertian which scatters around a surface normal.
type Isotropic struct {
	Albedo vecmath.Vec3
}

// NewIsotropic creates a new Isotropic material.
func NewIsotropic(albedo vecmath.Vec3) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter implements Material by picking a uniformly random direction from
// the hit point, independent of hit.Normal or rayIn.
func (iso *Isotropic) Scatter(rayIn vecmath.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{
		Attenuation: iso.Albedo,
		Scattered:   vecmath.NewRay(hit.Point, sampling.UnitSphereVolume(random)),
	}, true
}
