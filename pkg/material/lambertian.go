package material

import (
	"math/rand"

	"github.com/df07/pathtrace/pkg/sampling"
	"github.com/df07/pathtrace/pkg/vecmath"
)

// Lambertian is a perfectly diffuse material.
type Lambertian struct {
	Albedo vecmath.Vec3
}

// NewLambertian creates a new Lambertian material.
func NewLambertian(albedo vecmath.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements Material for diffuse scattering: the scatter
// direction is a cosine-weighted draw around the normal.
func (l *Lambertian) Scatter(rayIn vecmath.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	scatterDirection := sampling.CosineDirection(hit.Normal, random)

	return ScatterResult{
		Attenuation: l.Albedo,
		Scattered:   vecmath.NewRay(hit.Point, scatterDirection),
	}, true
}
