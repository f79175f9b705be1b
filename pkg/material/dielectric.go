package material

import (
	"math"
	"math/rand"

	"github.com/df07/pathtrace/pkg/sampling"
	"github.com/df07/pathtrace/pkg/vecmath"
)

// Dielectric is a transparent material (glass, water) that reflects or
// refracts depending on the Fresnel term and the angle of incidence.
type Dielectric struct {
	IOR float64 // index of refraction, e.g. 1.5 for glass
}

// NewDielectric creates a new Dielectric material.
func NewDielectric(ior float64) *Dielectric {
	return &Dielectric{IOR: ior}
}

// Scatter implements Material: it always scatters (a dielectric never
// absorbs), choosing between reflection and refraction by total internal
// reflection and Schlick's approximation.
func (d *Dielectric) Scatter(rayIn vecmath.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	attenuation := vecmath.NewVec3(1.0, 1.0, 1.0)

	var eta float64
	if hit.FrontFace {
		eta = 1.0 / d.IOR // entering the material
	} else {
		eta = d.IOR // exiting the material
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := eta*sinTheta > 1.0

	var direction vecmath.Vec3
	if cannotRefract || Schlick(cosTheta, eta) > sampling.Uniform(random) {
		direction = reflect(unitDirection, hit.Normal)
	} else {
		direction = refract(unitDirection, hit.Normal, eta)
	}

	return ScatterResult{
		Attenuation: attenuation,
		Scattered:   vecmath.NewRay(hit.Point, direction),
	}, true
}

// refract computes the Snell's-law refraction of uv through a surface with
// normal n and relative index of refraction eta.
func refract(uv, n vecmath.Vec3, eta float64) vecmath.Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(eta)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Schlick approximates the Fresnel reflectance at the given incidence
// cosine and relative index of refraction. It is monotonically decreasing
// in cosine on [0,1] for any fixed eta < 1 (i.e. ior > 1 entering the
// material), matching spec.md §8.
func Schlick(cosine, eta float64) float64 {
	r0 := (1 - eta) / (1 + eta)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
