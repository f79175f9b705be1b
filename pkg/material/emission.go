package material

import (
	"math/rand"

	"github.com/df07/pathtrace/pkg/vecmath"
)

// Emission is a light-emitting material. It never scatters; every ray that
// hits it terminates with Color*Strength as the final contribution, carried
// in ScatterResult.Attenuation since Material has no separate emission
// method.
type Emission struct {
	Color    vecmath.Vec3
	Strength float64
}

// NewEmission creates a new Emission material.
func NewEmission(color vecmath.Vec3, strength float64) *Emission {
	return &Emission{Color: color, Strength: strength}
}

// Scatter implements Material. The path terminates here; Attenuation holds
// the emitted radiance.
func (e *Emission) Scatter(rayIn vecmath.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{Attenuation: e.Color.Multiply(e.Strength)}, false
}
