// Package sampling provides the scalar and directional random samplers
// consumed by materials and the pixel-sample loop: uniform [0,1) scalars,
// uniform points on a unit sphere's surface, and uniform points inside a
// unit sphere's volume.
package sampling

import (
	"math"
	"math/rand"

	"github.com/df07/pathtrace/pkg/vecmath"
)

// Uniform draws a scalar uniformly from [0, 1).
func Uniform(random *rand.Rand) float64 {
	return random.Float64()
}

// UnitSphereVolume returns a uniformly distributed point inside the unit
// sphere, via rejection sampling (grounded on the teacher's
// core.RandomInUnitSphere call sites in pkg/material/metal.go).
func UnitSphereVolume(random *rand.Rand) vecmath.Vec3 {
	for {
		p := vecmath.NewVec3(
			2*random.Float64()-1,
			2*random.Float64()-1,
			2*random.Float64()-1,
		)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// UnitSphereSurface returns a uniformly distributed point on the unit
// sphere's surface.
func UnitSphereSurface(random *rand.Rand) vecmath.Vec3 {
	return UnitSphereVolume(random).Normalize()
}

// CosineDirection returns a cosine-weighted random direction in the
// hemisphere around the given normal, used by Lambertian scattering
// (grounded on the teacher's core.RandomCosineDirection call site in
// pkg/material/lambertian.go).
func CosineDirection(normal vecmath.Vec3, random *rand.Rand) vecmath.Vec3 {
	direction := normal.Add(UnitSphereSurface(random))
	if direction.NearZero() {
		return normal
	}
	return direction
}

// SeedFor derives a deterministic per-pixel seed from a base seed and a
// flat pixel index, so a render with RenderSettings.Seed set produces
// byte-identical output across runs (spec.md §9's SHOULD, see SPEC_FULL
// §12). The xor-with-a-large-odd-multiplier mixing avoids nearby pixels
// producing correlated low-order PRNG state.
func SeedFor(baseSeed uint64, pixelIndex int) int64 {
	mixed := baseSeed ^ (uint64(pixelIndex) * 0x9E3779B97F4A7C15)
	return int64(mixed & math.MaxInt64)
}
