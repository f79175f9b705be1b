package material

import (
	"math"
	"math/rand"

	"github.com/df07/pathtrace/pkg/sampling"
	"github.com/df07/pathtrace/pkg/vecmath"
)

// Mix probabilistically dispatches to one of two materials. Unlike
// primitives, which only ever refer to a material by Handle, a Mix holds
// its branches directly: it is a material composing materials, not a
// primitive referencing one.
type Mix struct {
	Material1 Material
	Material2 Material
	Ratio     float64 // 0.0 = all Material1, 1.0 = all Material2
}

// NewMix creates a new Mix material, clamping ratio to [0, 1].
func NewMix(material1, material2 Material, ratio float64) *Mix {
	ratio = math.Max(0.0, math.Min(ratio, 1.0))
	return &Mix{Material1: material1, Material2: material2, Ratio: ratio}
}

// Scatter implements Material by choosing a branch per call according to
// Ratio and delegating to it.
func (m *Mix) Scatter(rayIn vecmath.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	if sampling.Uniform(random) < m.Ratio {
		return m.Material2.Scatter(rayIn, hit, random)
	}
	return m.Material1.Scatter(rayIn, hit, random)
}
