// Package material implements the small, closed family of scattering laws
// (Lambertian, Metal, Dielectric, Emission, Mix, Isotropic) that primitives
// dispatch to after a ray/surface intersection, plus the HitRecord and
// material-handle types that the scene graph and BVH share.
package material

import (
	"math/rand"

	"github.com/df07/pathtrace/pkg/vecmath"
)

// Handle is a dense, stable, append-only index into a Scene's material
// table (spec.md §3/§9 "Handles over ownership graphs"). It is never
// reused and is the only way a primitive refers to its material, so the
// scene owns every material and primitives never hold a pointer/interface
// to one directly.
type Handle int

// HitRecord describes a ray/surface intersection.
type HitRecord struct {
	Point     vecmath.Vec3
	Normal    vecmath.Vec3
	T         float64
	FrontFace bool
	Material  Handle
}

// NewHitRecord builds a HitRecord from an outward-facing surface normal and
// the incoming ray, applying the front-face convention: FrontFace is true
// when the ray opposes the outward normal, and the stored Normal is
// negated when it is not, so Normal always points against the incident
// ray (spec.md §3).
func NewHitRecord(ray vecmath.Ray, t float64, point, outwardNormal vecmath.Vec3, mat Handle) HitRecord {
	h := HitRecord{Point: point, T: t, Material: mat}
	h.SetFaceNormal(ray, outwardNormal)
	return h
}

// SetFaceNormal applies the front-face convention described on HitRecord.
func (h *HitRecord) SetFaceNormal(ray vecmath.Ray, outwardNormal vecmath.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterResult is the outcome of a Material.Scatter call: an attenuation
// color and, unless the path terminates, a new outgoing ray.
type ScatterResult struct {
	Attenuation vecmath.Vec3
	Scattered   vecmath.Ray
}

// Material is implemented by every scattering law. A false second return
// value means the path terminates here, and Attenuation carries the final
// contribution for this hit: emitted radiance for light sources, absorbed
// (zero) color otherwise. There is no separate emission method; Emission
// is simply the material whose Attenuation is nonzero when it terminates.
type Material interface {
	Scatter(rayIn vecmath.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
}
