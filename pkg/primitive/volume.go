package primitive

import (
	"math"
	"math/rand"

	"github.com/df07/pathtrace/pkg/material"
	"github.com/df07/pathtrace/pkg/vecmath"
)

// Volume wraps a boundary Primitive with a homogeneous isotropic
// participating medium. Its Hit performs two boundary intersections to find
// the ray's chord through the boundary, then samples a free-flight distance
// inside it; the returned hit's normal is arbitrary since the Isotropic
// material that typically backs a Volume ignores it. The sample draw uses
// the random passed in by the caller, since Volume is owned by the
// read-only Scene and shared across every render worker.
type Volume struct {
	Boundary      Primitive
	NegInvDensity float64 // -1/density
	Material      material.Handle
}

// NewVolume creates a new Volume with the given density.
func NewVolume(boundary Primitive, density float64, mat material.Handle) *Volume {
	return &Volume{Boundary: boundary, NegInvDensity: -1.0 / density, Material: mat}
}

// Hit implements Primitive.
func (v *Volume) Hit(ray vecmath.Ray, tMin, tMax float64, random *rand.Rand) (material.HitRecord, bool) {
	h1, ok1 := v.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), random)
	if !ok1 {
		return material.HitRecord{}, false
	}

	h2, ok2 := v.Boundary.Hit(ray, h1.T+tMin, math.Inf(1), random)
	if !ok2 {
		return material.HitRecord{}, false
	}

	t1 := h1.T
	if t1 < tMin {
		t1 = tMin
	}
	t2 := h2.T
	if t2 > tMax {
		t2 = tMax
	}

	if t1 >= t2 || t1 < 0 {
		return material.HitRecord{}, false
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := v.NegInvDensity * math.Log(random.Float64())

	if hitDistance > distanceInsideBoundary {
		return material.HitRecord{}, false
	}

	t := t1 + hitDistance/rayLength
	point := ray.At(t)

	return material.HitRecord{
		Point:     point,
		Normal:    vecmath.NewVec3(1, 0, 0), // arbitrary; Isotropic ignores it
		T:         t,
		FrontFace: true,
		Material:  v.Material,
	}, true
}

// Bounds implements Primitive by delegating to the boundary.
func (v *Volume) Bounds() vecmath.AABB {
	return v.Boundary.Bounds()
}
