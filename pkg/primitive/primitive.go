// Package primitive implements the shapes a Scene can hold: spheres,
// triangle meshes (each with its own internal BVH), and participating-medium
// volumes wrapping another primitive's boundary.
package primitive

import (
	"math"
	"math/rand"

	"github.com/df07/pathtrace/pkg/material"
	"github.com/df07/pathtrace/pkg/vecmath"
)

// Primitive is anything the scene-level BVH can hold: it reports its own
// bounds and can be hit directly. random is threaded through even though
// most primitives ignore it, because Volume's hit test is itself
// stochastic and primitives are shared read-only across worker goroutines.
type Primitive interface {
	Bounds() vecmath.AABB
	Hit(ray vecmath.Ray, tMin, tMax float64, random *rand.Rand) (material.HitRecord, bool)
}

// Sphere is a sphere of constant radius referring to its material only by
// Handle, never by direct interface reference.
type Sphere struct {
	Center   vecmath.Vec3
	Radius   float64
	Material material.Handle
}

// NewSphere creates a new Sphere.
func NewSphere(center vecmath.Vec3, radius float64, mat material.Handle) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit implements Primitive via the quadratic ray/sphere intersection.
func (s *Sphere) Hit(ray vecmath.Ray, tMin, tMax float64, random *rand.Rand) (material.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return material.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return material.HitRecord{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	return material.NewHitRecord(ray, root, point, outwardNormal, s.Material), true
}

// Bounds implements Primitive.
func (s *Sphere) Bounds() vecmath.AABB {
	r := vecmath.NewVec3(s.Radius, s.Radius, s.Radius)
	return vecmath.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}
