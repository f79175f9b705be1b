package primitive

import (
	"math/rand"

	"github.com/df07/pathtrace/pkg/bvh"
	"github.com/df07/pathtrace/pkg/material"
	"github.com/df07/pathtrace/pkg/vecmath"
)

// Vertex is a mesh vertex: position and shading normal.
type Vertex struct {
	Position vecmath.Vec3
	Normal   vecmath.Vec3
}

// Triangle indexes three vertices of its owning Mesh's vertex buffer. It
// caches its face normal and bounds at construction.
type Triangle struct {
	V0, V1, V2 uint32
	faceNormal vecmath.Vec3
	bounds     vecmath.AABB
}

// Mesh is a collection of triangles sharing one vertex buffer and one
// material, accelerated by its own internal BVH over triangle indices. The
// scene-level BVH sees a Mesh as a single primitive whose bounds are the
// aggregate AABB of every vertex.
type Mesh struct {
	Vertices  []Vertex
	Triangles []Triangle
	Material  material.Handle

	bounds   vecmath.AABB
	internal *bvh.BVH[uint32]
}

// NewMesh builds a Mesh from a vertex buffer and index triples, computing
// per-triangle face normals/bounds and the internal BVH eagerly.
func NewMesh(vertices []Vertex, indices [][3]uint32, mat material.Handle) *Mesh {
	m := &Mesh{Vertices: vertices, Material: mat}

	m.Triangles = make([]Triangle, len(indices))
	aggregate := vecmath.NewEmptyAABB()
	for i, idx := range indices {
		v0 := vertices[idx[0]].Position
		v1 := vertices[idx[1]].Position
		v2 := vertices[idx[2]].Position

		faceNormal := v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
		bounds := vecmath.FromPoints(v0, v1, v2).EpsilonExpand(1e-4)

		m.Triangles[i] = Triangle{V0: idx[0], V1: idx[1], V2: idx[2], faceNormal: faceNormal, bounds: bounds}
		aggregate = aggregate.Surround(bounds)
	}
	m.bounds = aggregate
	m.internal = bvh.Build[uint32](m)

	return m
}

// Objects implements bvh.Collection[uint32].
func (m *Mesh) Objects() []uint32 {
	handles := make([]uint32, len(m.Triangles))
	for i := range handles {
		handles[i] = uint32(i)
	}
	return handles
}

// BoundsOf implements bvh.Collection[uint32].
func (m *Mesh) BoundsOf(h uint32) vecmath.AABB {
	return m.Triangles[h].bounds
}

// HitObject implements bvh.Collection[uint32] via Möller–Trumbore, using the
// edge convention e1=v1-v0, e2=v2-v0. On a hit, the shading normal is the
// barycentric interpolation of the three vertex normals, falling back to
// the cached face normal when the interpolated normal diverges from it by
// more than about 84 degrees (cosine at most 0.1), which guards against
// inverted shading normals at silhouette edges.
func (m *Mesh) HitObject(h uint32, ray vecmath.Ray, tMin, tMax float64, random *rand.Rand) (material.HitRecord, bool) {
	const epsilon = 1e-8
	tri := m.Triangles[h]

	v0 := m.Vertices[tri.V0].Position
	v1 := m.Vertices[tri.V1].Position
	v2 := m.Vertices[tri.V2].Position

	e1 := v1.Subtract(v0)
	e2 := v2.Subtract(v0)

	hVec := ray.Direction.Cross(e2)
	a := e1.Dot(hVec)
	if a > -epsilon && a < epsilon {
		return material.HitRecord{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(v0)
	u := f * s.Dot(hVec)
	if u < 0.0 || u > 1.0 {
		return material.HitRecord{}, false
	}

	q := s.Cross(e1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return material.HitRecord{}, false
	}

	t := f * e2.Dot(q)
	if t < tMin || t > tMax {
		return material.HitRecord{}, false
	}

	n0 := m.Vertices[tri.V0].Normal
	n1 := m.Vertices[tri.V1].Normal
	n2 := m.Vertices[tri.V2].Normal
	w := 1.0 - u - v
	interpolated := n0.Multiply(w).Add(n1.Multiply(u)).Add(n2.Multiply(v))

	const cosThreshold = 0.1 // ~84 degrees; beyond this, distrust the interpolated normal
	outwardNormal := tri.faceNormal
	if interpolated.Length() > epsilon {
		normalized := interpolated.Normalize()
		if normalized.Dot(tri.faceNormal) > cosThreshold {
			outwardNormal = normalized
		}
	}

	point := ray.At(t)
	return material.NewHitRecord(ray, t, point, outwardNormal, m.Material), true
}

// Hit implements Primitive by delegating to the internal BVH.
func (m *Mesh) Hit(ray vecmath.Ray, tMin, tMax float64, random *rand.Rand) (material.HitRecord, bool) {
	return m.internal.Hit(ray, tMin, tMax, random)
}

// Bounds implements Primitive: the aggregate AABB of every vertex.
func (m *Mesh) Bounds() vecmath.AABB {
	return m.bounds
}
