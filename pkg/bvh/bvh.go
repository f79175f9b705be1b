// Package bvh implements a bounding-volume hierarchy generic over any handle
// type that can report its own bounds and intersect a ray. It is built once
// from a snapshot of handles and never mutated afterward, and the same type
// serves both the scene-level object hierarchy and a mesh's internal
// triangle hierarchy.
package bvh

import (
	"math/rand"
	"sort"

	"github.com/df07/pathtrace/pkg/material"
	"github.com/df07/pathtrace/pkg/vecmath"
)

// Collection is the capability a handle type must provide to be organized
// into a BVH: enumerate its handles, report the bounds of a handle, and
// test a ray against a single handle directly (bypassing the tree). random
// is threaded through to HitObject, not stored on the collection, because a
// Volume's hit test is itself stochastic and the collection is shared
// read-only across worker goroutines during a render.
type Collection[H comparable] interface {
	Objects() []H
	BoundsOf(h H) vecmath.AABB
	HitObject(h H, ray vecmath.Ray, tMin, tMax float64, random *rand.Rand) (material.HitRecord, bool)
}

// leafThreshold: a subtree with this many or fewer handles stays a single
// leaf instead of splitting further.
const leafThreshold = 1

type kind int

const (
	kindEmpty kind = iota
	kindLeaf
	kindSplit
)

type node[H comparable] struct {
	kind   kind
	bounds vecmath.AABB
	handle H      // kindLeaf
	left   *node[H]
	right  *node[H]
}

// BVH is a tagged-variant tree (Empty / Leaf / Split) over a Collection's
// handles, built by recursive median split on the longest axis of centroid
// spread.
type BVH[H comparable] struct {
	root   *node[H]
	source Collection[H]
}

// Build constructs a BVH from the current contents of source. The handle
// list is copied, so later mutation of source's backing storage does not
// retroactively change the tree shape.
func Build[H comparable](source Collection[H]) *BVH[H] {
	handles := append([]H(nil), source.Objects()...)
	return &BVH[H]{root: build(source, handles), source: source}
}

func build[H comparable](source Collection[H], handles []H) *node[H] {
	if len(handles) == 0 {
		return &node[H]{kind: kindEmpty}
	}

	bounds := vecmath.NewEmptyAABB()
	for _, h := range handles {
		bounds = bounds.Surround(source.BoundsOf(h))
	}

	if len(handles) <= leafThreshold {
		return &node[H]{kind: kindLeaf, bounds: bounds, handle: handles[0]}
	}

	centroidBounds := vecmath.NewEmptyAABB()
	for _, h := range handles {
		centroidBounds = centroidBounds.Surround(vecmath.FromPoint(source.BoundsOf(h).Centroid()))
	}
	axis := centroidBounds.LongestAxis()

	sort.Slice(handles, func(i, j int) bool {
		ci := source.BoundsOf(handles[i]).Centroid()
		cj := source.BoundsOf(handles[j]).Centroid()
		return axisValue(ci, axis) < axisValue(cj, axis)
	})

	mid := len(handles) / 2
	return &node[H]{
		kind:   kindSplit,
		bounds: bounds,
		left:   build(source, handles[:mid]),
		right:  build(source, handles[mid:]),
	}
}

func axisValue(v vecmath.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Hit finds the closest intersection in [tMin, tMax] among every handle in
// the tree. Both children of a Split are always visited (traversal is not
// front-to-back ordered); this is simpler and, per the ray parameter
// narrowing on recursion, still returns the single closest hit.
func (b *BVH[H]) Hit(ray vecmath.Ray, tMin, tMax float64, random *rand.Rand) (material.HitRecord, bool) {
	if b.root == nil {
		return material.HitRecord{}, false
	}
	return hitNode(b.source, b.root, ray, tMin, tMax, random)
}

func hitNode[H comparable](source Collection[H], n *node[H], ray vecmath.Ray, tMin, tMax float64, random *rand.Rand) (material.HitRecord, bool) {
	switch n.kind {
	case kindEmpty:
		return material.HitRecord{}, false
	case kindLeaf:
		return source.HitObject(n.handle, ray, tMin, tMax, random)
	default: // kindSplit
		if !n.bounds.Hit(ray, tMin, tMax) {
			return material.HitRecord{}, false
		}

		closest := tMax
		leftHit, leftOK := hitNode(source, n.left, ray, tMin, closest, random)
		if leftOK {
			closest = leftHit.T
		}
		rightHit, rightOK := hitNode(source, n.right, ray, tMin, closest, random)
		if rightOK {
			return rightHit, true
		}
		return leftHit, leftOK
	}
}
