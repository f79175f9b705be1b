package vecmath

// AABB is an axis-aligned bounding box. An "empty" AABB, produced only by
// NewEmptyAABB, acts as the neutral element of Surround. The zero value
// AABB{} is not empty: it is a zero-size box at the origin, so
// Surround(a, AABB{}) also includes the origin.
type AABB struct {
	Min, Max Vec3
	empty    bool
}

// NewAABB creates an AABB from explicit min/max corners.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewEmptyAABB returns the neutral element for Surround: surrounding any
// AABB with it returns that AABB unchanged.
func NewEmptyAABB() AABB {
	return AABB{empty: true}
}

// FromPoint creates a zero-size AABB at a single point.
func FromPoint(p Vec3) AABB {
	return AABB{Min: p, Max: p}
}

// FromPoints creates an AABB bounding every given point.
func FromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return NewEmptyAABB()
	}
	box := FromPoint(points[0])
	for _, p := range points[1:] {
		box = box.Surround(FromPoint(p))
	}
	return box
}

// Surround returns the componentwise-min/max union of two boxes. An empty
// box is the identity element: Surround(a, empty) == a.
func (a AABB) Surround(b AABB) AABB {
	if a.empty {
		return b
	}
	if b.empty {
		return a
	}
	return AABB{Min: Min(a.Min, b.Min), Max: Max(a.Max, b.Max)}
}

// Centroid returns the center point of the box.
func (a AABB) Centroid() Vec3 {
	return a.Min.Add(a.Max).Multiply(0.5)
}

// Dimensions returns the extent of the box along each axis.
func (a AABB) Dimensions() Vec3 {
	return a.Max.Subtract(a.Min)
}

// EpsilonExpand returns a box where no dimension is shorter than eps,
// expanded outward from the centroid. Used to keep axis-aligned triangles
// (whose AABB is zero-thickness along one axis) numerically stable in the
// BVH slab test.
func (a AABB) EpsilonExpand(eps float64) AABB {
	dim := a.Dimensions()
	center := a.Centroid()
	half := Vec3{X: dim.X / 2, Y: dim.Y / 2, Z: dim.Z / 2}
	if half.X < eps/2 {
		half.X = eps / 2
	}
	if half.Y < eps/2 {
		half.Y = eps / 2
	}
	if half.Z < eps/2 {
		half.Z = eps / 2
	}
	return AABB{Min: center.Subtract(half), Max: center.Add(half)}
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the greatest extent.
func (a AABB) LongestAxis() int {
	dim := a.Dimensions()
	if dim.X > dim.Y && dim.X > dim.Z {
		return 0
	}
	if dim.Y > dim.Z {
		return 1
	}
	return 2
}

// axis returns (min, max, origin, direction) along the given axis, used by Hit.
func (a AABB) axis(i int, ray Ray) (min, max, origin, direction float64) {
	switch i {
	case 0:
		return a.Min.X, a.Max.X, ray.Origin.X, ray.Direction.X
	case 1:
		return a.Min.Y, a.Max.Y, ray.Origin.Y, ray.Direction.Y
	default:
		return a.Min.Z, a.Max.Z, ray.Origin.Z, ray.Direction.Z
	}
}

// Hit performs the three-axis slab test, narrowing [tMin, tMax] by each
// axis's intersection interval and swapping t0/t1 when the ray direction's
// sign would otherwise invert the interval.
func (a AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axisIdx := 0; axisIdx < 3; axisIdx++ {
		min, max, origin, direction := a.axis(axisIdx, ray)

		invDirection := 1.0 / direction
		t0 := (min - origin) * invDirection
		t1 := (max - origin) * invDirection

		if invDirection < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}
