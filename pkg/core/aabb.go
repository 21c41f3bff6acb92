package core

import (
	"math"

	"github.com/pkg/errors"
)

// AABB is an axis-aligned bounding box, stored as an ordered (min, max) pair.
// The §3 invariant pmin <= pmax (component-wise) is enforced at construction.
type AABB struct {
	Min, Max Vec3
}

// NewAABB constructs an AABB from min/max corners, returning a
// construction-validation error (§7) if the ordering invariant is violated.
func NewAABB(min, max Vec3) (AABB, error) {
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		return AABB{}, errors.Errorf("core: AABB min %v exceeds max %v on some axis", min, max)
	}
	return AABB{Min: min, Max: max}, nil
}

// MustAABB is like NewAABB but panics on an invalid ordering; used for
// internal construction where the inputs are already known-good (e.g. after
// a Union, which always produces a valid box).
func MustAABB(min, max Vec3) AABB {
	a, err := NewAABB(min, max)
	if err != nil {
		panic(err)
	}
	return a
}

// EmptyAABB returns an inverted AABB (Min = +Inf, Max = -Inf) suitable as the
// starting value of a Union fold: its Union with any box, in either operand
// order, returns that box unchanged. It fails IsValid.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{Min: Vec3{inf, inf, inf}, Max: Vec3{-inf, -inf, -inf}}
}

// AABBFromPoints returns the smallest AABB containing all given points.
func AABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = Vec3{math.Min(min.X, p.X), math.Min(min.Y, p.Y), math.Min(min.Z, p.Z)}
		max = Vec3{math.Max(max.X, p.X), math.Max(max.Y, p.Y), math.Max(max.Z, p.Z)}
	}
	return AABB{Min: min, Max: max}
}

// Union returns the AABB bounding both a and b.
func (a AABB) Union(b AABB) AABB {
	return AABB{
		Min: Vec3{math.Min(a.Min.X, b.Min.X), math.Min(a.Min.Y, b.Min.Y), math.Min(a.Min.Z, b.Min.Z)},
		Max: Vec3{math.Max(a.Max.X, b.Max.X), math.Max(a.Max.Y, b.Max.Y), math.Max(a.Max.Z, b.Max.Z)},
	}
}

// Center returns the centroid of the box.
func (a AABB) Center() Vec3 { return a.Min.Add(a.Max).Scale(0.5) }

// Size returns the extent of the box along each axis.
func (a AABB) Size() Vec3 { return a.Max.Sub(a.Min) }

// SurfaceArea returns the surface area of the box, the weight term the SAH
// cost model (§4.E) is built on.
func (a AABB) SurfaceArea() float64 {
	s := a.Size()
	return 2.0 * (s.X*s.Y + s.Y*s.Z + s.Z*s.X)
}

// AxisMin returns a.Min's component along the given axis (0=X, 1=Y, 2=Z).
func (a AABB) AxisMin(axis int) float64 { return component(a.Min, axis) }

// AxisMax returns a.Max's component along the given axis.
func (a AABB) AxisMax(axis int) float64 { return component(a.Max, axis) }

func component(v Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the largest extent.
func (a AABB) LongestAxis() int {
	s := a.Size()
	if s.X > s.Y && s.X > s.Z {
		return 0
	}
	if s.Y > s.Z {
		return 1
	}
	return 2
}

// IsValid reports whether Min <= Max component-wise.
func (a AABB) IsValid() bool {
	return a.Min.X <= a.Max.X && a.Min.Y <= a.Max.Y && a.Min.Z <= a.Max.Z
}

// Hit implements the slab-method ray/AABB test from §4.A, returning the
// entry/exit parametric distances. ok is false when t_far < 0 or
// t_near > t_far. Directions with |d_i| below epsilon are treated as
// grazing: axis i adds no bound on t, and the ray misses only if its origin
// lies outside that axis's slab.
func (a AABB) Hit(ray Ray, tMin, tMax float64) (tNear, tFar float64, ok bool) {
	const eps = 1e-8
	tNear, tFar = tMin, tMax
	for axis := 0; axis < 3; axis++ {
		origin := component(ray.Origin, axis)
		dir := component(ray.Direction, axis)
		lo := component(a.Min, axis)
		hi := component(a.Max, axis)

		if math.Abs(dir) < eps {
			if origin < lo || origin > hi {
				return 0, 0, false
			}
			continue
		}

		invDir := 1.0 / dir
		t1 := (lo - origin) * invDir
		t2 := (hi - origin) * invDir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tNear = math.Max(tNear, t1)
		tFar = math.Min(tFar, t2)
		if tNear > tFar {
			return 0, 0, false
		}
	}
	if tFar < 0 {
		return 0, 0, false
	}
	return tNear, tFar, true
}

// Contains reports whether b is fully contained within a.
func (a AABB) Contains(b AABB) bool {
	return a.Min.X <= b.Min.X && a.Min.Y <= b.Min.Y && a.Min.Z <= b.Min.Z &&
		a.Max.X >= b.Max.X && a.Max.Y >= b.Max.Y && a.Max.Z >= b.Max.Z
}

// Expand returns an AABB grown by amount in every direction.
func (a AABB) Expand(amount float64) AABB {
	e := NewVec3(amount, amount, amount)
	return AABB{Min: a.Min.Sub(e), Max: a.Max.Add(e)}
}

// ClipMin returns a copy of a with its minimum corner raised to pos on the
// given axis, used when splitting a box at an SAH split plane.
func (a AABB) ClipMin(axis int, pos float64) AABB {
	min := a.Min
	switch axis {
	case 0:
		min.X = pos
	case 1:
		min.Y = pos
	default:
		min.Z = pos
	}
	return AABB{Min: min, Max: a.Max}
}

// ClipMax returns a copy of a with its maximum corner lowered to pos on the
// given axis.
func (a AABB) ClipMax(axis int, pos float64) AABB {
	max := a.Max
	switch axis {
	case 0:
		max.X = pos
	case 1:
		max.Y = pos
	default:
		max.Z = pos
	}
	return AABB{Min: a.Min, Max: max}
}
