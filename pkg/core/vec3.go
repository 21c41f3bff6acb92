// Package core provides the math and geometry primitives shared by every
// higher layer of the renderer: vectors, rays, axis-aligned bounding boxes,
// and the low-level sampling routines the BSDF and surface layers build on.
package core

import (
	"fmt"
	"math"
)

// Vec3 is a 3-D real vector, used interchangeably as point, direction, and
// linear RGB color throughout the renderer.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("{%.4g, %.4g, %.4g}", v.X, v.Y, v.Z)
}

// Add returns the sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the difference of two vectors.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns the vector scaled by a scalar.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Mul returns the component-wise product of two vectors (used for RGB tinting).
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Negate returns the additive inverse of the vector.
func (v Vec3) Negate() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns the squared magnitude of the vector.
func (v Vec3) LengthSquared() float64 { return v.Dot(v) }

// Length returns the magnitude of the vector.
func (v Vec3) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// Normalize returns a unit vector in the same direction, or the zero vector
// if v is (numerically) zero length.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l < 1e-300 {
		return Vec3{}
	}
	return v.Scale(1.0 / l)
}

// IsUnit reports whether v has unit length within the given tolerance,
// matching the §3 invariant that every ray direction handed to a producer
// is a unit vector.
func (v Vec3) IsUnit(tolerance float64) bool {
	return math.Abs(v.Length()-1.0) < tolerance
}

// IsZero reports whether every component of v is exactly zero.
func (v Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// MaxComponent returns the largest of the three components.
func (v Vec3) MaxComponent() float64 { return math.Max(v.X, math.Max(v.Y, v.Z)) }

// Luminance returns the Rec. 709 perceptual luminance of an RGB triple.
func (v Vec3) Luminance() float64 {
	return 0.2126*v.X + 0.7152*v.Y + 0.0722*v.Z
}

// Clamp returns v with each component clamped to [lo, hi].
func (v Vec3) Clamp(lo, hi float64) Vec3 {
	return Vec3{
		X: math.Max(lo, math.Min(hi, v.X)),
		Y: math.Max(lo, math.Min(hi, v.Y)),
		Z: math.Max(lo, math.Min(hi, v.Z)),
	}
}

// Lerp linearly interpolates between v and o by t in [0, 1].
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return v.Scale(1 - t).Add(o.Scale(t))
}

// Reflect returns v reflected about the normal n (n need not be unit length,
// but typically is).
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Vec2 is a 2-D real vector, used for texture coordinates and 2-D clipping.
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2.
func NewVec2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Add returns the sum of two Vec2 values.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns the difference of two Vec2 values.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns the Vec2 scaled by a scalar.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Cross returns the scalar (z-component) cross product of two 2-D vectors.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }
