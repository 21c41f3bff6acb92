package core

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3NormalizeIsUnit(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := Vec3{X: rng.Float64()*20 - 10, Y: rng.Float64()*20 - 10, Z: rng.Float64()*20 - 10}
		if v.IsZero() {
			continue
		}
		n := v.Normalize()
		assert.True(t, n.IsUnit(1e-9), "normalized vector %v should be unit length, got %v", v, n.Length())
	}
}

func TestVec3DotCrossOrthogonality(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}
	c := a.Cross(b)
	assert.InDelta(t, 0, a.Dot(c), 1e-12)
	assert.InDelta(t, 0, b.Dot(c), 1e-12)
	assert.Equal(t, Vec3{0, 0, 1}, c)
}

func TestVec3ReflectPreservesLength(t *testing.T) {
	v := Vec3{1, -1, 0.5}.Normalize()
	n := Vec3{0, 1, 0}
	r := v.Reflect(n)
	assert.InDelta(t, v.Length(), r.Length(), 1e-9)
}

func TestVec3Clamp(t *testing.T) {
	v := Vec3{-1, 0.5, 2}
	c := v.Clamp(0, 1)
	assert.Equal(t, Vec3{0, 0.5, 1}, c)
}

func TestRayAt(t *testing.T) {
	r := NewRay(Vec3{0, 0, 0}, Vec3{1, 0, 0})
	p := r.At(5)
	assert.Equal(t, Vec3{5, 0, 0}, p)
}

func TestNewRayToIsUnit(t *testing.T) {
	r := NewRayTo(Vec3{0, 0, 0}, Vec3{3, 4, 0})
	assert.True(t, r.Direction.IsUnit(1e-9))
	assert.InDelta(t, math.Hypot(3, 4), r.At(math.Hypot(3, 4)).Length(), 1e-9)
}
