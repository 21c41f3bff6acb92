package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumenforge/pathtracer/pkg/core"
)

// TestClipTriangleFullyInsideRect checks that clipping a triangle against a
// rectangle that fully contains it returns the triangle unchanged (area
// preserved), the baseline case of spec §8 S2's triangle-in-rectangle area
// property.
func TestClipTriangleFullyInsideRect(t *testing.T) {
	tri := [3]core.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	poly := ClipTriangleToRect(tri, core.Vec2{X: -1, Y: -1}, core.Vec2{X: 2, Y: 2})
	assert.InDelta(t, 0.5, PolygonArea(poly), 1e-9)
}

// TestClipRightTriangleAgainstVerticalHalfPlane clips the right triangle
// (0,0),(2,0),(0,2) (area 2) against x<=a, and checks the clipped area
// against the closed-form trapezoid area 2 - 0.5*(2-a)^2 (total area minus
// the corner triangle with legs (2-a) sliced off by the cut), exercising
// the same clip machinery the S2 triangle-in-rectangle property uses.
func TestClipRightTriangleAgainstVerticalHalfPlane(t *testing.T) {
	tri := [3]core.Vec2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}}
	for _, a := range []float64{0.5, 1.0, 1.5} {
		poly := ClipTriangleToRect(tri, core.Vec2{X: -10, Y: -10}, core.Vec2{X: a, Y: 10})
		expected := 2 - 0.5*(2-a)*(2-a)
		assert.InDelta(t, expected, PolygonArea(poly), 1e-9, "a=%v", a)
	}
}

func TestClipTriangleOutsideRectIsEmpty(t *testing.T) {
	tri := [3]core.Vec2{{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 10, Y: 11}}
	poly := ClipTriangleToRect(tri, core.Vec2{X: 0, Y: 0}, core.Vec2{X: 1, Y: 1})
	assert.Equal(t, 0.0, PolygonArea(poly))
}

func TestTriangulateFanCoversPolygonArea(t *testing.T) {
	poly := []core.Vec2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	tris := TriangulateFan(poly)
	var sum float64
	for _, tri := range tris {
		sum += PolygonArea([]core.Vec2{tri[0], tri[1], tri[2]})
	}
	assert.InDelta(t, PolygonArea(poly), sum, 1e-9)
}
