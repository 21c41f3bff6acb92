package surface

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenforge/pathtracer/pkg/core"
)

func TestTriangleHitCentroid(t *testing.T) {
	tri, err := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
	)
	require.NoError(t, err)

	centroid := tri.V0.Add(tri.V1).Add(tri.V2).Scale(1.0 / 3)
	ray := core.NewRay(centroid.Add(core.NewVec3(0, 0, 5)), core.NewVec3(0, 0, -1))

	hit, ok := tri.Hit(ray, 1e-6, math.Inf(1))
	require.True(t, ok)
	assert.InDelta(t, 0, hit.Point.Sub(centroid).Length(), 1e-9)
}

func TestTriangleRejectsDegenerate(t *testing.T) {
	_, err := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(2, 0, 0))
	require.Error(t, err)
}

func TestTriangleAreaMatchesShoelace(t *testing.T) {
	tri, err := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 3, 0))
	require.NoError(t, err)
	assert.InDelta(t, 6.0, tri.Area(), 1e-9)
}

func TestTriangleSampleLandsInTriangle(t *testing.T) {
	tri, err := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))
	require.NoError(t, err)
	for u1 := 0.05; u1 < 1; u1 += 0.1 {
		for u2 := 0.05; u2 < 1; u2 += 0.1 {
			s := tri.SampleP(u1, u2)
			assert.GreaterOrEqual(t, s.Point.X, -1e-9)
			assert.GreaterOrEqual(t, s.Point.Y, -1e-9)
			assert.LessOrEqual(t, s.Point.X+s.Point.Y, 1+1e-9)
		}
	}
}
