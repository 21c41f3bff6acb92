package core

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSampleHemisphereMatchesPDF(t *testing.T) {
	// Every sample must lie in the upper hemisphere with a positive PDF, and
	// cos(theta)/pdf must equal pi for each sample, so the Monte-Carlo
	// estimate of the cosine integral over the hemisphere is exactly pi.
	rng := rand.New(rand.NewSource(7))
	const n = 20000
	var sum float64
	for i := 0; i < n; i++ {
		local := CosineSampleHemisphere(rng.Float64(), rng.Float64())
		assert.GreaterOrEqual(t, local.Z, 0.0)
		pdf := CosineHemispherePDF(local.Z)
		assert.Greater(t, pdf, 0.0)
		sum += local.Z / pdf // cos(theta)/pdf(theta) == pi for every sample
	}
	mean := sum / n
	assert.InDelta(t, math.Pi, mean, 1e-9)
}

func TestUniformSampleSphereIsUnit(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		v := UniformSampleSphere(rng.Float64(), rng.Float64())
		assert.True(t, v.IsUnit(1e-9))
	}
}

func TestFrameRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		n := UniformSampleSphere(rng.Float64(), rng.Float64())
		f := NewFrame(n)
		local := UniformSampleSphere(rng.Float64(), rng.Float64())
		world := f.ToWorld(local)
		back := f.ToLocal(world)
		assert.InDelta(t, local.X, back.X, 1e-9)
		assert.InDelta(t, local.Y, back.Y, 1e-9)
		assert.InDelta(t, local.Z, back.Z, 1e-9)
	}
}

func TestGGXSmithG1UsesCorrectForm(t *testing.T) {
	// Spec §9 Open Question #2: prefer 2/(1+sqrt(1+a^2 tan^2 theta)) over
	// the 0.5*(1+sqrt(...)) variant. At grazing incidence (tan^2 -> inf)
	// the correct form must tend to 0, while the buggy form tends to
	// infinity.
	g1 := GGXSmithG1(0.5, 0.01, 1e12)
	assert.Less(t, g1, 0.01)
}

func TestPowerHeuristicSumsToOneForTwoStrategies(t *testing.T) {
	w1 := PowerHeuristic(1, 0.3, 1, 0.7)
	w2 := PowerHeuristic(1, 0.7, 1, 0.3)
	assert.InDelta(t, 1.0, w1+w2, 1e-9)
}
