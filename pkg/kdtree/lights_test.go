package kdtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenforge/pathtracer/pkg/core"
	"github.com/lumenforge/pathtracer/pkg/surface"
)

func TestUniformSamplerPMFSumsToOne(t *testing.T) {
	s := NewUniformSampler(4)
	var sum float64
	for i := 0; i < 4; i++ {
		sum += s.PMF(i)
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}

func TestLinearSamplerWeightsProportionalToPower(t *testing.T) {
	small, err := surface.NewSphere(core.NewVec3(0, 0, 0), 1)
	require.NoError(t, err)
	big, err := surface.NewSphere(core.NewVec3(10, 0, 0), 1)
	require.NoError(t, err)

	emitters := []Emitter{
		{Surface: small, Le: 1},
		{Surface: big, Le: 9},
	}
	s := NewLinearSampler(emitters)

	pmf0 := s.PMF(0)
	pmf1 := s.PMF(1)
	assert.InDelta(t, 1.0, pmf0+pmf1, 1e-9)
	assert.InDelta(t, 9.0, pmf1/pmf0, 0.05)
}

func TestLinearSamplerSampleReturnsValidIndex(t *testing.T) {
	sph, err := surface.NewSphere(core.NewVec3(0, 0, 0), 1)
	require.NoError(t, err)
	emitters := []Emitter{{Surface: sph, Le: 1}}
	s := NewLinearSampler(emitters)

	for _, u := range []float64{0, 0.25, 0.5, 0.75, 0.999} {
		idx, pmf := s.Sample(u)
		assert.Equal(t, 0, idx)
		assert.InDelta(t, 1.0, pmf, 1e-9)
	}
}
