package bsdf

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumenforge/pathtracer/pkg/core"
)

func TestGGXSampleStaysAboveHorizon(t *testing.T) {
	g := NewGGX(core.NewVec3(0.9, 0.9, 0.9), 0.3)
	n := core.NewVec3(0, 0, 1)
	wo := core.NewVec3(0.2, 0, 0.98).Normalize()

	rng := rand.New(rand.NewSource(21))
	hits := 0
	for i := 0; i < 500; i++ {
		s := g.Sample(n, wo, rng.Float64(), rng.Float64())
		if s.PDF <= 0 {
			continue
		}
		hits++
		assert.GreaterOrEqual(t, s.Wi.Dot(n), 0.0)
		assert.GreaterOrEqual(t, s.PDF, 0.0)
	}
	assert.Greater(t, hits, 0)
}

func TestGGXSampleAndPDFAgree(t *testing.T) {
	g := NewGGX(core.NewVec3(0.8, 0.8, 0.8), 0.5)
	n := core.NewVec3(0, 1, 0)
	wo := core.NewVec3(0, 1, 0)

	rng := rand.New(rand.NewSource(31))
	s := g.Sample(n, wo, rng.Float64(), rng.Float64())
	if s.PDF <= 0 {
		t.Skip("degenerate sample, try a different seed")
	}
	pdfAtWi := g.PDF(n, wo, s.Wi)
	assert.InDelta(t, s.PDF, pdfAtWi, 1e-9)
}

func TestCombinedPDFIsMixOfLobes(t *testing.T) {
	diffuse := NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))
	specular := NewGGX(core.NewVec3(0.04, 0.04, 0.04), 0.4)
	c := NewCombined(diffuse, specular)

	n := core.NewVec3(0, 1, 0)
	wo := core.NewVec3(0, 1, 0)
	wi := core.NewVec3(0.1, 0.9, 0.1).Normalize()

	expected := 0.5*diffuse.PDF(n, wo, wi) + 0.5*specular.PDF(n, wo, wi)
	assert.InDelta(t, expected, c.PDF(n, wo, wi), 1e-12)
}
