package bsdf

import (
	"math"

	"github.com/lumenforge/pathtracer/pkg/core"
)

// minAlpha floors the GGX roughness parameter so the distribution never
// collapses to a literal Dirac delta, which would make PDF/Eval blow up to
// infinity; original_source's cooktorrance.rs applies the same floor.
const minAlpha = 1e-3

// GGX is a microfacet specular BSDF using the Trowbridge-Reitz (GGX) normal
// distribution, Smith masking-shadowing, and Schlick-Fresnel, per spec §4.C.
type GGX struct {
	F0        core.Vec3 // reflectance at normal incidence
	Roughness float64   // perceptual roughness in [0, 1]; alpha = roughness^2
}

// NewGGX constructs a GGX specular lobe with the given Fresnel reflectance
// and perceptual roughness.
func NewGGX(f0 core.Vec3, roughness float64) *GGX {
	return &GGX{F0: f0, Roughness: roughness}
}

func (g *GGX) alpha() float64 {
	a := g.Roughness * g.Roughness
	if a < minAlpha {
		return minAlpha
	}
	return a
}

func tan2FromCos(cos float64) float64 {
	cos2 := cos * cos
	if cos2 <= 1e-12 {
		return math.Inf(1)
	}
	return (1 - cos2) / cos2
}

// Eval implements BSDF.
func (g *GGX) Eval(n, wo, wi core.Vec3) core.Vec3 {
	cosO := wo.Dot(n)
	cosI := wi.Dot(n)
	if cosO <= 0 || cosI <= 0 {
		return core.Vec3{}
	}
	h := wo.Add(wi).Normalize()
	cosH := h.Dot(n)
	cosLH := wi.Dot(h)

	alpha := g.alpha()
	d := core.GGXDistribution(alpha, cosH)
	g1o := core.GGXSmithG1(alpha, cosO, tan2FromCos(cosO))
	g1i := core.GGXSmithG1(alpha, cosI, tan2FromCos(cosI))
	smithG := g1o * g1i
	fr := SchlickFresnel(g.F0, cosLH)

	denom := 4 * cosO * cosI
	if denom <= 0 {
		return core.Vec3{}
	}
	return fr.Scale(d * smithG / denom)
}

// Sample implements BSDF via half-vector importance sampling: draw a
// microfacet normal h from the GGX distribution, reflect wo about h to get
// wi, then convert the half-vector PDF to a solid-angle PDF over wi with
// the Jacobian 1/(4 cos(theta_lh)).
func (g *GGX) Sample(n, wo core.Vec3, u1, u2 float64) Sample {
	cosO := wo.Dot(n)
	if cosO <= 0 {
		return Sample{}
	}
	frame := core.NewFrame(n)
	localH := core.SampleGGXHalfVector(g.alpha(), u1, u2)
	h := frame.ToWorld(localH)
	wi := wo.Negate().Reflect(h)
	if wi.Dot(n) <= 0 {
		return Sample{}
	}
	pdf := g.PDF(n, wo, wi)
	if pdf <= 0 {
		return Sample{}
	}
	return Sample{Wi: wi, F: g.Eval(n, wo, wi), PDF: pdf}
}

// PDF implements BSDF, converting the half-vector sampling density into a
// solid-angle density over wi.
func (g *GGX) PDF(n, wo, wi core.Vec3) float64 {
	cosO := wo.Dot(n)
	cosI := wi.Dot(n)
	if cosO <= 0 || cosI <= 0 {
		return 0
	}
	h := wo.Add(wi).Normalize()
	cosH := h.Dot(n)
	cosLH := wi.Dot(h)
	if cosLH <= 0 {
		return 0
	}
	d := core.GGXDistribution(g.alpha(), cosH)
	return d * cosH / (4 * cosLH)
}

// IsSpecular implements BSDF.
func (g *GGX) IsSpecular() bool { return false }

// Fresnel returns the Schlick-Fresnel reflectance this lobe would use for
// the (wo, wi) pair, evaluated at cos(theta_lh) per Open Question #1 — the
// same term Eval scales its distribution/geometry product by. Exposed so
// Combined can subtract the specularly-reflected fraction out of its
// diffuse term.
func (g *GGX) Fresnel(n, wo, wi core.Vec3) core.Vec3 {
	cosO := wo.Dot(n)
	cosI := wi.Dot(n)
	if cosO <= 0 || cosI <= 0 {
		return core.Vec3{}
	}
	h := wo.Add(wi).Normalize()
	return SchlickFresnel(g.F0, wi.Dot(h))
}

// Combined is a diffuse+specular material that internally mixes a Diffuse
// and a GGX lobe, matching original_source's cooktorrance.rs pairing of a
// diffuse and specular term under one material with a fixed 0.5/0.5
// sampling split and one-sample MIS between the two lobes' PDFs (spec §4.C).
type Combined struct {
	Diffuse *Diffuse
	Specular *GGX
}

// NewCombined constructs a two-lobe material.
func NewCombined(diffuse *Diffuse, specular *GGX) *Combined {
	return &Combined{Diffuse: diffuse, Specular: specular}
}

const lobeWeight = 0.5

// Eval implements BSDF by summing both lobes, scaling the diffuse term by
// (1-F) so the fraction of light Fresnel-reflected by the specular lobe
// isn't also counted as diffusely scattered, per cooktorrance.rs's eval().
func (c *Combined) Eval(n, wo, wi core.Vec3) core.Vec3 {
	f := c.Specular.Fresnel(n, wo, wi)
	one := core.NewVec3(1, 1, 1)
	diff := c.Diffuse.Eval(n, wo, wi).Mul(one.Sub(f))
	return diff.Add(c.Specular.Eval(n, wo, wi))
}

// Sample implements BSDF by flipping a coin (on u1) to choose which lobe to
// importance-sample from, then reporting the MIS-combined PDF and the
// summed Eval so the estimator is unbiased regardless of which lobe fired.
func (c *Combined) Sample(n, wo core.Vec3, u1, u2 float64) Sample {
	var s Sample
	if u1 < lobeWeight {
		u1r := u1 / lobeWeight
		s = c.Diffuse.Sample(n, wo, u1r, u2)
	} else {
		u1r := (u1 - lobeWeight) / (1 - lobeWeight)
		s = c.Specular.Sample(n, wo, u1r, u2)
	}
	if s.PDF <= 0 {
		return Sample{}
	}
	pdf := c.PDF(n, wo, s.Wi)
	if pdf <= 0 {
		return Sample{}
	}
	return Sample{Wi: s.Wi, F: c.Eval(n, wo, s.Wi), PDF: pdf}
}

// PDF implements BSDF by linearly mixing both lobes' PDFs with the same
// weight Sample uses to pick between them.
func (c *Combined) PDF(n, wo, wi core.Vec3) float64 {
	pd := c.Diffuse.PDF(n, wo, wi)
	ps := c.Specular.PDF(n, wo, wi)
	return lobeWeight*pd + (1-lobeWeight)*ps
}

// IsSpecular implements BSDF.
func (c *Combined) IsSpecular() bool { return false }
