package bsdf

import "github.com/lumenforge/pathtracer/pkg/core"

// SchlickFresnel evaluates the Schlick approximation of the Fresnel
// reflectance at normal-incidence reflectance f0, given the cosine of the
// angle between the two directions the reflectance is evaluated at.
//
// Spec §9 Open Question #1 resolves in favor of evaluating Fresnel at
// cos(theta_lh) — the angle between the light/outgoing direction and the
// half-vector — rather than cos(theta_nl) against the macro-normal, matching
// the physically-motivated Cook-Torrance formulation (Fresnel is a property
// of the microfacet, not the macrosurface).
func SchlickFresnel(f0 core.Vec3, cosThetaLH float64) core.Vec3 {
	c := clamp01(1 - cosThetaLH)
	c5 := c * c * c * c * c
	one := core.NewVec3(1, 1, 1)
	return f0.Add(one.Sub(f0).Scale(c5))
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
