// Package bsdf implements the bidirectional scattering distribution
// functions surfaces shade with: Lambertian diffuse and GGX microfacet
// specular, combined through a per-material internal sampling strategy.
package bsdf

import "github.com/lumenforge/pathtracer/pkg/core"

// Sample is the result of importance-sampling an outgoing direction from a
// BSDF: the sampled direction (in world space), the BSDF value at that
// direction, and the PDF (solid-angle measure) the direction was drawn with.
type Sample struct {
	Wi   core.Vec3
	F    core.Vec3
	PDF  float64
	Spec bool // true if the sample came from a specular (delta-like) lobe
}

// BSDF is the contract every surface material satisfies: evaluate the
// scattering function, importance-sample an outgoing direction, and report
// the PDF of a given direction — all three expressed over the solid-angle
// measure. EvalProj below folds in the cosine term for callers that want
// the projected-solid-angle numerator directly (spec §4.C).
type BSDF interface {
	// Eval returns f_r(wo, wi), the value of the scattering function for a
	// pair of world-space directions measured against the shading normal n.
	Eval(n, wo, wi core.Vec3) core.Vec3

	// Sample draws an outgoing direction wi given a fixed incoming/view
	// direction wo, returning the BSDF value and the PDF at that direction.
	// u1, u2 are independent uniform random numbers in [0, 1).
	Sample(n, wo core.Vec3, u1, u2 float64) Sample

	// PDF returns the solid-angle density Sample would have assigned to wi.
	PDF(n, wo, wi core.Vec3) float64

	// IsSpecular reports whether this BSDF is a delta distribution (no
	// finite Eval/PDF) — none of the BSDFs in this package are, but the
	// method is part of the contract so the integrator can special-case
	// specular materials without a type switch.
	IsSpecular() bool
}

// EvalProj returns Eval(n, wo, wi) scaled by cos(theta_i), i.e. the BSDF
// value measured against the projected-solid-angle measure — the f·cosθ
// numerator every throughput and direct-lighting estimate in pkg/integrator
// needs, folded into one call instead of each call site recomputing the
// cosine term by hand.
func EvalProj(b BSDF, n, wo, wi core.Vec3) core.Vec3 {
	cos := wi.Dot(n)
	if cos <= 0 {
		return core.Vec3{}
	}
	return b.Eval(n, wo, wi).Scale(cos)
}
