package bsdf

import (
	"math"

	"github.com/lumenforge/pathtracer/pkg/core"
)

// Diffuse is a Lambertian BSDF: f_r(wo, wi) = albedo / pi, independent of
// both directions, sampled cosine-weighted over the hemisphere around n.
type Diffuse struct {
	Albedo core.Vec3
}

// NewDiffuse constructs a Lambertian BSDF with the given reflectance.
func NewDiffuse(albedo core.Vec3) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

// Eval implements BSDF.
func (d *Diffuse) Eval(n, wo, wi core.Vec3) core.Vec3 {
	if wi.Dot(n) <= 0 || wo.Dot(n) <= 0 {
		return core.Vec3{}
	}
	return d.Albedo.Scale(1.0 / math.Pi)
}

// Sample implements BSDF, drawing wi cosine-weighted around n.
func (d *Diffuse) Sample(n, wo core.Vec3, u1, u2 float64) Sample {
	frame := core.NewFrame(n)
	local := core.CosineSampleHemisphere(u1, u2)
	wi := frame.ToWorld(local)
	pdf := core.CosineHemispherePDF(local.Z)
	if wo.Dot(n) <= 0 {
		return Sample{}
	}
	return Sample{Wi: wi, F: d.Eval(n, wo, wi), PDF: pdf}
}

// PDF implements BSDF.
func (d *Diffuse) PDF(n, wo, wi core.Vec3) float64 {
	cos := wi.Dot(n)
	if cos <= 0 || wo.Dot(n) <= 0 {
		return 0
	}
	return core.CosineHemispherePDF(cos)
}

// IsSpecular implements BSDF.
func (d *Diffuse) IsSpecular() bool { return false }
