// Package integrator implements the path-tracing estimator that turns a
// camera ray into a radiance sample by Monte-Carlo integration of the
// light-transport equation, combining BSDF and light sampling with
// multiple importance sampling.
package integrator

import (
	"math"
	"math/rand"

	"github.com/lumenforge/pathtracer/pkg/bsdf"
	"github.com/lumenforge/pathtracer/pkg/core"
	"github.com/lumenforge/pathtracer/pkg/kdtree"
	"github.com/lumenforge/pathtracer/pkg/surface"
)

// PathTracer is a fixed-depth, MIS direct-lighting path tracer. It performs
// no Russian roulette termination, matching original_source's
// core/src/renderer/pathtracer.rs, which always runs to MaxDepth.
type PathTracer struct {
	Scene                *kdtree.Scene
	MaxDepth             int
	EnableDirectLighting bool
}

// NewPathTracer constructs a path tracer over scene with the given maximum
// bounce depth and direct lighting enabled.
func NewPathTracer(scene *kdtree.Scene, maxDepth int) *PathTracer {
	return &PathTracer{Scene: scene, MaxDepth: maxDepth, EnableDirectLighting: true}
}

const positionEpsilon = 1e-4

// Li estimates the radiance arriving along ray, using rng for every random
// number the estimator consumes (one RNG per worker goroutine, per spec
// §5 — never shared across goroutines).
func (pt *PathTracer) Li(ray core.Ray, rng *rand.Rand) core.Vec3 {
	radiance := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)
	currentRay := ray
	specularBounce := true // a camera ray is treated like a specular bounce: always add emission it hits directly

	for depth := 0; depth < pt.MaxDepth; depth++ {
		hit, ok := pt.Scene.Hit(currentRay, positionEpsilon, math.Inf(1))
		if !ok {
			break
		}

		emission := pt.Scene.EmissionFor(hit.Surface)
		if !emission.IsZero() && (!pt.EnableDirectLighting || specularBounce) {
			radiance = radiance.Add(throughput.Mul(emission))
		}

		mat := pt.Scene.MaterialFor(hit.Surface)
		if mat == nil {
			break
		}

		wo := currentRay.Direction.Negate()
		n := hit.Normal
		if n.Dot(wo) < 0 {
			n = n.Negate()
		}

		if pt.EnableDirectLighting && len(pt.Scene.Emitters) > 0 {
			radiance = radiance.Add(throughput.Mul(pt.sampleDirectLighting(hit.Point, n, wo, mat, rng)))
		}

		u1, u2 := rng.Float64(), rng.Float64()
		s := mat.Sample(n, wo, u1, u2)
		if s.PDF <= 0 || s.F.IsZero() {
			break
		}

		fProj := bsdf.EvalProj(mat, n, wo, s.Wi)
		if fProj.IsZero() {
			break
		}

		throughput = throughput.Mul(fProj).Scale(1.0 / s.PDF)
		if throughput.MaxComponent() < 1e-6 {
			break
		}

		specularBounce = s.Spec
		currentRay = core.NewRay(hit.Point, s.Wi)
	}

	return radiance
}

// sampleDirectLighting estimates the direct-lighting integral at a shading
// point via one-sample MIS between light-source sampling and BSDF
// sampling, per spec §4.F / original_source's pathtracer.rs.
func (pt *PathTracer) sampleDirectLighting(point, n, wo core.Vec3, mat bsdf.BSDF, rng *rand.Rand) core.Vec3 {
	// Pick one strategy with probability 1/2 and divide its MIS-weighted
	// contribution by that selection probability.
	const strategyProb = 0.5
	if rng.Float64() < strategyProb {
		return pt.sampleLightStrategy(point, n, wo, mat, rng).Scale(1 / strategyProb)
	}
	return pt.sampleBSDFStrategy(point, n, wo, mat, rng).Scale(1 / strategyProb)
}

func (pt *PathTracer) sampleLightStrategy(point, n, wo core.Vec3, mat bsdf.BSDF, rng *rand.Rand) core.Vec3 {
	lightIdx, pmf := pt.Scene.Lights.Sample(rng.Float64())
	if lightIdx < 0 || pmf <= 0 {
		return core.Vec3{}
	}
	emitter := pt.Scene.Emitters[lightIdx]

	var dir core.Vec3
	var pdfD, dist float64
	if ds, ok := emitter.Surface.(surface.DirectionSampler); ok {
		dir, pdfD, dist = ds.SampleDFrom(point, rng.Float64(), rng.Float64())
	} else {
		dir, pdfD, dist = surface.SampleD(emitter.Surface, point, rng.Float64(), rng.Float64())
	}
	if pdfD <= 0 {
		return core.Vec3{}
	}
	pdfLight := pdfD * pmf

	fProj := bsdf.EvalProj(mat, n, wo, dir)
	if fProj.IsZero() {
		return core.Vec3{}
	}
	if pt.Scene.Occluded(point, dir, dist) {
		return core.Vec3{}
	}

	pdfBSDF := mat.PDF(n, wo, dir)
	w := core.PowerHeuristic(1, pdfLight, 1, pdfBSDF)
	le := pt.Scene.EmissionFor(emitter.Surface)
	return fProj.Mul(le).Scale(w / pdfLight)
}

func (pt *PathTracer) sampleBSDFStrategy(point, n, wo core.Vec3, mat bsdf.BSDF, rng *rand.Rand) core.Vec3 {
	s := mat.Sample(n, wo, rng.Float64(), rng.Float64())
	if s.PDF <= 0 || s.F.IsZero() {
		return core.Vec3{}
	}
	fProj := bsdf.EvalProj(mat, n, wo, s.Wi)
	if fProj.IsZero() {
		return core.Vec3{}
	}

	hit, ok := pt.Scene.Hit(core.NewRay(point, s.Wi), positionEpsilon, math.Inf(1))
	if !ok {
		return core.Vec3{}
	}
	le := pt.Scene.EmissionFor(hit.Surface)
	if le.IsZero() {
		return core.Vec3{}
	}

	pdfLight := pt.lightDirectionPDF(hit.Surface, hit.Point, hit.Normal, point, s.Wi)
	if pdfLight <= 0 {
		return core.Vec3{}
	}
	w := core.PowerHeuristic(1, s.PDF, 1, pdfLight)
	return fProj.Mul(le).Scale(w / s.PDF)
}

// lightDirectionPDF returns the solid-angle PDF the light-sampling strategy
// would have assigned to dir, used to compute the MIS weight for a sample
// that arrived at an emitter via BSDF sampling instead.
func (pt *PathTracer) lightDirectionPDF(hitSurface surface.Surface, hitPoint, hitNormal, from, dir core.Vec3) float64 {
	idx := -1
	for i, e := range pt.Scene.Emitters {
		if e.Surface == hitSurface {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0
	}
	pmf := pt.Scene.Lights.PMF(idx)
	if pmf <= 0 {
		return 0
	}

	var pdfD float64
	if ds, ok := hitSurface.(surface.DirectionSampler); ok {
		pdfD = ds.PDFDFrom(from, dir)
	} else {
		pdfD = surface.PDFD(hitSurface, from, hitPoint, hitNormal, dir)
	}
	return pdfD * pmf
}
