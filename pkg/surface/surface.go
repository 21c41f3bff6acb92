// Package surface implements the ray-intersectable, sampleable geometric
// primitives the scene is built from: spheres and triangles.
package surface

import "github.com/lumenforge/pathtracer/pkg/core"

// Hit records the result of a successful ray/surface intersection.
type Hit struct {
	T        float64
	Point    core.Vec3
	Normal   core.Vec3
	UV       core.Vec2
	Surface  Surface
}

// AreaSample is a point drawn on a surface's area measure, together with
// its surface normal at that point and the area-measure PDF (1/area for a
// uniformly-sampled surface).
type AreaSample struct {
	Point  core.Vec3
	Normal core.Vec3
	PDFA   float64
}

// Surface is the contract every intersectable, sampleable primitive
// satisfies (spec §4.D). Beyond Hit/Bounds/Area, a Surface need only
// implement the area-measure sampling and PDF pair (SampleP/PDFP); the
// solid-angle variant (SampleD/PDFD) has a single default conversion
// implemented once in this package as free functions, mirroring
// original_source's traits.rs default-method pattern (a Rust trait's
// default methods become ordinary Go functions taking the Surface as their
// first argument).
type Surface interface {
	Hit(ray core.Ray, tMin, tMax float64) (Hit, bool)
	Bounds() core.AABB
	Area() float64

	// SampleP draws a point uniformly over the surface's area measure.
	SampleP(u1, u2 float64) AreaSample
	// PDFP returns the area-measure PDF of SampleP (1/Area for any surface
	// sampled uniformly, but kept as a method so non-uniform surfaces can
	// override it).
	PDFP() float64
}

// DirectionSampler is an optional extension a Surface may implement to
// provide a more efficient direction-sampling strategy than the generic
// SampleP-based conversion below — e.g. Sphere samples only the hemisphere
// facing the viewer rather than the whole surface. Callers (the light
// sampler, the integrator's direct-lighting estimator) should type-assert
// for this and prefer it over SampleD/PDFD when present.
type DirectionSampler interface {
	SampleDFrom(from core.Vec3, u1, u2 float64) (dir core.Vec3, pdf float64, dist float64)
	PDFDFrom(from, dir core.Vec3) float64
}

// SampleD draws a direction from a point of view `from` toward a uniformly
// sampled point on s, returning the direction and the PDF converted to the
// solid-angle measure via the Jacobian dω = dA·cos(theta_light)/r².
func SampleD(s Surface, from core.Vec3, u1, u2 float64) (dir core.Vec3, pdf float64, dist float64) {
	a := s.SampleP(u1, u2)
	toLight := a.Point.Sub(from)
	distSq := toLight.LengthSquared()
	dist = toLight.Length()
	if dist < 1e-12 {
		return core.Vec3{}, 0, 0
	}
	dir = toLight.Scale(1.0 / dist)
	cosLight := a.Normal.Dot(dir.Negate())
	if cosLight <= 0 {
		return dir, 0, dist
	}
	pdf = a.PDFA * distSq / cosLight
	return dir, pdf, dist
}

// PDFD converts a surface's area-measure PDF into the solid-angle measure
// as seen from `from`, for a known hit point/normal on s along direction
// dir — the PDF a light-sampling strategy reports to the MIS weight
// computation in the integrator.
func PDFD(s Surface, from, hitPoint, hitNormal, dir core.Vec3) float64 {
	toLight := hitPoint.Sub(from)
	distSq := toLight.LengthSquared()
	if distSq < 1e-24 {
		return 0
	}
	cosLight := hitNormal.Dot(dir.Negate())
	if cosLight <= 0 {
		return 0
	}
	return s.PDFP() * distSq / cosLight
}
