package surface

import (
	"math"

	"github.com/lumenforge/pathtracer/pkg/core"
)

// Sphere is a ray-intersectable, sampleable sphere primitive.
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere constructs a sphere, returning a construction-validation error
// if the radius is non-positive.
func NewSphere(center core.Vec3, radius float64) (*Sphere, error) {
	if radius <= 0 {
		return nil, core.Errorf("surface: sphere radius must be positive, got %g", radius)
	}
	return &Sphere{Center: center, Radius: radius}, nil
}

// Hit implements Surface via the standard quadratic ray/sphere solution.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	oc := ray.Origin.Sub(s.Center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius
	disc := halfB*halfB - a*c
	if disc < 0 {
		return Hit{}, false
	}
	sqrtDisc := math.Sqrt(disc)

	root := (-halfB - sqrtDisc) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtDisc) / a
		if root < tMin || root > tMax {
			return Hit{}, false
		}
	}

	p := ray.At(root)
	n := p.Sub(s.Center).Scale(1.0 / s.Radius)
	return Hit{T: root, Point: p, Normal: n, UV: sphereUV(n), Surface: s}, true
}

func sphereUV(n core.Vec3) core.Vec2 {
	theta := math.Acos(-n.Y)
	phi := math.Atan2(-n.Z, n.X) + math.Pi
	return core.Vec2{X: phi / (2 * math.Pi), Y: theta / math.Pi}
}

// Bounds implements Surface.
func (s *Sphere) Bounds() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.MustAABB(s.Center.Sub(r), s.Center.Add(r))
}

// Area implements Surface.
func (s *Sphere) Area() float64 { return 4 * math.Pi * s.Radius * s.Radius }

// SampleP draws a point uniformly over the full sphere surface.
func (s *Sphere) SampleP(u1, u2 float64) AreaSample {
	local := core.UniformSampleSphere(u1, u2)
	return AreaSample{
		Point:  s.Center.Add(local.Scale(s.Radius)),
		Normal: local,
		PDFA:   1.0 / s.Area(),
	}
}

// PDFP implements Surface.
func (s *Sphere) PDFP() float64 { return 1.0 / s.Area() }

// SampleDFrom implements DirectionSampler: rather than sampling the full
// sphere and rejecting samples on the far side, it samples uniformly over
// just the hemisphere of the sphere facing `from`, doubling the area-measure
// PDF from 1/Area to 2/Area in exchange for never wasting a sample on an occluded
// back-face point — the "hemisphere-facing-view" strategy original_source's
// sphere sampling uses (spec §9 Open Question #3: sample and pdf must agree
// on this convention, which they do here by construction).
func (s *Sphere) SampleDFrom(from core.Vec3, u1, u2 float64) (core.Vec3, float64, float64) {
	toCenter := s.Center.Sub(from)
	distToCenter := toCenter.Length()
	if distToCenter < 1e-9 {
		dir, pdf, dist := SampleD(s, from, u1, u2)
		return dir, pdf, dist
	}
	viewNormal := toCenter.Scale(-1.0 / distToCenter) // points from sphere center toward `from`
	frame := core.NewFrame(viewNormal)
	local := core.UniformSampleSphere(u1, u2)
	// Fold samples from the far hemisphere onto the near one (local.Z is the
	// component along viewNormal in local space).
	if local.Dot(core.Vec3{Z: 1}) < 0 {
		local = local.Negate()
	}
	normal := frame.ToWorld(local)
	point := s.Center.Add(normal.Scale(s.Radius))

	toLight := point.Sub(from)
	dist := toLight.Length()
	if dist < 1e-12 {
		return core.Vec3{}, 0, 0
	}
	dir := toLight.Scale(1.0 / dist)
	cosLight := normal.Dot(dir.Negate())
	if cosLight <= 0 {
		return dir, 0, dist
	}
	pdfArea := 2.0 / s.Area()
	pdf := pdfArea * dist * dist / cosLight
	return dir, pdf, dist
}

// PDFDFrom implements DirectionSampler, the solid-angle PDF counterpart of
// SampleDFrom for direction dir from `from`; it finds the point on the
// sphere by intersecting the ray (from, dir) itself.
func (s *Sphere) PDFDFrom(from, dir core.Vec3) float64 {
	hit, ok := s.Hit(core.NewRay(from, dir), 1e-6, math.Inf(1))
	if !ok {
		return 0
	}
	toCenter := s.Center.Sub(from)
	if hit.Normal.Dot(toCenter.Negate().Normalize()) < -1e-6 {
		// hit is on the far hemisphere relative to `from`; SampleDFrom never
		// produces such directions, so its density there is zero.
		return 0
	}
	toLight := hit.Point.Sub(from)
	distSq := toLight.LengthSquared()
	cosLight := hit.Normal.Dot(dir.Negate())
	if cosLight <= 0 {
		return 0
	}
	return (2.0 / s.Area()) * distSq / cosLight
}
