package surface

import (
	"math"

	"github.com/lumenforge/pathtracer/pkg/core"
)

// Triangle is a ray-intersectable, sampleable flat triangle primitive.
type Triangle struct {
	V0, V1, V2 core.Vec3
	N0, N1, N2 core.Vec3 // per-vertex shading normals
	UV0, UV1, UV2 core.Vec2
	Backface   bool // if false, back-facing hits are culled
}

// NewTriangle constructs a triangle, computing a flat geometric normal for
// each vertex if per-vertex normals are not supplied, and returning a
// construction-validation error if the triangle is degenerate (zero area).
// The triangle is two-sided (Backface true); set Backface to false to cull
// back-facing hits.
func NewTriangle(v0, v1, v2 core.Vec3) (*Triangle, error) {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	n := e1.Cross(e2)
	if n.LengthSquared() < 1e-18 {
		return nil, core.Errorf("surface: triangle (%v, %v, %v) is degenerate", v0, v1, v2)
	}
	n = n.Normalize()
	return &Triangle{V0: v0, V1: v1, V2: v2, N0: n, N1: n, N2: n, Backface: true}, nil
}

// WithNormals overrides the per-vertex shading normals (e.g. for smooth
// mesh shading), returning the same triangle for chaining.
func (t *Triangle) WithNormals(n0, n1, n2 core.Vec3) *Triangle {
	t.N0, t.N1, t.N2 = n0, n1, n2
	return t
}

// WithUVs overrides the per-vertex texture coordinates.
func (t *Triangle) WithUVs(uv0, uv1, uv2 core.Vec2) *Triangle {
	t.UV0, t.UV1, t.UV2 = uv0, uv1, uv2
	return t
}

func (t *Triangle) geometricNormal() core.Vec3 {
	return t.V1.Sub(t.V0).Cross(t.V2.Sub(t.V0)).Normalize()
}

// Hit implements Surface via the Möller-Trumbore algorithm.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	const eps = 1e-10
	e1 := t.V1.Sub(t.V0)
	e2 := t.V2.Sub(t.V0)
	pvec := ray.Direction.Cross(e2)
	det := e1.Dot(pvec)

	if !t.Backface && det < eps {
		return Hit{}, false
	}
	if t.Backface && math.Abs(det) < eps {
		return Hit{}, false
	}

	invDet := 1.0 / det
	tvec := ray.Origin.Sub(t.V0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return Hit{}, false
	}

	qvec := tvec.Cross(e1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return Hit{}, false
	}

	dist := e2.Dot(qvec) * invDet
	if dist < tMin || dist > tMax {
		return Hit{}, false
	}

	w := 1 - u - v
	n := t.N0.Scale(w).Add(t.N1.Scale(u)).Add(t.N2.Scale(v)).Normalize()
	uv := t.UV0.Scale(w).Add(t.UV1.Scale(u)).Add(t.UV2.Scale(v))
	return Hit{T: dist, Point: ray.At(dist), Normal: n, UV: uv, Surface: t}, true
}

// Bounds implements Surface.
func (t *Triangle) Bounds() core.AABB {
	return core.AABBFromPoints(t.V0, t.V1, t.V2)
}

// Area implements Surface.
func (t *Triangle) Area() float64 {
	return 0.5 * t.V1.Sub(t.V0).Cross(t.V2.Sub(t.V0)).Length()
}

// SampleP draws a point uniformly over the triangle's area using the
// standard sqrt-based barycentric parameterization
// (1-sqrt(r1), sqrt(r1)(1-r2), sqrt(r1)r2), which maps the unit square to
// the triangle with uniform area density.
func (t *Triangle) SampleP(u1, u2 float64) AreaSample {
	sqrtR1 := math.Sqrt(u1)
	b0 := 1 - sqrtR1
	b1 := sqrtR1 * (1 - u2)
	b2 := sqrtR1 * u2

	point := t.V0.Scale(b0).Add(t.V1.Scale(b1)).Add(t.V2.Scale(b2))
	normal := t.N0.Scale(b0).Add(t.N1.Scale(b1)).Add(t.N2.Scale(b2)).Normalize()
	return AreaSample{Point: point, Normal: normal, PDFA: 1.0 / t.Area()}
}

// PDFP implements Surface.
func (t *Triangle) PDFP() float64 { return 1.0 / t.Area() }
