package surface

import "github.com/lumenforge/pathtracer/pkg/core"

// ClipTriangleToRect clips a 2-D triangle against an axis-aligned rectangle
// [min, max] using the Sutherland-Hodgman algorithm, one edge of the
// rectangle at a time, and returns the resulting convex polygon's vertices
// in winding order. Together with PolygonArea it gives the triangle-in-
// rectangle area of the testable property (§8 S2); nothing else in the
// renderer calls it.
func ClipTriangleToRect(tri [3]core.Vec2, min, max core.Vec2) []core.Vec2 {
	poly := []core.Vec2{tri[0], tri[1], tri[2]}

	type edge struct {
		inside func(p core.Vec2) bool
		isect  func(a, b core.Vec2) core.Vec2
	}
	edges := []edge{
		{inside: func(p core.Vec2) bool { return p.X >= min.X },
			isect: func(a, b core.Vec2) core.Vec2 { return lerpAtX(a, b, min.X) }},
		{inside: func(p core.Vec2) bool { return p.X <= max.X },
			isect: func(a, b core.Vec2) core.Vec2 { return lerpAtX(a, b, max.X) }},
		{inside: func(p core.Vec2) bool { return p.Y >= min.Y },
			isect: func(a, b core.Vec2) core.Vec2 { return lerpAtY(a, b, min.Y) }},
		{inside: func(p core.Vec2) bool { return p.Y <= max.Y },
			isect: func(a, b core.Vec2) core.Vec2 { return lerpAtY(a, b, max.Y) }},
	}

	for _, e := range edges {
		if len(poly) == 0 {
			break
		}
		var out []core.Vec2
		for i := range poly {
			cur := poly[i]
			prev := poly[(i-1+len(poly))%len(poly)]
			curIn := e.inside(cur)
			prevIn := e.inside(prev)
			if curIn {
				if !prevIn {
					out = append(out, e.isect(prev, cur))
				}
				out = append(out, cur)
			} else if prevIn {
				out = append(out, e.isect(prev, cur))
			}
		}
		poly = out
	}
	return poly
}

func lerpAtX(a, b core.Vec2, x float64) core.Vec2 {
	t := (x - a.X) / (b.X - a.X)
	return core.Vec2{X: x, Y: a.Y + t*(b.Y-a.Y)}
}

func lerpAtY(a, b core.Vec2, y float64) core.Vec2 {
	t := (y - a.Y) / (b.Y - a.Y)
	return core.Vec2{X: a.X + t*(b.X-a.X), Y: y}
}

// PolygonArea returns the area of a (possibly non-triangular) convex
// polygon given in winding order via the shoelace formula.
func PolygonArea(poly []core.Vec2) float64 {
	if len(poly) < 3 {
		return 0
	}
	var sum float64
	for i := range poly {
		j := (i + 1) % len(poly)
		sum += poly[i].Cross(poly[j])
	}
	if sum < 0 {
		sum = -sum
	}
	return 0.5 * sum
}

// TriangulateFan splits a convex polygon (winding order) into a fan of
// triangles anchored at its first vertex, for rasterization or further
// per-triangle processing downstream of ClipTriangleToRect.
func TriangulateFan(poly []core.Vec2) [][3]core.Vec2 {
	if len(poly) < 3 {
		return nil
	}
	tris := make([][3]core.Vec2, 0, len(poly)-2)
	for i := 1; i < len(poly)-1; i++ {
		tris = append(tris, [3]core.Vec2{poly[0], poly[i], poly[i+1]})
	}
	return tris
}
