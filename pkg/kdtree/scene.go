package kdtree

import (
	"github.com/lumenforge/pathtracer/pkg/bsdf"
	"github.com/lumenforge/pathtracer/pkg/core"
	"github.com/lumenforge/pathtracer/pkg/surface"
)

// Scene is the immutable container the integrator traces against: a set of
// surfaces accelerated by a kd-tree, each surface's material, and the
// subset of surfaces that emit light together with their sampler.
type Scene struct {
	Tree      *Tree
	Materials map[surface.Surface]bsdf.BSDF
	Emitters  []Emitter
	Lights    LightSampler
	Emission  map[surface.Surface]core.Vec3
}

// NewScene builds a Scene from a flat surface list, a material lookup, and
// an explicit set of emitting surfaces with their radiance; a Linear
// (power-weighted) light sampler is used whenever the scene has emitters,
// and an empty Uniform sampler when it has none.
func NewScene(surfaces []surface.Surface, materials map[surface.Surface]bsdf.BSDF, emission map[surface.Surface]core.Vec3) *Scene {
	tree := Build(surfaces)

	var emitters []Emitter
	for s, le := range emission {
		emitters = append(emitters, Emitter{Surface: s, Le: le.Length()})
	}

	var sampler LightSampler
	if len(emitters) > 0 {
		sampler = NewLinearSampler(emitters)
	} else {
		sampler = NewUniformSampler(0)
	}

	return &Scene{
		Tree:      tree,
		Materials: materials,
		Emitters:  emitters,
		Lights:    sampler,
		Emission:  emission,
	}
}

// Hit intersects a ray against the scene's kd-tree.
func (sc *Scene) Hit(ray core.Ray, tMin, tMax float64) (surface.Hit, bool) {
	return sc.Tree.Hit(ray, tMin, tMax)
}

// MaterialFor returns the BSDF bound to a surface, or nil if none is bound.
func (sc *Scene) MaterialFor(s surface.Surface) bsdf.BSDF {
	return sc.Materials[s]
}

// EmissionFor returns the emitted radiance of a surface, or the zero vector
// if it is not an emitter.
func (sc *Scene) EmissionFor(s surface.Surface) core.Vec3 {
	return sc.Emission[s]
}

// Occluded reports whether any surface blocks the segment from origin to
// origin+dir*dist, using the standard shadow-ray epsilon offsets (spec
// §4.F: shadow comparisons use 2*PositionEpsilon on both ends of the
// segment to avoid self-intersection at the endpoints).
func (sc *Scene) Occluded(origin, dir core.Vec3, dist float64) bool {
	const positionEpsilon = 1e-4
	ray := core.NewRay(origin, dir)
	_, hit := sc.Hit(ray, 2*positionEpsilon, dist-2*positionEpsilon)
	return hit
}
