// Package scenes provides reference scene builders used by the end-to-end
// tests and the example CLI invocation; thin glue over pkg/surface,
// pkg/bsdf, pkg/kdtree, and pkg/loaders; no new rendering logic lives here.
package scenes

import (
	"github.com/lumenforge/pathtracer/pkg/bsdf"
	"github.com/lumenforge/pathtracer/pkg/core"
	"github.com/lumenforge/pathtracer/pkg/kdtree"
	"github.com/lumenforge/pathtracer/pkg/loaders"
	"github.com/lumenforge/pathtracer/pkg/surface"
)

// Cornell builds the classic Cornell box: five diffuse walls (red left,
// blue right, white floor/ceiling/back wall), a small emissive quad at the
// ceiling, and two spheres resting on the floor — one diffuse, one
// diffuse+GGX ("Phong") — the reference S1 end-to-end scenario.
func Cornell() *kdtree.Scene {
	var surfaces []surface.Surface
	materials := map[surface.Surface]bsdf.BSDF{}
	emission := map[surface.Surface]core.Vec3{}

	factory := loaders.DefaultMaterialFactory()
	material := func(name string) bsdf.BSDF {
		m, err := factory(name)
		if err != nil {
			panic(err)
		}
		return m
	}
	white := material("white")
	red := material("red")
	blue := material("blue")

	addQuad := func(a, b, c, d core.Vec3, mat bsdf.BSDF) {
		t1, err := surface.NewTriangle(a, b, c)
		if err != nil {
			panic(err)
		}
		t2, err := surface.NewTriangle(a, c, d)
		if err != nil {
			panic(err)
		}
		surfaces = append(surfaces, t1, t2)
		materials[t1] = mat
		materials[t2] = mat
	}

	const s = 555.0

	// Floor.
	addQuad(core.NewVec3(0, 0, 0), core.NewVec3(s, 0, 0), core.NewVec3(s, 0, s), core.NewVec3(0, 0, s), white)
	// Ceiling.
	addQuad(core.NewVec3(0, s, 0), core.NewVec3(0, s, s), core.NewVec3(s, s, s), core.NewVec3(s, s, 0), white)
	// Back wall.
	addQuad(core.NewVec3(0, 0, s), core.NewVec3(s, 0, s), core.NewVec3(s, s, s), core.NewVec3(0, s, s), white)
	// Left wall (red).
	addQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, s), core.NewVec3(0, s, s), core.NewVec3(0, s, 0), red)
	// Right wall (blue).
	addQuad(core.NewVec3(s, 0, 0), core.NewVec3(s, s, 0), core.NewVec3(s, s, s), core.NewVec3(s, 0, s), blue)

	// Ceiling light.
	lightY := s - 1
	l0 := core.NewVec3(213, lightY, 227)
	l1 := core.NewVec3(343, lightY, 227)
	l2 := core.NewVec3(343, lightY, 332)
	l3 := core.NewVec3(213, lightY, 332)
	lt1, _ := surface.NewTriangle(l0, l1, l2)
	lt2, _ := surface.NewTriangle(l0, l2, l3)
	surfaces = append(surfaces, lt1, lt2)
	le := core.NewVec3(12, 12, 12)
	materials[lt1] = white
	materials[lt2] = white
	emission[lt1] = le
	emission[lt2] = le

	// Diffuse sphere, resting on the floor near the red wall.
	diffuseSphere, err := surface.NewSphere(core.NewVec3(185, 15, 169), 15)
	if err != nil {
		panic(err)
	}
	surfaces = append(surfaces, diffuseSphere)
	materials[diffuseSphere] = material("white")

	// Phong (diffuse+GGX) sphere, resting on the floor near the blue wall.
	phongSphere, err := surface.NewSphere(core.NewVec3(370, 45, 351), 45)
	if err != nil {
		panic(err)
	}
	surfaces = append(surfaces, phongSphere)
	materials[phongSphere] = material("phong")

	return kdtree.NewScene(surfaces, materials, emission)
}
