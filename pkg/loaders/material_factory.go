package loaders

import (
	"github.com/lumenforge/pathtracer/pkg/bsdf"
	"github.com/lumenforge/pathtracer/pkg/core"
	"github.com/lumenforge/pathtracer/pkg/imaging"
)

// MaterialFactory builds a BSDF by name, the plug-in boundary a scene
// description uses to bind materials to surfaces without the renderer core
// knowing about any particular file format (spec §6).
type MaterialFactory func(name string) (bsdf.BSDF, error)

// TexturedMaterial names one textured PBR material: a diffuse albedo loaded
// from an image file, paired with a specular roughness.
type TexturedMaterial struct {
	Name      string
	Albedo    *imaging.TextureView
	Roughness float64
}

// DefaultMaterialFactory returns a MaterialFactory serving a small built-in
// material palette plus any textures passed in, the reference implementation
// spec §6 calls for.
func DefaultMaterialFactory(textures ...TexturedMaterial) MaterialFactory {
	byName := make(map[string]TexturedMaterial, len(textures))
	for _, t := range textures {
		byName[t.Name] = t
	}

	return func(name string) (bsdf.BSDF, error) {
		switch name {
		case "white":
			return bsdf.NewDiffuse(core.NewVec3(0.73, 0.73, 0.73)), nil
		case "red":
			return bsdf.NewDiffuse(core.NewVec3(0.65, 0.05, 0.05)), nil
		case "green":
			return bsdf.NewDiffuse(core.NewVec3(0.12, 0.45, 0.15)), nil
		case "blue":
			return bsdf.NewDiffuse(core.NewVec3(0.1, 0.15, 0.5)), nil
		case "mirror":
			return bsdf.NewGGX(core.NewVec3(0.9, 0.9, 0.9), 0.02), nil
		case "phong":
			return bsdf.NewCombined(
				bsdf.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5)),
				bsdf.NewGGX(core.NewVec3(0.08, 0.08, 0.08), 0.15),
			), nil
		}
		if t, ok := byName[name]; ok {
			return newTexturedMaterial(t.Albedo, t.Roughness), nil
		}
		return nil, core.Errorf("loaders: unknown material %q", name)
	}
}

// newTexturedMaterial builds a diffuse+specular Combined BSDF. The BSDF
// interface carries no UV coordinate, so the diffuse albedo is baked once
// from the texture's center sample rather than looked up per-hit; a
// per-fragment lookup would need Eval/Sample to take a surface.Hit instead
// of just (n, wo, wi).
func newTexturedMaterial(tv *imaging.TextureView, roughness float64) bsdf.BSDF {
	avg := tv.Sample(core.NewVec2(0.5, 0.5))
	diffuse := bsdf.NewDiffuse(avg)
	specular := bsdf.NewGGX(core.NewVec3(0.04, 0.04, 0.04), roughness)
	return bsdf.NewCombined(diffuse, specular)
}
