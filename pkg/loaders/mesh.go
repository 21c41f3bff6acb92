// Package loaders defines the plug-in boundaries external scene data
// crosses into the renderer: triangle meshes and material factories.
package loaders

import (
	"github.com/pkg/errors"

	"github.com/lumenforge/pathtracer/pkg/core"
	"github.com/lumenforge/pathtracer/pkg/surface"
)

// TriangleMesh is a flat, indexed triangle mesh as read from an external
// model file: vertex positions/normals/UVs plus a per-face index triple and
// a per-face material index.
type TriangleMesh struct {
	Positions     []core.Vec3
	Normals       []core.Vec3
	UVs           []core.Vec2
	FaceIndices   [][3]int
	FaceMaterials []int
	MaterialNames []string
}

// MeshLoader decodes an external model file into a TriangleMesh, the
// plug-in boundary spec §6 describes.
type MeshLoader interface {
	LoadTriangleMesh(path string) (*TriangleMesh, error)
}

// Triangles realizes a TriangleMesh's faces as surface.Triangle values,
// validating every face's index range and material index, and that a
// non-empty FaceMaterials has one entry per face, at construction time
// (spec §7: a malformed mesh is a construction-validation error, not a
// panic or silent skip).
func (m *TriangleMesh) Triangles() ([]*surface.Triangle, error) {
	if len(m.FaceMaterials) != 0 && len(m.FaceMaterials) != len(m.FaceIndices) {
		return nil, errors.Errorf("loaders: mesh has %d face materials for %d faces", len(m.FaceMaterials), len(m.FaceIndices))
	}
	tris := make([]*surface.Triangle, 0, len(m.FaceIndices))
	for faceIdx, idx := range m.FaceIndices {
		for _, vi := range idx {
			if vi < 0 || vi >= len(m.Positions) {
				return nil, errors.Errorf("loaders: face %d references out-of-range vertex index %d (have %d vertices)", faceIdx, vi, len(m.Positions))
			}
		}
		if faceIdx < len(m.FaceMaterials) {
			mi := m.FaceMaterials[faceIdx]
			if mi < 0 || mi >= len(m.MaterialNames) {
				return nil, errors.Errorf("loaders: face %d references out-of-range material index %d (have %d materials)", faceIdx, mi, len(m.MaterialNames))
			}
		}

		t, err := surface.NewTriangle(m.Positions[idx[0]], m.Positions[idx[1]], m.Positions[idx[2]])
		if err != nil {
			return nil, errors.Wrapf(err, "loaders: face %d", faceIdx)
		}

		if len(m.Normals) == len(m.Positions) {
			t.WithNormals(m.Normals[idx[0]], m.Normals[idx[1]], m.Normals[idx[2]])
		}
		if len(m.UVs) == len(m.Positions) {
			t.WithUVs(m.UVs[idx[0]], m.UVs[idx[1]], m.UVs[idx[2]])
		}
		tris = append(tris, t)
	}
	return tris, nil
}
