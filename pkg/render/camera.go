// Package render implements the tiled, progressively-averaged render
// driver: camera ray generation, worker-pool tile dispatch, pass barriers,
// and settings loading.
package render

import (
	"math"
	"math/rand"

	"github.com/lumenforge/pathtracer/pkg/core"
)

// Camera generates primary rays for a pinhole camera, built from an
// origin/look-at/up triple and a horizontal field of view, per
// original_source's pt/src/renderer/mod.rs CameraRayGenerator.
type Camera struct {
	origin                core.Vec3
	forward, right, up    core.Vec3
	halfWidth, halfHeight float64
}

// NewCamera constructs a camera looking from origin toward target, with the
// given world-space up hint, horizontal field of view (radians), and image
// aspect ratio (width/height).
func NewCamera(origin, target, upHint core.Vec3, fovX float64, aspect float64) *Camera {
	forward := target.Sub(origin).Normalize()
	right := forward.Cross(upHint).Normalize()
	up := right.Cross(forward).Normalize()

	halfWidth := math.Tan(fovX / 2)
	halfHeight := halfWidth / aspect

	return &Camera{
		origin:     origin,
		forward:    forward,
		right:      right,
		up:         up,
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
	}
}

// Ray generates a primary ray through pixel (px, py) of a w x h image,
// jittering within the pixel footprint using rng for depth-of-field-free
// anti-aliasing, per spec §4.G.
func (c *Camera) Ray(px, py, w, h int, rng *rand.Rand) core.Ray {
	u := (float64(px) + rng.Float64()) / float64(w)
	v := (float64(py) + rng.Float64()) / float64(h)

	// Map [0,1]x[0,1] to the image plane in [-halfWidth, halfWidth] x
	// [halfHeight, -halfHeight] (v increases downward in image space, up in
	// world space).
	sx := (2*u - 1) * c.halfWidth
	sy := (1 - 2*v) * c.halfHeight

	dir := c.forward.Add(c.right.Scale(sx)).Add(c.up.Scale(sy)).Normalize()
	return core.NewRay(c.origin, dir)
}
