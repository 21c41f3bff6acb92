// Package imaging holds the renderer's output image buffer and the
// texture-view abstraction used to sample input textures during shading.
package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/lumenforge/pathtracer/pkg/core"
)

// Image is a dense, row-major linear-RGB floating point image, the
// renderer's accumulation buffer.
type Image struct {
	Width, Height int
	pixels        []core.Vec3
}

// NewImage allocates a black w x h image.
func NewImage(w, h int) *Image {
	return &Image{Width: w, Height: h, pixels: make([]core.Vec3, w*h)}
}

func (im *Image) index(x, y int) int { return y*im.Width + x }

// At returns the pixel at (x, y).
func (im *Image) At(x, y int) core.Vec3 { return im.pixels[im.index(x, y)] }

// Set overwrites the pixel at (x, y).
func (im *Image) Set(x, y int, v core.Vec3) { im.pixels[im.index(x, y)] = v }

// AccumulateAverage folds a new sample into the running per-pixel average
// for pass number p (1-indexed): pixel <- (pixel*(p-1) + sample) / p,
// matching the tiled render driver's convergence rule (spec §4.G,
// original_source's pt/src/renderer/mod.rs).
func (im *Image) AccumulateAverage(x, y int, sample core.Vec3, p int) {
	i := im.index(x, y)
	prior := im.pixels[i]
	im.pixels[i] = prior.Scale(float64(p - 1)).Add(sample).Scale(1.0 / float64(p))
}

// ToLinearRGB8 converts the image to an 8-bit-per-channel linear RGB
// *image.RGBA, clamping each channel to [0, 1] before quantizing — no
// gamma encoding is applied here, matching §6's "linear" output contract;
// display-referred encoding is a caller concern.
func (im *Image) ToLinearRGB8() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, im.Width, im.Height))
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			v := im.At(x, y).Clamp(0, 1)
			out.Set(x, y, color.RGBA{
				R: uint8(math.Round(v.X * 255)),
				G: uint8(math.Round(v.Y * 255)),
				B: uint8(math.Round(v.Z * 255)),
				A: 255,
			})
		}
	}
	return out
}

// ToFloatTexture returns the image as a flat row-major []float64 triple
// buffer (RGBRGB...), the format the GPU-facing texture upload path (out of
// this spec's scope) would consume.
func (im *Image) ToFloatTexture() []float64 {
	out := make([]float64, 0, im.Width*im.Height*3)
	for _, p := range im.pixels {
		out = append(out, p.X, p.Y, p.Z)
	}
	return out
}
