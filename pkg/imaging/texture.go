package imaging

import (
	"image"
	"math"

	"github.com/lumenforge/pathtracer/pkg/core"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// TextureView is a read-only, linearized RGB texture sampled by materials
// during shading, per spec §4.H.
type TextureView struct {
	Width, Height int
	pixels        []core.Vec3
}

// At returns the linear-RGB texel at integer coordinates, clamping to the
// texture's border.
func (t *TextureView) At(x, y int) core.Vec3 {
	if x < 0 {
		x = 0
	}
	if x >= t.Width {
		x = t.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	return t.pixels[y*t.Width+x]
}

// Sample performs nearest-neighbor lookup at normalized UV coordinates in
// [0, 1]x[0, 1], per spec §4.H's texture sampling formula.
func (t *TextureView) Sample(uv core.Vec2) core.Vec3 {
	u := math.Max(0, math.Min(1, uv.X))
	v := math.Max(0, math.Min(1, uv.Y))
	x := int(math.Floor(u*float64(t.Width-1) + 0.5))
	y := int(math.Floor(v*float64(t.Height-1) + 0.5))
	return t.At(x, y)
}

// TextureLoader decodes an image source into a TextureView, the plug-in
// boundary external scene loaders satisfy (spec §6).
type TextureLoader interface {
	LoadTexture(path string) (*TextureView, error)
}

const srgbGamma = 2.2

// FromImage linearizes a decoded image.Image (sRGB-encoded 8-bit source,
// the common case for bmp/tiff/png texture assets) into a TextureView by
// applying an approximate gamma=2.2 decode, per §6's texture loader
// contract. golang.org/x/image's bmp and tiff decoders are registered for
// their side effect of extending the standard image.Decode registry to
// those formats.
func FromImage(src image.Image) *TextureView {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	tv := &TextureView{Width: w, Height: h, pixels: make([]core.Vec3, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			tv.pixels[y*w+x] = core.Vec3{
				X: srgbToLinear(float64(r) / 65535),
				Y: srgbToLinear(float64(g) / 65535),
				Z: srgbToLinear(float64(b) / 65535),
			}
		}
	}
	return tv
}

func srgbToLinear(c float64) float64 {
	return math.Pow(c, srgbGamma)
}
