package imaging

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/pkg/errors"
)

// LoadTexture decodes an image file from disk into a linearized
// TextureView. Format support comes from the standard image registry
// (png, jpeg) plus golang.org/x/image's bmp/tiff decoders registered in
// texture.go, so any of those four formats decodes without a format
// switch here.
func LoadTexture(path string) (*TextureView, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "imaging: open texture %q", path)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "imaging: decode texture %q", path)
	}
	_ = format
	return FromImage(img), nil
}
