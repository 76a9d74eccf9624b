package grid

import (
	"image"
	"io"

	"github.com/gogpu/grid/internal/imageio"
)

// FromImage creates a color image from a standard library image.
// An image with empty bounds yields ErrInvalidDimensions.
func FromImage(src image.Image) (*Image, error) {
	nrgba := imageio.ToNRGBA(src)
	b := nrgba.Bounds()
	return FromRGBA(b.Dx(), b.Dy(), nrgba.Pix)
}

// ToImage converts the image to a standard library *image.NRGBA.
func (img *Image) ToImage() *image.NRGBA {
	return &image.NRGBA{
		Pix:    img.RGBA(),
		Stride: img.width * 4,
		Rect:   image.Rect(0, 0, img.width, img.height),
	}
}

// Decode reads an image from r. PNG, JPEG, GIF, BMP, TIFF and WebP are
// recognized from the content.
func Decode(r io.Reader) (*Image, error) {
	nrgba, format, err := imageio.Decode(r)
	if err != nil {
		return nil, err
	}
	return fromDecoded(nrgba, format)
}

// Load reads the image file at path.
func Load(path string) (*Image, error) {
	nrgba, format, err := imageio.Load(path)
	if err != nil {
		return nil, err
	}
	return fromDecoded(nrgba, format)
}

func fromDecoded(nrgba *image.NRGBA, format string) (*Image, error) {
	b := nrgba.Bounds()
	Logger().Debug("decoded image", "format", format, "width", b.Dx(), "height", b.Dy())
	return FromRGBA(b.Dx(), b.Dy(), nrgba.Pix)
}

// Encode writes the image to w as "png", "jpeg", "bmp" or "tiff".
func (img *Image) Encode(w io.Writer, format string) error {
	Logger().Debug("encode image", "format", format, "width", img.width, "height", img.height)
	return imageio.Encode(w, img.ToImage(), format)
}

// Save writes the image to path in the format named by its extension.
func (img *Image) Save(path string) error {
	Logger().Debug("save image", "path", path, "width", img.width, "height", img.height)
	return imageio.Save(path, img.ToImage())
}
