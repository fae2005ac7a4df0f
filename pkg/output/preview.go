package output

import (
	"image"

	"github.com/nfnt/resize"
)

// Thumbnail scales img to width pixels wide, keeping its aspect ratio.
// Images already narrower than width are returned unchanged.
func Thumbnail(img image.Image, width uint) image.Image {
	if width == 0 || uint(img.Bounds().Dx()) <= width {
		return img
	}
	return resize.Resize(width, 0, img, resize.Bilinear)
}
