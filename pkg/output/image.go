package output

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var ErrUnknownFormat = errors.New("output: unknown image format")

// Format is an encoded image format
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatBMP:
		return "image/bmp"
	case FormatTIFF:
		return "image/tiff"
	default:
		return "image/x-portable-pixmap"
	}
}

// ParseFormat resolves a format name, case-insensitively
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "ppm":
		return FormatPPM, nil
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks the format from the file extension, ignoring any
// compression suffix. Paths without a recognized extension, including "-",
// are PPM.
func FormatFromPath(path string) Format {
	base := strings.TrimSuffix(path, compressionExt(path))
	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	if f, err := ParseFormat(ext); err == nil {
		return f
	}
	return FormatPPM
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPPM:
		return EncodePPM(w, img)
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
}

// ImageWriter collects streamed pixels into an in-memory RGBA image
type ImageWriter struct {
	img  *image.RGBA
	next int
}

// NewImageWriter creates an empty image sink; WriteHeader sizes it
func NewImageWriter() *ImageWriter {
	return &ImageWriter{}
}

// WriteHeader allocates the image
func (iw *ImageWriter) WriteHeader(width, height int) error {
	iw.img = image.NewRGBA(image.Rect(0, 0, width, height))
	iw.next = 0
	return nil
}

// WritePixel stores the next pixel in raster order
func (iw *ImageWriter) WritePixel(r, g, b uint8) error {
	if iw.img == nil {
		return errors.New("output: pixel written before header")
	}
	width := iw.img.Bounds().Dx()
	x, y := iw.next%width, iw.next/width
	if y >= iw.img.Bounds().Dy() {
		return errors.New("output: more pixels than the header declared")
	}
	iw.img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
	iw.next++
	return nil
}

// Image returns the collected image
func (iw *ImageWriter) Image() *image.RGBA {
	return iw.img
}

// PixelSink receives pixels in raster order
type PixelSink interface {
	WriteHeader(width, height int) error
	WritePixel(r, g, b uint8) error
}

// MultiWriter fans pixels out to several sinks
type MultiWriter []PixelSink

// WriteHeader forwards to every sink
func (m MultiWriter) WriteHeader(width, height int) error {
	for _, w := range m {
		if err := w.WriteHeader(width, height); err != nil {
			return err
		}
	}
	return nil
}

// WritePixel forwards to every sink
func (m MultiWriter) WritePixel(r, g, b uint8) error {
	for _, w := range m {
		if err := w.WritePixel(r, g, b); err != nil {
			return err
		}
	}
	return nil
}
