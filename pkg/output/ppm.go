package output

import (
	"bufio"
	"fmt"
	"image"
	"io"
)

// PPMWriter streams pixels as a plain text P3 portable pixmap: a header
// followed by one "r g b" line per pixel.
type PPMWriter struct {
	w *bufio.Writer
}

// NewPPMWriter creates a P3 writer over w. Call Flush when done.
func NewPPMWriter(w io.Writer) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(w)}
}

// WriteHeader writes the magic number, dimensions and max channel value
func (p *PPMWriter) WriteHeader(width, height int) error {
	_, err := fmt.Fprintf(p.w, "P3\n%d %d\n255\n", width, height)
	return err
}

// WritePixel writes one pixel line
func (p *PPMWriter) WritePixel(r, g, b uint8) error {
	_, err := fmt.Fprintf(p.w, "%d %d %d\n", r, g, b)
	return err
}

// Flush writes any buffered data to the underlying writer
func (p *PPMWriter) Flush() error {
	return p.w.Flush()
}

// EncodePPM writes img as a P3 pixmap
func EncodePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	p := NewPPMWriter(w)
	if err := p.WriteHeader(bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if err := p.WritePixel(uint8(r>>8), uint8(g>>8), uint8(b>>8)); err != nil {
				return err
			}
		}
	}
	return p.Flush()
}
