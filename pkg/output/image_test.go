package output

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		expected Format
		wantErr  bool
	}{
		{"ppm", FormatPPM, false},
		{"PNG", FormatPNG, false},
		{"bmp", FormatBMP, false},
		{"tif", FormatTIFF, false},
		{"tiff", FormatTIFF, false},
		{"jpeg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("expected ErrUnknownFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"-", FormatPPM},
		{"image.ppm", FormatPPM},
		{"image.png", FormatPNG},
		{"out/image.BMP", FormatBMP},
		{"image.tiff.gz", FormatTIFF},
		{"image.ppm.zst", FormatPPM},
		{"image.png.sz", FormatPNG},
		{"image", FormatPPM},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestImageWriterRasterOrder(t *testing.T) {
	iw := NewImageWriter()
	if err := iw.WritePixel(1, 2, 3); err == nil {
		t.Error("expected an error for a pixel before the header")
	}

	if err := iw.WriteHeader(2, 2); err != nil {
		t.Fatalf("WriteHeader failed: %v", err)
	}
	for n := uint8(0); n < 4; n++ {
		if err := iw.WritePixel(n, n, n); err != nil {
			t.Fatalf("WritePixel %d failed: %v", n, err)
		}
	}
	if err := iw.WritePixel(9, 9, 9); err == nil {
		t.Error("expected an error for a pixel past the end of the image")
	}

	img := iw.Image()
	expected := map[image.Point]uint8{
		{0, 0}: 0,
		{1, 0}: 1,
		{0, 1}: 2,
		{1, 1}: 3,
	}
	for pt, v := range expected {
		if got := img.RGBAAt(pt.X, pt.Y); got != (color.RGBA{v, v, v, 255}) {
			t.Errorf("pixel %v: expected %d, got %v", pt, v, got)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetRGBA(x, y, color.RGBA{0, 0, 0, 255})
		}
	}
	want := color.RGBA{200, 100, 50, 255}
	img.SetRGBA(2, 1, want)

	decoders := map[Format]func(*bytes.Reader) (image.Image, error){
		FormatPNG:  func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
		FormatBMP:  func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) },
		FormatTIFF: func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) },
	}

	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, img, format); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			decoded, err := decode(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if decoded.Bounds().Dx() != 3 || decoded.Bounds().Dy() != 2 {
				t.Fatalf("unexpected bounds %v", decoded.Bounds())
			}
			r, g, b, _ := decoded.At(2, 1).RGBA()
			if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B {
				t.Errorf("expected %v, got (%d, %d, %d)", want, r>>8, g>>8, b>>8)
			}
		})
	}

	if err := Encode(&bytes.Buffer{}, img, Format("gif")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestMultiWriter(t *testing.T) {
	a, b := NewImageWriter(), NewImageWriter()
	m := MultiWriter{a, b}

	if err := m.WriteHeader(1, 1); err != nil {
		t.Fatalf("WriteHeader failed: %v", err)
	}
	if err := m.WritePixel(7, 8, 9); err != nil {
		t.Fatalf("WritePixel failed: %v", err)
	}

	for _, iw := range []*ImageWriter{a, b} {
		if got := iw.Image().RGBAAt(0, 0); got != (color.RGBA{7, 8, 9, 255}) {
			t.Errorf("expected (7, 8, 9), got %v", got)
		}
	}
}
