package output

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestPPMWriter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPPMWriter(&buf)

	if err := p.WriteHeader(2, 1); err != nil {
		t.Fatalf("WriteHeader failed: %v", err)
	}
	if err := p.WritePixel(255, 0, 10); err != nil {
		t.Fatalf("WritePixel failed: %v", err)
	}
	if err := p.WritePixel(0, 128, 255); err != nil {
		t.Fatalf("WritePixel failed: %v", err)
	}
	if err := p.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	expected := "P3\n2 1\n255\n255 0 10\n0 128 255\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestEncodePPM(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.SetRGBA(0, 0, color.RGBA{1, 2, 3, 255})
	img.SetRGBA(0, 1, color.RGBA{250, 251, 252, 255})

	var buf bytes.Buffer
	if err := EncodePPM(&buf, img); err != nil {
		t.Fatalf("EncodePPM failed: %v", err)
	}

	expected := "P3\n1 2\n255\n1 2 3\n250 251 252\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}
