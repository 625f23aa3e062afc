package ndspy

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestFramebufferImageU8(t *testing.T) {
	// 2x1, one rgba layer. Integer data is rescaled, never curve-encoded.
	format := DecodePixelFormat([]string{"Ci.r", "Ci.g", "Ci.b", "a"})
	data := []uint8{
		255, 0, 128, 255,
		0, 255, 0, 0,
	}
	fb := NewFramebuffer("out", 2, 1, format, data)

	img, err := fb.Image(0)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if got := img.Bounds(); got.Dx() != 2 || got.Dy() != 1 {
		t.Fatalf("bounds = %v", got)
	}

	px := img.NRGBAAt(0, 0)
	if px.R != 255 || px.G != 0 || px.B != 128 || px.A != 255 {
		t.Errorf("pixel (0,0) = %+v", px)
	}
	px = img.NRGBAAt(1, 0)
	if px.R != 0 || px.G != 255 || px.B != 0 || px.A != 0 {
		t.Errorf("pixel (1,0) = %+v", px)
	}
}

func TestFramebufferGrayReplication(t *testing.T) {
	format := DecodePixelFormat([]string{"depth.s"})
	fb := NewFramebuffer("out", 1, 1, format, []uint8{100})

	img, err := fb.Image(0)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	px := img.NRGBAAt(0, 0)
	if px.R != 100 || px.G != 100 || px.B != 100 || px.A != 255 {
		t.Errorf("scalar pixel = %+v, want gray 100 opaque", px)
	}
}

func TestFramebufferFloatSRGB(t *testing.T) {
	format := DecodePixelFormat([]string{"Ci.r", "Ci.g", "Ci.b", "a"})
	data := []float32{0, 0.5, 1, 0.5}
	fb := NewFramebuffer("out", 1, 1, format, data)

	img, err := fb.Image(0)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	px := img.NRGBAAt(0, 0)
	if px.R != 0 {
		t.Errorf("R = %d, want 0", px.R)
	}
	if px.B != 255 {
		t.Errorf("B = %d, want 255", px.B)
	}
	// Linear 0.5 sRGB-encodes to ~0.735.
	if px.G < 186 || px.G > 190 {
		t.Errorf("G = %d, want ~188 (sRGB of 0.5)", px.G)
	}
	// Alpha stays linear.
	if px.A < 127 || px.A > 128 {
		t.Errorf("A = %d, want 127/128 (linear)", px.A)
	}
}

func TestFramebufferSecondLayer(t *testing.T) {
	// rgba + vector; the vector layer reads at offset 4.
	format := DecodePixelFormat([]string{"Ci.r", "Ci.g", "Ci.b", "a", "N.x", "N.y", "N.z"})
	data := []float32{
		0.1, 0.2, 0.3, 1, 1, 0, 0,
	}
	fb := NewFramebuffer("out", 1, 1, format, data)

	img, err := fb.Image(1)
	if err != nil {
		t.Fatalf("Image(1): %v", err)
	}
	px := img.NRGBAAt(0, 0)
	if px.R != 255 || px.G != 0 || px.B != 0 || px.A != 255 {
		t.Errorf("vector pixel = %+v, want opaque red", px)
	}
}

func TestFramebufferErrors(t *testing.T) {
	format := DecodePixelFormat([]string{"Ci.r", "Ci.g", "Ci.b", "a"})
	fb := NewFramebuffer("out", 2, 2, format, make([]float32, 16))

	if _, err := fb.Image(1); !errors.Is(err, ErrNoSuchLayer) {
		t.Errorf("Image(1) err = %v, want ErrNoSuchLayer", err)
	}
	if _, err := fb.Image(-1); !errors.Is(err, ErrNoSuchLayer) {
		t.Errorf("Image(-1) err = %v, want ErrNoSuchLayer", err)
	}

	short := NewFramebuffer("out", 2, 2, format, make([]float32, 15))
	if _, err := short.Image(0); !errors.Is(err, ErrShortFrame) {
		t.Errorf("short Image err = %v, want ErrShortFrame", err)
	}
	if _, err := short.Image64(0); !errors.Is(err, ErrShortFrame) {
		t.Errorf("short Image64 err = %v, want ErrShortFrame", err)
	}
}

func TestFramebufferSave(t *testing.T) {
	format := DecodePixelFormat([]string{"Ci.r", "Ci.g", "Ci.b", "a"})
	data := make([]float32, 4*4*4)
	for i := range data {
		data[i] = float32(i) / float32(len(data))
	}
	fb := NewFramebuffer("out", 4, 4, format, data)

	dir := t.TempDir()
	if err := fb.SavePNG(filepath.Join(dir, "out.png"), 0); err != nil {
		t.Errorf("SavePNG: %v", err)
	}
	if err := fb.SaveTIFF(filepath.Join(dir, "out.tiff"), 0); err != nil {
		t.Errorf("SaveTIFF: %v", err)
	}
}
