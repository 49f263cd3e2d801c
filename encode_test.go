package splot

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// testPixmap builds a small recognizable pixmap.
func testPixmap() *Pixmap {
	pm := NewPixmap(8, 6)
	pm.Clear(Blue)
	pm.Set(0, 0, Red)
	pm.Set(7, 5, Green)
	return pm
}

// TestEncode verifies each encoder produces a decodable image of the
// right dimensions and content.
func TestEncode(t *testing.T) {
	decoders := map[Format]func(*bytes.Buffer) (image.Image, error){
		PNG:  func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) },
		BMP:  func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) },
		TIFF: func(b *bytes.Buffer) (image.Image, error) { return tiff.Decode(b) },
	}

	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			pm := testPixmap()

			var buf bytes.Buffer
			if err := pm.Encode(&buf, format); err != nil {
				t.Fatalf("Encode(%s) error: %v", format, err)
			}

			img, err := decode(&buf)
			if err != nil {
				t.Fatalf("decode error: %v", err)
			}
			if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
				t.Fatalf("decoded bounds = %v, want 8x6", img.Bounds())
			}
			if got := FromColor(img.At(0, 0)); got != Red {
				t.Errorf("decoded pixel (0, 0) = %v, want red", got)
			}
			if got := FromColor(img.At(3, 3)); got != Blue {
				t.Errorf("decoded pixel (3, 3) = %v, want blue", got)
			}
		})
	}
}

// TestEncode_UnknownFormat verifies the error path.
func TestEncode_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := testPixmap().Encode(&buf, Format("webp")); err == nil {
		t.Error("Encode with unknown format succeeded, want error")
	}
}

// TestSave verifies extension-based format dispatch.
func TestSave(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"out.png", "out.bmp", "out.tif", "out.tiff", "OUT.PNG"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := testPixmap().Save(path); err != nil {
				t.Fatalf("Save(%q) error: %v", name, err)
			}
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("stat: %v", err)
			}
			if info.Size() == 0 {
				t.Error("saved file is empty")
			}
		})
	}
}

// TestSave_UnknownExtension verifies that unrecognized extensions fail
// instead of silently picking a format.
func TestSave_UnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jpg")
	if err := testPixmap().Save(path); err == nil {
		t.Error("Save with unknown extension succeeded, want error")
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("Save with unknown extension still created a file")
	}
}

// TestSavePNG verifies the PNG convenience wrapper round-trips.
func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.png")
	pm := testPixmap()
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := FromColor(img.At(7, 5)); got != Green {
		t.Errorf("decoded pixel (7, 5) = %v, want green", got)
	}
}
