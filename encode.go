package splot

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format identifies an image encoding for Encode and Save.
type Format string

// Supported encodings.
const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// Encode writes the pixmap to w in the given format.
func (p *Pixmap) Encode(w io.Writer, format Format) error {
	img := p.ToImage()
	switch format {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("splot: unsupported image format %q", format)
	}
}

// formatForPath picks the encoding from a file extension.
func formatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	default:
		return "", fmt.Errorf("splot: cannot infer image format from %q", path)
	}
}

// Save writes the pixmap to a file, choosing the encoding from the
// extension: .png, .bmp, .tif or .tiff.
func (p *Pixmap) Save(path string) error {
	format, err := formatForPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return p.Encode(f, format)
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return p.Encode(f, PNG)
}
