package raster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

var ErrUnknownFormat = errors.New("unknown output format")

// CheckFormat reports whether Encode can write format.
func CheckFormat(format string) error {
	switch strings.ToLower(format) {
	case "webp", "png":
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Encode writes img as format ("webp" or "png").
func Encode(w io.Writer, img image.Image, format string) error {
	if err := CheckFormat(format); err != nil {
		return err
	}
	if strings.EqualFold(format, "png") {
		return png.Encode(w, img)
	}
	return nativewebp.Encode(w, img, nil)
}

// Save writes img to path, picking the format from the extension.
func Save(path string, img image.Image) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
