// Package service decodes gallery images off the render goroutine.
package service

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"os"

	_ "github.com/ftrvxmtrx/tga" // Register TGA decoder
	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// DefaultMaxTexture bounds the longer side of a decoded texture.
const DefaultMaxTexture = 1024

var ErrNoThumbnail = errors.New("no embedded thumbnail")

// ImageService decodes images into textures ready for upload.
type ImageService struct {
	// MaxTexture is the largest side a returned texture may have. 0 disables
	// downscaling.
	MaxTexture int
}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{MaxTexture: DefaultMaxTexture}
}

// Load decodes the image at path, rotates it upright according to its EXIF
// orientation and scales it down to MaxTexture.
func (is *ImageService) Load(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	img = Orient(img, orientation(bytes.NewReader(data)))
	return Downscale(img, is.MaxTexture), nil
}

// Preview returns the JPEG thumbnail embedded in the file's EXIF block,
// already oriented. Most camera files carry one; it decodes far faster
// than the full image.
func (is *ImageService) Preview(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file for thumbnail: %w", err)
	}
	defer file.Close()

	x, err := exif.Decode(file)
	if err != nil {
		return nil, ErrNoThumbnail
	}
	thumbBytes, err := x.JpegThumbnail()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoThumbnail, err)
	}
	img, _, err := image.Decode(bytes.NewReader(thumbBytes))
	if err != nil {
		return nil, fmt.Errorf("decoding thumbnail: %w", err)
	}
	return Orient(img, orientationOf(x)), nil
}

// orientation reads the EXIF orientation tag, 1 when absent.
func orientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}
	return orientationOf(x)
}

func orientationOf(x *exif.Exif) int {
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	o, err := tag.Int(0)
	if err != nil || o < 1 || o > 8 {
		return 1
	}
	return o
}

// Downscale shrinks img so neither side exceeds limit, keeping its aspect.
func Downscale(img image.Image, limit int) image.Image {
	b := img.Bounds()
	if limit <= 0 || (b.Dx() <= limit && b.Dy() <= limit) {
		return img
	}
	w, h := limit, limit
	if b.Dx() >= b.Dy() {
		h = b.Dy() * limit / b.Dx()
	} else {
		w = b.Dx() * limit / b.Dy()
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
