package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// labelMargin is the transparent border around label text, in pixels.
const labelMargin = 10

// Labels renders item captions and caches them by text.
type Labels struct {
	face  font.Face
	size  float64
	color color.RGBA
	cache map[string]*image.RGBA
}

// NewLabels builds a label renderer for a parsed font and text color.
func NewLabels(spec FontSpec, c color.RGBA) (*Labels, error) {
	ttf := goregular.TTF
	switch {
	case spec.Bold && spec.Italic:
		ttf = gobolditalic.TTF
	case spec.Bold:
		ttf = gobold.TTF
	case spec.Italic:
		ttf = goitalic.TTF
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: spec.Size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("creating face: %w", err)
	}
	return &Labels{face: face, size: spec.Size, color: c, cache: make(map[string]*image.RGBA)}, nil
}

// Render returns the caption for text: the string centered on a transparent
// canvas with a fixed margin. The result is shared; callers must not draw
// into it.
func (l *Labels) Render(text string) *image.RGBA {
	if img, ok := l.cache[text]; ok {
		return img
	}
	width := font.MeasureString(l.face, text).Ceil()
	height := int(math.Ceil(l.size * 1.2))
	img := image.NewRGBA(image.Rect(0, 0, width+2*labelMargin, height+2*labelMargin))

	m := l.face.Metrics()
	// Vertically center the ascent/descent box, as a middle baseline would.
	baseline := fixed.I(img.Rect.Dy()/2) + (m.Ascent-m.Descent)/2
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(l.color),
		Face: l.face,
		Dot:  fixed.Point26_6{X: fixed.I(labelMargin), Y: baseline},
	}
	d.DrawString(text)
	l.cache[text] = img
	return img
}
