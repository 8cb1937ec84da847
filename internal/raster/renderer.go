// Package raster renders carousel frames in software, for snapshots and
// for hosts without a GPU surface.
package raster

import (
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/nicky-ayoub/arcgallery/internal/gallery"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// TextureSource looks up the decoded image for an item's image reference.
type TextureSource interface {
	Texture(ref string) (image.Image, bool)
}

// TextureMap is a TextureSource over a plain map.
type TextureMap map[string]image.Image

func (m TextureMap) Texture(ref string) (image.Image, bool) {
	img, ok := m[ref]
	return img, ok
}

var (
	defaultBackground  = color.RGBA{0x10, 0x10, 0x14, 0xff}
	defaultPlaceholder = color.RGBA{0x3a, 0x3a, 0x44, 0xff}
)

// card is the per-item handle. Its mask depends on the texture crop size,
// which only changes with geometry, so Resize drops every card.
type card struct {
	mask     *image.Alpha
	maskSize image.Point
}

// Renderer draws frames into an RGBA buffer.
type Renderer struct {
	Background  color.RGBA
	Placeholder color.RGBA

	textures TextureSource
	labels   *Labels
	radius   float64
	log      *slog.Logger

	geom  gallery.Geometry
	dst   *image.RGBA
	cards []card
	drawn uint64
}

var _ gallery.Renderer = (*Renderer)(nil)

// New creates a renderer for cfg's corner radius, font and text color.
func New(cfg gallery.Config, textures TextureSource, log *slog.Logger) (*Renderer, error) {
	if log == nil {
		log = slog.Default()
	}
	c, err := ParseColor(cfg.TextColor)
	if err != nil {
		return nil, err
	}
	labels, err := NewLabels(ParseFont(cfg.Font), c)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		Background:  defaultBackground,
		Placeholder: defaultPlaceholder,
		textures:    textures,
		labels:      labels,
		radius:      cfg.CornerRadius,
		log:         log,
	}, nil
}

// Resize reallocates the frame buffer when the screen size changes and
// recreates the per-item handles.
func (r *Renderer) Resize(g gallery.Geometry, items []gallery.Item) {
	w, h := int(g.ScreenW), int(g.ScreenH)
	if r.dst == nil || r.dst.Rect.Dx() != w || r.dst.Rect.Dy() != h {
		r.dst = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	r.geom = g
	r.cards = make([]card, len(items))
	r.log.Debug("raster resize", "width", w, "height", h, "cards", len(items))
}

// Render draws f into the frame buffer, back to front.
func (r *Renderer) Render(f gallery.Frame) {
	if r.dst == nil || len(r.cards) != len(f.Items) {
		r.Resize(f.Geometry, f.Items)
	}
	draw.Draw(r.dst, r.dst.Rect, image.NewUniform(r.Background), image.Point{}, draw.Src)
	for _, i := range gallery.DrawOrder(f.Items) {
		r.drawItem(f.Geometry, &f.Items[i], &r.cards[i])
	}
	r.drawn++
}

// Image is the last rendered frame. It is overwritten by the next Render.
func (r *Renderer) Image() *image.RGBA { return r.dst }

// Frames is how many frames have been rendered.
func (r *Renderer) Frames() uint64 { return r.drawn }

func (r *Renderer) drawItem(g gallery.Geometry, it *gallery.Item, c *card) {
	w, h := it.ScaledSize()
	ppu := g.PixelsPerUnit()
	if w <= 0 || h <= 0 || ppu <= 0 {
		return
	}

	var src image.Image
	var sr image.Rectangle
	opacity := 1.0
	tex, ok := r.textures.Texture(it.Image)
	if ok && it.Status == gallery.Loaded {
		b := tex.Bounds()
		u0, v0, u1, v1 := gallery.Cover(float64(b.Dx()), float64(b.Dy()), w, h)
		sr = image.Rect(
			b.Min.X+int(math.Round(u0*float64(b.Dx()))),
			b.Min.Y+int(math.Round(v0*float64(b.Dy()))),
			b.Min.X+int(math.Round(u1*float64(b.Dx()))),
			b.Min.Y+int(math.Round(v1*float64(b.Dy()))),
		)
		src = tex
		opacity = it.Opacity
	} else {
		// Placeholder at roughly card resolution.
		sr = image.Rect(0, 0, max(1, int(w*ppu)), max(1, int(h*ppu)))
		src = image.NewUniform(r.Placeholder)
	}
	if sr.Empty() || opacity <= 0 {
		return
	}

	if c.mask == nil || c.maskSize != sr.Size() {
		c.mask = RoundedMask(sr.Dx(), sr.Dy(), r.radius)
		c.maskSize = sr.Size()
	}
	mask := c.mask
	if opacity < 1 {
		mask = fade(mask, opacity)
	}
	draw.BiLinear.Transform(r.dst, quad(g, it.Pose, 0, 0, w, h, sr), src, sr, draw.Over, &draw.Options{
		SrcMask:  mask,
		SrcMaskP: image.Point{X: -sr.Min.X, Y: -sr.Min.Y},
	})

	if it.Label == "" {
		return
	}
	lbl := r.labels.Render(it.Label)
	lb := lbl.Bounds()
	dy, lw, lh := gallery.LabelRect(h, float64(lb.Dx())/float64(lb.Dy()))
	draw.BiLinear.Transform(r.dst, quad(g, it.Pose, 0, dy, lw, lh, lb), lbl, lb, draw.Over, nil)
}

// quad maps the source rectangle sr onto a w×h world-unit rectangle centered
// at (du, dv) in the card-local frame of a card posed at p.
func quad(g gallery.Geometry, p gallery.Pose, du, dv, w, h float64, sr image.Rectangle) f64.Aff3 {
	m := g.QuadTransform(p, du, dv, w, h, float64(sr.Dx()), float64(sr.Dy()))
	minX, minY := float64(sr.Min.X), float64(sr.Min.Y)
	return f64.Aff3{
		m[0], m[1], m[2] - m[0]*minX - m[1]*minY,
		m[3], m[4], m[5] - m[3]*minX - m[4]*minY,
	}
}
