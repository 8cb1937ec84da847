package ui

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nicky-ayoub/arcgallery/internal/gallery"
	"github.com/nicky-ayoub/arcgallery/internal/raster"
)

var (
	backgroundColor  = color.RGBA{0x10, 0x10, 0x14, 0xff}
	placeholderColor = color.RGBA{0x3a, 0x3a, 0x44, 0xff}
)

// cardHandle is the per-item state recreated on every resize.
type cardHandle struct {
	label *ebiten.Image
}

// Renderer draws the carousel with Ebiten. Render records the frame on the
// update goroutine; Draw paints it.
type Renderer struct {
	Background color.Color

	textures *TextureLoader
	labels   *raster.Labels
	shader   *ebiten.Shader
	radius   float64
	log      *slog.Logger

	placeholder *ebiten.Image
	labelCache  map[string]*ebiten.Image

	geom  gallery.Geometry
	items []gallery.Item
	cards []cardHandle
}

var _ gallery.Renderer = (*Renderer)(nil)

// NewRenderer compiles the card shader and prepares label rendering for cfg.
func NewRenderer(cfg gallery.Config, textures *TextureLoader, log *slog.Logger) (*Renderer, error) {
	if log == nil {
		log = slog.Default()
	}
	shader, err := ebiten.NewShader([]byte(cardShader))
	if err != nil {
		return nil, fmt.Errorf("compiling card shader: %w", err)
	}
	c, err := raster.ParseColor(cfg.TextColor)
	if err != nil {
		return nil, err
	}
	labels, err := raster.NewLabels(raster.ParseFont(cfg.Font), c)
	if err != nil {
		return nil, err
	}
	placeholder := ebiten.NewImage(64, 80)
	placeholder.Fill(placeholderColor)
	return &Renderer{
		Background:  backgroundColor,
		textures:    textures,
		labels:      labels,
		shader:      shader,
		radius:      cfg.CornerRadius,
		log:         log,
		placeholder: placeholder,
		labelCache:  make(map[string]*ebiten.Image),
	}, nil
}

// Resize recreates the per-item handles for the new strip.
func (r *Renderer) Resize(g gallery.Geometry, items []gallery.Item) {
	r.geom = g
	r.cards = make([]cardHandle, len(items))
	for i := range items {
		r.cards[i].label = r.label(items[i].Label)
	}
	r.log.Debug("renderer resize", "cards", len(r.cards), "width", g.ScreenW, "height", g.ScreenH)
}

// Render keeps a copy of the frame for the next Draw.
func (r *Renderer) Render(f gallery.Frame) {
	r.geom = f.Geometry
	r.items = append(r.items[:0], f.Items...)
}

// Draw paints the last rendered frame, back to front.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(r.Background)
	if len(r.cards) != len(r.items) {
		return
	}
	for _, i := range gallery.DrawOrder(r.items) {
		it := &r.items[i]
		r.drawCard(screen, it)
		if lbl := r.cards[i].label; lbl != nil {
			r.drawLabel(screen, it, lbl)
		}
	}
}

func (r *Renderer) label(text string) *ebiten.Image {
	if text == "" {
		return nil
	}
	if img, ok := r.labelCache[text]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(r.labels.Render(text))
	r.labelCache[text] = img
	return img
}

func (r *Renderer) drawCard(screen *ebiten.Image, it *gallery.Item) {
	w, h := it.ScaledSize()
	ppu := r.geom.PixelsPerUnit()
	if w <= 0 || h <= 0 || ppu <= 0 {
		return
	}

	src := r.placeholder
	opacity := 1.0
	if tex, ok := r.textures.Texture(it.Image); ok && it.Status == gallery.Loaded {
		b := tex.Bounds()
		u0, v0, u1, v1 := gallery.Cover(float64(b.Dx()), float64(b.Dy()), w, h)
		crop := image.Rect(
			b.Min.X+int(math.Round(u0*float64(b.Dx()))),
			b.Min.Y+int(math.Round(v0*float64(b.Dy()))),
			b.Min.X+int(math.Round(u1*float64(b.Dx()))),
			b.Min.Y+int(math.Round(v1*float64(b.Dy()))),
		)
		if crop.Empty() {
			return
		}
		src = tex.SubImage(crop).(*ebiten.Image)
		opacity = it.Opacity
	}

	sb := src.Bounds()
	m := r.geom.QuadTransform(it.Pose, 0, 0, w, h, float64(sb.Dx()), float64(sb.Dy()))
	op := &ebiten.DrawRectShaderOptions{}
	setGeoM(&op.GeoM, m)
	op.Images[0] = src
	op.Uniforms = map[string]any{
		"Radius":  float32(r.radius),
		"Edge":    float32(1 / (math.Min(w, h) * ppu)),
		"Opacity": float32(opacity),
	}
	screen.DrawRectShader(sb.Dx(), sb.Dy(), r.shader, op)
}

func (r *Renderer) drawLabel(screen *ebiten.Image, it *gallery.Item, lbl *ebiten.Image) {
	_, h := it.ScaledSize()
	lb := lbl.Bounds()
	dy, lw, lh := gallery.LabelRect(h, float64(lb.Dx())/float64(lb.Dy()))
	m := r.geom.QuadTransform(it.Pose, 0, dy, lw, lh, float64(lb.Dx()), float64(lb.Dy()))
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	setGeoM(&op.GeoM, m)
	screen.DrawImage(lbl, op)
}

func setGeoM(g *ebiten.GeoM, m [6]float64) {
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[1])
	g.SetElement(0, 2, m[2])
	g.SetElement(1, 0, m[3])
	g.SetElement(1, 1, m[4])
	g.SetElement(1, 2, m[5])
}
