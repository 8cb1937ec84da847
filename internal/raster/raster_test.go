package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/nicky-ayoub/arcgallery/internal/gallery"
	"golang.org/x/image/webp"
)

func TestParseFont(t *testing.T) {
	tests := []struct {
		in   string
		want FontSpec
	}{
		{"bold 30px Figtree", FontSpec{Bold: true, Size: 30, Family: "Figtree"}},
		{"italic 700 18px 'Open Sans'", FontSpec{Bold: true, Italic: true, Size: 18, Family: "Open Sans"}},
		{"400 12.5px serif", FontSpec{Size: 12.5, Family: "serif"}},
		{"", FontSpec{Size: defaultFontSize}},
		{"bold -3px mono", FontSpec{Bold: true, Size: defaultFontSize, Family: "mono"}},
	}
	for _, tt := range tests {
		if got := ParseFont(tt.in); got != tt.want {
			t.Fatalf("ParseFont(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	got, err := ParseColor("#ffffff")
	if err != nil || got != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Fatalf("ParseColor(#ffffff) = %v, %v", got, err)
	}
	got, err = ParseColor("#1a3")
	if err != nil || got != (color.RGBA{0x11, 0xaa, 0x33, 0xff}) {
		t.Fatalf("ParseColor(#1a3) = %v, %v", got, err)
	}
	for _, bad := range []string{"", "#12", "#gggggg", "red"} {
		if _, err := ParseColor(bad); !errors.Is(err, ErrBadColor) {
			t.Fatalf("ParseColor(%q) err = %v, want ErrBadColor", bad, err)
		}
	}
}

func TestRoundedMask(t *testing.T) {
	m := RoundedMask(100, 60, 0.2)
	if a := m.AlphaAt(50, 30).A; a < 0xfe {
		t.Fatalf("center coverage = %d, want full", a)
	}
	if a := m.AlphaAt(0, 0).A; a != 0 {
		t.Fatalf("corner coverage = %d, want 0", a)
	}
	if a := m.AlphaAt(50, 1).A; a < 0xf0 {
		t.Fatalf("top edge coverage = %d, want nearly full", a)
	}
	square := RoundedMask(10, 10, 0)
	for _, a := range square.Pix {
		if a < 0xfe {
			t.Fatalf("zero radius mask has partial coverage %d", a)
		}
	}
}

func TestLabelsRenderAndCache(t *testing.T) {
	l, err := NewLabels(FontSpec{Bold: true, Size: 20}, color.RGBA{0xff, 0xff, 0xff, 0xff})
	if err != nil {
		t.Fatalf("NewLabels() err = %v", err)
	}
	img := l.Render("Bridge")
	b := img.Bounds()
	if b.Dy() <= 2*labelMargin || b.Dx() <= 2*labelMargin {
		t.Fatalf("label bounds = %v", b)
	}
	ink := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			ink++
		}
	}
	if ink == 0 {
		t.Fatalf("label has no visible pixels")
	}
	if l.Render("Bridge") != img {
		t.Fatalf("label was rendered twice")
	}
}

func near(a, b color.RGBA) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= 2 && d(a.G, b.G) <= 2 && d(a.B, b.B) <= 2 && d(a.A, b.A) <= 2
}

type screen struct{ w, h int }

func (s screen) Size() (int, int) { return s.w, s.h }
func (s screen) OnResize(func(w, h int)) (remove func()) { return func() {} }

func solid(c color.RGBA, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func renderRig(t *testing.T, textures TextureMap) (*gallery.Gallery, *Renderer, *gallery.ManualScheduler) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := gallery.DefaultConfig()
	r, err := New(cfg, textures, log)
	if err != nil {
		t.Fatalf("New() err = %v", err)
	}
	src := []gallery.Source{{Image: "a", Label: "Alpha"}, {Image: "b", Label: "Beta"}, {Image: "c"}}
	g, err := gallery.New(src, cfg, gallery.WithRenderer(r), gallery.WithLogger(log))
	if err != nil {
		t.Fatalf("gallery.New() err = %v", err)
	}
	s := gallery.NewManualScheduler(time.Unix(0, 0), time.Second/60)
	g.Mount(screen{400, 160}, nil, s)
	return g, r, s
}

func TestRenderDrawsCenteredTexture(t *testing.T) {
	red := color.RGBA{0xff, 0, 0, 0xff}
	g, r, s := renderRig(t, TextureMap{"a": solid(red, 64, 48), "b": solid(red, 48, 64), "c": solid(red, 8, 8)})
	for _, ref := range []string{"a", "b", "c"} {
		g.SetStatus(ref, gallery.Loaded)
	}
	s.Step(120)

	img := r.Image()
	if img.Bounds().Dx() != 400 || img.Bounds().Dy() != 160 {
		t.Fatalf("frame size = %v, want 400x160", img.Bounds().Size())
	}
	if got := img.RGBAAt(200, 80); got.R < 0xf0 || got.G > 0x10 {
		t.Fatalf("center pixel = %v, want the red texture", got)
	}
	if got := img.RGBAAt(0, 0); !near(got, r.Background) {
		t.Fatalf("corner pixel = %v, want background %v", got, r.Background)
	}
	if r.Frames() != 120 {
		t.Fatalf("Frames() = %d, want 120", r.Frames())
	}
}

func TestRenderPlaceholderForMissingTexture(t *testing.T) {
	_, r, s := renderRig(t, TextureMap{})
	s.Step(1)
	if got := r.Image().RGBAAt(200, 80); !near(got, r.Placeholder) {
		t.Fatalf("center pixel = %v, want placeholder %v", got, r.Placeholder)
	}
}

func TestNewRejectsBadColor(t *testing.T) {
	cfg := gallery.DefaultConfig()
	cfg.TextColor = "white"
	if _, err := New(cfg, TextureMap{}, nil); !errors.Is(err, ErrBadColor) {
		t.Fatalf("New() err = %v, want ErrBadColor", err)
	}
}

func TestEncodeWebP(t *testing.T) {
	src := solid(color.RGBA{0x20, 0x40, 0x60, 0xff}, 16, 8)
	var buf bytes.Buffer
	if err := Encode(&buf, src, "webp"); err != nil {
		t.Fatalf("Encode() err = %v", err)
	}
	got, err := webp.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if b := got.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Fatalf("decoded size = %v", b.Size())
	}
}

func TestSaveUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.tiff")
	if err := Save(path, solid(color.RGBA{A: 0xff}, 2, 2)); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Save() err = %v, want ErrUnknownFormat", err)
	}
}

func TestCheckFormat(t *testing.T) {
	for _, f := range []string{"webp", "png", "PNG"} {
		if err := CheckFormat(f); err != nil {
			t.Fatalf("CheckFormat(%q) err = %v", f, err)
		}
	}
	for _, f := range []string{"", "tiff", "jpg"} {
		if err := CheckFormat(f); !errors.Is(err, ErrUnknownFormat) {
			t.Fatalf("CheckFormat(%q) err = %v, want ErrUnknownFormat", f, err)
		}
	}
}
