// Command arcgallery-render lays out a carousel without a window and writes
// its frames as WebP or PNG images. The strip advances one slot every
// -step seconds of frame time, so the output shows the settle animation.
//
// Usage:
//
//	arcgallery-render -items gallery.json -out frames/ -frames 180 -format webp
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/nicky-ayoub/arcgallery/internal/config"
	"github.com/nicky-ayoub/arcgallery/internal/gallery"
	"github.com/nicky-ayoub/arcgallery/internal/raster"
	"github.com/nicky-ayoub/arcgallery/internal/scan"
	"github.com/nicky-ayoub/arcgallery/internal/service"
)

const fps = 60

func main() {
	configPath := flag.String("config", "", "JSON config file")
	itemsPath := flag.String("items", "", "JSON manifest listing the items to show")
	dir := flag.String("dir", "", "Directory to scan for images instead of a manifest")
	outDir := flag.String("out", "frames", "Output directory for frames")
	format := flag.String("format", "webp", "Frame format: webp or png")
	frames := flag.Int("frames", 120, "Number of frames to render")
	every := flag.Int("every", 1, "Write every Nth frame")
	step := flag.Duration("step", time.Second, "Advance one slot this often; 0 keeps the strip still")
	width := flag.Int("width", 0, "Image width in pixels")
	height := flag.Int("height", 0, "Image height in pixels")
	bend := flag.Float64("bend", 0, "Arc curvature; 0 is flat, negative bends downward")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	if err := raster.CheckFormat(*format); err != nil {
		fatalf("error: %v\n", err)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fatalf("error: %v\n", err)
		}
	}
	flags := config.Flags{Items: *itemsPath, Dir: *dir, Width: *width, Height: *height}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "bend" {
			flags.Bend = bend
		}
	})
	if err := cfg.Resolve(flags); err != nil {
		fatalf("error: %v\n", err)
	}
	if *every < 1 {
		*every = 1
	}

	items, err := loadItems(cfg)
	if err != nil {
		fatalf("error: %v\n", err)
	}
	if len(items) == 0 {
		fatalf("error: no items to render\n")
	}

	images := service.NewImageService()
	images.MaxTexture = cfg.MaxTexture
	textures := raster.TextureMap{}

	r, err := raster.New(cfg.Gallery, textures, logger)
	if err != nil {
		fatalf("error creating renderer: %v\n", err)
	}
	g, err := gallery.New(items.ToSources(), cfg.Gallery,
		gallery.WithLogger(logger),
		gallery.WithRenderer(r),
		gallery.WithAutoplay(*step),
	)
	if err != nil {
		fatalf("error: %v\n", err)
	}

	// Decode before the first frame so every card fades in together.
	for _, it := range items {
		if _, ok := textures[it.Path]; ok {
			continue
		}
		img, err := images.Load(it.Path)
		if err != nil {
			logger.Debug("texture decode failed", "path", it.Path, "err", err)
			g.SetStatus(it.Path, gallery.Failed)
			continue
		}
		textures[it.Path] = img
		g.SetStatus(it.Path, gallery.Loaded)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatalf("error creating output dir: %v\n", err)
	}

	sched := gallery.NewManualScheduler(time.Now(), time.Second/fps)
	g.Mount(staticContainer{cfg.Width, cfg.Height}, nil, sched)
	defer g.Destroy()

	fmt.Printf("Rendering %d frames of %d items at %dx%d\n", *frames, len(items), cfg.Width, cfg.Height)

	written := 0
	for i := 0; i < *frames; i++ {
		sched.Step(1)
		if i%*every != 0 {
			continue
		}
		filename := filepath.Join(*outDir, fmt.Sprintf("frame_%03d.%s", written, *format))
		if err := raster.Save(filename, r.Image()); err != nil {
			fatalf("error: %v\n", err)
		}
		written++
		fmt.Printf("  frame %d/%d → %s\n", i+1, *frames, filename)
	}
	fmt.Println("Done.")
}

func loadItems(cfg config.Config) (scan.FileItems, error) {
	if cfg.Items != "" {
		return scan.LoadManifest(cfg.Items)
	}
	scanner := service.NewDirScanner()
	return scan.Collect(scanner.Scan(cfg.Dir, func(msg string) { fmt.Fprintln(os.Stderr, msg) })), nil
}

// staticContainer is a fixed-size output surface.
type staticContainer struct {
	w, h int
}

func (c staticContainer) Size() (int, int) { return c.w, c.h }
func (c staticContainer) OnResize(func(w, h int)) func() { return func() {} }

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
