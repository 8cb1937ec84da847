package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/nicky-ayoub/arcgallery/internal/config"
	"github.com/nicky-ayoub/arcgallery/internal/gallery"
	"github.com/nicky-ayoub/arcgallery/internal/scan"
	"github.com/nicky-ayoub/arcgallery/internal/service"
	"github.com/nicky-ayoub/arcgallery/internal/ui"
)

type Game struct {
	gallery  *gallery.Gallery
	surface  *ui.Surface
	renderer *ui.Renderer
	textures *ui.TextureLoader

	catalog        *scan.Catalog
	catalogVersion uint64
	scanner        *service.ScannerService
	dir            string
	scanning       atomic.Bool
	requests       []string // texture paths not yet accepted by the loader

	debug bool
	href  string // last navigation, shown in the debug overlay
}

func (g *Game) Update() error {
	input := ui.PollInput()

	if input.Quit {
		return ebiten.Termination
	}
	if input.ToggleFullscreen {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if input.ToggleAutoplay {
		if a := g.gallery.Autoplay(); a != nil {
			a.SetPaused(!a.Paused())
		}
	}

	if input.Rescan {
		g.startScan()
	}

	// Pick up whatever the background scan has added since last frame.
	if g.catalog != nil {
		if v := g.catalog.Version(); v != g.catalogVersion {
			items, version := g.catalog.Snapshot()
			g.catalogVersion = version
			g.setItems(items)
		}
	}

	for len(g.requests) > 0 && g.textures.Request(g.requests[0]) {
		g.requests = g.requests[1:]
	}
	g.textures.Update(g.gallery.SetStatus)
	g.surface.Update(input.Gallery)
	return nil
}

// startScan empties the catalog and walks the directory again in the
// background. Large directories fill in progressively while the window is
// up. It does nothing for a manifest or while a scan is running.
func (g *Game) startScan() {
	if g.catalog == nil || !g.scanning.CompareAndSwap(false, true) {
		return
	}
	g.catalog.Clear()
	go func() {
		defer g.scanning.Store(false)
		n := g.catalog.Fill(g.scanner.Scan(g.dir, func(msg string) { log.Println(msg) }), 1000, 100*time.Millisecond)
		log.Printf("Loaded %d images from %s", n, g.dir)
	}()
}

func (g *Game) setItems(items scan.FileItems) {
	if !g.gallery.SetItems(items.ToSources()) {
		return
	}
	g.requests = g.requests[:0]
	for _, it := range items {
		g.requests = append(g.requests, it.Path)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	if !g.debug {
		return
	}
	autoplay := "off"
	if a := g.gallery.Autoplay(); a != nil {
		autoplay = "on"
		if a.Paused() {
			autoplay = "paused"
		}
	}
	source := "manifest"
	if g.catalog != nil {
		source = g.catalog.Dump()
		if g.scanning.Load() {
			source += " (scanning)"
		}
	}
	centered, _ := g.gallery.Centered()
	s := g.gallery.Scroll()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.1f\nItems: %d (%s)\nCentered: %s\nScroll: %.2f -> %.2f\nAutoplay: %s\nLast href: %s",
		ebiten.ActualTPS(),
		len(g.gallery.Sources()),
		source,
		centered.Label,
		s.Current, s.Target,
		autoplay,
		g.href))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// One logical pixel per window pixel; the carousel scales with the window.
	g.surface.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *Game) Navigate(href string) {
	g.href = href
	log.Printf("navigate: %s", href)
	fmt.Println(href)
}

func main() {
	configPath := flag.String("config", "", "JSON config file")
	itemsPath := flag.String("items", "", "JSON manifest listing the items to show")
	dirFlag := flag.String("dir", "", "Directory to scan for images. Can also be provided as a positional argument.")
	interval := flag.Duration("interval", 0, "Autoplay interval (e.g., '3s'); 0 leaves autoplay off")
	width := flag.Int("width", 0, "Window width")
	height := flag.Int("height", 0, "Window height")
	bend := flag.Float64("bend", 0, "Arc curvature; 0 is flat, negative bends downward")
	speed := flag.Float64("speed", 0, "Wheel and drag scroll speed")
	workers := flag.Int("workers", 0, "Texture decode workers")
	debug := flag.Bool("debug", false, "Show the debug overlay and debug logs")
	flag.Parse()

	if *debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	flags := config.Flags{
		Items:    *itemsPath,
		Dir:      *dirFlag,
		Autoplay: *interval,
		Width:    *width,
		Height:   *height,
		Workers:  *workers,
	}
	// Bend and speed may legitimately be set to zero, so only flags that
	// were given override the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "bend":
			flags.Bend = bend
		case "speed":
			flags.Speed = speed
		}
	})
	if flags.Items == "" && flags.Dir == "" && flag.NArg() > 0 {
		flags.Dir = flag.Arg(0)
	}
	if err := cfg.Resolve(flags); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	images := service.NewImageService()
	images.MaxTexture = cfg.MaxTexture

	game := &Game{
		surface:  ui.NewSurface(cfg.Width, cfg.Height),
		textures: ui.NewTextureLoader(images, cfg.Workers, slog.Default()),
		debug:    *debug,
	}
	defer game.textures.Close()

	renderer, err := ui.NewRenderer(cfg.Gallery, game.textures, slog.Default())
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	game.renderer = renderer

	game.gallery, err = gallery.New(nil, cfg.Gallery,
		gallery.WithLogger(slog.Default()),
		gallery.WithNavigator(game),
		gallery.WithRenderer(renderer),
		gallery.WithAutoplay(time.Duration(cfg.Autoplay)),
	)
	if err != nil {
		log.Fatalf("Failed to create gallery: %v", err)
	}

	if cfg.Items != "" {
		items, err := scan.LoadManifest(cfg.Items)
		if err != nil {
			log.Fatalf("Failed to load items: %v", err)
		}
		game.setItems(items)
	} else {
		game.catalog = scan.NewCatalog()
		game.scanner = service.NewDirScanner()
		game.dir = cfg.Dir
		game.startScan()
	}

	game.gallery.Mount(game.surface, game.surface, game.surface)
	defer game.gallery.Destroy()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
