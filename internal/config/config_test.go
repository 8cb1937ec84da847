package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nicky-ayoub/arcgallery/internal/gallery"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `{"dir": "photos", "gallery": {"bend": -2}, "autoplay": "4s"}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() err = %v", err)
	}
	if cfg.Dir != "photos" || cfg.Gallery.Bend != -2 {
		t.Fatalf("Load() = %+v", cfg)
	}
	if cfg.Gallery.Ease != 0.05 || cfg.Gallery.ActiveScaleMax != 1.15 || cfg.Width != 1000 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
	if time.Duration(cfg.Autoplay) != 4*time.Second {
		t.Fatalf("Autoplay = %v, want 4s", time.Duration(cfg.Autoplay))
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load(missing) err = %v, want not-exist", err)
	}
	if _, err := Load(writeConfig(t, `{"autoplay": 3}`)); err == nil {
		t.Fatalf("Load(numeric duration) err = nil")
	}
	if _, err := Load(writeConfig(t, `{`)); err == nil {
		t.Fatalf("Load(truncated) err = nil")
	}
}

func TestResolveFlagsWin(t *testing.T) {
	cfg := Default()
	cfg.Dir = "from-file"
	bend := 0.0
	err := cfg.Resolve(Flags{Dir: "from-flag", Items: "items.json", Autoplay: time.Second, Bend: &bend, Width: 640})
	if err != nil {
		t.Fatalf("Resolve() err = %v", err)
	}
	if cfg.Dir != "from-flag" || cfg.Items != "items.json" || cfg.Width != 640 || cfg.Height != 400 {
		t.Fatalf("Resolve() = %+v", cfg)
	}
	if cfg.Gallery.Bend != 0 {
		t.Fatalf("Bend = %v, want the explicit 0", cfg.Gallery.Bend)
	}
	if time.Duration(cfg.Autoplay) != time.Second {
		t.Fatalf("Autoplay = %v", time.Duration(cfg.Autoplay))
	}
}

func TestResolveValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Resolve(Flags{}); !errors.Is(err, ErrNoItems) {
		t.Fatalf("Resolve() err = %v, want ErrNoItems", err)
	}

	cfg = Default()
	cfg.Gallery.Ease = 2
	if err := cfg.Resolve(Flags{Dir: "."}); !errors.Is(err, gallery.ErrInvalidEase) {
		t.Fatalf("Resolve() err = %v, want ErrInvalidEase", err)
	}

	cfg = Default()
	cfg.Workers = 0
	if err := cfg.Resolve(Flags{Dir: "."}); err != nil {
		t.Fatalf("Resolve() err = %v", err)
	}
	if cfg.Workers != 1 {
		t.Fatalf("Workers = %d, want 1", cfg.Workers)
	}
}
