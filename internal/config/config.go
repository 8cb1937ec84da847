// Package config loads viewer settings from a JSON file and applies command
// line overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/nicky-ayoub/arcgallery/internal/gallery"
)

var ErrNoItems = errors.New("no item source: set items or dir")

// Duration is a time.Duration that reads as "3s" in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string like \"3s\": %w", err)
	}
	if s == "" {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Config holds the viewer settings.
type Config struct {
	Gallery gallery.Config `json:"gallery"`

	// Item sources; Items (a JSON manifest) wins over Dir.
	Items string `json:"items"`
	Dir   string `json:"dir"`

	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`

	// Autoplay advances one item per interval; 0 turns it off.
	Autoplay Duration `json:"autoplay"`

	MaxTexture int `json:"max_texture"`
	Workers    int `json:"workers"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Gallery:    gallery.DefaultConfig(),
		Width:      1000,
		Height:     400,
		Title:      "arcgallery",
		MaxTexture: 1024,
		Workers:    2,
	}
}

// Load reads a JSON config file over the defaults.
// Fields not set in the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI overrides. Zero values and nil pointers mean "not set".
type Flags struct {
	Items    string
	Dir      string
	Autoplay time.Duration
	Width    int
	Height   int
	Bend     *float64
	Speed    *float64
	Workers  int
}

// Resolve applies flags over the file settings and validates the result.
func (c *Config) Resolve(flags Flags) error {
	if flags.Items != "" {
		c.Items = flags.Items
	}
	if flags.Dir != "" {
		c.Dir = flags.Dir
	}
	if flags.Autoplay > 0 {
		c.Autoplay = Duration(flags.Autoplay)
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Bend != nil {
		c.Gallery.Bend = *flags.Bend
	}
	if flags.Speed != nil {
		c.Gallery.ScrollSpeed = *flags.Speed
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d", c.Width, c.Height)
	}
	if c.Items == "" && c.Dir == "" {
		return ErrNoItems
	}
	if err := c.Gallery.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
