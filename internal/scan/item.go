// Package scan finds the images a gallery shows, either by walking a
// directory or by reading a JSON manifest.
package scan

import (
	"path/filepath"
	"strings"

	"github.com/nicky-ayoub/arcgallery/internal/gallery"
)

// FileItem is one image found on disk.
type FileItem struct {
	Path  string
	Label string
	Href  string
}

type FileItems []FileItem

// LoggerFunc receives human-readable progress and error messages.
type LoggerFunc func(msg string)

// Source converts the item to what the carousel consumes.
func (f FileItem) Source() gallery.Source {
	return gallery.Source{Image: f.Path, Label: f.Label, Href: f.Href}
}

// ToSources converts every item, keeping order.
func (items FileItems) ToSources() []gallery.Source {
	out := make([]gallery.Source, len(items))
	for i, it := range items {
		out[i] = it.Source()
	}
	return out
}

// LabelFromPath turns "img/golden_gate-bridge.jpg" into "golden gate bridge".
func LabelFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.Join(strings.FieldsFunc(base, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	}), " ")
}
