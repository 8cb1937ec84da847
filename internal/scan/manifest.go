package scan

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var ErrNoImage = errors.New("manifest entry has no image")

// manifestEntry accepts both the {image, text} and the {src, title} shapes.
type manifestEntry struct {
	Image string `json:"image"`
	Src   string `json:"src"`
	Text  string `json:"text"`
	Title string `json:"title"`
	Href  string `json:"href"`
}

type manifestFile struct {
	Items []manifestEntry `json:"items"`
}

// LoadManifest reads a JSON item list from path. The file is either an array
// of entries or an object with an "items" array. Relative image paths are
// resolved against the manifest's directory.
func LoadManifest(path string) (FileItems, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	items, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	base := filepath.Dir(path)
	for i := range items {
		if !filepath.IsAbs(items[i].Path) {
			items[i].Path = filepath.Join(base, items[i].Path)
		}
	}
	return items, nil
}

// ParseManifest decodes a manifest without touching the filesystem.
func ParseManifest(data []byte) (FileItems, error) {
	var entries []manifestEntry
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var f manifestFile
		if err := json.Unmarshal(trimmed, &f); err != nil {
			return nil, err
		}
		entries = f.Items
	} else if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, err
	}

	items := make(FileItems, 0, len(entries))
	for i, e := range entries {
		img := e.Image
		if img == "" {
			img = e.Src
		}
		if img == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrNoImage)
		}
		label := e.Text
		if label == "" {
			label = e.Title
		}
		items = append(items, FileItem{Path: img, Label: label, Href: e.Href})
	}
	return items, nil
}
