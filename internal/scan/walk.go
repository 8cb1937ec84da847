package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// FileScannerImpl walks a directory tree and streams the files it finds.
type FileScannerImpl struct {
	// Extensions limits the scan to these lower-case extensions, dot
	// included. Nil accepts every regular file.
	Extensions map[string]bool
}

// Run walks dir in lexical order on a background goroutine. The channel is
// closed when the walk ends. Hidden directories are skipped; unreadable
// entries are reported through logger and skipped.
func (s *FileScannerImpl) Run(dir string, logger LoggerFunc) <-chan FileItem {
	out := make(chan FileItem, 64)
	if logger == nil {
		logger = func(string) {}
	}
	go func() {
		defer close(out)
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logger(fmt.Sprintf("scan: %s: %v", path, err))
				if d != nil && d.IsDir() && path != dir {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				if path != dir && strings.HasPrefix(d.Name(), ".") {
					return fs.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() || !s.accepts(path) {
				return nil
			}
			out <- FileItem{Path: path, Label: LabelFromPath(path)}
			return nil
		})
		if err != nil {
			logger(fmt.Sprintf("scan %s: %v", dir, err))
		}
	}()
	return out
}

func (s *FileScannerImpl) accepts(path string) bool {
	if s.Extensions == nil {
		return true
	}
	return s.Extensions[strings.ToLower(filepath.Ext(path))]
}

// Collect drains a scan into a slice.
func Collect(ch <-chan FileItem) FileItems {
	var items FileItems
	for it := range ch {
		items = append(items, it)
	}
	return items
}
