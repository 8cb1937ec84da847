package service

import (
	"path/filepath"
	"strings"

	"github.com/nicky-ayoub/arcgallery/internal/scan"
)

// FileScanner abstracts file scanning.
type FileScanner interface {
	Run(dir string, logger scan.LoggerFunc) <-chan scan.FileItem
}

// ScannerService finds gallery images on disk.
type ScannerService struct {
	FileScan   FileScanner
	Extensions map[string]bool // Extensions ImageService can decode
}

// NewScannerService wraps fileScan with the default extension set.
func NewScannerService(fileScan FileScanner) *ScannerService {
	return &ScannerService{
		FileScan: fileScan,
		Extensions: map[string]bool{
			".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
			".bmp": true, ".webp": true, ".tga": true,
		},
	}
}

// NewDirScanner is a ScannerService over the filesystem walker, limited to
// decodable extensions.
func NewDirScanner() *ScannerService {
	s := NewScannerService(nil)
	s.FileScan = &scan.FileScannerImpl{Extensions: s.Extensions}
	return s
}

// Scan streams the decodable images under dir. Files whose extension is not
// in Extensions are dropped even if the underlying scanner yields them.
func (s *ScannerService) Scan(dir string, logger scan.LoggerFunc) <-chan scan.FileItem {
	in := s.FileScan.Run(dir, logger)
	out := make(chan scan.FileItem, cap(in))
	go func() {
		defer close(out)
		for it := range in {
			if s.Supported(it.Path) {
				out <- it
			}
		}
	}()
	return out
}

// Supported reports whether path has a decodable extension.
func (s *ScannerService) Supported(path string) bool {
	return s.Extensions[extOf(path)]
}

func extOf(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
