package ui

import (
	"image"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nicky-ayoub/arcgallery/internal/gallery"
	"github.com/nicky-ayoub/arcgallery/internal/service"
)

// textureJob represents a request to load a texture.
type textureJob struct {
	path string
}

// textureResult holds a decoded image, ready to be converted to an ebiten.Image.
type textureResult struct {
	path    string
	img     image.Image
	preview bool
	err     error
}

// TextureLoader decodes item images on background workers and uploads them
// on the update goroutine. Everything but the queues is touched only from
// Update and Draw, which Ebiten runs on one goroutine.
type TextureLoader struct {
	images *service.ImageService
	log    *slog.Logger

	cache    map[string]*ebiten.Image
	previews map[string]bool // cached texture is only the EXIF preview
	settled  map[string]bool // full decode finished, successfully or not
	pending  map[string]bool

	jobQueue     chan textureJob
	resultQueue  chan textureResult
	toDeallocate []*ebiten.Image
}

// NewTextureLoader starts workers background decoders.
func NewTextureLoader(is *service.ImageService, workers int, log *slog.Logger) *TextureLoader {
	if log == nil {
		log = slog.Default()
	}
	tl := &TextureLoader{
		images:      is,
		log:         log,
		cache:       make(map[string]*ebiten.Image),
		previews:    make(map[string]bool),
		settled:     make(map[string]bool),
		pending:     make(map[string]bool),
		jobQueue:    make(chan textureJob, 64),
		resultQueue: make(chan textureResult, 64),
	}
	for i := 0; i < max(workers, 1); i++ {
		go tl.loader()
	}
	return tl
}

// loader is a background worker that processes texture jobs.
func (tl *TextureLoader) loader() {
	for job := range tl.jobQueue {
		// The embedded EXIF thumbnail shows something quickly while the
		// full image decodes.
		if img, err := tl.images.Preview(job.path); err == nil {
			tl.resultQueue <- textureResult{path: job.path, img: img, preview: true}
		}
		img, err := tl.images.Load(job.path)
		tl.resultQueue <- textureResult{path: job.path, img: img, err: err}
	}
}

// Request queues path for loading unless it is cached, pending or done.
// It reports false when the queue is full; callers retry on a later frame.
func (tl *TextureLoader) Request(path string) bool {
	if tl.settled[path] || tl.pending[path] {
		return true
	}
	select {
	case tl.jobQueue <- textureJob{path: path}:
		tl.pending[path] = true
		return true
	default:
		return false
	}
}

// Update uploads finished decodes and reports status changes through
// onStatus. It must run on the update goroutine.
func (tl *TextureLoader) Update(onStatus func(path string, st gallery.LoadStatus)) {
	// Textures replaced last frame are no longer referenced by Draw.
	for _, img := range tl.toDeallocate {
		img.Deallocate()
	}
	tl.toDeallocate = tl.toDeallocate[:0]

	for {
		select {
		case r := <-tl.resultQueue:
			tl.apply(r, onStatus)
		default:
			return
		}
	}
}

func (tl *TextureLoader) apply(r textureResult, onStatus func(string, gallery.LoadStatus)) {
	if r.preview {
		if _, ok := tl.cache[r.path]; ok {
			return
		}
		tl.cache[r.path] = ebiten.NewImageFromImage(r.img)
		tl.previews[r.path] = true
		onStatus(r.path, gallery.Loaded)
		return
	}

	delete(tl.pending, r.path)
	tl.settled[r.path] = true
	if r.err != nil {
		tl.log.Debug("texture decode failed", "path", r.path, "err", r.err)
		if tl.previews[r.path] {
			// Keep showing the preview.
			return
		}
		onStatus(r.path, gallery.Failed)
		return
	}

	if old, ok := tl.cache[r.path]; ok {
		tl.toDeallocate = append(tl.toDeallocate, old)
	}
	tl.cache[r.path] = ebiten.NewImageFromImage(r.img)
	_, hadPreview := tl.previews[r.path]
	delete(tl.previews, r.path)
	if !hadPreview {
		onStatus(r.path, gallery.Loaded)
	}
}

// Texture returns the uploaded image for path, if any.
func (tl *TextureLoader) Texture(path string) (*ebiten.Image, bool) {
	img, ok := tl.cache[path]
	return img, ok
}

// Close stops the workers. Results still in flight are dropped.
func (tl *TextureLoader) Close() {
	close(tl.jobQueue)
}
