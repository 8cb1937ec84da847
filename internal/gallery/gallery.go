// Package gallery implements a bent, infinitely looping image carousel:
// eased scroll physics, wraparound tiling of a doubled item strip, emphasis
// of the centered item, and tap/drag disambiguation for navigation.
//
// The package draws nothing itself. A Renderer receives the laid-out items
// once per frame, a Container reports the surface size, and an InputSource
// delivers pointer and wheel events. Everything runs on one goroutine: the
// frame function and the event callbacks never interleave, so no state is
// locked.
package gallery

import (
	"log/slog"
	"slices"
	"time"
)

// Container is the surface the carousel is mounted in.
type Container interface {
	Size() (w, h int)
	OnResize(fn func(w, h int)) (remove func())
}

// InputSource delivers input events to a subscribed handler.
type InputSource interface {
	Subscribe(h Handler) (remove func())
}

// Frame is what a renderer gets each frame. Items is only valid for the
// duration of the Render call.
type Frame struct {
	Number   uint64
	Now      time.Time
	Geometry Geometry
	Items    []Item
}

// Renderer draws laid-out items. Resize is called whenever the geometry or
// the item list changes so per-item handles can be recreated.
type Renderer interface {
	Resize(g Geometry, items []Item)
	Render(f Frame)
}

// Option configures a Gallery.
type Option func(*Gallery)

func WithLogger(l *slog.Logger) Option {
	return func(g *Gallery) { g.log = l }
}

func WithNavigator(n Navigator) Option {
	return func(g *Gallery) { g.nav = n }
}

func WithRenderer(r Renderer) Option {
	return func(g *Gallery) { g.renderer = r }
}

func WithCamera(c Camera) Option {
	return func(g *Gallery) { g.cam = c }
}

// WithAutoplay advances one slot every d while no input arrives. d <= 0
// disables it.
func WithAutoplay(d time.Duration) Option {
	return func(g *Gallery) { g.autoplayEvery = d }
}

// Gallery is one mounted carousel instance.
type Gallery struct {
	cfg      Config
	cam      Camera
	log      *slog.Logger
	nav      Navigator
	renderer Renderer

	sources []Source
	items   []Item
	status  map[string]LoadStatus
	geom    Geometry
	w, h    int

	scroll   *Scroll
	arc      Arc
	emphasis Emphasis
	fade     fader
	ctrl     *Controller
	autoplay *Autoplay

	autoplayEvery time.Duration

	cancel   func()
	removers []func()
	frames   uint64
}

// New builds a carousel over sources. It fails only on invalid config.
func New(sources []Source, cfg Config, opts ...Option) (*Gallery, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	scroll, err := NewScroll(cfg.Ease)
	if err != nil {
		return nil, err
	}
	g := &Gallery{
		cfg:      cfg,
		cam:      DefaultCamera,
		log:      slog.Default(),
		scroll:   scroll,
		emphasis: Emphasis{Max: cfg.ActiveScaleMax, Ease: emphasisEase},
		fade:     newFader(),
		status:   make(map[string]LoadStatus),
	}
	for _, o := range opts {
		o(g)
	}
	g.ctrl = NewController(g.scroll, cfg.ScrollSpeed, g.slot, NewResolver(g.laidOut), g.nav, g.log)
	if g.autoplayEvery > 0 {
		g.autoplay = NewAutoplay(g.ctrl, g.autoplayEvery)
	}
	g.SetItems(sources)
	return g, nil
}

// Mount sizes the carousel to c, subscribes to its events and starts the
// frame loop on s.
func (g *Gallery) Mount(c Container, in InputSource, s Scheduler) {
	g.Resize(c.Size())
	g.removers = append(g.removers, c.OnResize(g.Resize))
	if in != nil {
		g.removers = append(g.removers, in.Subscribe(g.Handler()))
	}
	g.cancel = s.Start(g.Frame)
	g.log.Debug("gallery mounted", "items", len(g.items), "width", g.w, "height", g.h)
}

// Destroy stops the frame loop and removes every listener Mount registered.
func (g *Gallery) Destroy() {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	for _, remove := range g.removers {
		remove()
	}
	g.removers = nil
}

// SetItems replaces the source list. The doubled strip is only rebuilt when
// the list actually changed; the scroll position is kept either way.
func (g *Gallery) SetItems(sources []Source) bool {
	if g.items != nil && slices.Equal(sources, g.sources) {
		return false
	}
	g.sources = slices.Clone(sources)
	g.items = double(g.sources)
	for i := range g.items {
		g.items[i].Status = g.status[g.items[i].Image]
	}
	g.geom = NewGeometry(g.cam, g.cfg, g.w, g.h, len(g.items))
	relayout(g.items, g.geom, g.scroll.Current)
	g.log.Debug("gallery items rebuilt", "sources", len(g.sources), "items", len(g.items))
	g.resized()
	return true
}

// Resize recomputes geometry for a w×h container. Repeating a size is a
// no-op, and the scroll offset is never touched.
func (g *Gallery) Resize(w, h int) {
	if w == g.w && h == g.h {
		return
	}
	g.w, g.h = w, h
	g.geom = NewGeometry(g.cam, g.cfg, w, h, len(g.items))
	relayout(g.items, g.geom, g.scroll.Current)
	g.log.Debug("gallery resized", "width", w, "height", h, "track", g.geom.TrackWidth())
	g.resized()
}

func (g *Gallery) resized() {
	g.arc = Arc{HalfWidth: g.geom.ViewportW / 2, Bend: g.cfg.Bend}
	if g.renderer != nil {
		g.renderer.Resize(g.geom, g.items)
	}
}

// Frame advances the simulation by one frame and hands the result to the
// renderer.
func (g *Gallery) Frame(now time.Time) {
	if g.autoplay != nil {
		g.autoplay.Tick(now)
	}
	g.ctrl.Tick(now)
	g.scroll.Step()
	dir := g.scroll.Direction()

	if !g.geom.Empty() && len(g.items) > 0 {
		rec := Recycler{HalfViewport: g.geom.ViewportW / 2, TrackWidth: g.geom.TrackWidth()}
		for i := range g.items {
			it := &g.items[i]
			it.LocalX = it.BaseX - g.scroll.Current - it.Extra
			if shift := rec.Shift(it.LocalX, it.Width/2, dir); shift != 0 {
				it.Extra += shift
				it.LocalX = it.BaseX - g.scroll.Current - it.Extra
			}
			it.Pose = g.arc.Place(it.LocalX)
			it.Scale = g.emphasis.Step(it.Scale, it.LocalX, it.Width)
			g.fade.step(it)
		}
		if g.renderer != nil {
			g.renderer.Render(Frame{Number: g.frames, Now: now, Geometry: g.geom, Items: g.items})
		}
	}

	g.scroll.Commit()
	g.frames++
}

// SetStatus records the load result for every item showing image.
func (g *Gallery) SetStatus(image string, st LoadStatus) {
	if g.status[image] == st {
		return
	}
	g.status[image] = st
	for i := range g.items {
		it := &g.items[i]
		if it.Image != image {
			continue
		}
		it.Status = st
		if st == Loaded {
			it.Opacity, it.fadeVel = 0, 0
		}
	}
	if st == Failed {
		g.log.Warn("image failed to load", "image", image)
	}
}

// Items is the doubled strip. Callers must not keep or modify it.
func (g *Gallery) Items() []Item { return g.items }

// Sources is the list the strip was built from.
func (g *Gallery) Sources() []Source { return g.sources }

// Centered returns the item nearest the viewport center.
// There is none while the container has no size.
func (g *Gallery) Centered() (Item, bool) {
	i := Centered(g.laidOut())
	if i < 0 {
		return Item{}, false
	}
	return g.items[i], true
}

// laidOut is the strip once it has a geometry to be drawn in, nil before.
func (g *Gallery) laidOut() []Item {
	if g.geom.Empty() {
		return nil
	}
	return g.items
}

func (g *Gallery) Geometry() Geometry { return g.geom }

// Scroll returns a copy of the scroll state.
func (g *Gallery) Scroll() Scroll { return *g.scroll }

// Controller is the input handler, for hosts that deliver events directly.
func (g *Gallery) Controller() *Controller { return g.ctrl }

// Autoplay is nil unless WithAutoplay enabled it.
func (g *Gallery) Autoplay() *Autoplay { return g.autoplay }

// Handler is what Mount subscribes: the controller, wrapped by autoplay
// when it is enabled.
func (g *Gallery) Handler() Handler {
	if g.autoplay != nil {
		return g.autoplay
	}
	return g.ctrl
}

func (g *Gallery) Config() Config { return g.cfg }

func (g *Gallery) slot() float64 {
	if len(g.items) == 0 {
		return 0
	}
	return g.geom.Slot()
}
