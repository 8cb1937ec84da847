package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nicky-ayoub/arcgallery/internal/gallery"
)

// Surface adapts the Ebiten game loop to the carousel's host interfaces.
// Layout feeds it the window size, Update drives input and frames.
type Surface struct {
	w, h int

	resize   map[int]func(w, h int)
	handlers map[int]gallery.Handler
	nextID   int

	frame gallery.FrameFunc
	now   time.Time
	disp  gallery.Dispatcher
}

var (
	_ gallery.Container   = (*Surface)(nil)
	_ gallery.InputSource = (*Surface)(nil)
	_ gallery.Scheduler   = (*Surface)(nil)
)

func NewSurface(w, h int) *Surface {
	return &Surface{
		w:        w,
		h:        h,
		resize:   make(map[int]func(w, h int)),
		handlers: make(map[int]gallery.Handler),
		now:      time.Now(),
	}
}

func (s *Surface) Size() (int, int) { return s.w, s.h }

func (s *Surface) OnResize(fn func(w, h int)) func() {
	id := s.id()
	s.resize[id] = fn
	return func() { delete(s.resize, id) }
}

func (s *Surface) Subscribe(h gallery.Handler) func() {
	id := s.id()
	s.handlers[id] = h
	return func() { delete(s.handlers, id) }
}

func (s *Surface) Start(fn gallery.FrameFunc) func() {
	s.frame = fn
	return func() { s.frame = nil }
}

func (s *Surface) id() int {
	s.nextID++
	return s.nextID
}

// Layout records the outside size and notifies listeners when it changes.
func (s *Surface) Layout(w, h int) {
	if w == s.w && h == s.h {
		return
	}
	s.w, s.h = w, h
	for _, fn := range s.resize {
		fn(w, h)
	}
}

// Update advances the frame clock by one tick, delivers this frame's input
// and runs the scheduled frame.
func (s *Surface) Update(in gallery.InputFrame) {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	s.now = s.now.Add(time.Second / time.Duration(tps))
	s.disp.Dispatch(fanout(s.handlers), in, s.now)
	if s.frame != nil {
		s.frame(s.now)
	}
}

// fanout forwards every event to each subscribed handler.
type fanout map[int]gallery.Handler

func (f fanout) PointerDown(x float64) {
	for _, h := range f {
		h.PointerDown(x)
	}
}

func (f fanout) PointerMove(x float64) {
	for _, h := range f {
		h.PointerMove(x)
	}
}

func (f fanout) PointerUp(x float64) {
	for _, h := range f {
		h.PointerUp(x)
	}
}

func (f fanout) PointerCancel() {
	for _, h := range f {
		h.PointerCancel()
	}
}

func (f fanout) Wheel(deltaY float64, now time.Time) {
	for _, h := range f {
		h.Wheel(deltaY, now)
	}
}

func (f fanout) Click() {
	for _, h := range f {
		h.Click()
	}
}

func (f fanout) Advance(steps int) {
	for _, h := range f {
		h.Advance(steps)
	}
}
