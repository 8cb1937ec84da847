package gallery

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type fakeContainer struct {
	w, h      int
	listeners map[int]func(w, h int)
	next      int
}

func newFakeContainer(w, h int) *fakeContainer {
	return &fakeContainer{w: w, h: h, listeners: make(map[int]func(w, h int))}
}

func (c *fakeContainer) Size() (int, int) { return c.w, c.h }

func (c *fakeContainer) OnResize(fn func(w, h int)) func() {
	id := c.next
	c.next++
	c.listeners[id] = fn
	return func() { delete(c.listeners, id) }
}

func (c *fakeContainer) resize(w, h int) {
	c.w, c.h = w, h
	for _, fn := range c.listeners {
		fn(w, h)
	}
}

type fakeInput struct {
	handlers map[int]Handler
	next     int
}

func newFakeInput() *fakeInput {
	return &fakeInput{handlers: make(map[int]Handler)}
}

func (in *fakeInput) Subscribe(h Handler) func() {
	id := in.next
	in.next++
	in.handlers[id] = h
	return func() { delete(in.handlers, id) }
}

type recordingNavigator struct {
	hrefs []string
}

func (n *recordingNavigator) Navigate(href string) {
	n.hrefs = append(n.hrefs, href)
}

type countingRenderer struct {
	resizes int
	renders int
	last    Frame
}

func (r *countingRenderer) Resize(Geometry, []Item) { r.resizes++ }

func (r *countingRenderer) Render(f Frame) {
	r.renders++
	r.last = f
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleSources(n int) []Source {
	names := []string{"fiori", "paturain", "bridge", "desk", "waterfall", "coast", "palms", "lights"}
	src := make([]Source, n)
	for i := range src {
		name := names[i%len(names)]
		src[i] = Source{Image: "img/" + name + ".jpg", Label: name}
	}
	return src
}

type rig struct {
	g     *Gallery
	c     *fakeContainer
	in    *fakeInput
	sched *ManualScheduler
	nav   *recordingNavigator
	r     *countingRenderer
}

func newRig(t *testing.T, src []Source, cfg Config, w, h int) *rig {
	t.Helper()
	nav := &recordingNavigator{}
	r := &countingRenderer{}
	g, err := New(src, cfg, WithLogger(quietLogger()), WithNavigator(nav), WithRenderer(r))
	if err != nil {
		t.Fatalf("New() err = %v", err)
	}
	rg := &rig{
		g:     g,
		c:     newFakeContainer(w, h),
		in:    newFakeInput(),
		sched: NewManualScheduler(epoch, time.Second/60),
		nav:   nav,
		r:     r,
	}
	g.Mount(rg.c, rg.in, rg.sched)
	return rg
}

// settle runs frames until the scroll rests or the limit is hit.
func (rg *rig) settle(t *testing.T) {
	t.Helper()
	for i := 0; i < 20000; i++ {
		if rg.g.scroll.Resting(1e-9) && !rg.g.ctrl.SettlePending() {
			rg.sched.Step(2)
			return
		}
		rg.sched.Step(1)
	}
	t.Fatalf("scroll did not come to rest: %+v", rg.g.Scroll())
}
