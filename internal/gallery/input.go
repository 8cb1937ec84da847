package gallery

import (
	"log/slog"
	"math"
	"time"
)

const (
	// DragThreshold is the pointer travel in pixels that turns a press into a drag.
	DragThreshold = 6.0
	// SettleDelay is how long the wheel must be idle before snapping.
	SettleDelay = 200 * time.Millisecond

	dragFactor  = 0.025
	wheelFactor = 0.2
)

// Phase is the state of the pointer session.
type Phase int

const (
	Idle Phase = iota
	Down
	Dragging
)

func (p Phase) String() string {
	switch p {
	case Down:
		return "down"
	case Dragging:
		return "dragging"
	}
	return "idle"
}

// PointerSession is the state carried between pointer events.
type PointerSession struct {
	Phase         Phase
	StartX, LastX float64
	Dragged       bool
	SuppressClick bool
}

// Handler receives input events. All calls happen on the frame goroutine.
type Handler interface {
	PointerDown(x float64)
	PointerMove(x float64)
	PointerUp(x float64)
	PointerCancel()
	Wheel(deltaY float64, now time.Time)
	Click()
	Advance(steps int)
}

// Controller turns pointer and wheel events into scroll target changes and
// tells taps from drags.
type Controller struct {
	scroll   *Scroll
	speed    float64
	slot     func() float64
	resolver *Resolver
	nav      Navigator
	log      *slog.Logger

	session       PointerSession
	settlePending bool
	settleAt      time.Time
}

var _ Handler = (*Controller)(nil)

// NewController wires a controller to the scroll it drives. slot reports the
// current snapping step; nav may be nil.
func NewController(s *Scroll, speed float64, slot func() float64, r *Resolver, nav Navigator, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{scroll: s, speed: speed, slot: slot, resolver: r, nav: nav, log: log}
}

// Session returns a copy of the pointer session.
func (c *Controller) Session() PointerSession {
	return c.session
}

// SettlePending reports whether a wheel settle is waiting for its deadline.
func (c *Controller) SettlePending() bool {
	return c.settlePending
}

func (c *Controller) PointerDown(x float64) {
	c.session = PointerSession{Phase: Down, StartX: x, LastX: x}
}

func (c *Controller) PointerMove(x float64) {
	if c.session.Phase == Idle {
		return
	}
	c.scroll.Add((c.session.LastX - x) * c.speed * dragFactor)
	c.session.LastX = x
	if math.Abs(c.session.StartX-x) > DragThreshold {
		c.session.Dragged = true
		c.session.Phase = Dragging
	}
}

func (c *Controller) PointerUp(x float64) {
	if c.session.Phase == Idle {
		return
	}
	if x != c.session.LastX {
		c.PointerMove(x)
	}
	c.session.Phase = Idle
	c.session.SuppressClick = true

	if math.Abs(c.session.StartX-c.session.LastX) < DragThreshold {
		if href, ok := c.resolver.Resolve(); ok {
			c.navigate(href)
			return
		}
	}
	c.settle()
}

// PointerCancel drops the session without navigating or settling.
func (c *Controller) PointerCancel() {
	c.session.Phase = Idle
	c.session.Dragged = false
}

func (c *Controller) Wheel(deltaY float64, now time.Time) {
	if deltaY == 0 || math.IsNaN(deltaY) {
		return
	}
	c.scroll.Add(deltaY * c.speed * wheelFactor)
	c.settlePending = true
	c.settleAt = now.Add(SettleDelay)
}

// Click swallows the click that follows a handled pointer-up, otherwise
// navigates to the centered item.
func (c *Controller) Click() {
	if c.session.SuppressClick {
		c.session.SuppressClick = false
		return
	}
	if href, ok := c.resolver.Resolve(); ok {
		c.navigate(href)
	}
}

// Advance moves the target by whole slots and snaps.
func (c *Controller) Advance(steps int) {
	c.scroll.Add(float64(steps) * c.slot())
	c.settle()
}

// Tick fires the wheel settle once its deadline has passed.
func (c *Controller) Tick(now time.Time) {
	if c.settlePending && !now.Before(c.settleAt) {
		c.settlePending = false
		c.settle()
	}
}

func (c *Controller) settle() {
	c.scroll.Settle(c.slot())
}

func (c *Controller) navigate(href string) {
	c.log.Debug("navigate", "href", href)
	if c.nav != nil {
		c.nav.Navigate(href)
	}
}
