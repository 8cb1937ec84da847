package gallery

import "time"

// InputFrame is one frame of polled device state, for hosts that poll input
// instead of receiving events.
type InputFrame struct {
	// Pointer is held: the primary mouse button or the first touch.
	Pointer  bool
	PointerX float64
	// WheelY is in notches; positive moves the strip forward.
	WheelY float64
	// Cancel aborts a held pointer, e.g. when the window loses focus.
	Cancel bool

	Click, Prev, Next bool
}

// Dispatcher turns polled frames into Handler events. After a cancel the
// pointer is ignored until it is released.
type Dispatcher struct {
	down    bool
	blocked bool
	lastX   float64
}

func (d *Dispatcher) Dispatch(h Handler, f InputFrame, now time.Time) {
	switch {
	case f.Cancel:
		if d.down {
			h.PointerCancel()
			d.down = false
			d.blocked = true
		}
	case d.blocked:
		d.blocked = f.Pointer
	case f.Pointer && !d.down:
		d.down, d.lastX = true, f.PointerX
		h.PointerDown(f.PointerX)
	case f.Pointer && f.PointerX != d.lastX:
		d.lastX = f.PointerX
		h.PointerMove(f.PointerX)
	case !f.Pointer && d.down:
		d.down = false
		h.PointerUp(d.lastX)
		h.Click()
	}

	if f.WheelY != 0 {
		h.Wheel(f.WheelY, now)
	}
	if f.Click {
		h.Click()
	}
	if f.Next {
		h.Advance(1)
	}
	if f.Prev {
		h.Advance(-1)
	}
}
