package gallery

import "time"

// Autoplay advances the carousel by one slot every interval. Any input
// forwarded through it restarts the countdown, and nothing advances while
// a pointer is held.
type Autoplay struct {
	ctrl     *Controller
	interval time.Duration
	touched  bool
	paused   bool
	due      time.Time
}

var _ Handler = (*Autoplay)(nil)

func NewAutoplay(ctrl *Controller, interval time.Duration) *Autoplay {
	return &Autoplay{ctrl: ctrl, interval: interval}
}

func (a *Autoplay) PointerDown(x float64) {
	a.touched = true
	a.ctrl.PointerDown(x)
}

func (a *Autoplay) PointerMove(x float64) {
	a.touched = true
	a.ctrl.PointerMove(x)
}

func (a *Autoplay) PointerUp(x float64) {
	a.touched = true
	a.ctrl.PointerUp(x)
}

func (a *Autoplay) PointerCancel() {
	a.touched = true
	a.ctrl.PointerCancel()
}

func (a *Autoplay) Wheel(deltaY float64, now time.Time) {
	a.touched = true
	a.ctrl.Wheel(deltaY, now)
}

func (a *Autoplay) Click() {
	a.touched = true
	a.ctrl.Click()
}

func (a *Autoplay) Advance(steps int) {
	a.touched = true
	a.ctrl.Advance(steps)
}

// Tick runs once per frame before the controller's own tick.
func (a *Autoplay) Tick(now time.Time) {
	if a.interval <= 0 {
		return
	}
	if a.due.IsZero() || a.touched || a.paused || a.ctrl.Session().Phase != Idle {
		a.touched = false
		a.due = now.Add(a.interval)
		return
	}
	if !now.Before(a.due) {
		a.ctrl.Advance(1)
		a.due = now.Add(a.interval)
	}
}

// SetPaused stops or resumes automatic steps. Resuming waits a full
// interval.
func (a *Autoplay) SetPaused(p bool) { a.paused = p }

func (a *Autoplay) Paused() bool { return a.paused }

// Due is when the next automatic step fires. Zero before the first frame.
func (a *Autoplay) Due() time.Time { return a.due }
