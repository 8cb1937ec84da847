package gallery

import "time"

// FrameFunc runs one frame. now is the frame clock, not wall time.
type FrameFunc func(now time.Time)

// Scheduler drives a frame function until the returned cancel is called.
// Cancel must be safe to call more than once.
type Scheduler interface {
	Start(fn FrameFunc) (cancel func())
}

// ManualScheduler runs frames only when stepped. Tests and the headless
// renderer use it in place of a display refresh.
type ManualScheduler struct {
	now      time.Time
	interval time.Duration
	fn       FrameFunc
	frames   uint64
}

// NewManualScheduler starts its clock at start and advances it by interval
// per step.
func NewManualScheduler(start time.Time, interval time.Duration) *ManualScheduler {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &ManualScheduler{now: start, interval: interval}
}

func (m *ManualScheduler) Start(fn FrameFunc) func() {
	m.fn = fn
	return func() { m.fn = nil }
}

// Step runs n frames. It does nothing once cancelled.
func (m *ManualScheduler) Step(n int) {
	for i := 0; i < n && m.fn != nil; i++ {
		m.now = m.now.Add(m.interval)
		m.frames++
		m.fn(m.now)
	}
}

// Advance moves the clock without running a frame.
func (m *ManualScheduler) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}

// Now is the current frame clock.
func (m *ManualScheduler) Now() time.Time { return m.now }

// Frames is the number of frames run so far.
func (m *ManualScheduler) Frames() uint64 { return m.frames }

// Running reports whether a frame function is scheduled.
func (m *ManualScheduler) Running() bool { return m.fn != nil }
