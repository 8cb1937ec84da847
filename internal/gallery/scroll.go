package gallery

import "math"

// Direction is the sense of travel of the scroll offset in the last frame.
type Direction int

const (
	Backward Direction = iota
	Forward
)

func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "backward"
}

// Scroll eases a scalar offset toward a target once per frame.
type Scroll struct {
	Current float64
	Target  float64
	Last    float64
	Ease    float64
}

// NewScroll returns a scroll at rest at 0.
func NewScroll(ease float64) (*Scroll, error) {
	if err := validateEase(ease); err != nil {
		return nil, err
	}
	return &Scroll{Ease: ease}, nil
}

// Add moves the target by a relative delta.
func (s *Scroll) Add(delta float64) {
	s.Target += delta
}

// Step advances Current one frame toward Target. It runs every frame even
// without input so motion decays to rest.
func (s *Scroll) Step() {
	s.Current += (s.Target - s.Current) * s.Ease
}

// Direction compares Current against the previous frame's value.
func (s *Scroll) Direction() Direction {
	if s.Current > s.Last {
		return Forward
	}
	return Backward
}

// Commit records Current as the previous frame's value.
func (s *Scroll) Commit() {
	s.Last = s.Current
}

// Settle snaps Target to the nearest multiple of step, keeping its sign.
func (s *Scroll) Settle(step float64) {
	if !(step > 0) {
		return
	}
	n := math.Round(math.Abs(s.Target) / step)
	snapped := n * step
	if s.Target < 0 {
		snapped = -snapped
	}
	s.Target = snapped
}

// Resting reports whether Current is within eps of Target.
func (s *Scroll) Resting(eps float64) bool {
	return math.Abs(s.Target-s.Current) < eps
}
