package gallery

import (
	"errors"
	"math"
	"testing"
)

func TestNewScrollRejectsEase(t *testing.T) {
	for _, ease := range []float64{0, -0.1, 1.01, math.NaN()} {
		if _, err := NewScroll(ease); !errors.Is(err, ErrInvalidEase) {
			t.Fatalf("NewScroll(%v) err = %v, want ErrInvalidEase", ease, err)
		}
	}
	if _, err := NewScroll(1); err != nil {
		t.Fatalf("NewScroll(1) err = %v, want nil", err)
	}
}

func TestScrollStepConverges(t *testing.T) {
	s, _ := NewScroll(0.05)
	s.Add(40)
	prev := math.Abs(s.Target - s.Current)
	for i := 0; i < 600; i++ {
		s.Step()
		d := math.Abs(s.Target - s.Current)
		if d > prev {
			t.Fatalf("frame %d: distance grew from %v to %v", i, prev, d)
		}
		prev = d
	}
	if !s.Resting(1e-6) {
		t.Fatalf("Current = %v, want ~%v", s.Current, s.Target)
	}
}

func TestScrollEaseOneSnaps(t *testing.T) {
	s, _ := NewScroll(1)
	s.Add(-7.5)
	s.Step()
	if s.Current != -7.5 {
		t.Fatalf("Current = %v, want -7.5", s.Current)
	}
}

func TestScrollDirection(t *testing.T) {
	s, _ := NewScroll(0.5)
	if got := s.Direction(); got != Backward {
		t.Fatalf("at rest Direction() = %v, want backward", got)
	}
	s.Add(10)
	s.Step()
	if got := s.Direction(); got != Forward {
		t.Fatalf("Direction() = %v, want forward", got)
	}
	s.Commit()
	s.Add(-30)
	s.Step()
	if got := s.Direction(); got != Backward {
		t.Fatalf("Direction() = %v, want backward", got)
	}
}

func TestScrollSettle(t *testing.T) {
	tests := []struct {
		target, step, want float64
	}{
		{40, 9.5, 38},
		{44.8, 9.5, 47.5},
		{-40, 9.5, -38},
		{-4.7, 9.5, 0},
		{0, 9.5, 0},
		{12, 0, 12},
	}
	for _, tt := range tests {
		s := Scroll{Target: tt.target, Ease: 1}
		s.Settle(tt.step)
		if math.Abs(s.Target-tt.want) > 1e-12 {
			t.Fatalf("Settle(%v) of %v = %v, want %v", tt.step, tt.target, s.Target, tt.want)
		}
	}
}
