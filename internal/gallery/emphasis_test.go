package gallery

import (
	"math"
	"testing"
)

func TestEmphasisDesired(t *testing.T) {
	e := Emphasis{Max: 1.15, Ease: emphasisEase}
	tests := []struct {
		localX, ref, want float64
	}{
		{0, 8, 1.15},
		{4, 8, 1 + 0.15*0.25},
		{-4, 8, 1 + 0.15*0.25},
		{8, 8, 1},
		{30, 8, 1},
		{0, 0, 1},
		{0, -2, 1},
	}
	for _, tt := range tests {
		if got := e.Desired(tt.localX, tt.ref); math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("Desired(%v, %v) = %v, want %v", tt.localX, tt.ref, got, tt.want)
		}
	}
}

func TestEmphasisStepEases(t *testing.T) {
	e := Emphasis{Max: 1.15, Ease: emphasisEase}
	got := e.Step(1, 0, 8)
	if want := 1 + 0.15*0.25; math.Abs(got-want) > 1e-12 {
		t.Fatalf("first Step = %v, want %v", got, want)
	}
	s := 1.0
	for i := 0; i < 200; i++ {
		s = e.Step(s, 0, 8)
	}
	if math.Abs(s-1.15) > 1e-9 {
		t.Fatalf("scale after 200 frames = %v, want 1.15", s)
	}
}
