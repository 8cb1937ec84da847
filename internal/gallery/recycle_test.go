package gallery

import (
	"math"
	"testing"
)

func TestRecyclerShift(t *testing.T) {
	r := Recycler{HalfViewport: 20, TrackWidth: 100}
	const half = 4.0

	tests := []struct {
		name   string
		localX float64
		dir    Direction
		want   float64
	}{
		{"visible forward", 0, Forward, 0},
		{"visible backward", 0, Backward, 0},
		{"touching left edge", -24, Forward, 0},
		{"past left edge forward", -24.5, Forward, -100},
		{"past left edge backward", -24.5, Backward, 0},
		{"past right edge backward", 24.5, Backward, 100},
		{"past right edge forward", 24.5, Forward, 0},
		{"two tracks behind", -230, Forward, -300},
		{"two tracks ahead", 215, Backward, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Shift(tt.localX, half, tt.dir)
			if got != tt.want {
				t.Fatalf("Shift(%v, %v, %v) = %v, want %v", tt.localX, half, tt.dir, got, tt.want)
			}
			// Applying the shift leaves the item clear of the edge it crossed.
			x := tt.localX - got
			if tt.dir == Forward && x+half < -r.HalfViewport {
				t.Fatalf("still before after shift: %v", x)
			}
			if tt.dir == Backward && x-half > r.HalfViewport {
				t.Fatalf("still after after shift: %v", x)
			}
		})
	}
}

func TestRecyclerDisabledWithoutTrack(t *testing.T) {
	r := Recycler{HalfViewport: 20}
	if got := r.Shift(-1000, 4, Forward); got != 0 {
		t.Fatalf("Shift with zero track = %v, want 0", got)
	}
}

func TestRecyclerShiftIsWholeTracks(t *testing.T) {
	r := Recycler{HalfViewport: 20.7, TrackWidth: 98.3}
	for x := -1000.0; x <= 1000; x += 7.3 {
		for _, dir := range []Direction{Forward, Backward} {
			s := r.Shift(x, 3.9, dir)
			k := s / r.TrackWidth
			if math.Abs(k-math.Round(k)) > 1e-9 {
				t.Fatalf("Shift(%v, %v) = %v is not a whole number of tracks", x, dir, s)
			}
		}
	}
}
