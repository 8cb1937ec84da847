package gallery

import "math"

// emphasisEase is the per-frame factor pulling an item's scale toward the
// desired one, so the swap of the nearest item never pops.
const emphasisEase = 0.25

// Emphasis scales items up as they approach the viewport center.
type Emphasis struct {
	Max  float64
	Ease float64
}

// Desired is the scale an item at localX should settle at. ref is the width
// over which the effect falls off to nothing.
func (e Emphasis) Desired(localX, ref float64) float64 {
	var proximity float64
	if ref > 0 {
		proximity = clamp(1-math.Abs(localX)/ref, 0, 1)
	}
	return 1 + (e.Max-1)*proximity*proximity
}

// Step eases current one frame toward the desired scale.
func (e Emphasis) Step(current, localX, ref float64) float64 {
	return lerp(current, e.Desired(localX, ref), e.Ease)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
