package gallery

import "math"

// Recycler keeps the doubled strip tiling the viewport by moving items a
// whole track ahead or behind once they leave the screen.
type Recycler struct {
	HalfViewport float64
	TrackWidth   float64
}

// Shift returns the change to apply to an item's extra offset. It is always
// a whole multiple of TrackWidth and only fires for the overflow side that
// matches the direction of travel.
func (r Recycler) Shift(localX, halfPlane float64, dir Direction) float64 {
	if !(r.TrackWidth > 0) {
		return 0
	}
	switch dir {
	case Forward:
		over := -r.HalfViewport - (localX + halfPlane)
		if over > 0 {
			return -math.Ceil(over/r.TrackWidth) * r.TrackWidth
		}
	case Backward:
		over := (localX - halfPlane) - r.HalfViewport
		if over > 0 {
			return math.Ceil(over/r.TrackWidth) * r.TrackWidth
		}
	}
	return 0
}
