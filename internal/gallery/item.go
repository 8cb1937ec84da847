package gallery

import "math"

// Source is one entry of the list a host hands to the carousel.
type Source struct {
	Image string `json:"image"`
	Label string `json:"text"`
	Href  string `json:"href,omitempty"`
}

// Item is a laid-out entry of the doubled sequence.
type Item struct {
	Source
	// Index within the doubled sequence.
	Index int

	// Base size in world units, from the last resize.
	Width, Height float64
	// BaseX is Index slots from the origin.
	BaseX float64
	// Extra is the recycling offset, always a whole number of tracks.
	Extra float64

	LocalX float64
	Pose   Pose
	Scale  float64

	Status  LoadStatus
	Opacity float64
	fadeVel float64
}

// ScaledSize is the base size with the emphasis scale applied.
func (it *Item) ScaledSize() (float64, float64) {
	return it.Width * it.Scale, it.Height * it.Scale
}

// double concatenates the list with itself once so the strip can wrap with
// no visible seam.
func double(src []Source) []Item {
	n := len(src)
	items := make([]Item, 2*n)
	for i := range items {
		items[i] = Item{
			Source:  src[i%n],
			Index:   i,
			Scale:   1,
			Opacity: 1,
		}
	}
	return items
}

// relayout applies a new geometry to every item. Extra is reset to the whole
// number of tracks that puts each item within half a track of the viewport
// center at scroll offset current, so the strip stays covered whatever the
// direction of travel.
func relayout(items []Item, g Geometry, current float64) {
	track := g.TrackWidth()
	for i := range items {
		it := &items[i]
		it.Width, it.Height = g.ItemW, g.ItemH
		it.BaseX = g.Slot() * float64(it.Index)
		it.Scale = 1
		it.Extra = 0
		if track > 0 {
			it.Extra = math.Floor((it.BaseX-current+track/2)/track) * track
		}
		it.LocalX = it.BaseX - current - it.Extra
	}
}

// Centered returns the index of the item nearest the viewport center, or -1
// for an empty list. Ties go to the first item.
func Centered(items []Item) int {
	best := -1
	bestAbs := math.Inf(1)
	for i := range items {
		if ax := math.Abs(items[i].LocalX); ax < bestAbs {
			best, bestAbs = i, ax
		}
	}
	return best
}
