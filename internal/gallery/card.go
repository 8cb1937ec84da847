package gallery

import (
	"math"
	"sort"
)

const (
	labelHeightRatio = 0.15
	labelGap         = 0.05
)

// CardToScreen maps a point in card-local world units (origin at the card
// center, v up) of a card posed at p to screen pixels.
func (g Geometry) CardToScreen(p Pose, u, v float64) (float64, float64) {
	s, c := math.Sincos(p.Rotation)
	return g.ToScreen(p.X+u*c-v*s, p.Y+u*s+v*c)
}

// LabelRect places a label of the given aspect (width/height) under a card
// of height cardH. dy is the label center relative to the card center, in
// card-local units.
func LabelRect(cardH, aspect float64) (dy, w, h float64) {
	h = cardH * labelHeightRatio
	w = h * aspect
	dy = -cardH/2 - h/2 - labelGap
	return dy, w, h
}

// Cover returns the normalized texture window that fills a plane of
// planeW×planeH without distortion, cropping the longer texture axis
// around its center.
func Cover(texW, texH, planeW, planeH float64) (u0, v0, u1, v1 float64) {
	if texW <= 0 || texH <= 0 || planeW <= 0 || planeH <= 0 {
		return 0, 0, 1, 1
	}
	rx := math.Min((planeW/planeH)/(texW/texH), 1)
	ry := math.Min((planeH/planeW)/(texH/texW), 1)
	return (1 - rx) / 2, (1 - ry) / 2, (1 + rx) / 2, (1 + ry) / 2
}

// DrawOrder returns item indexes back to front: the items farthest from the
// center first, so the emphasized card ends up on top.
func DrawOrder(items []Item) []int {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return math.Abs(items[order[a]].LocalX) > math.Abs(items[order[b]].LocalX)
	})
	return order
}

// QuadTransform returns the affine map, row-major [a b c; d e f], that takes
// a srcW×srcH pixel rectangle with its origin at (0, 0) onto a w×h
// world-unit quad centered at (du, dv) in the card-local frame of a card
// posed at p, in screen pixels.
func (g Geometry) QuadTransform(p Pose, du, dv, w, h, srcW, srcH float64) [6]float64 {
	ppu := g.PixelsPerUnit()
	sin, cos := math.Sincos(p.Rotation)
	cx, cy := g.CardToScreen(p, du, dv)
	kx, ky := w/srcW, h/srcH
	return [6]float64{
		ppu * cos * kx, ppu * sin * ky, cx - ppu*(cos*w/2+sin*h/2),
		-ppu * sin * kx, ppu * cos * ky, cy + ppu*(sin*w/2-cos*h/2),
	}
}
