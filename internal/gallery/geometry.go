package gallery

import "math"

// Camera is the perspective camera looking at the item plane at z=0.
type Camera struct {
	FOV float64 // vertical field of view in degrees
	Z   float64 // distance from the item plane
}

// DefaultCamera is a 45 degree perspective camera 20 units from the strip.
var DefaultCamera = Camera{FOV: 45, Z: 20}

// Geometry is the viewport and item sizing derived from the container.
// World units are those of the item plane as seen through Camera.
type Geometry struct {
	ScreenW, ScreenH     float64
	ViewportW, ViewportH float64

	ItemW, ItemH float64
	Padding      float64
	Count        int
}

// NewGeometry sizes the viewport for a container of w×h pixels holding
// count items. A zero-size container yields a zero geometry.
func NewGeometry(cam Camera, cfg Config, w, h, count int) Geometry {
	g := Geometry{Count: count}
	if w <= 0 || h <= 0 {
		return g
	}
	g.ScreenW, g.ScreenH = float64(w), float64(h)
	fov := cam.FOV * math.Pi / 180
	g.ViewportH = 2 * math.Tan(fov/2) * cam.Z
	g.ViewportW = g.ViewportH * g.ScreenW / g.ScreenH
	g.ItemW = g.ViewportW * cfg.ItemWidthRatio
	g.ItemH = g.ViewportH * cfg.ItemHeightRatio
	g.Padding = g.ViewportW * cfg.PaddingRatio
	return g
}

// Empty reports whether there is nothing to lay out or draw.
func (g Geometry) Empty() bool {
	return g.ScreenW <= 0 || g.ScreenH <= 0 || g.ViewportW <= 0
}

// Slot is the horizontal extent of one item including its padding.
func (g Geometry) Slot() float64 {
	return g.ItemW + g.Padding
}

// TrackWidth is the extent of one full loop of the doubled sequence.
func (g Geometry) TrackWidth() float64 {
	return g.Slot() * float64(g.Count)
}

// PixelsPerUnit converts world lengths to screen pixels.
func (g Geometry) PixelsPerUnit() float64 {
	if g.Empty() {
		return 0
	}
	return g.ScreenW / g.ViewportW
}

// ToScreen maps a world point on the item plane to pixel coordinates with
// the origin at the top-left corner.
func (g Geometry) ToScreen(x, y float64) (float64, float64) {
	ppu := g.PixelsPerUnit()
	return g.ScreenW/2 + x*ppu, g.ScreenH/2 - y*ppu
}

// ToWorldX maps a pixel column to a world x on the item plane.
func (g Geometry) ToWorldX(px float64) float64 {
	ppu := g.PixelsPerUnit()
	if ppu == 0 {
		return 0
	}
	return (px - g.ScreenW/2) / ppu
}
