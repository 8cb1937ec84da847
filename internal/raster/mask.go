package raster

import (
	"image"

	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter ellipse.
const kappa = 0.5522847498

// RoundedMask is a w×h coverage mask of a rectangle whose corners are
// rounded by radius in UV units: the corner ellipse spans radius·w by
// radius·h pixels. radius is clamped to [0, 0.5].
func RoundedMask(w, h int, radius float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return mask
	}
	radius = min(max(radius, 0), 0.5)
	fw, fh := float32(w), float32(h)
	rx, ry := float32(radius)*fw, float32(radius)*fh
	kx, ky := rx*kappa, ry*kappa

	z := vector.NewRasterizer(w, h)
	z.MoveTo(rx, 0)
	z.LineTo(fw-rx, 0)
	z.CubeTo(fw-rx+kx, 0, fw, ry-ky, fw, ry)
	z.LineTo(fw, fh-ry)
	z.CubeTo(fw, fh-ry+ky, fw-rx+kx, fh, fw-rx, fh)
	z.LineTo(rx, fh)
	z.CubeTo(rx-kx, fh, 0, fh-ry+ky, 0, fh-ry)
	z.LineTo(0, ry)
	z.CubeTo(0, ry-ky, rx-kx, 0, rx, 0)
	z.ClosePath()
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// fade scales mask coverage by opacity into a new mask.
func fade(mask *image.Alpha, opacity float64) *image.Alpha {
	out := image.NewAlpha(mask.Rect)
	for i, a := range mask.Pix {
		out.Pix[i] = uint8(float64(a)*opacity + 0.5)
	}
	return out
}
