package gallery

import "math"

// Pose is where an item sits on the arc, in world units. Rotation is in
// radians, counter-clockwise positive.
type Pose struct {
	X, Y     float64
	Rotation float64
}

// Arc bends the horizontal strip into a circular arc through the viewport
// edges. Bend is the signed sagitta at the edge: positive bends the ends
// down, negative bends them up.
type Arc struct {
	HalfWidth float64
	Bend      float64
}

// Radius of the circle through (±HalfWidth, Bend) tangent to the x axis.
// It is never smaller than HalfWidth. Zero means flat.
func (a Arc) Radius() float64 {
	if a.Bend == 0 {
		return 0
	}
	b := math.Abs(a.Bend)
	return (a.HalfWidth*a.HalfWidth + b*b) / (2 * b)
}

// Place returns the pose of an item centered at local position x.
func (a Arc) Place(x float64) Pose {
	p := Pose{X: x}
	if a.Bend == 0 {
		return p
	}
	r := a.Radius()
	ex := math.Min(math.Abs(x), a.HalfWidth)
	if !(r > 0) || ex <= 0 {
		return p
	}
	// r - sqrt(r²-ex²), rearranged to stay exact for very flat arcs.
	sagitta := ex * ex / (r + math.Sqrt(math.Max(r*r-ex*ex, 0)))
	tilt := math.Asin(math.Min(ex/r, 1))
	sx := sign(x)
	if a.Bend > 0 {
		p.Y = -sagitta
		p.Rotation = -sx * tilt
	} else {
		p.Y = sagitta
		p.Rotation = sx * tilt
	}
	return p
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
