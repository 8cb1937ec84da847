package gallery

import (
	"math"
	"testing"
)

func TestArcFlat(t *testing.T) {
	a := Arc{HalfWidth: 20, Bend: 0}
	for _, x := range []float64{-100, -20, -3.5, 0, 1, 20, 55} {
		p := a.Place(x)
		if p.Y != 0 || p.Rotation != 0 {
			t.Fatalf("Place(%v) = %+v, want flat", x, p)
		}
		if p.X != x {
			t.Fatalf("Place(%v).X = %v, want %v", x, p.X, x)
		}
	}
}

func TestArcCenterIsOnChord(t *testing.T) {
	for _, b := range []float64{-6, -0.1, 0.1, 3, 40} {
		p := Arc{HalfWidth: 20, Bend: b}.Place(0)
		if p.Y != 0 || p.Rotation != 0 {
			t.Fatalf("bend %v: Place(0) = %+v, want zero", b, p)
		}
	}
}

func TestArcRadiusAtLeastHalfWidth(t *testing.T) {
	for _, b := range []float64{1e-9, 0.5, 3, 20, 1e6, -3} {
		a := Arc{HalfWidth: 20, Bend: b}
		if r := a.Radius(); r < a.HalfWidth {
			t.Fatalf("bend %v: Radius() = %v < %v", b, r, a.HalfWidth)
		}
	}
}

func TestArcSagittaIncreasesWithDistance(t *testing.T) {
	const h = 20.0
	for _, b := range []float64{3, -3, 0.2, 15} {
		a := Arc{HalfWidth: h, Bend: b}
		prev := 0.0
		for x := 0.25; x <= h; x += 0.25 {
			for _, sx := range []float64{x, -x} {
				y := math.Abs(a.Place(sx).Y)
				if !(y > prev) {
					t.Fatalf("bend %v: |y(%v)| = %v not above %v", b, sx, y, prev)
				}
			}
			prev = math.Abs(a.Place(x).Y)
		}
		// At the viewport edge the sagitta equals the bend itself.
		if got := math.Abs(a.Place(h).Y); math.Abs(got-math.Abs(b)) > 1e-9 {
			t.Fatalf("bend %v: |y(H)| = %v, want %v", b, got, math.Abs(b))
		}
	}
}

func TestArcClampsBeyondHalfWidth(t *testing.T) {
	a := Arc{HalfWidth: 20, Bend: 3}
	edge := a.Place(20)
	far := a.Place(90)
	if far.Y != edge.Y || far.Rotation != edge.Rotation {
		t.Fatalf("Place(90) = %+v, want same as edge %+v", far, edge)
	}
	if math.IsNaN(far.Y) || math.IsNaN(far.Rotation) {
		t.Fatalf("Place(90) = %+v has NaN", far)
	}
}

func TestArcRotationSigns(t *testing.T) {
	down := Arc{HalfWidth: 20, Bend: 3}
	up := Arc{HalfWidth: 20, Bend: -3}

	if p := down.Place(10); !(p.Y < 0 && p.Rotation < 0) {
		t.Fatalf("bend>0, x>0: %+v, want y<0 and rotation<0", p)
	}
	if p := down.Place(-10); !(p.Y < 0 && p.Rotation > 0) {
		t.Fatalf("bend>0, x<0: %+v, want y<0 and rotation>0", p)
	}
	if p := up.Place(10); !(p.Y > 0 && p.Rotation > 0) {
		t.Fatalf("bend<0, x>0: %+v, want y>0 and rotation>0", p)
	}
	if p := up.Place(-10); !(p.Y > 0 && p.Rotation < 0) {
		t.Fatalf("bend<0, x<0: %+v, want y>0 and rotation<0", p)
	}
}

func TestArcTangent(t *testing.T) {
	// The item tilts with the slope of the circle at its position.
	a := Arc{HalfWidth: 20, Bend: 3}
	const x, dx = 8.0, 1e-6
	slope := (a.Place(x+dx).Y - a.Place(x-dx).Y) / (2 * dx)
	if got := a.Place(x).Rotation; math.Abs(got-math.Atan(slope)) > 1e-6 {
		t.Fatalf("Rotation = %v, want atan(slope) = %v", got, math.Atan(slope))
	}
}

func TestArcContinuousInBend(t *testing.T) {
	p := Arc{HalfWidth: 20, Bend: 1e-9}.Place(15)
	if math.Abs(p.Y) > 1e-8 || math.Abs(p.Rotation) > 1e-8 {
		t.Fatalf("tiny bend: %+v, want ~flat", p)
	}
}
