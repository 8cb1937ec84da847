package gallery

import "github.com/charmbracelet/harmonica"

// LoadStatus tracks an item's texture as reported by the renderer's loader.
type LoadStatus int

const (
	Pending LoadStatus = iota
	Loaded
	Failed
)

func (s LoadStatus) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return "pending"
}

const (
	fadeFPS       = 60
	fadeFrequency = 5.0
	fadeDamping   = 1.0 // critically damped, no overshoot
)

// fader eases opacity from 0 to 1 once a texture arrives.
type fader struct {
	spring harmonica.Spring
}

func newFader() fader {
	return fader{spring: harmonica.NewSpring(harmonica.FPS(fadeFPS), fadeFrequency, fadeDamping)}
}

func (f fader) step(it *Item) {
	if it.Status != Loaded {
		// Placeholders draw at full strength.
		it.Opacity, it.fadeVel = 1, 0
		return
	}
	if it.Opacity >= 1 {
		return
	}
	it.Opacity, it.fadeVel = f.spring.Update(it.Opacity, it.fadeVel, 1)
	if it.Opacity > 0.999 {
		it.Opacity, it.fadeVel = 1, 0
	}
	if it.Opacity < 0 {
		it.Opacity = 0
	}
}
