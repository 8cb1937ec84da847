package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/nicky-ayoub/arcgallery/internal/gallery"
)

// InputState holds the polled state of inputs for a single frame.
// This separates input polling from input handling logic.
type InputState struct {
	Quit             bool
	ToggleFullscreen bool
	ToggleAutoplay   bool
	Rescan           bool

	// Carousel input, handed to the gallery dispatcher.
	Gallery gallery.InputFrame
}

// PollInput gathers all raw input events for the current frame.
func PollInput() InputState {
	in := InputState{
		Quit:             inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		ToggleFullscreen: inpututil.IsKeyJustPressed(ebiten.KeyF11),
		ToggleAutoplay:   inpututil.IsKeyJustPressed(ebiten.KeyS),
		Rescan:           inpututil.IsKeyJustPressed(ebiten.KeyR),
	}

	_, wheelY := ebiten.Wheel()
	f := gallery.InputFrame{
		// Ebiten reports scrolling up as positive; the strip moves forward
		// when the wheel scrolls down.
		WheelY: -wheelY,
		Click:  inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Next:   inpututil.IsKeyJustPressed(ebiten.KeyRight),
		Prev:   inpututil.IsKeyJustPressed(ebiten.KeyLeft),
		Cancel: !ebiten.IsFocused(),
	}

	if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		x, _ := ebiten.TouchPosition(touches[0])
		f.Pointer, f.PointerX = true, float64(x)
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		f.Pointer, f.PointerX = true, float64(x)
	}
	in.Gallery = f
	return in
}
