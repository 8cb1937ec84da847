package gallery

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidEase   = errors.New("ease must be in (0, 1]")
	ErrInvalidBend   = errors.New("bend must be finite")
	ErrInvalidSpeed  = errors.New("scroll speed must be finite")
	ErrInvalidScale  = errors.New("active scale must be positive")
	ErrInvalidRadius = errors.New("corner radius must be in [0, 0.5]")
	ErrInvalidLayout = errors.New("layout ratios must be positive")
)

// Config holds the options a host passes to the carousel.
type Config struct {
	// Bend is the signed arc curvature. 0 lays the items on a flat line.
	Bend float64 `json:"bend"`
	// TextColor is the label color, "#rgb" or "#rrggbb".
	TextColor string `json:"textColor"`
	// CornerRadius is measured in texture UV units, so 0.5 is a pill.
	CornerRadius float64 `json:"cornerRadius"`
	ScrollSpeed  float64 `json:"scrollSpeed"`
	Ease         float64 `json:"ease"`
	// ActiveScaleMax is the scale of an item sitting exactly at the center.
	ActiveScaleMax float64 `json:"activeScaleMax"`
	// Font is a CSS-like font string such as "bold 30px Figtree".
	Font string `json:"font"`

	// Item width and padding are fractions of the viewport world width,
	// item height a fraction of the viewport world height.
	ItemWidthRatio  float64 `json:"itemWidthRatio"`
	ItemHeightRatio float64 `json:"itemHeightRatio"`
	PaddingRatio    float64 `json:"paddingRatio"`
}

// DefaultConfig returns the settings the portfolio page used.
func DefaultConfig() Config {
	return Config{
		Bend:            3,
		TextColor:       "#ffffff",
		CornerRadius:    0.05,
		ScrollSpeed:     2,
		Ease:            0.05,
		ActiveScaleMax:  1.15,
		Font:            "bold 30px Figtree",
		ItemWidthRatio:  0.1875,
		ItemHeightRatio: 0.6,
		PaddingRatio:    0.05,
	}
}

// Validate reports the first option that would stall or break the frame loop.
func (c Config) Validate() error {
	if err := validateEase(c.Ease); err != nil {
		return err
	}
	if math.IsNaN(c.Bend) || math.IsInf(c.Bend, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidBend, c.Bend)
	}
	if math.IsNaN(c.ScrollSpeed) || math.IsInf(c.ScrollSpeed, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSpeed, c.ScrollSpeed)
	}
	if !(c.ActiveScaleMax > 0) || math.IsInf(c.ActiveScaleMax, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidScale, c.ActiveScaleMax)
	}
	if !(c.CornerRadius >= 0 && c.CornerRadius <= 0.5) {
		return fmt.Errorf("%w: %v", ErrInvalidRadius, c.CornerRadius)
	}
	for _, r := range []float64{c.ItemWidthRatio, c.ItemHeightRatio} {
		if !(r > 0) || math.IsInf(r, 0) {
			return fmt.Errorf("%w: %v", ErrInvalidLayout, r)
		}
	}
	if !(c.PaddingRatio >= 0) || math.IsInf(c.PaddingRatio, 0) {
		return fmt.Errorf("%w: padding %v", ErrInvalidLayout, c.PaddingRatio)
	}
	return nil
}

func validateEase(ease float64) error {
	if !(ease > 0 && ease <= 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidEase, ease)
	}
	return nil
}
