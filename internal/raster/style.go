package raster

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var ErrBadColor = errors.New("color must be #rgb or #rrggbb")

// FontSpec is the part of a CSS font shorthand the label renderer honors.
type FontSpec struct {
	Bold   bool
	Italic bool
	Size   float64 // pixels
	Family string  // informational; the Go fonts are always used
}

const defaultFontSize = 30

// ParseFont reads strings like "bold 30px Figtree" or "italic 700 18px serif".
// Unknown tokens are taken as the family name.
func ParseFont(s string) FontSpec {
	spec := FontSpec{Size: defaultFontSize}
	var family []string
	for _, tok := range strings.Fields(s) {
		lower := strings.ToLower(tok)
		switch {
		case lower == "bold" || lower == "bolder":
			spec.Bold = true
		case lower == "italic" || lower == "oblique":
			spec.Italic = true
		case lower == "normal":
		case strings.HasSuffix(lower, "px"):
			if v, err := strconv.ParseFloat(strings.TrimSuffix(lower, "px"), 64); err == nil && v > 0 {
				spec.Size = v
			}
		default:
			if w, err := strconv.Atoi(lower); err == nil {
				spec.Bold = w >= 600
				continue
			}
			family = append(family, tok)
		}
	}
	spec.Family = strings.Trim(strings.Join(family, " "), `"'`)
	return spec
}

// ParseColor parses "#rgb" or "#rrggbb" into an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
