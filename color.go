package watermark

import (
	"fmt"
	"image/color"

	"github.com/mazznoer/csscolorparser"
)

// ParseColor converts a CSS color string ("red", "#ff000080",
// "rgba(0, 0, 0, 0.5)", "hsl(...)") into a non-premultiplied color.
func ParseColor(s string) (color.NRGBA, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b, a := c.RGBA255()
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
