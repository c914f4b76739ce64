package scene

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"golang.org/x/image/draw"
)

// Composite paints every visible canvas under root onto dst in document
// order, honouring each canvas's inline opacity. Canvases hidden with
// display or visibility styles are skipped.
func Composite(dst draw.Image, root *Element) {
	for _, child := range root.Children() {
		if child.canvas != nil {
			compositeCanvas(dst, child.canvas)
		}
		Composite(dst, child)
	}
}

func compositeCanvas(dst draw.Image, c *Canvas) {
	if c.ComputedStyle("display") == "none" || c.ComputedStyle("visibility") == "hidden" {
		return
	}

	src := c.Image()
	if src == nil {
		return
	}

	alpha := opacityAlpha(c.ComputedStyle("opacity"))
	if alpha == 0 {
		return
	}

	r := src.Bounds().Intersect(dst.Bounds())
	mask := image.NewUniform(color.Alpha{A: alpha})
	draw.DrawMask(dst, r, src, r.Min, mask, image.Point{}, draw.Over)
}

func opacityAlpha(v string) uint8 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 255
	}
	f = math.Max(0, math.Min(1, f))
	return uint8(math.Round(f * 255))
}
