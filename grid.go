package watermark

import (
	"github.com/fogleman/gg"
)

// paintGrid tiles the overlay. Each axis starts at its offset and keeps
// going while the coordinate is below extent+spacing, so partially visible
// tiles on the right and bottom edges are still drawn. It returns the
// number of tiles painted.
func paintGrid(dc *gg.Context, cfg Config, assets tileAssets) int {
	angle := gg.Radians(cfg.Rotate)
	width, height := float64(cfg.Width), float64(cfg.Height)

	tiles := 0
	for x := cfg.StartX; x < width+cfg.AxisX; x += cfg.AxisX {
		for y := cfg.StartY; y < height+cfg.AxisY; y += cfg.AxisY {
			dc.Push()
			dc.Translate(x, y)
			dc.Rotate(angle)
			renderTile(dc, cfg, assets)
			dc.Pop()
			tiles++
		}
	}
	return tiles
}

// validSpacing guards paintGrid against loops that never advance.
func validSpacing(cfg Config) bool {
	return cfg.AxisX > 0 && cfg.AxisY > 0
}
