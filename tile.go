package watermark

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// tileAssets are the resolved resources shared by every tile of a pass.
type tileAssets struct {
	face  font.Face
	fore  color.Color
	image image.Image
}

// renderTile paints one unit at the origin of dc, which the grid has
// already translated and rotated. It returns the branch that ran.
func renderTile(dc *gg.Context, cfg Config, assets tileAssets) Mode {
	dc.SetColor(assets.fore)
	if assets.face != nil {
		dc.SetFontFace(assets.face)
	}

	switch cfg.Mode() {
	case ModeCustom:
		cfg.Print(dc, cfg)
		return ModeCustom

	case ModeText:
		text := cfg.Content.(TextContent)
		if text.MaxWidth >= 0 {
			if text.MaxWidth == 0 {
				return ModeText
			}
			if w, _ := dc.MeasureString(text.Text); w > text.MaxWidth {
				dc.Scale(text.MaxWidth/w, 1)
			}
		}
		dc.DrawString(text.Text, 0, 0)
		return ModeText

	case ModeImage:
		if assets.image == nil {
			return ModeNone
		}
		drawTileImage(dc, cfg.Content.(ImageContent), assets.image)
		return ModeImage
	}

	return ModeNone
}

// drawTileImage draws img scaled to the requested box, falling back to the
// natural size for any dimension left at zero.
func drawTileImage(dc *gg.Context, content ImageContent, img image.Image) {
	size := img.Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		return
	}

	w, h := content.Width, content.Height
	if w <= 0 {
		w = float64(size.X)
	}
	if h <= 0 {
		h = float64(size.Y)
	}

	if sx, sy := w/float64(size.X), h/float64(size.Y); sx != 1 || sy != 1 {
		dc.Scale(sx, sy)
	}
	dc.DrawImage(img, 0, 0)
}
