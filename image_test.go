package watermark

import (
	"bytes"
	"image"
	"image/draw"
)

func imagesEqual(a, b image.Image) bool {
	if !a.Bounds().Eq(b.Bounds()) {
		return false
	}

	ab := imageToNRGBA(a)
	bb := imageToNRGBA(b)

	return bytes.Equal(ab.Pix, bb.Pix)
}

func imageToNRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)
	return out
}
