package scene

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func whiteImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

func redCanvas(doc *Document, style string) *Canvas {
	c := doc.NewCanvas()
	c.SetCanvasSize(10, 10)
	dc, _ := c.Context2D()
	dc.SetRGB(1, 0, 0)
	dc.Clear()
	c.SetAttribute("style", style)
	return c
}

func TestCompositeAppliesOpacity(t *testing.T) {
	doc := NewDocument(10, 10)
	doc.BodyElement().AppendChild(redCanvas(doc, "opacity: 0.5;"))

	dst := whiteImage(10, 10)
	Composite(dst, doc.BodyElement())

	got := dst.RGBAAt(5, 5)
	if got.R != 255 || got.G < 125 || got.G > 129 || got.B < 125 || got.B > 129 {
		t.Fatalf("pixel = %+v, want half red over white", got)
	}
}

func TestCompositeSkipsHiddenCanvases(t *testing.T) {
	cases := []struct {
		name  string
		style string
	}{
		{name: "display none", style: "display: none;"},
		{name: "visibility hidden", style: "visibility: hidden;"},
		{name: "transparent", style: "opacity: 0;"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := NewDocument(10, 10)
			doc.BodyElement().AppendChild(redCanvas(doc, tc.style))

			dst := whiteImage(10, 10)
			Composite(dst, doc.BodyElement())

			if got := dst.RGBAAt(5, 5); got != (color.RGBA{255, 255, 255, 255}) {
				t.Fatalf("pixel = %+v, want untouched white", got)
			}
		})
	}
}

func TestCompositeReachesNestedCanvases(t *testing.T) {
	doc := NewDocument(10, 10)
	wrapper := doc.CreateElement("div")
	doc.BodyElement().AppendChild(wrapper)
	wrapper.AppendChild(redCanvas(doc, ""))

	dst := whiteImage(10, 10)
	Composite(dst, doc.BodyElement())

	if got := dst.RGBAAt(0, 0); got != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("pixel = %+v, want opaque red", got)
	}
}

func TestOpacityAlpha(t *testing.T) {
	cases := map[string]uint8{
		"1":     255,
		"0":     0,
		"0.5":   128,
		"2":     255,
		"-1":    0,
		"bogus": 255,
	}
	for in, want := range cases {
		if got := opacityAlpha(in); got != want {
			t.Fatalf("opacityAlpha(%q) = %d, want %d", in, got, want)
		}
	}
}
