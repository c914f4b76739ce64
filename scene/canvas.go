package scene

import (
	"image"
	"strconv"

	"github.com/fogleman/gg"

	watermark "github.com/gcslaoli/tiled-watermark-go"
)

// Canvas is an element with a pixel buffer.
type Canvas struct {
	*Element

	// guarded by doc.mu
	dc        *gg.Context
	noContext bool
}

var _ watermark.Canvas = (*Canvas)(nil)

// SetCanvasSize implements watermark.Canvas. The width and height
// attributes are updated, the layout box follows, and the pixels are
// cleared.
func (c *Canvas) SetCanvasSize(width, height int) {
	d := c.doc
	d.mu.Lock()
	defer d.mu.Unlock()

	c.setAttributeLocked("width", strconv.Itoa(width))
	c.setAttributeLocked("height", strconv.Itoa(height))
	c.setSizeLocked(width, height)

	c.dc = nil
	if width > 0 && height > 0 {
		c.dc = gg.NewContext(width, height)
	}
}

// Context2D implements watermark.Canvas. A zero sized canvas has no
// context.
func (c *Canvas) Context2D() (*gg.Context, bool) {
	c.doc.mu.Lock()
	defer c.doc.mu.Unlock()

	if c.noContext || c.dc == nil {
		return nil, false
	}
	return c.dc, true
}

// DisableContext makes Context2D fail, as when a platform runs out of
// canvas contexts.
func (c *Canvas) DisableContext() {
	c.doc.mu.Lock()
	defer c.doc.mu.Unlock()
	c.noContext = true
}

// Image returns the canvas pixels, or nil for an empty canvas. The image
// is shared with the context.
func (c *Canvas) Image() image.Image {
	c.doc.mu.Lock()
	defer c.doc.mu.Unlock()

	if c.dc == nil {
		return nil
	}
	return c.dc.Image()
}
