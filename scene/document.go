// Package scene is an in-memory host for watermark overlays: an element
// tree with layout sizes and inline styles, canvas elements backed by a 2D
// context, mutation and resize observers, and a serial event loop that
// delivers their notifications.
package scene

import (
	"sync"

	watermark "github.com/gcslaoli/tiled-watermark-go"
)

// Document owns an element tree and its observers. All tree operations
// are safe for concurrent use; notifications run on the document's loop.
type Document struct {
	loop *Loop

	mu        sync.Mutex
	body      *Element
	viewportW int
	viewportH int
	observers []*observer
}

var _ watermark.Host = (*Document)(nil)

// NewDocument returns a document with a viewport, and a body, of the given
// size.
func NewDocument(width, height int) *Document {
	d := &Document{loop: NewLoop(), viewportW: width, viewportH: height}
	d.body = d.newElement("body")
	d.body.width, d.body.height = width, height
	return d
}

// Loop returns the loop notifications are delivered on.
func (d *Document) Loop() *Loop { return d.loop }

// Post implements watermark.Host.
func (d *Document) Post(fn func()) { d.loop.Post(fn) }

// Body implements watermark.Host.
func (d *Document) Body() watermark.Element { return d.body }

// BodyElement returns the body as its concrete type.
func (d *Document) BodyElement() *Element { return d.body }

// ViewportSize implements watermark.Host.
func (d *Document) ViewportSize() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.viewportW, d.viewportH
}

// SetViewportSize resizes the viewport. The body is kept at the viewport
// size, so resize observers of the body are notified.
func (d *Document) SetViewportSize(width, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.viewportW, d.viewportH = width, height
	d.body.setSizeLocked(width, height)
}

// CreateElement returns a detached element.
func (d *Document) CreateElement(tag string) *Element {
	return d.newElement(tag)
}

// CreateCanvas implements watermark.Host.
func (d *Document) CreateCanvas() watermark.Canvas {
	return d.NewCanvas()
}

// NewCanvas returns a detached, zero sized canvas.
func (d *Document) NewCanvas() *Canvas {
	c := &Canvas{Element: d.newElement("canvas")}
	c.Element.canvas = c
	return c
}

func (d *Document) newElement(tag string) *Element {
	return &Element{doc: d, tag: tag, attrs: make(map[string]string)}
}
