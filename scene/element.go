package scene

import (
	watermark "github.com/gcslaoli/tiled-watermark-go"
)

// Element is a node of a Document's tree.
type Element struct {
	doc    *Document
	tag    string
	canvas *Canvas

	// guarded by doc.mu
	parent   *Element
	children []*Element
	attrs    map[string]string
	width    int
	height   int
}

var _ watermark.Element = (*Element)(nil)

// node lets canvases and elements be resolved to the tree node behind
// them.
type node interface {
	element() *Element
}

func (e *Element) element() *Element { return e }

func asElement(el watermark.Element) *Element {
	if n, ok := el.(node); ok {
		return n.element()
	}
	return nil
}

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// Parent returns the parent element, or nil when detached.
func (e *Element) Parent() *Element {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.parent
}

// Children returns a snapshot of the direct children.
func (e *Element) Children() []*Element {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return append([]*Element(nil), e.children...)
}

// Canvases returns the direct children that are canvases, in order.
func (e *Element) Canvases() []*Canvas {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	var out []*Canvas
	for _, child := range e.children {
		if child.canvas != nil {
			out = append(out, child.canvas)
		}
	}
	return out
}

// LastChild returns the last direct child, or nil.
func (e *Element) LastChild() *Element {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	if len(e.children) == 0 {
		return nil
	}
	return e.children[len(e.children)-1]
}

// AppendChild implements watermark.Element. A child attached elsewhere is
// moved.
func (e *Element) AppendChild(child watermark.Element) {
	c := asElement(child)
	if c == nil {
		return
	}

	d := e.doc
	d.mu.Lock()
	defer d.mu.Unlock()

	if c.parent != nil {
		c.parent.removeLocked(c)
	}
	c.parent = e
	e.children = append(e.children, c)
	d.queueLocked(observeChildList, watermark.Mutation{
		Type:   watermark.MutationChildList,
		Target: e.external(),
		Added:  []watermark.Element{c.external()},
	}, e)
}

// RemoveChild implements watermark.Element.
func (e *Element) RemoveChild(child watermark.Element) error {
	c := asElement(child)

	d := e.doc
	d.mu.Lock()
	defer d.mu.Unlock()

	if c == nil || c.parent != e {
		return watermark.ErrNotChild
	}
	e.removeLocked(c)
	return nil
}

func (e *Element) removeLocked(c *Element) {
	for i, child := range e.children {
		if child == c {
			e.children = append(e.children[:i], e.children[i+1:]...)
			break
		}
	}
	c.parent = nil
	e.doc.queueLocked(observeChildList, watermark.Mutation{
		Type:    watermark.MutationChildList,
		Target:  e.external(),
		Removed: []watermark.Element{c.external()},
	}, e)
}

// ReplaceChildren detaches every child and appends children in their
// place, reported as a single child list record, like assigning innerHTML.
func (e *Element) ReplaceChildren(children ...*Element) {
	d := e.doc
	d.mu.Lock()
	defer d.mu.Unlock()

	rec := watermark.Mutation{Type: watermark.MutationChildList, Target: e.external()}
	for _, old := range e.children {
		old.parent = nil
		rec.Removed = append(rec.Removed, old.external())
	}
	e.children = nil

	for _, c := range children {
		if c.parent != nil {
			c.parent.removeLocked(c)
		}
		c.parent = e
		e.children = append(e.children, c)
		rec.Added = append(rec.Added, c.external())
	}
	d.queueLocked(observeChildList, rec, e)
}

// Contains implements watermark.Element.
func (e *Element) Contains(other watermark.Element) bool {
	o := asElement(other)
	if o == nil {
		return false
	}

	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	for n := o; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// SetSize sets the element's layout box and notifies resize observers when
// it changes.
func (e *Element) SetSize(width, height int) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.setSizeLocked(width, height)
}

func (e *Element) setSizeLocked(width, height int) {
	if e.width == width && e.height == height {
		return
	}
	e.width, e.height = width, height
	e.doc.resizedLocked(e)
}

// OffsetSize implements watermark.Element.
func (e *Element) OffsetSize() (int, int) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.width, e.height
}

// Attribute implements watermark.Element.
func (e *Element) Attribute(name string) (string, bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	v, ok := e.attrs[name]
	return v, ok
}

// SetAttribute implements watermark.Element. Every call is reported to
// attribute observers, even when the value is unchanged.
func (e *Element) SetAttribute(name, value string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.setAttributeLocked(name, value)
}

func (e *Element) setAttributeLocked(name, value string) {
	e.attrs[name] = value
	e.doc.queueLocked(observeAttributes, watermark.Mutation{
		Type:          watermark.MutationAttributes,
		Target:        e.external(),
		AttributeName: name,
	}, e)
}

// RemoveAttribute deletes an attribute and reports the change.
func (e *Element) RemoveAttribute(name string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	delete(e.attrs, name)
	e.doc.queueLocked(observeAttributes, watermark.Mutation{
		Type:          watermark.MutationAttributes,
		Target:        e.external(),
		AttributeName: name,
	}, e)
}

// Style returns the value of an inline style property.
func (e *Element) Style(property string) (string, bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return styleValue(parseStyle(e.attrs["style"]), property)
}

// ComputedStyle implements watermark.Element. Only inline styles exist, so
// unset properties fall back to their initial values.
func (e *Element) ComputedStyle(property string) string {
	if v, ok := e.Style(property); ok {
		return v
	}
	return initialStyle[property]
}

var initialStyle = map[string]string{
	"position":   "static",
	"display":    "inline",
	"visibility": "visible",
	"opacity":    "1",
}

// SetStyleProperty implements watermark.Element, rewriting the style
// attribute with one property changed.
func (e *Element) SetStyleProperty(property, value string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	props := setStyleProp(parseStyle(e.attrs["style"]), property, value)
	e.setAttributeLocked("style", formatStyle(props))
}

// external is the value handed to watermark code for this node: the canvas
// for canvas elements, so identity comparisons hold.
func (e *Element) external() watermark.Element {
	if e.canvas != nil {
		return e.canvas
	}
	return e
}
