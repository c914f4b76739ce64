package watermark

import (
	"errors"

	"github.com/fogleman/gg"
)

// ErrNotChild is returned by Element.RemoveChild when the node is not a
// direct child of the receiver.
var ErrNotChild = errors.New("node is not a child of this element")

// Element is a node of the host tree the overlay is mounted into.
type Element interface {
	AppendChild(child Element)
	RemoveChild(child Element) error
	// Contains reports whether other is the element itself or one of its
	// descendants.
	Contains(other Element) bool
	// OffsetSize is the element's current layout box in pixels.
	OffsetSize() (width, height int)
	// ComputedStyle returns the effective value of a style property, with
	// "position" defaulting to "static".
	ComputedStyle(property string) string
	SetStyleProperty(property, value string)
	SetAttribute(name, value string)
	Attribute(name string) (string, bool)
}

// Canvas is a drawable element. Changing its size clears its pixels.
type Canvas interface {
	Element
	SetCanvasSize(width, height int)
	// Context2D returns the drawing context, or false when none can be
	// obtained.
	Context2D() (*gg.Context, bool)
}

// MutationType distinguishes the records delivered to mutation observers.
type MutationType int

const (
	MutationChildList MutationType = iota
	MutationAttributes
)

// Mutation describes one change observed on the host tree.
type Mutation struct {
	Type          MutationType
	Target        Element
	AttributeName string
	Added         []Element
	Removed       []Element
}

// Subscription is a registered watcher. After Disconnect returns no new
// notifications are scheduled for it.
type Subscription interface {
	Disconnect()
}

// Host is the environment the overlay lives in: the element tree, its
// change notifications, and the event loop callbacks run on.
type Host interface {
	Body() Element
	ViewportSize() (width, height int)
	CreateCanvas() Canvas

	ObserveChildList(target Element, fn func([]Mutation)) Subscription
	ObserveAttributes(target Element, fn func([]Mutation)) Subscription
	ObserveResize(target Element, fn func()) Subscription

	// Post schedules fn on the host's event loop.
	Post(fn func())
}

type subscriptionFunc func()

func (f subscriptionFunc) Disconnect() { f() }

// disconnect tolerates nil subscriptions.
func disconnect(s Subscription) {
	if s != nil {
		s.Disconnect()
	}
}
