package scene

import (
	watermark "github.com/gcslaoli/tiled-watermark-go"
)

type observerKind int

const (
	observeChildList observerKind = iota
	observeAttributes
	observeResize
)

type observer struct {
	doc    *Document
	kind   observerKind
	target *Element

	onMutations func([]watermark.Mutation)
	onResize    func()

	// guarded by doc.mu
	active    bool
	pending   []watermark.Mutation
	scheduled bool
}

// ObserveChildList implements watermark.Host. Only direct children of
// target are watched.
func (d *Document) ObserveChildList(target watermark.Element, fn func([]watermark.Mutation)) watermark.Subscription {
	return d.observe(&observer{kind: observeChildList, target: asElement(target), onMutations: fn})
}

// ObserveAttributes implements watermark.Host. Only target's own
// attributes are watched.
func (d *Document) ObserveAttributes(target watermark.Element, fn func([]watermark.Mutation)) watermark.Subscription {
	return d.observe(&observer{kind: observeAttributes, target: asElement(target), onMutations: fn})
}

// ObserveResize implements watermark.Host. Like a browser resize observer
// it reports once right after subscribing, then on every size change;
// changes between two deliveries are coalesced.
func (d *Document) ObserveResize(target watermark.Element, fn func()) watermark.Subscription {
	o := d.observe(&observer{kind: observeResize, target: asElement(target), onResize: fn})

	d.mu.Lock()
	o.scheduleLocked()
	d.mu.Unlock()
	return o
}

func (d *Document) observe(o *observer) *observer {
	o.doc = d
	o.active = true

	d.mu.Lock()
	d.observers = append(d.observers, o)
	d.mu.Unlock()
	return o
}

// Disconnect stops the observer and drops records not yet delivered.
func (o *observer) Disconnect() {
	d := o.doc
	d.mu.Lock()
	defer d.mu.Unlock()

	if !o.active {
		return
	}
	o.active = false
	o.pending = nil

	for i, other := range d.observers {
		if other == o {
			d.observers = append(d.observers[:i], d.observers[i+1:]...)
			break
		}
	}
}

// Observers returns the number of connected observers.
func (d *Document) Observers() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.observers)
}

// queueLocked records a mutation for every matching observer. Callers hold
// d.mu.
func (d *Document) queueLocked(kind observerKind, rec watermark.Mutation, target *Element) {
	for _, o := range d.observers {
		if o.kind != kind || o.target != target {
			continue
		}
		o.pending = append(o.pending, rec)
		o.scheduleLocked()
	}
}

// resizedLocked notifies resize observers of target. Callers hold d.mu.
func (d *Document) resizedLocked(target *Element) {
	for _, o := range d.observers {
		if o.kind == observeResize && o.target == target {
			o.scheduleLocked()
		}
	}
}

func (o *observer) scheduleLocked() {
	if o.scheduled {
		return
	}
	o.scheduled = true
	o.doc.loop.Post(o.deliver)
}

func (o *observer) deliver() {
	d := o.doc
	d.mu.Lock()
	o.scheduled = false
	active := o.active
	records := o.pending
	o.pending = nil
	d.mu.Unlock()

	if !active {
		return
	}

	switch o.kind {
	case observeResize:
		o.onResize()
	default:
		if len(records) > 0 {
			o.onMutations(records)
		}
	}
}
