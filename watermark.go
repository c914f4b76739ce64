package watermark

import (
	"log/slog"
	"sync"

	"golang.org/x/image/font"
)

// Watermark is a live overlay mounted into a target element. It repaints
// on resize, remounts itself when removed, and stops only on Destroy.
type Watermark struct {
	engine *Engine
	host   Host
	target Element
	log    *slog.Logger

	mu        sync.Mutex
	cfg       Config
	surface   Canvas
	guard     Subscription
	structure Subscription
	resize    Subscription
	throttle  *Throttled
	outcome   PaintOutcome
	paintSeq  uint64

	face     font.Face
	faceDesc string
}

// Setup mounts a watermark built from the defaults overridden by opts.
func (e *Engine) Setup(host Host, opts ...Option) *Watermark {
	o := options{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}

	target := o.target
	if target == nil {
		target = host.Body()
	}

	w := &Watermark{
		engine: e,
		host:   host,
		target: target,
		log:    e.logger,
		cfg:    o.cfg,
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	width, height := w.overlaySize()
	w.cfg.Width, w.cfg.Height = width, height
	w.surface = createSurface(host, target, surfaceSpec{
		width:     width,
		height:    height,
		opacity:   w.cfg.Opacity,
		placement: w.cfg.Placement,
	})
	w.resizeAndRepaint(w.surface)
	w.watch()

	return w
}

// Update clears the current content, applies opts over the working
// configuration and repaints. It does nothing once the watermark is
// destroyed, or when called without options. WithTarget is ignored.
func (w *Watermark) Update(opts ...Option) {
	if len(opts) == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.surface == nil {
		return
	}

	o := options{cfg: w.cfg}
	o.cfg.Content = nil
	for _, opt := range opts {
		opt(&o)
	}
	w.cfg = o.cfg

	w.resizeAndRepaint(w.surface)
}

// UpdateText switches the watermark to text.
func (w *Watermark) UpdateText(text string) {
	w.Update(WithText(text))
}

// UpdateImage switches the watermark to the image at source.
func (w *Watermark) UpdateImage(source string) {
	w.Update(WithImage(source))
}

// Destroy unsubscribes every watcher and unmounts the surface. Calling it
// again is a no-op.
func (w *Watermark) Destroy() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.surface == nil {
		return
	}

	disconnect(w.structure)
	disconnect(w.resize)
	disconnect(w.guard)
	w.structure, w.resize, w.guard = nil, nil, nil

	if err := w.target.RemoveChild(w.surface); err != nil {
		w.log.Debug("remove surface on destroy", "error", err)
	}
	w.surface = nil
	w.paintSeq++
	w.outcome = skipped(ModeNone, SkipDestroyed)
}

// Config returns a copy of the working configuration.
func (w *Watermark) Config() Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cfg
}

// Surface returns the mounted canvas, or nil after Destroy.
func (w *Watermark) Surface() Canvas {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.surface
}

// Target returns the element the watermark is mounted into.
func (w *Watermark) Target() Element {
	return w.target
}

// LastOutcome reports what the most recent paint pass did.
func (w *Watermark) LastOutcome() PaintOutcome {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.outcome
}
