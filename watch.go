package watermark

// watch subscribes to the target's child list and size. Both
// subscriptions live until Destroy.
func (w *Watermark) watch() {
	w.structure = w.host.ObserveChildList(w.target, w.handleChildList)

	w.throttle = Throttle(func() {
		w.host.Post(w.handleResize)
	}, w.engine.resizeWait)
	resize := w.host.ObserveResize(w.target, w.throttle.Call)

	w.resize = subscriptionFunc(func() {
		resize.Disconnect()
		w.throttle.Stop()
	})
}

// handleChildList mounts a new surface when the current one is no longer
// inside the mutated node, e.g. after the guard removed it or the target's
// children were replaced wholesale.
func (w *Watermark) handleChildList(records []Mutation) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, rec := range records {
		if w.surface == nil {
			return
		}
		if rec.Type != MutationChildList || rec.Target.Contains(w.surface) {
			continue
		}

		w.log.Debug("surface detached, recreating")
		width, height := w.overlaySize()
		w.surface = createSurface(w.host, w.target, surfaceSpec{
			width:     width,
			height:    height,
			opacity:   w.cfg.Opacity,
			placement: w.cfg.Placement,
		})
		w.resizeAndRepaint(w.surface)
	}
}

func (w *Watermark) handleResize() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.surface == nil {
		return
	}
	w.resizeAndRepaint(w.surface)
}
