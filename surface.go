package watermark

import (
	"fmt"
	"strconv"
)

// maxZIndex keeps the overlay above everything else in the target.
const maxZIndex = 2147483647

type surfaceSpec struct {
	width, height int
	opacity       float64
	placement     Placement
}

// surfaceStyle is the inline style of an overlay canvas. The canvas never
// receives pointer events.
func surfaceStyle(placement Placement, opacity float64) string {
	return fmt.Sprintf("position: %s; left: 0; top: 0; z-index: %d; pointer-events: none; opacity: %s;",
		placement, maxZIndex, strconv.FormatFloat(opacity, 'g', -1, 64))
}

// createSurface appends a new overlay canvas as the last child of target.
// An absolutely placed overlay needs a positioned target, so a static
// target is switched to relative positioning.
func createSurface(host Host, target Element, spec surfaceSpec) Canvas {
	if spec.placement == PlacementAbsolute && target.ComputedStyle("position") == "static" {
		target.SetStyleProperty("position", "relative")
	}

	canvas := host.CreateCanvas()
	canvas.SetCanvasSize(spec.width, spec.height)
	canvas.SetAttribute("style", surfaceStyle(spec.placement, spec.opacity))

	target.AppendChild(canvas)
	return canvas
}

// overlaySize is the target's box for absolute placement and the viewport
// otherwise.
func (w *Watermark) overlaySize() (int, int) {
	if w.cfg.Placement == PlacementAbsolute {
		return w.target.OffsetSize()
	}
	return w.host.ViewportSize()
}

// resizeAndRepaint syncs surface with the current overlay size and
// configuration, repaints it, and rebinds the tamper guard. The guard is
// disconnected first so the resize itself does not count as tampering.
// Callers hold w.mu.
func (w *Watermark) resizeAndRepaint(surface Canvas) {
	disconnect(w.guard)
	w.guard = nil

	width, height := w.overlaySize()
	surface.SetCanvasSize(width, height)
	w.cfg.Width, w.cfg.Height = width, height

	style := surfaceStyle(w.cfg.Placement, w.cfg.Opacity)
	if current, _ := surface.Attribute("style"); current != style {
		surface.SetAttribute("style", style)
	}

	w.outcome = w.paint(surface)
	if !w.outcome.Painted() && w.outcome.Skipped != SkipImagePending {
		w.log.Debug("paint skipped", "reason", w.outcome.Skipped, "mode", w.outcome.Mode)
	}

	w.guard = guardSurface(w.host, w.target, surface, w.log)
}
