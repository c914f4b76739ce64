package watermark

import (
	"context"
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// paint draws the full grid onto surface for the current configuration.
// Image content that is not cached yet is decoded in the background and
// painted when it arrives, unless a newer pass has started by then.
// Callers hold w.mu.
func (w *Watermark) paint(surface Canvas) PaintOutcome {
	w.paintSeq++
	mode := w.cfg.Mode()

	if mode == ModeNone {
		return skipped(ModeNone, SkipNoContent)
	}
	if !validSpacing(w.cfg) {
		return skipped(mode, SkipInvalidSpacing)
	}
	dc, ok := surface.Context2D()
	if !ok {
		return skipped(mode, SkipNoContext)
	}

	assets := tileAssets{fore: w.foreColor()}
	switch mode {
	case ModeText, ModeCustom:
		assets.face = w.fontFace()
	case ModeImage:
		source := w.cfg.ImageSource()
		img, ok := w.engine.loader.Cached(source)
		if !ok {
			w.loadImage(surface, source)
			return skipped(mode, SkipImagePending)
		}
		assets.image = img
	}

	return PaintOutcome{Mode: mode, Tiles: paintGrid(dc, w.cfg, assets)}
}

func (w *Watermark) loadImage(surface Canvas, source string) {
	seq := w.paintSeq
	w.engine.loader.Load(context.Background(), source, func(img image.Image, err error) {
		w.host.Post(func() {
			w.imageLoaded(seq, surface, source, img, err)
		})
	})
}

func (w *Watermark) imageLoaded(seq uint64, surface Canvas, source string, img image.Image, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if seq != w.paintSeq || surface != w.surface {
		return
	}
	if err != nil {
		w.log.Debug("image decode failed", "source", source, "error", err)
		w.outcome = skipped(ModeImage, SkipDecodeFailed)
		return
	}

	dc, ok := surface.Context2D()
	if !ok {
		w.outcome = skipped(ModeImage, SkipNoContext)
		return
	}

	assets := tileAssets{fore: w.foreColor(), image: img}
	w.outcome = PaintOutcome{Mode: ModeImage, Tiles: paintGrid(dc, w.cfg, assets)}
}

func (w *Watermark) foreColor() color.Color {
	c, err := ParseColor(w.cfg.ForeColor)
	if err != nil {
		w.log.Debug("invalid fore color, using black", "error", err)
		return color.Black
	}
	return c
}

// fontFace returns the face for the configured descriptor, rebuilding it
// only when the descriptor changes. A nil face leaves the context's
// default face in place.
func (w *Watermark) fontFace() font.Face {
	if w.face != nil && w.faceDesc == w.cfg.Font {
		return w.face
	}

	spec, err := ParseFont(w.cfg.Font)
	if err != nil {
		w.log.Debug("invalid font, using default", "error", err)
		spec, _ = ParseFont(defaultFont)
	}

	face, err := w.engine.fonts.Face(spec)
	if err != nil {
		w.log.Debug("load font face", "error", err)
		return nil
	}

	w.face, w.faceDesc = face, w.cfg.Font
	return face
}
