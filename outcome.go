package watermark

// SkipReason explains why a paint pass drew nothing.
type SkipReason int

const (
	SkipNone SkipReason = iota
	// SkipNoContext means the surface has no 2D drawing context.
	SkipNoContext
	// SkipNoContent means neither content nor a print function is set.
	SkipNoContent
	// SkipImagePending means the image is still decoding; the grid is
	// painted when it completes.
	SkipImagePending
	// SkipDecodeFailed means the image could not be decoded.
	SkipDecodeFailed
	// SkipInvalidSpacing means a tile spacing is not positive.
	SkipInvalidSpacing
	// SkipDestroyed means the overlay was torn down.
	SkipDestroyed
)

func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "none"
	case SkipNoContext:
		return "no drawing context"
	case SkipNoContent:
		return "no content"
	case SkipImagePending:
		return "image pending"
	case SkipDecodeFailed:
		return "image decode failed"
	case SkipInvalidSpacing:
		return "invalid tile spacing"
	case SkipDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// PaintOutcome records what the last paint pass did. It never reaches
// callers as an error; the overlay fails quietly.
type PaintOutcome struct {
	Mode    Mode
	Tiles   int
	Skipped SkipReason
}

// Painted reports whether any tile was drawn.
func (o PaintOutcome) Painted() bool {
	return o.Skipped == SkipNone && o.Tiles > 0
}

func skipped(mode Mode, reason SkipReason) PaintOutcome {
	return PaintOutcome{Mode: mode, Skipped: reason}
}
