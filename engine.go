package watermark

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

// Engine holds the services shared by the watermarks it sets up: the
// image loader and its cache, parsed fonts, and logging.
type Engine struct {
	loader     *ImageLoader
	fonts      *fontLibrary
	logger     *slog.Logger
	resizeWait time.Duration
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithImageLoader replaces the loader, and with it the image cache.
func WithImageLoader(l *ImageLoader) EngineOption {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLogger sets the logger for absorbed failures. Nothing is logged by
// default.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithResizeWait sets the minimum interval between resize repaints. A
// non-positive wait repaints on every notification.
func WithResizeWait(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.resizeWait = d
	}
}

// NewEngine constructs an Engine. Without options it uses
// DefaultImageCache, decodes sources with a SourceDecoder and throttles
// resizes to DefaultResizeWait.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		fonts:      newFontLibrary(),
		resizeWait: DefaultResizeWait,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.loader == nil {
		e.loader = NewImageLoader(DefaultImageCache, nil)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e
}

// Loader returns the engine's image loader.
func (e *Engine) Loader() *ImageLoader {
	return e.loader
}

var defaultEngine struct {
	once sync.Once
	eng  *Engine
}

// Setup mounts a watermark using the default engine.
func Setup(host Host, opts ...Option) *Watermark {
	defaultEngine.once.Do(func() {
		defaultEngine.eng = NewEngine()
	})

	return defaultEngine.eng.Setup(host, opts...)
}
