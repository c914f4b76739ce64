package watermark

import (
	"context"
	"fmt"
	"image"

	"golang.org/x/sync/singleflight"
)

// ImageLoader resolves image sources through a cache, decoding each source
// at most once at a time.
type ImageLoader struct {
	cache   ImageCache
	decoder Decoder
	group   singleflight.Group
}

// NewImageLoader builds a loader over cache and decoder. Nil arguments
// select DefaultImageCache and a SourceDecoder.
func NewImageLoader(cache ImageCache, decoder Decoder) *ImageLoader {
	if cache == nil {
		cache = DefaultImageCache
	}
	if decoder == nil {
		decoder = NewSourceDecoder(nil)
	}
	return &ImageLoader{cache: cache, decoder: decoder}
}

// Cached returns the decoded image for source if it is already cached.
func (l *ImageLoader) Cached(source string) (image.Image, bool) {
	return l.cache.Get(source)
}

// Get returns the image for source, decoding and caching it on a miss.
// Concurrent misses for the same source share one decode.
func (l *ImageLoader) Get(ctx context.Context, source string) (image.Image, error) {
	if img, ok := l.cache.Get(source); ok {
		return img, nil
	}

	v, err, _ := l.group.Do(source, func() (any, error) {
		if img, ok := l.cache.Get(source); ok {
			return img, nil
		}

		img, err := l.decoder.Decode(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", source, err)
		}

		l.cache.Put(source, img)
		if cached, ok := l.cache.Get(source); ok {
			return cached, nil
		}
		return img, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(image.Image), nil
}

// Load resolves source on its own goroutine and passes the result to
// deliver.
func (l *ImageLoader) Load(ctx context.Context, source string, deliver func(image.Image, error)) {
	go func() {
		img, err := l.Get(ctx, source)
		deliver(img, err)
	}()
}
