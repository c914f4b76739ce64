package watermark

import (
	"image"
	"sync"
)

// ImageCache maps image sources to decoded images.
type ImageCache interface {
	Get(source string) (image.Image, bool)
	Put(source string, img image.Image)
}

// MemoryCache is an append-only ImageCache. The first image stored for a
// source is kept for the cache's lifetime; later puts are ignored.
type MemoryCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewMemoryCache returns an empty cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{images: make(map[string]image.Image)}
}

// DefaultImageCache is shared by every overlay built from the default
// engine.
var DefaultImageCache = NewMemoryCache()

// Get returns the image stored for source.
func (c *MemoryCache) Get(source string) (image.Image, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	img, ok := c.images[source]
	return img, ok
}

// Put stores img for source unless an image is already cached for it.
func (c *MemoryCache) Put(source string, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.images[source]; !ok {
		c.images[source] = img
	}
}

// Len returns the number of cached sources.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}
