package watermark

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync"
	"sync/atomic"
	"testing"
)

type countingDecoder struct {
	calls   atomic.Int32
	img     image.Image
	err     error
	release chan struct{}
}

func (d *countingDecoder) Decode(ctx context.Context, source string) (image.Image, error) {
	d.calls.Add(1)
	if d.release != nil {
		<-d.release
	}
	return d.img, d.err
}

func TestMemoryCacheKeepsFirstImage(t *testing.T) {
	cache := NewMemoryCache()
	first := solidImage(1, 1, color.White)
	second := solidImage(2, 2, color.Black)

	cache.Put("a", first)
	cache.Put("a", second)

	got, ok := cache.Get("a")
	if !ok || got != image.Image(first) {
		t.Fatalf("Get = %v, %v; want the first image", got, ok)
	}
	if _, ok := cache.Get("b"); ok {
		t.Fatalf("unexpected hit for b")
	}
	if cache.Len() != 1 {
		t.Fatalf("Len = %d, want 1", cache.Len())
	}
}

func TestImageLoaderDecodesOnce(t *testing.T) {
	dec := &countingDecoder{img: solidImage(4, 4, color.White)}
	cache := NewMemoryCache()
	loader := NewImageLoader(cache, dec)

	for i := 0; i < 3; i++ {
		img, err := loader.Get(context.Background(), "logo.png")
		if err != nil {
			t.Fatalf("Get error: %v", err)
		}
		if img != dec.img {
			t.Fatalf("Get returned a different image")
		}
	}

	if got := dec.calls.Load(); got != 1 {
		t.Fatalf("decodes = %d, want 1", got)
	}
	if cache.Len() != 1 {
		t.Fatalf("cache Len = %d, want 1", cache.Len())
	}
}

func TestImageLoaderCoalescesConcurrentMisses(t *testing.T) {
	dec := &countingDecoder{img: solidImage(4, 4, color.White), release: make(chan struct{})}
	loader := NewImageLoader(NewMemoryCache(), dec)

	var wg sync.WaitGroup
	results := make([]image.Image, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			img, err := loader.Get(context.Background(), "logo.png")
			if err != nil {
				t.Errorf("Get error: %v", err)
			}
			results[i] = img
		}(i)
	}

	close(dec.release)
	wg.Wait()

	if got := dec.calls.Load(); got != 1 {
		t.Fatalf("decodes = %d, want 1", got)
	}
	for i, img := range results {
		if img != dec.img {
			t.Fatalf("result %d is not the shared image", i)
		}
	}
}

func TestImageLoaderFailureIsNotCached(t *testing.T) {
	boom := errors.New("boom")
	dec := &countingDecoder{err: boom}
	cache := NewMemoryCache()
	loader := NewImageLoader(cache, dec)

	if _, err := loader.Get(context.Background(), "bad.png"); !errors.Is(err, boom) {
		t.Fatalf("Get error = %v, want wrapped boom", err)
	}
	if _, err := loader.Get(context.Background(), "bad.png"); err == nil {
		t.Fatalf("second Get succeeded")
	}
	if cache.Len() != 0 {
		t.Fatalf("failed decode populated the cache")
	}
	if got := dec.calls.Load(); got != 2 {
		t.Fatalf("decodes = %d, want a retry per Get", got)
	}
}

func TestImageLoaderLoadDeliversAsynchronously(t *testing.T) {
	dec := &countingDecoder{img: solidImage(2, 2, color.White)}
	loader := NewImageLoader(NewMemoryCache(), dec)

	done := make(chan image.Image, 1)
	loader.Load(context.Background(), "a.png", func(img image.Image, err error) {
		if err != nil {
			t.Errorf("Load error: %v", err)
		}
		done <- img
	})

	if img := <-done; img != dec.img {
		t.Fatalf("Load delivered a different image")
	}
	if _, ok := loader.Cached("a.png"); !ok {
		t.Fatalf("Load did not populate the cache")
	}
}
