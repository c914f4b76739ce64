package watermark

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	// Register common decoders, including WebP via x/image/webp.
	_ "golang.org/x/image/webp"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ErrUnsupportedSource is returned for image sources no decoder handles.
var ErrUnsupportedSource = errors.New("unsupported image source")

// Decoder turns an image source identifier into a decoded image.
type Decoder interface {
	Decode(ctx context.Context, source string) (image.Image, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(ctx context.Context, source string) (image.Image, error)

// Decode calls f(ctx, source).
func (f DecoderFunc) Decode(ctx context.Context, source string) (image.Image, error) {
	return f(ctx, source)
}

// Decode reads an image from the reader, returning the decoded image and the
// detected format string ("png", "jpeg", "webp", etc.).
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

// DecodeImageBytes decodes an in-memory image.
func DecodeImageBytes(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", fmt.Errorf("empty image data")
	}
	return Decode(bytes.NewReader(data))
}

// EncodePNG writes the provided image to the writer as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SourceDecoder resolves base64 data URLs, http(s) URLs, file:// URLs and
// plain file paths.
type SourceDecoder struct {
	client *http.Client
}

// NewSourceDecoder returns a decoder fetching remote sources with client,
// or http.DefaultClient when client is nil.
func NewSourceDecoder(client *http.Client) *SourceDecoder {
	if client == nil {
		client = http.DefaultClient
	}
	return &SourceDecoder{client: client}
}

// Decode loads and decodes source according to its scheme.
func (d *SourceDecoder) Decode(ctx context.Context, source string) (image.Image, error) {
	switch {
	case source == "":
		return nil, ErrUnsupportedSource
	case isDataURL(source):
		img, _, err := DecodeBase64Image(source)
		return img, err
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return d.fetch(ctx, source)
	case strings.HasPrefix(source, "file://"):
		u, err := url.Parse(source)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", source, err)
		}
		return decodeFile(u.Path)
	default:
		return decodeFile(source)
	}
}

func (d *SourceDecoder) fetch(ctx context.Context, source string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch: unexpected status %s", resp.Status)
	}

	img, _, err := Decode(resp.Body)
	return img, err
}

func decodeFile(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	img, _, err := DecodeImageBytes(data)
	return img, err
}
