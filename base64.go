package watermark

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
)

// DecodeBase64Image decodes a base64-encoded image (optionally a data URL) into
// an image.Image. It returns the decoded image and the detected format string
// ("png", "jpeg", "webp", etc.).
func DecodeBase64Image(input string) (image.Image, string, error) {
	if isDataURL(input) && !isBase64DataURL(input) {
		return nil, "", fmt.Errorf("data url without base64 payload: %w", ErrUnsupportedSource)
	}

	raw := stripDataPrefix(input)

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, "", fmt.Errorf("decode base64: %w", err)
	}

	img, format, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}

	return img, format, nil
}

// EncodePNGToBase64 encodes an image as PNG and returns a base64 string.
func EncodePNGToBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// EncodePNGDataURL encodes an image as a PNG data URL, usable as an image
// source.
func EncodePNGDataURL(img image.Image) (string, error) {
	encoded, err := EncodePNGToBase64(img)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + encoded, nil
}

func isDataURL(input string) bool {
	return strings.HasPrefix(strings.ToLower(input), "data:")
}

func isBase64DataURL(input string) bool {
	header, _, ok := strings.Cut(input, ",")
	return ok && strings.HasSuffix(strings.ToLower(header), ";base64")
}

func stripDataPrefix(input string) string {
	if isDataURL(input) {
		if idx := strings.Index(input, ","); idx != -1 {
			return input[idx+1:]
		}
	}
	return input
}
