package watermark

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	pointsPerPixel = 0.75
	emPixels       = 16.0
)

// FontSpec is a parsed CSS font descriptor such as "italic bold 16px serif".
type FontSpec struct {
	Size     float64
	Bold     bool
	Italic   bool
	Families []string
}

// Monospace reports whether any listed family asks for a fixed pitch face.
func (s FontSpec) Monospace() bool {
	for _, family := range s.Families {
		switch strings.ToLower(family) {
		case "monospace", "courier", "courier new", "consolas", "menlo", "monaco":
			return true
		}
	}
	return false
}

// ParseFont parses the CSS font shorthand subset used for watermarks:
// optional style and weight keywords, a size with a px, pt or em unit,
// an optional line height, and a comma separated family list.
func ParseFont(desc string) (FontSpec, error) {
	fields := strings.Fields(desc)

	sizeIdx := -1
	var spec FontSpec
	for i, field := range fields {
		size, ok := parseFontSize(field)
		if ok {
			spec.Size = size
			sizeIdx = i
			break
		}

		switch strings.ToLower(field) {
		case "italic", "oblique":
			spec.Italic = true
		case "bold", "bolder":
			spec.Bold = true
		case "normal", "lighter", "small-caps":
		default:
			weight, err := strconv.Atoi(field)
			if err != nil {
				return FontSpec{}, fmt.Errorf("font %q: unexpected token %q", desc, field)
			}
			spec.Bold = weight >= 600
		}
	}

	if sizeIdx < 0 {
		return FontSpec{}, fmt.Errorf("font %q: missing size", desc)
	}

	for _, family := range strings.Split(strings.Join(fields[sizeIdx+1:], " "), ",") {
		family = strings.Trim(strings.TrimSpace(family), `"'`)
		if family != "" {
			spec.Families = append(spec.Families, family)
		}
	}

	return spec, nil
}

// parseFontSize accepts "14px", "12pt", "1.5em" and "14px/1.2".
func parseFontSize(token string) (float64, bool) {
	token, _, _ = strings.Cut(strings.ToLower(token), "/")

	unit := token[max(len(token)-2, 0):]
	v, err := strconv.ParseFloat(strings.TrimSuffix(token, unit), 64)
	if err != nil || v <= 0 {
		return 0, false
	}

	switch unit {
	case "px":
		return v, true
	case "pt":
		return v / pointsPerPixel, true
	case "em":
		return v * emPixels, true
	}
	return 0, false
}

type fontVariant struct {
	mono, bold, italic bool
}

var fontData = map[fontVariant][]byte{
	{false, false, false}: goregular.TTF,
	{false, true, false}:  gobold.TTF,
	{false, false, true}:  goitalic.TTF,
	{false, true, true}:   gobolditalic.TTF,
	{true, false, false}:  gomono.TTF,
	{true, true, false}:   gomonobold.TTF,
	{true, false, true}:   gomonoitalic.TTF,
	{true, true, true}:    gomonobolditalic.TTF,
}

// fontLibrary parses each embedded Go font at most once.
type fontLibrary struct {
	mu    sync.Mutex
	fonts map[fontVariant]*opentype.Font
}

func newFontLibrary() *fontLibrary {
	return &fontLibrary{fonts: make(map[fontVariant]*opentype.Font)}
}

// Face returns a new face for spec. Faces are not safe for concurrent use,
// so every overlay keeps its own.
func (l *fontLibrary) Face(spec FontSpec) (font.Face, error) {
	variant := fontVariant{mono: spec.Monospace(), bold: spec.Bold, italic: spec.Italic}

	l.mu.Lock()
	f, ok := l.fonts[variant]
	if !ok {
		var err error
		f, err = opentype.Parse(fontData[variant])
		if err != nil {
			l.mu.Unlock()
			return nil, fmt.Errorf("parse font: %w", err)
		}
		l.fonts[variant] = f
	}
	l.mu.Unlock()

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    spec.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return face, nil
}
