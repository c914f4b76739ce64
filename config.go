package watermark

import "github.com/fogleman/gg"

// Placement selects how the overlay is positioned relative to its target.
type Placement string

const (
	// PlacementFixed pins the overlay to the viewport.
	PlacementFixed Placement = "fixed"
	// PlacementAbsolute anchors the overlay to the target's box.
	PlacementAbsolute Placement = "absolute"
)

// Mode is the content mode a paint pass resolved to.
type Mode int

const (
	ModeNone Mode = iota
	ModeText
	ModeImage
	ModeCustom
)

func (m Mode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeImage:
		return "image"
	case ModeCustom:
		return "custom"
	default:
		return "none"
	}
}

// Content is what every tile draws. It is implemented by TextContent and
// ImageContent only.
type Content interface {
	isContent()
}

// TextContent draws a string with the configured font and fore color.
type TextContent struct {
	Text string
	// MaxWidth squeezes the text horizontally to fit. Negative means
	// unconstrained.
	MaxWidth float64
}

// ImageContent draws a decoded image.
type ImageContent struct {
	Source string
	// Width and Height clip the drawn image. Zero means the natural size.
	Width, Height float64
}

func (TextContent) isContent()  {}
func (ImageContent) isContent() {}

// PrintFunc paints one tile itself. The context is already translated to
// the tile origin and rotated; the function must not reset that transform.
type PrintFunc func(dc *gg.Context, cfg Config)

// Config is the resolved configuration of one overlay.
type Config struct {
	Placement Placement
	Content   Content
	Font      string
	ForeColor string
	// Rotate is the per-tile rotation in degrees.
	Rotate       float64
	AxisX, AxisY float64
	Opacity      float64
	StartX       float64
	StartY       float64
	Print        PrintFunc

	// Width and Height are the overlay's working dimensions, refreshed on
	// every resize.
	Width, Height int
}

// Mode resolves the content mode. A custom print function wins over any
// content; empty content resolves to ModeNone.
func (c Config) Mode() Mode {
	if c.Print != nil {
		return ModeCustom
	}
	switch v := c.Content.(type) {
	case TextContent:
		if v.Text != "" {
			return ModeText
		}
	case ImageContent:
		if v.Source != "" {
			return ModeImage
		}
	}
	return ModeNone
}

// Text returns the configured text, if the content is text.
func (c Config) Text() string {
	if t, ok := c.Content.(TextContent); ok {
		return t.Text
	}
	return ""
}

// ImageSource returns the configured image source, if the content is an
// image.
func (c Config) ImageSource() string {
	if img, ok := c.Content.(ImageContent); ok {
		return img.Source
	}
	return ""
}

const (
	defaultFont      = "14px Arial"
	defaultForeColor = "rgba(0, 0, 0)"
	defaultRotate    = 330
	defaultAxisX     = 260
	defaultAxisY     = 150
	defaultOpacity   = 0.1
	defaultStartX    = 20
	defaultStartY    = 50
)

// DefaultConfig returns the configuration every overlay starts from.
func DefaultConfig() Config {
	return Config{
		Placement: PlacementFixed,
		Font:      defaultFont,
		ForeColor: defaultForeColor,
		Rotate:    defaultRotate,
		AxisX:     defaultAxisX,
		AxisY:     defaultAxisY,
		Opacity:   defaultOpacity,
		StartX:    defaultStartX,
		StartY:    defaultStartY,
	}
}

// Option adjusts a configuration during Setup or Update.
type Option func(*options)

type options struct {
	cfg    Config
	target Element
}

// WithTarget mounts the overlay into el instead of the document body. It
// is ignored by Update.
func WithTarget(el Element) Option {
	return func(o *options) {
		o.target = el
	}
}

// WithPlacement selects fixed or absolute positioning.
func WithPlacement(p Placement) Option {
	return func(o *options) {
		o.cfg.Placement = p
	}
}

// WithContent sets the content variant, replacing any previous content.
func WithContent(c Content) Option {
	return func(o *options) {
		o.cfg.Content = c
	}
}

// WithText draws text without a width constraint.
func WithText(text string) Option {
	return WithContent(TextContent{Text: text, MaxWidth: -1})
}

// WithImage draws the image at source at its natural size.
func WithImage(source string) Option {
	return WithContent(ImageContent{Source: source})
}

// WithFont sets the font descriptor, e.g. "bold 16px sans-serif".
func WithFont(font string) Option {
	return func(o *options) {
		o.cfg.Font = font
	}
}

// WithForeColor sets the fill color as a CSS color string.
func WithForeColor(color string) Option {
	return func(o *options) {
		o.cfg.ForeColor = color
	}
}

// WithRotate sets the per-tile rotation in degrees.
func WithRotate(degrees float64) Option {
	return func(o *options) {
		o.cfg.Rotate = degrees
	}
}

// WithSpacing sets the horizontal and vertical tile spacing.
func WithSpacing(x, y float64) Option {
	return func(o *options) {
		o.cfg.AxisX = x
		o.cfg.AxisY = y
	}
}

// WithStart sets the grid origin.
func WithStart(x, y float64) Option {
	return func(o *options) {
		o.cfg.StartX = x
		o.cfg.StartY = y
	}
}

// WithOpacity sets the overlay opacity in [0, 1].
func WithOpacity(opacity float64) Option {
	return func(o *options) {
		o.cfg.Opacity = opacity
	}
}

// WithPrint installs a custom paint function that overrides the content.
// Passing nil removes it.
func WithPrint(fn PrintFunc) Option {
	return func(o *options) {
		o.cfg.Print = fn
	}
}
