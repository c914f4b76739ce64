package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	watermark "github.com/gcslaoli/tiled-watermark-go"
)

// overlayConfig is the watermark layout. Values come from WATERMARK_*
// environment variables, then the YAML file, then explicit flags.
type overlayConfig struct {
	Text       string  `yaml:"text" env:"TEXT"`
	Image      string  `yaml:"image" env:"IMAGE"`
	ClipWidth  float64 `yaml:"clip_width" env:"CLIP_WIDTH"`
	ClipHeight float64 `yaml:"clip_height" env:"CLIP_HEIGHT"`
	MaxWidth   float64 `yaml:"max_width" env:"MAX_WIDTH" envDefault:"-1"`
	Font       string  `yaml:"font" env:"FONT" envDefault:"14px Arial"`
	ForeColor  string  `yaml:"fore_color" env:"FORE_COLOR" envDefault:"rgba(0, 0, 0)"`
	Rotate     float64 `yaml:"rotate" env:"ROTATE" envDefault:"330"`
	AxisX      float64 `yaml:"axis_x" env:"AXIS_X" envDefault:"260"`
	AxisY      float64 `yaml:"axis_y" env:"AXIS_Y" envDefault:"150"`
	Opacity    float64 `yaml:"opacity" env:"OPACITY" envDefault:"0.1"`
	StartX     float64 `yaml:"start_x" env:"START_X" envDefault:"20"`
	StartY     float64 `yaml:"start_y" env:"START_Y" envDefault:"50"`
}

const envPrefix = "WATERMARK_"

// loadOverlayConfig layers the environment, the optional YAML file at
// path and the flags explicitly set on fs.
func loadOverlayConfig(path string, fs *flag.FlagSet, flags *overlayConfig) (overlayConfig, error) {
	var cfg overlayConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return overlayConfig{}, fmt.Errorf("parse env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return overlayConfig{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return overlayConfig{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "text":
			cfg.Text = flags.Text
		case "image":
			cfg.Image = flags.Image
		case "clip-width":
			cfg.ClipWidth = flags.ClipWidth
		case "clip-height":
			cfg.ClipHeight = flags.ClipHeight
		case "max-width":
			cfg.MaxWidth = flags.MaxWidth
		case "font":
			cfg.Font = flags.Font
		case "color":
			cfg.ForeColor = flags.ForeColor
		case "rotate":
			cfg.Rotate = flags.Rotate
		case "axis-x":
			cfg.AxisX = flags.AxisX
		case "axis-y":
			cfg.AxisY = flags.AxisY
		case "opacity":
			cfg.Opacity = flags.Opacity
		case "start-x":
			cfg.StartX = flags.StartX
		case "start-y":
			cfg.StartY = flags.StartY
		}
	})

	if cfg.Text == "" && cfg.Image == "" {
		return overlayConfig{}, fmt.Errorf("either -text or -image is required")
	}
	return cfg, nil
}

func bindOverlayFlags(fs *flag.FlagSet, cfg *overlayConfig) {
	fs.StringVar(&cfg.Text, "text", "", "Watermark text")
	fs.StringVar(&cfg.Image, "image", "", "Watermark image path, URL or data URL (png/jpg/gif/webp)")
	fs.Float64Var(&cfg.ClipWidth, "clip-width", 0, "Drawn image width (0 keeps the natural width)")
	fs.Float64Var(&cfg.ClipHeight, "clip-height", 0, "Drawn image height (0 keeps the natural height)")
	fs.Float64Var(&cfg.MaxWidth, "max-width", -1, "Maximum text width (negative is unconstrained)")
	fs.StringVar(&cfg.Font, "font", "14px Arial", "CSS font descriptor")
	fs.StringVar(&cfg.ForeColor, "color", "rgba(0, 0, 0)", "CSS fill color")
	fs.Float64Var(&cfg.Rotate, "rotate", 330, "Tile rotation in degrees")
	fs.Float64Var(&cfg.AxisX, "axis-x", 260, "Horizontal tile spacing")
	fs.Float64Var(&cfg.AxisY, "axis-y", 150, "Vertical tile spacing")
	fs.Float64Var(&cfg.Opacity, "opacity", 0.1, "Overlay opacity (0-1)")
	fs.Float64Var(&cfg.StartX, "start-x", 20, "Grid origin X")
	fs.Float64Var(&cfg.StartY, "start-y", 50, "Grid origin Y")
}

// options converts the layout into watermark options.
func (c overlayConfig) options() []watermark.Option {
	var content watermark.Content = watermark.TextContent{Text: c.Text, MaxWidth: c.MaxWidth}
	if c.Image != "" {
		content = watermark.ImageContent{Source: c.Image, Width: c.ClipWidth, Height: c.ClipHeight}
	}

	return []watermark.Option{
		watermark.WithContent(content),
		watermark.WithFont(c.Font),
		watermark.WithForeColor(c.ForeColor),
		watermark.WithRotate(c.Rotate),
		watermark.WithSpacing(c.AxisX, c.AxisY),
		watermark.WithOpacity(c.Opacity),
		watermark.WithStart(c.StartX, c.StartY),
	}
}
