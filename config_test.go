package watermark

import (
	"testing"

	"github.com/fogleman/gg"
)

func TestDefaultConfigMatchesDocumentedDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Placement != PlacementFixed {
		t.Fatalf("placement = %q, want fixed", cfg.Placement)
	}
	if cfg.Font != "14px Arial" || cfg.ForeColor != "rgba(0, 0, 0)" {
		t.Fatalf("font/color = %q/%q", cfg.Font, cfg.ForeColor)
	}
	if cfg.Rotate != 330 || cfg.AxisX != 260 || cfg.AxisY != 150 {
		t.Fatalf("rotate/axis = %v/%v/%v", cfg.Rotate, cfg.AxisX, cfg.AxisY)
	}
	if cfg.Opacity != 0.1 || cfg.StartX != 20 || cfg.StartY != 50 {
		t.Fatalf("opacity/start = %v/%v/%v", cfg.Opacity, cfg.StartX, cfg.StartY)
	}
	if cfg.Print != nil || cfg.Content != nil {
		t.Fatalf("expected no content and no print func")
	}
}

func TestConfigModeResolvesExactlyOneMode(t *testing.T) {
	custom := func(*gg.Context, Config) {}

	cases := []struct {
		name string
		cfg  Config
		want Mode
	}{
		{name: "empty", cfg: Config{}, want: ModeNone},
		{name: "empty text", cfg: Config{Content: TextContent{}}, want: ModeNone},
		{name: "empty image", cfg: Config{Content: ImageContent{}}, want: ModeNone},
		{name: "text", cfg: Config{Content: TextContent{Text: "a"}}, want: ModeText},
		{name: "image", cfg: Config{Content: ImageContent{Source: "logo.png"}}, want: ModeImage},
		{name: "print alone", cfg: Config{Print: custom}, want: ModeCustom},
		{name: "print over text", cfg: Config{Content: TextContent{Text: "a"}, Print: custom}, want: ModeCustom},
		{name: "print over image", cfg: Config{Content: ImageContent{Source: "x"}, Print: custom}, want: ModeCustom},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.Mode(); got != tc.want {
				t.Fatalf("Mode() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestContentOptionsReplaceEachOther(t *testing.T) {
	o := options{cfg: DefaultConfig()}
	WithImage("logo.png")(&o)
	WithText("hello")(&o)

	if got := o.cfg.ImageSource(); got != "" {
		t.Fatalf("image source = %q after WithText", got)
	}
	text, ok := o.cfg.Content.(TextContent)
	if !ok || text.Text != "hello" || text.MaxWidth >= 0 {
		t.Fatalf("content = %+v, want unconstrained text", o.cfg.Content)
	}

	WithImage("other.png")(&o)
	if o.cfg.Text() != "" || o.cfg.ImageSource() != "other.png" {
		t.Fatalf("content = %+v, want image only", o.cfg.Content)
	}
}

func TestLayoutOptions(t *testing.T) {
	o := options{cfg: DefaultConfig()}
	for _, opt := range []Option{
		WithPlacement(PlacementAbsolute),
		WithFont("bold 20px serif"),
		WithForeColor("red"),
		WithRotate(45),
		WithSpacing(100, 80),
		WithStart(0, 10),
		WithOpacity(0.5),
	} {
		opt(&o)
	}

	want := Config{
		Placement: PlacementAbsolute,
		Font:      "bold 20px serif",
		ForeColor: "red",
		Rotate:    45,
		AxisX:     100,
		AxisY:     80,
		StartX:    0,
		StartY:    10,
		Opacity:   0.5,
	}
	if o.cfg.Placement != want.Placement || o.cfg.Font != want.Font || o.cfg.ForeColor != want.ForeColor ||
		o.cfg.Rotate != want.Rotate || o.cfg.AxisX != want.AxisX || o.cfg.AxisY != want.AxisY ||
		o.cfg.StartX != want.StartX || o.cfg.StartY != want.StartY || o.cfg.Opacity != want.Opacity {
		t.Fatalf("config = %+v, want %+v", o.cfg, want)
	}
}
