package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/draw"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	watermark "github.com/gcslaoli/tiled-watermark-go"
	"github.com/gcslaoli/tiled-watermark-go/scene"
)

// go run . -in image.png -text "CONFIDENTIAL"
// go run . -in image.png -out marked.png -text "internal" -rotate 315 -opacity 0.2
// go run . -in image.jpg -image logo.png -clip-width 120 -clip-height 40
// go run . -inbase64 "data:image/png;base64,..." -text "draft" -outbase64
// WATERMARK_FONT="bold 24px sans-serif" go run . -in image.png -text "draft"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gwatermark", flag.ContinueOnError)
	fs.SetOutput(stderr)

	input := fs.String("in", "", "Path to the image to watermark (png/jpg/gif/webp)")
	inputBase64 := fs.String("inbase64", "", "Base64 image input (optionally data URL)")
	output := fs.String("out", "", "Output path (defaults to <name>_watermarked.png)")
	outputBase64 := fs.Bool("outbase64", false, "Write the result as base64 PNG to stdout instead of a file")
	configPath := fs.String("config", "", "YAML file with watermark settings")
	verbose := fs.Bool("v", false, "Log debug details to stderr")

	var flagValues overlayConfig
	bindOverlayFlags(fs, &flagValues)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *input == "" && *inputBase64 == "" {
		fs.Usage()
		return flag.ErrHelp
	}

	cfg, err := loadOverlayConfig(*configPath, fs, &flagValues)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var (
		img    image.Image
		format string
		source string
	)

	if *inputBase64 != "" {
		img, format, err = watermark.DecodeBase64Image(*inputBase64)
		source = "base64"
	} else {
		inFile, openErr := os.Open(*input)
		if openErr != nil {
			return fmt.Errorf("open input: %w", openErr)
		}
		defer inFile.Close()

		img, format, err = watermark.Decode(inFile)
		source = *input
	}
	if err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	stamped, outcome, err := stamp(context.Background(), img, cfg, logger)
	if err != nil {
		return err
	}

	if *outputBase64 {
		encoded, encErr := watermark.EncodePNGToBase64(stamped)
		if encErr != nil {
			return fmt.Errorf("encode base64 output: %w", encErr)
		}
		fmt.Fprintln(stdout, encoded)
		fmt.Fprintf(stderr, "Processed %s (%s) -> base64 [%d %s tiles]\n", source, format, outcome.Tiles, outcome.Mode)
		return nil
	}

	outPath := *output
	if outPath == "" {
		base := "output"
		if *input != "" {
			base = strings.TrimSuffix(filepath.Base(*input), filepath.Ext(*input))
		}
		outPath = filepath.Join(filepath.Dir(*input), base+"_watermarked.png")
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer outFile.Close()

	if err := watermark.EncodePNG(outFile, stamped); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	fmt.Fprintf(stdout, "Processed %s (%s) -> %s [%d %s tiles]\n", source, format, outPath, outcome.Tiles, outcome.Mode)
	return nil
}

// stamp mounts an absolutely placed watermark over a document whose body
// is img, lets the overlay settle, and composites the result.
func stamp(ctx context.Context, img image.Image, cfg overlayConfig, logger *slog.Logger) (*image.RGBA, watermark.PaintOutcome, error) {
	bounds := img.Bounds()
	doc := scene.NewDocument(bounds.Dx(), bounds.Dy())

	engine := watermark.NewEngine(
		watermark.WithLogger(logger),
		watermark.WithImageLoader(watermark.NewImageLoader(watermark.NewMemoryCache(), nil)),
	)

	if cfg.Image != "" {
		if _, err := engine.Loader().Get(ctx, cfg.Image); err != nil {
			return nil, watermark.PaintOutcome{}, fmt.Errorf("load watermark image: %w", err)
		}
	}

	opts := append(cfg.options(),
		watermark.WithTarget(doc.Body()),
		watermark.WithPlacement(watermark.PlacementAbsolute),
	)
	wm := engine.Setup(doc, opts...)
	defer wm.Destroy()

	doc.Loop().Drain()

	outcome := wm.LastOutcome()
	if !outcome.Painted() {
		return nil, outcome, fmt.Errorf("watermark not painted: %s", outcome.Skipped)
	}
	logger.Debug("watermark painted", "mode", outcome.Mode, "tiles", outcome.Tiles)

	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Src)
	scene.Composite(out, doc.BodyElement())

	return out, outcome, nil
}
