package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/mkarrel/go-whitted-raytracer/pkg/core"
	"github.com/mkarrel/go-whitted-raytracer/pkg/renderer"
	"github.com/mkarrel/go-whitted-raytracer/pkg/scene"
)

// fileConfig mirrors the optional YAML config file. Pointer fields
// distinguish "absent" from zero so the file only overrides what it names.
type fileConfig struct {
	Scene    *string `yaml:"scene"`
	Width    *int    `yaml:"width"`
	Height   *int    `yaml:"height"`
	Samples  *int    `yaml:"samples"`
	Adaptive *bool   `yaml:"adaptive"`
	Workers  *int    `yaml:"workers"`
	MaxDepth *int    `yaml:"maxDepth"`
}

func main() {
	var (
		sceneType = flag.String("scene", "default", "Scene type: 'default' or 'spheregrid'")
		width     = flag.Int("width", 500, "Image width in pixels")
		height    = flag.Int("height", 500, "Image height in pixels")
		samples   = flag.Int("samples", 1, "Antialiasing samples per pixel")
		adaptive  = flag.Bool("adaptive", true, "Adaptive antialiasing when samples > 1")
		workers   = flag.Int("workers", 8, "Worker goroutines")
		maxDepth  = flag.Int("depth", 5, "Maximum reflection recursion depth")
		unchecked = flag.Bool("unchecked", false, "Skip color saturation guards (faster, unsafe)")
		cfgPath   = flag.String("config", "", "Optional YAML config file overriding flags")
		help      = flag.Bool("help", false, "Show help information")
	)
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default    - Checkerboard plane, two shiny spheres, four lights")
		fmt.Println("  spheregrid - 8x8 sphere grid stress scene")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
		return
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if *cfgPath != "" {
		fc, err := loadConfigFile(*cfgPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *cfgPath).Msg("failed to load config file")
		}
		applyFileConfig(fc, sceneType, width, height, samples, adaptive, workers, maxDepth)
	}

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		log.Fatal().Err(err).Msg("unknown scene")
	}

	cfg := renderer.Config{
		Width:    *width,
		Height:   *height,
		Samples:  *samples,
		Adaptive: *adaptive,
		Workers:  *workers,
		MaxDepth: *maxDepth,
		Bg:       core.Black,
		Checked:  !*unchecked,
	}

	img, stats := renderer.NewRenderer(cfg, log.Logger).RenderImage(selectedScene)

	log.Info().
		Dur("elapsed", stats.Elapsed).
		Int64("rays", stats.TotalRays).
		Float64("avgSamples", stats.AverageSamples).
		Msg("render finished")

	outPath, err := writePNG(img, *sceneType)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to write output image")
	}
	log.Info().Str("path", outPath).Msg("image saved")
}

// createScene builds a scene by name
func createScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(), nil
	case "spheregrid":
		return scene.NewSphereGridScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type %q", sceneType)
	}
}

func loadConfigFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &fc, nil
}

func applyFileConfig(fc *fileConfig, sceneType *string, width, height, samples *int, adaptive *bool, workers, maxDepth *int) {
	if fc.Scene != nil {
		*sceneType = *fc.Scene
	}
	if fc.Width != nil {
		*width = *fc.Width
	}
	if fc.Height != nil {
		*height = *fc.Height
	}
	if fc.Samples != nil {
		*samples = *fc.Samples
	}
	if fc.Adaptive != nil {
		*adaptive = *fc.Adaptive
	}
	if fc.Workers != nil {
		*workers = *fc.Workers
	}
	if fc.MaxDepth != nil {
		*maxDepth = *fc.MaxDepth
	}
}

// writePNG saves the image under output/<scene>/render_<timestamp>.png
func writePNG(img *image.RGBA, sceneType string) (string, error) {
	outputDir := filepath.Join("output", sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	outPath := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", time.Now().Format("20060102_150405")))
	f, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encoding png: %w", err)
	}
	return outPath, nil
}
