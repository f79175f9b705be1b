// Command pathtrace loads a YAML scene file, renders it, and writes the
// result as a PNG. It is a thin CLI over pkg/loaders and pkg/render; the
// interactive GUI, slider-driven camera editing, and benchmark harnesses
// the teacher's own CLI carries are out of scope (spec.md §1).
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	"github.com/df07/pathtrace/internal/log"
	"github.com/df07/pathtrace/pkg/loaders"
	"github.com/df07/pathtrace/pkg/render"
)

// Config holds the CLI's flags.
type Config struct {
	ScenePath  string
	Width      int
	Height     int
	Output     string
	CPUProfile string
	Help       bool
}

func main() {
	config := parseFlags()
	if config.Help {
		showHelp()
		return
	}

	if config.CPUProfile != "" {
		f, err := os.Create(config.CPUProfile)
		if err != nil {
			fmt.Printf("could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if config.ScenePath == "" {
		fmt.Println("error: -scene is required")
		showHelp()
		os.Exit(1)
	}

	log.Sugar().Infow("loading scene", "path", config.ScenePath)
	scene, err := loaders.LoadScene(config.ScenePath)
	if err != nil {
		fmt.Printf("error loading scene: %v\n", err)
		os.Exit(1)
	}
	scene.Build()

	start := time.Now()
	target, stats := render.Render(scene, config.Width, config.Height)
	log.Sugar().Infow("render complete",
		"elapsed", time.Since(start),
		"rays_traced", stats.RaysTraced,
	)

	if err := saveImage(target, config.Output); err != nil {
		fmt.Printf("error saving image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("render saved to %s in %v\n", config.Output, stats.Elapsed)
}

func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.ScenePath, "scene", "", "path to a YAML scene file (required)")
	flag.IntVar(&config.Width, "width", 400, "output image width in pixels")
	flag.IntVar(&config.Height, "height", 300, "output image height in pixels")
	flag.StringVar(&config.Output, "output", "render.png", "output PNG path")
	flag.StringVar(&config.CPUProfile, "cpuprofile", "", "write CPU profile to file")
	flag.BoolVar(&config.Help, "help", false, "show help information")
	flag.Parse()
	return config
}

func showHelp() {
	fmt.Println("pathtrace - Monte-Carlo path tracer")
	fmt.Println("Usage: pathtrace -scene scenes/cornell.yaml [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
}

// saveImage converts a flat RenderTarget buffer into an image.RGBA and
// encodes it as a PNG, creating the output directory if needed.
func saveImage(target *render.RenderTarget, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	img := &image.RGBA{
		Pix:    target.Pixels,
		Stride: target.Width * 4,
		Rect:   image.Rect(0, 0, target.Width, target.Height),
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	return png.Encode(file, img)
}
