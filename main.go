// Command go-raytracer renders a scene described in a small textual
// scene-description language into a PNG image.
//
// Usage:
//
//	go-raytracer -scene scene.txt [-out out.png] [-width N] [-height N]
//	             [-depth N] [-workers N] [-settings render.yaml]
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/sebostien/go-raytracer/pkg/loaders"
	"github.com/sebostien/go-raytracer/pkg/renderer"
)

const defaultOutput = "raytraced.png"

func main() {
	scenePath := flag.String("scene", "", "Path to the scene description file (required)")
	out := flag.String("out", "", "Output PNG path (default: raytraced.png, never overwriting)")
	width := flag.Int("width", 0, "Override the scene's output width")
	height := flag.Int("height", 0, "Override the scene's output height")
	depth := flag.Int("depth", 0, "Override the reflection recursion depth")
	workers := flag.Int("workers", 0, "Number of render workers (default: one per CPU)")
	settingsPath := flag.String("settings", "", "Optional YAML settings file")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "error: -scene is required")
		flag.Usage()
		os.Exit(2)
	}

	flagSettings := Settings{
		Width:        *width,
		Height:       *height,
		RecurseDepth: *depth,
		Workers:      *workers,
		Output:       *out,
	}

	if err := run(*scenePath, *settingsPath, flagSettings, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(scenePath, settingsPath string, flagSettings Settings, logger *slog.Logger) error {
	var settings Settings
	if settingsPath != "" {
		fileSettings, err := loadSettings(settingsPath)
		if err != nil {
			return err
		}
		settings = settings.merge(fileSettings)
	}
	settings = settings.merge(flagSettings)

	source, err := os.ReadFile(scenePath)
	if err != nil {
		return errors.Wrap(err, "reading scene file")
	}

	sc, err := loaders.Parse(string(source))
	if err != nil {
		// Syntax and semantic errors are rendered with source
		// annotations; everything was already collected by Parse.
		return errors.Errorf("invalid scene %s:\n%s", scenePath, loaders.AnnotateError(string(source), err))
	}

	if settings.Width != 0 || settings.Height != 0 {
		w, h := sc.Camera.Width, sc.Camera.Height
		if settings.Width != 0 {
			w = settings.Width
		}
		if settings.Height != 0 {
			h = settings.Height
		}
		sc.Camera.SetResolution(w, h)
	}
	if settings.RecurseDepth != 0 {
		sc.MaxDepth = settings.RecurseDepth
	}

	img, err := renderer.New(sc, settings.Workers, logger).Render(context.Background())
	if err != nil {
		return err
	}

	outPath := settings.Output
	if outPath == "" {
		outPath, err = uniqueOutputName()
		if err != nil {
			return err
		}
	}

	file, err := os.Create(outPath)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return errors.Wrap(err, "encoding PNG")
	}

	logger.Info("image saved", "path", outPath)
	return nil
}
