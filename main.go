package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/vhxs/go-ray-tracing/pkg/output"
	"github.com/vhxs/go-ray-tracing/pkg/renderer"
	"github.com/vhxs/go-ray-tracing/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneName string
	scenesDir string
	width     int
	aspect    float64
	samples   int
	depth     int
	seed      int64
	workers   int
	format    string
	outPath   string
	list      bool
	help      bool
}

func main() {
	log.SetFlags(log.Ltime)

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("Error: %v", err)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.sceneName, "scene", "default", "Built-in scene name or path to a .json scene file")
	fs.StringVar(&opts.scenesDir, "scenes", "scenes", "Directory searched for .json scenes by -list")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.Float64Var(&opts.aspect, "aspect", 0, "Aspect ratio, width over height (0 = scene default)")
	fs.IntVar(&opts.samples, "samples", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&opts.depth, "depth", 0, "Maximum bounces per ray (0 = scene default)")
	fs.Int64Var(&opts.seed, "seed", renderer.DefaultRenderConfig().Seed, "Random seed; equal seeds give identical images")
	fs.IntVar(&opts.workers, "workers", renderer.DefaultRenderConfig().Workers, "Number of parallel workers (0 = use CPU count)")
	formatNames := make([]string, len(output.Formats))
	for i, f := range output.Formats {
		formatNames[i] = string(f)
	}
	fs.StringVar(&opts.format, "format", "", "Output format: "+strings.Join(formatNames, ", ")+" (default from -o extension, else ppm)")
	fs.StringVar(&opts.outPath, "o", "", "Output file (default stdout)")
	fs.BoolVar(&opts.list, "list", false, "List available scenes and exit")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.help {
		fmt.Fprintln(stderr, "Sphere Raytracer")
		fmt.Fprintln(stderr, "Usage: raytracer [options] > image.ppm")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
		return opts, flag.ErrHelp
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) (err error) {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if opts.list {
		return listScenes(stdout, opts.scenesDir)
	}

	selectedScene, err := createScene(opts.sceneName, renderer.CameraConfig{
		ImageWidth:      opts.width,
		AspectRatio:     opts.aspect,
		SamplesPerPixel: opts.samples,
		MaxDepth:        opts.depth,
	})
	if err != nil {
		return err
	}
	log.Printf("Using %s scene...", selectedScene.Name)

	camera, err := renderer.NewCamera(selectedScene.Camera)
	if err != nil {
		return fmt.Errorf("invalid camera for scene %s: %w", selectedScene.Name, err)
	}

	format, err := resolveFormat(opts.format, opts.outPath)
	if err != nil {
		return err
	}

	dest := stdout
	if opts.outPath != "" {
		var file *os.File
		if file, err = createOutputFile(opts.outPath); err != nil {
			return err
		}
		defer closeOutput(file, opts.outPath, &err)
		dest = file
	}

	writer, err := output.NewWriter(format, dest)
	if err != nil {
		return err
	}

	raytracer := renderer.NewRaytracer(selectedScene.World(), camera, renderer.RenderConfig{
		Seed:    opts.seed,
		Workers: opts.workers,
	}, renderer.NewDefaultLogger())

	stats, err := raytracer.Render(writer)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	log.Printf("Render completed in %v", stats.Duration)
	log.Printf("%d pixels, %.1f samples per pixel, %d workers",
		stats.TotalPixels, stats.AverageSamples(), stats.Workers)
	if opts.outPath != "" {
		log.Printf("Render saved as %s", opts.outPath)
	}
	return nil
}

// createScene returns a built-in scene or loads a scene file, applying any non-zero camera overrides
func createScene(sceneName string, overrides renderer.CameraConfig) (*scene.Scene, error) {
	if sceneName == "" {
		return nil, fmt.Errorf("no scene given")
	}
	s, err := scene.Open(sceneName, overrides)
	if err != nil {
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}
	return s, nil
}

// resolveFormat picks the explicit format, else the output file's extension, else PPM
func resolveFormat(format, outPath string) (output.Format, error) {
	if format != "" {
		return output.ParseFormat(format)
	}
	if outPath != "" {
		return output.FormatFromPath(outPath)
	}
	return output.FormatPPM, nil
}

// closeOutput closes a written output file, reporting the failure through err unless an earlier error is already set
func closeOutput(c io.Closer, path string, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("error closing %s: %w", path, cerr)
	}
}

// createOutputFile creates path along with any missing parent directories
func createOutputFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("error creating output directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("error creating file: %w", err)
	}
	return file, nil
}

func listScenes(w io.Writer, scenesDir string) error {
	scenes, err := scene.ListScenes(scenesDir)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Available scenes:")
	for _, s := range scenes {
		fmt.Fprintf(w, "  %-12s %s", s.ID, s.DisplayName)
		if s.Description != "" {
			fmt.Fprintf(w, " - %s", s.Description)
		}
		fmt.Fprintln(w)
	}
	return nil
}
