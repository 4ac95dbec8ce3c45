package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"mesh3d-renderer/internal/batch"
	"mesh3d-renderer/internal/config"
	"mesh3d-renderer/internal/obj"
	"mesh3d-renderer/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	model := flag.String("model", "", "Path to OBJ model file")
	tex := flag.String("texture", "", "Path to texture file (PNG/JPEG/TGA)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	size := flag.Int("size", 0, "Output image size in pixels (default: 512)")
	frames := flag.Int("frames", 0, "Number of turntable frames (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	wireframe := flag.Bool("wireframe", false, "Draw edges instead of filled faces")
	ortho := flag.Bool("ortho", false, "Use an orthographic projection")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Model:     *model,
		Texture:   *tex,
		OutputDir: *outputDir,
		Size:      *size,
		Frames:    *frames,
		Workers:   *workers,
		Wireframe: *wireframe,
		Ortho:     *ortho,
	})

	if cfg.Model == "" {
		fmt.Fprintln(os.Stderr, "Error: no model given. Use -model or config.json.")
		os.Exit(1)
	}

	mesh, err := obj.Parse(cfg.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
		os.Exit(1)
	}

	var texImg *image.NRGBA
	if cfg.Texture != "" {
		texImg, err = texture.Load(cfg.Texture)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: texture load: %v\n", err)
		}
	}

	fmt.Printf("OBJ 3D Renderer → WebP\n")
	fmt.Printf("Model: %s (%d verts, %d faces)\n", cfg.Model, len(mesh.Verts), len(mesh.Faces))
	fmt.Printf("Frames: %d, Workers: %d, Size: %d\n", cfg.Frames, cfg.Workers, cfg.RenderSize)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(batch.Job{Mesh: mesh, Tex: texImg, Cfg: cfg})
	elapsed := time.Since(start)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		for _, e := range errors {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
