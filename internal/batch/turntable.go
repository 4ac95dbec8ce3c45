package batch

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"mesh3d-renderer/internal/camera"
	"mesh3d-renderer/internal/config"
	"mesh3d-renderer/internal/math3d"
	"mesh3d-renderer/internal/obj"
	"mesh3d-renderer/internal/postprocess"
	"mesh3d-renderer/internal/raster"

	"github.com/HugoSmits86/nativewebp"
)

// Job holds the shared resources for one turntable run.
type Job struct {
	Mesh obj.Mesh
	Tex  *image.NRGBA
	Cfg  config.Config
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Path    string
	Success bool
	Error   string
}

// Run renders cfg.Frames turntable frames with a worker pool, spinning the
// model a full revolution around the Y axis. Returns one Result per frame.
func Run(job Job) []Result {
	cfg := job.Cfg
	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, float64(p)/elapsed)
				}
			}
		}
	}()

	baseModel := fitMatrix(job)
	cam := baseCamera(cfg)

	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(job, cam, baseModel, idx)
				processed.Add(1)
			}
		}()
	}
	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)
	wg.Wait()
	close(done)

	return results
}

// fitMatrix returns the base model matrix: an explicit config override, or
// the automatic center-and-scale fit.
func fitMatrix(job Job) math3d.Mat4 {
	if job.Cfg.ModelMatrix != nil {
		if m, err := math3d.FromSlice(job.Cfg.ModelMatrix); err == nil {
			return m
		}
		// config.Load validated the slice already; unreachable in practice
	}
	min, max := job.Mesh.Bounds()
	return raster.FitTransform(min, max, 1)
}

func baseCamera(cfg config.Config) camera.Camera {
	cam := camera.Orbit(cfg.Yaw, cfg.Pitch, cfg.Distance, math3d.Vec3{})
	cam.FOV = cfg.FOV
	cam.Near = cfg.Near
	cam.Far = cfg.Far
	if cfg.Projection == "ortho" {
		cam.Ortho = true
		cam.OrthoScale = 1.2
	}
	return cam
}

func renderFrame(job Job, cam camera.Camera, baseModel math3d.Mat4, idx int) Result {
	cfg := job.Cfg
	angle := 2 * math.Pi * float64(idx) / float64(cfg.Frames)
	model := math3d.MakeRotate(angle, math3d.Vec3{Y: 1}).MulAffine(baseModel)

	r := raster.Renderer{
		Size:        cfg.RenderSize,
		Supersample: cfg.Supersample,
		Wireframe:   cfg.Wireframe,
		Background:  nrgba(cfg.Background),
		Tex:         job.Tex,
		Light:       raster.DefaultLighting(),
	}

	img, err := r.Render(job.Mesh, model, cam)
	if err != nil {
		return Result{Frame: idx, Error: err.Error()}
	}

	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}

	outPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%03d.webp", idx))
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{Frame: idx, Error: err.Error()}
	}
	f, err := os.Create(outPath)
	if err != nil {
		return Result{Frame: idx, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return Result{Frame: idx, Error: fmt.Sprintf("WebP encode: %v", err)}
	}

	return Result{Frame: idx, Path: outPath, Success: true}
}

func nrgba(c [4]uint8) color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}
