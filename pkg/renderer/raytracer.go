package renderer

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/vhxs/go-ray-tracing/pkg/core"
)

// DefaultLogger implements core.Logger on top of the standard log package (stderr)
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	log.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderConfig contains settings that affect how, not what, is rendered
type RenderConfig struct {
	Seed    int64 // Base seed; each scanline derives its own generator from it
	Workers int   // Number of parallel workers (0 = use CPU count)
}

// DefaultRenderConfig returns a single-threaded, deterministic configuration
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Seed:    42,
		Workers: 1,
	}
}

var (
	white   = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue = core.NewVec3(0.5, 0.7, 1.0)

	// Starting just above zero keeps scattered rays from re-hitting their own surface
	hitWindow = core.NewInterval(0.001, math.Inf(1))
)

// Raytracer handles the rendering process
type Raytracer struct {
	world  core.Shape
	camera *Camera
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer. world and everything it references must stay unchanged while rendering.
func NewRaytracer(world core.Shape, camera *Camera, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		world:  world,
		camera: camera,
		config: config,
		logger: logger,
	}
}

// Camera returns the camera rays are generated from
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// backgroundGradient returns the sky color seen along a ray that escapes the scene
func backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()
	a := 0.5 * (unitDirection.Y + 1.0)
	return white.Multiply(1.0 - a).Add(skyBlue.Multiply(a))
}

// RayColor returns the light carried back along r after at most depth bounces.
// It walks the path iteratively, multiplying attenuations together, which keeps stack use flat for any depth.
func (rt *Raytracer) RayColor(r core.Ray, depth int, random *rand.Rand) core.Vec3 {
	throughput := white

	for ; depth > 0; depth-- {
		var hit core.HitRecord
		if !rt.world.Hit(r, hitWindow, &hit) {
			return throughput.MultiplyVec(backgroundGradient(r))
		}

		if hit.Material == nil {
			return core.Vec3{X: 0, Y: 0, Z: 0}
		}
		scatter, didScatter := hit.Material.Scatter(r, hit, random)
		if !didScatter {
			return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		r = scatter.Scattered
	}

	// Bounce limit exhausted, no more light is gathered
	return core.Vec3{X: 0, Y: 0, Z: 0}
}

// SamplePixel accumulates SamplesPerPixel jittered samples for pixel (i, j) into ps
func (rt *Raytracer) SamplePixel(i, j int, ps *PixelStats, random *rand.Rand) {
	for sample := 0; sample < rt.camera.SamplesPerPixel(); sample++ {
		ray := rt.camera.GetRay(i, j, random)
		ps.AddSample(rt.RayColor(ray, rt.camera.MaxDepth(), random))
	}
}

// PixelColor returns the averaged linear color of pixel (i, j)
func (rt *Raytracer) PixelColor(i, j int, random *rand.Rand) core.Vec3 {
	var ps PixelStats
	rt.SamplePixel(i, j, &ps, random)
	return ps.GetColor()
}

// RenderRow renders scanline j with its own generator and returns the quantized pixels
func (rt *Raytracer) RenderRow(j int) []core.RGB {
	random := rand.New(rand.NewSource(rowSeed(rt.config.Seed, j)))
	pixels := make([]core.RGB, rt.camera.ImageWidth())
	for i := range pixels {
		pixels[i] = core.ToRGB(rt.PixelColor(i, j, random))
	}
	return pixels
}

// rowSeed spreads the base seed across scanlines so rows never share a random stream
func rowSeed(seed int64, row int) int64 {
	return int64(uint64(seed) + uint64(row+1)*0x9E3779B97F4A7C15)
}

// Render renders every scanline and writes the image to w in raster order starting at the top-left pixel.
// Rows may finish out of order across workers; they are written strictly in order.
func (rt *Raytracer) Render(w core.PixelWriter) (RenderStats, error) {
	startTime := time.Now()
	width, height := rt.camera.ImageWidth(), rt.camera.ImageHeight()

	if err := w.WriteHeader(width, height); err != nil {
		return RenderStats{}, fmt.Errorf("failed to write header: %w", err)
	}

	pool := NewWorkerPool(rt, height, rt.config.Workers)
	rt.logger.Printf("Rendering %dx%d, %d samples per pixel, max depth %d (using %d workers)\n",
		width, height, rt.camera.SamplesPerPixel(), rt.camera.MaxDepth(), pool.GetNumWorkers())

	pool.Start()
	go func() {
		for j := 0; j < height; j++ {
			pool.SubmitTask(RowTask{Row: j})
		}
		pool.Stop()
	}()

	pending := make(map[int][]core.RGB)
	nextRow := 0
	reportEvery := max(1, height/10)

	for result, ok := pool.GetResult(); ok; result, ok = pool.GetResult() {
		pending[result.Row] = result.Pixels

		for pixels, ready := pending[nextRow]; ready; pixels, ready = pending[nextRow] {
			for _, pixel := range pixels {
				if err := w.WritePixel(pixel); err != nil {
					pool.Cancel()
					return RenderStats{}, fmt.Errorf("failed to write row %d: %w", nextRow, err)
				}
			}
			delete(pending, nextRow)
			nextRow++

			if remaining := height - nextRow; remaining%reportEvery == 0 && remaining > 0 {
				rt.logger.Printf("Scanlines remaining: %d\n", remaining)
			}
		}
	}

	if err := w.Close(); err != nil {
		return RenderStats{}, fmt.Errorf("failed to finish image: %w", err)
	}

	stats := RenderStats{
		TotalPixels:     width * height,
		TotalSamples:    width * height * rt.camera.SamplesPerPixel(),
		SamplesPerPixel: rt.camera.SamplesPerPixel(),
		Rows:            height,
		Workers:         pool.GetNumWorkers(),
		Duration:        time.Since(startTime),
	}
	return stats, nil
}
