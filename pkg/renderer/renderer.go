package renderer

import (
	"image"
	"math"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/log"
)

// SamplerFactory returns the sampler used for one output row
type SamplerFactory func(row int) core.Sampler

// ProgressFunc is called from the rendering goroutine after each completed row
type ProgressFunc func(rowsDone, totalRows int)

// Options contains rendering configuration
type Options struct {
	NumSamples     int                   // Camera samples per pixel
	MaxDepth       int                   // Maximum bounces per path
	NumWorkers     int                   // Worker goroutines, defaults to runtime.NumCPU()
	SamplerFactory SamplerFactory        // Per-row sampler, defaults to a fresh entropy-seeded generator
	Integrator     integrator.Integrator // Light transport, defaults to path tracing with MaxDepth
	Logger         core.Logger           // Defaults to the "renderer" logger
	Progress       ProgressFunc          // Optional progress callback
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		NumSamples: 100,
		MaxDepth:   50,
	}
}

// Renderer renders a scene into an RGBA8 buffer in parallel, one task per scanline
type Renderer struct {
	options Options
}

// NewRenderer creates a renderer, filling unset options with defaults
func NewRenderer(options Options) *Renderer {
	if options.NumSamples <= 0 {
		options.NumSamples = 1
	}
	if options.MaxDepth < 0 {
		options.MaxDepth = 0
	}
	if options.SamplerFactory == nil {
		options.SamplerFactory = EntropySamplerFactory
	}
	if options.Integrator == nil {
		options.Integrator = integrator.NewPathTracingIntegrator(options.MaxDepth)
	}
	if options.Logger == nil {
		options.Logger = log.New("renderer")
	}
	return &Renderer{options: options}
}

// EntropySamplerFactory gives every row its own generator seeded from the OS entropy source
func EntropySamplerFactory(row int) core.Sampler {
	return core.NewEntropySampler()
}

// SeededSamplerFactory gives every row a generator derived from seed and the row index,
// so renders with the same seed are reproducible regardless of scheduling
func SeededSamplerFactory(seed int64) SamplerFactory {
	return func(row int) core.Sampler {
		return core.NewSeededSampler(seed*1000003 + int64(row))
	}
}

// Render is the package-level entry point: it renders with default workers and entropy
// seeding and returns width*height*4 RGBA bytes, row 0 at the top
func Render(camera *Camera, world geometry.Hittable, numSamples, maxDepth int) []byte {
	return NewRenderer(Options{NumSamples: numSamples, MaxDepth: maxDepth}).Render(camera, world)
}

// RayColor traces a single camera ray with the path tracing integrator
func RayColor(ray core.Ray, world geometry.Hittable, maxDepth int, sampler core.Sampler) core.Vec3 {
	return integrator.NewPathTracingIntegrator(maxDepth).RayColor(ray, world, sampler)
}

// Render renders the world and returns the RGBA8 pixel buffer
func (r *Renderer) Render(camera *Camera, world geometry.Hittable) []byte {
	buf, _ := r.RenderWithStats(camera, world)
	return buf
}

// RenderWithStats renders the world and also reports statistics about the pass
func (r *Renderer) RenderWithStats(camera *Camera, world geometry.Hittable) ([]byte, RenderStats) {
	start := time.Now()
	width, height := camera.Width(), camera.Height()
	rowBytes := width * 4
	buf := make([]byte, rowBytes*height)

	pool := NewWorkerPool(r.options.NumWorkers, height, func(task RowTask) RowResult {
		return r.renderRow(camera, world, task)
	})
	r.options.Logger.Debugf("rendering %dx%d with %d samples, depth %d, %d workers",
		width, height, r.options.NumSamples, r.options.MaxDepth, pool.GetNumWorkers())

	pool.Start()
	for row := 0; row < height; row++ {
		pool.SubmitTask(RowTask{Row: row, Pixels: buf[row*rowBytes : (row+1)*rowBytes]})
	}

	stats := RenderStats{
		TotalPixels: width * height,
		Workers:     pool.GetNumWorkers(),
	}
	for stats.Rows < height {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.Rows++
		stats.TotalSamples += result.Samples
		if r.options.Progress != nil {
			r.options.Progress(stats.Rows, height)
		}
	}
	pool.Stop()

	stats.Duration = time.Since(start)
	r.options.Logger.Infof("rendered %d pixels (%d samples) in %v", stats.TotalPixels, stats.TotalSamples, stats.Duration)
	return buf, stats
}

// renderRow samples every pixel of one output row. Output row 0 is the top of the image,
// while the camera's t coordinate grows from the bottom.
func (r *Renderer) renderRow(camera *Camera, world geometry.Hittable, task RowTask) RowResult {
	width, height := camera.Width(), camera.Height()
	sampler := r.options.SamplerFactory(task.Row)
	j := height - 1 - task.Row

	for i := 0; i < width; i++ {
		var ps PixelStats
		for s := 0; s < r.options.NumSamples; s++ {
			u := (float64(i) + sampler.Get1D()) / float64(width)
			v := (float64(j) + sampler.Get1D()) / float64(height)
			ray := camera.GetRay(u, v, sampler)
			ps.AddSample(r.options.Integrator.RayColor(ray, world, sampler))
		}

		rgb := ToneMap(ps.GetColor())
		offset := i * 4
		task.Pixels[offset] = rgb[0]
		task.Pixels[offset+1] = rgb[1]
		task.Pixels[offset+2] = rgb[2]
		task.Pixels[offset+3] = 255
	}

	return RowResult{Row: task.Row, Samples: width * r.options.NumSamples}
}

// ToneMap gamma-corrects a linear color with a square root and quantizes it to bytes
func ToneMap(color core.Vec3) [3]byte {
	color = color.ZeroNaN()
	return [3]byte{
		toByte(255.99 * math.Sqrt(color.X)),
		toByte(255.99 * math.Sqrt(color.Y)),
		toByte(255.99 * math.Sqrt(color.Z)),
	}
}

// toByte truncates to an integer, saturating NaN and negatives to 0 and overflow to 255
func toByte(value float64) byte {
	if math.IsNaN(value) || value <= 0 {
		return 0
	}
	if value >= 255 {
		return 255
	}
	return byte(value)
}

// ToImage wraps an RGBA8 buffer in an image.RGBA for encoders
func ToImage(buf []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, buf)
	return img
}
