package renderer

import (
	"fmt"
	"math"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// PixelWriter consumes quantized pixels in raster order: rows top to bottom,
// columns left to right
type PixelWriter interface {
	WriteHeader(width, height int) error
	WritePixel(r, g, b uint8) error
}

// Options override the recommended configuration carried by a scene.
// Zero fields keep the scene's values.
type Options struct {
	Camera   geometry.CameraConfig
	Sampling scene.SamplingConfig
}

// Raytracer renders a scene one pixel at a time on the calling goroutine
type Raytracer struct {
	scene      *scene.Scene
	camera     *geometry.Camera
	integrator integrator.Integrator
	config     scene.SamplingConfig
	sampler    core.Sampler
	logger     core.Logger
}

// NewRaytracer builds the camera for sc with opts merged over the scene's
// configuration. The sampler is seeded from the merged sampling seed.
func NewRaytracer(sc *scene.Scene, integ integrator.Integrator, opts Options, logger core.Logger) (*Raytracer, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}

	config := scene.MergeSamplingConfig(sc.SamplingConfig, opts.Sampling)
	if config.SamplesPerPixel <= 0 {
		return nil, fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidSampling, config.SamplesPerPixel)
	}
	if config.MaxDepth <= 0 {
		return nil, fmt.Errorf("%w: max depth must be positive, got %d", ErrInvalidSampling, config.MaxDepth)
	}

	camera, err := geometry.NewCamera(geometry.MergeCameraConfig(sc.CameraConfig, opts.Camera))
	if err != nil {
		return nil, err
	}

	return &Raytracer{
		scene:      sc,
		camera:     camera,
		integrator: integ,
		config:     config,
		sampler:    core.NewSeededSampler(config.Seed),
		logger:     logger,
	}, nil
}

// Camera returns the camera built for this render
func (rt *Raytracer) Camera() *geometry.Camera { return rt.camera }

// SamplingConfig returns the merged sampling configuration
func (rt *Raytracer) SamplingConfig() scene.SamplingConfig { return rt.config }

// RenderPixel averages SamplesPerPixel radiance samples for pixel (i, j).
// The result is linear, before gamma correction.
func (rt *Raytracer) RenderPixel(i, j int) core.Vec3 {
	colorAccum := core.Vec3{}
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		ray := rt.camera.GetRay(i, j, rt.sampler)
		colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.scene, rt.sampler, rt.config.MaxDepth))
	}
	return colorAccum.Divide(float64(rt.config.SamplesPerPixel))
}

// Render traces every pixel and streams the quantized result to w, reporting
// one progress increment per finished row. A write error aborts the render.
func (rt *Raytracer) Render(w PixelWriter, progress Progress) (RenderStats, error) {
	if progress == nil {
		progress = NopProgress{}
	}

	width, height := rt.camera.ImageWidth(), rt.camera.ImageHeight()
	rt.logger.Printf("rendering %q at %dx%d, %d spp, depth %d, seed %d",
		rt.scene.Name, width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth, rt.config.Seed)

	stats := RenderStats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		MaxDepth:        rt.config.MaxDepth,
		Primitives:      rt.scene.GetPrimitiveCount(),
	}

	if err := w.WriteHeader(width, height); err != nil {
		return stats, fmt.Errorf("writing header: %w", err)
	}

	start := time.Now()
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			r, g, b := ToRGB8(rt.RenderPixel(i, j))
			if err := w.WritePixel(r, g, b); err != nil {
				return stats, fmt.Errorf("writing pixel (%d, %d): %w", i, j, err)
			}
			stats.TotalPixels++
		}
		progress.Increment(j + 1)
	}
	stats.Elapsed = time.Since(start)
	stats.TotalSamples = stats.TotalPixels * rt.config.SamplesPerPixel

	rt.logger.Printf("rendered %d pixels in %s", stats.TotalPixels, stats.Elapsed)
	return stats, nil
}

// LinearToGamma applies the gamma 2 tone curve, mapping non-positive input to 0
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

var intensity = core.NewInterval(0.000, 0.999)

// Quantize clamps a gamma-space channel to [0, 0.999] and scales it to 8 bits
func Quantize(channel float64) uint8 {
	return uint8(256 * intensity.Clamp(channel))
}

// ToRGB8 converts a linear color to gamma-corrected 8-bit channels
func ToRGB8(color core.Vec3) (r, g, b uint8) {
	return Quantize(LinearToGamma(color.X)),
		Quantize(LinearToGamma(color.Y)),
		Quantize(LinearToGamma(color.Z))
}
