package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// NewRandomScene creates the cover scene: a large ground sphere, a grid of
// small randomized spheres and three large feature spheres. The layout is
// derived from layoutSeed, independently of the render seed.
func NewRandomScene(layoutSeed int64) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         800,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		DefocusAngle:  0.6,
		FocusDistance: 10.0,
	}

	samplingConfig := DefaultSamplingConfig()
	samplingConfig.SamplesPerPixel = 200

	b := newBuilder(New("random", cameraConfig, samplingConfig))
	random := rand.New(rand.NewSource(layoutSeed))
	randomColor := func(lo, hi float64) core.Vec3 {
		return core.NewVec3(
			lo+(hi-lo)*random.Float64(),
			lo+(hi-lo)*random.Float64(),
			lo+(hi-lo)*random.Float64(),
		)
	}

	b.sphere(core.NewVec3(0, -1000, 0), 1000, b.lambertian(core.NewVec3(0.5, 0.5, 0.5)))

	glass := b.dielectric(1.5)
	feature := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for c := -11; c < 11; c++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(c)+0.9*random.Float64())

			if center.Subtract(feature).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := randomColor(0, 1).MultiplyVec(randomColor(0, 1))
				b.sphere(center, 0.2, b.lambertian(albedo))
			case chooseMat < 0.95:
				albedo := randomColor(0.5, 1)
				fuzz := 0.5 * random.Float64()
				b.sphere(center, 0.2, b.metal(albedo, fuzz))
			default:
				b.sphere(center, 0.2, glass)
			}
		}
	}

	b.sphere(core.NewVec3(0, 1, 0), 1.0, glass)
	b.sphere(core.NewVec3(-4, 1, 0), 1.0, b.lambertian(core.NewVec3(0.4, 0.2, 0.1)))
	b.sphere(core.NewVec3(4, 1, 0), 1.0, b.metal(core.NewVec3(0.7, 0.6, 0.5), 0.0))

	return b.build()
}
