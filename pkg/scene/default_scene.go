package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// NewSingleSphereScene creates one diffuse sphere in front of a camera looking down -z
func NewSingleSphereScene() (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          90.0,
		FocusDistance: 1.0,
	}

	b := newBuilder(New("single-sphere", cameraConfig, DefaultSamplingConfig()))
	b.sphere(core.NewVec3(0, 0, -1), 0.5, b.lambertian(core.NewVec3(0.5, 0.5, 0.5)))
	return b.build()
}

// NewEmptyScene creates a scene with no shapes, which renders the sky gradient only
func NewEmptyScene() (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          90.0,
		FocusDistance: 1.0,
	}

	samplingConfig := DefaultSamplingConfig()
	samplingConfig.SamplesPerPixel = 1
	return New("empty", cameraConfig, samplingConfig), nil
}

// NewMaterialsScene creates a ground with diffuse, hollow glass and fuzzy metal spheres
func NewMaterialsScene() (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		LookFrom:      core.NewVec3(-2, 2, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		DefocusAngle:  10.0,
		FocusDistance: 3.4,
	}

	b := newBuilder(New("materials", cameraConfig, DefaultSamplingConfig()))

	ground := b.lambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := b.lambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := b.dielectric(1.5)
	// Air bubble inside the glass: the index is the ratio of air to glass
	bubble := b.dielectric(1.0 / 1.5)
	gold := b.metal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	b.sphere(core.NewVec3(0, -100.5, -1), 100, ground)
	b.sphere(core.NewVec3(0, 0, -1.2), 0.5, center)
	b.sphere(core.NewVec3(-1, 0, -1), 0.5, glass)
	b.sphere(core.NewVec3(-1, 0, -1), 0.4, bubble)
	b.sphere(core.NewVec3(1, 0, -1), 0.5, gold)

	return b.build()
}
