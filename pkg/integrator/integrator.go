package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// ShadowAcneEpsilon is the lower bound of the hit interval for every traced ray.
// Ignoring hits closer than this keeps scattered rays from re-hitting their own
// surface due to floating point error.
const ShadowAcneEpsilon = 0.001

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance carried back along ray, following at most
	// depth bounces
	RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler, depth int) core.Vec3
}

var (
	skyWhite = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue  = core.NewVec3(0.5, 0.7, 1.0)
)

// BackgroundColor returns the sky gradient seen along ray: white when looking
// straight down, light blue when looking straight up.
func BackgroundColor(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	a := 0.5 * (unitDirection.Y + 1.0)
	return skyWhite.Multiply(1.0 - a).Add(skyBlue.Multiply(a))
}
