package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// NormalsIntegrator shades each primary hit by its surface normal, mapping
// components from [-1, 1] to [0, 1]. Misses show the background gradient.
// Nothing is scattered, so depth only matters when it is exhausted.
type NormalsIntegrator struct{}

// NewNormalsIntegrator creates a surface normal debug integrator
func NewNormalsIntegrator() *NormalsIntegrator {
	return &NormalsIntegrator{}
}

// RayColor implements Integrator
func (n *NormalsIntegrator) RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := scene.Hit(ray, core.NewInterval(ShadowAcneEpsilon, math.Inf(1)))
	if !isHit {
		return BackgroundColor(ray)
	}

	return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}
