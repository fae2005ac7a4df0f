package material

import "github.com/df07/go-pathtracer/pkg/core"

// fixedSampler replays constant values so scatter directions are predictable
type fixedSampler struct {
	value    float64
	gaussian core.Vec3
}

func (f *fixedSampler) Get1D() float64           { return f.value }
func (f *fixedSampler) Get2D() core.Vec2         { return core.NewVec2(f.value, f.value) }
func (f *fixedSampler) Get3D() core.Vec3         { return core.NewVec3(f.value, f.value, f.value) }
func (f *fixedSampler) GetGaussian3D() core.Vec3 { return f.gaussian }
