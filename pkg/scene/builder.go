package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// builder collects shapes and keeps the first construction error, so scene
// constructors can describe geometry without checking every call.
type builder struct {
	scene *Scene
	err   error
}

func newBuilder(s *Scene) *builder {
	return &builder{scene: s}
}

func (b *builder) lambertian(albedo core.Vec3) material.Material {
	return material.NewLambertian(albedo)
}

func (b *builder) metal(albedo core.Vec3, fuzz float64) material.Material {
	m, err := material.NewMetal(albedo, fuzz)
	b.record(err)
	return m
}

func (b *builder) dielectric(index float64) material.Material {
	d, err := material.NewDielectric(index)
	b.record(err)
	return d
}

func (b *builder) sphere(center core.Vec3, radius float64, mat material.Material) {
	if b.err != nil {
		return
	}
	s, err := geometry.NewSphere(center, radius, mat)
	if b.record(err) {
		b.scene.Add(s)
	}
}

// record keeps the first error and reports whether err was nil
func (b *builder) record(err error) bool {
	if err != nil && b.err == nil {
		b.err = err
	}
	return err == nil
}

func (b *builder) build() (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.scene, nil
}
