package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// FileVec is a vector written as a three element JSON array
type FileVec [3]float64

func (v FileVec) vec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// FileCamera is the camera block of a scene file
type FileCamera struct {
	LookFrom      FileVec `json:"lookFrom"`
	LookAt        FileVec `json:"lookAt"`
	Up            FileVec `json:"up"`
	Width         int     `json:"width"`
	AspectRatio   float64 `json:"aspectRatio"`
	VFov          float64 `json:"vfov"`
	DefocusAngle  float64 `json:"defocusAngle,omitempty"`
	FocusDistance float64 `json:"focusDistance"`
}

// FileSampling is the sampling block of a scene file
type FileSampling struct {
	SamplesPerPixel int   `json:"samplesPerPixel,omitempty"`
	MaxDepth        int   `json:"maxDepth,omitempty"`
	Seed            int64 `json:"seed,omitempty"`
}

// FileMaterial describes one named material.
// Type is one of "lambertian", "metal" or "dielectric".
type FileMaterial struct {
	Type            string  `json:"type"`
	Albedo          FileVec `json:"albedo,omitempty"`
	Fuzz            float64 `json:"fuzz,omitempty"`
	RefractiveIndex float64 `json:"refractiveIndex,omitempty"`
}

// FileSphere places a sphere with a material referenced by name
type FileSphere struct {
	Center   FileVec `json:"center"`
	Radius   float64 `json:"radius"`
	Material string  `json:"material"`
}

// File is the JSON scene description
type File struct {
	Name      string                  `json:"name,omitempty"`
	Camera    FileCamera              `json:"camera"`
	Sampling  FileSampling            `json:"sampling,omitempty"`
	Materials map[string]FileMaterial `json:"materials"`
	Spheres   []FileSphere            `json:"spheres"`
}

// LoadFile reads and builds a scene from a JSON file
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scene file: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Parse decodes a JSON scene description and builds the scene
func Parse(r io.Reader) (*Scene, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var file File
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSceneFile, err)
	}
	return file.Build()
}

// Build converts the description into a scene
func (f *File) Build() (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		LookFrom:      f.Camera.LookFrom.vec3(),
		LookAt:        f.Camera.LookAt.vec3(),
		Up:            f.Camera.Up.vec3(),
		Width:         f.Camera.Width,
		AspectRatio:   f.Camera.AspectRatio,
		VFov:          f.Camera.VFov,
		DefocusAngle:  f.Camera.DefocusAngle,
		FocusDistance: f.Camera.FocusDistance,
	}
	samplingConfig := MergeSamplingConfig(DefaultSamplingConfig(), SamplingConfig{
		SamplesPerPixel: f.Sampling.SamplesPerPixel,
		MaxDepth:        f.Sampling.MaxDepth,
		Seed:            f.Sampling.Seed,
	})

	materials := make(map[string]material.Material, len(f.Materials))
	for name, fm := range f.Materials {
		m, err := fm.build()
		if err != nil {
			return nil, fmt.Errorf("%w: material %q: %w", ErrInvalidSceneFile, name, err)
		}
		materials[name] = m
	}

	s := New(f.Name, cameraConfig, samplingConfig)
	for i, fs := range f.Spheres {
		m, ok := materials[fs.Material]
		if !ok {
			return nil, fmt.Errorf("%w: sphere %d references unknown material %q", ErrInvalidSceneFile, i, fs.Material)
		}
		sphere, err := geometry.NewSphere(fs.Center.vec3(), fs.Radius, m)
		if err != nil {
			return nil, fmt.Errorf("%w: sphere %d: %w", ErrInvalidSceneFile, i, err)
		}
		s.Add(sphere)
	}

	return s, nil
}

func (fm FileMaterial) build() (material.Material, error) {
	switch strings.ToLower(fm.Type) {
	case "lambertian":
		return material.NewLambertian(fm.Albedo.vec3()), nil
	case "metal":
		return material.NewMetal(fm.Albedo.vec3(), fm.Fuzz)
	case "dielectric":
		return material.NewDielectric(fm.RefractiveIndex)
	default:
		return nil, fmt.Errorf("unknown material type %q", fm.Type)
	}
}
