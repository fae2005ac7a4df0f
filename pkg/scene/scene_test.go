package scene

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

func mustSphere(t *testing.T, center core.Vec3, radius float64, mat material.Material) *geometry.Sphere {
	t.Helper()
	s, err := geometry.NewSphere(center, radius, mat)
	if err != nil {
		t.Fatalf("NewSphere failed: %v", err)
	}
	return s
}

func TestSceneHitReturnsNearest(t *testing.T) {
	near := material.NewLambertian(core.NewVec3(1, 0, 0))
	far := material.NewLambertian(core.NewVec3(0, 0, 1))
	nearSphere := mustSphere(t, core.NewVec3(0, 0, -2), 0.5, near)
	farSphere := mustSphere(t, core.NewVec3(0, 0, -5), 0.5, far)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	rayT := core.NewInterval(0.001, math.Inf(1))

	tests := []struct {
		name   string
		shapes []geometry.Shape
	}{
		{"near first", []geometry.Shape{nearSphere, farSphere}},
		{"far first", []geometry.Shape{farSphere, nearSphere}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("test", geometry.CameraConfig{}, DefaultSamplingConfig())
			s.Add(tt.shapes...)

			hit, ok := s.Hit(ray, rayT)
			if !ok {
				t.Fatal("expected a hit")
			}
			if math.Abs(hit.T-1.5) > 1e-9 {
				t.Errorf("expected t=1.5, got %v", hit.T)
			}
			if hit.Material != near {
				t.Error("expected the material of the nearer sphere")
			}
		})
	}
}

func TestSceneHitRespectsInterval(t *testing.T) {
	s := New("test", geometry.CameraConfig{}, DefaultSamplingConfig())
	s.Add(mustSphere(t, core.NewVec3(0, 0, -2), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Entry at t=1.5, exit at t=2.5
	if _, ok := s.Hit(ray, core.NewInterval(0.001, 1.0)); ok {
		t.Error("expected no hit when the sphere lies beyond the interval")
	}
	hit, ok := s.Hit(ray, core.NewInterval(2.0, math.Inf(1)))
	if !ok {
		t.Fatal("expected the exit hit")
	}
	if math.Abs(hit.T-2.5) > 1e-9 {
		t.Errorf("expected t=2.5, got %v", hit.T)
	}
	if hit.FrontFace {
		t.Error("exit hit should be a back face")
	}
}

func TestEmptySceneNeverHits(t *testing.T) {
	s, err := NewEmptyScene()
	if err != nil {
		t.Fatalf("NewEmptyScene failed: %v", err)
	}

	random := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		dir := core.NewVec3(random.NormFloat64(), random.NormFloat64(), random.NormFloat64())
		if _, ok := s.Hit(core.NewRay(core.Vec3{}, dir), core.UniverseInterval); ok {
			t.Fatalf("empty scene reported a hit for direction %v", dir)
		}
	}
}

func TestSceneHitMatchesBruteForce(t *testing.T) {
	random := rand.New(rand.NewSource(11))
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	s := New("random", geometry.CameraConfig{}, DefaultSamplingConfig())
	for i := 0; i < 20; i++ {
		center := core.NewVec3(random.Float64()*10-5, random.Float64()*10-5, -random.Float64()*10-2)
		s.Add(mustSphere(t, center, 0.2+random.Float64(), mat))
	}

	rayT := core.NewInterval(0.001, math.Inf(1))
	for i := 0; i < 200; i++ {
		dir := core.NewVec3(random.Float64()-0.5, random.Float64()-0.5, -1)
		ray := core.NewRay(core.Vec3{}, dir)

		best := math.Inf(1)
		for _, shape := range s.Shapes {
			if h, ok := shape.Hit(ray, rayT); ok && h.T < best {
				best = h.T
			}
		}

		hit, ok := s.Hit(ray, rayT)
		if ok != !math.IsInf(best, 1) {
			t.Fatalf("ray %d: scene hit=%v, brute force best=%v", i, ok, best)
		}
		if ok && hit.T != best {
			t.Errorf("ray %d: expected nearest t=%v, got %v", i, best, hit.T)
		}
	}
}

func TestBuiltinScenes(t *testing.T) {
	names := Names()
	if len(names) != 4 {
		t.Fatalf("expected 4 built-in scenes, got %v", names)
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			s, err := Lookup(name)
			if err != nil {
				t.Fatalf("Lookup(%q) failed: %v", name, err)
			}
			if s.Name != name {
				t.Errorf("expected scene name %q, got %q", name, s.Name)
			}
			if err := s.CameraConfig.Validate(); err != nil {
				t.Errorf("invalid camera: %v", err)
			}
			if s.SamplingConfig.SamplesPerPixel <= 0 || s.SamplingConfig.MaxDepth <= 0 {
				t.Errorf("invalid sampling config: %+v", s.SamplingConfig)
			}
		})
	}
}

func TestRandomSceneLayoutIsDeterministic(t *testing.T) {
	a, err := NewRandomScene(5)
	if err != nil {
		t.Fatalf("NewRandomScene failed: %v", err)
	}
	b, err := NewRandomScene(5)
	if err != nil {
		t.Fatalf("NewRandomScene failed: %v", err)
	}
	if a.GetPrimitiveCount() != b.GetPrimitiveCount() {
		t.Fatalf("primitive counts differ: %d vs %d", a.GetPrimitiveCount(), b.GetPrimitiveCount())
	}
	for i := range a.Shapes {
		if a.Shapes[i].(*geometry.Sphere).Center != b.Shapes[i].(*geometry.Sphere).Center {
			t.Fatalf("sphere %d differs between identical seeds", i)
		}
	}
}

func TestLookupUnknownScene(t *testing.T) {
	_, err := Lookup("no-such-scene")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("expected ErrUnknownScene, got %v", err)
	}
}

const testSceneJSON = `{
  "name": "file-scene",
  "camera": {
    "lookFrom": [0, 0, 0],
    "lookAt": [0, 0, -1],
    "up": [0, 1, 0],
    "width": 64,
    "aspectRatio": 2,
    "vfov": 90,
    "focusDistance": 1
  },
  "sampling": {"samplesPerPixel": 4, "maxDepth": 8},
  "materials": {
    "matte": {"type": "lambertian", "albedo": [0.5, 0.5, 0.5]},
    "mirror": {"type": "metal", "albedo": [0.9, 0.9, 0.9], "fuzz": 0.1},
    "glass": {"type": "dielectric", "refractiveIndex": 1.5}
  },
  "spheres": [
    {"center": [0, -100.5, -1], "radius": 100, "material": "matte"},
    {"center": [-1, 0, -1], "radius": 0.5, "material": "glass"},
    {"center": [1, 0, -1], "radius": 0.5, "material": "mirror"}
  ]
}`

func TestParseSceneFile(t *testing.T) {
	s, err := Parse(strings.NewReader(testSceneJSON))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if s.Name != "file-scene" {
		t.Errorf("expected name file-scene, got %q", s.Name)
	}
	if s.GetPrimitiveCount() != 3 {
		t.Errorf("expected 3 spheres, got %d", s.GetPrimitiveCount())
	}
	if s.CameraConfig.Width != 64 || s.CameraConfig.AspectRatio != 2 {
		t.Errorf("unexpected camera config: %+v", s.CameraConfig)
	}
	if s.SamplingConfig.SamplesPerPixel != 4 || s.SamplingConfig.MaxDepth != 8 {
		t.Errorf("unexpected sampling config: %+v", s.SamplingConfig)
	}
	// Seed falls back to the default
	if s.SamplingConfig.Seed != DefaultSamplingConfig().Seed {
		t.Errorf("expected default seed, got %d", s.SamplingConfig.Seed)
	}
	if _, ok := s.Shapes[2].(*geometry.Sphere).Material.(*material.Metal); !ok {
		t.Error("expected the third sphere to be metal")
	}
}

func TestParseSceneFileErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"malformed", `{"camera": `},
		{"unknown field", `{"camera": {}, "lights": []}`},
		{"unknown material type", `{"camera": {}, "materials": {"m": {"type": "plastic"}}, "spheres": []}`},
		{"missing material", `{"camera": {}, "materials": {}, "spheres": [{"center": [0,0,0], "radius": 1, "material": "m"}]}`},
		{"invalid fuzz", `{"camera": {}, "materials": {"m": {"type": "metal", "fuzz": 2}}, "spheres": []}`},
		{"invalid radius", `{"camera": {}, "materials": {"m": {"type": "lambertian"}}, "spheres": [{"center": [0,0,0], "radius": 0, "material": "m"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.json))
			if !errors.Is(err, ErrInvalidSceneFile) {
				t.Errorf("expected ErrInvalidSceneFile, got %v", err)
			}
		})
	}
}
