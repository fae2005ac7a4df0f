package scene

import (
	"fmt"
	"sort"
)

// RandomLayoutSeed seeds the layout of the built-in random scene
const RandomLayoutSeed = 2024

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
}

type builtinScene struct {
	info  SceneInfo
	build func() (*Scene, error)
}

var builtins = map[string]builtinScene{
	"single-sphere": {
		info:  SceneInfo{Name: "single-sphere", Description: "one diffuse sphere at (0,0,-1) under the sky gradient"},
		build: NewSingleSphereScene,
	},
	"empty": {
		info:  SceneInfo{Name: "empty", Description: "no shapes, background gradient only"},
		build: NewEmptyScene,
	},
	"materials": {
		info:  SceneInfo{Name: "materials", Description: "diffuse, hollow glass and fuzzy metal spheres on a ground sphere"},
		build: NewMaterialsScene,
	},
	"random": {
		info:  SceneInfo{Name: "random", Description: "ground with a grid of random small spheres and three large ones, depth of field"},
		build: func() (*Scene, error) { return NewRandomScene(RandomLayoutSeed) },
	},
}

// List returns the built-in scenes sorted by name
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		infos = append(infos, b.info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// Names returns the names of the built-in scenes, sorted
func Names() []string {
	infos := List()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names
}

// Lookup builds the built-in scene with the given name
func Lookup(name string) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	s, err := b.build()
	if err != nil {
		return nil, fmt.Errorf("building scene %q: %w", name, err)
	}
	return s, nil
}
