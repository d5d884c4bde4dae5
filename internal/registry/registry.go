// Package registry provides a global registry of builtin scene factories.
// Scene packages register themselves in init() functions so the CLI can list
// and build scenes without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-shapecast/internal/scene"
)

// ErrUnknownScene is returned by Create for IDs nobody registered.
var ErrUnknownScene = errors.New("registry: unknown scene")

// SceneInfo contains metadata about a registered scene.
type SceneInfo struct {
	ID     string
	Name   string
	Boxes  int
	Slopes int
}

// Factory builds a fresh scene. Each call returns its own collider slice.
type Factory func() scene.Scene

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]SceneInfo)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Panics if a scene with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", id))
	}

	factories[id] = f

	s := f()
	boxes, slopes := s.Counts()
	infos[id] = SceneInfo{ID: id, Name: s.Name, Boxes: boxes, Slopes: slopes}
}

// List returns information about all registered scenes, sorted by ID.
func List() []SceneInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SceneInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// IDs returns the registered scene IDs in sorted order.
func IDs() []string {
	list := List()
	ids := make([]string, len(list))
	for i, info := range list {
		ids[i] = info.ID
	}
	return ids
}

// Create builds a registered scene by ID.
func Create(id string) (scene.Scene, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return scene.Scene{}, fmt.Errorf("%w %q", ErrUnknownScene, id)
	}

	s := f()
	s.ID = id
	return s, nil
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// All builds every registered scene, then adds the scenes found under dir.
// A file scene replaces the builtin with the same ID. An empty dir adds nothing.
func All(dir string) ([]scene.Scene, error) {
	var scenes []scene.Scene
	for _, id := range IDs() {
		s, err := Create(id)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, s)
	}
	if dir == "" {
		return scenes, nil
	}

	files, err := scene.NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		i := slices.IndexFunc(scenes, func(s scene.Scene) bool { return s.ID == f.ID })
		if i >= 0 {
			scenes[i] = f
			continue
		}
		scenes = append(scenes, f)
	}
	return scenes, nil
}
