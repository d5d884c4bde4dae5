package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// Loader reads scene files from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at root.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll walks Root and returns every scene that parses, sorted by ID.
// Files that fail to parse are skipped.
func (l *Loader) LoadAll() ([]Scene, error) {
	var scenes []Scene

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !slices.Contains(Extensions(), strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		s, err := l.LoadFile(path)
		if err != nil {
			return nil
		}
		scenes = append(scenes, s)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scene: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes, nil
}

// LoadFile parses a single scene file.
func (l *Loader) LoadFile(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: reading file %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return Scene{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	s.FilePath = path
	return s, nil
}

// LoadByID returns the scene with the given ID.
func (l *Loader) LoadByID(id string) (Scene, error) {
	scenes, err := l.LoadAll()
	if err != nil {
		return Scene{}, err
	}
	for _, s := range scenes {
		if s.ID == id {
			return s, nil
		}
	}
	return Scene{}, fmt.Errorf("scene: not found: %s", id)
}
