// Package scene describes sets of static obstacles that a box can be swept
// through. Scenes come from YAML files on disk or from the builtin registry.
package scene

import (
	"github.com/vovakirdan/tui-shapecast/internal/collide"
	"github.com/vovakirdan/tui-shapecast/internal/geom"
)

// Scene is a named set of static colliders.
type Scene struct {
	ID        string
	Name      string
	Colliders []collide.Collider
	FilePath  string // Empty for builtin scenes
}

// Bounds returns the union of every collider's bounding box.
// An empty scene has a zero box.
func (s Scene) Bounds() geom.Box {
	if len(s.Colliders) == 0 {
		return geom.Box{}
	}
	b := s.Colliders[0].BoundingBox()
	for _, c := range s.Colliders[1:] {
		b = b.Union(c.BoundingBox())
	}
	return b
}

// Rotated returns a copy with every slope turned to its next facing.
func (s Scene) Rotated() Scene {
	out := s
	out.Colliders = make([]collide.Collider, len(s.Colliders))
	for i, c := range s.Colliders {
		out.Colliders[i] = collide.Rotate(c)
	}
	return out
}

// Counts returns how many boxes and slopes the scene holds.
func (s Scene) Counts() (boxes, slopes int) {
	for _, c := range s.Colliders {
		switch c.(type) {
		case collide.BoxCollider:
			boxes++
		case collide.SlopeCollider:
			slopes++
		}
	}
	return boxes, slopes
}
