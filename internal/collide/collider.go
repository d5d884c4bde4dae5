package collide

import "github.com/vovakirdan/tui-shapecast/internal/geom"

// Collider is a static obstacle. The set of implementations is closed:
// BoxCollider and SlopeCollider.
type Collider interface {
	// BoundingBox returns the obstacle's axis-aligned bounds for broad phase.
	BoundingBox() geom.Box

	// Kind returns "box" or "slope".
	Kind() string

	collider()
}

// BoxCollider is a solid axis-aligned box.
type BoxCollider struct {
	Box geom.Box
}

// SlopeCollider is a solid right triangle.
type SlopeCollider struct {
	Slope Slope
}

// NewBoxCollider wraps a box as a collider.
func NewBoxCollider(b geom.Box) BoxCollider {
	return BoxCollider{Box: b}
}

// NewSlopeCollider wraps a slope as a collider.
func NewSlopeCollider(b geom.Box, facing Orientation) SlopeCollider {
	return SlopeCollider{Slope: Slope{Box: b, Facing: facing}}
}

func (c BoxCollider) BoundingBox() geom.Box   { return c.Box }
func (c SlopeCollider) BoundingBox() geom.Box { return c.Slope.BoundingBox() }

func (BoxCollider) Kind() string   { return "box" }
func (SlopeCollider) Kind() string { return "slope" }

func (BoxCollider) collider()   {}
func (SlopeCollider) collider() {}

// Rotate returns a copy of c with slope orientations advanced by one step.
// Box colliders are returned unchanged.
func Rotate(c Collider) Collider {
	if s, ok := c.(SlopeCollider); ok {
		s.Slope.Facing = s.Slope.Facing.Next()
		return s
	}
	return c
}
