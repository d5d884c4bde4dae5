// Package builtin registers the scenes that ship with the binary.
// Import it for side effects.
package builtin

import (
	"github.com/vovakirdan/tui-shapecast/internal/collide"
	"github.com/vovakirdan/tui-shapecast/internal/geom"
	"github.com/vovakirdan/tui-shapecast/internal/registry"
	"github.com/vovakirdan/tui-shapecast/internal/scene"
)

// DefaultID is the scene used when none is requested.
const DefaultID = "demo"

func init() {
	registry.Register("demo", Demo)
	registry.Register("ramps", Ramps)
	registry.Register("corridor", Corridor)
}

// Demo is a ceiling block above a rotating slope.
func Demo() scene.Scene {
	return scene.Scene{
		ID:   "demo",
		Name: "Box and slope",
		Colliders: []collide.Collider{
			collide.NewBoxCollider(geom.NewBox(-4, 3, 4, 6)),
			collide.NewSlopeCollider(geom.NewBox(-3, -6, 3, -3), collide.FacingLD),
		},
	}
}

// Ramps is a floor with a slope of every orientation.
func Ramps() scene.Scene {
	return scene.Scene{
		ID:   "ramps",
		Name: "Four ramps",
		Colliders: []collide.Collider{
			collide.NewBoxCollider(geom.NewBox(-14, -8, 14, -7)),
			collide.NewSlopeCollider(geom.NewBox(-12, -7, -8, -4), collide.FacingLU),
			collide.NewSlopeCollider(geom.NewBox(8, -7, 12, -4), collide.FacingRU),
			collide.NewSlopeCollider(geom.NewBox(-12, 4, -8, 7), collide.FacingLD),
			collide.NewSlopeCollider(geom.NewBox(8, 4, 12, 7), collide.FacingRD),
			collide.NewBoxCollider(geom.NewBox(-14, 7, 14, 8)),
		},
	}
}

// Corridor is a narrow passage with a pinch point in the middle.
func Corridor() scene.Scene {
	return scene.Scene{
		ID:   "corridor",
		Name: "Corridor",
		Colliders: []collide.Collider{
			collide.NewBoxCollider(geom.NewBox(-15, 2, 15, 3)),
			collide.NewBoxCollider(geom.NewBox(-15, -3, 15, -2)),
			collide.NewSlopeCollider(geom.NewBox(-2, 0.5, 0, 2), collide.FacingLD),
			collide.NewSlopeCollider(geom.NewBox(0, 0.5, 2, 2), collide.FacingRD),
			collide.NewSlopeCollider(geom.NewBox(-2, -2, 0, -0.5), collide.FacingLU),
			collide.NewSlopeCollider(geom.NewBox(0, -2, 2, -0.5), collide.FacingRU),
		},
	}
}
