// Package sweep moves a box through a set of static colliders by running a
// shapecast against each one and keeping the nearest contact.
package sweep

import (
	"sort"

	"github.com/vovakirdan/tui-shapecast/internal/collide"
	"github.com/vovakirdan/tui-shapecast/internal/geom"
)

// Result is the outcome of resolving one move.
type Result struct {
	Hit    collide.Hit
	HasHit bool
	Index  int       // Collider index of the hit, -1 when nothing was touched
	Delta  geom.Vec2 // Requested displacement
	Travel geom.Vec2 // Displacement actually covered before contact
	Start  geom.Box  // Box before moving
	Stop   geom.Box  // Box at the point of contact (or at End if no hit)
	End    geom.Box  // Box at the full, unobstructed displacement
}

// Resolve casts moving along delta through every collider in order.
// Each hit shortens the remaining displacement so later colliders only count
// if they are reached first.
func Resolve(moving geom.Box, colliders []collide.Collider, delta geom.Vec2) Result {
	res := Result{
		Index:  -1,
		Delta:  delta,
		Travel: delta,
		Start:  moving,
		End:    moving.Translate(delta),
	}

	dir := geom.Direction(delta)
	for i, c := range colliders {
		hit, ok := collide.Subshapecast(moving, c, res.Travel)
		if !ok {
			continue
		}
		res.Travel = dir.Mul(hit.Distance)
		res.Hit = hit
		res.HasHit = true
		res.Index = i
	}

	res.Stop = moving.Translate(res.Travel)
	return res
}

// Contact is a single collider's hit, as reported by ResolveAll.
type Contact struct {
	Index    int
	Collider collide.Collider
	Hit      collide.Hit
}

// ResolveAll casts moving against each collider independently along the full
// delta and returns every contact, nearest first. Ties keep collider order.
func ResolveAll(moving geom.Box, colliders []collide.Collider, delta geom.Vec2) []Contact {
	var contacts []Contact
	for i, c := range colliders {
		if hit, ok := collide.Subshapecast(moving, c, delta); ok {
			contacts = append(contacts, Contact{Index: i, Collider: c, Hit: hit})
		}
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].Hit.Distance < contacts[j].Hit.Distance
	})
	return contacts
}
