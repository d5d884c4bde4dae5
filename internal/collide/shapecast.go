package collide

import (
	"math"

	"github.com/vovakirdan/tui-shapecast/internal/geom"
)

// Subshapecast sweeps moving along delta against a single static collider and
// reports the first contact, if any.
//
// Only one obstacle is considered. Callers resolving a move through several
// obstacles keep the smallest distance themselves (see package sweep).
func Subshapecast(moving geom.Box, st Collider, delta geom.Vec2) (Hit, bool) {
	broad := moving.Union(moving.Translate(delta))
	if !broad.Intersects(st.BoundingBox()) {
		return Hit{}, false
	}

	switch c := st.(type) {
	case BoxCollider:
		return aabbVsAABB(moving, c.Box, delta)
	case SlopeCollider:
		return aabbVsSlope(moving, c.Slope, delta)
	}
	return Hit{}, false
}

// aabbVsAABB is the swept slab test.
func aabbVsAABB(moving, st geom.Box, delta geom.Vec2) (Hit, bool) {
	if moving.Intersects(st) {
		return Hit{Type: HitInside, Normal: geom.Zero, Distance: 0}, true
	}

	var entryFact, exitFact [2]float64
	for axis := 0; axis < 2; axis++ {
		d := delta[axis]

		// Distance needed on this axis to begin and to end contact
		var entryDist, exitDist float64
		if d > 0 {
			entryDist = st.Min[axis] - moving.Max[axis]
		} else {
			entryDist = st.Max[axis] - moving.Min[axis]
		}
		if d <= 0 {
			exitDist = st.Min[axis] - moving.Max[axis]
		} else {
			exitDist = st.Max[axis] - moving.Min[axis]
		}

		// A still axis never starts or ends contact
		if d == 0 {
			entryFact[axis] = math.Inf(-1)
			exitFact[axis] = math.Inf(1)
			continue
		}
		entryFact[axis] = entryDist / d
		exitFact[axis] = exitDist / d
	}

	entry := math.Max(entryFact[0], entryFact[1]) // Both axes must overlap
	exit := math.Min(exitFact[0], exitFact[1])    // Either axis separating ends contact

	if entry < 0 || entry > 1 || exit <= entry {
		return Hit{}, false
	}

	var ht HitType
	if entryFact[0] > entryFact[1] {
		if delta.X() > 0 {
			ht = HitRtL
		} else {
			ht = HitLtR
		}
	} else {
		if delta.Y() > 0 {
			ht = HitUtD
		} else {
			ht = HitDtU
		}
	}

	return Hit{
		Type:     ht,
		Normal:   ht.Normal(),
		Distance: delta.Len() * entry,
	}, true
}

// aabbVsSlope refines a bounding-box hit against the slope's hypotenuse.
func aabbVsSlope(moving geom.Box, st Slope, delta geom.Vec2) (Hit, bool) {
	sub, ok := aabbVsAABB(moving, st.Box, delta)
	if !ok {
		return Hit{}, false
	}

	// Flat faces are real faces of the triangle
	a, b := st.StraightHits()
	if sub.Type == a || sub.Type == b {
		return sub, true
	}

	// Passed beyond the cut corner without reaching the hypotenuse
	atContact := moving.Translate(geom.Direction(delta).Mul(sub.Distance))
	if st.TipOccluded(atContact, sub.Type) {
		return sub, true
	}

	start := st.ContactCorner(moving)
	path := geom.Segment{Start: start, End: start.Add(delta)}

	p, ok := path.Intersection(st.Hypotenuse())
	if !ok {
		return Hit{}, false
	}

	return Hit{
		Type:     HitSlope,
		Normal:   st.Normal(),
		Distance: p.Sub(start).Len(),
	}, true
}
