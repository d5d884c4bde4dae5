package collide

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-shapecast/internal/geom"
)

// Orientation names the direction a slope's hypotenuse faces.
// The solid right-angle corner sits opposite to it.
type Orientation int

const (
	FacingLU Orientation = iota // Upper-left: hypotenuse LL -> UR, solid lower-right
	FacingRU                    // Upper-right: hypotenuse LR -> UL, solid lower-left
	FacingRD                    // Lower-right: hypotenuse LL -> UR, solid upper-left
	FacingLD                    // Lower-left: hypotenuse LR -> UL, solid upper-right
)

// Orientations lists every orientation in rotation order.
var Orientations = []Orientation{FacingLU, FacingRU, FacingRD, FacingLD}

// Next returns the following orientation, rotating clockwise.
func (o Orientation) Next() Orientation {
	switch o {
	case FacingLU:
		return FacingRU
	case FacingRU:
		return FacingRD
	case FacingRD:
		return FacingLD
	default:
		return FacingLU
	}
}

func (o Orientation) String() string {
	switch o {
	case FacingLU:
		return "lu"
	case FacingRU:
		return "ru"
	case FacingRD:
		return "rd"
	case FacingLD:
		return "ld"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation accepts "lu", "ru", "rd" or "ld" in any case.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lu":
		return FacingLU, nil
	case "ru":
		return FacingRU, nil
	case "rd":
		return FacingRD, nil
	case "ld":
		return FacingLD, nil
	}
	return 0, fmt.Errorf("collide: unknown slope orientation %q", s)
}

// Slope is a right triangle filling Box with one diagonal corner cut away.
type Slope struct {
	Box    geom.Box
	Facing Orientation
}

// BoundingBox returns the box the triangle is inscribed in.
func (s Slope) BoundingBox() geom.Box {
	return s.Box
}

// StraightHits returns the vertical and horizontal hit types that land on the
// triangle's flat faces.
func (s Slope) StraightHits() (HitType, HitType) {
	switch s.Facing {
	case FacingLU:
		return HitUtD, HitLtR
	case FacingRU:
		return HitUtD, HitRtL
	case FacingRD:
		return HitDtU, HitRtL
	default:
		return HitDtU, HitLtR
	}
}

// Hypotenuse returns the diagonal cut as a segment.
func (s Slope) Hypotenuse() geom.Segment {
	switch s.Facing {
	case FacingLU, FacingRD:
		return geom.Segment{Start: s.Box.LowerLeft(), End: s.Box.UpperRight()}
	default:
		return geom.Segment{Start: s.Box.LowerRight(), End: s.Box.UpperLeft()}
	}
}

// Normal returns the outward unit normal of the hypotenuse.
func (s Slope) Normal() geom.Vec2 {
	var raw geom.Vec2
	switch s.Facing {
	case FacingLU:
		raw = geom.V(-1, 1)
	case FacingRU:
		raw = geom.V(1, 1)
	case FacingRD:
		raw = geom.V(1, -1)
	default:
		raw = geom.V(-1, -1)
	}
	raw = raw.Normalize()

	size := s.Box.Size()
	// Scale up first so thin boxes don't shrink the vector towards zero.
	scale := math.Max(geom.MaxAxis(size), 1.0)

	return geom.InvScale(raw.Mul(scale), size).Normalize()
}

// ContactCorner returns the single corner of a moving box that can reach the
// hypotenuse.
func (s Slope) ContactCorner(moving geom.Box) geom.Vec2 {
	switch s.Facing {
	case FacingLU:
		return moving.LowerRight()
	case FacingRU:
		return moving.LowerLeft()
	case FacingRD:
		return moving.UpperLeft()
	default:
		return moving.UpperRight()
	}
}

// TipOccluded reports whether a box touching the bounding box with the given
// hit type has slipped past the triangle's missing corner, so that the
// bounding-box contact stands and the hypotenuse is never reached.
func (s Slope) TipOccluded(hitBox geom.Box, hit HitType) bool {
	b := s.Box
	switch s.Facing {
	case FacingLU:
		switch hit {
		case HitRtL:
			return hitBox.Min.Y() < b.Min.Y()
		case HitDtU:
			return hitBox.Max.X() > b.Max.X()
		}
	case FacingRU:
		switch hit {
		case HitLtR:
			return hitBox.Min.Y() < b.Min.Y()
		case HitDtU:
			return hitBox.Min.X() < b.Min.X()
		}
	case FacingRD:
		switch hit {
		case HitLtR:
			return hitBox.Max.Y() > b.Max.Y()
		case HitUtD:
			return hitBox.Min.X() < b.Min.X()
		}
	case FacingLD:
		switch hit {
		case HitRtL:
			return hitBox.Max.Y() > b.Max.Y()
		case HitUtD:
			return hitBox.Max.X() > b.Max.X()
		}
	}
	return false
}

// Outline returns the three edges of the triangle.
func (s Slope) Outline() [3]geom.Segment {
	b := s.Box
	seg := func(a, c geom.Vec2) geom.Segment { return geom.Segment{Start: a, End: c} }

	switch s.Facing {
	case FacingLU:
		return [3]geom.Segment{
			seg(b.LowerLeft(), b.LowerRight()),
			seg(b.LowerRight(), b.UpperRight()),
			s.Hypotenuse(),
		}
	case FacingRU:
		return [3]geom.Segment{
			seg(b.LowerLeft(), b.LowerRight()),
			seg(b.LowerLeft(), b.UpperLeft()),
			s.Hypotenuse(),
		}
	case FacingRD:
		return [3]geom.Segment{
			seg(b.UpperLeft(), b.UpperRight()),
			seg(b.LowerLeft(), b.UpperLeft()),
			s.Hypotenuse(),
		}
	default:
		return [3]geom.Segment{
			seg(b.UpperLeft(), b.UpperRight()),
			seg(b.LowerRight(), b.UpperRight()),
			s.Hypotenuse(),
		}
	}
}
