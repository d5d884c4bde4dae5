// Package collide implements continuous (swept) collision detection of a
// moving axis-aligned box against static boxes and right-triangle slopes.
//
// Every function in this package is pure: no state is kept between calls and
// results may be computed concurrently.
package collide

import (
	"fmt"

	"github.com/vovakirdan/tui-shapecast/internal/geom"
)

// HitType classifies which surface a shapecast touched.
// Directional names describe the motion that was blocked: RtL is a hit on
// an obstacle's left face by a box travelling to the right.
type HitType int

const (
	HitLtR      HitType = iota // Moving left, blocked by a right face
	HitRtL                     // Moving right, blocked by a left face
	HitUtD                     // Moving up, blocked by a bottom face
	HitDtU                     // Moving down, blocked by a top face
	HitSlope                   // Touched a slope's hypotenuse
	HitInside                  // Already overlapping at the start of the move
)

// hitNormals is indexed by HitType. Slope normals are computed per slope.
var hitNormals = [...]geom.Vec2{
	HitLtR:    geom.Right,
	HitRtL:    geom.Left,
	HitUtD:    geom.Down,
	HitDtU:    geom.Up,
	HitSlope:  geom.Zero,
	HitInside: geom.Zero,
}

// Normal returns the fixed surface normal for a hit type.
func (h HitType) Normal() geom.Vec2 {
	if h < 0 || int(h) >= len(hitNormals) {
		return geom.Zero
	}
	return hitNormals[h]
}

// String returns the short name used in logs and storage.
func (h HitType) String() string {
	switch h {
	case HitLtR:
		return "ltr"
	case HitRtL:
		return "rtl"
	case HitUtD:
		return "utd"
	case HitDtU:
		return "dtu"
	case HitSlope:
		return "slope"
	case HitInside:
		return "inside"
	default:
		return fmt.Sprintf("HitType(%d)", int(h))
	}
}

// ParseHitType is the inverse of HitType.String.
func ParseHitType(s string) (HitType, bool) {
	for h := HitLtR; h <= HitInside; h++ {
		if h.String() == s {
			return h, true
		}
	}
	return 0, false
}

// Hit describes the first contact of a shapecast.
type Hit struct {
	Type     HitType
	Normal   geom.Vec2 // Unit normal pointing away from the obstacle; zero for HitInside
	Distance float64   // Travel along the displacement before contact
}
