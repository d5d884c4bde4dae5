// Package geom provides the 2D primitives used by the shapecast engine.
// World space is y-up: Up is +Y and Down is -Y.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a 2D vector or point in world space.
type Vec2 = mgl64.Vec2

// Unit axis vectors.
var (
	Zero  = Vec2{0, 0}
	Right = Vec2{1, 0}
	Left  = Vec2{-1, 0}
	Up    = Vec2{0, 1}
	Down  = Vec2{0, -1}
)

// V is shorthand for building a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{x, y}
}

// MinVec returns the componentwise minimum of a and b.
func MinVec(a, b Vec2) Vec2 {
	return Vec2{math.Min(a[0], b[0]), math.Min(a[1], b[1])}
}

// MaxVec returns the componentwise maximum of a and b.
func MaxVec(a, b Vec2) Vec2 {
	return Vec2{math.Max(a[0], b[0]), math.Max(a[1], b[1])}
}

// MaxAxis returns the larger of the two components.
func MaxAxis(v Vec2) float64 {
	return math.Max(v[0], v[1])
}

// MinAxis returns the smaller of the two components.
func MinAxis(v Vec2) float64 {
	return math.Min(v[0], v[1])
}

// InvScale divides v by s componentwise.
func InvScale(v, s Vec2) Vec2 {
	return Vec2{v[0] / s[0], v[1] / s[1]}
}

// Direction returns v normalized, or Zero for a zero-length vector.
func Direction(v Vec2) Vec2 {
	if v.Len() == 0 {
		return Zero
	}
	return v.Normalize()
}
