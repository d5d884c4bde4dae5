package geom

// Box is an axis-aligned bounding box.
// Callers are expected to keep Min <= Max on both axes; nothing here checks it.
type Box struct {
	Min, Max Vec2
}

// NewBox creates a box from its minimum and maximum corners.
func NewBox(minX, minY, maxX, maxY float64) Box {
	return Box{Min: Vec2{minX, minY}, Max: Vec2{maxX, maxY}}
}

// BoxFromCorners builds a canonical box from two arbitrary opposite corners.
func BoxFromCorners(a, b Vec2) Box {
	return Box{Min: MinVec(a, b), Max: MaxVec(a, b)}
}

// LowerLeft returns the (min.x, min.y) corner.
func (b Box) LowerLeft() Vec2 {
	return b.Min
}

// LowerRight returns the (max.x, min.y) corner.
func (b Box) LowerRight() Vec2 {
	return Vec2{b.Max[0], b.Min[1]}
}

// UpperLeft returns the (min.x, max.y) corner.
func (b Box) UpperLeft() Vec2 {
	return Vec2{b.Min[0], b.Max[1]}
}

// UpperRight returns the (max.x, max.y) corner.
func (b Box) UpperRight() Vec2 {
	return b.Max
}

// Corners returns the four corners in outline order: LL, LR, UR, UL.
func (b Box) Corners() [4]Vec2 {
	return [4]Vec2{b.LowerLeft(), b.LowerRight(), b.UpperRight(), b.UpperLeft()}
}

// Edges returns the four sides of the box as segments.
func (b Box) Edges() [4]Segment {
	c := b.Corners()
	return [4]Segment{
		{Start: c[0], End: c[1]},
		{Start: c[1], End: c[2]},
		{Start: c[2], End: c[3]},
		{Start: c[3], End: c[0]},
	}
}

// Center returns the midpoint of the box.
func (b Box) Center() Vec2 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the width and height of the box.
func (b Box) Size() Vec2 {
	return b.Max.Sub(b.Min)
}

// Intersects reports whether both boxes overlap with positive area.
// The test is strict: boxes that only share an edge or a corner do not intersect.
func (b Box) Intersects(other Box) bool {
	return b.Min[0] < other.Max[0] &&
		b.Max[0] > other.Min[0] &&
		b.Min[1] < other.Max[1] &&
		b.Max[1] > other.Min[1]
}

// Union returns the smallest box containing both boxes.
func (b Box) Union(other Box) Box {
	return Box{Min: MinVec(b.Min, other.Min), Max: MaxVec(b.Max, other.Max)}
}

// Translate returns the box shifted by v.
func (b Box) Translate(v Vec2) Box {
	return Box{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}
