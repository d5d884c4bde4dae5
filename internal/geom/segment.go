package geom

// Segment is a line segment between two points.
type Segment struct {
	Start, End Vec2
}

// Delta returns End - Start.
func (s Segment) Delta() Vec2 {
	return s.End.Sub(s.Start)
}

// Intersection returns the point where two segments cross.
// Parallel and collinear segments never intersect.
func (s Segment) Intersection(other Segment) (Vec2, bool) {
	sd := s.Delta()
	od := other.Delta()

	b := od[0]*sd[1] - od[1]*sd[0]
	if b == 0 {
		return Vec2{}, false
	}

	offX := other.Start[0] - s.Start[0]
	offY := other.Start[1] - s.Start[1]

	alpha := (od[0]*offY - od[1]*offX) / b
	beta := (sd[0]*offY - sd[1]*offX) / b

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return Vec2{}, false
	}

	return s.Start.Add(sd.Mul(alpha)), true
}
