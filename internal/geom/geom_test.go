package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 15, 15),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 25, 10),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 15, 10, 25),
			expected: false,
		},
		{
			name:     "shared vertical edge",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 20, 10),
			expected: false,
		},
		{
			name:     "shared horizontal edge",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 10, 10, 20),
			expected: false,
		},
		{
			name:     "shared corner",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 10, 20, 20),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "sliver overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(9.999, 0, 20, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Intersects(tc.b))
			assert.Equal(t, tc.expected, tc.b.Intersects(tc.a), "reversed")
		})
	}
}

func TestBoxCorners(t *testing.T) {
	b := NewBox(1, 2, 4, 6)

	assert.Equal(t, V(1, 2), b.LowerLeft())
	assert.Equal(t, V(4, 2), b.LowerRight())
	assert.Equal(t, V(1, 6), b.UpperLeft())
	assert.Equal(t, V(4, 6), b.UpperRight())
	assert.Equal(t, V(2.5, 4), b.Center())
	assert.Equal(t, V(3, 4), b.Size())

	corners := b.Corners()
	assert.Equal(t, [4]Vec2{V(1, 2), V(4, 2), V(4, 6), V(1, 6)}, corners)

	edges := b.Edges()
	for i, e := range edges {
		assert.Equal(t, corners[i], e.Start)
		assert.Equal(t, corners[(i+1)%4], e.End)
	}
}

func TestBoxUnionTranslate(t *testing.T) {
	a := NewBox(0, 0, 1, 1)
	b := NewBox(3, -2, 4, 0.5)

	assert.Equal(t, NewBox(0, -2, 4, 1), a.Union(b))
	assert.Equal(t, a.Union(b), b.Union(a))
	assert.Equal(t, NewBox(2, -1, 3, 0), a.Translate(V(2, -1)))

	// Sweeping a box produces the union of its start and end
	swept := a.Union(a.Translate(V(-3, 2)))
	assert.Equal(t, NewBox(-3, 0, 1, 3), swept)
}

func TestBoxFromCorners(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
	}{
		{"already ordered", V(-1, -2), V(3, 4)},
		{"reversed", V(3, 4), V(-1, -2)},
		{"mixed", V(-1, 4), V(3, -2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, NewBox(-1, -2, 3, 4), BoxFromCorners(tc.a, tc.b))
		})
	}
}

func TestSegmentIntersection(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Segment
		hit   bool
		point Vec2
	}{
		{
			name:  "crossing diagonals",
			a:     Segment{Start: V(0, 0), End: V(2, 2)},
			b:     Segment{Start: V(0, 2), End: V(2, 0)},
			hit:   true,
			point: V(1, 1),
		},
		{
			name:  "touching at endpoint",
			a:     Segment{Start: V(0, 0), End: V(1, 0)},
			b:     Segment{Start: V(1, -1), End: V(1, 1)},
			hit:   true,
			point: V(1, 0),
		},
		{
			name: "parallel",
			a:    Segment{Start: V(0, 0), End: V(2, 0)},
			b:    Segment{Start: V(0, 1), End: V(2, 1)},
		},
		{
			name: "collinear overlap",
			a:    Segment{Start: V(0, 0), End: V(2, 0)},
			b:    Segment{Start: V(1, 0), End: V(3, 0)},
		},
		{
			name: "lines cross outside first segment",
			a:    Segment{Start: V(0, 0), End: V(0.5, 0.5)},
			b:    Segment{Start: V(0, 2), End: V(2, 0)},
		},
		{
			name: "lines cross outside second segment",
			a:    Segment{Start: V(0, 0), End: V(2, 2)},
			b:    Segment{Start: V(0, 2), End: V(0.5, 1.5)},
		},
		{
			name: "zero length segment",
			a:    Segment{Start: V(1, 1), End: V(1, 1)},
			b:    Segment{Start: V(0, 2), End: V(2, 0)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := tc.a.Intersection(tc.b)
			require.Equal(t, tc.hit, ok)
			if ok {
				assert.InDelta(t, tc.point.X(), p.X(), 1e-12)
				assert.InDelta(t, tc.point.Y(), p.Y(), 1e-12)
			}
		})
	}
}

func TestVecHelpers(t *testing.T) {
	assert.Equal(t, V(-1, 2), MinVec(V(-1, 5), V(3, 2)))
	assert.Equal(t, V(3, 5), MaxVec(V(-1, 5), V(3, 2)))
	assert.Equal(t, 5.0, MaxAxis(V(-1, 5)))
	assert.Equal(t, -1.0, MinAxis(V(-1, 5)))
	assert.Equal(t, V(2, -3), InvScale(V(4, 9), V(2, -3)))
	assert.Equal(t, Zero, Direction(Zero))

	d := Direction(V(3, 4))
	assert.InDelta(t, 0.6, d.X(), 1e-12)
	assert.InDelta(t, 0.8, d.Y(), 1e-12)
}
