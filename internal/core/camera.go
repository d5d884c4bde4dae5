package core

import (
	"math"

	"github.com/vovakirdan/tui-shapecast/internal/geom"
)

// Camera maps y-up world coordinates onto a y-down grid of terminal cells.
// The visible world spans HalfHeight units above and below Center; the
// horizontal span follows from the screen shape and CellAspect.
type Camera struct {
	Center     geom.Vec2
	HalfHeight float64
	CellAspect float64 // Cell height over cell width, about 2 for most fonts
	Width      int     // Screen columns
	Height     int     // Screen rows
}

// NewCamera creates a camera centred on the origin.
func NewCamera(halfHeight, cellAspect float64, width, height int) Camera {
	return Camera{
		HalfHeight: halfHeight,
		CellAspect: cellAspect,
		Width:      width,
		Height:     height,
	}
}

// Scale returns cells per world unit along x and y.
func (c Camera) Scale() (sx, sy float64) {
	if c.HalfHeight <= 0 || c.Height <= 0 {
		return 1, 1
	}
	sy = float64(c.Height) / (2 * c.HalfHeight)
	aspect := c.CellAspect
	if aspect <= 0 {
		aspect = 1
	}
	return sy * aspect, sy
}

// HalfWidth returns the visible world half extent along x.
func (c Camera) HalfWidth() float64 {
	sx, _ := c.Scale()
	return float64(c.Width) / (2 * sx)
}

// View returns the visible world region.
func (c Camera) View() geom.Box {
	half := geom.V(c.HalfWidth(), c.HalfHeight)
	return geom.Box{Min: c.Center.Sub(half), Max: c.Center.Add(half)}
}

// ToCell returns the cell containing world point p. The result may lie
// outside the screen.
func (c Camera) ToCell(p geom.Vec2) (x, y int) {
	sx, sy := c.Scale()
	d := p.Sub(c.Center)
	fx := float64(c.Width)/2 + d.X()*sx
	fy := float64(c.Height)/2 - d.Y()*sy
	return int(math.Floor(fx)), int(math.Floor(fy))
}

// ToWorld returns the world point at the centre of cell (x, y).
func (c Camera) ToWorld(x, y int) geom.Vec2 {
	sx, sy := c.Scale()
	wx := (float64(x) + 0.5 - float64(c.Width)/2) / sx
	wy := (float64(c.Height)/2 - float64(y) - 0.5) / sy
	return c.Center.Add(geom.V(wx, wy))
}

// BoxRect returns the cells covered by a world box.
func (c Camera) BoxRect(b geom.Box) Rect {
	x0, y0 := c.ToCell(geom.V(b.Min.X(), b.Max.Y()))
	x1, y1 := c.ToCell(geom.V(b.Max.X(), b.Min.Y()))
	return RectFromCorners(x0, y0, x1, y1)
}

// DrawSegment draws a world segment onto the screen.
func (c Camera) DrawSegment(s *Screen, seg geom.Segment, r rune, col Color) {
	x0, y0 := c.ToCell(seg.Start)
	x1, y1 := c.ToCell(seg.End)
	s.DrawLine(x0, y0, x1, y1, r, col)
}
