package demo

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-shapecast/internal/collide"
	"github.com/vovakirdan/tui-shapecast/internal/core"
	"github.com/vovakirdan/tui-shapecast/internal/geom"
)

// Arrow length in world units. The hit normal is a unit vector which would
// be barely visible at terminal resolution.
const arrowLength = 2.0

// Render draws the scene, the box and its sweep into dst.
// The screen is assumed to be cleared.
func (d *Demo) Render(dst *core.Screen) {
	d.Resize(dst.Width(), dst.Height())
	cam := d.cam
	pal := d.palette

	for _, c := range d.active.Colliders {
		dst.DrawBox(cam.BoxRect(c.BoundingBox()), pal.Bounds)
		d.drawCollider(dst, c)
	}
	d.drawCross(dst, geom.Zero, '+', pal.Origin)

	if d.hasBox {
		d.drawSweep(dst)
	}
	if d.hasPtr {
		d.drawCross(dst, d.pointer, '✛', pal.Pointer)
	}
	d.renderHUD(dst)
}

func (d *Demo) drawCollider(dst *core.Screen, c collide.Collider) {
	switch c := c.(type) {
	case collide.BoxCollider:
		dst.DrawBox(d.cam.BoxRect(c.Box), d.palette.Shape)
	case collide.SlopeCollider:
		for _, seg := range c.Slope.Outline() {
			d.cam.DrawSegment(dst, seg, segmentRune(seg), d.palette.Shape)
		}
	}
}

func (d *Demo) drawSweep(dst *core.Screen) {
	res := d.result
	pal := d.palette

	dst.DrawBox(d.cam.BoxRect(res.Start), pal.Box)
	if !res.HasHit {
		d.connect(dst, res.Start, res.End, pal.Path)
		dst.DrawBox(d.cam.BoxRect(res.End), pal.Stop)
		return
	}

	d.connect(dst, res.Start, res.Stop, pal.Path)
	d.connect(dst, res.Stop, res.End, pal.Remainder)
	dst.DrawBox(d.cam.BoxRect(res.End), pal.Remainder)
	dst.DrawBox(d.cam.BoxRect(res.Stop), pal.Stop)

	n := res.Hit.Normal
	if n != geom.Zero {
		origin := res.Stop.Center()
		seg := geom.Segment{Start: origin, End: origin.Add(n.Mul(arrowLength))}
		d.cam.DrawSegment(dst, seg, segmentRune(seg), pal.Normal)
		x, y := d.cam.ToCell(seg.End)
		dst.SetColored(x, y, arrowRune(n), pal.Normal)
	}
}

// connect joins matching corners of two boxes.
func (d *Demo) connect(dst *core.Screen, from, to geom.Box, c core.Color) {
	if from == to {
		return
	}
	fc, tc := from.Corners(), to.Corners()
	for i := range fc {
		d.cam.DrawSegment(dst, geom.Segment{Start: fc[i], End: tc[i]}, '·', c)
	}
}

func (d *Demo) drawCross(dst *core.Screen, p geom.Vec2, r rune, c core.Color) {
	x, y := d.cam.ToCell(p)
	dst.SetColored(x, y, r, c)
}

func (d *Demo) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, d.active.Name+" ["+d.active.ID+"]", core.ColorBrightWhite)

	rot := "auto"
	if !d.autoRot {
		rot = "off"
	}
	dst.DrawText(1, 1, fmt.Sprintf("state: %s  rotate: %s  casts: %d", d.state, rot, d.commits), core.ColorGray)

	if !d.hasBox {
		dst.DrawText(1, 2, "press and drag to draw a box", core.ColorGray)
		return
	}
	res := d.result
	if res.HasHit {
		h := res.Hit
		dst.DrawText(1, 2, fmt.Sprintf("hit: %s  dist %.2f  normal (%.2f, %.2f)",
			h.Type, h.Distance, h.Normal.X(), h.Normal.Y()), d.palette.Stop)
	} else {
		dst.DrawText(1, 2, fmt.Sprintf("clear  travel %.2f", res.Travel.Len()), d.palette.Path)
	}
}

// segmentRune picks a line character that matches a segment's direction on
// screen. World y grows upward, screen rows grow downward.
func segmentRune(s geom.Segment) rune {
	dx, dy := s.Delta().X(), s.Delta().Y()
	switch {
	case math.Abs(dy) < 1e-12:
		return '─'
	case math.Abs(dx) < 1e-12:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╱'
	default:
		return '╲'
	}
}

// arrowRune chooses the arrowhead closest to direction n.
func arrowRune(n geom.Vec2) rune {
	arrows := [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}
	angle := math.Atan2(n.Y(), n.X())
	i := int(math.Round(angle/(math.Pi/4))) & 7
	return arrows[i]
}
