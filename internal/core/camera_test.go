package core

import (
	"testing"

	"github.com/vovakirdan/tui-shapecast/internal/geom"
)

func TestCameraToCell(t *testing.T) {
	cam := NewCamera(10, 2, 80, 20)

	tests := []struct {
		name string
		p    geom.Vec2
		x, y int
	}{
		{"origin is the screen centre", geom.V(0, 0), 40, 10},
		{"up is toward row zero", geom.V(0, 1), 40, 9},
		{"one unit right is two columns", geom.V(1, 0), 42, 10},
		{"top left corner", geom.V(-20, 10), 0, 0},
		{"off screen", geom.V(30, 0), 100, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := cam.ToCell(tc.p)
			if x != tc.x || y != tc.y {
				t.Errorf("ToCell(%v) = (%d, %d), expected (%d, %d)", tc.p, x, y, tc.x, tc.y)
			}
		})
	}
}

func TestCameraRoundTrip(t *testing.T) {
	cam := NewCamera(7.5, 2.1, 73, 19)
	cam.Center = geom.V(3, -2)

	for y := 0; y < cam.Height; y++ {
		for x := 0; x < cam.Width; x++ {
			gx, gy := cam.ToCell(cam.ToWorld(x, y))
			if gx != x || gy != y {
				t.Fatalf("cell (%d, %d) maps back to (%d, %d)", x, y, gx, gy)
			}
		}
	}
}

func TestCameraView(t *testing.T) {
	cam := NewCamera(10, 2, 80, 20)

	if hw := cam.HalfWidth(); hw != 20 {
		t.Errorf("HalfWidth() = %v, expected 20", hw)
	}
	if v := cam.View(); v != geom.NewBox(-20, -10, 20, 10) {
		t.Errorf("View() = %v", v)
	}

	r := cam.BoxRect(geom.NewBox(-1, -1, 1, 1))
	if r != NewRect(38, 9, 5, 3) {
		t.Errorf("BoxRect() = %+v", r)
	}
}

func TestCameraDegenerate(t *testing.T) {
	// A zero-sized camera must not divide by zero
	cam := NewCamera(0, 0, 0, 0)
	sx, sy := cam.Scale()
	if sx != 1 || sy != 1 {
		t.Errorf("Scale() = (%v, %v), expected (1, 1)", sx, sy)
	}
}

func TestCameraDrawSegment(t *testing.T) {
	cam := NewCamera(10, 2, 80, 20)
	s := NewScreen(80, 20)
	cam.DrawSegment(s, geom.Segment{Start: geom.V(-2, 0), End: geom.V(2, 0)}, '=', ColorYellow)

	for x := 36; x <= 44; x++ {
		if s.Get(x, 10) != '=' {
			t.Errorf("expected '=' at (%d, 10)", x)
		}
	}
	if s.GetCell(40, 10).Color != ColorYellow {
		t.Error("segment should be colored")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRotate)
	f.MoveTo(4, 7)
	f.Pointer.Pressed = true

	if !f.Has(ActionRotate) || f.Has(ActionQuit) {
		t.Error("Has() returned the wrong actions")
	}

	c := f.Clone()
	f.Clear()

	if f.Has(ActionRotate) || f.Pointer.Pressed {
		t.Error("Clear should drop actions and button edges")
	}
	if !f.Pointer.Valid || f.Pointer.X != 4 || f.Pointer.Y != 7 {
		t.Error("Clear should keep the pointer position")
	}
	if !c.Has(ActionRotate) || !c.Pointer.Pressed {
		t.Error("Clone should be independent of its source")
	}

	var zero InputFrame
	if zero.Has(ActionHelp) {
		t.Error("zero frame has no actions")
	}
	zero.Set(ActionHelp)
	if !zero.Has(ActionHelp) {
		t.Error("Set on a zero frame should work")
	}
	if ActionToggleAuto.String() != "ToggleAuto" || Action(99).String() != "Unknown" {
		t.Error("Action names are wrong")
	}
}
