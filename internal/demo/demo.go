// Package demo is the interactive shapecast playground: drag out a box with
// the mouse, then aim it and watch where the sweep stops.
// It is pure logic; the platform feeds it input frames and draws its screen.
package demo

import (
	"fmt"

	"github.com/vovakirdan/tui-shapecast/internal/core"
	"github.com/vovakirdan/tui-shapecast/internal/geom"
	"github.com/vovakirdan/tui-shapecast/internal/scene"
	"github.com/vovakirdan/tui-shapecast/internal/sweep"
)

// State is the pointer interaction phase.
type State int

const (
	StateStandby State = iota // Waiting for a press to start a box
	StateDrag                 // Button held, box corner follows the pointer
	StateMove                 // Box fixed, the pointer aims the sweep
)

func (s State) String() string {
	switch s {
	case StateStandby:
		return "standby"
	case StateDrag:
		return "drag"
	case StateMove:
		return "move"
	default:
		return "unknown"
	}
}

// Cast is a finished sweep, produced when a press leaves the Move state.
type Cast struct {
	Scene  string
	Result sweep.Result
}

// StepResult is returned by Step after each tick.
type StepResult struct {
	Quit bool
	Cast *Cast // Non-nil on the tick a cast is committed
}

// Options tune the demo. Zero values are replaced with defaults by New.
type Options struct {
	RotateTicks int // Ticks between slope rotations, 0 disables rotation
	HalfHeight  float64
	CellAspect  float64
	Palette     Palette
}

// Demo holds the whole interactive state.
type Demo struct {
	scenes  []scene.Scene
	current int
	active  scene.Scene // Current scene with rotation applied

	state    State
	anchor   geom.Vec2 // Corner where the drag started
	box      geom.Box
	delta    geom.Vec2
	hasBox   bool
	pointer  geom.Vec2
	hasPtr   bool
	result   sweep.Result
	commits  int
	tick     int
	rotTicks int
	autoRot  bool
	showHelp bool

	cam     core.Camera
	palette Palette
}

// New creates a demo over the given scenes, starting with the first.
func New(scenes []scene.Scene, opts Options) (*Demo, error) {
	if len(scenes) == 0 {
		return nil, fmt.Errorf("demo: no scenes")
	}
	if opts.HalfHeight <= 0 {
		opts.HalfHeight = 10
	}
	if opts.CellAspect <= 0 {
		opts.CellAspect = 2
	}
	if opts.Palette == (Palette{}) {
		opts.Palette = DefaultPalette()
	}

	d := &Demo{
		scenes:   scenes,
		rotTicks: opts.RotateTicks,
		autoRot:  opts.RotateTicks > 0,
		palette:  opts.Palette,
	}
	d.cam = core.NewCamera(opts.HalfHeight, opts.CellAspect, 0, 0)
	d.selectScene(0)
	d.Reset(core.DefaultConfig())
	return d, nil
}

// Reset clears the box and adopts the given screen size.
func (d *Demo) Reset(cfg core.RuntimeConfig) {
	d.Resize(cfg.ScreenW, cfg.ScreenH)
	d.clearBox()
	d.tick = 0
}

// Resize adapts the camera to a new screen size.
func (d *Demo) Resize(w, h int) {
	d.cam.Width, d.cam.Height = w, h
}

// SelectScene switches to the scene with the given ID.
func (d *Demo) SelectScene(id string) error {
	for i, s := range d.scenes {
		if s.ID == id {
			d.selectScene(i)
			return nil
		}
	}
	return fmt.Errorf("demo: unknown scene %q", id)
}

func (d *Demo) selectScene(i int) {
	n := len(d.scenes)
	d.current = ((i % n) + n) % n
	d.active = d.scenes[d.current]
	d.tick = 0
	d.resolve()
}

func (d *Demo) clearBox() {
	d.state = StateStandby
	d.hasBox = false
	d.box = geom.Box{}
	d.delta = geom.Zero
	d.result = sweep.Result{Index: -1}
}

// Step advances the demo by one tick.
func (d *Demo) Step(in core.InputFrame) StepResult {
	var res StepResult

	if in.Has(core.ActionQuit) {
		res.Quit = true
		return res
	}
	d.processActions(in)

	d.tick++
	if d.autoRot && d.rotTicks > 0 && d.tick >= d.rotTicks {
		d.rotate()
	}

	if in.Pointer.Valid {
		d.pointer = d.cam.ToWorld(in.Pointer.X, in.Pointer.Y)
		d.hasPtr = true
	}

	if d.hasPtr {
		res.Cast = d.advance(in.Pointer)
	}
	d.resolve()
	if res.Cast != nil {
		res.Cast.Result = d.result
	}
	return res
}

func (d *Demo) processActions(in core.InputFrame) {
	switch {
	case in.Has(core.ActionNextScene):
		d.selectScene(d.current + 1)
	case in.Has(core.ActionPrevScene):
		d.selectScene(d.current - 1)
	}
	if in.Has(core.ActionRotate) {
		d.rotate()
	}
	if in.Has(core.ActionToggleAuto) && d.rotTicks > 0 {
		d.autoRot = !d.autoRot
		d.tick = 0
	}
	if in.Has(core.ActionReset) {
		d.clearBox()
	}
	if in.Has(core.ActionHelp) {
		d.showHelp = !d.showHelp
	}
}

func (d *Demo) rotate() {
	d.active = d.active.Rotated()
	d.tick = 0
}

// advance runs the press/drag/aim state machine for one tick.
func (d *Demo) advance(p core.Pointer) *Cast {
	switch d.state {
	case StateStandby:
		if p.Pressed {
			d.state = StateDrag
			d.anchor = d.pointer
			d.box = geom.Box{Min: d.pointer, Max: d.pointer}
			d.delta = geom.Zero
			d.hasBox = true
		}
	case StateDrag:
		d.box = geom.BoxFromCorners(d.anchor, d.pointer)
		if p.Released {
			d.state = StateMove
			d.delta = geom.Zero
		}
	case StateMove:
		d.delta = d.pointer.Sub(d.box.Max)
		if p.Pressed {
			d.state = StateStandby
			d.commits++
			return &Cast{Scene: d.active.ID}
		}
	}
	return nil
}

func (d *Demo) resolve() {
	if !d.hasBox {
		d.result = sweep.Result{Index: -1}
		return
	}
	d.result = sweep.Resolve(d.box, d.active.Colliders, d.delta)
}

// State returns the interaction phase.
func (d *Demo) State() State { return d.state }

// Scene returns the active scene with any rotation applied.
func (d *Demo) Scene() scene.Scene { return d.active }

// Scenes returns every scene the demo can cycle through.
func (d *Demo) Scenes() []scene.Scene { return d.scenes }

// Result returns the sweep for the current box and aim.
// HasBox is false when no box has been drawn yet.
func (d *Demo) Result() (res sweep.Result, hasBox bool) { return d.result, d.hasBox }

// Camera returns the current world-to-screen mapping.
func (d *Demo) Camera() core.Camera { return d.cam }

// ShowHelp reports whether the help overlay is toggled on.
func (d *Demo) ShowHelp() bool { return d.showHelp }

// AutoRotate reports whether slopes rotate on a timer.
func (d *Demo) AutoRotate() bool { return d.autoRot }

// Commits returns how many casts were committed since start.
func (d *Demo) Commits() int { return d.commits }

// Snapshot is a compact view of the demo for tests and debugging.
type Snapshot struct {
	Scene  string
	State  State
	Box    geom.Box
	Delta  geom.Vec2
	HasHit bool
	Tick   int
}

// Snapshot returns the current state.
func (d *Demo) Snapshot() Snapshot {
	return Snapshot{
		Scene:  d.active.ID,
		State:  d.state,
		Box:    d.box,
		Delta:  d.delta,
		HasHit: d.result.HasHit,
		Tick:   d.tick,
	}
}
