package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shapecast/internal/core"
	"github.com/vovakirdan/tui-shapecast/internal/demo"
	"github.com/vovakirdan/tui-shapecast/internal/scene"
	"github.com/vovakirdan/tui-shapecast/internal/scene/builtin"
	"github.com/vovakirdan/tui-shapecast/internal/storage"
)

type fakeRecorder struct {
	records []storage.CastRecord
	err     error
}

func (f *fakeRecorder) SaveCast(rec storage.CastRecord) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.records = append(f.records, rec)
	return int64(len(f.records)), nil
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	d, err := demo.New([]scene.Scene{builtin.Demo(), builtin.Ramps()}, demo.Options{})
	require.NoError(t, err)

	m := NewModel(d, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}, opts)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func mouse(x, y int, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: action}
}

// tickAfter feeds an event and then one tick so the demo sees it.
func tickAfter(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	m, _ = update(t, m, msg)
	m, _ = update(t, m, TickMsg{})
	return m
}

func TestModelCommitRecordsCast(t *testing.T) {
	rec := &fakeRecorder{}
	m := newTestModel(t, Options{Recorder: rec})

	m = tickAfter(t, m, mouse(38, 12, tea.MouseActionPress))
	require.Equal(t, demo.StateDrag, m.demo.State())

	m = tickAfter(t, m, mouse(42, 11, tea.MouseActionMotion))
	m = tickAfter(t, m, mouse(42, 11, tea.MouseActionRelease))
	require.Equal(t, demo.StateMove, m.demo.State())

	m = tickAfter(t, m, mouse(42, 2, tea.MouseActionMotion))
	m = tickAfter(t, m, mouse(42, 2, tea.MouseActionPress))
	assert.Equal(t, demo.StateStandby, m.demo.State())

	require.Len(t, rec.records, 1)
	got := rec.records[0]
	assert.Equal(t, "demo", got.Scene)
	assert.Equal(t, "tui", got.Source)
	assert.True(t, got.Hit(), "aimed straight up into the ceiling block")
	assert.Equal(t, "utd", got.HitType)
	assert.Empty(t, m.status)
}

func TestModelRecorderErrorShowsStatus(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	m := newTestModel(t, Options{Recorder: rec, Source: "ssh:bob"})

	m = tickAfter(t, m, mouse(38, 12, tea.MouseActionPress))
	m = tickAfter(t, m, mouse(42, 11, tea.MouseActionRelease))
	m = tickAfter(t, m, mouse(60, 11, tea.MouseActionPress))

	assert.Equal(t, demo.StateStandby, m.demo.State())
	assert.Contains(t, m.status, "disk full")
	assert.Contains(t, m.View(), "disk full")
}

func TestModelKeys(t *testing.T) {
	m := newTestModel(t, Options{})

	m = tickAfter(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "ramps", m.demo.Scene().ID)

	m = tickAfter(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.True(t, m.demo.ShowHelp())
	assert.True(t, m.help.ShowAll)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestModelViewFitsWindow(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	assert.Equal(t, 30, lipgloss.Height(view))
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 29, m.screen.Height(), "one row is left for the help bar")
	assert.Contains(t, view, "[demo]")
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"n", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}, core.ActionNextScene, false},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, core.ActionPrevScene, false},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionRotate, false},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.ActionToggleAuto, false},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionReset, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"z", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			assert.Equal(t, tc.action, action)
			assert.Equal(t, tc.quit, quit)
		})
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	f := core.NewInputFrame()

	km.MapMouseToFrame(tea.MouseMsg{X: 3, Y: 4, Button: tea.MouseButtonRight, Action: tea.MouseActionPress}, &f)
	assert.True(t, f.Pointer.Valid)
	assert.False(t, f.Pointer.Pressed, "only the left button presses")

	km.MapMouseToFrame(mouse(5, 6, tea.MouseActionPress), &f)
	km.MapMouseToFrame(tea.MouseMsg{X: 7, Y: 6, Button: tea.MouseButtonNone, Action: tea.MouseActionRelease}, &f)
	assert.Equal(t, core.Pointer{X: 7, Y: 6, Valid: true, Pressed: true, Released: true}, f.Pointer)

	f.Clear()
	assert.Equal(t, core.Pointer{X: 7, Y: 6, Valid: true}, f.Pointer)
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "hello", core.ColorRed)
	s.DrawText(6, 0, "world", core.ColorDarkGray)
	s.DrawText(0, 1, "plain", core.ColorDefault)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.Equal(t, 12, lipgloss.Width(l))
	}
	assert.Contains(t, lines[0], "hello")
	assert.Contains(t, lines[0], "world")
	assert.Contains(t, lines[1], "plain")
}

func TestFormatHitStats(t *testing.T) {
	assert.Equal(t, "no casts", FormatHitStats(nil))
	assert.Equal(t, "none 2  rtl 3  slope 1", FormatHitStats(map[string]int{"rtl": 3, "slope": 1, "none": 2}))
}
