package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shapecast/internal/config"
	"github.com/vovakirdan/tui-shapecast/internal/core"
	"github.com/vovakirdan/tui-shapecast/internal/demo"
	"github.com/vovakirdan/tui-shapecast/internal/storage"
)

// CastRecorder stores committed casts. *storage.Store satisfies it.
type CastRecorder interface {
	SaveCast(rec storage.CastRecord) (int64, error)
}

// Options configure a Model beyond the demo itself.
type Options struct {
	Recorder CastRecorder // nil disables history
	Source   string       // Stored with each cast, e.g. "tui" or "ssh:alice"
	Logger   *log.Logger  // nil disables logging
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running the interactive demo.
type Model struct {
	demo     *demo.Demo
	screen   *core.Screen
	config   core.RuntimeConfig
	input    core.InputFrame
	keys     *KeyMapper
	help     help.Model
	opts     Options
	status   string // Last recording error or screenshot path
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given demo.
func NewModel(d *demo.Demo, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Source == "" {
		opts.Source = "tui"
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		demo:   d,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		input:  core.NewInputFrame(),
		keys:   NewKeyMapper(),
		help:   h,
		opts:   opts,
	}
}

// Init resets the demo to the terminal size and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.demo.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, &m.input)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.demo.Step(m.input)
	m.input.Clear()

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	if result.Cast != nil {
		m.record(*result.Cast)
	}

	m.help.ShowAll = m.demo.ShowHelp()
	return m, tickCmd(m.config.TickRate)
}

// record stores a committed cast. Failures are reported on the status line
// and the demo keeps running.
func (m *Model) record(c demo.Cast) {
	logger := m.opts.Logger
	if logger != nil {
		logger.Debug("cast committed", "scene", c.Scene, "hit", c.Result.HasHit, "collider", c.Result.Index)
	}
	if m.opts.Recorder == nil {
		return
	}

	rec := storage.NewCastRecord(c.Scene, m.opts.Source, c.Result)
	if _, err := m.opts.Recorder.SaveCast(rec); err != nil {
		m.status = "history: " + err.Error()
		if logger != nil {
			logger.Warn("could not record cast", "error", err)
		}
		return
	}
	m.status = ""
}

// saveScreenshot writes the current frame as plain text to
// ~/.shapecast/screenshots.
func (m *Model) saveScreenshot() {
	m.draw()

	base := config.UserDataDir()
	if base == "" {
		m.status = "screenshot: no home directory"
		return
	}
	dir := filepath.Join(base, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.status = "screenshot: " + err.Error()
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.demo.Scene().ID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.status = "screenshot: " + err.Error()
		return
	}
	m.status = "saved " + path
}

// footer is the help bar plus the status line, if any.
func (m Model) footer() string {
	footer := m.help.View(m.keys.Keys())
	if m.status != "" {
		footer = m.status + "\n" + footer
	}
	return statusStyle.Render(footer)
}

// draw renders the demo into the screen above the footer.
func (m Model) draw() {
	rows := m.config.ScreenH - lipgloss.Height(m.footer())
	m.screen.Resize(m.config.ScreenW, max(rows, 0))
	m.screen.Clear()
	m.demo.Render(m.screen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return strings.Join([]string{RenderScreen(m.screen), m.footer()}, "\n")
}

// Run starts the Bubble Tea program with the given demo.
func Run(d *demo.Demo, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(d, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Aiming follows the pointer with no button held
	)

	_, err := p.Run()
	return err
}
