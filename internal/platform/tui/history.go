package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shapecast/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show scene list sidebar
	sidebarWidth       = 22  // Width of scene list sidebar
	maxCasts           = 200 // Max casts to load per scene
)

// allScenes is the sidebar entry that shows every scene.
const allScenes = ""

// HistoryStore is the read side of the cast history.
type HistoryStore interface {
	RecentCasts(limit int) ([]storage.CastRecord, error)
	CastsByScene(scene string, limit int) ([]storage.CastRecord, error)
	HitStats(scene string) (map[string]int, error)
	AllSceneStats() (map[string]*storage.SceneStats, error)
}

// HistoryKeyMap defines the key bindings for the history view.
type HistoryKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextScene key.Binding
	PrevScene key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextScene, k.PrevScene, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextScene, k.PrevScene},
		{k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextScene: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next scene"),
		),
		PrevScene: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev scene"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model browsing recorded casts.
type HistoryModel struct {
	store       HistoryStore
	scenes      []string // allScenes first, then scenes with casts
	counts      map[string]int
	cursor      int
	casts       []storage.CastRecord
	stats       map[string]int
	loadErr     error
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewHistoryModel creates a history browser starting at the given scene.
// An empty or unknown start shows every scene.
func NewHistoryModel(store HistoryStore, start string, width, height int) HistoryModel {
	m := HistoryModel{
		store:       store,
		keys:        DefaultHistoryKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.loadScenes()
	for i, s := range m.scenes {
		if s == start {
			m.cursor = i
		}
	}

	m.table = m.createTable()
	m.loadCasts()
	return m
}

func (m *HistoryModel) loadScenes() {
	m.scenes = []string{allScenes}
	m.counts = map[string]int{}

	all, err := m.store.AllSceneStats()
	if err != nil {
		m.loadErr = err
		return
	}
	for id, st := range all {
		m.scenes = append(m.scenes, id)
		m.counts[id] = st.Casts
		m.counts[allScenes] += st.Casts
	}
	sort.Strings(m.scenes[1:])
}

// createTable builds a table sized to the current window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Scene", Width: 10},
		{Title: "Hit", Width: 7},
		{Title: "Dist", Width: 7},
		{Title: "Normal", Width: 14},
		{Title: "When", Width: 12},
	}

	width := m.width - 4
	if m.showSidebar {
		width -= sidebarWidth + 3
	}
	// Give spare room to the scene column
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := width - used; spare > 0 {
		columns[1].Width += min(spare, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Scene returns the selected scene ID, empty for all scenes.
func (m HistoryModel) Scene() string {
	return m.scenes[m.cursor]
}

func (m *HistoryModel) loadCasts() {
	scene := m.Scene()
	var err error
	if scene == allScenes {
		m.casts, err = m.store.RecentCasts(maxCasts)
	} else {
		m.casts, err = m.store.CastsByScene(scene, maxCasts)
	}
	if err == nil {
		m.stats, err = m.store.HitStats(scene)
	}
	m.loadErr = err
	if err != nil {
		m.casts, m.stats = nil, nil
	}
	m.updateTableRows()
}

// CastRow formats one cast for tables and plain listings.
func CastRow(r storage.CastRecord) []string {
	hit, normal := "none", "-"
	if r.Hit() {
		hit = r.HitType
		normal = fmt.Sprintf("(%.2f, %.2f)", r.Normal.X(), r.Normal.Y())
	}
	return []string{
		fmt.Sprintf("%d", r.ID),
		r.Scene,
		hit,
		fmt.Sprintf("%.2f", r.Distance),
		normal,
		r.CreatedAt.Format("Jan 02 15:04"),
	}
}

func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.casts))
	for i, c := range m.casts {
		rows[i] = CastRow(c)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *HistoryModel) moveScene(step int) {
	n := len(m.scenes)
	m.cursor = ((m.cursor+step)%n + n) % n
	m.loadCasts()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextScene):
			m.moveScene(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevScene):
			m.moveScene(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func sceneLabel(id string) string {
	if id == allScenes {
		return "all scenes"
	}
	return id
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	title := fmt.Sprintf("CAST HISTORY - %s", sceneLabel(m.Scene()))
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	content := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", content))
	} else {
		b.WriteString(centerText(fmt.Sprintf("< %s >", sceneLabel(m.Scene())), m.width))
		b.WriteString("\n\n")
		b.WriteString(content)
	}

	b.WriteString("\n")
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(dim.Render(m.statsLine()))
	b.WriteString("\n")
	b.WriteString(dim.Render(m.help.View(m.keys)))

	return b.String()
}

func (m HistoryModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Scenes\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, id := range m.scenes {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := sceneLabel(id)
		maxLen := sidebarWidth - 12
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(fmt.Sprintf("%s%-*s %4d", cursor, maxLen, name, m.counts[id])))
		sidebar.WriteString("\n")
	}
	return sidebarStyle.Render(sidebar.String())
}

// statsLine summarises hit types for the selected scene.
func (m HistoryModel) statsLine() string {
	if m.loadErr != nil {
		return "error: " + m.loadErr.Error()
	}
	return FormatHitStats(m.stats)
}

// FormatHitStats renders counts as "rtl 3  slope 1  none 2", sorted by name.
func FormatHitStats(stats map[string]int) string {
	if len(stats) == 0 {
		return "no casts"
	}
	names := make([]string, 0, len(stats))
	for k := range stats {
		names = append(names, k)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, k := range names {
		parts[i] = fmt.Sprintf("%s %d", k, stats[k])
	}
	return strings.Join(parts, "  ")
}

func (m HistoryModel) renderTableContent() string {
	if len(m.casts) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No casts recorded yet.\nCommit a cast in the demo to start a history.")
	}
	return m.table.View()
}

// centerText pads s so it sits in the middle of a line of the given width.
func centerText(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

// RunHistory runs the history browser until the user quits.
func RunHistory(store HistoryStore, start string, width, height int) error {
	model := NewHistoryModel(store, start, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
