// Package tui provides the Bubble Tea integration for the shapecast demo.
// It runs the tick loop, maps keys and mouse events to input frames and
// serves the demo and the cast history over a terminal or SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a demo tick.
type TickMsg time.Time

// tickCmd returns a command that sends one TickMsg after a tick interval.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
