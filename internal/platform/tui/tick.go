// Package tui provides the Bubble Tea host for the refresh header.
// It handles the terminal UI loop, input mapping and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a header frame tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after one frame at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
