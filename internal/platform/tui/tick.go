// Package tui provides the Bubble Tea host for Sacrifice Runner.
// It handles the terminal loop, input mapping, the scoreboard and remote
// play over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultTickRate = 60

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
