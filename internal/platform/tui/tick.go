// Package tui runs Shadow Taxi in a terminal through Bubble Tea. It drives
// the fixed-rate tick loop, maps keys to game input and hosts the menu,
// scoreboard and SSH front ends.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to advance the game by one frame.
type TickMsg time.Time

const defaultTickRate = 60

// frameInterval is the wall-clock length of one frame. Non-positive rates
// fall back to 60 fps.
func frameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
