package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one game simulation tick.
type TickMsg time.Time

// tickCmd schedules tick messages at the given rate. The scheduler is the
// frame driver: while it runs, Step fires once per interval; stopping it
// pauses the game without touching any state, and resuming continues from
// the exact accumulated counters.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
