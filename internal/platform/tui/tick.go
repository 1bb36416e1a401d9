// Package tui runs games in a terminal with Bubble Tea, locally or over SSH.
// It owns the clock, maps keys to actions, draws screens and saves scores.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step of the game model with the matching
// generation.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

var generations atomic.Uint64

// nextGen returns a fresh tick generation. A model only steps on its own
// ticks, so a tick still in flight from a finished game is dropped.
func nextGen() uint64 {
	return generations.Add(1)
}

// tickCmd schedules the next TickMsg at tickRate per second.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
