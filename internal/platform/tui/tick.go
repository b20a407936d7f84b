// Package tui provides the Bubble Tea integration for tilewalk.
// It handles the terminal UI loop, input mapping, and stage orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// loopSeq numbers frame loops so a stale tick from a finished stage
// never drives a newer one.
var loopSeq atomic.Uint64

// TickMsg is sent to trigger one simulation frame.
type TickMsg struct {
	Time time.Time
	loop uint64
}

// tickCmd schedules the next frame of loop after interval.
func tickCmd(loop uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, loop: loop}
	})
}
