// Package tui provides the Bubble Tea board for pixelquest: the quest list,
// the artwork canvas and the gallery.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixelquest/internal/engine"
)

// bannerDuration is how long the level-up banner stays on screen.
const bannerDuration = 4 * time.Second

// bannerExpiredMsg is sent when the level-up banner should close.
type bannerExpiredMsg struct {
	level int
}

// bannerTimeout returns a command that closes the banner for level.
func bannerTimeout(level int) tea.Cmd {
	return tea.Tick(bannerDuration, func(time.Time) tea.Msg {
		return bannerExpiredMsg{level: level}
	})
}

// snapshotMsg carries a state change published by the engine.
type snapshotMsg engine.Snapshot

// waitForSnapshot blocks until the engine publishes a new snapshot.
func waitForSnapshot(ch <-chan engine.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return nil
		}
		return snapshotMsg(snap)
	}
}
