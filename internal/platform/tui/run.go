package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixelquest/internal/engine"
)

// Run starts the interactive board for eng. width and height seed the layout
// until the terminal reports its real size.
func Run(eng *engine.Engine, logger *log.Logger, width, height int) error {
	model := NewModel(eng, logger)
	defer model.Close()

	if width > 0 && height > 0 {
		updated, _ := model.Update(tea.WindowSizeMsg{Width: width, Height: height})
		if m, ok := updated.(Model); ok {
			model = m
		}
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
