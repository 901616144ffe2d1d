package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixelquest/internal/catalog"
	"github.com/vovakirdan/pixelquest/internal/reveal"
)

const (
	revealedCell = "██"
	hiddenCell   = "░░"
)

// cellColor picks a palette entry for a cell. The pattern is deterministic
// per artwork so a picture looks the same every time it is drawn.
func cellColor(palette []lipgloss.Color, artworkID, row, col int) lipgloss.Color {
	band := (row/3 + col/4 + artworkID*7 + (row*col)%5) % len(palette)
	return palette[band]
}

// RenderCanvas draws the 25x25 grid for an artwork. Revealed cells are tinted
// from the artwork's period palette, hidden cells are dimmed.
// Adjacent cells with the same color share one styled run.
func RenderCanvas(art catalog.Artwork, mask reveal.Mask, theme Theme) string {
	palette := paletteFor(art.Period)

	var sb strings.Builder
	sb.Grow(reveal.TotalPixels*len(revealedCell)*2 + reveal.GridSize)

	for row := 0; row < reveal.GridSize; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}

		col := 0
		for col < reveal.GridSize {
			shown := mask.Has(reveal.Index(row, col))
			var color lipgloss.Color
			if shown {
				color = cellColor(palette, art.ID, row, col)
			}

			var run strings.Builder
			for col < reveal.GridSize {
				s := mask.Has(reveal.Index(row, col))
				if s != shown {
					break
				}
				if s && cellColor(palette, art.ID, row, col) != color {
					break
				}
				if s {
					run.WriteString(revealedCell)
				} else {
					run.WriteString(hiddenCell)
				}
				col++
			}

			if shown {
				sb.WriteString(lipgloss.NewStyle().Foreground(color).Render(run.String()))
			} else {
				sb.WriteString(theme.HiddenCell.Render(run.String()))
			}
		}
	}
	return sb.String()
}

// RenderBar draws a horizontal progress bar of width cells.
func RenderBar(percent, width int, fill, empty lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return fill.Render(strings.Repeat("█", filled)) + empty.Render(strings.Repeat("░", width-filled))
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
