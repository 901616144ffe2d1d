package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixelquest/internal/catalog"
	"github.com/vovakirdan/pixelquest/internal/engine"
)

// Gallery status labels.
const (
	StatusCollected  = "collected"
	StatusInProgress = "in progress"
	StatusAvailable  = "available"
	StatusLocked     = "locked"
)

// ArtworkStatus classifies an artwork for the gallery.
func ArtworkStatus(a catalog.Artwork, snap engine.Snapshot) string {
	switch {
	case snap.IsCollected(a.ID):
		return StatusCollected
	case a.ID == snap.Artwork.ID:
		return StatusInProgress
	case a.Level <= snap.Level:
		return StatusAvailable
	default:
		return StatusLocked
	}
}

// GalleryModel lists every artwork with its collection status.
type GalleryModel struct {
	artworks []catalog.Artwork
	snap     engine.Snapshot
	table    table.Model
	help     help.Model
	keys     GalleryKeyMap
	theme    Theme
	width    int
	height   int
}

// NewGalleryModel creates a gallery for the artworks in cat.
func NewGalleryModel(cat *catalog.Catalog, theme Theme, width, height int) GalleryModel {
	h := help.New()
	h.ShowAll = false

	m := GalleryModel{
		artworks: cat.All(),
		help:     h,
		keys:     DefaultGalleryKeyMap(),
		theme:    theme,
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *GalleryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Title", Width: 28},
		{Title: "Artist", Width: 20},
		{Title: "Year", Width: 5},
		{Title: "Lvl", Width: 4},
		{Title: "Status", Width: 12},
	}

	// Give spare width to the title column
	if extra := m.width - 4 - 84; extra > 0 {
		columns[1].Width += min(extra, 20)
	}

	height := m.height - 8
	if height < 5 {
		height = 5
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// SetSnapshot refreshes the rows from snap.
func (m *GalleryModel) SetSnapshot(snap engine.Snapshot) {
	m.snap = snap
	m.updateTableRows()
}

// updateTableRows updates the table with the current statuses.
func (m *GalleryModel) updateTableRows() {
	rows := make([]table.Row, len(m.artworks))
	for i, a := range m.artworks {
		title := a.Title
		artist := a.Artist
		if ArtworkStatus(a, m.snap) == StatusLocked {
			title = "???"
			artist = "???"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", a.ID),
			title,
			artist,
			fmt.Sprintf("%d", a.Year),
			fmt.Sprintf("%d", a.Level),
			ArtworkStatus(a, m.snap),
		}
	}
	m.table.SetRows(rows)
}

// Collected returns the number of collected artworks.
func (m GalleryModel) Collected() int {
	n := 0
	for _, a := range m.artworks {
		if m.snap.IsCollected(a.ID) {
			n++
		}
	}
	return n
}

// Update handles messages for the gallery. It reports back=true when the
// user leaves the gallery.
func (m GalleryModel) Update(msg tea.Msg) (GalleryModel, tea.Cmd, bool) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit, false
		case key.Matches(msg, m.keys.Back):
			return m, nil, true
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil, false
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd, false
}

// View renders the gallery.
func (m GalleryModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("GALLERY - %d/%d collected", m.Collected(), len(m.artworks))
	b.WriteString(m.theme.Title.Render(centerText(title, m.width)))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")

	if row := m.table.Cursor(); row >= 0 && row < len(m.artworks) {
		a := m.artworks[row]
		if ArtworkStatus(a, m.snap) != StatusLocked {
			b.WriteString(m.theme.Label.Render(fmt.Sprintf("%s, %s. %s", a.Period, a.Image, a.Description)))
		} else {
			b.WriteString(m.theme.Muted.Render(fmt.Sprintf("Unlocks at level %d", a.Level)))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.theme.Muted.Render(m.help.View(m.keys)))
	return b.String()
}
