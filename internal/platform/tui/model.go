package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixelquest/internal/engine"
	"github.com/vovakirdan/pixelquest/internal/quest"
)

type viewMode int

const (
	modeList viewMode = iota
	modeForm
	modeGallery
)

const (
	listWidth = 44
	barWidth  = 30
)

// Model is the Bubble Tea model for the quest board.
type Model struct {
	eng         *engine.Engine
	snap        engine.Snapshot
	updates     chan engine.Snapshot
	unsubscribe func()
	logger      *log.Logger

	theme    Theme
	keys     BoardKeyMap
	formKeys FormKeyMap
	help     help.Model

	mode    viewMode
	cursor  int
	gallery GalleryModel

	// Add/edit form
	input          textinput.Model
	editingID      string
	formDifficulty quest.Difficulty
	formCategory   int

	status      string
	statusErr   bool
	bannerLevel int

	width    int
	height   int
	quitting bool
}

// NewModel creates a board bound to eng. Close must be called once the
// program exits to release the engine subscription.
func NewModel(eng *engine.Engine, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	updates := make(chan engine.Snapshot, 16)
	unsubscribe := eng.Subscribe(func(s engine.Snapshot) {
		for {
			select {
			case updates <- s:
				return
			default:
			}
			// Drop the oldest pending snapshot
			select {
			case <-updates:
			default:
			}
		}
	})

	input := textinput.New()
	input.Placeholder = "What needs doing?"
	input.CharLimit = 120
	input.Width = listWidth - 6

	h := help.New()
	h.ShowAll = false

	theme := DefaultTheme()
	return Model{
		eng:            eng,
		snap:           eng.Snapshot(),
		updates:        updates,
		unsubscribe:    unsubscribe,
		logger:         logger,
		theme:          theme,
		keys:           DefaultBoardKeyMap(),
		formKeys:       DefaultFormKeyMap(),
		help:           h,
		input:          input,
		formDifficulty: quest.DefaultDifficulty,
		gallery:        NewGalleryModel(eng.Catalog(), theme, 80, 24),
		width:          80,
		height:         24,
	}
}

// Close stops receiving engine updates.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init starts listening for engine updates.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForSnapshot(m.updates)}
	if m.snap.ShowLevelUp {
		cmds = append(cmds, bannerTimeout(m.snap.Level))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		var cmd tea.Cmd
		m.gallery, cmd, _ = m.gallery.Update(msg)
		return m, cmd

	case snapshotMsg:
		cmd := m.applySnapshot(engine.Snapshot(msg))
		return m, tea.Batch(waitForSnapshot(m.updates), cmd)

	case bannerExpiredMsg:
		if m.snap.ShowLevelUp && msg.level == m.snap.Level {
			m.eng.DismissLevelUp()
			m.eng.ClearNewUnlocks()
			cmd := m.applySnapshot(m.eng.Snapshot())
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.handleFormKey(msg)
		case modeGallery:
			var cmd tea.Cmd
			var back bool
			m.gallery, cmd, back = m.gallery.Update(msg)
			if back {
				m.mode = modeList
			}
			return m, cmd
		default:
			return m.handleListKey(msg)
		}
	}

	return m, nil
}

// applySnapshot stores snap and schedules the banner timeout on a new level.
func (m *Model) applySnapshot(snap engine.Snapshot) tea.Cmd {
	m.snap = snap
	if m.cursor >= len(snap.Quests) {
		m.cursor = max(len(snap.Quests)-1, 0)
	}
	m.gallery.SetSnapshot(snap)

	if snap.ShowLevelUp && m.bannerLevel != snap.Level {
		m.bannerLevel = snap.Level
		return bannerTimeout(snap.Level)
	}
	if !snap.ShowLevelUp {
		m.bannerLevel = 0
	}
	return nil
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
	m.logger.Warn("board action failed", "err", err)
}

// selected returns the quest under the cursor.
func (m Model) selected() (quest.Quest, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.Quests) {
		return quest.Quest{}, false
	}
	return m.snap.Quests[m.cursor], true
}

// handleListKey processes keys on the quest list.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.snap.Quests)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Add):
		m.openForm(quest.Quest{})
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		if q, ok := m.selected(); ok {
			m.openForm(q)
			return m, textinput.Blink
		}

	case key.Matches(msg, m.keys.Complete):
		q, ok := m.selected()
		if !ok {
			return m, nil
		}
		out, err := m.eng.CompleteQuest(q.ID, quest.StatusCompleted)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.setStatus(describeOutcome(out))
		cmd := m.applySnapshot(m.eng.Snapshot())
		return m, cmd

	case key.Matches(msg, m.keys.Cancel):
		q, ok := m.selected()
		if !ok {
			return m, nil
		}
		if _, err := m.eng.CancelQuest(q.ID); err != nil {
			m.setError(err)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Cancelled %q", q.Title))
		cmd := m.applySnapshot(m.eng.Snapshot())
		return m, cmd

	case key.Matches(msg, m.keys.Delete):
		q, ok := m.selected()
		if !ok {
			return m, nil
		}
		if err := m.eng.DeleteQuest(q.ID); err != nil {
			m.setError(err)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Deleted %q", q.Title))
		cmd := m.applySnapshot(m.eng.Snapshot())
		return m, cmd

	case key.Matches(msg, m.keys.Gallery):
		m.gallery.SetSnapshot(m.snap)
		m.mode = modeGallery

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// openForm switches to the form, prefilled from q when editing.
func (m *Model) openForm(q quest.Quest) {
	m.mode = modeForm
	m.editingID = q.ID
	m.input.SetValue(q.Title)
	m.input.CursorEnd()
	m.input.Focus()

	m.formDifficulty = quest.DefaultDifficulty
	if q.Difficulty.Valid() {
		m.formDifficulty = q.Difficulty
	}
	m.formCategory = 0
	for i, c := range quest.Categories() {
		if c == quest.DefaultCategory {
			m.formCategory = i
		}
		if q.Category != "" && c == q.Category {
			m.formCategory = i
			break
		}
	}
}

func (m *Model) closeForm() {
	m.mode = modeList
	m.editingID = ""
	m.input.Blur()
	m.input.Reset()
}

// handleFormKey processes keys while adding or editing a quest.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Back):
		m.closeForm()
		return m, nil

	case key.Matches(msg, m.formKeys.Difficulty):
		m.formDifficulty = nextDifficulty(m.formDifficulty)
		return m, nil

	case key.Matches(msg, m.formKeys.Category):
		m.formCategory = (m.formCategory + 1) % len(quest.Categories())
		return m, nil

	case key.Matches(msg, m.formKeys.Submit):
		title := strings.TrimSpace(m.input.Value())
		if m.editingID == "" {
			q, err := m.eng.AddQuest(title, m.formDifficulty, quest.Categories()[m.formCategory])
			if err != nil {
				m.setError(err)
				return m, nil
			}
			m.setStatus(fmt.Sprintf("New quest: %s (+%d XP)", q.Title, q.XP))
			m.cursor = len(m.eng.Snapshot().Quests) - 1
		} else {
			difficulty := m.formDifficulty
			if _, err := m.eng.UpdateQuest(m.editingID, engine.Patch{Title: &title, Difficulty: &difficulty}); err != nil {
				m.setError(err)
				return m, nil
			}
			m.setStatus("Quest updated")
		}
		m.closeForm()
		cmd := m.applySnapshot(m.eng.Snapshot())
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func nextDifficulty(d quest.Difficulty) quest.Difficulty {
	all := quest.Difficulties()
	for i, x := range all {
		if x == d {
			return all[(i+1)%len(all)]
		}
	}
	return quest.DefaultDifficulty
}

// describeOutcome summarizes a completion for the status line.
func describeOutcome(out engine.Outcome) string {
	parts := []string{fmt.Sprintf("+%d XP", out.XPAwarded)}
	if out.PixelsRevealed > 0 {
		parts = append(parts, fmt.Sprintf("%d pixels revealed", out.PixelsRevealed))
	}
	if out.LeveledUp {
		parts = append(parts, fmt.Sprintf("level %d reached", out.NewLevel))
	}
	if out.ArtworkCompleted {
		parts = append(parts, "artwork collected")
	}
	return "Quest complete! " + strings.Join(parts, ", ")
}

// View renders the board.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeGallery {
		return m.gallery.View()
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	if m.snap.ShowLevelUp {
		b.WriteString(m.viewBanner())
		b.WriteString("\n")
	}

	var left string
	if m.mode == modeForm {
		left = m.viewForm()
	} else {
		left = m.viewQuests()
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", m.viewArtwork()))
	b.WriteString("\n")

	if m.status != "" {
		style := m.theme.Status
		if m.statusErr {
			style = m.theme.StatusError
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	if m.mode == modeForm {
		b.WriteString(m.theme.Muted.Render(m.help.View(m.formKeys)))
	} else {
		b.WriteString(m.theme.Muted.Render(m.help.View(m.keys)))
	}
	return b.String()
}

func (m Model) viewHeader() string {
	s := m.snap
	title := m.theme.Title.Render("PIXEL QUEST")
	level := m.theme.Value.Render(fmt.Sprintf("Level %d", s.Level)) +
		m.theme.Muted.Render(" "+s.LevelInfo.Title)

	var xp string
	if s.Level >= s.MaxLevel {
		xp = m.theme.Label.Render(fmt.Sprintf("XP %d  MAX", s.XP))
	} else {
		xp = m.theme.Label.Render(fmt.Sprintf("XP %d  ", s.XP)) +
			RenderBar(s.LevelProgress.Percentage, barWidth, m.theme.BarFilled, m.theme.BarEmpty) +
			m.theme.Label.Render(fmt.Sprintf(" %.0f/%.0f", s.LevelProgress.Current, s.LevelProgress.Needed))
	}

	streak := m.theme.Label.Render(fmt.Sprintf("Done %d  Streak %dd", s.TotalQuestsCompleted, s.Streak))
	return title + "  " + level + "   " + xp + "   " + streak
}

func (m Model) viewBanner() string {
	var b strings.Builder
	b.WriteString(m.theme.BannerTitle.Render(fmt.Sprintf("LEVEL UP! Level %d: %s", m.snap.Level, m.snap.LevelInfo.Title)))
	if m.snap.LevelInfo.Description != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Label.Render(m.snap.LevelInfo.Description))
	}
	for _, a := range m.snap.NewUnlocks {
		b.WriteString("\n")
		b.WriteString(m.theme.Value.Render("Unlocked: " + a.String()))
	}
	return m.theme.Banner.Render(b.String())
}

func (m Model) difficultyStyle(d quest.Difficulty) lipgloss.Style {
	switch d {
	case quest.Easy:
		return m.theme.Easy
	case quest.Hard:
		return m.theme.Hard
	default:
		return m.theme.Medium
	}
}

func (m Model) viewQuests() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(fmt.Sprintf("QUESTS (%d)", len(m.snap.Quests))))
	b.WriteString("\n\n")

	if len(m.snap.Quests) == 0 {
		b.WriteString(m.theme.Muted.Render("No active quests. Press a to add one."))
	}

	for i, q := range m.snap.Quests {
		if i > 0 {
			b.WriteString("\n")
		}
		title := q.Title
		if r := []rune(title); len(r) > listWidth-16 {
			title = string(r[:listWidth-17]) + "…"
		}
		line := fmt.Sprintf("%-*s", listWidth-16, title)
		badge := m.difficultyStyle(q.Difficulty).Render(fmt.Sprintf("%-6s", q.Difficulty))
		xp := m.theme.Label.Render(fmt.Sprintf("%4d XP", q.XP))

		if i == m.cursor {
			b.WriteString(m.theme.ItemActive.Render("> " + line))
		} else {
			b.WriteString(m.theme.ItemNormal.Render("  " + line))
		}
		b.WriteString(" " + badge + xp)
	}

	return m.theme.Panel.Width(listWidth).Render(b.String())
}

func (m Model) viewForm() string {
	var b strings.Builder
	heading := "NEW QUEST"
	if m.editingID != "" {
		heading = "EDIT QUEST"
	}
	b.WriteString(m.theme.Title.Render(heading))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(m.theme.Label.Render("Difficulty: "))
	b.WriteString(m.difficultyStyle(m.formDifficulty).Render(string(m.formDifficulty)))
	b.WriteString(m.theme.Muted.Render(fmt.Sprintf(" (+%d XP)", m.eng.Rewards().XP(m.formDifficulty))))
	b.WriteString("\n")

	b.WriteString(m.theme.Label.Render("Category:   "))
	if m.editingID == "" {
		b.WriteString(m.theme.Value.Render(quest.Categories()[m.formCategory]))
	} else {
		b.WriteString(m.theme.Muted.Render("unchanged"))
	}

	return m.theme.Panel.Width(listWidth).Render(b.String())
}

func (m Model) viewArtwork() string {
	s := m.snap
	if s.Artwork.ID == 0 {
		return m.theme.Panel.Render(m.theme.Muted.Render("No artwork available"))
	}

	var b strings.Builder
	b.WriteString(m.theme.Frame.Render(RenderCanvas(s.Artwork, s.Revealed, m.theme)))
	b.WriteString("\n")

	b.WriteString(m.theme.Value.Render(s.Artwork.String()))
	b.WriteString("\n")
	b.WriteString(RenderBar(s.ArtworkProgress.Percentage, barWidth, m.theme.ArtBarFill, m.theme.BarEmpty))
	b.WriteString(m.theme.Label.Render(fmt.Sprintf(" %d/%d (%d%%)",
		s.ArtworkProgress.Revealed, s.ArtworkProgress.Total, s.ArtworkProgress.Percentage)))
	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render(fmt.Sprintf("Collected %d/%d", len(s.CompletedArtworks), m.eng.Catalog().Len())))

	return b.String()
}
