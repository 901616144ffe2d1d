package tui

import (
	"fmt"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixelquest/internal/catalog"
	"github.com/vovakirdan/pixelquest/internal/engine"
	"github.com/vovakirdan/pixelquest/internal/progression"
	"github.com/vovakirdan/pixelquest/internal/quest"
	"github.com/vovakirdan/pixelquest/internal/reveal"
)

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	cat, err := catalog.Default(progression.MaxLevel)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	n := 0
	return engine.New(progression.DefaultCurve(), cat,
		engine.WithSource(reveal.NewSeededSource(1)),
		engine.WithLogger(log.New(io.Discard)),
		engine.WithIDFunc(func() string {
			n++
			return fmt.Sprintf("q-%d", n)
		}),
	)
}

func newTestModel(t *testing.T, eng *engine.Engine) Model {
	t.Helper()
	m := NewModel(eng, log.New(io.Discard))
	t.Cleanup(m.Close)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func TestRenderBar(t *testing.T) {
	plain := lipgloss.NewStyle()

	tests := []struct {
		name    string
		percent int
		filled  int
	}{
		{"empty", 0, 0},
		{"half", 50, 5},
		{"full", 100, 10},
		{"over", 150, 10},
		{"negative", -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := RenderBar(tt.percent, 10, plain, plain)
			if got := strings.Count(bar, "█"); got != tt.filled {
				t.Errorf("filled = %d, want %d", got, tt.filled)
			}
			if got := strings.Count(bar, "░"); got != 10-tt.filled {
				t.Errorf("empty = %d, want %d", got, 10-tt.filled)
			}
		})
	}

	if RenderBar(50, 0, plain, plain) != "" {
		t.Error("zero width bar should be empty")
	}
}

func TestRenderCanvas(t *testing.T) {
	cat, err := catalog.Default(progression.MaxLevel)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	art := cat.First()
	theme := DefaultTheme()

	hidden := RenderCanvas(art, reveal.Mask{}, theme)
	if lines := strings.Count(hidden, "\n") + 1; lines != reveal.GridSize {
		t.Errorf("lines = %d, want %d", lines, reveal.GridSize)
	}
	if got := strings.Count(hidden, hiddenCell); got != reveal.TotalPixels {
		t.Errorf("hidden cells = %d, want %d", got, reveal.TotalPixels)
	}

	mask := reveal.MaskFrom([]int{0, 1, 30})
	partial := RenderCanvas(art, mask, theme)
	if got := strings.Count(partial, revealedCell); got != 3 {
		t.Errorf("revealed cells = %d, want 3", got)
	}
	if got := strings.Count(partial, hiddenCell); got != reveal.TotalPixels-3 {
		t.Errorf("hidden cells = %d, want %d", got, reveal.TotalPixels-3)
	}
}

func TestCellColorDeterministic(t *testing.T) {
	palette := paletteFor("Impressionism")
	for row := 0; row < reveal.GridSize; row++ {
		for col := 0; col < reveal.GridSize; col++ {
			if cellColor(palette, 3, row, col) != cellColor(palette, 3, row, col) {
				t.Fatalf("color at (%d,%d) not stable", row, col)
			}
		}
	}
	if len(paletteFor("no such period")) == 0 {
		t.Error("unknown period should fall back to default palette")
	}
}

func TestBoardAddQuest(t *testing.T) {
	eng := newTestEngine(t)
	m := newTestModel(t, eng)

	m, _ = update(t, m, runes("a"))
	if m.mode != modeForm {
		t.Fatalf("mode = %v, want form", m.mode)
	}

	m, _ = update(t, m, runes("Water plants"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab}) // medium -> hard
	m, _ = update(t, m, enter)

	if m.mode != modeList {
		t.Errorf("mode = %v, want list", m.mode)
	}
	snap := eng.Snapshot()
	if len(snap.Quests) != 1 {
		t.Fatalf("quests = %d, want 1", len(snap.Quests))
	}
	q := snap.Quests[0]
	if q.Title != "Water plants" {
		t.Errorf("title = %q", q.Title)
	}
	if q.Difficulty != quest.Hard || q.XP != 100 {
		t.Errorf("difficulty = %s xp = %d, want hard 100", q.Difficulty, q.XP)
	}
	if !strings.Contains(m.View(), "Water plants") {
		t.Error("view should list the new quest")
	}
}

func TestBoardAddQuestEmptyTitle(t *testing.T) {
	eng := newTestEngine(t)
	m := newTestModel(t, eng)

	m, _ = update(t, m, runes("a"))
	m, _ = update(t, m, enter)

	if m.mode != modeForm {
		t.Error("form should stay open on validation error")
	}
	if !m.statusErr {
		t.Error("expected error status")
	}
	if len(eng.Snapshot().Quests) != 0 {
		t.Error("no quest should be added")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeList {
		t.Error("esc should close the form")
	}
}

func TestBoardEditQuest(t *testing.T) {
	eng := newTestEngine(t)
	if _, err := eng.AddQuest("Old title", quest.Easy, ""); err != nil {
		t.Fatal(err)
	}
	m := newTestModel(t, eng)

	m, _ = update(t, m, runes("e"))
	if m.editingID != "q-1" {
		t.Fatalf("editingID = %q", m.editingID)
	}
	if m.formDifficulty != quest.Easy {
		t.Errorf("form difficulty = %s, want easy", m.formDifficulty)
	}
	m, _ = update(t, m, runes("!"))
	m, _ = update(t, m, enter)

	if got := eng.Snapshot().Quests[0].Title; got != "Old title!" {
		t.Errorf("title = %q, want %q", got, "Old title!")
	}
}

func TestBoardCompleteQuest(t *testing.T) {
	eng := newTestEngine(t)
	if _, err := eng.AddQuest("Run", quest.Medium, ""); err != nil {
		t.Fatal(err)
	}
	m := newTestModel(t, eng)

	m, _ = update(t, m, enter)

	snap := eng.Snapshot()
	if snap.XP != 50 {
		t.Errorf("XP = %d, want 50", snap.XP)
	}
	if len(snap.Quests) != 0 || len(snap.History) != 1 {
		t.Errorf("active = %d history = %d", len(snap.Quests), len(snap.History))
	}
	if !strings.Contains(m.status, "+50 XP") {
		t.Errorf("status = %q", m.status)
	}
	if m.snap.XP != 50 {
		t.Error("model snapshot not refreshed")
	}
}

func TestBoardCancelAndDelete(t *testing.T) {
	eng := newTestEngine(t)
	for _, title := range []string{"one", "two"} {
		if _, err := eng.AddQuest(title, quest.Easy, ""); err != nil {
			t.Fatal(err)
		}
	}
	m := newTestModel(t, eng)

	m, _ = update(t, m, runes("c"))
	m, _ = update(t, m, runes("d"))

	snap := eng.Snapshot()
	if len(snap.Quests) != 0 {
		t.Errorf("active = %d, want 0", len(snap.Quests))
	}
	if len(snap.History) != 1 || snap.History[0].Status != quest.StatusCancelled {
		t.Errorf("history = %+v", snap.History)
	}
	if snap.XP != 0 {
		t.Errorf("XP = %d, want 0", snap.XP)
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d", m.cursor)
	}
}

func TestBoardCursorBounds(t *testing.T) {
	eng := newTestEngine(t)
	for i := 0; i < 3; i++ {
		if _, err := eng.AddQuest(fmt.Sprintf("quest %d", i), quest.Easy, ""); err != nil {
			t.Fatal(err)
		}
	}
	m := newTestModel(t, eng)

	for i := 0; i < 5; i++ {
		m, _ = update(t, m, runes("j"))
	}
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}
	for i := 0; i < 5; i++ {
		m, _ = update(t, m, runes("k"))
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestBoardLevelUpBanner(t *testing.T) {
	eng := newTestEngine(t)
	for i := 0; i < 5; i++ {
		if _, err := eng.AddQuest("task", quest.Medium, ""); err != nil {
			t.Fatal(err)
		}
	}
	for i := 1; i <= 4; i++ {
		if _, err := eng.CompleteQuest(fmt.Sprintf("q-%d", i), quest.StatusCompleted); err != nil {
			t.Fatal(err)
		}
	}
	m := newTestModel(t, eng)
	if m.snap.ShowLevelUp {
		t.Fatal("no level up expected yet")
	}

	m, cmd := update(t, m, enter)
	if !m.snap.ShowLevelUp || m.snap.Level != 2 {
		t.Fatalf("level = %d showLevelUp = %v", m.snap.Level, m.snap.ShowLevelUp)
	}
	if cmd == nil {
		t.Error("expected banner timeout command")
	}
	if !strings.Contains(m.View(), "LEVEL UP") {
		t.Error("banner not rendered")
	}

	// A timeout for another level is ignored
	m, _ = update(t, m, bannerExpiredMsg{level: 1})
	if !eng.Snapshot().ShowLevelUp {
		t.Error("stale timeout dismissed banner")
	}

	m, _ = update(t, m, bannerExpiredMsg{level: 2})
	snap := eng.Snapshot()
	if snap.ShowLevelUp || len(snap.NewUnlocks) != 0 {
		t.Error("banner should be dismissed and unlocks cleared")
	}
	if m.snap.ShowLevelUp {
		t.Error("model still shows banner")
	}
}

func TestBoardSnapshotMsg(t *testing.T) {
	eng := newTestEngine(t)
	m := newTestModel(t, eng)

	if _, err := eng.AddQuest("from elsewhere", quest.Easy, ""); err != nil {
		t.Fatal(err)
	}

	msg := waitForSnapshot(m.updates)()
	m, cmd := update(t, m, msg)
	if len(m.snap.Quests) != 1 {
		t.Errorf("quests = %d, want 1", len(m.snap.Quests))
	}
	if cmd == nil {
		t.Error("model should keep listening for snapshots")
	}
}

func TestBoardGallery(t *testing.T) {
	eng := newTestEngine(t)
	m := newTestModel(t, eng)

	m, _ = update(t, m, runes("g"))
	if m.mode != modeGallery {
		t.Fatalf("mode = %v, want gallery", m.mode)
	}
	if !strings.Contains(m.View(), "GALLERY") {
		t.Error("gallery view not rendered")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeList {
		t.Error("esc should return to the board")
	}
}

func TestArtworkStatus(t *testing.T) {
	eng := newTestEngine(t)
	snap := eng.Snapshot()
	cat := eng.Catalog()

	if got := ArtworkStatus(cat.First(), snap); got != StatusInProgress {
		t.Errorf("first artwork = %q, want %q", got, StatusInProgress)
	}
	locked := cat.ForLevel(2)
	if len(locked) == 0 {
		t.Fatal("catalog has no level 2 artwork")
	}
	if got := ArtworkStatus(locked[0], snap); got != StatusLocked {
		t.Errorf("level 2 artwork = %q, want %q", got, StatusLocked)
	}

	snap.CompletedArtworks = []int{locked[0].ID}
	if got := ArtworkStatus(locked[0], snap); got != StatusCollected {
		t.Errorf("collected artwork = %q, want %q", got, StatusCollected)
	}
}

func TestBoardQuit(t *testing.T) {
	m := newTestModel(t, newTestEngine(t))

	m, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
