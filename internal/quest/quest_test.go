package quest

import (
	"testing"
	"time"

	apperrors "github.com/vovakirdan/pixelquest/internal/errors"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", Easy, false},
		{"MEDIUM", Medium, false},
		{" hard ", Hard, false},
		{"h", Hard, false},
		{"", Medium, false},
		{"legendary", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRewards(t *testing.T) {
	r := DefaultRewards()
	if r.XP(Easy) != 25 || r.XP(Medium) != 50 || r.XP(Hard) != 100 {
		t.Errorf("DefaultRewards() = %v", r)
	}
	partial := Rewards{Hard: 200}
	if partial.XP(Easy) != 25 {
		t.Errorf("missing entry should fall back, got %d", partial.XP(Easy))
	}
	if partial.XP(Hard) != 200 {
		t.Errorf("XP(Hard) = %d, want 200", partial.XP(Hard))
	}
}

func TestStatusFinal(t *testing.T) {
	if StatusIncomplete.Final() {
		t.Error("incomplete should not be final")
	}
	if !StatusCompleted.Final() || !StatusCancelled.Final() {
		t.Error("completed and cancelled should be final")
	}
}

func TestCloneDetachesCompletedAt(t *testing.T) {
	now := time.Now()
	q := Quest{ID: "a", CompletedAt: &now}
	c := q.Clone()
	*c.CompletedAt = now.Add(time.Hour)
	if !q.CompletedAt.Equal(now) {
		t.Error("Clone() shares CompletedAt")
	}
}

func sampleQuests() []Quest {
	return []Quest{
		{ID: "aaaa1111-0000", Title: "Write report"},
		{ID: "bbbb2222-0000", Title: "Go for a run"},
		{ID: "bbbb3333-0000", Title: "Read a book"},
	}
}

func TestResolve(t *testing.T) {
	quests := sampleQuests()
	tests := []struct {
		name   string
		ref    string
		wantID string
	}{
		{"index", "2", "bbbb2222-0000"},
		{"exact id", "bbbb3333-0000", "bbbb3333-0000"},
		{"unique prefix", "aaaa", "aaaa1111-0000"},
		{"title substring", "run", "bbbb2222-0000"},
		{"title substring case", "REPORT", "aaaa1111-0000"},
		{"exact title", "read a book", "bbbb3333-0000"},
		{"unique fuzzy title", "rprt", "aaaa1111-0000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(quests, tt.ref)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.ref, err)
			}
			if got.ID != tt.wantID {
				t.Errorf("Resolve(%q) = %s, want %s", tt.ref, got.ID, tt.wantID)
			}
		})
	}
}

func TestResolveNotFound(t *testing.T) {
	quests := sampleQuests()
	for _, ref := range []string{"", "zzzzzz", "99"} {
		_, err := Resolve(quests, ref)
		if !apperrors.IsNotFound(err) {
			t.Errorf("Resolve(%q) error = %v, want not found", ref, err)
		}
	}
}

func TestResolveAmbiguousTitle(t *testing.T) {
	quests := sampleQuests()
	// "a" appears in two titles and "o" in all three
	for _, ref := range []string{"a", "o"} {
		_, err := Resolve(quests, ref)
		if !apperrors.IsValidation(err) {
			t.Errorf("Resolve(%q) error = %v, want validation error", ref, err)
		}
	}
}

func TestStreak(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	at := func(daysAgo int) *time.Time {
		t := now.AddDate(0, 0, -daysAgo)
		return &t
	}

	tests := []struct {
		name    string
		history []Quest
		want    int
	}{
		{"empty", nil, 0},
		{"today only", []Quest{{Status: StatusCompleted, CompletedAt: at(0)}}, 1},
		{"ending yesterday", []Quest{
			{Status: StatusCompleted, CompletedAt: at(1)},
			{Status: StatusCompleted, CompletedAt: at(2)},
		}, 2},
		{"gap breaks run", []Quest{
			{Status: StatusCompleted, CompletedAt: at(0)},
			{Status: StatusCompleted, CompletedAt: at(2)},
		}, 1},
		{"stale", []Quest{{Status: StatusCompleted, CompletedAt: at(3)}}, 0},
		{"cancelled ignored", []Quest{
			{Status: StatusCancelled, CompletedAt: at(0)},
			{Status: StatusCompleted, CompletedAt: at(1)},
		}, 1},
		{"same day counted once", []Quest{
			{Status: StatusCompleted, CompletedAt: at(0)},
			{Status: StatusCompleted, CompletedAt: at(0)},
			{Status: StatusCompleted, CompletedAt: at(1)},
		}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Streak(tt.history, now); got != tt.want {
				t.Errorf("Streak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountCompleted(t *testing.T) {
	h := []Quest{{Status: StatusCompleted}, {Status: StatusCancelled}, {Status: StatusCompleted}}
	if got := CountCompleted(h); got != 2 {
		t.Errorf("CountCompleted() = %d, want 2", got)
	}
}
