package engine

import (
	"math"

	"github.com/vovakirdan/pixelquest/internal/catalog"
	"github.com/vovakirdan/pixelquest/internal/progression"
	"github.com/vovakirdan/pixelquest/internal/quest"
	"github.com/vovakirdan/pixelquest/internal/reveal"
)

// State is the complete progression state owned by an Engine.
type State struct {
	Quests            []quest.Quest // active, in creation order
	History           []quest.Quest // completed and cancelled, newest first
	XP                int
	Level             int
	CurrentArtworkID  int
	Revealed          reveal.Mask // cells revealed on the current artwork
	CompletedArtworks []int       // insertion order, no duplicates

	// Transient flags for the presentation layer.
	ShowLevelUp bool
	NewUnlocks  []catalog.Artwork
}

func (s State) clone() State {
	c := s
	c.Quests = cloneQuests(s.Quests)
	c.History = cloneQuests(s.History)
	c.CompletedArtworks = append([]int(nil), s.CompletedArtworks...)
	c.NewUnlocks = append([]catalog.Artwork(nil), s.NewUnlocks...)
	return c
}

func cloneQuests(qs []quest.Quest) []quest.Quest {
	out := make([]quest.Quest, len(qs))
	for i, q := range qs {
		out[i] = q.Clone()
	}
	return out
}

func (s *State) isCompleted(artworkID int) bool {
	for _, id := range s.CompletedArtworks {
		if id == artworkID {
			return true
		}
	}
	return false
}

// markCompleted records artworkID once. It reports whether it was added.
func (s *State) markCompleted(artworkID int) bool {
	if s.isCompleted(artworkID) {
		return false
	}
	s.CompletedArtworks = append(s.CompletedArtworks, artworkID)
	return true
}

func (s *State) activeIndex(id string) int {
	for i, q := range s.Quests {
		if q.ID == id {
			return i
		}
	}
	return -1
}

// LevelProgress describes experience earned within the current level.
type LevelProgress struct {
	Current    float64
	Needed     float64
	Percentage int
}

// ArtworkProgress describes how much of the current artwork is visible.
type ArtworkProgress struct {
	Revealed   int
	Total      int
	Percentage int
}

// Snapshot is a read-only copy of the state plus derived values. Callers may
// keep it; the engine never modifies a snapshot after handing it out.
type Snapshot struct {
	Quests            []quest.Quest
	History           []quest.Quest
	XP                int
	Level             int
	MaxLevel          int
	LevelInfo         progression.Level
	Artwork           catalog.Artwork
	Revealed          reveal.Mask
	CompletedArtworks []int
	ShowLevelUp       bool
	NewUnlocks        []catalog.Artwork

	LevelProgress        LevelProgress
	ArtworkProgress      ArtworkProgress
	TotalQuestsCompleted int
	Streak               int
}

// IsCollected reports whether the artwork is in the completed set.
func (s Snapshot) IsCollected(artworkID int) bool {
	for _, id := range s.CompletedArtworks {
		if id == artworkID {
			return true
		}
	}
	return false
}

func percent(part, whole float64) int {
	if whole <= 0 {
		return 0
	}
	p := int(math.Round(part / whole * 100))
	if p > 100 {
		p = 100
	}
	if p < 0 {
		p = 0
	}
	return p
}
