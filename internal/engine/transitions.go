package engine

import (
	"github.com/vovakirdan/pixelquest/internal/reveal"
)

// levelUp moves s to newLevel. Every artwork of the levels below newLevel is
// collected, then the first uncollected artwork of newLevel becomes current.
// When newLevel has nothing left to collect the current artwork stays.
func (e *Engine) levelUp(s *State, newLevel int, out *Outcome) {
	oldLevel := s.Level
	for l := 1; l < newLevel; l++ {
		for _, a := range e.catalog.ForLevel(l) {
			if s.markCompleted(a.ID) {
				out.Backfilled = append(out.Backfilled, a.ID)
			}
		}
	}

	s.Level = newLevel
	s.ShowLevelUp = true
	out.LeveledUp = true
	out.NewLevel = newLevel

	for l := oldLevel + 1; l <= newLevel; l++ {
		for _, a := range e.catalog.ForLevel(l) {
			if !s.isCompleted(a.ID) {
				s.NewUnlocks = append(s.NewUnlocks, a)
				out.Unlocked = append(out.Unlocked, a)
			}
		}
	}

	for _, a := range e.catalog.ForLevel(newLevel) {
		if s.isCompleted(a.ID) {
			continue
		}
		if a.ID != s.CurrentArtworkID {
			s.CurrentArtworkID = a.ID
			s.Revealed = reveal.Mask{}
			out.ArtworkChanged = true
		}
		return
	}
}

// reveal uncovers up to count cells and completes the artwork when the grid
// is full and it was not collected before.
func (e *Engine) reveal(s *State, count int, out *Outcome) {
	for _, c := range e.gen.Generate(count, s.Revealed) {
		if s.Revealed.Add(c) {
			out.PixelsRevealed++
		}
	}
	if s.Revealed.Full() && !s.isCompleted(s.CurrentArtworkID) {
		e.completeArtwork(s, out)
	}
}

// completeArtwork collects the current artwork and advances to the next
// uncollected artwork listed after it at the current level. If there is none
// the current artwork stays until the next level-up.
func (e *Engine) completeArtwork(s *State, out *Outcome) {
	current := s.CurrentArtworkID
	s.markCompleted(current)
	out.ArtworkCompleted = true
	out.CompletedArtwork = current

	list := e.catalog.ForLevel(s.Level)
	start := 0
	for i, a := range list {
		if a.ID == current {
			start = i + 1
			break
		}
	}
	for _, a := range list[start:] {
		if s.isCompleted(a.ID) {
			continue
		}
		s.CurrentArtworkID = a.ID
		s.Revealed = reveal.Mask{}
		out.ArtworkChanged = true
		return
	}
}
