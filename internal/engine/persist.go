package engine

import (
	"fmt"

	apperrors "github.com/vovakirdan/pixelquest/internal/errors"
	"github.com/vovakirdan/pixelquest/internal/persistence/snapshot"
	"github.com/vovakirdan/pixelquest/internal/quest"
	"github.com/vovakirdan/pixelquest/internal/reveal"
)

// Save returns the persisted form of the current state.
func (e *Engine) Save() snapshot.Save {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.saveLocked()
}

func (e *Engine) saveLocked() snapshot.Save {
	s := e.state.clone()
	return snapshot.Save{
		Version:           snapshot.Version,
		Quests:            s.Quests,
		CompletedQuests:   s.History,
		Level:             s.Level,
		XP:                s.XP,
		CurrentArtworkID:  s.CurrentArtworkID,
		RevealedPixels:    s.Revealed.Indices(),
		CompletedArtworks: s.CompletedArtworks,
		SavedAt:           e.now(),
	}
}

// Restore replaces the state with save after repairing it: the level is
// derived from experience, lower-level artworks are collected, unknown
// artworks and duplicate quests are dropped. The returned warnings describe
// each repair. Restore does not persist.
func (e *Engine) Restore(save snapshot.Save) []string {
	s, warnings := e.reconcile(save)

	e.mu.Lock()
	e.state = s
	e.seq++
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.notify(snap)
	return warnings
}

// Load restores state from l. On failure the engine is reset to the initial
// state and a persistence error is returned.
func (e *Engine) Load(l Loader) error {
	save, warnings, err := l.Load()
	if err != nil {
		e.mu.Lock()
		e.state = e.initialState()
		e.seq++
		snap := e.snapshotLocked()
		e.mu.Unlock()
		e.notify(snap)
		return apperrors.ErrPersistence("load", err)
	}
	warnings = append(warnings, e.Restore(save)...)
	for _, w := range warnings {
		e.logger.Warn("repaired saved progress", "detail", w)
	}
	return nil
}

func (e *Engine) reconcile(save snapshot.Save) (State, []string) {
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	s := e.initialState()
	seen := make(map[string]bool)

	for _, q := range save.Quests {
		if seen[q.ID] {
			warn("dropped duplicate quest %s", q.ID)
			continue
		}
		seen[q.ID] = true
		q = q.Clone()
		q.Status = quest.StatusIncomplete
		q.CompletedAt = nil
		s.Quests = append(s.Quests, q)
	}
	for _, q := range save.CompletedQuests {
		if seen[q.ID] {
			warn("dropped duplicate quest %s", q.ID)
			continue
		}
		seen[q.ID] = true
		q = q.Clone()
		if !q.Status.Final() {
			q.Status = quest.StatusCompleted
		}
		s.History = append(s.History, q)
	}

	s.XP = save.XP
	if s.XP < 0 {
		warn("negative experience %d reset to 0", s.XP)
		s.XP = 0
	}
	s.Level = e.curve.LevelFromXP(float64(s.XP))
	if save.Level != 0 && save.Level != s.Level {
		warn("stored level %d does not match experience, using %d", save.Level, s.Level)
	}

	for _, id := range save.CompletedArtworks {
		if _, ok := e.catalog.ByID(id); !ok {
			warn("dropped unknown completed artwork %d", id)
			continue
		}
		s.markCompleted(id)
	}
	for l := 1; l < s.Level; l++ {
		for _, a := range e.catalog.ForLevel(l) {
			s.markCompleted(a.ID)
		}
	}

	art, ok := e.catalog.ByID(save.CurrentArtworkID)
	if ok && art.Level > s.Level {
		s.CurrentArtworkID = e.preferredArtwork(s.Level, &s)
		warn("current artwork %d unlocks at level %d, replaced by %d", art.ID, art.Level, s.CurrentArtworkID)
	} else if ok {
		s.CurrentArtworkID = save.CurrentArtworkID
		s.Revealed = reveal.MaskFrom(save.RevealedPixels)
		if s.Revealed.Len() != len(save.RevealedPixels) {
			warn("dropped %d invalid or duplicate pixels", len(save.RevealedPixels)-s.Revealed.Len())
		}
	} else {
		s.CurrentArtworkID = e.preferredArtwork(s.Level, &s)
		if save.CurrentArtworkID != 0 {
			warn("unknown current artwork %d replaced by %d", save.CurrentArtworkID, s.CurrentArtworkID)
		}
	}
	return s, warnings
}
