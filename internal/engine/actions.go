package engine

import (
	"strings"

	"github.com/vovakirdan/pixelquest/internal/catalog"
	apperrors "github.com/vovakirdan/pixelquest/internal/errors"
	"github.com/vovakirdan/pixelquest/internal/quest"
)

// Outcome reports what a completion or reveal did.
type Outcome struct {
	Quest            quest.Quest
	XPAwarded        int
	OldLevel         int
	NewLevel         int
	LeveledUp        bool
	PixelsRevealed   int
	ArtworkCompleted bool
	CompletedArtwork int   // ID of the artwork finished, if any
	ArtworkChanged   bool  // current artwork switched
	Backfilled       []int // artwork IDs collected by skipping levels
	Unlocked         []catalog.Artwork
}

// Patch lists the fields UpdateQuest may change. Nil fields are left alone.
type Patch struct {
	Title      *string
	Difficulty *quest.Difficulty
	XP         *int
}

// AddQuest appends a new incomplete quest. An empty difficulty or category
// selects the default.
func (e *Engine) AddQuest(title string, difficulty quest.Difficulty, category string) (quest.Quest, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return quest.Quest{}, apperrors.ErrValidationFailed("title", "must not be empty")
	}
	if difficulty == "" {
		difficulty = quest.DefaultDifficulty
	}
	if !difficulty.Valid() {
		return quest.Quest{}, apperrors.ErrValidationFailed("difficulty", "unknown difficulty "+string(difficulty))
	}
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		category = quest.DefaultCategory
	}

	q := quest.Quest{
		ID:         e.newID(),
		Title:      title,
		Difficulty: difficulty,
		Category:   category,
		Status:     quest.StatusIncomplete,
		XP:         e.rewards.XP(difficulty),
		CreatedAt:  e.now(),
	}
	err := e.update(func(s *State) error {
		s.Quests = append(s.Quests, q)
		return nil
	})
	if err != nil {
		return quest.Quest{}, err
	}
	return q, nil
}

// CompleteQuest archives an active quest with status completed or cancelled.
// Completed quests award experience and reveal pixels; cancelled ones are
// only archived. Unknown IDs return a not-found error and change nothing.
func (e *Engine) CompleteQuest(id string, status quest.Status) (Outcome, error) {
	if !status.Final() {
		return Outcome{}, apperrors.ErrValidationFailed("status", "must be completed or cancelled")
	}

	var out Outcome
	err := e.update(func(s *State) error {
		out = Outcome{OldLevel: s.Level, NewLevel: s.Level}
		idx := s.activeIndex(id)
		if idx < 0 {
			return apperrors.ErrQuestNotFound(id)
		}

		q := s.Quests[idx]
		s.Quests = append(s.Quests[:idx], s.Quests[idx+1:]...)
		now := e.now()
		q.Status = status
		q.CompletedAt = &now
		s.History = append([]quest.Quest{q}, s.History...)
		out.Quest = q.Clone()

		if status == quest.StatusCancelled {
			return nil
		}

		s.XP += q.XP
		out.XPAwarded = q.XP
		if newLevel := e.curve.LevelFromXP(float64(s.XP)); newLevel > s.Level {
			e.levelUp(s, newLevel, &out)
		}
		e.reveal(s, e.curve.PixelsPerQuest(s.Level), &out)
		return nil
	})
	if err != nil {
		return Outcome{}, err
	}

	if out.LeveledUp {
		e.logger.Info("level up", "from", out.OldLevel, "to", out.NewLevel, "backfilled", len(out.Backfilled))
	}
	if out.ArtworkCompleted {
		e.logger.Info("artwork completed", "artwork", out.CompletedArtwork, "changed", out.ArtworkChanged)
	}
	return out, nil
}

// CancelQuest archives an active quest without reward.
func (e *Engine) CancelQuest(id string) (Outcome, error) {
	return e.CompleteQuest(id, quest.StatusCancelled)
}

// DeleteQuest removes an active quest without archiving it.
func (e *Engine) DeleteQuest(id string) error {
	return e.update(func(s *State) error {
		idx := s.activeIndex(id)
		if idx < 0 {
			return apperrors.ErrQuestNotFound(id)
		}
		s.Quests = append(s.Quests[:idx], s.Quests[idx+1:]...)
		return nil
	})
}

// UpdateQuest edits an active quest. Changing the difficulty recomputes the
// reward unless p.XP is also set.
func (e *Engine) UpdateQuest(id string, p Patch) (quest.Quest, error) {
	var title string
	if p.Title != nil {
		title = strings.TrimSpace(*p.Title)
		if title == "" {
			return quest.Quest{}, apperrors.ErrValidationFailed("title", "must not be empty")
		}
	}
	if p.Difficulty != nil && !p.Difficulty.Valid() {
		return quest.Quest{}, apperrors.ErrValidationFailed("difficulty", "unknown difficulty "+string(*p.Difficulty))
	}
	if p.XP != nil && *p.XP < 0 {
		return quest.Quest{}, apperrors.ErrValidationFailed("xp", "must not be negative")
	}

	var updated quest.Quest
	err := e.update(func(s *State) error {
		idx := s.activeIndex(id)
		if idx < 0 {
			return apperrors.ErrQuestNotFound(id)
		}
		q := &s.Quests[idx]
		if p.Title != nil {
			q.Title = title
		}
		if p.Difficulty != nil && *p.Difficulty != q.Difficulty {
			q.Difficulty = *p.Difficulty
			q.XP = e.rewards.XP(q.Difficulty)
		}
		if p.XP != nil {
			q.XP = *p.XP
		}
		updated = q.Clone()
		return nil
	})
	return updated, err
}

// RevealPixels uncovers count bonus cells on the current artwork.
func (e *Engine) RevealPixels(count int) (Outcome, error) {
	if count <= 0 {
		return Outcome{}, apperrors.ErrValidationFailed("count", "must be positive")
	}
	var out Outcome
	err := e.update(func(s *State) error {
		out = Outcome{OldLevel: s.Level, NewLevel: s.Level}
		e.reveal(s, count, &out)
		return nil
	})
	return out, err
}

// DismissLevelUp clears the level-up celebration flag.
func (e *Engine) DismissLevelUp() {
	_ = e.update(func(s *State) error {
		s.ShowLevelUp = false
		return nil
	})
}

// ClearNewUnlocks forgets the artworks announced by the last level-up.
func (e *Engine) ClearNewUnlocks() {
	_ = e.update(func(s *State) error {
		s.NewUnlocks = nil
		return nil
	})
}

// Reset returns the engine to the initial state.
func (e *Engine) Reset() {
	_ = e.update(func(s *State) error {
		*s = e.initialState()
		return nil
	})
}
