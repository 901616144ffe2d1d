// Package engine owns a player's progression state and applies quest actions
// to it. Every action builds a complete successor state before publishing it.
package engine

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/pixelquest/internal/catalog"
	"github.com/vovakirdan/pixelquest/internal/persistence/snapshot"
	"github.com/vovakirdan/pixelquest/internal/progression"
	"github.com/vovakirdan/pixelquest/internal/quest"
	"github.com/vovakirdan/pixelquest/internal/reveal"
)

// Persister stores a save after every state change.
type Persister interface {
	Save(s snapshot.Save) error
}

// Loader fetches a previously stored save. Warnings describe fields that had
// to be repaired.
type Loader interface {
	Load() (snapshot.Save, []string, error)
}

// Engine is the progression state machine. It is safe for concurrent use;
// actions are applied one at a time.
type Engine struct {
	mu    sync.Mutex
	state State
	seq   uint64

	curve   *progression.Curve
	catalog *catalog.Catalog
	rewards quest.Rewards
	gen     *reveal.Generator

	persister Persister
	persistMu sync.Mutex
	persisted uint64

	logger *log.Logger
	now    func() time.Time
	newID  func() string

	subsMu  sync.Mutex
	subs    map[int]func(Snapshot)
	nextSub int
}

// Option configures an Engine.
type Option func(*Engine)

// WithPersister saves state after every change.
func WithPersister(p Persister) Option {
	return func(e *Engine) { e.persister = p }
}

// WithLogger sets the logger. The default is log.Default().
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithSource sets the random source used to reveal pixels.
func WithSource(src reveal.Source) Option {
	return func(e *Engine) { e.gen = reveal.NewGenerator(src) }
}

// WithRewards replaces the difficulty reward table.
func WithRewards(r quest.Rewards) Option {
	return func(e *Engine) { e.rewards = r }
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDFunc sets the quest ID generator.
func WithIDFunc(f func() string) Option {
	return func(e *Engine) { e.newID = f }
}

// New creates an engine in the initial state: level 1, no experience and the
// first catalog artwork.
func New(curve *progression.Curve, cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		curve:   curve,
		catalog: cat,
		rewards: quest.DefaultRewards(),
		logger:  log.Default(),
		now:     time.Now,
		newID:   uuid.NewString,
		subs:    make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.gen == nil {
		e.gen = reveal.NewGenerator(nil)
	}
	e.state = e.initialState()
	return e
}

func (e *Engine) initialState() State {
	return State{
		Quests:            []quest.Quest{},
		History:           []quest.Quest{},
		Level:             1,
		CurrentArtworkID:  e.preferredArtwork(1, nil),
		CompletedArtworks: []int{},
	}
}

// preferredArtwork returns the first artwork at level not in completed,
// falling back to the first catalog artwork.
func (e *Engine) preferredArtwork(level int, s *State) int {
	for _, a := range e.catalog.ForLevel(level) {
		if s == nil || !s.isCompleted(a.ID) {
			return a.ID
		}
	}
	return e.catalog.First().ID
}

// Curve returns the experience curve in use.
func (e *Engine) Curve() *progression.Curve {
	return e.curve
}

// Catalog returns the artwork catalog in use.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Rewards returns the difficulty reward table.
func (e *Engine) Rewards() quest.Rewards {
	return e.rewards
}

// update applies fn to a copy of the state and swaps it in when fn succeeds.
// Persistence and subscriber notification happen after the lock is released.
func (e *Engine) update(fn func(s *State) error) error {
	e.mu.Lock()
	next := e.state.clone()
	if err := fn(&next); err != nil {
		e.mu.Unlock()
		return err
	}
	e.state = next
	e.seq++
	seq := e.seq
	snap := e.snapshotLocked()
	save := e.saveLocked()
	e.mu.Unlock()

	e.persist(seq, save)
	e.notify(snap)
	return nil
}

func (e *Engine) persist(seq uint64, save snapshot.Save) {
	if e.persister == nil {
		return
	}
	e.persistMu.Lock()
	defer e.persistMu.Unlock()
	if seq <= e.persisted {
		return
	}
	if err := e.persister.Save(save); err != nil {
		e.logger.Error("failed to persist progress", "error", err)
		return
	}
	e.persisted = seq
}

// Snapshot returns the current state and derived values.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	s := e.state.clone()
	info, _ := e.curve.Level(s.Level)
	art, _ := e.catalog.ByID(s.CurrentArtworkID)

	earned := float64(s.XP) - e.curve.CumulativeXP(s.Level)
	if earned < 0 {
		earned = 0
	}
	needed := e.curve.XPRequired(s.Level)

	return Snapshot{
		Quests:            s.Quests,
		History:           s.History,
		XP:                s.XP,
		Level:             s.Level,
		MaxLevel:          e.curve.MaxLevel(),
		LevelInfo:         info,
		Artwork:           art,
		Revealed:          s.Revealed,
		CompletedArtworks: s.CompletedArtworks,
		ShowLevelUp:       s.ShowLevelUp,
		NewUnlocks:        s.NewUnlocks,
		LevelProgress: LevelProgress{
			Current:    earned,
			Needed:     needed,
			Percentage: percent(earned, needed),
		},
		ArtworkProgress: ArtworkProgress{
			Revealed:   s.Revealed.Len(),
			Total:      reveal.TotalPixels,
			Percentage: percent(float64(s.Revealed.Len()), reveal.TotalPixels),
		},
		TotalQuestsCompleted: quest.CountCompleted(s.History),
		Streak:               quest.Streak(s.History, e.now()),
	}
}
