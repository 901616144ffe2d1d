// Package quest defines the quest model and the rules that do not depend on
// player progression.
package quest

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty grades a quest and determines its reward.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// DefaultDifficulty is used when none is given.
const DefaultDifficulty = Medium

// Difficulties lists every difficulty from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty parses a case-insensitive difficulty name. An empty string
// yields DefaultDifficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultDifficulty, nil
	case "easy", "e":
		return Easy, nil
	case "medium", "m":
		return Medium, nil
	case "hard", "h":
		return Hard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Status is the lifecycle stage of a quest.
type Status string

const (
	StatusIncomplete Status = "incomplete"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Final reports whether s is a terminal status.
func (s Status) Final() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Categories known to the board. Any non-empty category is accepted.
const (
	CategoryWork     = "work"
	CategoryPersonal = "personal"
	CategoryHealth   = "health"
	CategoryLearning = "learning"
)

// DefaultCategory is used when none is given.
const DefaultCategory = CategoryPersonal

// Categories returns the built-in categories.
func Categories() []string {
	return []string{CategoryWork, CategoryPersonal, CategoryHealth, CategoryLearning}
}

// Quest is a single real-world task.
type Quest struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Difficulty  Difficulty `json:"difficulty"`
	Category    string     `json:"category"`
	Status      Status     `json:"status"`
	XP          int        `json:"xp"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Clone returns a copy that shares no pointers with q.
func (q Quest) Clone() Quest {
	if q.CompletedAt != nil {
		t := *q.CompletedAt
		q.CompletedAt = &t
	}
	return q
}

// Rewards maps each difficulty to the experience it awards.
type Rewards map[Difficulty]int

// DefaultRewards returns easy=25, medium=50, hard=100.
func DefaultRewards() Rewards {
	return Rewards{
		Easy:   25,
		Medium: 50,
		Hard:   100,
	}
}

// XP returns the reward for d, falling back to the default table.
func (r Rewards) XP(d Difficulty) int {
	if xp, ok := r[d]; ok {
		return xp
	}
	return DefaultRewards()[d]
}

// Average returns the arithmetic mean reward across all difficulties.
func (r Rewards) Average() float64 {
	total := 0
	for _, d := range Difficulties() {
		total += r.XP(d)
	}
	return float64(total) / float64(len(Difficulties()))
}
