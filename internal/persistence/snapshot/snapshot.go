// Package snapshot defines the persisted form of a player's progress and
// converts it to and from bytes.
package snapshot

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/pixelquest/internal/quest"
)

// Version is the current save format version.
const Version = 1

// Save is the persisted progress record.
type Save struct {
	Version           int           `json:"version"`
	Quests            []quest.Quest `json:"quests"`
	CompletedQuests   []quest.Quest `json:"completedQuests"`
	Level             int           `json:"level"`
	XP                int           `json:"xp"`
	CurrentArtworkID  int           `json:"currentArtworkId"`
	RevealedPixels    []int         `json:"revealedPixels"`
	CompletedArtworks []int         `json:"completedArtworks"`
	SavedAt           time.Time     `json:"savedAt"`
}

// Empty returns the save of a brand new player.
func Empty() Save {
	return Save{
		Version:           Version,
		Quests:            []quest.Quest{},
		CompletedQuests:   []quest.Quest{},
		Level:             1,
		RevealedPixels:    []int{},
		CompletedArtworks: []int{},
	}
}

// Encode serialises s as JSON.
func Encode(s Save) ([]byte, error) {
	if s.Version == 0 {
		s.Version = Version
	}
	if s.Quests == nil {
		s.Quests = []quest.Quest{}
	}
	if s.CompletedQuests == nil {
		s.CompletedQuests = []quest.Quest{}
	}
	if s.RevealedPixels == nil {
		s.RevealedPixels = []int{}
	}
	if s.CompletedArtworks == nil {
		s.CompletedArtworks = []int{}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return data, nil
}

// Decode parses a save leniently. Each field is decoded on its own; a field
// with the wrong shape is replaced by its default and reported in warnings.
// Individual malformed quests are dropped. Only input that is not a JSON
// object fails.
func Decode(data []byte) (Save, []string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Empty(), nil, fmt.Errorf("json unmarshal: %w", err)
	}

	s := Empty()
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	if v, ok := raw["version"]; ok {
		if n, ok := decodeInt(v); ok && n > 0 {
			s.Version = n
		} else {
			warn("version: invalid value %s, using %d", compact(v), Version)
		}
	}

	s.Quests = decodeQuests(raw["quests"], "quests", warn)
	s.CompletedQuests = decodeQuests(raw["completedQuests"], "completedQuests", warn)

	if v, ok := raw["level"]; ok {
		if n, ok := decodeInt(v); ok && n >= 1 {
			s.Level = n
		} else {
			warn("level: invalid value %s, using 1", compact(v))
		}
	}

	if v, ok := raw["xp"]; ok {
		if n, ok := decodeInt(v); ok && n >= 0 {
			s.XP = n
		} else {
			warn("xp: invalid value %s, using 0", compact(v))
		}
	}

	if v, ok := raw["currentArtworkId"]; ok {
		if n, ok := decodeInt(v); ok {
			s.CurrentArtworkID = n
		} else {
			warn("currentArtworkId: invalid value %s", compact(v))
		}
	}

	if v, ok := raw["revealedPixels"]; ok {
		if ints, ok := decodeInts(v); ok {
			s.RevealedPixels = ints
		} else {
			warn("revealedPixels: invalid value, starting with an empty canvas")
		}
	}

	if v, ok := raw["completedArtworks"]; ok {
		if ints, ok := decodeInts(v); ok {
			s.CompletedArtworks = ints
		} else {
			warn("completedArtworks: invalid value, using none")
		}
	}

	if v, ok := raw["savedAt"]; ok {
		var t time.Time
		if err := json.Unmarshal(v, &t); err == nil {
			s.SavedAt = t
		} else {
			warn("savedAt: invalid value %s", compact(v))
		}
	}

	return s, warnings, nil
}

func decodeQuests(v json.RawMessage, field string, warn func(string, ...any)) []quest.Quest {
	out := []quest.Quest{}
	if v == nil {
		return out
	}
	var items []json.RawMessage
	if err := json.Unmarshal(v, &items); err != nil {
		warn("%s: not a list, using none", field)
		return out
	}
	for i, item := range items {
		var q quest.Quest
		if err := json.Unmarshal(item, &q); err != nil {
			warn("%s[%d]: dropped: %v", field, i, err)
			continue
		}
		if q.ID == "" || strings.TrimSpace(q.Title) == "" {
			warn("%s[%d]: dropped: missing id or title", field, i)
			continue
		}
		if !q.Difficulty.Valid() {
			q.Difficulty = quest.DefaultDifficulty
		}
		if q.Category == "" {
			q.Category = quest.DefaultCategory
		}
		out = append(out, q)
	}
	return out
}

// decodeInt accepts integral JSON numbers, including ones written with a
// fractional part of zero.
func decodeInt(v json.RawMessage) (int, bool) {
	var f float64
	if err := json.Unmarshal(v, &f); err != nil {
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

func decodeInts(v json.RawMessage) ([]int, bool) {
	var items []json.RawMessage
	if err := json.Unmarshal(v, &items); err != nil {
		return nil, false
	}
	out := make([]int, 0, len(items))
	for _, item := range items {
		if n, ok := decodeInt(item); ok {
			out = append(out, n)
		}
	}
	return out, true
}

func compact(v json.RawMessage) string {
	s := string(v)
	if len(s) > 32 {
		s = s[:32] + "..."
	}
	return s
}
