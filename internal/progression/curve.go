package progression

import (
	"math"

	"github.com/vovakirdan/pixelquest/internal/reveal"
)

// Params tunes the experience curve.
type Params struct {
	// AverageQuestXP is the expected reward of a single quest.
	AverageQuestXP float64
	// MultiplierStep is added to the level multiplier for every level above 1.
	MultiplierStep float64
}

// DefaultParams returns the curve parameters of the original game.
func DefaultParams() Params {
	return Params{
		AverageQuestXP: 37.5,
		MultiplierStep: 0.1,
	}
}

// Curve answers level and experience questions for a validated level table.
type Curve struct {
	levels []Level
	params Params
}

// NewCurve validates levels and builds a curve.
func NewCurve(levels []Level, params Params) (*Curve, error) {
	if err := ValidateLevels(levels); err != nil {
		return nil, err
	}
	if params.AverageQuestXP <= 0 {
		params.AverageQuestXP = DefaultParams().AverageQuestXP
	}
	if params.MultiplierStep < 0 {
		params.MultiplierStep = 0
	}
	own := make([]Level, len(levels))
	copy(own, levels)
	return &Curve{levels: own, params: params}, nil
}

// DefaultCurve returns the curve for the built-in level table.
func DefaultCurve() *Curve {
	c, err := NewCurve(DefaultLevels(), DefaultParams())
	if err != nil {
		panic("progression: default level table is invalid: " + err.Error())
	}
	return c
}

// MaxLevel returns the highest defined level.
func (c *Curve) MaxLevel() int {
	return len(c.levels)
}

// Level returns the definition of the given level.
func (c *Curve) Level(level int) (Level, bool) {
	if level < 1 || level > len(c.levels) {
		return Level{}, false
	}
	return c.levels[level-1], true
}

// Levels returns a copy of the level table.
func (c *Curve) Levels() []Level {
	out := make([]Level, len(c.levels))
	copy(out, c.levels)
	return out
}

// Params returns the curve parameters.
func (c *Curve) Params() Params {
	return c.params
}

// QuestsRequired returns questsPerArtwork * artworksNeeded, or 0 for an
// undefined level.
func (c *Curve) QuestsRequired(level int) int {
	l, ok := c.Level(level)
	if !ok {
		return 0
	}
	return l.QuestsRequired()
}

// PixelsPerQuest returns how many cells a completed quest reveals at level.
// The ceiling guarantees PixelsPerQuest * QuestsPerArtwork covers the grid.
func (c *Curve) PixelsPerQuest(level int) int {
	l, ok := c.Level(level)
	if !ok {
		return 0
	}
	return (reveal.TotalPixels + l.QuestsPerArtwork - 1) / l.QuestsPerArtwork
}

// Multiplier returns 1 + step*(level-1). The increase is additive, not compounding.
func (c *Curve) Multiplier(level int) float64 {
	return 1 + c.params.MultiplierStep*float64(level-1)
}

// XPRequired returns the unrounded experience needed to complete level.
func (c *Curve) XPRequired(level int) float64 {
	quests := c.QuestsRequired(level)
	if quests == 0 {
		return 0
	}
	return float64(quests) * c.params.AverageQuestXP * c.Multiplier(level)
}

// XPRequiredRounded is XPRequired rounded to the nearest integer for display.
func (c *Curve) XPRequiredRounded(level int) int {
	return int(math.Round(c.XPRequired(level)))
}

// CumulativeXP returns the experience needed to reach level, i.e. the sum of
// XPRequired over every level strictly below it.
func (c *Curve) CumulativeXP(level int) float64 {
	if level > len(c.levels)+1 {
		level = len(c.levels) + 1
	}
	total := 0.0
	for l := 1; l < level; l++ {
		total += c.XPRequired(l)
	}
	return total
}

// LevelFromXP derives the current level from total experience. It uses the
// same accumulation as CumulativeXP so thresholds agree exactly.
func (c *Curve) LevelFromXP(xp float64) int {
	if xp <= 0 || math.IsNaN(xp) {
		return 1
	}
	level := 1
	consumed := 0.0
	for level < len(c.levels) {
		next := consumed + c.XPRequired(level)
		if xp < next {
			break
		}
		consumed = next
		level++
	}
	return level
}
