package progression

import (
	"math"
	"testing"

	"github.com/vovakirdan/pixelquest/internal/reveal"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestDefaultLevelsValid(t *testing.T) {
	levels := DefaultLevels()
	if len(levels) != MaxLevel {
		t.Fatalf("DefaultLevels() has %d levels, want %d", len(levels), MaxLevel)
	}
	if err := ValidateLevels(levels); err != nil {
		t.Fatalf("ValidateLevels() error = %v", err)
	}
	if levels[0].Title != "Tutorial" || levels[24].Title != "Transcendent" {
		t.Errorf("unexpected titles %q / %q", levels[0].Title, levels[24].Title)
	}
}

func TestDefaultLevelsIsCopy(t *testing.T) {
	a := DefaultLevels()
	a[0].QuestsPerArtwork = 99
	if DefaultLevels()[0].QuestsPerArtwork != 5 {
		t.Error("DefaultLevels() shares its backing array")
	}
}

func TestValidateLevelsRejects(t *testing.T) {
	tests := []struct {
		name   string
		levels []Level
	}{
		{"empty", nil},
		{"gap", []Level{{Number: 1, QuestsPerArtwork: 1, ArtworksNeeded: 1}, {Number: 3, QuestsPerArtwork: 1, ArtworksNeeded: 1}}},
		{"starts at two", []Level{{Number: 2, QuestsPerArtwork: 1, ArtworksNeeded: 1}}},
		{"zero quests", []Level{{Number: 1, QuestsPerArtwork: 0, ArtworksNeeded: 1}}},
		{"zero artworks", []Level{{Number: 1, QuestsPerArtwork: 5, ArtworksNeeded: 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateLevels(tt.levels); err == nil {
				t.Error("ValidateLevels() = nil, want error")
			}
			if _, err := NewCurve(tt.levels, DefaultParams()); err == nil {
				t.Error("NewCurve() = nil error, want error")
			}
		})
	}
}

func TestQuestsRequired(t *testing.T) {
	c := DefaultCurve()
	tests := []struct {
		level int
		want  int
	}{
		{1, 5},
		{5, 20},
		{6, 20},
		{10, 45},
		{25, 732},
		{0, 0},
		{26, 0},
	}
	for _, tt := range tests {
		if got := c.QuestsRequired(tt.level); got != tt.want {
			t.Errorf("QuestsRequired(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestPixelsPerQuest(t *testing.T) {
	c := DefaultCurve()
	tests := []struct {
		level int
		want  int
	}{
		{1, 125},
		{2, 79},
		{6, 63},
		{15, 22},
		{25, 6},
		{0, 0},
		{26, 0},
	}
	for _, tt := range tests {
		if got := c.PixelsPerQuest(tt.level); got != tt.want {
			t.Errorf("PixelsPerQuest(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestPixelsPerQuestCoversGrid(t *testing.T) {
	c := DefaultCurve()
	for _, l := range c.Levels() {
		if c.PixelsPerQuest(l.Number)*l.QuestsPerArtwork < reveal.TotalPixels {
			t.Errorf("level %d: %d pixels x %d quests does not cover the grid",
				l.Number, c.PixelsPerQuest(l.Number), l.QuestsPerArtwork)
		}
	}
}

func TestXPRequired(t *testing.T) {
	c := DefaultCurve()
	tests := []struct {
		level int
		want  float64
	}{
		{1, 187.5},
		{2, 330},
		{3, 540},
		{4, 731.25},
		{5, 1050},
		{6, 1125},
		{99, 0},
	}
	for _, tt := range tests {
		if got := c.XPRequired(tt.level); !approx(got, tt.want) {
			t.Errorf("XPRequired(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
	if got := c.XPRequiredRounded(1); got != 188 {
		t.Errorf("XPRequiredRounded(1) = %d, want 188", got)
	}
	if got := c.XPRequiredRounded(4); got != 731 {
		t.Errorf("XPRequiredRounded(4) = %d, want 731", got)
	}
}

func TestCumulativeXP(t *testing.T) {
	c := DefaultCurve()
	tests := []struct {
		level int
		want  float64
	}{
		{0, 0},
		{1, 0},
		{2, 187.5},
		{3, 517.5},
		{4, 1057.5},
		{6, 2838.75},
		{7, 3963.75},
	}
	for _, tt := range tests {
		if got := c.CumulativeXP(tt.level); !approx(got, tt.want) {
			t.Errorf("CumulativeXP(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestCumulativeXPMonotonic(t *testing.T) {
	c := DefaultCurve()
	prev := 0.0
	for l := 2; l <= c.MaxLevel(); l++ {
		cur := c.CumulativeXP(l)
		if cur <= prev {
			t.Fatalf("CumulativeXP(%d) = %v not greater than %v", l, cur, prev)
		}
		prev = cur
	}
}

func TestLevelFromXP(t *testing.T) {
	c := DefaultCurve()
	tests := []struct {
		xp   float64
		want int
	}{
		{-10, 1},
		{0, 1},
		{150, 1},
		{187.49, 1},
		{187.5, 2},
		{200, 2},
		{517.5, 3},
		{3000, 6},
		{1e12, MaxLevel},
	}
	for _, tt := range tests {
		if got := c.LevelFromXP(tt.xp); got != tt.want {
			t.Errorf("LevelFromXP(%v) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevelFromXPRoundTrip(t *testing.T) {
	c := DefaultCurve()
	for l := 1; l <= c.MaxLevel(); l++ {
		if got := c.LevelFromXP(c.CumulativeXP(l)); got != l && l > 1 {
			t.Errorf("LevelFromXP(CumulativeXP(%d)) = %d", l, got)
		}
	}
}

func TestMultiplierIsAdditive(t *testing.T) {
	c := DefaultCurve()
	if !approx(c.Multiplier(1), 1) || !approx(c.Multiplier(11), 2) {
		t.Errorf("Multiplier(1)=%v Multiplier(11)=%v", c.Multiplier(1), c.Multiplier(11))
	}
}

func TestNewCurveCustomParams(t *testing.T) {
	levels := []Level{
		{Number: 1, QuestsPerArtwork: 2, ArtworksNeeded: 1},
		{Number: 2, QuestsPerArtwork: 4, ArtworksNeeded: 1},
	}
	c, err := NewCurve(levels, Params{AverageQuestXP: 10, MultiplierStep: 0})
	if err != nil {
		t.Fatalf("NewCurve() error = %v", err)
	}
	if !approx(c.XPRequired(2), 40) {
		t.Errorf("XPRequired(2) = %v, want 40", c.XPRequired(2))
	}
	if c.LevelFromXP(1000) != 2 {
		t.Errorf("LevelFromXP clamp = %d, want 2", c.LevelFromXP(1000))
	}
	levels[0].QuestsPerArtwork = 100
	if c.QuestsRequired(1) != 2 {
		t.Error("NewCurve() did not copy its level table")
	}
}
