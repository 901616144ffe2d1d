// Package progression converts between levels and experience.
// Levels are stored as an ordered slice indexed by level-1.
package progression

import "fmt"

// Level defines one tier of the progression curve.
type Level struct {
	Number           int
	QuestsPerArtwork int
	ArtworksNeeded   int
	Title            string
	Description      string
}

// QuestsRequired returns the number of quests needed to finish the level.
func (l Level) QuestsRequired() int {
	return l.QuestsPerArtwork * l.ArtworksNeeded
}

// MaxLevel is the number of levels in the default table.
const MaxLevel = 25

var defaultLevels = []Level{
	{Number: 1, QuestsPerArtwork: 5, ArtworksNeeded: 1, Title: "Tutorial", Description: "Introduction to pixel art discovery"},
	{Number: 2, QuestsPerArtwork: 8, ArtworksNeeded: 1, Title: "Apprentice", Description: "Learning the basics"},
	{Number: 3, QuestsPerArtwork: 12, ArtworksNeeded: 1, Title: "Novice", Description: "Building confidence"},
	{Number: 4, QuestsPerArtwork: 15, ArtworksNeeded: 1, Title: "Adept", Description: "Getting comfortable"},
	{Number: 5, QuestsPerArtwork: 20, ArtworksNeeded: 1, Title: "Practitioner", Description: "Developing consistency"},
	{Number: 6, QuestsPerArtwork: 10, ArtworksNeeded: 2, Title: "Multi-tasker", Description: "Managing multiple artworks"},
	{Number: 7, QuestsPerArtwork: 12, ArtworksNeeded: 2, Title: "Coordinator", Description: "Balancing complexity"},
	{Number: 8, QuestsPerArtwork: 15, ArtworksNeeded: 2, Title: "Organizer", Description: "Advanced planning"},
	{Number: 9, QuestsPerArtwork: 18, ArtworksNeeded: 2, Title: "Strategist", Description: "Strategic thinking"},
	{Number: 10, QuestsPerArtwork: 15, ArtworksNeeded: 3, Title: "Curator", Description: "Three artwork mastery"},
	{Number: 11, QuestsPerArtwork: 18, ArtworksNeeded: 3, Title: "Collector", Description: "Growing collection"},
	{Number: 12, QuestsPerArtwork: 22, ArtworksNeeded: 3, Title: "Connoisseur", Description: "Artistic appreciation"},
	{Number: 13, QuestsPerArtwork: 20, ArtworksNeeded: 4, Title: "Expert", Description: "Four artwork challenge"},
	{Number: 14, QuestsPerArtwork: 24, ArtworksNeeded: 4, Title: "Authority", Description: "Established expertise"},
	{Number: 15, QuestsPerArtwork: 29, ArtworksNeeded: 4, Title: "Specialist", Description: "Specialized knowledge"},
	{Number: 16, QuestsPerArtwork: 28, ArtworksNeeded: 5, Title: "Master", Description: "Five artwork mastery"},
	{Number: 17, QuestsPerArtwork: 34, ArtworksNeeded: 5, Title: "Virtuoso", Description: "Exceptional skill"},
	{Number: 18, QuestsPerArtwork: 41, ArtworksNeeded: 5, Title: "Grandmaster", Description: "Elite achievement"},
	{Number: 19, QuestsPerArtwork: 41, ArtworksNeeded: 6, Title: "Champion", Description: "Six artwork challenge"},
	{Number: 20, QuestsPerArtwork: 49, ArtworksNeeded: 6, Title: "Hero", Description: "Heroic dedication"},
	{Number: 21, QuestsPerArtwork: 59, ArtworksNeeded: 6, Title: "Legend", Description: "Legendary status"},
	{Number: 22, QuestsPerArtwork: 71, ArtworksNeeded: 6, Title: "Mythic", Description: "Mythical achievement"},
	{Number: 23, QuestsPerArtwork: 85, ArtworksNeeded: 6, Title: "Immortal", Description: "Immortal dedication"},
	{Number: 24, QuestsPerArtwork: 102, ArtworksNeeded: 6, Title: "Divine", Description: "Divine mastery"},
	{Number: 25, QuestsPerArtwork: 122, ArtworksNeeded: 6, Title: "Transcendent", Description: "Ultimate achievement"},
}

// DefaultLevels returns a copy of the built-in 25-level table.
func DefaultLevels() []Level {
	levels := make([]Level, len(defaultLevels))
	copy(levels, defaultLevels)
	return levels
}

// ValidateLevels checks that levels are numbered 1..n without gaps, in order,
// and that every level asks for a positive amount of work.
func ValidateLevels(levels []Level) error {
	if len(levels) == 0 {
		return fmt.Errorf("level table is empty")
	}
	for i, l := range levels {
		if l.Number != i+1 {
			return fmt.Errorf("level at position %d has number %d, want %d", i, l.Number, i+1)
		}
		if l.QuestsPerArtwork <= 0 {
			return fmt.Errorf("level %d: quests_per_artwork must be positive", l.Number)
		}
		if l.ArtworksNeeded <= 0 {
			return fmt.Errorf("level %d: artworks_needed must be positive", l.Number)
		}
	}
	return nil
}
