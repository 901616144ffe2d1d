// Package catalog holds the artworks a player unlocks while levelling up.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"

	apperrors "github.com/vovakirdan/pixelquest/internal/errors"
)

//go:embed artworks.yaml
var defaultArtworksYAML []byte

// Artwork is a collectible picture tied to the level that unlocks it.
type Artwork struct {
	ID          int    `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Artist      string `yaml:"artist" json:"artist"`
	Year        int    `yaml:"year" json:"year"`
	Description string `yaml:"description" json:"description"`
	Period      string `yaml:"period" json:"period"`
	Level       int    `yaml:"level" json:"level"`
	Image       string `yaml:"image" json:"image"`
}

// String implements fmt.Stringer.
func (a Artwork) String() string {
	return fmt.Sprintf("%s (%s, %d)", a.Title, a.Artist, a.Year)
}

type artworkFile struct {
	Artworks []Artwork `yaml:"artworks"`
}

// Catalog is an immutable, ordered artwork list.
type Catalog struct {
	artworks []Artwork
	byID     map[int]int
	byLevel  map[int][]int
	maxLevel int
}

// New validates artworks against the number of defined levels and builds a
// catalog. Definition order is preserved.
func New(artworks []Artwork, levels int) (*Catalog, error) {
	if err := Validate(artworks, levels); err != nil {
		return nil, err
	}

	c := &Catalog{
		artworks: make([]Artwork, len(artworks)),
		byID:     make(map[int]int, len(artworks)),
		byLevel:  make(map[int][]int),
	}
	copy(c.artworks, artworks)
	for i, a := range c.artworks {
		c.byID[a.ID] = i
		c.byLevel[a.Level] = append(c.byLevel[a.Level], i)
		if a.Level > c.maxLevel {
			c.maxLevel = a.Level
		}
	}
	return c, nil
}

// Validate checks IDs are unique and positive, titles are present, levels
// lie in [1, levels] and every level up to the highest used one has an artwork.
func Validate(artworks []Artwork, levels int) error {
	if len(artworks) == 0 {
		return apperrors.ErrCatalogInvalid("no artworks defined")
	}

	seen := make(map[int]bool, len(artworks))
	used := make(map[int]bool)
	highest := 0
	for i, a := range artworks {
		if a.ID <= 0 {
			return apperrors.ErrCatalogInvalid(fmt.Sprintf("artwork at position %d has non-positive id %d", i, a.ID))
		}
		if seen[a.ID] {
			return apperrors.ErrCatalogInvalid(fmt.Sprintf("duplicate artwork id %d", a.ID))
		}
		seen[a.ID] = true
		if strings.TrimSpace(a.Title) == "" {
			return apperrors.ErrCatalogInvalid(fmt.Sprintf("artwork %d has no title", a.ID))
		}
		if a.Level < 1 || a.Level > levels {
			return apperrors.ErrCatalogInvalid(fmt.Sprintf("artwork %d has level %d outside 1..%d", a.ID, a.Level, levels))
		}
		used[a.Level] = true
		if a.Level > highest {
			highest = a.Level
		}
	}

	for l := 1; l <= highest; l++ {
		if !used[l] {
			return apperrors.ErrCatalogInvalid(fmt.Sprintf("level %d has no artwork", l))
		}
	}
	return nil
}

// Parse decodes a YAML artwork file.
func Parse(data []byte) ([]Artwork, error) {
	var f artworkFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return f.Artworks, nil
}

// Default returns the built-in catalog.
func Default(levels int) (*Catalog, error) {
	artworks, err := Parse(defaultArtworksYAML)
	if err != nil {
		return nil, fmt.Errorf("parsing embedded catalog: %w", err)
	}
	return New(artworks, levels)
}

// Load reads a catalog from path. An empty path returns the built-in catalog.
func Load(path string, levels int) (*Catalog, error) {
	if path == "" {
		return Default(levels)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	artworks, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return New(artworks, levels)
}

// All returns every artwork in definition order.
func (c *Catalog) All() []Artwork {
	out := make([]Artwork, len(c.artworks))
	copy(out, c.artworks)
	return out
}

// Len returns the number of artworks.
func (c *Catalog) Len() int {
	return len(c.artworks)
}

// First returns the first artwork in definition order.
func (c *Catalog) First() Artwork {
	return c.artworks[0]
}

// MaxLevel returns the highest level that unlocks an artwork.
func (c *Catalog) MaxLevel() int {
	return c.maxLevel
}

// ByID looks up an artwork.
func (c *Catalog) ByID(id int) (Artwork, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Artwork{}, false
	}
	return c.artworks[i], true
}

// ForLevel returns the artworks unlocked at level in definition order.
// Levels without artworks return an empty slice.
func (c *Catalog) ForLevel(level int) []Artwork {
	idx := c.byLevel[level]
	out := make([]Artwork, len(idx))
	for i, j := range idx {
		out[i] = c.artworks[j]
	}
	return out
}

// UpToLevel returns every artwork with level <= level.
func (c *Catalog) UpToLevel(level int) []Artwork {
	var out []Artwork
	for _, a := range c.artworks {
		if a.Level <= level {
			out = append(out, a)
		}
	}
	return out
}

// searchSource adapts artworks to fuzzy.Source, matching on title and artist.
type searchSource []Artwork

func (s searchSource) String(i int) string {
	return s[i].Title + " " + s[i].Artist
}

func (s searchSource) Len() int {
	return len(s)
}

// Search returns artworks whose title or artist fuzzily matches query, best
// match first.
func (c *Catalog) Search(query string) []Artwork {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	src := searchSource(c.artworks)
	matches := fuzzy.FindFrom(query, src)
	out := make([]Artwork, 0, len(matches))
	for _, m := range matches {
		out = append(out, src[m.Index])
	}
	return out
}
