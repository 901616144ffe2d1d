package reveal

import (
	"math/rand"
	"time"
)

// Source is the random source used to pick cells. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSeededSource returns a deterministic source.
func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// maxAttemptsFactor bounds rejection sampling to factor*TotalPixels draws.
const maxAttemptsFactor = 2

// Generator picks unrevealed cells.
type Generator struct {
	src Source
}

// NewGenerator returns a generator using src. A nil src is seeded from the clock.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = NewSeededSource(time.Now().UnixNano())
	}
	return &Generator{src: src}
}

// Generate returns up to count distinct cells that are not in revealed.
// When the request would reach or exceed the grid, the exact complement is
// returned in ascending order.
func (g *Generator) Generate(count int, revealed Mask) []int {
	if count <= 0 {
		return nil
	}
	if revealed.Len()+count >= TotalPixels {
		return revealed.Hidden()
	}

	picked := make([]int, 0, count)
	taken := revealed
	attempts := 0
	for len(picked) < count && attempts < maxAttemptsFactor*TotalPixels {
		attempts++
		i := g.src.Intn(TotalPixels)
		if taken.Add(i) {
			picked = append(picked, i)
		}
	}

	if len(picked) < count {
		free := taken.Hidden()
		for len(picked) < count && len(free) > 0 {
			j := g.src.Intn(len(free))
			picked = append(picked, free[j])
			free[j] = free[len(free)-1]
			free = free[:len(free)-1]
		}
	}
	return picked
}
