package reveal

import "testing"

// constSource always returns the same value.
type constSource int

func (c constSource) Intn(n int) int {
	return int(c) % n
}

func checkDistinct(t *testing.T, cells []int, revealed Mask) {
	t.Helper()
	seen := make(map[int]bool)
	for _, c := range cells {
		if c < 0 || c >= TotalPixels {
			t.Fatalf("cell %d out of range", c)
		}
		if seen[c] {
			t.Fatalf("cell %d returned twice", c)
		}
		if revealed.Has(c) {
			t.Fatalf("cell %d already revealed", c)
		}
		seen[c] = true
	}
}

func TestGenerateNonPositive(t *testing.T) {
	g := NewGenerator(NewSeededSource(1))
	for _, n := range []int{0, -3} {
		if got := g.Generate(n, Mask{}); got != nil {
			t.Errorf("Generate(%d) = %v, want nil", n, got)
		}
	}
}

func TestGenerateDistinct(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		revealed []int
	}{
		{"empty grid", 125, nil},
		{"partial grid", 63, []int{0, 1, 2, 3, 4, 100, 200}},
		{"single", 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(NewSeededSource(42))
			revealed := MaskFrom(tt.revealed)
			got := g.Generate(tt.count, revealed)
			if len(got) != tt.count {
				t.Fatalf("Generate() returned %d cells, want %d", len(got), tt.count)
			}
			checkDistinct(t, got, revealed)
		})
	}
}

func TestGenerateComplement(t *testing.T) {
	all := make([]int, 0, TotalPixels)
	for i := 0; i < TotalPixels; i++ {
		if i != 17 {
			all = append(all, i)
		}
	}
	revealed := MaskFrom(all)

	g := NewGenerator(NewSeededSource(7))
	got := g.Generate(125, revealed)
	if len(got) != 1 || got[0] != 17 {
		t.Fatalf("Generate() = %v, want [17]", got)
	}
}

func TestGenerateComplementSorted(t *testing.T) {
	revealed := MaskFrom([]int{0, 1, 2})
	g := NewGenerator(NewSeededSource(7))
	got := g.Generate(TotalPixels, revealed)
	if len(got) != TotalPixels-3 {
		t.Fatalf("Generate() returned %d cells, want %d", len(got), TotalPixels-3)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("complement not ascending at %d: %d >= %d", i, got[i-1], got[i])
		}
	}
}

func TestGenerateFallbackOnDegenerateSource(t *testing.T) {
	// A source stuck on one value can place at most one cell by rejection
	// sampling; the rest must come from the free list.
	g := NewGenerator(constSource(3))
	got := g.Generate(10, Mask{})
	if len(got) != 10 {
		t.Fatalf("Generate() returned %d cells, want 10", len(got))
	}
	checkDistinct(t, got, Mask{})
}

func TestGenerateDeterministic(t *testing.T) {
	a := NewGenerator(NewSeededSource(99)).Generate(50, Mask{})
	b := NewGenerator(NewSeededSource(99)).Generate(50, Mask{})
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different cells at %d", i)
		}
	}
}
