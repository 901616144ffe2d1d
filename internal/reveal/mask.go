// Package reveal tracks which cells of an artwork are visible and picks new
// cells to uncover.
package reveal

// GridSize is the side length of the square reveal grid.
const GridSize = 25

// TotalPixels is the number of cells in the grid.
const TotalPixels = GridSize * GridSize

// Mask is the set of revealed cells, indexed row-major from 0.
// The zero value is an empty mask.
type Mask struct {
	cells [TotalPixels]bool
	count int
}

// MaskFrom builds a mask from indices, dropping values out of range and
// duplicates.
func MaskFrom(indices []int) Mask {
	var m Mask
	for _, i := range indices {
		m.Add(i)
	}
	return m
}

// Index converts a row and column to a cell index.
func Index(row, col int) int {
	return row*GridSize + col
}

// Has reports whether cell i is revealed.
func (m Mask) Has(i int) bool {
	if i < 0 || i >= TotalPixels {
		return false
	}
	return m.cells[i]
}

// Add reveals cell i. It reports false when i is invalid or already set.
func (m *Mask) Add(i int) bool {
	if i < 0 || i >= TotalPixels || m.cells[i] {
		return false
	}
	m.cells[i] = true
	m.count++
	return true
}

// Len returns the number of revealed cells.
func (m Mask) Len() int {
	return m.count
}

// Full reports whether every cell is revealed.
func (m Mask) Full() bool {
	return m.count == TotalPixels
}

// Remaining returns the number of hidden cells.
func (m Mask) Remaining() int {
	return TotalPixels - m.count
}

// Indices returns the revealed cells in ascending order.
func (m Mask) Indices() []int {
	out := make([]int, 0, m.count)
	for i, set := range m.cells {
		if set {
			out = append(out, i)
		}
	}
	return out
}

// Hidden returns the unrevealed cells in ascending order.
func (m Mask) Hidden() []int {
	out := make([]int, 0, TotalPixels-m.count)
	for i, set := range m.cells {
		if !set {
			out = append(out, i)
		}
	}
	return out
}
