// Package world provides the infinite cave lattice: grid synthesis, border
// continuity and navigation between neighboring grids.
package world

import "strings"

// Cell represents a single map cell.
type Cell uint8

const (
	// CellFloor represents a passable floor cell.
	CellFloor Cell = iota
	// CellRock represents an impassable rock cell.
	CellRock
)

// IsPassable returns true if the cell can be walked on.
func (c Cell) IsPassable() bool {
	return c == CellFloor
}

// Rune returns the cell's display character.
func (c Cell) Rune() rune {
	if c == CellRock {
		return '#'
	}
	return '.'
}

// String returns a human-readable cell name.
func (c Cell) String() string {
	switch c {
	case CellFloor:
		return "floor"
	case CellRock:
		return "rock"
	default:
		return "unknown"
	}
}

// Grid is a square block of cells indexed [row][col].
type Grid [][]Cell

// NewGrid creates a size×size grid filled with the given cell.
func NewGrid(size int, fill Cell) Grid {
	g := make(Grid, size)
	for row := range g {
		g[row] = make([]Cell, size)
		for col := range g[row] {
			g[row][col] = fill
		}
	}
	return g
}

// Size returns the side length of the grid.
func (g Grid) Size() int {
	return len(g)
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for row := range g {
		out[row] = append([]Cell(nil), g[row]...)
	}
	return out
}

// Count returns how many cells of the given kind the grid holds.
func (g Grid) Count(kind Cell) int {
	n := 0
	for _, row := range g {
		for _, c := range row {
			if c == kind {
				n++
			}
		}
	}
	return n
}

// String renders the grid one row per line.
func (g Grid) String() string {
	var b strings.Builder
	for i, row := range g {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			b.WriteRune(c.Rune())
		}
	}
	return b.String()
}
