package solver

import "svw.info/sudoku-solver/internal/domain"

// Backtracking is a straightforward recursive solver: depth-first search
// over the first empty cell's candidates, undoing each failed guess in
// place. No propagation, no heuristics.
type Backtracking struct{}

func NewBacktracking() *Backtracking { return &Backtracking{} }

// digitMask covers bits 0..8, one per digit 1..9.
const digitMask = 0x1ff

// --- helpers used by Solve/Check (in other files) ---

// candidates returns the digits not present in (row, col)'s row, column,
// or box as a bitset: bit d-1 set means digit d is available. It reads
// the live grid, so guesses standing higher in the recursion constrain
// the result like any given.
func candidates(g *domain.Grid, row, col int) uint16 {
	used := uint16(0)
	for i := 0; i < domain.Shape; i++ {
		if d, ok := g[row][i].Digit(); ok {
			used |= 1 << (d - 1)
		}
		if d, ok := g[i][col].Digit(); ok {
			used |= 1 << (d - 1)
		}
	}
	br := row / domain.BoxSize * domain.BoxSize
	bc := col / domain.BoxSize * domain.BoxSize
	for dr := 0; dr < domain.BoxSize; dr++ {
		for dc := 0; dc < domain.BoxSize; dc++ {
			if d, ok := g[br+dr][bc+dc].Digit(); ok {
				used |= 1 << (d - 1)
			}
		}
	}
	return ^used & digitMask
}

func findEmpty(g *domain.Grid) (int, int, bool) {
	for r := 0; r < domain.Shape; r++ {
		for c := 0; c < domain.Shape; c++ {
			if g[r][c] == domain.Empty {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// isSolved reports whether every row, column, and box contains exactly
// the digits 1..9. It doubles as the termination test for the search:
// it can only hold once no cell is empty.
func isSolved(g *domain.Grid) bool {
	for k := 0; k < domain.Shape; k++ {
		if !completeUnit(g.Row(k)) || !completeUnit(g.Col(k)) {
			return false
		}
	}
	for r := 0; r < domain.Shape; r += domain.BoxSize {
		for c := 0; c < domain.Shape; c += domain.BoxSize {
			if !completeUnit(g.Box(r, c)) {
				return false
			}
		}
	}
	return true
}

func completeUnit(cells [domain.Shape]domain.Cell) bool {
	m := uint16(0)
	for _, cell := range cells {
		d, ok := cell.Digit()
		if !ok {
			return false
		}
		bit := uint16(1) << (d - 1)
		if m&bit != 0 {
			return false
		}
		m |= bit
	}
	return m == digitMask
}
