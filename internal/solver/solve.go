package solver

import (
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// Solve fills every empty cell of g in place so that each row, column,
// and box holds the digits 1..9. It returns true and leaves g solved
// when a solution is reachable from the grid's fixed values; otherwise
// it returns false and g is restored to its state at the call, every
// guess undone. Unsolvable input is not an error. Behavior is undefined
// for grids that fail Check; run Check first on untrusted input.
func (s *Backtracking) Solve(g *domain.Grid) bool {
	ok, _ := s.SolveWithStats(g)
	return ok
}

// SolveWithStats is Solve plus node and wall-time accounting.
func (s *Backtracking) SolveWithStats(g *domain.Grid) (bool, ports.Stats) {
	start := time.Now()
	nodes := 0
	var search func() bool
	search = func() bool {
		nodes++
		if isSolved(g) {
			return true
		}
		row, col, found := findEmpty(g)
		if !found {
			// Filled but not solved: unreachable unless the input had a
			// duplicate given, which Check rejects up front.
			return true
		}
		cands := candidates(g, row, col)
		for d := uint8(1); d <= 9; d++ {
			if cands&(1<<(d-1)) == 0 {
				continue
			}
			g[row][col] = domain.Cell('0' + d)
			if search() {
				return true
			}
			g[row][col] = domain.Empty
		}
		// Every candidate failed; the caller undoes its own guess.
		return false
	}
	ok := search()
	return ok, ports.Stats{Nodes: nodes, Duration: time.Since(start)}
}
