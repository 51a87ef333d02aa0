package ports

import (
	"time"

	"svw.info/sudoku-solver/internal/domain"
)

// Stats captures performance characteristics of a solve.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver fills a grid in place. Solve reports success only; false means
// no solution is reachable from the grid's fixed values.
type Solver interface {
	Solve(g *domain.Grid) bool
	SolveWithStats(g *domain.Grid) (bool, Stats)
}

// Loader reads a puzzle file into a grid.
type Loader interface {
	Load(path string) (*domain.Grid, error)
}

// Renderer draws boards for the console.
type Renderer interface {
	Board(g *domain.Grid) string
	Diff(before, after *domain.Grid) string
}

// Storage writes solved boards back to disk.
type Storage interface {
	Save(g *domain.Grid, name string) error
}
