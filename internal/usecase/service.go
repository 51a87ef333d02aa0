package usecase

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
	"svw.info/sudoku-solver/internal/solver"
)

// Service wires the solver with its console collaborators.
type Service struct {
	Solver   ports.Solver
	Loader   ports.Loader
	Renderer ports.Renderer
	Storage  ports.Storage // optional; nil disables saving
}

func NewService(s ports.Solver, l ports.Loader, r ports.Renderer, st ports.Storage) *Service {
	return &Service{Solver: s, Loader: l, Renderer: r, Storage: st}
}

var errNotConfigured = errors.New("service dependency not configured")

// Result reports one puzzle's outcome.
type Result struct {
	Solved bool
	Stats  ports.Stats
	Puzzle string // rendered input board
	Board  string // rendered output board, partial if unsolved
}

// SolveGrid checks, solves, and renders a single grid in place.
// Malformed grids are rejected before search; an unsolvable grid is not
// an error and comes back with Solved false.
func (u *Service) SolveGrid(g *domain.Grid) (Result, error) {
	if u.Solver == nil || u.Renderer == nil {
		return Result{}, errNotConfigured
	}
	if err := solver.Check(g); err != nil {
		return Result{}, err
	}
	before := *g
	ok, st := u.Solver.SolveWithStats(g)
	return Result{
		Solved: ok,
		Stats:  st,
		Puzzle: u.Renderer.Board(&before),
		Board:  u.Renderer.Diff(&before, g),
	}, nil
}

// SolveFile loads path, solves it, and saves the solution when both a
// Storage is configured and the puzzle was solved.
func (u *Service) SolveFile(path string) (Result, error) {
	if u.Loader == nil {
		return Result{}, errNotConfigured
	}
	g, err := u.Loader.Load(path)
	if err != nil {
		return Result{}, err
	}
	res, err := u.SolveGrid(g)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}
	if res.Solved && u.Storage != nil {
		if err := u.Storage.Save(g, SolutionName(path)); err != nil {
			return res, fmt.Errorf("save solution for %s: %w", path, err)
		}
	}
	return res, nil
}

// SolutionName derives the saved-solution filename for a puzzle path:
// the base name with its extension swapped for ".solved.txt".
func SolutionName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".solved.txt"
}
