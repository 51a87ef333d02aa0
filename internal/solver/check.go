package solver

import (
	"fmt"

	"svw.info/sudoku-solver/internal/domain"
)

// Check validates the solver's precondition: every cell belongs to the
// alphabet and no digit appears twice in any row, column, or box.
// Empty cells are fine. Solve's behavior is undefined on grids that
// fail Check.
func Check(g *domain.Grid) error {
	for r := 0; r < domain.Shape; r++ {
		for c := 0; c < domain.Shape; c++ {
			if !g[r][c].Valid() {
				return fmt.Errorf("%w: %q at row %d col %d",
					domain.ErrInvalidCellValue, byte(g[r][c]), r, c)
			}
		}
	}
	for k := 0; k < domain.Shape; k++ {
		if err := checkUnit(g.Row(k), "row", k); err != nil {
			return err
		}
		if err := checkUnit(g.Col(k), "column", k); err != nil {
			return err
		}
	}
	for r := 0; r < domain.Shape; r += domain.BoxSize {
		for c := 0; c < domain.Shape; c += domain.BoxSize {
			if err := checkUnit(g.Box(r, c), "box", r+c/domain.BoxSize); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkUnit(cells [domain.Shape]domain.Cell, kind string, k int) error {
	m := uint16(0)
	for _, cell := range cells {
		d, ok := cell.Digit()
		if !ok {
			continue
		}
		bit := uint16(1) << (d - 1)
		if m&bit != 0 {
			return fmt.Errorf("%w: %d appears twice in %s %d",
				domain.ErrDuplicateGiven, d, kind, k)
		}
		m |= bit
	}
	return nil
}
