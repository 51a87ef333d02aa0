package domain

// Board geometry and cell alphabet. Only classic 9x9 Sudoku with
// 3x3 boxes is supported; these never change during a solve.
const (
	Shape   = 9
	BoxSize = 3
)

// Empty marks a cell whose digit is not yet determined.
const Empty Cell = '.'

// Cell is a single board value: a digit '1'..'9' or Empty.
type Cell byte

// Digit returns the numeric value of c and whether c is a digit at all.
func (c Cell) Digit() (uint8, bool) {
	if c >= '1' && c <= '9' {
		return uint8(c - '0'), true
	}
	return 0, false
}

// Valid reports whether c belongs to the cell alphabet.
func (c Cell) Valid() bool {
	return c == Empty || (c >= '1' && c <= '9')
}

// Grid is a 9x9 Sudoku board, row-major. It is mutated in place during a
// solve; callers that need the original afterwards keep their own copy.
type Grid [Shape][Shape]Cell

// Row returns row k.
func (g *Grid) Row(k int) [Shape]Cell { return g[k] }

// Col returns column k.
func (g *Grid) Col(k int) [Shape]Cell {
	var out [Shape]Cell
	for r := 0; r < Shape; r++ {
		out[r] = g[r][k]
	}
	return out
}

// Box returns the 3x3 box containing (row, col), flattened row-major.
// The box origin is row and col floored to the nearest multiple of 3.
func (g *Grid) Box(row, col int) [Shape]Cell {
	br := row / BoxSize * BoxSize
	bc := col / BoxSize * BoxSize
	var out [Shape]Cell
	for i := 0; i < Shape; i++ {
		out[i] = g[br+i/BoxSize][bc+i%BoxSize]
	}
	return out
}

// Empties counts cells still unset.
func (g *Grid) Empties() int {
	n := 0
	for r := 0; r < Shape; r++ {
		for c := 0; c < Shape; c++ {
			if g[r][c] == Empty {
				n++
			}
		}
	}
	return n
}
