// Package render draws boards as fixed-width box art for the console.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/sudoku-solver/internal/domain"
)

const (
	top = "┌───┬───┬───┐"
	mid = "├───┼───┼───┤"
	bot = "└───┴───┴───┘"
	bar = "│"
)

// Renderer draws 9x9 boards. With color enabled, digits placed by the
// solver are highlighted and givens dimmed; with color off the output
// is plain text, stable enough to diff in tests.
type Renderer struct {
	color  bool
	given  lipgloss.Style
	filled lipgloss.Style
}

func New(color bool) *Renderer {
	return &Renderer{
		color:  color,
		given:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		filled: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	}
}

// Board renders g with no given/solved distinction.
func (r *Renderer) Board(g *domain.Grid) string {
	return r.Diff(g, g)
}

// Diff renders after, styling cells that were empty in before as
// solver-filled. Passing the same grid twice renders everything as
// given.
func (r *Renderer) Diff(before, after *domain.Grid) string {
	var b strings.Builder
	b.WriteString(top)
	b.WriteByte('\n')
	for row := 0; row < domain.Shape; row++ {
		if row == 3 || row == 6 {
			b.WriteString(mid)
			b.WriteByte('\n')
		}
		b.WriteString(bar)
		for col := 0; col < domain.Shape; col++ {
			b.WriteString(r.cell(before[row][col], after[row][col]))
			if col == 2 || col == 5 {
				b.WriteString(bar)
			}
		}
		b.WriteString(bar)
		b.WriteByte('\n')
	}
	b.WriteString(bot)
	return b.String()
}

func (r *Renderer) cell(before, after domain.Cell) string {
	c := string([]byte{byte(after)})
	if !r.color || after == domain.Empty {
		return c
	}
	if before == domain.Empty {
		return r.filled.Render(c)
	}
	return r.given.Render(c)
}
