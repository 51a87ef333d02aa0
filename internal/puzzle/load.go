// Package puzzle reads Sudoku boards from their text form: nine lines
// of nine characters, each a digit '1'..'9' or '.' for an empty cell.
// Lines whose first byte is '#' are comments and are skipped.
package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"svw.info/sudoku-solver/internal/domain"
)

// Parse reads one board. Unlike the lenient 9-line convention it grew
// from, Parse rejects malformed input outright: wrong line lengths or
// line counts wrap domain.ErrInvalidGridShape, characters outside the
// alphabet wrap domain.ErrInvalidCellValue.
func Parse(r io.Reader) (*domain.Grid, error) {
	g := &domain.Grid{}
	sc := bufio.NewScanner(r)
	row := 0
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.HasPrefix(line, "#") {
			continue
		}
		if row == domain.Shape {
			return nil, fmt.Errorf("%w: more than %d puzzle lines",
				domain.ErrInvalidGridShape, domain.Shape)
		}
		if len(line) != domain.Shape {
			return nil, fmt.Errorf("%w: line %d has %d characters, want %d",
				domain.ErrInvalidGridShape, lineNo, len(line), domain.Shape)
		}
		for col := 0; col < domain.Shape; col++ {
			cell := domain.Cell(line[col])
			if !cell.Valid() {
				return nil, fmt.Errorf("%w: %q at line %d col %d",
					domain.ErrInvalidCellValue, line[col], lineNo, col)
			}
			g[row][col] = cell
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if row != domain.Shape {
		return nil, fmt.Errorf("%w: %d puzzle lines, want %d",
			domain.ErrInvalidGridShape, row, domain.Shape)
	}
	return g, nil
}

// MustParse is Parse for boards fixed in code; it panics on bad input.
func MustParse(s string) *domain.Grid {
	g, err := Parse(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return g
}

// FileLoader loads puzzle files from disk.
type FileLoader struct{}

func NewFileLoader() *FileLoader { return &FileLoader{} }

func (FileLoader) Load(path string) (*domain.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
