package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/sudoku-solver/internal/domain"
)

// FS writes solved boards into a directory, one text file per puzzle,
// in the same nine-line format the loader reads back.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) Save(g *domain.Grid, name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("invalid solution name")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	var b strings.Builder
	for r := 0; r < domain.Shape; r++ {
		for c := 0; c < domain.Shape; c++ {
			b.WriteByte(byte(g[r][c]))
		}
		b.WriteByte('\n')
	}
	return os.WriteFile(filepath.Join(s.dir, name), []byte(b.String()), 0o644)
}
