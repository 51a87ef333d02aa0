package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/config"
	"svw.info/sudoku-solver/internal/infrastructure/storage"
	"svw.info/sudoku-solver/internal/ports"
	"svw.info/sudoku-solver/internal/puzzle"
	"svw.info/sudoku-solver/internal/render"
	"svw.info/sudoku-solver/internal/solver"
	"svw.info/sudoku-solver/internal/usecase"
)

// defaultBoard is solved when no puzzle files are given.
const defaultBoard = `.........
..98....7
.8..6..5.
.5..4..3.
..79....2
.........
..27....9
.4..5..6.
3....62..`

func newRootCmd() *cobra.Command {
	var (
		cfgPath   string
		logLevel  string
		color     bool
		showInput bool
		saveDir   string
	)
	cmd := &cobra.Command{
		Use:   "sudoku [file...]",
		Short: "Solve 9x9 Sudoku puzzles by backtracking search",
		Long: `Solve reads Sudoku puzzle files (nine lines of nine characters,
'1'-'9' or '.' for empty, '#' lines skipped) and prints each solved
board as box-drawn text. With no arguments it solves a built-in board.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("color") {
				cfg.Color = color
			}
			if cmd.Flags().Changed("show-input") {
				cfg.ShowInput = showInput
			}
			if cmd.Flags().Changed("save-dir") {
				cfg.SaveDir = saveDir
			}
			lvl, err := log.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
			}
			log.SetLevel(lvl)

			var st ports.Storage
			if cfg.SaveDir != "" {
				st = storage.NewFS(cfg.SaveDir)
			}
			uc := usecase.NewService(
				solver.NewBacktracking(),
				puzzle.NewFileLoader(),
				render.New(cfg.Color),
				st,
			)
			return run(uc, cfg, args)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "sudoku.yaml", "config file")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	cmd.Flags().BoolVar(&color, "color", false, "style rendered boards")
	cmd.Flags().BoolVar(&showInput, "show-input", false, "render each puzzle before its solution")
	cmd.Flags().StringVar(&saveDir, "save-dir", "", "write solved boards into this directory")
	return cmd
}

func run(uc *usecase.Service, cfg config.Config, files []string) error {
	if len(files) == 0 {
		log.Info("solving built-in board")
		res, err := uc.SolveGrid(puzzle.MustParse(defaultBoard))
		if err != nil {
			return err
		}
		report(cfg, "built-in", res)
		if !res.Solved {
			return errors.New("built-in board is unsolvable")
		}
		return nil
	}

	failed := 0
	for _, f := range files {
		log.Info("solving", "file", f)
		res, err := uc.SolveFile(f)
		if err != nil {
			log.Error("skipping puzzle", "file", f, "err", err)
			failed++
			continue
		}
		report(cfg, f, res)
		if !res.Solved {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d puzzles failed", failed, len(files))
	}
	return nil
}

func report(cfg config.Config, name string, res usecase.Result) {
	if cfg.ShowInput {
		fmt.Println(res.Puzzle)
	}
	fmt.Println(res.Board)
	if res.Solved {
		log.Info("solved", "puzzle", name,
			"nodes", res.Stats.Nodes, "dur", res.Stats.Duration)
	} else {
		log.Warn("no solution", "puzzle", name, "nodes", res.Stats.Nodes)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error("run failed", "err", err)
		os.Exit(1)
	}
}
