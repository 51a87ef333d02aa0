package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sudoku.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load of missing file: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
log_level: debug
color: true
show_input: true
save_dir: ./solutions
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := Config{LogLevel: "debug", Color: true, ShowInput: true, SaveDir: "./solutions"}
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "color: true\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "info" || !cfg.Color {
		t.Errorf("got %+v, want color=true with default log level", cfg)
	}
}

func TestLoadRejectsBadLevel(t *testing.T) {
	if _, err := Load(writeFile(t, "log_level: loud\n")); err == nil {
		t.Fatal("Load accepted an unknown log level")
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	if _, err := Load(writeFile(t, "log_level: [unterminated\n")); err == nil {
		t.Fatal("Load accepted malformed YAML")
	}
}
