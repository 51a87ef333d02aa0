// Package config holds CLI defaults read from an optional YAML file.
// Command-line flags override anything set here.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel  string `yaml:"log_level"`  // debug|info|warn|error
	Color     bool   `yaml:"color"`      // style rendered boards
	ShowInput bool   `yaml:"show_input"` // render the puzzle before its solution
	SaveDir   string `yaml:"save_dir"`   // write solved boards here; empty disables
}

func Default() Config {
	return Config{LogLevel: "info"}
}

// Load reads a YAML config file. A missing file is not an error; the
// defaults come back so the CLI works with no config at all.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "info"
	case "debug", "info", "warn", "error":
	default:
		return cfg, fmt.Errorf("%s: unknown log_level %q", path, cfg.LogLevel)
	}
	return cfg, nil
}
