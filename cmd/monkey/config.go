package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// replConfig holds the optional REPL settings read from ~/.monkeyrc.
type replConfig struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
	Color       bool   `toml:"color"`
}

func defaultConfig() replConfig {
	return replConfig{
		Prompt:      ">> ",
		HistoryFile: ".monkey_history",
		Color:       true,
	}
}

// loadConfig reads ~/.monkeyrc when present. Configuration is never fatal: a
// missing or malformed file falls back to the defaults.
func loadConfig() replConfig {
	cfg := defaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg
	}
	path := filepath.Join(home, ".monkeyrc")
	if _, err := os.Stat(path); err != nil {
		return cfg
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return defaultConfig()
	}

	if cfg.Prompt == "" {
		cfg.Prompt = ">> "
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = ".monkey_history"
	}
	return cfg
}
