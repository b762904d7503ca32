package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	CatalogPath   string `toml:"catalog_path"`
	DocumentsRoot string `toml:"documents_root"`
	DBPath        string `toml:"db_path"`
	Grammar       string `toml:"grammar"`  // "alnum" or "letters"
	Strategy      string `toml:"strategy"` // "lines" or "words"
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		CatalogPath:   filepath.Join(home, ".config", "ttg", "courses.csv"),
		DocumentsRoot: filepath.Join(home, ".config", "ttg", "timetables"),
		DBPath:        filepath.Join(home, ".config", "ttg", "ttg.db"),
		Grammar:       "alnum",
		Strategy:      "lines",
	}

	cfgPath := filepath.Join(home, ".config", "ttg", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	// expand ~ in paths
	cfg.CatalogPath = expandHome(cfg.CatalogPath, home)
	cfg.DocumentsRoot = expandHome(cfg.DocumentsRoot, home)
	cfg.DBPath = expandHome(cfg.DBPath, home)

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
