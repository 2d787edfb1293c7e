package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config.yaml"

// Load builds the service configuration from ENV, the YAML file and the
// env-default tags, in that order of precedence, and validates it.
//
// CONFIG_PATH names the YAML file and must exist when set. Otherwise
// ./config.yaml is read if present. A relative workflow.catalog_path taken
// from the file is resolved against the file's directory.
func Load() (*Config, error) {
	path, required := filePath()

	var cfg Config
	err := readFile(path, &cfg)
	switch {
	case err == nil:
		cfg.Workflow.resolveCatalog(filepath.Dir(path))
	case errors.Is(err, fs.ErrNotExist) && !required:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func filePath() (path string, required bool) {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p, true
	}
	return defaultPath, false
}

func readFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	return cleanenv.ReadConfig(path, cfg)
}

// resolveCatalog anchors a catalog path read from the YAML file at dir.
// Paths from WORKFLOW_CATALOG_PATH stay relative to the working directory.
func (w *WorkflowConfig) resolveCatalog(dir string) {
	if w.CatalogPath == "" || filepath.IsAbs(w.CatalogPath) || os.Getenv("WORKFLOW_CATALOG_PATH") != "" {
		return
	}
	w.CatalogPath = filepath.Join(dir, w.CatalogPath)
}
