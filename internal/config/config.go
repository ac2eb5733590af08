// Package config reads grove.yaml, the file naming the data sources the
// CLI's index command ingests.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the in-memory representation of grove.yaml.
type Config struct {
	// Database is the SQLite path; relative paths resolve against the
	// config file's directory. Defaults to grove.db.
	Database string `yaml:"database,omitempty"`

	Ontology     string   `yaml:"ontology"`
	Annotations  string   `yaml:"annotations"`
	Housekeeping string   `yaml:"housekeeping,omitempty"`
	Mappings     []string `yaml:"mappings,omitempty"`
}

// Load reads and validates a config file. Relative source paths are
// resolved against the config file's directory so the file can live next
// to its data.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	base := filepath.Dir(path)
	if cfg.Database == "" {
		cfg.Database = "grove.db"
	}
	cfg.Database = resolve(base, cfg.Database)
	cfg.Ontology = resolve(base, cfg.Ontology)
	cfg.Annotations = resolve(base, cfg.Annotations)
	cfg.Housekeeping = resolve(base, cfg.Housekeeping)
	for i, m := range cfg.Mappings {
		cfg.Mappings[i] = resolve(base, m)
	}

	if cfg.Ontology == "" && cfg.Annotations == "" && cfg.Housekeeping == "" && len(cfg.Mappings) == 0 {
		return nil, fmt.Errorf("config %s: no data sources", path)
	}
	return &cfg, nil
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
