package appconfig

import (
	"os"
	"path/filepath"

	"pkt.systems/routedrop/schema"
)

// Config is the top-level application configuration.
type Config struct {
	ConfigVersion int       `mapstructure:"config_version" yaml:"config_version"`
	StatePath     string    `mapstructure:"state_path" yaml:"state_path"`
	HistoryLimit  int       `mapstructure:"history_limit" yaml:"history_limit"`
	VerifyCopies  bool      `mapstructure:"verify_copies" yaml:"verify_copies"`
	LogLevel      string    `mapstructure:"log_level" yaml:"log_level"`
	SeedTabs      []SeedTab `mapstructure:"seed_tabs" yaml:"seed_tabs"`
}

// CurrentConfigVersion marks the supported config version.
const CurrentConfigVersion = 1

// SeedTab describes a tab created on the engine's first run.
type SeedTab struct {
	Name      string `mapstructure:"name" yaml:"name"`
	Path      string `mapstructure:"path" yaml:"path"`
	Operation string `mapstructure:"operation" yaml:"operation"`
}

// ServiceSeeds converts the configured seed tabs to schema form.
func (c Config) ServiceSeeds() []schema.SeedTab {
	if len(c.SeedTabs) == 0 {
		return nil
	}
	seeds := make([]schema.SeedTab, 0, len(c.SeedTabs))
	for _, seed := range c.SeedTabs {
		seeds = append(seeds, schema.SeedTab{
			Name: schema.TabName(seed.Name),
			Path: seed.Path,
			Mode: schema.OperationMode(seed.Operation),
		})
	}
	return seeds
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() (Config, error) {
	statePath, err := schema.DefaultStatePath()
	if err != nil {
		return Config{}, err
	}
	seeds := schema.DefaultSeedTabs()
	seedTabs := make([]SeedTab, 0, len(seeds))
	for _, seed := range seeds {
		seedTabs = append(seedTabs, SeedTab{
			Name:      string(seed.Name),
			Path:      seed.Path,
			Operation: string(seed.Mode),
		})
	}
	return Config{
		ConfigVersion: CurrentConfigVersion,
		StatePath:     statePath,
		HistoryLimit:  schema.DefaultHistoryLimit,
		VerifyCopies:  false,
		LogLevel:      "info",
		SeedTabs:      seedTabs,
	}, nil
}

// DefaultConfigPath returns the standard config path.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".routedrop", "config.yaml"), nil
}
