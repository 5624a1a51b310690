package schema

import (
	"os"
	"path/filepath"
	"strings"
)

// ServiceConfig defines defaults and limits for the core service.
type ServiceConfig struct {
	// StatePath is the location of the persisted config document.
	StatePath string
	// HistoryLimit caps history entries kept per tab.
	HistoryLimit int
	// VerifyCopies enables checksum verification after file copies.
	VerifyCopies bool
	// SeedTabs are created on first run when no document exists yet.
	SeedTabs []SeedTab
}

// SeedTab describes a tab created on first run.
type SeedTab struct {
	Name TabName
	Path string
	Mode OperationMode
}

// DefaultHistoryLimit is the default per-tab history cap.
const DefaultHistoryLimit = 200

// DefaultStatePath returns the OS-appropriate config document location.
func DefaultStatePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "routedrop", "config.json"), nil
}

// DefaultSeedTabs returns the stock first-run tabs.
func DefaultSeedTabs() []SeedTab {
	seeds := make([]SeedTab, 0, 5)
	for _, name := range []TabName{"L1", "L2", "L3", "L4", "L5"} {
		seeds = append(seeds, SeedTab{Name: name, Mode: ModeCopyReplace})
	}
	return seeds
}

// NormalizeServiceConfig applies defaults and validates the config.
func NormalizeServiceConfig(cfg ServiceConfig) (ServiceConfig, error) {
	if strings.TrimSpace(cfg.StatePath) == "" {
		path, err := DefaultStatePath()
		if err != nil {
			return ServiceConfig{}, err
		}
		cfg.StatePath = path
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	seeds := make([]SeedTab, 0, len(cfg.SeedTabs))
	for _, seed := range cfg.SeedTabs {
		seed.Name = NormalizeTabName(seed.Name)
		seed.Mode = NormalizeOperationMode(string(seed.Mode))
		seeds = append(seeds, seed)
	}
	cfg.SeedTabs = seeds
	return cfg, nil
}
