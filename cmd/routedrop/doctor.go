package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"pkt.systems/pslog"
	"pkt.systems/routedrop/internal/appconfig"
	"pkt.systems/routedrop/internal/persist"
	"pkt.systems/routedrop/schema"
)

func newDoctorCmd() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Run routedrop diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := pslog.Ctx(cmd.Context())

			cfg, err := appconfig.Load(cfgPath)
			if err != nil {
				return err
			}
			configPath := cfgPath
			if strings.TrimSpace(configPath) == "" {
				path, err := appconfig.DefaultConfigPath()
				if err != nil {
					return err
				}
				configPath = path
			}
			logger.Info("doctor start", "config", configPath)
			logger.Info("doctor config ok", "state_path", cfg.StatePath, "history_limit", cfg.HistoryLimit)

			problems := 0

			store, err := persist.NewStore(cfg.StatePath)
			if err != nil {
				return err
			}
			doc, loaded, err := store.Load()
			switch {
			case errors.Is(err, schema.ErrCorruptConfig):
				logger.Warn("doctor state file unreadable; a fresh registry will replace it", "path", store.Path(), "err", err)
				problems++
			case err != nil:
				return err
			case !loaded:
				logger.Info("doctor state file missing; first run seeds default tabs", "path", store.Path())
			default:
				logger.Info("doctor state file ok", "path", store.Path(), "tabs", len(doc.Tabs))
			}

			stateDir := filepath.Dir(store.Path())
			if _, err := os.Stat(stateDir); errors.Is(err, os.ErrNotExist) {
				logger.Info("doctor state dir missing; it is created on first save", "dir", stateDir)
			} else if err := probeDir(stateDir); err != nil {
				logger.Warn("doctor state dir not writable", "dir", stateDir, "err", err)
				problems++
			} else {
				logger.Info("doctor state dir writable", "dir", stateDir)
			}

			for _, tab := range doc.Tabs {
				problems += checkTabDestination(logger, tab)
			}

			if problems > 0 {
				word := "problems"
				if problems == 1 {
					word = "problem"
				}
				return fmt.Errorf("doctor found %d %s", problems, word)
			}
			logger.Info("doctor complete")
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to config file")
	return cmd
}

func checkTabDestination(logger pslog.Logger, tab schema.Tab) int {
	name := string(tab.Name)
	dest := strings.TrimSpace(tab.Path)
	if dest == "" {
		logger.Warn("doctor tab has no destination", "tab_name", name)
		return 1
	}
	info, err := os.Stat(dest)
	if err != nil {
		logger.Warn("doctor tab destination missing", "tab_name", name, "path", dest, "err", err)
		return 1
	}
	if !info.IsDir() {
		logger.Warn("doctor tab destination is not a directory", "tab_name", name, "path", dest)
		return 1
	}
	if err := probeDir(dest); err != nil {
		logger.Warn("doctor tab destination not writable", "tab_name", name, "path", dest, "err", err)
		return 1
	}
	if free, err := diskFree(dest); err == nil {
		logger.Info("doctor tab ok", "tab_name", name, "path", dest, "free", humanize.IBytes(free))
	} else {
		logger.Info("doctor tab ok", "tab_name", name, "path", dest)
	}
	return 0
}

// probeDir verifies write access by creating and removing a temp file.
func probeDir(dir string) error {
	f, err := os.CreateTemp(dir, ".routedrop-doctor-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}
