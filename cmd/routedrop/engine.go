package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"pkt.systems/pslog"
	"pkt.systems/routedrop"
	"pkt.systems/routedrop/internal/appconfig"
	"pkt.systems/routedrop/schema"
)

// newEngine loads configuration and constructs the engine every
// command runs against. The config log_level applies only when the
// LOG_LEVEL environment variable does not override it.
func newEngine(cmd *cobra.Command, cfgPath string) (*routedrop.Engine, appconfig.Config, error) {
	cfg, err := appconfig.Load(cfgPath)
	if err != nil {
		return nil, appconfig.Config{}, err
	}
	ctx := applyConfigLogLevel(cmd.Context(), cfg.LogLevel)
	cmd.SetContext(ctx)

	engine, err := routedrop.New(routedrop.Config{
		StatePath:    cfg.StatePath,
		HistoryLimit: cfg.HistoryLimit,
		VerifyCopies: cfg.VerifyCopies,
		SeedTabs:     cfg.ServiceSeeds(),
		Logger:       pslog.Ctx(ctx),
	})
	if err != nil {
		return nil, appconfig.Config{}, err
	}
	return engine, cfg, nil
}

func applyConfigLogLevel(ctx context.Context, level string) context.Context {
	level = strings.TrimSpace(level)
	if level == "" || os.Getenv("LOG_LEVEL") != "" {
		return ctx
	}
	os.Setenv("LOG_LEVEL", level)
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	return pslog.ContextWithLogger(ctx, logger)
}

// resolveTab matches a command-line tab reference against the
// registry: first by id, then by exact name, then by 1-based position.
func resolveTab(ctx context.Context, engine *routedrop.Engine, ref string) (schema.TabSnapshot, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return schema.TabSnapshot{}, fmt.Errorf("%w: empty tab reference", schema.ErrInvalidRequest)
	}
	list, err := engine.ListTabs(ctx, schema.ListTabsRequest{})
	if err != nil {
		return schema.TabSnapshot{}, err
	}
	for _, snapshot := range list.Tabs {
		if string(snapshot.ID) == ref {
			return snapshot, nil
		}
	}
	var byName []schema.TabSnapshot
	for _, snapshot := range list.Tabs {
		if string(snapshot.Name) == ref {
			byName = append(byName, snapshot)
		}
	}
	if len(byName) == 1 {
		return byName[0], nil
	}
	if len(byName) > 1 {
		return schema.TabSnapshot{}, fmt.Errorf("%w: tab name %q is ambiguous", schema.ErrInvalidRequest, ref)
	}
	if index, err := strconv.Atoi(ref); err == nil {
		if index >= 1 && index <= len(list.Tabs) {
			return list.Tabs[index-1], nil
		}
	}
	return schema.TabSnapshot{}, fmt.Errorf("%w: %s", schema.ErrTabNotFound, ref)
}
