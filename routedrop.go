package routedrop

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"pkt.systems/pslog"
	"pkt.systems/routedrop/core"
	"pkt.systems/routedrop/schema"
)

// Config configures the routing engine.
type Config struct {
	StatePath    string
	HistoryLimit int
	VerifyCopies bool
	SeedTabs     []schema.SeedTab
	Logger       pslog.Logger
}

// Engine is the synchronous boundary presentation layers call. Every
// core operation is available directly; ExportConfig and ImportConfig
// add file-level portability on top.
type Engine struct {
	core.Service
	log pslog.Logger
}

// New constructs the engine over a freshly loaded state store.
func New(cfg Config) (*Engine, error) {
	svc, err := core.NewService(schema.ServiceConfig{
		StatePath:    cfg.StatePath,
		HistoryLimit: cfg.HistoryLimit,
		VerifyCopies: cfg.VerifyCopies,
		SeedTabs:     cfg.SeedTabs,
	}, core.ServiceDeps{Logger: cfg.Logger})
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}
	return &Engine{Service: svc, log: logger}, nil
}

// ExportConfig writes the selected tabs as a config document to path.
// An empty selection exports every tab.
func (e *Engine) ExportConfig(ctx context.Context, path string, tabIDs []schema.TabID) error {
	resp, err := e.Service.ExportTabs(ctx, schema.ExportTabsRequest{TabIDs: tabIDs})
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(resp.Document, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	e.log.Info("engine config exported", "path", path, "tabs", len(resp.Document.Tabs))
	return nil
}

// ImportConfig reads a config document from path and imports it with
// the given mode. A file that does not parse as a document is rejected
// without touching the registry.
func (e *Engine) ImportConfig(ctx context.Context, path string, mode schema.ImportMode) (schema.ImportTabsResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return schema.ImportTabsResponse{}, fmt.Errorf("read config: %w", err)
	}
	var doc schema.ConfigDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		e.log.Warn("engine config import rejected", "path", path, "err", err)
		return schema.ImportTabsResponse{}, fmt.Errorf("%w: %v", schema.ErrInvalidDocument, err)
	}
	resp, err := e.Service.ImportTabs(ctx, schema.ImportTabsRequest{Document: doc, Mode: mode})
	if err != nil {
		return schema.ImportTabsResponse{}, err
	}
	e.log.Info("engine config imported", "path", path, "mode", mode, "added", resp.Added)
	return resp, nil
}
