package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pkt.systems/pslog"
	"pkt.systems/routedrop/internal/persist"
	"pkt.systems/routedrop/schema"
)

// service implements the core service behavior.
type service struct {
	cfg    schema.ServiceConfig
	store  *persist.Store
	logger pslog.Logger
	mu     sync.Mutex
	tabs   map[schema.TabID]*tab
	order  []schema.TabID
}

var timeNow = time.Now

// NewService constructs the core service. The persisted document is
// loaded up front; a corrupt store is logged and the service starts
// empty rather than refusing to come up. Seed tabs apply only on a true
// first run, when no document exists at all.
func NewService(cfg schema.ServiceConfig, deps ServiceDeps) (Service, error) {
	normalized, err := schema.NormalizeServiceConfig(cfg)
	if err != nil {
		return nil, err
	}
	cfg = normalized
	store, err := persist.NewStoreWithLogger(cfg.StatePath, deps.Logger)
	if err != nil {
		return nil, err
	}
	logger := deps.Logger
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}
	s := &service{
		cfg:    cfg,
		store:  store,
		logger: logger,
		tabs:   make(map[schema.TabID]*tab),
	}
	s.loadState()
	return s, nil
}

func (s *service) loadState() {
	doc, ok, err := s.store.Load()
	if err != nil {
		s.logger.Warn("service config unreadable, starting empty", "err", err)
		return
	}
	if !ok {
		s.seedTabs()
		return
	}
	doc = doc.Normalize(s.cfg.HistoryLimit)
	s.mu.Lock()
	for _, wire := range doc.Tabs {
		if _, exists := s.tabs[wire.ID]; exists {
			s.logger.Warn("service config has duplicate tab id, keeping first", "tab", wire.ID)
			continue
		}
		t := newTabFromPersisted(wire, s.cfg.HistoryLimit)
		s.tabs[t.ID] = t
		s.order = append(s.order, t.ID)
	}
	count := len(s.order)
	s.mu.Unlock()
	s.logger.Debug("service state loaded", "tabs", count)
}

func (s *service) seedTabs() {
	if len(s.cfg.SeedTabs) == 0 {
		return
	}
	s.mu.Lock()
	for _, seed := range s.cfg.SeedTabs {
		t := &tab{
			ID:      schema.NewTabID(),
			Name:    seed.Name,
			Path:    seed.Path,
			Mode:    seed.Mode,
			history: newHistory(s.cfg.HistoryLimit),
		}
		s.tabs[t.ID] = t
		s.order = append(s.order, t.ID)
	}
	doc := s.documentLocked()
	s.mu.Unlock()
	if err := s.store.Save(doc); err != nil {
		s.logger.Warn("service seed persist failed", "err", err)
	}
	s.logger.Info("service seeded tabs", "count", len(doc.Tabs))
}

// documentLocked assembles the wire document. Callers hold s.mu.
func (s *service) documentLocked() schema.ConfigDocument {
	tabs := make([]schema.Tab, 0, len(s.order))
	for _, id := range s.order {
		t := s.tabs[id]
		if t == nil {
			continue
		}
		tabs = append(tabs, t.wire())
	}
	return schema.ConfigDocument{Tabs: tabs}
}

// saveDocument persists the document, undoing the in-memory mutation via
// rollback when the write fails. Registry changes are write-through: a
// change that cannot be saved does not happen.
func (s *service) saveDocument(log pslog.Logger, doc schema.ConfigDocument, rollback func()) error {
	if err := s.store.Save(doc); err != nil {
		if rollback != nil {
			s.mu.Lock()
			rollback()
			s.mu.Unlock()
		}
		if log != nil {
			log.Warn("service persist failed", "err", err)
		}
		return fmt.Errorf("persist config: %w", err)
	}
	if log != nil {
		log.Trace("service state persisted", "tabs", len(doc.Tabs))
	}
	return nil
}

func removeTabID(order []schema.TabID, id schema.TabID) []schema.TabID {
	for i, current := range order {
		if current == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

func clampIndex(index, length int) int {
	if index < 0 {
		return 0
	}
	if index >= length {
		return length - 1
	}
	return index
}
