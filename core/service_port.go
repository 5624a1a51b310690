package core

import (
	"context"
	"errors"
	"fmt"

	"pkt.systems/routedrop/internal/logx"
	"pkt.systems/routedrop/schema"
)

func (s *service) ExportTabs(ctx context.Context, req schema.ExportTabsRequest) (schema.ExportTabsResponse, error) {
	log := logx.Ctx(ctx)

	s.mu.Lock()
	var doc schema.ConfigDocument
	if len(req.TabIDs) == 0 {
		doc = s.documentLocked()
	} else {
		doc.Tabs = make([]schema.Tab, 0, len(req.TabIDs))
		for _, id := range req.TabIDs {
			t := s.tabs[id]
			if t == nil {
				s.mu.Unlock()
				err := fmt.Errorf("%w: %s", schema.ErrTabNotFound, id)
				log.Warn("service export failed", "err", err)
				return schema.ExportTabsResponse{}, err
			}
			doc.Tabs = append(doc.Tabs, t.wire())
		}
	}
	s.mu.Unlock()

	log.Info("service tabs exported", "tabs", len(doc.Tabs))
	return schema.ExportTabsResponse{Document: doc}, nil
}

func (s *service) ImportTabs(ctx context.Context, req schema.ImportTabsRequest) (schema.ImportTabsResponse, error) {
	if ctx == nil {
		return schema.ImportTabsResponse{}, errors.New("missing context")
	}
	log := logx.Ctx(ctx)
	mode, err := schema.ParseImportMode(string(req.Mode))
	if err != nil {
		log.Warn("service import rejected", "err", err)
		return schema.ImportTabsResponse{}, err
	}
	if err := req.Document.Validate(); err != nil {
		log.Warn("service import rejected", "err", err)
		return schema.ImportTabsResponse{}, err
	}
	seen := make(map[schema.TabID]struct{}, len(req.Document.Tabs))
	for _, wire := range req.Document.Tabs {
		if _, dup := seen[wire.ID]; dup {
			err := fmt.Errorf("%w: duplicate tab id %s", schema.ErrInvalidDocument, wire.ID)
			log.Warn("service import rejected", "err", err)
			return schema.ImportTabsResponse{}, err
		}
		seen[wire.ID] = struct{}{}
	}
	doc := req.Document.Normalize(s.cfg.HistoryLimit)

	s.mu.Lock()
	var rollback func()
	var added int
	switch mode {
	case schema.ImportReplace:
		prevTabs := s.tabs
		prevOrder := s.order
		s.tabs = make(map[schema.TabID]*tab, len(doc.Tabs))
		s.order = make([]schema.TabID, 0, len(doc.Tabs))
		for _, wire := range doc.Tabs {
			t := newTabFromPersisted(wire, s.cfg.HistoryLimit)
			s.tabs[t.ID] = t
			s.order = append(s.order, t.ID)
		}
		added = len(doc.Tabs)
		rollback = func() {
			s.tabs = prevTabs
			s.order = prevOrder
		}
	case schema.ImportMerge:
		prevOrder := append([]schema.TabID(nil), s.order...)
		addedIDs := make([]schema.TabID, 0, len(doc.Tabs))
		for _, wire := range doc.Tabs {
			wire.ID = schema.NewTabID()
			t := newTabFromPersisted(wire, s.cfg.HistoryLimit)
			s.tabs[t.ID] = t
			s.order = append(s.order, t.ID)
			addedIDs = append(addedIDs, t.ID)
		}
		added = len(addedIDs)
		rollback = func() {
			for _, id := range addedIDs {
				delete(s.tabs, id)
			}
			s.order = prevOrder
		}
	}
	persisted := s.documentLocked()
	snapshots := s.snapshotsLocked()
	s.mu.Unlock()

	if err := s.saveDocument(log, persisted, rollback); err != nil {
		return schema.ImportTabsResponse{}, err
	}
	log.Info("service tabs imported", "mode", mode, "added", added)
	return schema.ImportTabsResponse{Tabs: snapshots, Added: added}, nil
}
