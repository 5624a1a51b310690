package core

import (
	"context"
	"errors"

	"pkt.systems/routedrop/internal/logx"
	"pkt.systems/routedrop/schema"
)

func (s *service) TabHistory(ctx context.Context, req schema.TabHistoryRequest) (schema.TabHistoryResponse, error) {
	log := logx.WithTab(ctx, req.TabID)
	s.mu.Lock()
	t := s.tabs[req.TabID]
	if t == nil {
		s.mu.Unlock()
		log.Warn("service history read failed", "err", schema.ErrTabNotFound)
		return schema.TabHistoryResponse{}, schema.ErrTabNotFound
	}
	entries := t.history.Entries()
	s.mu.Unlock()

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	log.Trace("service history read", "entries", len(entries))
	return schema.TabHistoryResponse{Entries: entries}, nil
}

func (s *service) ClearHistory(ctx context.Context, req schema.ClearHistoryRequest) (schema.ClearHistoryResponse, error) {
	if ctx == nil {
		return schema.ClearHistoryResponse{}, errors.New("missing context")
	}
	log := logx.WithTab(ctx, req.TabID)

	s.mu.Lock()
	t := s.tabs[req.TabID]
	if t == nil {
		s.mu.Unlock()
		log.Warn("service history clear failed", "err", schema.ErrTabNotFound)
		return schema.ClearHistoryResponse{}, schema.ErrTabNotFound
	}
	prev := t.history
	cleared := prev.Len()
	t.history = newHistory(s.cfg.HistoryLimit)
	index := s.indexOfLocked(t.ID)
	doc := s.documentLocked()
	s.mu.Unlock()

	if err := s.saveDocument(log, doc, func() {
		t.history = prev
	}); err != nil {
		return schema.ClearHistoryResponse{}, err
	}
	log.Info("service history cleared", "entries", cleared)
	return schema.ClearHistoryResponse{Tab: t.Snapshot(index), Cleared: cleared}, nil
}
