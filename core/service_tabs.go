package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pkt.systems/routedrop/internal/logx"
	"pkt.systems/routedrop/schema"
)

func (s *service) CreateTab(ctx context.Context, req schema.CreateTabRequest) (schema.CreateTabResponse, error) {
	if ctx == nil {
		return schema.CreateTabResponse{}, errors.New("missing context")
	}
	log := logx.Ctx(ctx)
	mode := req.Mode
	if strings.TrimSpace(string(mode)) == "" {
		mode = schema.ModeCopyReplace
	} else {
		parsed, err := schema.ParseOperationMode(string(mode))
		if err != nil {
			log.Warn("service tab create rejected", "err", err)
			return schema.CreateTabResponse{}, err
		}
		mode = parsed
	}
	name := schema.NormalizeTabName(req.Name)

	s.mu.Lock()
	if name == "" {
		name = schema.TabName(fmt.Sprintf("Tab %d", len(s.order)+1))
	}
	t := &tab{
		ID:      schema.NewTabID(),
		Name:    name,
		Path:    strings.TrimSpace(req.Path),
		Mode:    mode,
		history: newHistory(s.cfg.HistoryLimit),
	}
	s.tabs[t.ID] = t
	s.order = append(s.order, t.ID)
	index := len(s.order) - 1
	doc := s.documentLocked()
	s.mu.Unlock()

	if err := s.saveDocument(log, doc, func() {
		delete(s.tabs, t.ID)
		s.order = removeTabID(s.order, t.ID)
	}); err != nil {
		return schema.CreateTabResponse{}, err
	}
	log.Info("service tab created", "tab", t.ID, "tab_name", t.Name, "mode", t.Mode)
	return schema.CreateTabResponse{Tab: t.Snapshot(index)}, nil
}

func (s *service) UpdateTab(ctx context.Context, req schema.UpdateTabRequest) (schema.UpdateTabResponse, error) {
	if ctx == nil {
		return schema.UpdateTabResponse{}, errors.New("missing context")
	}
	log := logx.WithTab(ctx, req.TabID)
	var mode schema.OperationMode
	if req.Mode != nil {
		parsed, err := schema.ParseOperationMode(string(*req.Mode))
		if err != nil {
			log.Warn("service tab update rejected", "err", err)
			return schema.UpdateTabResponse{}, err
		}
		mode = parsed
	}

	s.mu.Lock()
	t := s.tabs[req.TabID]
	if t == nil {
		s.mu.Unlock()
		log.Warn("service tab update failed", "err", schema.ErrTabNotFound)
		return schema.UpdateTabResponse{}, schema.ErrTabNotFound
	}
	prev := *t
	if req.Name != nil {
		name := schema.NormalizeTabName(*req.Name)
		if name != "" {
			t.Name = name
		}
	}
	if req.Path != nil {
		t.Path = strings.TrimSpace(*req.Path)
	}
	if req.Mode != nil {
		t.Mode = mode
	}
	index := s.indexOfLocked(t.ID)
	doc := s.documentLocked()
	s.mu.Unlock()

	if err := s.saveDocument(log, doc, func() {
		t.Name = prev.Name
		t.Path = prev.Path
		t.Mode = prev.Mode
	}); err != nil {
		return schema.UpdateTabResponse{}, err
	}
	log.Info("service tab updated", "tab_name", t.Name, "path", t.Path, "mode", t.Mode)
	return schema.UpdateTabResponse{Tab: t.Snapshot(index)}, nil
}

func (s *service) DeleteTab(ctx context.Context, req schema.DeleteTabRequest) (schema.DeleteTabResponse, error) {
	if ctx == nil {
		return schema.DeleteTabResponse{}, errors.New("missing context")
	}
	log := logx.WithTab(ctx, req.TabID)

	s.mu.Lock()
	t := s.tabs[req.TabID]
	if t == nil {
		s.mu.Unlock()
		log.Warn("service tab delete failed", "err", schema.ErrTabNotFound)
		return schema.DeleteTabResponse{}, schema.ErrTabNotFound
	}
	index := s.indexOfLocked(t.ID)
	prevOrder := append([]schema.TabID(nil), s.order...)
	delete(s.tabs, req.TabID)
	s.order = removeTabID(s.order, req.TabID)
	doc := s.documentLocked()
	s.mu.Unlock()

	if err := s.saveDocument(log, doc, func() {
		s.tabs[t.ID] = t
		s.order = prevOrder
	}); err != nil {
		return schema.DeleteTabResponse{}, err
	}
	log.Info("service tab deleted", "tab_name", t.Name)
	return schema.DeleteTabResponse{Tab: t.Snapshot(index)}, nil
}

func (s *service) ReorderTab(ctx context.Context, req schema.ReorderTabRequest) (schema.ReorderTabResponse, error) {
	if ctx == nil {
		return schema.ReorderTabResponse{}, errors.New("missing context")
	}
	log := logx.WithTab(ctx, req.TabID)

	s.mu.Lock()
	t := s.tabs[req.TabID]
	if t == nil {
		s.mu.Unlock()
		log.Warn("service tab reorder failed", "err", schema.ErrTabNotFound)
		return schema.ReorderTabResponse{}, schema.ErrTabNotFound
	}
	prevOrder := append([]schema.TabID(nil), s.order...)
	s.order = removeTabID(s.order, req.TabID)
	index := clampIndex(req.Index, len(s.order)+1)
	s.order = append(s.order[:index], append([]schema.TabID{req.TabID}, s.order[index:]...)...)
	doc := s.documentLocked()
	snapshots := s.snapshotsLocked()
	s.mu.Unlock()

	if err := s.saveDocument(log, doc, func() {
		s.order = prevOrder
	}); err != nil {
		return schema.ReorderTabResponse{}, err
	}
	log.Info("service tab reordered", "index", index)
	return schema.ReorderTabResponse{Tabs: snapshots}, nil
}

func (s *service) GetTab(ctx context.Context, req schema.GetTabRequest) (schema.GetTabResponse, error) {
	log := logx.WithTab(ctx, req.TabID)
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.tabs[req.TabID]
	if t == nil {
		log.Warn("service tab get failed", "err", schema.ErrTabNotFound)
		return schema.GetTabResponse{}, schema.ErrTabNotFound
	}
	return schema.GetTabResponse{Tab: t.Snapshot(s.indexOfLocked(t.ID))}, nil
}

func (s *service) ListTabs(ctx context.Context, req schema.ListTabsRequest) (schema.ListTabsResponse, error) {
	_ = req
	log := logx.Ctx(ctx)
	s.mu.Lock()
	snapshots := s.snapshotsLocked()
	s.mu.Unlock()
	log.Trace("service tabs listed", "count", len(snapshots))
	return schema.ListTabsResponse{Tabs: snapshots}, nil
}

// snapshotsLocked returns snapshots in order. Callers hold s.mu.
func (s *service) snapshotsLocked() []schema.TabSnapshot {
	snapshots := make([]schema.TabSnapshot, 0, len(s.order))
	for i, id := range s.order {
		t := s.tabs[id]
		if t == nil {
			continue
		}
		snapshots = append(snapshots, t.Snapshot(i))
	}
	return snapshots
}

// indexOfLocked reports a tab's position in the order. Callers hold s.mu.
func (s *service) indexOfLocked(id schema.TabID) int {
	for i, current := range s.order {
		if current == id {
			return i
		}
	}
	return -1
}
