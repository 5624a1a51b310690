package core

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"pkt.systems/routedrop/schema"
)

func TestCreateTabDefaults(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "config.json")
	svc, err := NewService(schema.ServiceConfig{StatePath: statePath}, ServiceDeps{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	resp, err := svc.CreateTab(context.Background(), schema.CreateTabRequest{})
	if err != nil {
		t.Fatalf("create tab: %v", err)
	}
	if resp.Tab.Name != "Tab 1" {
		t.Fatalf("expected default name Tab 1, got %q", resp.Tab.Name)
	}
	if resp.Tab.Mode != schema.ModeCopyReplace {
		t.Fatalf("expected default mode %q, got %q", schema.ModeCopyReplace, resp.Tab.Mode)
	}
	if resp.Tab.ID == "" {
		t.Fatalf("expected generated tab id")
	}
	if resp.Tab.OrderIndex != 0 {
		t.Fatalf("expected order index 0, got %d", resp.Tab.OrderIndex)
	}

	second, err := svc.CreateTab(context.Background(), schema.CreateTabRequest{
		Name: "Drops",
		Path: filepath.Join(t.TempDir(), "drops"),
		Mode: schema.ModeMoveNew,
	})
	if err != nil {
		t.Fatalf("create second tab: %v", err)
	}
	if second.Tab.Name != "Drops" || second.Tab.Mode != schema.ModeMoveNew {
		t.Fatalf("unexpected second tab %+v", second.Tab)
	}
	if second.Tab.OrderIndex != 1 {
		t.Fatalf("expected order index 1, got %d", second.Tab.OrderIndex)
	}

	svc2, err := NewService(schema.ServiceConfig{StatePath: statePath}, ServiceDeps{})
	if err != nil {
		t.Fatalf("new service reload: %v", err)
	}
	list, err := svc2.ListTabs(context.Background(), schema.ListTabsRequest{})
	if err != nil {
		t.Fatalf("list tabs reload: %v", err)
	}
	if len(list.Tabs) != 2 {
		t.Fatalf("expected 2 tabs after reload, got %d", len(list.Tabs))
	}
	if list.Tabs[0].ID != resp.Tab.ID || list.Tabs[1].ID != second.Tab.ID {
		t.Fatalf("expected tab ids to survive reload, got %+v", list.Tabs)
	}
}

func TestCreateTabNumbersFollowTabCount(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "config.json")
	svc, err := NewService(schema.ServiceConfig{StatePath: statePath}, ServiceDeps{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	for _, want := range []schema.TabName{"Tab 1", "Tab 2", "Tab 3"} {
		resp, err := svc.CreateTab(context.Background(), schema.CreateTabRequest{})
		if err != nil {
			t.Fatalf("create tab: %v", err)
		}
		if resp.Tab.Name != want {
			t.Fatalf("expected name %q, got %q", want, resp.Tab.Name)
		}
	}
}

func TestCreateTabRejectsInvalidMode(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "config.json")
	svc, err := NewService(schema.ServiceConfig{StatePath: statePath}, ServiceDeps{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if _, err := svc.CreateTab(context.Background(), schema.CreateTabRequest{Mode: "shuffle"}); !errors.Is(err, schema.ErrInvalidMode) {
		t.Fatalf("expected invalid mode error, got %v", err)
	}
	list, err := svc.ListTabs(context.Background(), schema.ListTabsRequest{})
	if err != nil {
		t.Fatalf("list tabs: %v", err)
	}
	if len(list.Tabs) != 0 {
		t.Fatalf("expected no tabs after rejected create, got %d", len(list.Tabs))
	}
}

func TestUpdateTabFields(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "config.json")
	svc, err := NewService(schema.ServiceConfig{StatePath: statePath}, ServiceDeps{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	created, err := svc.CreateTab(context.Background(), schema.CreateTabRequest{Name: "Inbox"})
	if err != nil {
		t.Fatalf("create tab: %v", err)
	}
	tabID := created.Tab.ID

	name := schema.TabName("Sorted")
	path := filepath.Join(t.TempDir(), "sorted")
	mode := schema.ModeMoveReplace
	updated, err := svc.UpdateTab(context.Background(), schema.UpdateTabRequest{
		TabID: tabID,
		Name:  &name,
		Path:  &path,
		Mode:  &mode,
	})
	if err != nil {
		t.Fatalf("update tab: %v", err)
	}
	if updated.Tab.Name != "Sorted" || updated.Tab.Path != path || updated.Tab.Mode != schema.ModeMoveReplace {
		t.Fatalf("unexpected tab after update: %+v", updated.Tab)
	}

	blank := schema.TabName("   ")
	kept, err := svc.UpdateTab(context.Background(), schema.UpdateTabRequest{TabID: tabID, Name: &blank})
	if err != nil {
		t.Fatalf("update tab blank name: %v", err)
	}
	if kept.Tab.Name != "Sorted" {
		t.Fatalf("expected blank name to be ignored, got %q", kept.Tab.Name)
	}

	svc2, err := NewService(schema.ServiceConfig{StatePath: statePath}, ServiceDeps{})
	if err != nil {
		t.Fatalf("new service reload: %v", err)
	}
	got, err := svc2.GetTab(context.Background(), schema.GetTabRequest{TabID: tabID})
	if err != nil {
		t.Fatalf("get tab reload: %v", err)
	}
	if got.Tab.Name != "Sorted" || got.Tab.Mode != schema.ModeMoveReplace {
		t.Fatalf("expected update to persist, got %+v", got.Tab)
	}
}

func TestUpdateTabUnknownID(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "config.json")
	svc, err := NewService(schema.ServiceConfig{StatePath: statePath}, ServiceDeps{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	name := schema.TabName("Ghost")
	if _, err := svc.UpdateTab(context.Background(), schema.UpdateTabRequest{TabID: schema.NewTabID(), Name: &name}); !errors.Is(err, schema.ErrTabNotFound) {
		t.Fatalf("expected tab not found, got %v", err)
	}
}

func TestDeleteTabRemoves(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "config.json")
	svc, err := NewService(schema.ServiceConfig{StatePath: statePath}, ServiceDeps{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	first, err := svc.CreateTab(context.Background(), schema.CreateTabRequest{Name: "First"})
	if err != nil {
		t.Fatalf("create first tab: %v", err)
	}
	second, err := svc.CreateTab(context.Background(), schema.CreateTabRequest{Name: "Second"})
	if err != nil {
		t.Fatalf("create second tab: %v", err)
	}

	deleted, err := svc.DeleteTab(context.Background(), schema.DeleteTabRequest{TabID: first.Tab.ID})
	if err != nil {
		t.Fatalf("delete tab: %v", err)
	}
	if deleted.Tab.ID != first.Tab.ID {
		t.Fatalf("expected deleted tab %q, got %q", first.Tab.ID, deleted.Tab.ID)
	}
	if _, err := svc.GetTab(context.Background(), schema.GetTabRequest{TabID: first.Tab.ID}); !errors.Is(err, schema.ErrTabNotFound) {
		t.Fatalf("expected tab not found after delete, got %v", err)
	}
	list, err := svc.ListTabs(context.Background(), schema.ListTabsRequest{})
	if err != nil {
		t.Fatalf("list tabs: %v", err)
	}
	if len(list.Tabs) != 1 || list.Tabs[0].ID != second.Tab.ID || list.Tabs[0].OrderIndex != 0 {
		t.Fatalf("unexpected tabs after delete: %+v", list.Tabs)
	}

	if _, err := svc.DeleteTab(context.Background(), schema.DeleteTabRequest{TabID: first.Tab.ID}); !errors.Is(err, schema.ErrTabNotFound) {
		t.Fatalf("expected tab not found on repeat delete, got %v", err)
	}

	svc2, err := NewService(schema.ServiceConfig{StatePath: statePath}, ServiceDeps{})
	if err != nil {
		t.Fatalf("new service reload: %v", err)
	}
	list2, err := svc2.ListTabs(context.Background(), schema.ListTabsRequest{})
	if err != nil {
		t.Fatalf("list tabs reload: %v", err)
	}
	if len(list2.Tabs) != 1 {
		t.Fatalf("expected delete to persist, got %d tabs", len(list2.Tabs))
	}
}

func TestReorderTabClampsIndex(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "config.json")
	svc, err := NewService(schema.ServiceConfig{StatePath: statePath}, ServiceDeps{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	var ids []schema.TabID
	for _, name := range []schema.TabName{"A", "B", "C"} {
		resp, err := svc.CreateTab(context.Background(), schema.CreateTabRequest{Name: name})
		if err != nil {
			t.Fatalf("create tab %s: %v", name, err)
		}
		ids = append(ids, resp.Tab.ID)
	}

	resp, err := svc.ReorderTab(context.Background(), schema.ReorderTabRequest{TabID: ids[0], Index: 99})
	if err != nil {
		t.Fatalf("reorder past end: %v", err)
	}
	if got := tabNames(resp.Tabs); got != "B,C,A" {
		t.Fatalf("expected B,C,A after clamped move, got %s", got)
	}

	resp, err = svc.ReorderTab(context.Background(), schema.ReorderTabRequest{TabID: ids[0], Index: -5})
	if err != nil {
		t.Fatalf("reorder before start: %v", err)
	}
	if got := tabNames(resp.Tabs); got != "A,B,C" {
		t.Fatalf("expected A,B,C after clamped move, got %s", got)
	}

	resp, err = svc.ReorderTab(context.Background(), schema.ReorderTabRequest{TabID: ids[2], Index: 0})
	if err != nil {
		t.Fatalf("reorder to front: %v", err)
	}
	if got := tabNames(resp.Tabs); got != "C,A,B" {
		t.Fatalf("expected C,A,B, got %s", got)
	}
	for i, snapshot := range resp.Tabs {
		if snapshot.OrderIndex != i {
			t.Fatalf("expected order index %d, got %d", i, snapshot.OrderIndex)
		}
	}

	if _, err := svc.ReorderTab(context.Background(), schema.ReorderTabRequest{TabID: schema.NewTabID(), Index: 0}); !errors.Is(err, schema.ErrTabNotFound) {
		t.Fatalf("expected tab not found, got %v", err)
	}

	svc2, err := NewService(schema.ServiceConfig{StatePath: statePath}, ServiceDeps{})
	if err != nil {
		t.Fatalf("new service reload: %v", err)
	}
	list, err := svc2.ListTabs(context.Background(), schema.ListTabsRequest{})
	if err != nil {
		t.Fatalf("list tabs reload: %v", err)
	}
	if got := tabNames(list.Tabs); got != "C,A,B" {
		t.Fatalf("expected order to persist, got %s", got)
	}
}

func tabNames(tabs []schema.TabSnapshot) string {
	out := ""
	for i, snapshot := range tabs {
		if i > 0 {
			out += ","
		}
		out += string(snapshot.Name)
	}
	return out
}
