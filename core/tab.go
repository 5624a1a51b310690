package core

import (
	"pkt.systems/routedrop/schema"
)

// tab tracks the state of a single routing tab.
type tab struct {
	ID      schema.TabID
	Name    schema.TabName
	Path    string
	Mode    schema.OperationMode
	history *historyBuffer
}

func newTabFromPersisted(wire schema.Tab, historyMax int) *tab {
	return &tab{
		ID:      wire.ID,
		Name:    wire.Name,
		Path:    wire.Path,
		Mode:    schema.NormalizeOperationMode(string(wire.Mode)),
		history: newHistoryFromPersisted(historyMax, wire.History),
	}
}

// Snapshot returns a transport-friendly view of the tab.
func (t *tab) Snapshot(index int) schema.TabSnapshot {
	return schema.TabSnapshot{
		ID:         t.ID,
		Name:       t.Name,
		Path:       t.Path,
		Mode:       t.Mode,
		OrderIndex: index,
		HistoryLen: t.history.Len(),
	}
}

// wire returns the tab in document form.
func (t *tab) wire() schema.Tab {
	entries := t.history.Entries()
	if entries == nil {
		entries = []schema.HistoryEntry{}
	}
	return schema.Tab{
		ID:      t.ID,
		Name:    t.Name,
		Path:    t.Path,
		Mode:    t.Mode,
		History: entries,
	}
}
