package core

import "pkt.systems/routedrop/schema"

type historyBuffer struct {
	entries []schema.HistoryEntry
	max     int
}

func newHistory(max int) *historyBuffer {
	if max <= 0 {
		max = schema.DefaultHistoryLimit
	}
	return &historyBuffer{max: max}
}

func newHistoryFromPersisted(max int, entries []schema.HistoryEntry) *historyBuffer {
	h := newHistory(max)
	if len(entries) == 0 {
		return h
	}
	if len(entries) > h.max {
		entries = entries[len(entries)-h.max:]
	}
	h.entries = append([]schema.HistoryEntry(nil), entries...)
	return h
}

// Append records an entry, discarding the oldest once the cap is hit.
// Every attempt is kept; there is no de-duplication.
func (h *historyBuffer) Append(entry schema.HistoryEntry) {
	if h == nil {
		return
	}
	h.entries = append(h.entries, entry)
	if len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
}

func (h *historyBuffer) Entries() []schema.HistoryEntry {
	if h == nil {
		return nil
	}
	return append([]schema.HistoryEntry(nil), h.entries...)
}

func (h *historyBuffer) Len() int {
	if h == nil {
		return 0
	}
	return len(h.entries)
}

func (h *historyBuffer) Clear() {
	if h == nil {
		return
	}
	h.entries = nil
}
