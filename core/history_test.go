package core

import (
	"fmt"
	"testing"

	"pkt.systems/routedrop/schema"
)

func entryForSource(source string) schema.HistoryEntry {
	return schema.HistoryEntry{
		Timestamp: "2026-08-21 12:00:00",
		Operation: schema.ModeCopyReplace,
		Source:    source,
		Result:    schema.Success(),
	}
}

func TestHistoryBufferCapsAtLimit(t *testing.T) {
	h := newHistory(3)
	for i := 0; i < 5; i++ {
		h.Append(entryForSource(fmt.Sprintf("/src/%d", i)))
	}
	entries := h.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Source != "/src/2" || entries[2].Source != "/src/4" {
		t.Fatalf("expected oldest entries dropped, got %v", entries)
	}
}

func TestHistoryBufferKeepsDuplicates(t *testing.T) {
	h := newHistory(10)
	h.Append(entryForSource("/src/same"))
	h.Append(entryForSource("/src/same"))
	if h.Len() != 2 {
		t.Fatalf("expected repeated attempts to be kept, got %d entries", h.Len())
	}
}

func TestHistoryBufferEntriesReturnsCopy(t *testing.T) {
	h := newHistory(10)
	h.Append(entryForSource("/src/a"))
	entries := h.Entries()
	entries[0].Source = "/mutated"
	if h.Entries()[0].Source != "/src/a" {
		t.Fatalf("buffer mutated through returned slice")
	}
}

func TestHistoryBufferFromPersistedTruncates(t *testing.T) {
	persisted := make([]schema.HistoryEntry, 5)
	for i := range persisted {
		persisted[i] = entryForSource(fmt.Sprintf("/src/%d", i))
	}
	h := newHistoryFromPersisted(2, persisted)
	entries := h.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Source != "/src/3" || entries[1].Source != "/src/4" {
		t.Fatalf("expected newest entries kept, got %v", entries)
	}
}

func TestHistoryBufferClear(t *testing.T) {
	h := newHistory(10)
	h.Append(entryForSource("/src/a"))
	h.Clear()
	if h.Len() != 0 {
		t.Fatalf("expected empty buffer after clear, got %d", h.Len())
	}
	if h.Entries() != nil {
		t.Fatalf("expected nil entries after clear")
	}
}
