package format

import (
	"strings"
	"testing"

	"pkt.systems/routedrop/schema"
)

func TestTabLineShowsPolicyAndDestination(t *testing.T) {
	line := TabLine(schema.TabSnapshot{
		ID:         "11111111-1111-1111-1111-111111111111",
		Name:       "L1",
		Path:       "/srv/inbox",
		Mode:       schema.ModeMoveNew,
		OrderIndex: 2,
		HistoryLen: 1,
	})
	for _, want := range []string{"3. L1", "move_new", "/srv/inbox", "(1 entry)"} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in line %q", want, line)
		}
	}

	bare := TabLine(schema.TabSnapshot{Name: "Unset", HistoryLen: 2})
	if !strings.Contains(bare, "(no destination)") {
		t.Fatalf("expected destination placeholder, got %q", bare)
	}
	if !strings.Contains(bare, "(2 entries)") {
		t.Fatalf("expected plural entries, got %q", bare)
	}
}

func TestTabLinesEmpty(t *testing.T) {
	lines := TabLines(nil)
	if len(lines) != 1 || lines[0] != "no tabs configured" {
		t.Fatalf("unexpected lines %v", lines)
	}
}

func TestHistoryLineFormats(t *testing.T) {
	line := HistoryLine(schema.HistoryEntry{
		Timestamp:   "2020-01-01 00:00:00",
		Operation:   schema.ModeCopyReplace,
		Source:      "/src/report.txt",
		Destination: "/dst/report.txt",
		Result:      schema.Success(),
	})
	for _, want := range []string{"2020-01-01 00:00:00", "ago)", "copy_replace", "/src/report.txt -> /dst/report.txt", "[Success]"} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in line %q", want, line)
		}
	}

	failed := HistoryLine(schema.HistoryEntry{
		Timestamp: "not a timestamp",
		Operation: schema.ModeMoveNew,
		Source:    "/src/gone.txt",
		Result:    schema.Failed("source does not exist"),
	})
	if strings.Contains(failed, "ago)") {
		t.Fatalf("expected no relative age for bad timestamp, got %q", failed)
	}
	if !strings.Contains(failed, "[Failed: source does not exist]") {
		t.Fatalf("expected failure result, got %q", failed)
	}
	if strings.Contains(failed, "->") {
		t.Fatalf("expected no destination arrow, got %q", failed)
	}

	cleanup := HistoryLine(schema.HistoryEntry{
		Timestamp:   "2020-01-01 00:00:00",
		Operation:   schema.ModeMoveReplace,
		Source:      "/src/big",
		Destination: "/dst/big",
		Result:      schema.Success(),
		Cleanup:     "remove /src/big: permission denied",
	})
	if !strings.Contains(cleanup, "(cleanup: remove /src/big: permission denied)") {
		t.Fatalf("expected cleanup note, got %q", cleanup)
	}
}

func TestHistoryLinesEmpty(t *testing.T) {
	lines := HistoryLines(nil)
	if len(lines) != 1 || lines[0] != "history is empty" {
		t.Fatalf("unexpected lines %v", lines)
	}
}

func TestDropSummaryTallies(t *testing.T) {
	resp := schema.SubmitDropResponse{
		Entries: []schema.HistoryEntry{
			{Timestamp: "2020-01-01 00:00:00", Operation: schema.ModeCopyReplace, Source: "/a", Destination: "/d/a", Result: schema.Success()},
			{Timestamp: "2020-01-01 00:00:01", Operation: schema.ModeCopyReplace, Source: "/b", Destination: "/d/b", Result: schema.SkippedExists()},
			{Timestamp: "2020-01-01 00:00:02", Operation: schema.ModeCopyReplace, Source: "/c", Result: schema.Failed("source does not exist")},
		},
		PersistWarning: "history kept in memory only; config save failed",
	}
	lines := DropSummary(resp)
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d (%v)", len(lines), lines)
	}
	if lines[3] != "1 routed, 1 skipped, 1 failed" {
		t.Fatalf("unexpected tally %q", lines[3])
	}
	if lines[4] != "warning: history kept in memory only; config save failed" {
		t.Fatalf("unexpected warning line %q", lines[4])
	}
}
