package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"pkt.systems/routedrop/schema"
)

// TabLines renders a tab listing as plain text lines.
func TabLines(tabs []schema.TabSnapshot) []string {
	if len(tabs) == 0 {
		return []string{"no tabs configured"}
	}
	lines := make([]string, 0, len(tabs))
	for _, snapshot := range tabs {
		lines = append(lines, TabLine(snapshot))
	}
	return lines
}

// TabLine renders one tab as a summary line.
func TabLine(snapshot schema.TabSnapshot) string {
	dest := snapshot.Path
	if strings.TrimSpace(dest) == "" {
		dest = "(no destination)"
	}
	entries := "entry"
	if snapshot.HistoryLen != 1 {
		entries = "entries"
	}
	return fmt.Sprintf("%d. %s  %s  %s  %s  (%d %s)",
		snapshot.OrderIndex+1, snapshot.Name, snapshot.ID, snapshot.Mode, dest, snapshot.HistoryLen, entries)
}

// HistoryLines renders history entries newest first, as provided.
func HistoryLines(entries []schema.HistoryEntry) []string {
	if len(entries) == 0 {
		return []string{"history is empty"}
	}
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, HistoryLine(entry))
	}
	return lines
}

// HistoryLine renders one history entry.
func HistoryLine(entry schema.HistoryEntry) string {
	stamp := entry.Timestamp
	if rel := relativeTime(entry.Timestamp); rel != "" {
		stamp = fmt.Sprintf("%s (%s)", entry.Timestamp, rel)
	}
	line := fmt.Sprintf("%s  %-12s  %s", stamp, entry.Operation, entry.Source)
	if entry.Destination != "" {
		line += " -> " + entry.Destination
	}
	line += fmt.Sprintf("  [%s]", entry.Result.String())
	if entry.Cleanup != "" {
		line += fmt.Sprintf("  (cleanup: %s)", entry.Cleanup)
	}
	return line
}

// DropSummary renders a routed drop: one line per attempt plus a tally.
func DropSummary(resp schema.SubmitDropResponse) []string {
	lines := make([]string, 0, len(resp.Entries)+2)
	var routed, skipped, failed int
	for _, entry := range resp.Entries {
		lines = append(lines, HistoryLine(entry))
		switch entry.Result.Kind {
		case schema.ResultSuccess:
			routed++
		case schema.ResultSkipped:
			skipped++
		default:
			failed++
		}
	}
	lines = append(lines, fmt.Sprintf("%d routed, %d skipped, %d failed", routed, skipped, failed))
	if resp.PersistWarning != "" {
		lines = append(lines, "warning: "+resp.PersistWarning)
	}
	return lines
}

// relativeTime renders an entry timestamp as a human age. Timestamps
// that do not parse render without one.
func relativeTime(stamp string) string {
	ts, err := time.ParseInLocation(schema.TimestampLayout, stamp, time.Local)
	if err != nil {
		return ""
	}
	return humanize.Time(ts)
}
