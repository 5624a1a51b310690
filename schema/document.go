package schema

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the wall-clock format recorded in history entries.
const TimestampLayout = "2006-01-02 15:04:05"

// Timestamp formats a point in time for a history entry.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// HistoryEntry records one routing attempt against a tab.
type HistoryEntry struct {
	Timestamp   string        `json:"timestamp"`
	Operation   OperationMode `json:"operation"`
	Source      string        `json:"source"`
	Destination string        `json:"destination"`
	Result      Result        `json:"result"`
	// Cleanup notes a secondary failure after a successful transfer, such
	// as a cross-device move that copied but could not remove the source.
	Cleanup string `json:"cleanup,omitempty"`
}

// Tab is the wire form of a routing tab. Position in the document's tabs
// array is the tab's order.
type Tab struct {
	ID      TabID          `json:"id"`
	Name    TabName        `json:"name"`
	Path    string         `json:"path"`
	Mode    OperationMode  `json:"operation"`
	History []HistoryEntry `json:"history"`
}

// Clone returns a deep copy of the tab.
func (t Tab) Clone() Tab {
	out := t
	out.History = append([]HistoryEntry(nil), t.History...)
	return out
}

// ConfigDocument is the persisted and interchanged form of all tabs.
type ConfigDocument struct {
	Tabs []Tab `json:"tabs"`
}

// Clone returns a deep copy of the document.
func (d ConfigDocument) Clone() ConfigDocument {
	if d.Tabs == nil {
		return ConfigDocument{}
	}
	tabs := make([]Tab, 0, len(d.Tabs))
	for _, tab := range d.Tabs {
		tabs = append(tabs, tab.Clone())
	}
	return ConfigDocument{Tabs: tabs}
}

// Validate checks the document against the interchange schema. The tabs
// array must be present and every tab needs an id.
func (d ConfigDocument) Validate() error {
	if d.Tabs == nil {
		return fmt.Errorf("%w: missing tabs array", ErrInvalidDocument)
	}
	for i, tab := range d.Tabs {
		if strings.TrimSpace(string(tab.ID)) == "" {
			return fmt.Errorf("%w: tab %d has no id", ErrInvalidDocument, i)
		}
	}
	return nil
}

// Normalize maps legacy operation values onto the current set, caps each
// tab's history at limit entries keeping the newest, and replaces nil
// slices so the document marshals with explicit arrays.
func (d ConfigDocument) Normalize(limit int) ConfigDocument {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	tabs := make([]Tab, 0, len(d.Tabs))
	for _, tab := range d.Tabs {
		tab = tab.Clone()
		tab.Mode = NormalizeOperationMode(string(tab.Mode))
		if len(tab.History) > limit {
			tab.History = tab.History[len(tab.History)-limit:]
		}
		if tab.History == nil {
			tab.History = []HistoryEntry{}
		}
		tabs = append(tabs, tab)
	}
	return ConfigDocument{Tabs: tabs}
}
