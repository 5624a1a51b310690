package schema

// Tab lifecycle.

// CreateTabRequest describes a request to create a tab.
type CreateTabRequest struct {
	Name TabName
	Path string
	Mode OperationMode
}

// CreateTabResponse reports the created tab.
type CreateTabResponse struct {
	Tab TabSnapshot
}

// UpdateTabRequest describes a partial tab update. Nil fields are left
// untouched.
type UpdateTabRequest struct {
	TabID TabID
	Name  *TabName
	Path  *string
	Mode  *OperationMode
}

// UpdateTabResponse reports the updated tab.
type UpdateTabResponse struct {
	Tab TabSnapshot
}

// DeleteTabRequest describes a request to delete a tab.
type DeleteTabRequest struct {
	TabID TabID
}

// DeleteTabResponse reports the deleted tab snapshot.
type DeleteTabResponse struct {
	Tab TabSnapshot
}

// ReorderTabRequest describes a request to move a tab to a new position.
// The index is clamped to the valid range.
type ReorderTabRequest struct {
	TabID TabID
	Index int
}

// ReorderTabResponse reports all tabs in their new order.
type ReorderTabResponse struct {
	Tabs []TabSnapshot
}

// GetTabRequest describes a request to fetch one tab.
type GetTabRequest struct {
	TabID TabID
}

// GetTabResponse reports the tab snapshot.
type GetTabResponse struct {
	Tab TabSnapshot
}

// ListTabsRequest describes a request to list tabs.
type ListTabsRequest struct{}

// ListTabsResponse reports tabs in order.
type ListTabsResponse struct {
	Tabs []TabSnapshot
}

// Routing.

// SubmitDropRequest describes a batch of sources dropped onto a tab.
type SubmitDropRequest struct {
	TabID   TabID
	Sources []string
}

// SubmitDropResponse reports the history entries recorded for the batch,
// one per source in request order. PersistWarning is non-empty when the
// entries could not be written to the store; they remain in memory.
type SubmitDropResponse struct {
	Tab            TabSnapshot
	Entries        []HistoryEntry
	PersistWarning string
}

// History.

// TabHistoryRequest describes a request to fetch a tab's history.
type TabHistoryRequest struct {
	TabID TabID
}

// TabHistoryResponse reports history entries, newest first.
type TabHistoryResponse struct {
	Entries []HistoryEntry
}

// ClearHistoryRequest describes a request to clear a tab's history.
type ClearHistoryRequest struct {
	TabID TabID
}

// ClearHistoryResponse reports the tab after clearing and how many
// entries were removed.
type ClearHistoryResponse struct {
	Tab     TabSnapshot
	Cleared int
}

// Portability.

// ExportTabsRequest describes a request to export tabs as a document.
// An empty TabIDs selects all tabs.
type ExportTabsRequest struct {
	TabIDs []TabID
}

// ExportTabsResponse reports the exported document.
type ExportTabsResponse struct {
	Document ConfigDocument
}

// ImportTabsRequest describes a request to import a document.
type ImportTabsRequest struct {
	Document ConfigDocument
	Mode     ImportMode
}

// ImportTabsResponse reports the registry after the import.
type ImportTabsResponse struct {
	Tabs  []TabSnapshot
	Added int
}
