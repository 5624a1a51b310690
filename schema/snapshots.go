package schema

// TabSnapshot is a read-only view of tab state for callers. History is
// summarized by count; fetch entries through a history request.
type TabSnapshot struct {
	ID         TabID
	Name       TabName
	Path       string
	Mode       OperationMode
	OrderIndex int
	HistoryLen int
}
