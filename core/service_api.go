package core

import (
	"context"

	"pkt.systems/routedrop/schema"
)

// Service is the transport-agnostic API for managing routing tabs,
// submitting drops, and moving tab documents in and out.
type Service interface {
	CreateTab(ctx context.Context, req schema.CreateTabRequest) (schema.CreateTabResponse, error)
	UpdateTab(ctx context.Context, req schema.UpdateTabRequest) (schema.UpdateTabResponse, error)
	DeleteTab(ctx context.Context, req schema.DeleteTabRequest) (schema.DeleteTabResponse, error)
	ReorderTab(ctx context.Context, req schema.ReorderTabRequest) (schema.ReorderTabResponse, error)
	GetTab(ctx context.Context, req schema.GetTabRequest) (schema.GetTabResponse, error)
	ListTabs(ctx context.Context, req schema.ListTabsRequest) (schema.ListTabsResponse, error)
	SubmitDrop(ctx context.Context, req schema.SubmitDropRequest) (schema.SubmitDropResponse, error)
	TabHistory(ctx context.Context, req schema.TabHistoryRequest) (schema.TabHistoryResponse, error)
	ClearHistory(ctx context.Context, req schema.ClearHistoryRequest) (schema.ClearHistoryResponse, error)
	ExportTabs(ctx context.Context, req schema.ExportTabsRequest) (schema.ExportTabsResponse, error)
	ImportTabs(ctx context.Context, req schema.ImportTabsRequest) (schema.ImportTabsResponse, error)
}
