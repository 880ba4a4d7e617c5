package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) recentLogs(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	cutoff := time.Now().AddDate(0, 0, -14).Format("2006-01-02")

	var recent []any
	for _, l := range h.store.ListLogs(ctx) {
		if l.Date >= cutoff {
			recent = append(recent, l)
		}
	}

	return jsonContents(req.Params.URI, recent)
}

func (h *handlers) program(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonContents(req.Params.URI, h.store.Program(ctx))
}

func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
