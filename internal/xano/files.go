package xano

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// ListFiles pages through workspace file metadata. listQuery carries optional
// page/per_page/search/access/sort/order parameters.
func (c *Client) ListFiles(ctx context.Context, instance, workspaceID string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodGet,
		path:   []string{"workspace", workspaceID, "file"},
		query:  query,
	})
}

func (c *Client) FileDetails(ctx context.Context, instance, workspaceID, fileID string) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), get("workspace", workspaceID, "file", fileID))
}

func (c *Client) DeleteFile(ctx context.Context, instance, workspaceID, fileID string) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodDelete,
		path:   []string{"workspace", workspaceID, "file", fileID},
	})
}

// BulkDeleteFiles removes all named files in one request.
func (c *Client) BulkDeleteFiles(ctx context.Context, instance, workspaceID string, fileIDs []any) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodPost,
		path:   []string{"workspace", workspaceID, "file", "bulk_delete"},
		body:   map[string]any{"ids": fileIDs},
	})
}
