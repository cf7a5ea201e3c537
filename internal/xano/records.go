package xano

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// BrowseContent pages through table records. The X-Data-Source header selects
// the live data source, matching what the workspace UI shows.
func (c *Client) BrowseContent(ctx context.Context, instance, workspaceID, tableID string, page, perPage int) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))
	return c.do(ctx, c.metaBase(instance), request{
		method:  http.MethodGet,
		path:    []string{"workspace", workspaceID, "table", tableID, "content"},
		query:   query,
		headers: map[string]string{"X-Data-Source": "live"},
	})
}

// SearchContent filters and sorts table records server-side. search is a list
// of condition mappings and sort a field→direction mapping, both forwarded
// unchanged.
func (c *Client) SearchContent(ctx context.Context, instance, workspaceID, tableID string, body map[string]any) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method:  http.MethodPost,
		path:    []string{"workspace", workspaceID, "table", tableID, "content", "search"},
		headers: map[string]string{"X-Data-Source": "live"},
		body:    body,
	})
}

func (c *Client) GetRecord(ctx context.Context, instance, workspaceID, tableID, recordID string) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method:  http.MethodGet,
		path:    []string{"workspace", workspaceID, "table", tableID, "content", recordID},
		headers: map[string]string{"X-Data-Source": "live"},
	})
}

func (c *Client) CreateRecord(ctx context.Context, instance, workspaceID, tableID string, record map[string]any) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodPost,
		path:   []string{"workspace", workspaceID, "table", tableID, "content"},
		body:   record,
	})
}

func (c *Client) UpdateRecord(ctx context.Context, instance, workspaceID, tableID, recordID string, updates map[string]any) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodPut,
		path:   []string{"workspace", workspaceID, "table", tableID, "content", recordID},
		body:   updates,
	})
}

func (c *Client) DeleteRecord(ctx context.Context, instance, workspaceID, tableID, recordID string) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodDelete,
		path:   []string{"workspace", workspaceID, "table", tableID, "content", recordID},
	})
}

// BulkCreateRecords inserts all records in one request.
func (c *Client) BulkCreateRecords(ctx context.Context, instance, workspaceID, tableID string, records []any) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodPost,
		path:   []string{"workspace", workspaceID, "table", tableID, "content", "bulk"},
		body:   map[string]any{"items": records},
	})
}

// BulkUpdateRecords applies per-row patches; each item carries row_id and an
// updates mapping.
func (c *Client) BulkUpdateRecords(ctx context.Context, instance, workspaceID, tableID string, updates []any) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodPost,
		path:   []string{"workspace", workspaceID, "table", tableID, "content", "bulk", "patch"},
		body:   map[string]any{"items": updates},
	})
}

func (c *Client) BulkDeleteRecords(ctx context.Context, instance, workspaceID, tableID string, recordIDs []any) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodPost,
		path:   []string{"workspace", workspaceID, "table", tableID, "content", "bulk", "delete"},
		body:   map[string]any{"row_ids": recordIDs},
	})
}

// TruncateTable removes every record. reset additionally restarts the primary
// key sequence.
func (c *Client) TruncateTable(ctx context.Context, instance, workspaceID, tableID string, reset bool) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodDelete,
		path:   []string{"workspace", workspaceID, "table", tableID, "truncate"},
		body:   map[string]any{"reset": reset},
	})
}
