package xano

import (
	"context"
	"encoding/json"
	"net/http"
)

func (c *Client) ListIndexes(ctx context.Context, instance, workspaceID, tableID string) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), get("workspace", workspaceID, "table", tableID, "index"))
}

// CreateBTreeIndex creates a btree index over the given fields. Each field is
// a {"name": ..., "op": "asc"|"desc"} mapping.
func (c *Client) CreateBTreeIndex(ctx context.Context, instance, workspaceID, tableID string, fields []map[string]any) (json.RawMessage, error) {
	return c.createIndex(ctx, instance, workspaceID, tableID, "btree", map[string]any{"fields": fields})
}

func (c *Client) CreateUniqueIndex(ctx context.Context, instance, workspaceID, tableID string, fields []map[string]any) (json.RawMessage, error) {
	return c.createIndex(ctx, instance, workspaceID, tableID, "unique", map[string]any{"fields": fields})
}

// CreateSearchIndex creates a full-text search index. lang selects the text
// search configuration ("english" when empty, per the remote default).
func (c *Client) CreateSearchIndex(ctx context.Context, instance, workspaceID, tableID, name, lang string, fields []map[string]any) (json.RawMessage, error) {
	body := map[string]any{"name": name, "fields": fields}
	if lang != "" {
		body["lang"] = lang
	}
	return c.createIndex(ctx, instance, workspaceID, tableID, "search", body)
}

func (c *Client) createIndex(ctx context.Context, instance, workspaceID, tableID, kind string, body map[string]any) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodPost,
		path:   []string{"workspace", workspaceID, "table", tableID, "index", kind},
		body:   body,
	})
}

func (c *Client) DeleteIndex(ctx context.Context, instance, workspaceID, tableID, indexID string) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodDelete,
		path:   []string{"workspace", workspaceID, "table", tableID, "index", indexID},
	})
}
