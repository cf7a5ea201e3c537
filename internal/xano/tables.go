package xano

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tidwall/gjson"
)

// ListTables lists the tables of a workspace. The meta API paginates this
// endpoint behind an "items" envelope on some plans and returns a bare array
// on others; both shapes come back as {"tables": [...]}.
func (c *Client) ListTables(ctx context.Context, instance, workspaceID string) (json.RawMessage, error) {
	result, err := c.do(ctx, c.metaBase(instance), get("workspace", workspaceID, "table"))
	if err != nil {
		return nil, err
	}
	if items := gjson.GetBytes(result, "items"); items.Exists() {
		return envelope("tables", json.RawMessage(items.Raw)), nil
	}
	return envelope("tables", result), nil
}

func (c *Client) TableDetails(ctx context.Context, instance, workspaceID, tableID string) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), get("workspace", workspaceID, "table", tableID))
}

func (c *Client) CreateTable(ctx context.Context, instance, workspaceID string, table map[string]any) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodPost,
		path:   []string{"workspace", workspaceID, "table"},
		body:   table,
	})
}

// UpdateTable updates table metadata. Only the fields present in the map are
// sent, so omitted settings keep their remote values.
func (c *Client) UpdateTable(ctx context.Context, instance, workspaceID, tableID string, fields map[string]any) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodPut,
		path:   []string{"workspace", workspaceID, "table", tableID, "meta"},
		body:   fields,
	})
}

func (c *Client) DeleteTable(ctx context.Context, instance, workspaceID, tableID string) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodDelete,
		path:   []string{"workspace", workspaceID, "table", tableID},
	})
}
