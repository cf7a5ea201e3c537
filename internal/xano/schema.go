package xano

import (
	"context"
	"encoding/json"
	"net/http"
)

func (c *Client) TableSchema(ctx context.Context, instance, workspaceID, tableID string) (json.RawMessage, error) {
	result, err := c.do(ctx, c.metaBase(instance), get("workspace", workspaceID, "table", tableID, "schema"))
	if err != nil {
		return nil, err
	}
	return envelope("schema", result), nil
}

// AddField appends a field of the given type to a table schema. The field
// definition (name, constraints, defaults) travels in the body; the type is
// part of the path.
func (c *Client) AddField(ctx context.Context, instance, workspaceID, tableID, fieldType string, field map[string]any) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodPost,
		path:   []string{"workspace", workspaceID, "table", tableID, "schema", "type", fieldType},
		body:   field,
	})
}

func (c *Client) RenameField(ctx context.Context, instance, workspaceID, tableID, oldName, newName string) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodPost,
		path:   []string{"workspace", workspaceID, "table", tableID, "schema", "rename"},
		body:   map[string]any{"old_name": oldName, "new_name": newName},
	})
}

func (c *Client) DeleteField(ctx context.Context, instance, workspaceID, tableID, fieldName string) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodDelete,
		path:   []string{"workspace", workspaceID, "table", tableID, "schema", fieldName},
	})
}
