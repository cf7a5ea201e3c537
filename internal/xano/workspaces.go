package xano

import (
	"context"
	"encoding/json"
	"net/http"
)

// ListWorkspaces lists the workspaces (databases) of an instance.
func (c *Client) ListWorkspaces(ctx context.Context, instance string) (json.RawMessage, error) {
	result, err := c.do(ctx, c.metaBase(instance), get("workspace"))
	if err != nil {
		return nil, err
	}
	return envelope("databases", result), nil
}

func (c *Client) WorkspaceDetails(ctx context.Context, instance, workspaceID string) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), get("workspace", workspaceID))
}

// ExportWorkspace kicks off a full workspace export (schema plus content).
// Optional fields that are empty stay out of the request body.
func (c *Client) ExportWorkspace(ctx context.Context, instance, workspaceID string, opts map[string]any) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodPost,
		path:   []string{"workspace", workspaceID, "export"},
		body:   opts,
	})
}

// ExportWorkspaceSchema exports only the workspace schema.
func (c *Client) ExportWorkspaceSchema(ctx context.Context, instance, workspaceID string, opts map[string]any) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodPost,
		path:   []string{"workspace", workspaceID, "export-schema"},
		body:   opts,
	})
}
