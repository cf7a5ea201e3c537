package xano

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

func (c *Client) BrowseAPIGroups(ctx context.Context, instance, workspaceID string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodGet,
		path:   []string{"workspace", workspaceID, "apigroup"},
		query:  query,
	})
}

func (c *Client) APIGroupDetails(ctx context.Context, instance, workspaceID, groupID string) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), get("workspace", workspaceID, "apigroup", groupID))
}

func (c *Client) CreateAPIGroup(ctx context.Context, instance, workspaceID string, group map[string]any) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodPost,
		path:   []string{"workspace", workspaceID, "apigroup"},
		body:   group,
	})
}

func (c *Client) UpdateAPIGroup(ctx context.Context, instance, workspaceID, groupID string, fields map[string]any) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodPut,
		path:   []string{"workspace", workspaceID, "apigroup", groupID},
		body:   fields,
	})
}

func (c *Client) DeleteAPIGroup(ctx context.Context, instance, workspaceID, groupID string) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodDelete,
		path:   []string{"workspace", workspaceID, "apigroup", groupID},
	})
}

func (c *Client) BrowseAPIs(ctx context.Context, instance, workspaceID, groupID string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodGet,
		path:   []string{"workspace", workspaceID, "apigroup", groupID, "api"},
		query:  query,
	})
}

func (c *Client) APIDetails(ctx context.Context, instance, workspaceID, groupID, apiID string) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), get("workspace", workspaceID, "apigroup", groupID, "api", apiID))
}

func (c *Client) CreateAPI(ctx context.Context, instance, workspaceID, groupID string, api map[string]any) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodPost,
		path:   []string{"workspace", workspaceID, "apigroup", groupID, "api"},
		body:   api,
	})
}

func (c *Client) UpdateAPI(ctx context.Context, instance, workspaceID, groupID, apiID string, fields map[string]any) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodPut,
		path:   []string{"workspace", workspaceID, "apigroup", groupID, "api", apiID},
		body:   fields,
	})
}

func (c *Client) DeleteAPI(ctx context.Context, instance, workspaceID, groupID, apiID string) (json.RawMessage, error) {
	return c.do(ctx, c.metaBase(instance), request{
		method: http.MethodDelete,
		path:   []string{"workspace", workspaceID, "apigroup", groupID, "api", apiID},
	})
}
