package xano

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
)

func TestAPIGroupOperationsHitDocumentedPaths(t *testing.T) {
	tests := []struct {
		name   string
		call   func(*Client) error
		method string
		path   string
	}{
		{
			name: "browse groups",
			call: func(c *Client) error {
				_, err := c.BrowseAPIGroups(context.Background(), "demo", "5", nil)
				return err
			},
			method: http.MethodGet,
			path:   "/workspace/5/apigroup",
		},
		{
			name: "group details",
			call: func(c *Client) error {
				_, err := c.APIGroupDetails(context.Background(), "demo", "5", "7")
				return err
			},
			method: http.MethodGet,
			path:   "/workspace/5/apigroup/7",
		},
		{
			name: "create group",
			call: func(c *Client) error {
				_, err := c.CreateAPIGroup(context.Background(), "demo", "5", map[string]any{"name": "orders"})
				return err
			},
			method: http.MethodPost,
			path:   "/workspace/5/apigroup",
		},
		{
			name: "update group",
			call: func(c *Client) error {
				_, err := c.UpdateAPIGroup(context.Background(), "demo", "5", "7", map[string]any{"name": "orders-v2"})
				return err
			},
			method: http.MethodPut,
			path:   "/workspace/5/apigroup/7",
		},
		{
			name: "delete group",
			call: func(c *Client) error {
				_, err := c.DeleteAPIGroup(context.Background(), "demo", "5", "7")
				return err
			},
			method: http.MethodDelete,
			path:   "/workspace/5/apigroup/7",
		},
		{
			name: "browse apis",
			call: func(c *Client) error {
				_, err := c.BrowseAPIs(context.Background(), "demo", "5", "7", nil)
				return err
			},
			method: http.MethodGet,
			path:   "/workspace/5/apigroup/7/api",
		},
		{
			name: "api details",
			call: func(c *Client) error {
				_, err := c.APIDetails(context.Background(), "demo", "5", "7", "9")
				return err
			},
			method: http.MethodGet,
			path:   "/workspace/5/apigroup/7/api/9",
		},
		{
			name: "create api",
			call: func(c *Client) error {
				_, err := c.CreateAPI(context.Background(), "demo", "5", "7", map[string]any{"name": "list", "verb": "GET"})
				return err
			},
			method: http.MethodPost,
			path:   "/workspace/5/apigroup/7/api",
		},
		{
			name: "update api",
			call: func(c *Client) error {
				_, err := c.UpdateAPI(context.Background(), "demo", "5", "7", "9", map[string]any{"description": "lists orders"})
				return err
			},
			method: http.MethodPut,
			path:   "/workspace/5/apigroup/7/api/9",
		},
		{
			name: "delete api",
			call: func(c *Client) error {
				_, err := c.DeleteAPI(context.Background(), "demo", "5", "7", "9")
				return err
			},
			method: http.MethodDelete,
			path:   "/workspace/5/apigroup/7/api/9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, recorded := newTestClient(t, http.StatusOK, `{}`)
			if err := tt.call(client); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			req := (*recorded)[0]
			if req.Method != tt.method || req.Path != tt.path {
				t.Fatalf("expected %s %s, got %s %s", tt.method, tt.path, req.Method, req.Path)
			}
		})
	}
}

func TestBrowseAPIGroupsForwardsQuery(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, `{"items": []}`)

	query := url.Values{}
	query.Set("page", "3")
	query.Set("per_page", "10")
	query.Set("search", "orders")
	if _, err := client.BrowseAPIGroups(context.Background(), "demo", "5", query); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := url.ParseQuery((*recorded)[0].Query)
	if err != nil {
		t.Fatalf("unexpected query %q: %v", (*recorded)[0].Query, err)
	}
	if got.Get("page") != "3" || got.Get("per_page") != "10" || got.Get("search") != "orders" {
		t.Fatalf("unexpected query %q", (*recorded)[0].Query)
	}
}

func TestCreateAPIGroupBodyShape(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, `{"id": 8}`)

	group := map[string]any{"name": "orders", "description": "order endpoints", "swagger": true}
	if _, err := client.CreateAPIGroup(context.Background(), "demo", "5", group); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal((*recorded)[0].Body, &body); err != nil {
		t.Fatalf("unexpected body %s: %v", (*recorded)[0].Body, err)
	}
	if body["name"] != "orders" || body["description"] != "order endpoints" || body["swagger"] != true {
		t.Fatalf("unexpected body %s", (*recorded)[0].Body)
	}
}

func TestUpdateAPISendsOnlyProvidedFields(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, `{}`)

	if _, err := client.UpdateAPI(context.Background(), "demo", "5", "7", "9", map[string]any{"verb": "POST"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal((*recorded)[0].Body, &body); err != nil {
		t.Fatalf("unexpected body %s: %v", (*recorded)[0].Body, err)
	}
	if len(body) != 1 || body["verb"] != "POST" {
		t.Fatalf("expected only the verb field, got %s", (*recorded)[0].Body)
	}
}

func TestWorkspaceExportPaths(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, `{}`)

	if _, err := client.ExportWorkspace(context.Background(), "demo", "5", map[string]any{"branch": "v2", "password": "s3cret"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := client.ExportWorkspaceSchema(context.Background(), "demo", "5", map[string]any{"branch": "v2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	export := (*recorded)[0]
	if export.Method != http.MethodPost || export.Path != "/workspace/5/export" {
		t.Fatalf("expected POST /workspace/5/export, got %s %s", export.Method, export.Path)
	}
	var body map[string]any
	if err := json.Unmarshal(export.Body, &body); err != nil {
		t.Fatalf("unexpected body %s: %v", export.Body, err)
	}
	if body["branch"] != "v2" || body["password"] != "s3cret" {
		t.Fatalf("unexpected export body %s", export.Body)
	}

	schema := (*recorded)[1]
	if schema.Method != http.MethodPost || schema.Path != "/workspace/5/export-schema" {
		t.Fatalf("expected POST /workspace/5/export-schema, got %s %s", schema.Method, schema.Path)
	}
}

func TestFileOperationPaths(t *testing.T) {
	tests := []struct {
		name   string
		call   func(*Client) error
		method string
		path   string
	}{
		{
			name: "list files",
			call: func(c *Client) error {
				query := url.Values{}
				query.Set("page", "2")
				_, err := c.ListFiles(context.Background(), "demo", "5", query)
				return err
			},
			method: http.MethodGet,
			path:   "/workspace/5/file",
		},
		{
			name: "file details",
			call: func(c *Client) error {
				_, err := c.FileDetails(context.Background(), "demo", "5", "3")
				return err
			},
			method: http.MethodGet,
			path:   "/workspace/5/file/3",
		},
		{
			name: "delete file",
			call: func(c *Client) error {
				_, err := c.DeleteFile(context.Background(), "demo", "5", "3")
				return err
			},
			method: http.MethodDelete,
			path:   "/workspace/5/file/3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, recorded := newTestClient(t, http.StatusOK, `{}`)
			if err := tt.call(client); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			req := (*recorded)[0]
			if req.Method != tt.method || req.Path != tt.path {
				t.Fatalf("expected %s %s, got %s %s", tt.method, tt.path, req.Method, req.Path)
			}
		})
	}
}
