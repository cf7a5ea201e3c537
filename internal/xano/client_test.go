package xano

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xanolabs/xano-mcp/internal/logging"
)

// recordedRequest captures what the stub upstream actually received.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

func newTestClient(t *testing.T, status int, response string) (*Client, *[]recordedRequest) {
	t.Helper()
	var recorded []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		recorded = append(recorded, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   body,
		})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)

	client := NewClient(Config{
		Token:   "test-token",
		BaseURL: server.URL,
		Logger:  logging.Discard(),
	})
	return client, &recorded
}

func TestListInstancesPassthrough(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, `{"instances":[{"name":"abc"}]}`)

	result, err := client.ListInstances(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"instances":[{"name":"abc"}]}`, string(result))

	require.Len(t, *recorded, 1)
	req := (*recorded)[0]
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/auth/me", req.Path)
	assert.Equal(t, "Bearer test-token", req.Header.Get("Authorization"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
}

func TestListInstancesMissingKey(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `{"name":"not-an-instance-list"}`)

	_, err := client.ListInstances(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "instances")
}

func TestAPIErrorCarriesStatusAndMessage(t *testing.T) {
	client, _ := newTestClient(t, http.StatusNotFound, `{"message":"Not Found."}`)

	_, err := client.GetRecord(context.Background(), "demo", "5", "10", "999")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Not Found.", apiErr.Message)
	assert.Contains(t, err.Error(), "404")
}

func TestAPIErrorFallsBackToBodySnippet(t *testing.T) {
	client, _ := newTestClient(t, http.StatusForbidden, `permission denied`)

	_, err := client.WorkspaceDetails(context.Background(), "demo", "5")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "permission denied", apiErr.Message)
}

func TestNetworkFailureSurfacesAsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(Config{
		Token:   "test-token",
		BaseURL: server.URL,
		Logger:  logging.Discard(),
	})
	server.Close()

	_, err := client.ListWorkspaces(context.Background(), "demo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xano api")
}

func TestUnparseableSuccessBody(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `<html>definitely not json</html>`)

	_, err := client.TableDetails(context.Background(), "demo", "5", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse response")
}

func TestListTablesUnwrapsItemsEnvelope(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, `{"items":[{"id":10,"name":"users"}],"curPage":1}`)

	result, err := client.ListTables(context.Background(), "demo", "5")
	require.NoError(t, err)
	assert.JSONEq(t, `{"tables":[{"id":10,"name":"users"}]}`, string(result))

	req := (*recorded)[0]
	assert.Equal(t, "/workspace/5/table", req.Path)
}

func TestListTablesBareArray(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `[{"id":10,"name":"users"}]`)

	result, err := client.ListTables(context.Background(), "demo", "5")
	require.NoError(t, err)
	assert.JSONEq(t, `{"tables":[{"id":10,"name":"users"}]}`, string(result))
}

func TestUpdateTableSendsOnlyProvidedFields(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK, `{"id":10}`)

	_, err := client.UpdateTable(context.Background(), "demo", "5", "10", map[string]any{"name": "renamed"})
	require.NoError(t, err)

	req := (*recorded)[0]
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/workspace/5/table/10/meta", req.Path)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &body))
	assert.Equal(t, map[string]any{"name": "renamed"}, body)
}

func TestInstanceDomain(t *testing.T) {
	client := NewClient(Config{Token: "t", Logger: logging.Discard()})
	assert.Equal(t, "xnwv-v1z6-dvnr.n7c.xano.io", client.InstanceDomain("xnwv-v1z6-dvnr"))
	assert.Equal(t, "custom.example.com", client.InstanceDomain("custom.example.com"))
}

func TestInstanceDetailsNeedsNoNetwork(t *testing.T) {
	client := NewClient(Config{Token: "t", Logger: logging.Discard()})

	details := client.InstanceDetails("xnwv-v1z6-dvnr")
	assert.Equal(t, "xnwv-v1z6-dvnr", details.Name)
	assert.Equal(t, "XNWV", details.Display)
	assert.Equal(t, "https://xnwv-v1z6-dvnr.n7c.xano.io/api:meta", details.MetaAPI)
	assert.Equal(t, "https://xnwv-v1z6-dvnr.n7c.xano.io/apispec:meta?type=json", details.MetaSwagger)
}
