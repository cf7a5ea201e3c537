package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

// fakeTableService records calls and plays back canned responses.
type fakeTableService struct {
	calls  int
	result json.RawMessage
	err    error

	gotInstance  string
	gotWorkspace string
	gotTable     string
	gotBody      map[string]any
}

func (f *fakeTableService) ListTables(ctx context.Context, instance, workspaceID string) (json.RawMessage, error) {
	f.calls++
	f.gotInstance, f.gotWorkspace = instance, workspaceID
	return f.result, f.err
}

func (f *fakeTableService) TableDetails(ctx context.Context, instance, workspaceID, tableID string) (json.RawMessage, error) {
	f.calls++
	f.gotInstance, f.gotWorkspace, f.gotTable = instance, workspaceID, tableID
	return f.result, f.err
}

func (f *fakeTableService) CreateTable(ctx context.Context, instance, workspaceID string, table map[string]any) (json.RawMessage, error) {
	f.calls++
	f.gotInstance, f.gotWorkspace, f.gotBody = instance, workspaceID, table
	return f.result, f.err
}

func (f *fakeTableService) UpdateTable(ctx context.Context, instance, workspaceID, tableID string, fields map[string]any) (json.RawMessage, error) {
	f.calls++
	f.gotInstance, f.gotWorkspace, f.gotTable, f.gotBody = instance, workspaceID, tableID, fields
	return f.result, f.err
}

func (f *fakeTableService) DeleteTable(ctx context.Context, instance, workspaceID, tableID string) (json.RawMessage, error) {
	f.calls++
	f.gotInstance, f.gotWorkspace, f.gotTable = instance, workspaceID, tableID
	return f.result, f.err
}

func callReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", res.Content[0])
	}
	return text.Text
}

func TestGetTableDetailsPassthrough(t *testing.T) {
	svc := &fakeTableService{result: json.RawMessage(`{"id":10,"name":"users"}`)}
	h := &TablesHandler{Service: svc}

	res, err := h.GetTableDetails(context.Background(), callReq(map[string]any{
		"instance_name": "demo",
		"workspace_id":  float64(5),
		"table_id":      "10",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, res))
	}
	if got := resultText(t, res); got != `{"id":10,"name":"users"}` {
		t.Fatalf("unexpected payload %s", got)
	}
	if svc.gotInstance != "demo" || svc.gotWorkspace != "5" || svc.gotTable != "10" {
		t.Fatalf("unexpected scope %s/%s/%s", svc.gotInstance, svc.gotWorkspace, svc.gotTable)
	}
}

func TestGetTableDetailsMissingTableID(t *testing.T) {
	svc := &fakeTableService{}
	h := &TablesHandler{Service: svc}

	res, err := h.GetTableDetails(context.Background(), callReq(map[string]any{
		"instance_name": "demo",
		"workspace_id":  "5",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected an error-flagged result")
	}
	if svc.calls != 0 {
		t.Fatalf("no request should be made, got %d calls", svc.calls)
	}
}

func TestCreateTableRequiresName(t *testing.T) {
	svc := &fakeTableService{}
	h := &TablesHandler{Service: svc}

	res, _ := h.CreateTable(context.Background(), callReq(map[string]any{
		"instance_name": "demo",
		"workspace_id":  "5",
	}))
	if !res.IsError {
		t.Fatal("expected an error-flagged result")
	}
	if svc.calls != 0 {
		t.Fatal("no request should be made without a name")
	}
}

func TestCreateTableDefaults(t *testing.T) {
	svc := &fakeTableService{result: json.RawMessage(`{"id":11}`)}
	h := &TablesHandler{Service: svc}

	res, err := h.CreateTable(context.Background(), callReq(map[string]any{
		"instance_name": "demo",
		"workspace_id":  "5",
		"name":          "users",
	}))
	if err != nil || res.IsError {
		t.Fatalf("unexpected failure: err=%v result=%v", err, res)
	}
	if svc.gotBody["name"] != "users" || svc.gotBody["auth"] != false {
		t.Fatalf("unexpected create body %v", svc.gotBody)
	}
	if _, ok := svc.gotBody["tag"]; ok {
		t.Fatal("tag should be omitted when not provided")
	}
}

func TestUpdateTableForwardsOnlyProvidedFields(t *testing.T) {
	svc := &fakeTableService{result: json.RawMessage(`{"id":10}`)}
	h := &TablesHandler{Service: svc}

	res, err := h.UpdateTable(context.Background(), callReq(map[string]any{
		"instance_name": "demo",
		"workspace_id":  "5",
		"table_id":      "10",
		"description":   "people",
	}))
	if err != nil || res.IsError {
		t.Fatalf("unexpected failure: err=%v result=%v", err, res)
	}
	if len(svc.gotBody) != 1 || svc.gotBody["description"] != "people" {
		t.Fatalf("unexpected update body %v", svc.gotBody)
	}
}

func TestUpstreamErrorBecomesErrorResult(t *testing.T) {
	svc := &fakeTableService{err: errors.New("xano api: GET /workspace/5/table/10: status 404: Not Found.")}
	h := &TablesHandler{Service: svc}

	res, err := h.GetTableDetails(context.Background(), callReq(map[string]any{
		"instance_name": "demo",
		"workspace_id":  "5",
		"table_id":      "10",
	}))
	if err != nil {
		t.Fatalf("handler must not fault: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected an error-flagged result")
	}
	if text := resultText(t, res); text == "" {
		t.Fatal("error result should carry the upstream message")
	}
}
