package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

type RecordService interface {
	BrowseContent(ctx context.Context, instance, workspaceID, tableID string, page, perPage int) (json.RawMessage, error)
	SearchContent(ctx context.Context, instance, workspaceID, tableID string, body map[string]any) (json.RawMessage, error)
	GetRecord(ctx context.Context, instance, workspaceID, tableID, recordID string) (json.RawMessage, error)
	CreateRecord(ctx context.Context, instance, workspaceID, tableID string, record map[string]any) (json.RawMessage, error)
	UpdateRecord(ctx context.Context, instance, workspaceID, tableID, recordID string, updates map[string]any) (json.RawMessage, error)
	DeleteRecord(ctx context.Context, instance, workspaceID, tableID, recordID string) (json.RawMessage, error)
	BulkCreateRecords(ctx context.Context, instance, workspaceID, tableID string, records []any) (json.RawMessage, error)
	BulkUpdateRecords(ctx context.Context, instance, workspaceID, tableID string, updates []any) (json.RawMessage, error)
	BulkDeleteRecords(ctx context.Context, instance, workspaceID, tableID string, recordIDs []any) (json.RawMessage, error)
	TruncateTable(ctx context.Context, instance, workspaceID, tableID string, reset bool) (json.RawMessage, error)
}

type RecordsHandler struct {
	Service RecordService
}

func (h *RecordsHandler) BrowseTableContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instance, workspaceID, tableID, errResult := tableScope(req)
	if errResult != nil {
		return errResult, nil
	}
	args := req.GetArguments()
	result, err := h.Service.BrowseContent(ctx, instance, workspaceID, tableID,
		optionalInt(args, "page", 1), optionalInt(args, "per_page", 50))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *RecordsHandler) SearchTableContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instance, workspaceID, tableID, errResult := tableScope(req)
	if errResult != nil {
		return errResult, nil
	}
	args := req.GetArguments()
	body := map[string]any{
		"page":     optionalInt(args, "page", 1),
		"per_page": optionalInt(args, "per_page", 50),
	}
	if conditions, ok := args["search_conditions"]; ok && conditions != nil {
		body["search"] = conditions
	}
	if sort, ok := args["sort"]; ok && sort != nil {
		body["sort"] = sort
	}
	result, err := h.Service.SearchContent(ctx, instance, workspaceID, tableID, body)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *RecordsHandler) GetTableRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instance, workspaceID, tableID, errResult := tableScope(req)
	if errResult != nil {
		return errResult, nil
	}
	recordID, err := formatID("record_id", req.GetArguments()["record_id"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := h.Service.GetRecord(ctx, instance, workspaceID, tableID, recordID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *RecordsHandler) CreateTableRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instance, workspaceID, tableID, errResult := tableScope(req)
	if errResult != nil {
		return errResult, nil
	}
	record, err := requiredMap(req.GetArguments(), "record")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := h.Service.CreateRecord(ctx, instance, workspaceID, tableID, record)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *RecordsHandler) UpdateTableRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instance, workspaceID, tableID, errResult := tableScope(req)
	if errResult != nil {
		return errResult, nil
	}
	args := req.GetArguments()
	recordID, err := formatID("record_id", args["record_id"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	updates, err := requiredMap(args, "updates")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := h.Service.UpdateRecord(ctx, instance, workspaceID, tableID, recordID, updates)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *RecordsHandler) DeleteTableRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instance, workspaceID, tableID, errResult := tableScope(req)
	if errResult != nil {
		return errResult, nil
	}
	recordID, err := formatID("record_id", req.GetArguments()["record_id"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := h.Service.DeleteRecord(ctx, instance, workspaceID, tableID, recordID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *RecordsHandler) BulkCreateRecords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.bulk(ctx, req, "records", h.Service.BulkCreateRecords)
}

func (h *RecordsHandler) BulkUpdateRecords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.bulk(ctx, req, "updates", h.Service.BulkUpdateRecords)
}

func (h *RecordsHandler) BulkDeleteRecords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.bulk(ctx, req, "record_ids", h.Service.BulkDeleteRecords)
}

// bulk handles the three list-in, one-request-out record operations.
func (h *RecordsHandler) bulk(
	ctx context.Context,
	req mcp.CallToolRequest,
	key string,
	call func(context.Context, string, string, string, []any) (json.RawMessage, error),
) (*mcp.CallToolResult, error) {
	instance, workspaceID, tableID, errResult := tableScope(req)
	if errResult != nil {
		return errResult, nil
	}
	items, err := requiredList(req.GetArguments(), key)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := call(ctx, instance, workspaceID, tableID, items)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *RecordsHandler) TruncateTable(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instance, workspaceID, tableID, errResult := tableScope(req)
	if errResult != nil {
		return errResult, nil
	}
	result, err := h.Service.TruncateTable(ctx, instance, workspaceID, tableID,
		optionalBool(req.GetArguments(), "reset"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}
