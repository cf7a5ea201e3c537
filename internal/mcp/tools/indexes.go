package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

type IndexService interface {
	ListIndexes(ctx context.Context, instance, workspaceID, tableID string) (json.RawMessage, error)
	CreateBTreeIndex(ctx context.Context, instance, workspaceID, tableID string, fields []map[string]any) (json.RawMessage, error)
	CreateUniqueIndex(ctx context.Context, instance, workspaceID, tableID string, fields []map[string]any) (json.RawMessage, error)
	CreateSearchIndex(ctx context.Context, instance, workspaceID, tableID, name, lang string, fields []map[string]any) (json.RawMessage, error)
	DeleteIndex(ctx context.Context, instance, workspaceID, tableID, indexID string) (json.RawMessage, error)
}

type IndexesHandler struct {
	Service IndexService
}

func (h *IndexesHandler) ListIndexes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instance, workspaceID, tableID, errResult := tableScope(req)
	if errResult != nil {
		return errResult, nil
	}
	result, err := h.Service.ListIndexes(ctx, instance, workspaceID, tableID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *IndexesHandler) CreateBTreeIndex(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.createFieldIndex(ctx, req, h.Service.CreateBTreeIndex)
}

func (h *IndexesHandler) CreateUniqueIndex(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.createFieldIndex(ctx, req, h.Service.CreateUniqueIndex)
}

func (h *IndexesHandler) createFieldIndex(
	ctx context.Context,
	req mcp.CallToolRequest,
	call func(context.Context, string, string, string, []map[string]any) (json.RawMessage, error),
) (*mcp.CallToolResult, error) {
	instance, workspaceID, tableID, errResult := tableScope(req)
	if errResult != nil {
		return errResult, nil
	}
	fields, err := indexFields(req.GetArguments()["fields"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := call(ctx, instance, workspaceID, tableID, fields)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *IndexesHandler) CreateSearchIndex(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instance, workspaceID, tableID, errResult := tableScope(req)
	if errResult != nil {
		return errResult, nil
	}
	args := req.GetArguments()
	name, err := requiredString(args, "name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	fields, err := indexFields(args["fields"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := h.Service.CreateSearchIndex(ctx, instance, workspaceID, tableID, name, optionalString(args, "lang"), fields)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *IndexesHandler) DeleteIndex(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instance, workspaceID, tableID, errResult := tableScope(req)
	if errResult != nil {
		return errResult, nil
	}
	indexID, err := formatID("index_id", req.GetArguments()["index_id"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := h.Service.DeleteIndex(ctx, instance, workspaceID, tableID, indexID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}
