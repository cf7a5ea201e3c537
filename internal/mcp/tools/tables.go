package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

type TableService interface {
	ListTables(ctx context.Context, instance, workspaceID string) (json.RawMessage, error)
	TableDetails(ctx context.Context, instance, workspaceID, tableID string) (json.RawMessage, error)
	CreateTable(ctx context.Context, instance, workspaceID string, table map[string]any) (json.RawMessage, error)
	UpdateTable(ctx context.Context, instance, workspaceID, tableID string, fields map[string]any) (json.RawMessage, error)
	DeleteTable(ctx context.Context, instance, workspaceID, tableID string) (json.RawMessage, error)
}

type TablesHandler struct {
	Service TableService
}

// ListTables accepts the workspace under the historical database_id name.
func (h *TablesHandler) ListTables(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	instance, err := instanceArg(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	workspaceID, err := formatID("database_id", args["database_id"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := h.Service.ListTables(ctx, instance, workspaceID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *TablesHandler) GetTableDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instance, workspaceID, tableID, errResult := tableScope(req)
	if errResult != nil {
		return errResult, nil
	}
	result, err := h.Service.TableDetails(ctx, instance, workspaceID, tableID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *TablesHandler) CreateTable(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	instance, err := instanceArg(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	workspaceID, err := formatID("workspace_id", args["workspace_id"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, err := requiredString(args, "name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	table := map[string]any{
		"name":        name,
		"description": optionalString(args, "description"),
		"docs":        optionalString(args, "docs"),
		"auth":        optionalBool(args, "auth"),
	}
	if tag, ok := args["tag"]; ok && tag != nil {
		table["tag"] = tag
	}

	result, err := h.Service.CreateTable(ctx, instance, workspaceID, table)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *TablesHandler) UpdateTable(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instance, workspaceID, tableID, errResult := tableScope(req)
	if errResult != nil {
		return errResult, nil
	}
	fields := pickArgs(req.GetArguments(), "name", "description", "docs", "auth", "tag")
	result, err := h.Service.UpdateTable(ctx, instance, workspaceID, tableID, fields)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *TablesHandler) DeleteTable(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instance, workspaceID, tableID, errResult := tableScope(req)
	if errResult != nil {
		return errResult, nil
	}
	result, err := h.Service.DeleteTable(ctx, instance, workspaceID, tableID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

// tableScope extracts the instance/workspace/table triple shared by every
// table-level operation. The fourth return is a ready error result.
func tableScope(req mcp.CallToolRequest) (string, string, string, *mcp.CallToolResult) {
	args := req.GetArguments()
	instance, err := instanceArg(args)
	if err != nil {
		return "", "", "", mcp.NewToolResultError(err.Error())
	}
	workspaceID, err := formatID("workspace_id", args["workspace_id"])
	if err != nil {
		return "", "", "", mcp.NewToolResultError(err.Error())
	}
	tableID, err := formatID("table_id", args["table_id"])
	if err != nil {
		return "", "", "", mcp.NewToolResultError(err.Error())
	}
	return instance, workspaceID, tableID, nil
}
