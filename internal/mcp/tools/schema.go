package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

type SchemaService interface {
	TableSchema(ctx context.Context, instance, workspaceID, tableID string) (json.RawMessage, error)
	AddField(ctx context.Context, instance, workspaceID, tableID, fieldType string, field map[string]any) (json.RawMessage, error)
	RenameField(ctx context.Context, instance, workspaceID, tableID, oldName, newName string) (json.RawMessage, error)
	DeleteField(ctx context.Context, instance, workspaceID, tableID, fieldName string) (json.RawMessage, error)
}

type SchemaHandler struct {
	Service SchemaService
}

func (h *SchemaHandler) GetTableSchema(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instance, workspaceID, tableID, errResult := tableScope(req)
	if errResult != nil {
		return errResult, nil
	}
	result, err := h.Service.TableSchema(ctx, instance, workspaceID, tableID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *SchemaHandler) AddFieldToSchema(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instance, workspaceID, tableID, errResult := tableScope(req)
	if errResult != nil {
		return errResult, nil
	}
	args := req.GetArguments()
	fieldName, err := requiredString(args, "field_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	fieldType, err := requiredString(args, "field_type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	field := pickArgs(args, "description", "nullable", "default", "required", "access", "style")
	field["name"] = fieldName

	result, err := h.Service.AddField(ctx, instance, workspaceID, tableID, fieldType, field)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *SchemaHandler) RenameSchemaField(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instance, workspaceID, tableID, errResult := tableScope(req)
	if errResult != nil {
		return errResult, nil
	}
	args := req.GetArguments()
	oldName, err := requiredString(args, "old_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	newName, err := requiredString(args, "new_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := h.Service.RenameField(ctx, instance, workspaceID, tableID, oldName, newName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *SchemaHandler) DeleteField(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instance, workspaceID, tableID, errResult := tableScope(req)
	if errResult != nil {
		return errResult, nil
	}
	fieldName, err := requiredString(req.GetArguments(), "field_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := h.Service.DeleteField(ctx, instance, workspaceID, tableID, fieldName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}
