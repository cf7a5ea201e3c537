package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xanolabs/xano-mcp/internal/xano"
)

// InstanceService covers the account- and workspace-level operations.
type InstanceService interface {
	ListInstances(ctx context.Context) (json.RawMessage, error)
	InstanceDetails(instance string) xano.InstanceDetails
	ListWorkspaces(ctx context.Context, instance string) (json.RawMessage, error)
	WorkspaceDetails(ctx context.Context, instance, workspaceID string) (json.RawMessage, error)
	ExportWorkspace(ctx context.Context, instance, workspaceID string, opts map[string]any) (json.RawMessage, error)
	ExportWorkspaceSchema(ctx context.Context, instance, workspaceID string, opts map[string]any) (json.RawMessage, error)
}

type InstancesHandler struct {
	Service InstanceService
}

func (h *InstancesHandler) ListInstances(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.Service.ListInstances(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

// GetInstanceDetails is resolved locally from the instance naming scheme; no
// request leaves the process.
func (h *InstancesHandler) GetInstanceDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instance, err := instanceArg(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	details := h.Service.InstanceDetails(instance)
	return mcp.NewToolResultText(string(mustMarshal(details))), nil
}

func (h *InstancesHandler) ListDatabases(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instance, err := instanceArg(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := h.Service.ListWorkspaces(ctx, instance)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *InstancesHandler) GetWorkspaceDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	instance, err := instanceArg(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	workspaceID, err := formatID("workspace_id", args["workspace_id"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := h.Service.WorkspaceDetails(ctx, instance, workspaceID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *InstancesHandler) ExportWorkspace(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.export(ctx, req, h.Service.ExportWorkspace)
}

func (h *InstancesHandler) ExportWorkspaceSchema(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.export(ctx, req, h.Service.ExportWorkspaceSchema)
}

func (h *InstancesHandler) export(
	ctx context.Context,
	req mcp.CallToolRequest,
	call func(context.Context, string, string, map[string]any) (json.RawMessage, error),
) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	instance, err := instanceArg(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	workspaceID, err := formatID("workspace_id", args["workspace_id"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := call(ctx, instance, workspaceID, pickArgs(args, "branch", "password"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}
