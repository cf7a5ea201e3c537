package tools

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
)

type FileService interface {
	ListFiles(ctx context.Context, instance, workspaceID string, query url.Values) (json.RawMessage, error)
	FileDetails(ctx context.Context, instance, workspaceID, fileID string) (json.RawMessage, error)
	DeleteFile(ctx context.Context, instance, workspaceID, fileID string) (json.RawMessage, error)
	BulkDeleteFiles(ctx context.Context, instance, workspaceID string, fileIDs []any) (json.RawMessage, error)
}

type FilesHandler struct {
	Service FileService
}

func (h *FilesHandler) ListFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	instance, workspaceID, errResult := workspaceScope(args)
	if errResult != nil {
		return errResult, nil
	}
	result, err := h.Service.ListFiles(ctx, instance, workspaceID, browseQuery(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *FilesHandler) GetFileDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	instance, workspaceID, errResult := workspaceScope(args)
	if errResult != nil {
		return errResult, nil
	}
	fileID, err := formatID("file_id", args["file_id"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := h.Service.FileDetails(ctx, instance, workspaceID, fileID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *FilesHandler) DeleteFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	instance, workspaceID, errResult := workspaceScope(args)
	if errResult != nil {
		return errResult, nil
	}
	fileID, err := formatID("file_id", args["file_id"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := h.Service.DeleteFile(ctx, instance, workspaceID, fileID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *FilesHandler) BulkDeleteFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	instance, workspaceID, errResult := workspaceScope(args)
	if errResult != nil {
		return errResult, nil
	}
	fileIDs, err := requiredList(args, "file_ids")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := h.Service.BulkDeleteFiles(ctx, instance, workspaceID, fileIDs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

// workspaceScope extracts the instance/workspace pair shared by the file and
// API-group operations.
func workspaceScope(args map[string]any) (string, string, *mcp.CallToolResult) {
	instance, err := instanceArg(args)
	if err != nil {
		return "", "", mcp.NewToolResultError(err.Error())
	}
	workspaceID, err := formatID("workspace_id", args["workspace_id"])
	if err != nil {
		return "", "", mcp.NewToolResultError(err.Error())
	}
	return instance, workspaceID, nil
}
