package tools

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
)

type APIGroupService interface {
	BrowseAPIGroups(ctx context.Context, instance, workspaceID string, query url.Values) (json.RawMessage, error)
	APIGroupDetails(ctx context.Context, instance, workspaceID, groupID string) (json.RawMessage, error)
	CreateAPIGroup(ctx context.Context, instance, workspaceID string, group map[string]any) (json.RawMessage, error)
	UpdateAPIGroup(ctx context.Context, instance, workspaceID, groupID string, fields map[string]any) (json.RawMessage, error)
	DeleteAPIGroup(ctx context.Context, instance, workspaceID, groupID string) (json.RawMessage, error)
	BrowseAPIs(ctx context.Context, instance, workspaceID, groupID string, query url.Values) (json.RawMessage, error)
	APIDetails(ctx context.Context, instance, workspaceID, groupID, apiID string) (json.RawMessage, error)
	CreateAPI(ctx context.Context, instance, workspaceID, groupID string, api map[string]any) (json.RawMessage, error)
	UpdateAPI(ctx context.Context, instance, workspaceID, groupID, apiID string, fields map[string]any) (json.RawMessage, error)
	DeleteAPI(ctx context.Context, instance, workspaceID, groupID, apiID string) (json.RawMessage, error)
}

type APIGroupsHandler struct {
	Service APIGroupService
}

func (h *APIGroupsHandler) BrowseAPIGroups(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	instance, workspaceID, errResult := workspaceScope(args)
	if errResult != nil {
		return errResult, nil
	}
	result, err := h.Service.BrowseAPIGroups(ctx, instance, workspaceID, browseQuery(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *APIGroupsHandler) GetAPIGroup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instance, workspaceID, groupID, errResult := groupScope(req.GetArguments())
	if errResult != nil {
		return errResult, nil
	}
	result, err := h.Service.APIGroupDetails(ctx, instance, workspaceID, groupID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *APIGroupsHandler) CreateAPIGroup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	instance, workspaceID, errResult := workspaceScope(args)
	if errResult != nil {
		return errResult, nil
	}
	name, err := requiredString(args, "name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	group := pickArgs(args, "description", "docs", "swagger", "tag")
	group["name"] = name
	result, err := h.Service.CreateAPIGroup(ctx, instance, workspaceID, group)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *APIGroupsHandler) UpdateAPIGroup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	instance, workspaceID, groupID, errResult := groupScope(args)
	if errResult != nil {
		return errResult, nil
	}
	fields := pickArgs(args, "name", "description", "docs", "swagger", "tag")
	result, err := h.Service.UpdateAPIGroup(ctx, instance, workspaceID, groupID, fields)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *APIGroupsHandler) DeleteAPIGroup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instance, workspaceID, groupID, errResult := groupScope(req.GetArguments())
	if errResult != nil {
		return errResult, nil
	}
	result, err := h.Service.DeleteAPIGroup(ctx, instance, workspaceID, groupID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *APIGroupsHandler) BrowseAPIsInGroup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	instance, workspaceID, groupID, errResult := groupScope(args)
	if errResult != nil {
		return errResult, nil
	}
	result, err := h.Service.BrowseAPIs(ctx, instance, workspaceID, groupID, browseQuery(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *APIGroupsHandler) GetAPI(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	instance, workspaceID, groupID, errResult := groupScope(args)
	if errResult != nil {
		return errResult, nil
	}
	apiID, err := formatID("api_id", args["api_id"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := h.Service.APIDetails(ctx, instance, workspaceID, groupID, apiID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *APIGroupsHandler) CreateAPI(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	instance, workspaceID, groupID, errResult := groupScope(args)
	if errResult != nil {
		return errResult, nil
	}
	name, err := requiredString(args, "name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	verb, err := requiredString(args, "verb")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	api := pickArgs(args, "description", "docs", "tag")
	api["name"] = name
	api["verb"] = verb
	result, err := h.Service.CreateAPI(ctx, instance, workspaceID, groupID, api)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *APIGroupsHandler) UpdateAPI(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	instance, workspaceID, groupID, errResult := groupScope(args)
	if errResult != nil {
		return errResult, nil
	}
	apiID, err := formatID("api_id", args["api_id"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	fields := pickArgs(args, "name", "verb", "description", "docs", "auth", "tag")
	result, err := h.Service.UpdateAPI(ctx, instance, workspaceID, groupID, apiID, fields)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (h *APIGroupsHandler) DeleteAPI(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	instance, workspaceID, groupID, errResult := groupScope(args)
	if errResult != nil {
		return errResult, nil
	}
	apiID, err := formatID("api_id", args["api_id"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := h.Service.DeleteAPI(ctx, instance, workspaceID, groupID, apiID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func groupScope(args map[string]any) (string, string, string, *mcp.CallToolResult) {
	instance, workspaceID, errResult := workspaceScope(args)
	if errResult != nil {
		return "", "", "", errResult
	}
	groupID, err := formatID("apigroup_id", args["apigroup_id"])
	if err != nil {
		return "", "", "", mcp.NewToolResultError(err.Error())
	}
	return instance, workspaceID, groupID, nil
}
