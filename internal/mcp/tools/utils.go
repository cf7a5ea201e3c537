package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xanolabs/xano-mcp/internal/config"
)

// HandlerFunc adapts a plain function to the server's ToolAdapter interface.
type HandlerFunc func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)

func (f HandlerFunc) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return f(ctx, req)
}

// instanceArg resolves the target instance from the arguments, falling back
// to the configured default instance.
func instanceArg(args map[string]any) (string, error) {
	if v, ok := args["instance_name"].(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), nil
	}
	if def := config.DefaultInstance(); def != "" {
		return def, nil
	}
	return "", fmt.Errorf("instance_name is required")
}

// formatID coerces an identifier argument into a clean path segment. Hosts
// hand IDs over as JSON numbers or strings, sometimes with stray quotes.
func formatID(key string, value any) (string, error) {
	switch v := value.(type) {
	case string:
		cleaned := strings.Trim(strings.TrimSpace(v), `"'`)
		if cleaned == "" {
			return "", fmt.Errorf("%s is required", key)
		}
		return cleaned, nil
	case float64:
		// A fractional ID can't be silently rounded onto another resource.
		if v != math.Trunc(v) {
			return "", fmt.Errorf("%s must be an integer or string, got %v", key, v)
		}
		return strconv.FormatInt(int64(v), 10), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case json.Number:
		return v.String(), nil
	default:
		return "", fmt.Errorf("%s is required", key)
	}
}

func requiredString(args map[string]any, key string) (string, error) {
	if v, ok := args[key].(string); ok && strings.TrimSpace(v) != "" {
		return v, nil
	}
	return "", fmt.Errorf("%s is required", key)
}

func optionalString(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return v
}

func optionalInt(args map[string]any, key string, fallback int) int {
	if raw, ok := args[key].(float64); ok && int(raw) > 0 {
		return int(raw)
	}
	return fallback
}

func optionalBool(args map[string]any, key string) bool {
	v, _ := args[key].(bool)
	return v
}

// pickArgs copies the named arguments that were actually supplied into a
// request body, so absent optionals never overwrite remote values.
func pickArgs(args map[string]any, keys ...string) map[string]any {
	body := map[string]any{}
	for _, key := range keys {
		if v, ok := args[key]; ok && v != nil {
			body[key] = v
		}
	}
	return body
}

func requiredList(args map[string]any, key string) ([]any, error) {
	items, ok := args[key].([]any)
	if !ok || len(items) == 0 {
		return nil, fmt.Errorf("%s must be a non-empty list", key)
	}
	return items, nil
}

func requiredMap(args map[string]any, key string) (map[string]any, error) {
	m, ok := args[key].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s must be a mapping", key)
	}
	return m, nil
}

// indexFields normalizes an index field list: bare strings become ascending
// entries, mappings must at least name the field.
func indexFields(value any) ([]map[string]any, error) {
	items, ok := value.([]any)
	if !ok || len(items) == 0 {
		return nil, fmt.Errorf("fields must be a non-empty list")
	}
	fields := make([]map[string]any, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			fields = append(fields, map[string]any{"name": v, "op": "asc"})
		case map[string]any:
			if _, ok := v["name"]; !ok {
				return nil, fmt.Errorf("index field entries need a name")
			}
			if _, ok := v["op"]; !ok {
				v["op"] = "asc"
			}
			fields = append(fields, v)
		default:
			return nil, fmt.Errorf("index field entries must be strings or mappings")
		}
	}
	return fields, nil
}

// browseQuery assembles the shared pagination/filter query string used by the
// file and API-group browse endpoints.
func browseQuery(args map[string]any) url.Values {
	query := url.Values{}
	query.Set("page", strconv.Itoa(optionalInt(args, "page", 1)))
	query.Set("per_page", strconv.Itoa(optionalInt(args, "per_page", 50)))
	for _, key := range []string{"search", "access", "sort", "order"} {
		if v := optionalString(args, key); v != "" {
			query.Set(key, v)
		}
	}
	return query
}

func jsonResult(payload json.RawMessage) *mcp.CallToolResult {
	return mcp.NewToolResultText(string(payload))
}

func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
