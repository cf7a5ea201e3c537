package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/xanolabs/xano-mcp/internal/config"
	"github.com/xanolabs/xano-mcp/internal/logging"
	"github.com/xanolabs/xano-mcp/internal/mcp/tools"
	"github.com/xanolabs/xano-mcp/internal/xano"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
}

// DefaultConfig builds the Xano client from process configuration and wires
// every tool name to its handler method.
func DefaultConfig() Config {
	logger := logging.New(logging.DefaultLogger().WithName("xano"))
	client := xano.NewClient(xano.Config{
		Token:      config.Token(),
		BaseDomain: config.BaseDomain(),
		BaseURL:    config.APIURL(),
		Timeout:    config.HTTPTimeout(),
		Logger:     logger,
	})

	instances := &tools.InstancesHandler{Service: client}
	tables := &tools.TablesHandler{Service: client}
	schema := &tools.SchemaHandler{Service: client}
	indexes := &tools.IndexesHandler{Service: client}
	records := &tools.RecordsHandler{Service: client}
	files := &tools.FilesHandler{Service: client}
	apiGroups := &tools.APIGroupsHandler{Service: client}

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"xano_list_instances":          tools.HandlerFunc(instances.ListInstances),
			"xano_get_instance_details":    tools.HandlerFunc(instances.GetInstanceDetails),
			"xano_list_databases":          tools.HandlerFunc(instances.ListDatabases),
			"xano_get_workspace_details":   tools.HandlerFunc(instances.GetWorkspaceDetails),
			"xano_export_workspace":        tools.HandlerFunc(instances.ExportWorkspace),
			"xano_export_workspace_schema": tools.HandlerFunc(instances.ExportWorkspaceSchema),

			"xano_list_tables":       tools.HandlerFunc(tables.ListTables),
			"xano_get_table_details": tools.HandlerFunc(tables.GetTableDetails),
			"xano_create_table":      tools.HandlerFunc(tables.CreateTable),
			"xano_update_table":      tools.HandlerFunc(tables.UpdateTable),
			"xano_delete_table":      tools.HandlerFunc(tables.DeleteTable),

			"xano_get_table_schema":    tools.HandlerFunc(schema.GetTableSchema),
			"xano_add_field_to_schema": tools.HandlerFunc(schema.AddFieldToSchema),
			"xano_rename_schema_field": tools.HandlerFunc(schema.RenameSchemaField),
			"xano_delete_field":        tools.HandlerFunc(schema.DeleteField),

			"xano_list_indexes":        tools.HandlerFunc(indexes.ListIndexes),
			"xano_create_btree_index":  tools.HandlerFunc(indexes.CreateBTreeIndex),
			"xano_create_unique_index": tools.HandlerFunc(indexes.CreateUniqueIndex),
			"xano_create_search_index": tools.HandlerFunc(indexes.CreateSearchIndex),
			"xano_delete_index":        tools.HandlerFunc(indexes.DeleteIndex),

			"xano_browse_table_content": tools.HandlerFunc(records.BrowseTableContent),
			"xano_search_table_content": tools.HandlerFunc(records.SearchTableContent),
			"xano_get_table_record":     tools.HandlerFunc(records.GetTableRecord),
			"xano_create_table_record":  tools.HandlerFunc(records.CreateTableRecord),
			"xano_update_table_record":  tools.HandlerFunc(records.UpdateTableRecord),
			"xano_delete_table_record":  tools.HandlerFunc(records.DeleteTableRecord),
			"xano_bulk_create_records":  tools.HandlerFunc(records.BulkCreateRecords),
			"xano_bulk_update_records":  tools.HandlerFunc(records.BulkUpdateRecords),
			"xano_bulk_delete_records":  tools.HandlerFunc(records.BulkDeleteRecords),
			"xano_truncate_table":       tools.HandlerFunc(records.TruncateTable),

			"xano_list_files":        tools.HandlerFunc(files.ListFiles),
			"xano_get_file_details":  tools.HandlerFunc(files.GetFileDetails),
			"xano_delete_file":       tools.HandlerFunc(files.DeleteFile),
			"xano_bulk_delete_files": tools.HandlerFunc(files.BulkDeleteFiles),

			"xano_browse_api_groups":    tools.HandlerFunc(apiGroups.BrowseAPIGroups),
			"xano_get_api_group":        tools.HandlerFunc(apiGroups.GetAPIGroup),
			"xano_create_api_group":     tools.HandlerFunc(apiGroups.CreateAPIGroup),
			"xano_update_api_group":     tools.HandlerFunc(apiGroups.UpdateAPIGroup),
			"xano_delete_api_group":     tools.HandlerFunc(apiGroups.DeleteAPIGroup),
			"xano_browse_apis_in_group": tools.HandlerFunc(apiGroups.BrowseAPIsInGroup),
			"xano_get_api":              tools.HandlerFunc(apiGroups.GetAPI),
			"xano_create_api":           tools.HandlerFunc(apiGroups.CreateAPI),
			"xano_update_api":           tools.HandlerFunc(apiGroups.UpdateAPI),
			"xano_delete_api":           tools.HandlerFunc(apiGroups.DeleteAPI),
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
	}
}
