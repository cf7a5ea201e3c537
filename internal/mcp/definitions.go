package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// toolDefinitions enumerates every tool the adapter exposes. The adapter is
// almost entirely this table plus the per-area handlers: one tool, one
// upstream request. instance_name is optional on every tool when a default
// instance is configured.
func toolDefinitions() map[string]mcp.Tool {
	instanceName := mcp.WithString("instance_name",
		mcp.Description("Xano instance name (e.g. \"xnwv-v1z6-dvnr\") or full domain; falls back to the configured default instance"),
	)
	workspaceID := mcp.WithString("workspace_id",
		mcp.Required(),
		mcp.Description("Workspace (database) ID; string or number accepted"),
	)
	tableID := mcp.WithString("table_id",
		mcp.Required(),
		mcp.Description("Table ID; string or number accepted"),
	)
	page := mcp.WithNumber("page", mcp.Description("Page number (default: 1)"))
	perPage := mcp.WithNumber("per_page", mcp.Description("Results per page (default: 50)"))

	return map[string]mcp.Tool{
		"xano_list_instances": mcp.NewTool("xano_list_instances",
			mcp.WithDescription("List all Xano instances associated with the configured account token."),
		),
		"xano_get_instance_details": mcp.NewTool("xano_get_instance_details",
			mcp.WithDescription("Get details (domain, meta API URL) for a specific Xano instance. Resolved locally, no API call."),
			instanceName,
		),
		"xano_list_databases": mcp.NewTool("xano_list_databases",
			mcp.WithDescription("List all databases (workspaces) in a Xano instance."),
			instanceName,
		),
		"xano_get_workspace_details": mcp.NewTool("xano_get_workspace_details",
			mcp.WithDescription("Get details for a specific Xano workspace."),
			instanceName, workspaceID,
		),

		"xano_list_tables": mcp.NewTool("xano_list_tables",
			mcp.WithDescription("List all tables in a Xano database (workspace)."),
			instanceName,
			mcp.WithString("database_id",
				mcp.Required(),
				mcp.Description("Workspace (database) ID; string or number accepted"),
			),
		),
		"xano_get_table_details": mcp.NewTool("xano_get_table_details",
			mcp.WithDescription("Get details for a specific Xano table."),
			instanceName, workspaceID, tableID,
		),
		"xano_create_table": mcp.NewTool("xano_create_table",
			mcp.WithDescription("Create a new table in a workspace."),
			instanceName, workspaceID,
			mcp.WithString("name", mcp.Required(), mcp.Description("Name of the new table")),
			mcp.WithString("description", mcp.Description("Table description")),
			mcp.WithString("docs", mcp.Description("Documentation text")),
			mcp.WithBoolean("auth", mcp.Description("Whether authentication is required (default: false)")),
			mcp.WithArray("tag", mcp.Description("Tags for the table")),
		),
		"xano_update_table": mcp.NewTool("xano_update_table",
			mcp.WithDescription("Update table metadata. Only supplied fields change."),
			instanceName, workspaceID, tableID,
			mcp.WithString("name", mcp.Description("New table name")),
			mcp.WithString("description", mcp.Description("New description")),
			mcp.WithString("docs", mcp.Description("New documentation text")),
			mcp.WithBoolean("auth", mcp.Description("New authentication setting")),
			mcp.WithArray("tag", mcp.Description("New tag list")),
		),
		"xano_delete_table": mcp.NewTool("xano_delete_table",
			mcp.WithDescription("Delete a table from a workspace."),
			instanceName, workspaceID, tableID,
		),

		"xano_get_table_schema": mcp.NewTool("xano_get_table_schema",
			mcp.WithDescription("Get the schema (field list) of a table."),
			instanceName, workspaceID, tableID,
		),
		"xano_add_field_to_schema": mcp.NewTool("xano_add_field_to_schema",
			mcp.WithDescription("Add a field to a table schema."),
			instanceName, workspaceID, tableID,
			mcp.WithString("field_name", mcp.Required(), mcp.Description("Name of the new field")),
			mcp.WithString("field_type", mcp.Required(),
				mcp.Description("Field type (e.g. text, int, decimal, bool, date, timestamp, enum, object, attachment)"),
			),
			mcp.WithString("description", mcp.Description("Field description")),
			mcp.WithBoolean("nullable", mcp.Description("Whether the field may be null")),
			mcp.WithString("default", mcp.Description("Default value")),
			mcp.WithBoolean("required", mcp.Description("Whether the field is required")),
			mcp.WithString("access", mcp.Description("Access level (public/private/internal)")),
			mcp.WithString("style", mcp.Description("Storage style (single/list)")),
		),
		"xano_rename_schema_field": mcp.NewTool("xano_rename_schema_field",
			mcp.WithDescription("Rename a schema field."),
			instanceName, workspaceID, tableID,
			mcp.WithString("old_name", mcp.Required(), mcp.Description("Current field name")),
			mcp.WithString("new_name", mcp.Required(), mcp.Description("New field name")),
		),
		"xano_delete_field": mcp.NewTool("xano_delete_field",
			mcp.WithDescription("Delete a field from a table schema."),
			instanceName, workspaceID, tableID,
			mcp.WithString("field_name", mcp.Required(), mcp.Description("Name of the field to delete")),
		),

		"xano_list_indexes": mcp.NewTool("xano_list_indexes",
			mcp.WithDescription("List the indexes of a table."),
			instanceName, workspaceID, tableID,
		),
		"xano_create_btree_index": mcp.NewTool("xano_create_btree_index",
			mcp.WithDescription("Create a btree index on a table."),
			instanceName, workspaceID, tableID,
			mcp.WithArray("fields", mcp.Required(),
				mcp.Description("Fields to index: names or {name, op} mappings (op: asc|desc, default asc)"),
			),
		),
		"xano_create_unique_index": mcp.NewTool("xano_create_unique_index",
			mcp.WithDescription("Create a unique index on a table."),
			instanceName, workspaceID, tableID,
			mcp.WithArray("fields", mcp.Required(),
				mcp.Description("Fields to index: names or {name, op} mappings (op: asc|desc, default asc)"),
			),
		),
		"xano_create_search_index": mcp.NewTool("xano_create_search_index",
			mcp.WithDescription("Create a full-text search index on a table."),
			instanceName, workspaceID, tableID,
			mcp.WithString("name", mcp.Required(), mcp.Description("Index name")),
			mcp.WithArray("fields", mcp.Required(),
				mcp.Description("Fields to index: names or {name, priority} mappings"),
			),
			mcp.WithString("lang", mcp.Description("Text search language (default: english)")),
		),
		"xano_delete_index": mcp.NewTool("xano_delete_index",
			mcp.WithDescription("Delete an index from a table."),
			instanceName, workspaceID, tableID,
			mcp.WithString("index_id", mcp.Required(), mcp.Description("Index ID; string or number accepted")),
		),

		"xano_browse_table_content": mcp.NewTool("xano_browse_table_content",
			mcp.WithDescription("Browse table records with pagination."),
			instanceName, workspaceID, tableID, page, perPage,
		),
		"xano_search_table_content": mcp.NewTool("xano_search_table_content",
			mcp.WithDescription("Search table records with server-side filters and sorting."),
			instanceName, workspaceID, tableID, page, perPage,
			mcp.WithArray("search_conditions", mcp.Description("List of search condition mappings, forwarded unchanged")),
			mcp.WithObject("sort", mcp.Description("Field-to-direction mapping (asc|desc)")),
		),
		"xano_get_table_record": mcp.NewTool("xano_get_table_record",
			mcp.WithDescription("Get a single table record by ID."),
			instanceName, workspaceID, tableID,
			mcp.WithString("record_id", mcp.Required(), mcp.Description("Record ID; string or number accepted")),
		),
		"xano_create_table_record": mcp.NewTool("xano_create_table_record",
			mcp.WithDescription("Create a record in a table."),
			instanceName, workspaceID, tableID,
			mcp.WithObject("record", mcp.Required(), mcp.Description("Field values of the new record")),
		),
		"xano_update_table_record": mcp.NewTool("xano_update_table_record",
			mcp.WithDescription("Update a record in a table."),
			instanceName, workspaceID, tableID,
			mcp.WithString("record_id", mcp.Required(), mcp.Description("Record ID; string or number accepted")),
			mcp.WithObject("updates", mcp.Required(), mcp.Description("Field values to update")),
		),
		"xano_delete_table_record": mcp.NewTool("xano_delete_table_record",
			mcp.WithDescription("Delete a record from a table."),
			instanceName, workspaceID, tableID,
			mcp.WithString("record_id", mcp.Required(), mcp.Description("Record ID; string or number accepted")),
		),
		"xano_bulk_create_records": mcp.NewTool("xano_bulk_create_records",
			mcp.WithDescription("Create multiple records in a single request."),
			instanceName, workspaceID, tableID,
			mcp.WithArray("records", mcp.Required(), mcp.Description("List of records to create")),
		),
		"xano_bulk_update_records": mcp.NewTool("xano_bulk_update_records",
			mcp.WithDescription("Update multiple records in a single request."),
			instanceName, workspaceID, tableID,
			mcp.WithArray("updates", mcp.Required(),
				mcp.Description("List of {row_id, updates} mappings"),
			),
		),
		"xano_bulk_delete_records": mcp.NewTool("xano_bulk_delete_records",
			mcp.WithDescription("Delete multiple records in a single request."),
			instanceName, workspaceID, tableID,
			mcp.WithArray("record_ids", mcp.Required(), mcp.Description("IDs of the records to delete")),
		),
		"xano_truncate_table": mcp.NewTool("xano_truncate_table",
			mcp.WithDescription("Remove all records from a table."),
			instanceName, workspaceID, tableID,
			mcp.WithBoolean("reset", mcp.Description("Also reset the primary key counter (default: false)")),
		),

		"xano_list_files": mcp.NewTool("xano_list_files",
			mcp.WithDescription("List file metadata in a workspace."),
			instanceName, workspaceID, page, perPage,
			mcp.WithString("search", mcp.Description("Search term")),
			mcp.WithString("access", mcp.Description("Filter by access (public/private)")),
			mcp.WithString("sort", mcp.Description("Sort field (created_at, name, size, mime)")),
			mcp.WithString("order", mcp.Description("Sort order (asc|desc)")),
		),
		"xano_get_file_details": mcp.NewTool("xano_get_file_details",
			mcp.WithDescription("Get metadata for a specific file."),
			instanceName, workspaceID,
			mcp.WithString("file_id", mcp.Required(), mcp.Description("File ID; string or number accepted")),
		),
		"xano_delete_file": mcp.NewTool("xano_delete_file",
			mcp.WithDescription("Delete a file from a workspace."),
			instanceName, workspaceID,
			mcp.WithString("file_id", mcp.Required(), mcp.Description("File ID; string or number accepted")),
		),
		"xano_bulk_delete_files": mcp.NewTool("xano_bulk_delete_files",
			mcp.WithDescription("Delete multiple files in a single request."),
			instanceName, workspaceID,
			mcp.WithArray("file_ids", mcp.Required(), mcp.Description("IDs of the files to delete")),
		),

		"xano_browse_api_groups": mcp.NewTool("xano_browse_api_groups",
			mcp.WithDescription("Browse the API groups of a workspace."),
			instanceName, workspaceID, page, perPage,
			mcp.WithString("search", mcp.Description("Search term")),
			mcp.WithString("sort", mcp.Description("Sort field (created_at, updated_at, name)")),
			mcp.WithString("order", mcp.Description("Sort order (asc|desc)")),
		),
		"xano_get_api_group": mcp.NewTool("xano_get_api_group",
			mcp.WithDescription("Get details for a specific API group."),
			instanceName, workspaceID,
			mcp.WithString("apigroup_id", mcp.Required(), mcp.Description("API group ID; string or number accepted")),
		),
		"xano_create_api_group": mcp.NewTool("xano_create_api_group",
			mcp.WithDescription("Create a new API group in a workspace."),
			instanceName, workspaceID,
			mcp.WithString("name", mcp.Required(), mcp.Description("API group name")),
			mcp.WithString("description", mcp.Description("Description")),
			mcp.WithString("docs", mcp.Description("Documentation text")),
			mcp.WithBoolean("swagger", mcp.Description("Whether swagger docs are published")),
			mcp.WithArray("tag", mcp.Description("Tags")),
		),
		"xano_update_api_group": mcp.NewTool("xano_update_api_group",
			mcp.WithDescription("Update an API group. Only supplied fields change."),
			instanceName, workspaceID,
			mcp.WithString("apigroup_id", mcp.Required(), mcp.Description("API group ID; string or number accepted")),
			mcp.WithString("name", mcp.Description("New name")),
			mcp.WithString("description", mcp.Description("New description")),
			mcp.WithString("docs", mcp.Description("New documentation text")),
			mcp.WithBoolean("swagger", mcp.Description("New swagger setting")),
			mcp.WithArray("tag", mcp.Description("New tag list")),
		),
		"xano_delete_api_group": mcp.NewTool("xano_delete_api_group",
			mcp.WithDescription("Delete an API group from a workspace."),
			instanceName, workspaceID,
			mcp.WithString("apigroup_id", mcp.Required(), mcp.Description("API group ID; string or number accepted")),
		),
		"xano_browse_apis_in_group": mcp.NewTool("xano_browse_apis_in_group",
			mcp.WithDescription("Browse the APIs inside an API group."),
			instanceName, workspaceID, page, perPage,
			mcp.WithString("apigroup_id", mcp.Required(), mcp.Description("API group ID; string or number accepted")),
			mcp.WithString("search", mcp.Description("Search term")),
			mcp.WithString("sort", mcp.Description("Sort field (created_at, updated_at, name)")),
			mcp.WithString("order", mcp.Description("Sort order (asc|desc)")),
		),
		"xano_get_api": mcp.NewTool("xano_get_api",
			mcp.WithDescription("Get details for a specific API."),
			instanceName, workspaceID,
			mcp.WithString("apigroup_id", mcp.Required(), mcp.Description("API group ID; string or number accepted")),
			mcp.WithString("api_id", mcp.Required(), mcp.Description("API ID; string or number accepted")),
		),
		"xano_create_api": mcp.NewTool("xano_create_api",
			mcp.WithDescription("Create an API inside an API group."),
			instanceName, workspaceID,
			mcp.WithString("apigroup_id", mcp.Required(), mcp.Description("API group ID; string or number accepted")),
			mcp.WithString("name", mcp.Required(), mcp.Description("API name")),
			mcp.WithString("verb", mcp.Required(),
				mcp.Description("HTTP verb"),
				mcp.Enum("GET", "POST", "PUT", "PATCH", "DELETE", "HEAD"),
			),
			mcp.WithString("description", mcp.Description("Description")),
			mcp.WithString("docs", mcp.Description("Documentation text")),
			mcp.WithArray("tag", mcp.Description("Tags")),
		),
		"xano_update_api": mcp.NewTool("xano_update_api",
			mcp.WithDescription("Update an API. Only supplied fields change."),
			instanceName, workspaceID,
			mcp.WithString("apigroup_id", mcp.Required(), mcp.Description("API group ID; string or number accepted")),
			mcp.WithString("api_id", mcp.Required(), mcp.Description("API ID; string or number accepted")),
			mcp.WithString("name", mcp.Description("New name")),
			mcp.WithString("verb", mcp.Description("New HTTP verb")),
			mcp.WithString("description", mcp.Description("New description")),
			mcp.WithString("docs", mcp.Description("New documentation text")),
			mcp.WithBoolean("auth", mcp.Description("New authentication setting")),
			mcp.WithArray("tag", mcp.Description("New tag list")),
		),
		"xano_delete_api": mcp.NewTool("xano_delete_api",
			mcp.WithDescription("Delete an API from an API group."),
			instanceName, workspaceID,
			mcp.WithString("apigroup_id", mcp.Required(), mcp.Description("API group ID; string or number accepted")),
			mcp.WithString("api_id", mcp.Required(), mcp.Description("API ID; string or number accepted")),
		),

		"xano_export_workspace": mcp.NewTool("xano_export_workspace",
			mcp.WithDescription("Export a workspace (schema and content)."),
			instanceName, workspaceID,
			mcp.WithString("branch", mcp.Description("Branch to export (default: live branch)")),
			mcp.WithString("password", mcp.Description("Password protecting the export archive")),
		),
		"xano_export_workspace_schema": mcp.NewTool("xano_export_workspace_schema",
			mcp.WithDescription("Export only the schema of a workspace."),
			instanceName, workspaceID,
			mcp.WithString("branch", mcp.Description("Branch to export (default: live branch)")),
			mcp.WithString("password", mcp.Description("Password protecting the export archive")),
		),
	}
}
