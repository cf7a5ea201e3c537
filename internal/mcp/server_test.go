package mcp

import (
	"testing"
)

func TestToolDefinitionsMatchAdapters(t *testing.T) {
	definitions := toolDefinitions()
	cfg := DefaultConfig()

	for name := range cfg.ToolAdapters {
		def, ok := definitions[name]
		if !ok {
			t.Errorf("adapter %q has no tool definition", name)
			continue
		}
		if def.Name != name {
			t.Errorf("definition for %q declares name %q", name, def.Name)
		}
	}
	for name := range definitions {
		if _, ok := cfg.ToolAdapters[name]; !ok {
			t.Errorf("tool definition %q has no adapter", name)
		}
	}
}

func TestNewRegistersServer(t *testing.T) {
	srv := New(DefaultConfig())
	if srv.MCP == nil {
		t.Fatal("MCP server should be initialized")
	}
	if srv.Handler == nil {
		t.Fatal("HTTP handler should be initialized")
	}
}
