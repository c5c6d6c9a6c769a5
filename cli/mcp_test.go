// ABOUTME: Tests for the MCP server wiring
// ABOUTME: Connects an in-memory client and calls tools end to end
package cli

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServerTools(t *testing.T) {
	ws, _ := setupTestCLI(t)
	server := NewMCPServer(ws, "test")
	ctx := context.Background()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer func() { _ = serverSession.Close() }()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer func() { _ = session.Close() }()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	for _, want := range []string{
		"add_contact", "find_contacts", "update_contact", "delete_contact", "move_contact",
		"add_category", "rename_category", "delete_category",
		"derive_layout", "generate_diagram", "get_analytics",
		"export_snapshot", "import_snapshot",
	} {
		assert.Contains(t, names, want)
	}

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "add_contact",
		Arguments: map[string]any{"name": "Ann", "phone": "1", "category": "Work"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, 1, ws.Session.Store().Len())

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "add_contact",
		Arguments: map[string]any{"name": "No phone", "phone": ""},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, 1, ws.Session.Store().Len())
}
