// ABOUTME: MCP server subcommand
// ABOUTME: Starts the MCP server on stdio over the snapshot-backed session
package cli

import (
	"context"
	"log/slog"

	"github.com/harperreed/rolodex/handlers"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewMCPServer registers every rolodex tool, resource, and prompt.
func NewMCPServer(ws *Workspace, version string) *mcp.Server {
	session := ws.Session
	contactHandlers := handlers.NewContactHandlers(session)
	categoryHandlers := handlers.NewCategoryHandlers(session)
	vizHandlers := handlers.NewVizHandlers(session)
	snapshotHandlers := handlers.NewSnapshotHandlers(session)
	resourceHandlers := handlers.NewResourceHandlers(session)
	promptHandlers := handlers.NewPromptHandlers(session)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "rolodex",
		Version: version,
	}, nil)

	// Contacts
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_contact",
		Description: "Add a contact. Name and phone are required; category must already exist.",
	}, contactHandlers.AddContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_contacts",
		Description: "Search contacts by name substring, category, and priority",
	}, contactHandlers.FindContacts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_contact",
		Description: "Get one contact with its website and map links",
	}, contactHandlers.GetContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_contact",
		Description: "Update an existing contact in place; omitted fields keep their value",
	}, contactHandlers.UpdateContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_contact",
		Description: "Delete a contact. Requires confirm=true after asking the user.",
	}, contactHandlers.DeleteContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "move_contact",
		Description: "Move a contact to another category, like dragging its card onto a header",
	}, contactHandlers.MoveContact)

	// Categories
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_categories",
		Description: "List categories in diagram order with contact counts",
	}, categoryHandlers.ListCategories)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_category",
		Description: "Add a category column to the diagram",
	}, categoryHandlers.AddCategory)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rename_category",
		Description: "Rename a category and every contact filed under it",
	}, categoryHandlers.RenameCategory)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_category",
		Description: "Delete a category; its contacts lose their category. Requires confirm=true.",
	}, categoryHandlers.DeleteCategory)

	// Diagram and analytics
	mcp.AddTool(server, &mcp.Tool{
		Name:        "derive_layout",
		Description: "Compute the positioned category/contact graph shown in the diagram",
	}, vizHandlers.DeriveLayout)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_diagram",
		Description: "Render the diagram as GraphViz DOT or SVG",
	}, vizHandlers.GenerateDiagram)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_analytics",
		Description: "Contact counts per priority and per category",
	}, vizHandlers.GetAnalytics)

	// Snapshots
	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_snapshot",
		Description: "Export all contacts and categories as JSON",
	}, snapshotHandlers.ExportSnapshot)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "import_snapshot",
		Description: "Replace all contacts and categories with a JSON snapshot",
	}, snapshotHandlers.ImportSnapshot)

	// Resources
	for _, r := range []struct{ uri, name, desc string }{
		{"rolodex://contacts", "contacts", "All contacts"},
		{"rolodex://categories", "categories", "Categories in diagram order"},
		{"rolodex://layout", "layout", "The derived diagram graph"},
		{"rolodex://analytics", "analytics", "Priority and category counts"},
	} {
		server.AddResource(&mcp.Resource{
			URI:         r.uri,
			Name:        r.name,
			Description: r.desc,
			MIMEType:    "application/json",
		}, resourceHandlers.ReadResource)
	}
	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "rolodex://contacts/{id}",
		Name:        "contact",
		Description: "One contact by ID or unique ID prefix",
		MIMEType:    "application/json",
	}, resourceHandlers.ReadResource)

	// Prompts
	server.AddPrompt(&mcp.Prompt{
		Name:        "contact-summary",
		Description: "Summarize a contact and review its priority and category",
		Arguments: []*mcp.PromptArgument{
			{Name: "contact_id", Description: "Contact ID", Required: true},
		},
	}, promptHandlers.GetPrompt)
	server.AddPrompt(&mcp.Prompt{
		Name:        "category-review",
		Description: "Review the contacts filed under one category",
		Arguments: []*mcp.PromptArgument{
			{Name: "category", Description: "Category name", Required: true},
		},
	}, promptHandlers.GetPrompt)
	server.AddPrompt(&mcp.Prompt{
		Name:        "priority-triage",
		Description: "Decide who to reach out to first",
	}, promptHandlers.GetPrompt)

	return server
}

// MCPCommand starts the MCP server on stdio. Changes are saved to the
// snapshot file, and edits made by other surfaces are picked up.
func MCPCommand(ctx context.Context, ws *Workspace, version string) error {
	slog.Info("starting rolodex MCP server", "file", ws.Config.File)

	if err := ws.Save(); err != nil {
		return err
	}
	autosave(ws)

	watcher, err := newReloader(ws, func() {})
	if err != nil {
		return err
	}
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		if err := watcher.Run(watchCtx); err != nil {
			slog.Warn("watcher stopped", "error", err)
		}
	}()

	server := NewMCPServer(ws, version)
	return server.Run(ctx, &mcp.StdioTransport{})
}
