// ABOUTME: Category MCP tool handlers
// ABOUTME: Implements list_categories, add_category, rename_category, and delete_category tools
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/rolodex/analytics"
	"github.com/harperreed/rolodex/editor"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type CategoryHandlers struct {
	session *editor.Session
}

func NewCategoryHandlers(session *editor.Session) *CategoryHandlers {
	return &CategoryHandlers{session: session}
}

type ListCategoriesInput struct{}

type CategoriesOutput struct {
	Categories []analytics.Count `json:"categories"`
}

func (h *CategoryHandlers) ListCategories(_ context.Context, request *mcp.CallToolRequest, input ListCategoriesInput) (*mcp.CallToolResult, CategoriesOutput, error) {
	return nil, CategoriesOutput{Categories: h.session.Analytics().ByCategory}, nil
}

type CategoryNameInput struct {
	Name string `json:"name" jsonschema:"Category name (required)"`
}

func (h *CategoryHandlers) AddCategory(_ context.Context, request *mcp.CallToolRequest, input CategoryNameInput) (*mcp.CallToolResult, CategoriesOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, CategoriesOutput{}, fmt.Errorf("name is required")
	}
	if !h.session.AddCategory(name) {
		return nil, CategoriesOutput{}, fmt.Errorf("category %q already exists", name)
	}
	return nil, CategoriesOutput{Categories: h.session.Analytics().ByCategory}, nil
}

type RenameCategoryInput struct {
	From string `json:"from" jsonschema:"Current category name (required)"`
	To   string `json:"to" jsonschema:"New category name (required)"`
}

func (h *CategoryHandlers) RenameCategory(_ context.Context, request *mcp.CallToolRequest, input RenameCategoryInput) (*mcp.CallToolResult, CategoriesOutput, error) {
	to := strings.TrimSpace(input.To)
	if !h.session.RenameCategory(input.From, to) {
		return nil, CategoriesOutput{}, fmt.Errorf("could not rename %q to %q: source missing, target blank, or target taken", input.From, to)
	}
	return nil, CategoriesOutput{Categories: h.session.Analytics().ByCategory}, nil
}

type DeleteCategoryInput struct {
	Name    string `json:"name" jsonschema:"Category name (required)"`
	Confirm bool   `json:"confirm" jsonschema:"Must be true to delete; ask the user first"`
}

func (h *CategoryHandlers) DeleteCategory(_ context.Context, request *mcp.CallToolRequest, input DeleteCategoryInput) (*mcp.CallToolResult, DeleteOutput, error) {
	if !h.session.Store().HasCategory(input.Name) {
		return nil, DeleteOutput{}, fmt.Errorf("unknown category %q", input.Name)
	}
	if !h.session.DeleteCategory(input.Name, confirmer(input.Confirm)) {
		return nil, DeleteOutput{Message: editor.PromptDeleteCategory + " Call again with confirm=true."}, nil
	}
	return nil, DeleteOutput{Deleted: true, Message: "Deleted category " + input.Name}, nil
}
