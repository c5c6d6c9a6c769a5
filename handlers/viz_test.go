// ABOUTME: Tests for diagram, analytics, snapshot, resource, and prompt MCP handlers
// ABOUTME: Exercises rendering outputs, snapshot round trips, and URI reads
package handlers

import (
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/harperreed/rolodex/layout"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedContacts(t *testing.T, h *ContactHandlers) {
	t.Helper()
	for _, in := range []AddContactInput{
		{Name: "Ann", Phone: "1", Category: "Work", Priority: "High"},
		{Name: "Bob", Phone: "2", Category: "Work", Priority: "Low"},
		{Name: "Cy", Phone: "3"},
	} {
		_, _, err := h.AddContact(context.Background(), nil, in)
		require.NoError(t, err)
	}
}

func TestDeriveLayoutHandler(t *testing.T) {
	sess := setupTestSession(t, "Work", "Family")
	seedContacts(t, NewContactHandlers(sess))
	handler := NewVizHandlers(sess)

	_, out, err := handler.DeriveLayout(context.Background(), nil, DeriveLayoutInput{Theme: "dark"})
	require.NoError(t, err)
	assert.Equal(t, 4, out.NodeCount)
	assert.Equal(t, 2, out.EdgeCount)
	assert.Equal(t, layout.ThemeDark, out.Graph.Theme)

	_, out, err = handler.DeriveLayout(context.Background(), nil, DeriveLayoutInput{Query: "bo"})
	require.NoError(t, err)
	assert.Equal(t, 1, out.EdgeCount)
}

func TestGenerateDiagramHandler(t *testing.T) {
	sess := setupTestSession(t, "Work")
	seedContacts(t, NewContactHandlers(sess))
	handler := NewVizHandlers(sess)
	ctx := context.Background()

	_, out, err := handler.GenerateDiagram(ctx, nil, GenerateDiagramInput{Format: "svg"})
	require.NoError(t, err)
	assert.Contains(t, out.Source, "<svg")
	assert.Contains(t, out.Source, "Ann")

	_, _, err = handler.GenerateDiagram(ctx, nil, GenerateDiagramInput{Format: "gif"})
	assert.Error(t, err)
}

func TestGenerateDiagramHandlerDefaultsToDOT(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping graphviz rendering in short mode")
	}
	sess := setupTestSession(t, "Work")
	seedContacts(t, NewContactHandlers(sess))
	handler := NewVizHandlers(sess)

	_, out, err := handler.GenerateDiagram(context.Background(), nil, GenerateDiagramInput{})
	require.NoError(t, err)
	assert.Equal(t, "dot", out.Format)
	assert.Contains(t, out.Source, "cat-Work")
}

func TestGetAnalyticsHandler(t *testing.T) {
	sess := setupTestSession(t, "Work")
	seedContacts(t, NewContactHandlers(sess))
	handler := NewVizHandlers(sess)

	_, out, err := handler.GetAnalytics(context.Background(), nil, GetAnalyticsInput{})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Summary.TotalContacts)
	assert.Equal(t, 1, out.Summary.Uncategorized)
	assert.Contains(t, out.Dashboard, "ROLODEX DASHBOARD")
}

func TestSnapshotHandlersRoundTrip(t *testing.T) {
	sess := setupTestSession(t, "Work")
	seedContacts(t, NewContactHandlers(sess))
	handler := NewSnapshotHandlers(sess)
	ctx := context.Background()

	_, exported, err := handler.ExportSnapshot(ctx, nil, ExportSnapshotInput{})
	require.NoError(t, err)
	assert.Equal(t, 3, exported.Contacts)
	assert.Equal(t, 1, exported.Categories)

	other := setupTestSession(t)
	_, imported, err := NewSnapshotHandlers(other).ImportSnapshot(ctx, nil, ImportSnapshotInput{JSON: exported.JSON})
	require.NoError(t, err)
	assert.Equal(t, 3, imported.Contacts)
	assert.Equal(t, sess.Store().Snapshot(), other.Store().Snapshot())
	assert.Empty(t, other.Notices().List())
}

func TestImportSnapshotMalformedKeepsState(t *testing.T) {
	sess := setupTestSession(t, "Work")
	seedContacts(t, NewContactHandlers(sess))
	before := sess.Store().Snapshot()

	_, _, err := NewSnapshotHandlers(sess).ImportSnapshot(context.Background(), nil, ImportSnapshotInput{JSON: "{nope"})
	assert.Error(t, err)
	assert.Equal(t, before, sess.Store().Snapshot())
}

func readResource(t *testing.T, h *ResourceHandlers, uri string) string {
	t.Helper()
	res, err := h.ReadResource(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Equal(t, "application/json", res.Contents[0].MIMEType)
	return res.Contents[0].Text
}

func TestReadResources(t *testing.T) {
	sess := setupTestSession(t, "Work")
	seedContacts(t, NewContactHandlers(sess))
	handler := NewResourceHandlers(sess)

	var contacts []ContactOutput
	require.NoError(t, json.Unmarshal([]byte(readResource(t, handler, "rolodex://contacts")), &contacts))
	require.Len(t, contacts, 3)

	var one ContactOutput
	require.NoError(t, json.Unmarshal([]byte(readResource(t, handler, "rolodex://contacts/"+contacts[0].ID)), &one))
	assert.Equal(t, contacts[0].Name, one.Name)

	var categories []string
	require.NoError(t, json.Unmarshal([]byte(readResource(t, handler, "rolodex://categories")), &categories))
	assert.Equal(t, []string{"Work"}, categories)

	assert.Contains(t, readResource(t, handler, "rolodex://layout"), "cat-Work")
	assert.Contains(t, readResource(t, handler, "rolodex://analytics"), "total_contacts")

	_, err := handler.ReadResource(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "crm://contacts"},
	})
	assert.Error(t, err)

	_, err = handler.ReadResource(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "rolodex://deals"},
	})
	assert.Error(t, err)
}

func getPrompt(h *PromptHandlers, name string, args map[string]string) (*mcp.GetPromptResult, error) {
	return h.GetPrompt(context.Background(), &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{Name: name, Arguments: args},
	})
}

func promptText(t *testing.T, res *mcp.GetPromptResult) string {
	t.Helper()
	require.Len(t, res.Messages, 1)
	text, ok := res.Messages[0].Content.(*mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestPrompts(t *testing.T) {
	sess := setupTestSession(t, "Work")
	seedContacts(t, NewContactHandlers(sess))
	handler := NewPromptHandlers(sess)
	ann := sess.Store().Find("Ann", "", 1)[0]

	res, err := getPrompt(handler, "contact-summary", map[string]string{"contact_id": ann.ID.String()})
	require.NoError(t, err)
	assert.Contains(t, promptText(t, res), "Name: Ann")

	res, err = getPrompt(handler, "category-review", map[string]string{"category": "Work"})
	require.NoError(t, err)
	text := promptText(t, res)
	assert.Contains(t, text, "2 contact(s)")
	assert.Contains(t, text, "- Bob (Low priority)")

	res, err = getPrompt(handler, "priority-triage", nil)
	require.NoError(t, err)
	text = promptText(t, res)
	assert.Contains(t, text, "High: 1")
	assert.True(t, strings.Contains(text, "1 contact(s) are not in any category"))

	_, err = getPrompt(handler, "contact-summary", nil)
	assert.Error(t, err)
	_, err = getPrompt(handler, "category-review", map[string]string{"category": "Nope"})
	assert.Error(t, err)
	_, err = getPrompt(handler, "deal-analysis", nil)
	assert.Error(t, err)
}
