// ABOUTME: Snapshot MCP tool handlers
// ABOUTME: Implements export_snapshot and import_snapshot over JSON text
package handlers

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/rolodex/editor"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type SnapshotHandlers struct {
	session *editor.Session
}

func NewSnapshotHandlers(session *editor.Session) *SnapshotHandlers {
	return &SnapshotHandlers{session: session}
}

type ExportSnapshotInput struct{}

type SnapshotOutput struct {
	JSON       string `json:"json,omitempty"`
	Contacts   int    `json:"contacts"`
	Categories int    `json:"categories"`
}

func (h *SnapshotHandlers) ExportSnapshot(_ context.Context, request *mcp.CallToolRequest, input ExportSnapshotInput) (*mcp.CallToolResult, SnapshotOutput, error) {
	var buf bytes.Buffer
	if err := h.session.Export(&buf); err != nil {
		return nil, SnapshotOutput{}, fmt.Errorf("failed to export snapshot: %w", err)
	}
	snap := h.session.Store().Snapshot()
	return nil, SnapshotOutput{
		JSON:       buf.String(),
		Contacts:   len(snap.Contacts),
		Categories: len(snap.Categories),
	}, nil
}

type ImportSnapshotInput struct {
	JSON string `json:"json" jsonschema:"Snapshot JSON with contacts and categories arrays; replaces everything"`
}

func (h *SnapshotHandlers) ImportSnapshot(_ context.Context, request *mcp.CallToolRequest, input ImportSnapshotInput) (*mcp.CallToolResult, SnapshotOutput, error) {
	if err := h.session.Import(strings.NewReader(input.JSON)); err != nil {
		return nil, SnapshotOutput{}, fmt.Errorf("failed to import snapshot: %w", err)
	}
	// Notices are for interactive surfaces.
	h.session.Notices().Drain()

	snap := h.session.Store().Snapshot()
	return nil, SnapshotOutput{
		Contacts:   len(snap.Contacts),
		Categories: len(snap.Categories),
	}, nil
}
