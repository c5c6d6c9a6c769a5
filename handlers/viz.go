// ABOUTME: Diagram and analytics MCP handlers
// ABOUTME: Provides derive_layout, generate_diagram, and get_analytics tools for agents
package handlers

import (
	"bytes"
	"context"
	"fmt"

	"github.com/harperreed/rolodex/analytics"
	"github.com/harperreed/rolodex/editor"
	"github.com/harperreed/rolodex/layout"
	"github.com/harperreed/rolodex/viz"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type VizHandlers struct {
	session *editor.Session
}

func NewVizHandlers(session *editor.Session) *VizHandlers {
	return &VizHandlers{session: session}
}

type DeriveLayoutInput struct {
	Query string `json:"query,omitempty" jsonschema:"Only place contacts whose name contains this"`
	Theme string `json:"theme,omitempty" jsonschema:"light or dark (default: current theme)"`
}

type DeriveLayoutOutput struct {
	Graph     layout.Graph `json:"graph"`
	NodeCount int          `json:"node_count"`
	EdgeCount int          `json:"edge_count"`
}

func (h *VizHandlers) graph(query, theme string) layout.Graph {
	t := h.session.Theme()
	if theme != "" {
		t = layout.ParseTheme(theme)
	}
	s := h.session.Store()
	return layout.Derive(s.Contacts(), s.Categories(), query, t)
}

func (h *VizHandlers) DeriveLayout(_ context.Context, request *mcp.CallToolRequest, input DeriveLayoutInput) (*mcp.CallToolResult, DeriveLayoutOutput, error) {
	g := h.graph(input.Query, input.Theme)
	return nil, DeriveLayoutOutput{
		Graph:     g,
		NodeCount: len(g.Nodes),
		EdgeCount: len(g.Edges),
	}, nil
}

type GenerateDiagramInput struct {
	Format string `json:"format,omitempty" jsonschema:"dot or svg (default dot)"`
	Query  string `json:"query,omitempty" jsonschema:"Only show contacts whose name contains this"`
	Theme  string `json:"theme,omitempty" jsonschema:"light or dark"`
}

type GenerateDiagramOutput struct {
	Format    string `json:"format"`
	Source    string `json:"source"`
	NodeCount int    `json:"node_count"`
	EdgeCount int    `json:"edge_count"`
}

func (h *VizHandlers) GenerateDiagram(ctx context.Context, request *mcp.CallToolRequest, input GenerateDiagramInput) (*mcp.CallToolResult, GenerateDiagramOutput, error) {
	format := input.Format
	if format == "" {
		format = "dot"
	}

	g := h.graph(input.Query, input.Theme)
	contacts := h.session.Store().Contacts()

	var source string
	switch format {
	case "dot":
		dot, err := viz.RenderDiagramDOT(ctx, g, contacts)
		if err != nil {
			return nil, GenerateDiagramOutput{}, fmt.Errorf("failed to render diagram: %w", err)
		}
		source = dot
	case "svg":
		var buf bytes.Buffer
		if err := viz.RenderDiagramSVG(&buf, g, contacts); err != nil {
			return nil, GenerateDiagramOutput{}, fmt.Errorf("failed to render diagram: %w", err)
		}
		source = buf.String()
	default:
		return nil, GenerateDiagramOutput{}, fmt.Errorf("unknown format %q (use dot or svg)", format)
	}

	return nil, GenerateDiagramOutput{
		Format:    format,
		Source:    source,
		NodeCount: len(g.Nodes),
		EdgeCount: len(g.Edges),
	}, nil
}

type GetAnalyticsInput struct{}

type GetAnalyticsOutput struct {
	Summary   analytics.Summary `json:"summary"`
	Dashboard string            `json:"dashboard"`
}

func (h *VizHandlers) GetAnalytics(_ context.Context, request *mcp.CallToolRequest, input GetAnalyticsInput) (*mcp.CallToolResult, GetAnalyticsOutput, error) {
	summary := h.session.Analytics()
	return nil, GetAnalyticsOutput{
		Summary:   summary,
		Dashboard: viz.RenderDashboard(summary),
	}, nil
}
