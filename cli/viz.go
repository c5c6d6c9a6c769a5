// ABOUTME: Visualization CLI commands
// ABOUTME: Renders the contact diagram and analytics charts to stdout or a file
package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/harperreed/rolodex/layout"
	"github.com/harperreed/rolodex/viz"
)

// DiagramCommand renders the category diagram.
func DiagramCommand(ctx context.Context, ws *Workspace, args []string) error {
	fs := newFlagSet(ws, "diagram")
	format := fs.String("format", "dot", "Output format: dot, svg, png, or json")
	query := fs.String("query", "", "Only show contacts whose name contains this")
	theme := fs.String("theme", ws.Config.Theme, "Theme: light or dark")
	output := fs.String("output", "", "Output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s := ws.Session.Store()
	contacts := s.Contacts()
	g := layout.Derive(contacts, s.Categories(), *query, layout.ParseTheme(*theme))

	var buf bytes.Buffer
	switch *format {
	case "dot":
		dot, err := viz.RenderDiagramDOT(ctx, g, contacts)
		if err != nil {
			return err
		}
		buf.WriteString(dot)
	case "svg":
		if err := viz.RenderDiagramSVG(&buf, g, contacts); err != nil {
			return err
		}
	case "png":
		if err := viz.RenderDiagramPNG(&buf, g, contacts); err != nil {
			return err
		}
	case "json":
		data, err := json.MarshalIndent(g, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode layout: %w", err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	default:
		return fmt.Errorf("unknown format %q (use dot, svg, png, or json)", *format)
	}

	return writeOutput(ws, *output, buf.Bytes())
}

// AnalyticsCommand prints the dashboard or renders one of its charts.
func AnalyticsCommand(ws *Workspace, args []string) error {
	fs := newFlagSet(ws, "analytics")
	format := fs.String("format", "text", "Output format: text, json, or svg")
	chart := fs.String("chart", "priority", "Chart for svg output: priority or category")
	theme := fs.String("theme", ws.Config.Theme, "Theme: light or dark")
	output := fs.String("output", "", "Output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	summary := ws.Session.Analytics()

	var buf bytes.Buffer
	switch *format {
	case "text":
		buf.WriteString(viz.RenderDashboard(summary))
	case "json":
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode analytics: %w", err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	case "svg":
		var err error
		switch *chart {
		case "priority":
			err = viz.RenderPriorityPie(&buf, summary.ByPriority, layout.ParseTheme(*theme))
		case "category":
			err = viz.RenderCategoryBars(&buf, summary.ByCategory, layout.ParseTheme(*theme))
		default:
			return fmt.Errorf("unknown chart %q (use priority or category)", *chart)
		}
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (use text, json, or svg)", *format)
	}

	return writeOutput(ws, *output, buf.Bytes())
}

func writeOutput(ws *Workspace, path string, data []byte) error {
	if path != "" {
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		return nil
	}
	_, err := ws.Out.Write(data)
	return err
}
