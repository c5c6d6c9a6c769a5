// ABOUTME: Graphviz rendering of the category/contact diagram
// ABOUTME: Nodes are pinned at their derived positions and laid out with neato
package viz

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/harperreed/rolodex/layout"
	"github.com/harperreed/rolodex/models"
)

// Graphviz works in points and inches with y growing upward.
const dotScale = 72.0

// RenderDiagramDOT returns the diagram as DOT source with layout attributes.
func RenderDiagramDOT(ctx context.Context, g layout.Graph, contacts []models.Contact) (string, error) {
	var buf bytes.Buffer
	if err := renderGraphviz(ctx, g, contacts, graphviz.XDOT, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderGraphviz(ctx context.Context, g layout.Graph, contacts []models.Contact, format graphviz.Format, buf *bytes.Buffer) error {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("failed to create graphviz: %w", err)
	}
	defer func() {
		if err := gv.Close(); err != nil {
			slog.Warn("failed to close graphviz", "error", err)
		}
	}()

	graph, err := gv.Graph()
	if err != nil {
		return fmt.Errorf("failed to create graph: %w", err)
	}
	defer func() {
		if err := graph.Close(); err != nil {
			slog.Warn("failed to close graph", "error", err)
		}
	}()

	sc := buildScene(g, contacts)
	graph.SetLayout("neato")
	graph.SetBackgroundColor(Hex(sc.Palette.Background))
	graph.SetLabel("Contacts")

	nodes := make(map[string]*cgraph.Node, len(sc.Boxes))
	for _, b := range sc.Boxes {
		node, err := graph.CreateNodeByName(b.ID)
		if err != nil {
			return fmt.Errorf("failed to create node %s: %w", b.ID, err)
		}

		label := b.Label
		if b.Kind == layout.KindContact {
			label = fmt.Sprintf("[%s]\n%s", b.Priority, b.Label)
			for _, line := range cardLines(b.Contact) {
				label += "\n" + line
			}
			node.SetShape("box")
			node.SetStyle("rounded,filled")
		} else {
			node.SetShape("box")
			node.SetStyle("filled,bold")
		}
		node.SetLabel(label)
		node.SetFillColor(Hex(b.Style.Fill))
		node.SetColor(Hex(b.Style.Border))
		node.SetFontColor(Hex(b.Style.Text))
		node.SetPenWidth(b.Style.BorderWidth)
		node.SetWidth(b.Style.Width / dotScale)
		node.SetHeight(b.Style.Height / dotScale)
		node.SetFixedSize(true)
		node.SetPos((b.X+b.Style.Width/2)/dotScale, -(b.Y+b.Style.Height/2)/dotScale)
		node.SetPin(true)
		nodes[b.ID] = node
	}

	for _, e := range g.Edges {
		from, ok1 := nodes[e.Source]
		to, ok2 := nodes[e.Target]
		if !ok1 || !ok2 {
			continue
		}
		edge, err := graph.CreateEdgeByName(e.ID, from, to)
		if err != nil {
			return fmt.Errorf("failed to create edge %s: %w", e.ID, err)
		}
		edge.SetColor(Hex(PriorityColor(e.Priority)))
		edge.SetStyle("dashed")
		edge.SetArrowHead("none")
	}

	if err := gv.Render(ctx, graph, format, buf); err != nil {
		return fmt.Errorf("failed to render graph: %w", err)
	}
	return nil
}
