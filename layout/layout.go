// ABOUTME: Derives the positioned category/contact graph shown in the diagram view
// ABOUTME: Pure computation from contacts, categories, search query, and theme
package layout

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/harperreed/rolodex/models"
)

// Grid constants. Headers sit in fixed horizontal slots; cards stack below.
const (
	SlotWidth   = 300.0
	HeaderY     = 50.0
	CardOffsetX = 50.0
	RowHeight   = 150.0

	HeaderPrefix  = "cat-"
	ContactPrefix = "contact-"
	EdgePrefix    = "edge-"
)

type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// ParseTheme accepts "dark"; everything else is light.
func ParseTheme(s string) Theme {
	if strings.EqualFold(strings.TrimSpace(s), "dark") {
		return ThemeDark
	}
	return ThemeLight
}

type Kind int

const (
	KindHeader Kind = iota
	KindContact
)

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is plain data. How a node looks is decided by the rendering layer
// from its Kind, Priority, and the graph Theme.
type Node struct {
	ID        string          `json:"id"`
	Kind      Kind            `json:"kind"`
	Label     string          `json:"label"`
	Position  Position        `json:"position"`
	Draggable bool            `json:"draggable"`
	Category  string          `json:"category"`
	ContactID uuid.UUID       `json:"contact_id,omitempty"`
	Priority  models.Priority `json:"priority,omitempty"`
}

type Edge struct {
	ID       string          `json:"id"`
	Source   string          `json:"source"`
	Target   string          `json:"target"`
	Priority models.Priority `json:"priority"`
}

type Graph struct {
	Theme Theme  `json:"theme"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

func HeaderID(category string) string { return HeaderPrefix + category }

func ContactNodeID(id uuid.UUID) string { return ContactPrefix + id.String() }

// ParseContactNodeID extracts the contact id from a contact node id.
func ParseContactNodeID(nodeID string) (uuid.UUID, bool) {
	rest, ok := strings.CutPrefix(nodeID, ContactPrefix)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(rest)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// Derive lays out one column per category, in category order. Each column
// holds the category's contacts whose name contains query (case-insensitive),
// ordered by priority with ties kept in contact order. Contacts with a blank
// or unknown category do not appear.
func Derive(contacts []models.Contact, categories []string, query string, theme Theme) Graph {
	g := Graph{
		Theme: theme,
		Nodes: []Node{},
		Edges: []Edge{},
	}
	needle := strings.ToLower(query)

	for i, cat := range categories {
		header := Node{
			ID:       HeaderID(cat),
			Kind:     KindHeader,
			Label:    cat,
			Position: Position{X: float64(i) * SlotWidth, Y: HeaderY},
			Category: cat,
		}
		g.Nodes = append(g.Nodes, header)

		var column []models.Contact
		for _, c := range contacts {
			if c.Category != cat {
				continue
			}
			if !strings.Contains(strings.ToLower(c.Name), needle) {
				continue
			}
			column = append(column, c)
		}
		sort.SliceStable(column, func(a, b int) bool {
			return column[a].Priority.Rank() < column[b].Priority.Rank()
		})

		for row, c := range column {
			node := Node{
				ID:    ContactNodeID(c.ID),
				Kind:  KindContact,
				Label: c.Name,
				Position: Position{
					X: header.Position.X + CardOffsetX,
					Y: HeaderY + float64(row+1)*RowHeight,
				},
				Draggable: true,
				Category:  cat,
				ContactID: c.ID,
				Priority:  c.Priority,
			}
			g.Nodes = append(g.Nodes, node)
			g.Edges = append(g.Edges, Edge{
				ID:       EdgePrefix + cat + "-" + c.ID.String(),
				Source:   header.ID,
				Target:   node.ID,
				Priority: c.Priority,
			})
		}
	}

	return g
}

// Node looks up a node by id.
func (g Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Headers returns the category header nodes in category order.
func (g Graph) Headers() []Node {
	var headers []Node
	for _, n := range g.Nodes {
		if n.Kind == KindHeader {
			headers = append(headers, n)
		}
	}
	return headers
}

// Column returns the contact nodes under category, top to bottom.
func (g Graph) Column(category string) []Node {
	var column []Node
	for _, n := range g.Nodes {
		if n.Kind == KindContact && n.Category == category {
			column = append(column, n)
		}
	}
	return column
}

// Bounds returns the maximum x and y of any node position.
func (g Graph) Bounds() (maxX, maxY float64) {
	for _, n := range g.Nodes {
		if n.Position.X > maxX {
			maxX = n.Position.X
		}
		if n.Position.Y > maxY {
			maxY = n.Position.Y
		}
	}
	return maxX, maxY
}
