// ABOUTME: Static SVG and PNG renderings of the category/contact diagram
// ABOUTME: SVG groups carry node ids so the web page can wire drag and click
package viz

import (
	"fmt"
	"html"
	"io"

	"git.sr.ht/~sbinet/gg"
	svg "github.com/ajstarks/svgo"
	"github.com/google/uuid"
	"github.com/harperreed/rolodex/diagram"
	"github.com/harperreed/rolodex/layout"
	"github.com/harperreed/rolodex/models"
	"golang.org/x/image/font/basicfont"
)

const (
	canvasMargin    = 20.0
	minCanvasWidth  = 400
	minCanvasHeight = 200
)

type nodeBox struct {
	layout.Node
	Style   NodeStyle
	X, Y    float64
	Contact models.Contact
}

type scene struct {
	Width, Height int
	Palette       Palette
	Boxes         []nodeBox
	Edges         []sceneEdge
}

type sceneEdge struct {
	ID             string
	X1, Y1, X2, Y2 float64
	Color          string
}

// buildScene shifts graph positions by the canvas margin and resolves styles.
// contacts supplies the card details a node does not carry.
func buildScene(g layout.Graph, contacts []models.Contact) scene {
	byID := make(map[uuid.UUID]models.Contact, len(contacts))
	for _, c := range contacts {
		byID[c.ID] = c
	}

	maxX, maxY := g.Bounds()
	sc := scene{
		Width:   max(minCanvasWidth, int(maxX+CardWidth+2*canvasMargin)),
		Height:  max(minCanvasHeight, int(maxY+CardHeight+2*canvasMargin)),
		Palette: PaletteFor(g.Theme),
	}

	pos := make(map[string]nodeBox, len(g.Nodes))
	for _, n := range g.Nodes {
		box := nodeBox{
			Node:  n,
			Style: StyleFor(n, g.Theme),
			X:     n.Position.X + canvasMargin,
			Y:     n.Position.Y + canvasMargin,
		}
		if n.Kind == layout.KindContact {
			box.Contact = byID[n.ContactID]
		}
		pos[n.ID] = box
		sc.Boxes = append(sc.Boxes, box)
	}

	for _, e := range g.Edges {
		from, ok1 := pos[e.Source]
		to, ok2 := pos[e.Target]
		if !ok1 || !ok2 {
			continue
		}
		sc.Edges = append(sc.Edges, sceneEdge{
			ID:    e.ID,
			X1:    from.X + from.Style.Width/2,
			Y1:    from.Y + from.Style.Height,
			X2:    to.X + to.Style.Width/2,
			Y2:    to.Y,
			Color: Hex(PriorityColor(e.Priority)),
		})
	}
	return sc
}

// cardLines lists the text rows under a card's name. The SVG card links the
// website in its action row instead of printing it.
func cardLines(c models.Contact, withWebsite bool) []string {
	lines := []string{"Phone: " + c.Phone}
	if c.Location != "" {
		lines = append(lines, "Location: "+c.Location)
	}
	if withWebsite && c.Website != "" {
		lines = append(lines, "Web: "+c.Website)
	}
	return lines
}

func attr(name, value string) string {
	return fmt.Sprintf(`%s="%s"`, name, html.EscapeString(value))
}

// RenderDiagramSVG writes the diagram as SVG. Every node is a <g> whose id
// is the node id; contact groups also carry their layout position in
// data-x/data-y so a drag can report where it was released.
func RenderDiagramSVG(w io.Writer, g layout.Graph, contacts []models.Contact) error {
	sc := buildScene(g, contacts)
	p := sc.Palette

	canvas := svg.New(w)
	canvas.Start(sc.Width, sc.Height, attr("data-theme", g.Theme.String()))
	canvas.Rect(0, 0, sc.Width, sc.Height, fmt.Sprintf("fill:%s", Hex(p.Background)))

	for _, e := range sc.Edges {
		canvas.Line(int(e.X1), int(e.Y1), int(e.X2), int(e.Y2),
			attr("id", e.ID),
			`class="edge"`,
			fmt.Sprintf("stroke:%s;stroke-width:2;stroke-dasharray:6,4", e.Color))
	}

	for _, b := range sc.Boxes {
		x, y := int(b.X), int(b.Y)
		bw, bh := int(b.Style.Width), int(b.Style.Height)
		r := int(b.Style.Radius)

		if b.Kind == layout.KindHeader {
			canvas.Group(attr("id", b.ID), `class="node header"`, attr("data-category", b.Category))
			canvas.Roundrect(x, y, bw, bh, r, r,
				fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g", Hex(b.Style.Fill), Hex(b.Style.Border), b.Style.BorderWidth))
			canvas.Text(x+bw/2, y+bh/2+5, truncate(b.Label, 20),
				fmt.Sprintf("fill:%s;font-size:14px;font-family:sans-serif;font-weight:bold;text-anchor:middle", Hex(b.Style.Text)))
			canvas.Gend()
			continue
		}

		canvas.Group(attr("id", b.ID), `class="node contact"`, `data-draggable="true"`,
			attr("data-category", b.Category), attr("data-priority", string(b.Priority)),
			fmt.Sprintf(`data-x="%g" data-y="%g"`, b.Position.X, b.Position.Y))
		canvas.Roundrect(x, y, bw, bh, r, r,
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g;cursor:pointer", Hex(b.Style.Fill), Hex(b.Style.Border), b.Style.BorderWidth))
		canvas.Roundrect(x+10, y+8, bw-20, 20, 4, 4, fmt.Sprintf("fill:%s", Hex(b.Style.Border)))
		canvas.Text(x+bw/2, y+23, string(b.Priority),
			fmt.Sprintf("fill:%s;font-size:12px;font-family:sans-serif;font-weight:bold;text-anchor:middle", Hex(colorWhite)))
		canvas.Text(x+10, y+48, truncate(b.Label, 28),
			fmt.Sprintf("fill:%s;font-size:14px;font-family:sans-serif;font-weight:bold", Hex(b.Style.Text)))
		for i, line := range cardLines(b.Contact, false) {
			canvas.Text(x+10, y+68+i*16, truncate(line, 32),
				fmt.Sprintf("fill:%s;font-size:12px;font-family:sans-serif", Hex(p.Subtle)))
		}
		cardActions(canvas, b, x, y+bh-26)
		canvas.Gend()
	}

	canvas.End()
	return nil
}

// cardActions draws the Edit and Delete buttons and, when the contact has a
// website, a link to it. The page script posts the buttons' data-href.
func cardActions(canvas *svg.SVG, b nodeBox, x, y int) {
	id := b.ContactID.String()
	buttons := []struct {
		action, label, fill string
		offset              int
	}{
		{"edit", "Edit", "#3b82f6", 10},
		{"delete", "Delete", "#ef4444", 60},
	}
	for _, btn := range buttons {
		canvas.Group(`class="card-action"`, attr("data-action", btn.action),
			attr("data-href", "/contacts/"+id+"/"+btn.action), `style="cursor:pointer"`)
		canvas.Roundrect(x+btn.offset, y, 46, 18, 4, 4, fmt.Sprintf("fill:%s", btn.fill))
		canvas.Text(x+btn.offset+23, y+13, btn.label,
			fmt.Sprintf("fill:%s;font-size:11px;font-family:sans-serif;text-anchor:middle", Hex(colorWhite)))
		canvas.Gend()
	}

	if href := diagram.WebsiteURL(b.Contact.Website); href != "" {
		canvas.Group(`class="card-link"`)
		canvas.Link(html.EscapeString(href), "Visit Website")
		canvas.Text(x+116, y+13, "Visit Website",
			"fill:#3b82f6;font-size:11px;font-family:sans-serif;text-decoration:underline")
		canvas.LinkEnd()
		canvas.Gend()
	}
}

// RenderDiagramPNG rasterizes the same scene as RenderDiagramSVG.
func RenderDiagramPNG(w io.Writer, g layout.Graph, contacts []models.Contact) error {
	sc := buildScene(g, contacts)
	p := sc.Palette

	dc := gg.NewContext(sc.Width, sc.Height)
	dc.SetColor(p.Background)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetLineWidth(2)
	dc.SetDash(6, 4)
	for _, e := range sc.Edges {
		dc.SetHexColor(e.Color)
		dc.DrawLine(e.X1, e.Y1, e.X2, e.Y2)
		dc.Stroke()
	}
	dc.SetDash()

	for _, b := range sc.Boxes {
		s := b.Style
		dc.SetColor(s.Fill)
		dc.DrawRoundedRectangle(b.X, b.Y, s.Width, s.Height, s.Radius)
		dc.Fill()
		dc.SetColor(s.Border)
		dc.SetLineWidth(s.BorderWidth)
		dc.DrawRoundedRectangle(b.X, b.Y, s.Width, s.Height, s.Radius)
		dc.Stroke()

		if b.Kind == layout.KindHeader {
			dc.SetColor(s.Text)
			dc.DrawStringAnchored(truncate(b.Label, 20), b.X+s.Width/2, b.Y+s.Height/2, 0.5, 0.5)
			continue
		}

		dc.SetColor(s.Border)
		dc.DrawRoundedRectangle(b.X+10, b.Y+8, s.Width-20, 20, 4)
		dc.Fill()
		dc.SetColor(colorWhite)
		dc.DrawStringAnchored(string(b.Priority), b.X+s.Width/2, b.Y+18, 0.5, 0.5)

		dc.SetColor(s.Text)
		dc.DrawStringAnchored(truncate(b.Label, 28), b.X+10, b.Y+44, 0, 0.5)
		dc.SetColor(p.Subtle)
		for i, line := range cardLines(b.Contact, true) {
			dc.DrawStringAnchored(truncate(line, 28), b.X+10, b.Y+64+float64(i)*16, 0, 0.5)
		}
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
