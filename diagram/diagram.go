// ABOUTME: Diagram interactions: click-to-inspect and drag-to-recategorize
// ABOUTME: Resolves drop targets against category headers and builds detail overlays
package diagram

import (
	"math"
	"net/url"
	"strings"

	"github.com/harperreed/rolodex/layout"
	"github.com/harperreed/rolodex/models"
	"github.com/harperreed/rolodex/store"
)

// A drop lands on a header when it is within these distances on both axes.
const (
	DropThresholdX = 200.0
	DropThresholdY = 300.0
)

// ResolveDrop picks the category a contact node released at pos belongs to.
// Among headers within the thresholds the nearest one wins; equal distances
// go to the earlier category. Header nodes never resolve.
func ResolveDrop(g layout.Graph, nodeID string, pos layout.Position) (string, bool) {
	node, ok := g.Node(nodeID)
	if !ok || node.Kind != layout.KindContact {
		return "", false
	}

	best := ""
	bestDist := math.Inf(1)
	for _, h := range g.Headers() {
		dx := math.Abs(pos.X - h.Position.X)
		dy := math.Abs(pos.Y - h.Position.Y)
		if dx >= DropThresholdX || dy >= DropThresholdY {
			continue
		}
		if d := math.Hypot(dx, dy); d < bestDist {
			best, bestDist = h.Category, d
		}
	}
	return best, best != ""
}

// Drop applies a drag release. The contact moves only when the resolved
// category differs from its current one.
func Drop(s *store.Store, g layout.Graph, nodeID string, pos layout.Position) (bool, error) {
	category, ok := ResolveDrop(g, nodeID, pos)
	if !ok {
		return false, nil
	}
	id, ok := layout.ParseContactNodeID(nodeID)
	if !ok {
		return false, nil
	}
	return s.Move(id, category)
}

// Inspect returns the contact behind a clicked contact node.
func Inspect(g layout.Graph, s *store.Store, nodeID string) (models.Contact, bool) {
	node, ok := g.Node(nodeID)
	if !ok || node.Kind != layout.KindContact {
		return models.Contact{}, false
	}
	return s.Get(node.ContactID)
}

// WebsiteURL prefixes https:// when the stored value has no http scheme.
func WebsiteURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(raw, "http") {
		return raw
	}
	return "https://" + raw
}

// componentEscaper turns query escaping into URI component escaping, which
// keeps !'()* literal and writes spaces as %20.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// MapEmbedURL builds the embeddable map URL for a location.
func MapEmbedURL(location string) string {
	q := componentEscaper.Replace(url.QueryEscape(location))
	return "https://www.google.com/maps?q=" + q + "&output=embed"
}

// Detail is what the detail overlay shows for one contact.
type Detail struct {
	Contact    models.Contact
	WebsiteURL string
	MapURL     string
}

func NewDetail(c models.Contact) Detail {
	d := Detail{Contact: c, WebsiteURL: WebsiteURL(c.Website)}
	if strings.TrimSpace(c.Location) != "" {
		d.MapURL = MapEmbedURL(c.Location)
	}
	return d
}
