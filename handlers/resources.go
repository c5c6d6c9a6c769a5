// ABOUTME: MCP resource handlers for exposing contact data
// ABOUTME: Provides read-only access to contacts, categories, layout, and analytics via URI
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/harperreed/rolodex/editor"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const URIScheme = "rolodex://"

type ResourceHandlers struct {
	session *editor.Session
}

func NewResourceHandlers(session *editor.Session) *ResourceHandlers {
	return &ResourceHandlers{session: session}
}

// ReadResource handles resource read requests
func (h *ResourceHandlers) ReadResource(ctx context.Context, request *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	uri := request.Params.URI
	if !strings.HasPrefix(uri, URIScheme) {
		return nil, fmt.Errorf("invalid URI scheme: expected %s", URIScheme)
	}

	parts := strings.Split(strings.TrimPrefix(uri, URIScheme), "/")
	switch parts[0] {
	case "contacts":
		if len(parts) == 1 || parts[1] == "" {
			contacts := h.session.Store().Contacts()
			out := make([]ContactOutput, len(contacts))
			for i, c := range contacts {
				out[i] = contactToOutput(c)
			}
			return jsonResource(uri, out)
		}
		contact, err := h.session.Store().Resolve(parts[1])
		if err != nil {
			return nil, mcp.ResourceNotFoundError(uri)
		}
		return jsonResource(uri, contactToOutput(contact))

	case "categories":
		return jsonResource(uri, h.session.Store().Categories())

	case "layout":
		return jsonResource(uri, h.session.Graph())

	case "analytics":
		return jsonResource(uri, h.session.Analytics())

	default:
		return nil, mcp.ResourceNotFoundError(uri)
	}
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{Contents: []*mcp.ResourceContents{
		{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}}, nil
}
