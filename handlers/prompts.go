// ABOUTME: MCP prompt handlers for reusable contact workflow templates
// ABOUTME: Provides contact summary, category review, and priority triage prompts
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/rolodex/editor"
	"github.com/harperreed/rolodex/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type PromptHandlers struct {
	session *editor.Session
}

func NewPromptHandlers(session *editor.Session) *PromptHandlers {
	return &PromptHandlers{session: session}
}

// GetPrompt generates the prompt message based on the template
func (h *PromptHandlers) GetPrompt(ctx context.Context, request *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	name := request.Params.Name
	arguments := request.Params.Arguments
	switch name {
	case "contact-summary":
		return h.getContactSummaryPrompt(arguments)
	case "category-review":
		return h.getCategoryReviewPrompt(arguments)
	case "priority-triage":
		return h.getPriorityTriagePrompt()
	default:
		return nil, fmt.Errorf("unknown prompt: %s", name)
	}
}

func userPrompt(description, text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Description: description,
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: text},
			},
		},
	}
}

func writeContactLine(b *strings.Builder, c models.Contact) {
	fmt.Fprintf(b, "- %s (%s priority), phone %s", c.Name, c.Priority, c.Phone)
	if c.Location != "" {
		fmt.Fprintf(b, ", in %s", c.Location)
	}
	b.WriteString("\n")
}

func (h *PromptHandlers) getContactSummaryPrompt(args map[string]string) (*mcp.GetPromptResult, error) {
	ref, ok := args["contact_id"]
	if !ok {
		return nil, fmt.Errorf("contact_id is required")
	}
	contact, err := h.session.Store().Resolve(ref)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contact: %w", err)
	}
	detail := contactToOutput(contact)

	var promptText strings.Builder
	promptText.WriteString("Please provide a short summary of this contact:\n\n")
	fmt.Fprintf(&promptText, "Name: %s\n", contact.Name)
	fmt.Fprintf(&promptText, "Phone: %s\n", contact.Phone)
	if contact.Category != "" {
		fmt.Fprintf(&promptText, "Category: %s\n", contact.Category)
	}
	fmt.Fprintf(&promptText, "Priority: %s\n", contact.Priority)
	if contact.Location != "" {
		fmt.Fprintf(&promptText, "Location: %s (map: %s)\n", contact.Location, detail.MapURL)
	}
	if detail.WebsiteURL != "" {
		fmt.Fprintf(&promptText, "Website: %s\n", detail.WebsiteURL)
	}

	promptText.WriteString("\nPlease suggest:")
	promptText.WriteString("\n1. Whether the priority still fits")
	promptText.WriteString("\n2. Whether the category still fits")

	return userPrompt("Summary for contact: "+contact.Name, promptText.String()), nil
}

func (h *PromptHandlers) getCategoryReviewPrompt(args map[string]string) (*mcp.GetPromptResult, error) {
	category, ok := args["category"]
	if !ok {
		return nil, fmt.Errorf("category is required")
	}
	if !h.session.Store().HasCategory(category) {
		return nil, fmt.Errorf("unknown category %q", category)
	}

	contacts := h.session.Store().Find("", category, 0)

	var promptText strings.Builder
	fmt.Fprintf(&promptText, "Review the %q category. It holds %d contact(s):\n\n", category, len(contacts))
	for _, c := range contacts {
		writeContactLine(&promptText, c)
	}
	fmt.Fprintf(&promptText, "\nOther categories: %s\n", strings.Join(h.session.Store().Categories(), ", "))
	promptText.WriteString("\nSuggest contacts that belong in a different category and any priority changes.")

	return userPrompt("Review of category "+category, promptText.String()), nil
}

func (h *PromptHandlers) getPriorityTriagePrompt() (*mcp.GetPromptResult, error) {
	summary := h.session.Analytics()

	var promptText strings.Builder
	fmt.Fprintf(&promptText, "There are %d contacts.\n\n", summary.TotalContacts)
	for _, p := range summary.ByPriority {
		fmt.Fprintf(&promptText, "%s: %d\n", p.Name, p.Value)
	}
	if summary.Uncategorized > 0 {
		fmt.Fprintf(&promptText, "\n%d contact(s) are not in any category and do not appear on the diagram.\n", summary.Uncategorized)
	}

	promptText.WriteString("\nHigh priority contacts:\n")
	for _, c := range h.session.Store().Contacts() {
		if c.Priority == models.PriorityHigh {
			writeContactLine(&promptText, c)
		}
	}
	promptText.WriteString("\nSuggest who to reach out to first and whether the priority mix looks balanced.")

	return userPrompt("Priority triage", promptText.String()), nil
}
