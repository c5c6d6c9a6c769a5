// ABOUTME: Contact MCP tool handlers
// ABOUTME: Implements add_contact, find_contacts, get_contact, update_contact, delete_contact, and move_contact tools
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/rolodex/diagram"
	"github.com/harperreed/rolodex/editor"
	"github.com/harperreed/rolodex/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ContactHandlers struct {
	session *editor.Session
}

func NewContactHandlers(session *editor.Session) *ContactHandlers {
	return &ContactHandlers{session: session}
}

type AddContactInput struct {
	Name     string `json:"name" jsonschema:"Contact name (required)"`
	Phone    string `json:"phone" jsonschema:"Contact phone number (required)"`
	Location string `json:"location,omitempty" jsonschema:"Location shown on the map"`
	Website  string `json:"website,omitempty" jsonschema:"Website, with or without scheme"`
	Category string `json:"category,omitempty" jsonschema:"Existing category to file the contact under"`
	Priority string `json:"priority,omitempty" jsonschema:"High, Medium, or Low (default Medium)"`
}

type ContactOutput struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Location   string `json:"location,omitempty"`
	Website    string `json:"website,omitempty"`
	WebsiteURL string `json:"website_url,omitempty"`
	MapURL     string `json:"map_url,omitempty"`
	Category   string `json:"category,omitempty"`
	Priority   string `json:"priority"`
}

func contactToOutput(c models.Contact) ContactOutput {
	detail := diagram.NewDetail(c)
	return ContactOutput{
		ID:         c.ID.String(),
		Name:       c.Name,
		Phone:      c.Phone,
		Location:   c.Location,
		Website:    c.Website,
		WebsiteURL: detail.WebsiteURL,
		MapURL:     detail.MapURL,
		Category:   c.Category,
		Priority:   string(c.Priority),
	}
}

func (h *ContactHandlers) checkCategory(category string) error {
	if category != "" && !h.session.Store().HasCategory(category) {
		return fmt.Errorf("unknown category %q", category)
	}
	return nil
}

func (h *ContactHandlers) AddContact(_ context.Context, request *mcp.CallToolRequest, input AddContactInput) (*mcp.CallToolResult, ContactOutput, error) {
	if err := h.checkCategory(input.Category); err != nil {
		return nil, ContactOutput{}, err
	}

	contact, err := h.session.AddContact(models.Contact{
		Name:     input.Name,
		Phone:    input.Phone,
		Location: input.Location,
		Website:  input.Website,
		Category: input.Category,
		Priority: models.ParsePriority(input.Priority),
	})
	if err != nil {
		return nil, ContactOutput{}, fmt.Errorf("failed to create contact: %w", err)
	}

	return nil, contactToOutput(contact), nil
}

type FindContactsInput struct {
	Query    string `json:"query,omitempty" jsonschema:"Case-insensitive substring of the contact name"`
	Category string `json:"category,omitempty" jsonschema:"Only contacts in this category"`
	Priority string `json:"priority,omitempty" jsonschema:"Only contacts with this priority"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 10)"`
}

type FindContactsOutput struct {
	Contacts []ContactOutput `json:"contacts"`
}

func (h *ContactHandlers) FindContacts(_ context.Context, request *mcp.CallToolRequest, input FindContactsInput) (*mcp.CallToolResult, FindContactsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = 10
	}

	result := []ContactOutput{}
	for _, c := range h.session.Store().Find(input.Query, input.Category, 0) {
		if input.Priority != "" && !strings.EqualFold(string(c.Priority), input.Priority) {
			continue
		}
		result = append(result, contactToOutput(c))
		if len(result) >= limit {
			break
		}
	}

	return nil, FindContactsOutput{Contacts: result}, nil
}

type ContactIDInput struct {
	ID string `json:"id" jsonschema:"Contact ID or unique ID prefix (required)"`
}

func (h *ContactHandlers) GetContact(_ context.Context, request *mcp.CallToolRequest, input ContactIDInput) (*mcp.CallToolResult, ContactOutput, error) {
	contact, err := h.session.Store().Resolve(input.ID)
	if err != nil {
		return nil, ContactOutput{}, fmt.Errorf("failed to find contact %q: %w", input.ID, err)
	}
	return nil, contactToOutput(contact), nil
}

type UpdateContactInput struct {
	ID       string `json:"id" jsonschema:"Contact ID (required)"`
	Name     string `json:"name,omitempty" jsonschema:"Updated contact name"`
	Phone    string `json:"phone,omitempty" jsonschema:"Updated phone number"`
	Location string `json:"location,omitempty" jsonschema:"Updated location"`
	Website  string `json:"website,omitempty" jsonschema:"Updated website"`
	Category string `json:"category,omitempty" jsonschema:"Updated category"`
	Priority string `json:"priority,omitempty" jsonschema:"Updated priority"`
}

func (h *ContactHandlers) UpdateContact(_ context.Context, request *mcp.CallToolRequest, input UpdateContactInput) (*mcp.CallToolResult, ContactOutput, error) {
	if input.ID == "" {
		return nil, ContactOutput{}, fmt.Errorf("id is required")
	}
	existing, err := h.session.Store().Resolve(input.ID)
	if err != nil {
		return nil, ContactOutput{}, fmt.Errorf("failed to find contact %q: %w", input.ID, err)
	}
	if err := h.checkCategory(input.Category); err != nil {
		return nil, ContactOutput{}, err
	}

	updated, err := h.session.UpdateContact(existing.ID, func(draft *models.Contact) {
		if input.Name != "" {
			draft.Name = input.Name
		}
		if input.Phone != "" {
			draft.Phone = input.Phone
		}
		if input.Location != "" {
			draft.Location = input.Location
		}
		if input.Website != "" {
			draft.Website = input.Website
		}
		if input.Category != "" {
			draft.Category = input.Category
		}
		if input.Priority != "" {
			draft.Priority = models.ParsePriority(input.Priority)
		}
	})
	if err != nil {
		return nil, ContactOutput{}, fmt.Errorf("failed to update contact: %w", err)
	}

	return nil, contactToOutput(updated), nil
}

type DeleteContactInput struct {
	ID      string `json:"id" jsonschema:"Contact ID (required)"`
	Confirm bool   `json:"confirm" jsonschema:"Must be true to delete; ask the user first"`
}

type DeleteOutput struct {
	Deleted bool   `json:"deleted"`
	Message string `json:"message"`
}

func (h *ContactHandlers) DeleteContact(_ context.Context, request *mcp.CallToolRequest, input DeleteContactInput) (*mcp.CallToolResult, DeleteOutput, error) {
	contact, err := h.session.Store().Resolve(input.ID)
	if err != nil {
		return nil, DeleteOutput{}, fmt.Errorf("failed to find contact %q: %w", input.ID, err)
	}

	deleted, err := h.session.DeleteContact(contact.ID, confirmer(input.Confirm))
	if err != nil {
		return nil, DeleteOutput{}, fmt.Errorf("failed to delete contact: %w", err)
	}
	if !deleted {
		return nil, DeleteOutput{Message: editor.PromptDeleteContact + " Call again with confirm=true."}, nil
	}
	return nil, DeleteOutput{Deleted: true, Message: "Deleted " + contact.Name}, nil
}

type MoveContactInput struct {
	ID       string `json:"id" jsonschema:"Contact ID (required)"`
	Category string `json:"category" jsonschema:"Target category; empty removes the contact from the diagram"`
}

type MoveContactOutput struct {
	Moved   bool          `json:"moved"`
	Contact ContactOutput `json:"contact"`
}

func (h *ContactHandlers) MoveContact(_ context.Context, request *mcp.CallToolRequest, input MoveContactInput) (*mcp.CallToolResult, MoveContactOutput, error) {
	contact, err := h.session.Store().Resolve(input.ID)
	if err != nil {
		return nil, MoveContactOutput{}, fmt.Errorf("failed to find contact %q: %w", input.ID, err)
	}

	moved, err := h.session.MoveContact(contact.ID, input.Category)
	if err != nil {
		return nil, MoveContactOutput{}, err
	}
	contact, _ = h.session.Store().Get(contact.ID)
	return nil, MoveContactOutput{Moved: moved, Contact: contactToOutput(contact)}, nil
}

// confirmer maps an explicit confirm flag onto the session's confirmation step.
func confirmer(confirm bool) editor.Confirmer {
	if confirm {
		return editor.Always
	}
	return editor.Never
}
