// ABOUTME: Contact CLI commands
// ABOUTME: Human-friendly commands for adding, listing, editing, moving, and deleting contacts
package cli

import (
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/harperreed/rolodex/models"
)

func newFlagSet(ws *Workspace, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(ws.Out)
	return fs
}

// checkCategory rejects categories that would leave a contact off the diagram.
func checkCategory(ws *Workspace, category string) error {
	if category != "" && !ws.Session.Store().HasCategory(category) {
		return fmt.Errorf("unknown category %q (add it with add-category)", category)
	}
	return nil
}

// AddContactCommand adds a new contact.
func AddContactCommand(ws *Workspace, args []string) error {
	fs := newFlagSet(ws, "add-contact")
	name := fs.String("name", "", "Contact name (required)")
	phone := fs.String("phone", "", "Phone number (required)")
	location := fs.String("location", "", "Location shown on the map")
	website := fs.String("website", "", "Website")
	category := fs.String("category", "", "Category")
	priority := fs.String("priority", string(models.DefaultPriority), "Priority: High, Medium, or Low")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := checkCategory(ws, *category); err != nil {
		return err
	}

	contact, err := ws.Session.AddContact(models.Contact{
		Name:     *name,
		Phone:    *phone,
		Location: *location,
		Website:  *website,
		Category: *category,
		Priority: models.ParsePriority(*priority),
	})
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	if err := ws.Save(); err != nil {
		return err
	}

	ws.printf("✓ Contact created: %s (ID: %s)\n", contact.Name, contact.ID)
	ws.printf("  Phone: %s\n", contact.Phone)
	if contact.Category != "" {
		ws.printf("  Category: %s\n", contact.Category)
	}
	ws.printf("  Priority: %s\n", contact.Priority)
	return nil
}

// ListContactsCommand lists contacts.
func ListContactsCommand(ws *Workspace, args []string) error {
	fs := newFlagSet(ws, "list-contacts")
	query := fs.String("query", "", "Search by name")
	category := fs.String("category", "", "Filter by category")
	limit := fs.Int("limit", 50, "Maximum results")
	if err := fs.Parse(args); err != nil {
		return err
	}

	contacts := ws.Session.Store().Find(*query, *category, *limit)
	if len(contacts) == 0 {
		ws.printf("No contacts found\n")
		return nil
	}

	w := tabwriter.NewWriter(ws.Out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tPHONE\tCATEGORY\tPRIORITY\tLOCATION\tID")
	_, _ = fmt.Fprintln(w, "----\t-----\t--------\t--------\t--------\t--")
	for _, c := range contacts {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			c.Name, c.Phone, orDash(c.Category), c.Priority, orDash(c.Location), c.ID.String()[:8])
	}
	_ = w.Flush()

	ws.printf("\nTotal: %d contact(s)\n", len(contacts))
	return nil
}

// UpdateContactCommand updates an existing contact. Flags left empty keep
// the current value.
func UpdateContactCommand(ws *Workspace, args []string) error {
	fs := newFlagSet(ws, "update-contact")
	name := fs.String("name", "", "Contact name")
	phone := fs.String("phone", "", "Phone number")
	location := fs.String("location", "", "Location")
	website := fs.String("website", "", "Website")
	category := fs.String("category", "", "Category")
	priority := fs.String("priority", "", "Priority: High, Medium, or Low")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		return fmt.Errorf("contact ID is required")
	}
	existing, err := ws.Session.Store().Resolve(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("failed to find contact %s: %w", fs.Arg(0), err)
	}
	if err := checkCategory(ws, *category); err != nil {
		return err
	}

	updated, err := ws.Session.UpdateContact(existing.ID, func(draft *models.Contact) {
		if *name != "" {
			draft.Name = *name
		}
		if *phone != "" {
			draft.Phone = *phone
		}
		if *location != "" {
			draft.Location = *location
		}
		if *website != "" {
			draft.Website = *website
		}
		if *category != "" {
			draft.Category = *category
		}
		if *priority != "" {
			draft.Priority = models.ParsePriority(*priority)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	if err := ws.Save(); err != nil {
		return err
	}

	ws.printf("✓ Contact updated: %s (ID: %s)\n", updated.Name, updated.ID)
	return nil
}

// DeleteContactCommand deletes a contact after confirmation.
func DeleteContactCommand(ws *Workspace, args []string) error {
	fs := newFlagSet(ws, "delete-contact")
	yes := fs.Bool("yes", false, "Delete without asking")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		return fmt.Errorf("contact ID is required")
	}
	contact, err := ws.Session.Store().Resolve(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("failed to find contact %s: %w", fs.Arg(0), err)
	}

	deleted, err := ws.Session.DeleteContact(contact.ID, ws.Confirmer(*yes))
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if !deleted {
		ws.printf("Cancelled\n")
		return nil
	}
	if err := ws.Save(); err != nil {
		return err
	}

	ws.printf("✓ Contact deleted: %s (ID: %s)\n", contact.Name, contact.ID)
	return nil
}

// MoveContactCommand re-categorizes a contact, the same as dropping its card
// on another header.
func MoveContactCommand(ws *Workspace, args []string) error {
	fs := newFlagSet(ws, "move-contact")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("usage: move-contact <id> <category>")
	}

	contact, err := ws.Session.Store().Resolve(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("failed to find contact %s: %w", fs.Arg(0), err)
	}
	category := strings.TrimSpace(fs.Arg(1))

	moved, err := ws.Session.MoveContact(contact.ID, category)
	if err != nil {
		return err
	}
	if !moved {
		ws.printf("%s is already in %s\n", contact.Name, orDash(category))
		return nil
	}
	if err := ws.Save(); err != nil {
		return err
	}

	ws.printf("✓ Moved %s to %s\n", contact.Name, orDash(category))
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
