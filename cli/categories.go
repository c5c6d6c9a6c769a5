// ABOUTME: Category CLI commands
// ABOUTME: Lists, adds, renames, and deletes diagram categories
package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// ListCategoriesCommand prints categories in diagram order with counts.
func ListCategoriesCommand(ws *Workspace, args []string) error {
	fs := newFlagSet(ws, "list-categories")
	if err := fs.Parse(args); err != nil {
		return err
	}

	summary := ws.Session.Analytics()
	if len(summary.ByCategory) == 0 {
		ws.printf("No categories\n")
		return nil
	}

	w := tabwriter.NewWriter(ws.Out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CATEGORY\tCONTACTS")
	_, _ = fmt.Fprintln(w, "--------\t--------")
	for _, c := range summary.ByCategory {
		_, _ = fmt.Fprintf(w, "%s\t%d\n", c.Name, c.Value)
	}
	_ = w.Flush()

	if summary.Uncategorized > 0 {
		ws.printf("\n%d contact(s) not in any category\n", summary.Uncategorized)
	}
	return nil
}

// AddCategoryCommand appends a category column.
func AddCategoryCommand(ws *Workspace, args []string) error {
	fs := newFlagSet(ws, "add-category")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("category name is required")
	}

	name := strings.TrimSpace(fs.Arg(0))
	if !ws.Session.AddCategory(name) {
		return fmt.Errorf("category %q is blank or already exists", name)
	}
	if err := ws.Save(); err != nil {
		return err
	}

	ws.printf("✓ Category added: %s\n", name)
	return nil
}

// RenameCategoryCommand renames a category and every contact filed under it.
func RenameCategoryCommand(ws *Workspace, args []string) error {
	fs := newFlagSet(ws, "rename-category")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("usage: rename-category <old> <new>")
	}

	oldName, newName := fs.Arg(0), strings.TrimSpace(fs.Arg(1))
	if !ws.Session.RenameCategory(oldName, newName) {
		return fmt.Errorf("could not rename %q to %q", oldName, newName)
	}
	if err := ws.Save(); err != nil {
		return err
	}

	ws.printf("✓ Category renamed: %s → %s\n", oldName, newName)
	return nil
}

// DeleteCategoryCommand removes a category after confirmation. Its contacts
// stay, without a category.
func DeleteCategoryCommand(ws *Workspace, args []string) error {
	fs := newFlagSet(ws, "delete-category")
	yes := fs.Bool("yes", false, "Delete without asking")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("category name is required")
	}

	name := fs.Arg(0)
	if !ws.Session.Store().HasCategory(name) {
		return fmt.Errorf("unknown category %q", name)
	}
	if !ws.Session.DeleteCategory(name, ws.Confirmer(*yes)) {
		ws.printf("Cancelled\n")
		return nil
	}
	if err := ws.Save(); err != nil {
		return err
	}

	ws.printf("✓ Category deleted: %s\n", name)
	return nil
}
