// ABOUTME: Snapshot export and import CLI commands
// ABOUTME: Moves the full contact and category state in and out as JSON
package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/rolodex/snapshot"
)

// ExportCommand writes the snapshot as JSON.
func ExportCommand(ws *Workspace, args []string) error {
	fs := newFlagSet(ws, "export")
	output := fs.String("output", "", "Output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *output != "" {
		if err := snapshot.WriteFile(*output, ws.Session.Store().Snapshot()); err != nil {
			return err
		}
		ws.printf("✓ Exported %d contact(s) to %s\n", ws.Session.Store().Len(), *output)
		return nil
	}

	var buf bytes.Buffer
	if err := ws.Session.Export(&buf); err != nil {
		return err
	}
	return writeOutput(ws, "", buf.Bytes())
}

// ImportCommand replaces all contacts and categories with a snapshot file.
// A malformed file leaves the workspace untouched.
func ImportCommand(ws *Workspace, args []string) error {
	fs := newFlagSet(ws, "import")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("snapshot file is required")
	}

	path := fs.Arg(0)
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return snapshot.ErrNotJSONFile
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := ws.Session.Import(f); err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}
	if err := ws.Save(); err != nil {
		return err
	}

	for _, n := range ws.Session.Notices().Drain() {
		ws.printf("✓ %s\n", n.Message)
	}
	return nil
}
