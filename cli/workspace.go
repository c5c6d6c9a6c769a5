// ABOUTME: Snapshot-backed workspace shared by CLI commands
// ABOUTME: Loads the configured snapshot into a session and writes it back after mutations
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/harperreed/rolodex/config"
	"github.com/harperreed/rolodex/editor"
	"github.com/harperreed/rolodex/layout"
	"github.com/harperreed/rolodex/snapshot"
	"github.com/harperreed/rolodex/store"
	"golang.org/x/term"
)

// Workspace is the session a command works on plus where it came from.
type Workspace struct {
	Config  config.Config
	Session *editor.Session
	Out     io.Writer

	// Interactive reports whether prompts can be shown.
	Interactive bool
	// Prompt asks a yes/no question when Interactive is set.
	Prompt func(question string) (bool, error)
}

// OpenWorkspace loads cfg.File, seeding cfg.Categories when it does not exist.
func OpenWorkspace(cfg config.Config) (*Workspace, error) {
	snap, err := snapshot.Load(cfg.File, cfg.Categories)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", cfg.File, err)
	}

	return &Workspace{
		Config:      cfg,
		Session:     editor.NewSession(store.FromSnapshot(snap), layout.ParseTheme(cfg.Theme)),
		Out:         os.Stdout,
		Interactive: isTerminal(),
		Prompt:      huhConfirm,
	}, nil
}

// Save exports the session to the workspace snapshot file.
func (w *Workspace) Save() error {
	if err := snapshot.WriteFile(w.Config.File, w.Session.Store().Snapshot()); err != nil {
		return fmt.Errorf("failed to save %s: %w", w.Config.File, err)
	}
	return nil
}

func (w *Workspace) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w.Out, format, args...)
}

// Confirmer returns the confirmation used by destructive commands. --yes
// skips the prompt; without a terminal the action is declined.
func (w *Workspace) Confirmer(yes bool) editor.Confirmer {
	if yes {
		return editor.Always
	}
	return editor.ConfirmFunc(func(prompt string) bool {
		if !w.Interactive {
			w.printf("%s Re-run with --yes to confirm.\n", prompt)
			return false
		}
		ok, err := w.Prompt(prompt)
		if err != nil {
			w.printf("Prompt failed: %v\n", err)
			return false
		}
		return ok
	})
}

// isTerminal checks if stdin is connected to a terminal
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func huhConfirm(question string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Value(&ok).
				Affirmative("Yes, delete").
				Negative("Cancel"),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}
