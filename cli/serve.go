// ABOUTME: Web server and TUI launch commands
// ABOUTME: Autosaves every change to the snapshot file and optionally reloads it when edited elsewhere
package cli

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harperreed/rolodex/models"
	"github.com/harperreed/rolodex/snapshot"
	"github.com/harperreed/rolodex/tui"
	"github.com/harperreed/rolodex/web"
	"golang.org/x/sync/errgroup"
)

// autosave writes the snapshot after every session change.
func autosave(ws *Workspace) {
	ws.Session.SetOnChange(func(snap models.Snapshot) {
		if err := snapshot.WriteFile(ws.Config.File, snap); err != nil {
			slog.Error("autosave failed", "file", ws.Config.File, "error", err)
		}
	})
}

// newReloader watches the snapshot file and reloads the session when another
// process rewrites it. notify runs after each reload that changed state.
func newReloader(ws *Workspace, notify func()) (*snapshot.Watcher, error) {
	return snapshot.NewWatcher(ws.Config.File,
		snapshot.WithOnChange(func() {
			reloaded, err := ws.Session.ReloadFile(ws.Config.File)
			if err != nil {
				slog.Warn("reload failed", "file", ws.Config.File, "error", err)
				return
			}
			if reloaded {
				slog.Info("snapshot reloaded", "file", ws.Config.File)
				notify()
			}
		}),
		snapshot.WithOnError(func(err error) {
			slog.Warn("watch error", "file", ws.Config.File, "error", err)
		}),
	)
}

// ServeCommand runs the web UI until ctx is cancelled.
func ServeCommand(ctx context.Context, ws *Workspace, args []string) error {
	fs := newFlagSet(ws, "serve")
	port := fs.Int("port", ws.Config.Port, "Port to listen on")
	watch := fs.Bool("watch", ws.Config.Watch, "Reload when the snapshot file changes on disk")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *port <= 0 || *port > 65535 {
		return fmt.Errorf("invalid port %d", *port)
	}

	// The watcher needs the file to exist.
	if err := ws.Save(); err != nil {
		return err
	}
	autosave(ws)

	server, err := web.NewServer(ws.Session)
	if err != nil {
		return err
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return server.Start(egCtx, fmt.Sprintf(":%d", *port))
	})
	if *watch {
		watcher, err := newReloader(ws, func() {})
		if err != nil {
			return err
		}
		eg.Go(func() error {
			return watcher.Run(egCtx)
		})
	}

	slog.Info("serving contacts", "file", ws.Config.File, "watch", *watch)
	return eg.Wait()
}

// TUICommand runs the full-screen terminal UI.
func TUICommand(ctx context.Context, ws *Workspace, args []string) error {
	fs := newFlagSet(ws, "tui")
	watch := fs.Bool("watch", ws.Config.Watch, "Reload when the snapshot file changes on disk")
	exportPath := fs.String("export", "", "File the x key exports to (default: the snapshot file)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *exportPath == "" {
		*exportPath = ws.Config.File
	}

	if err := ws.Save(); err != nil {
		return err
	}
	autosave(ws)

	model := tui.NewModel(ws.Session, tui.WithExportPath(*exportPath))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if *watch {
		watcher, err := newReloader(ws, func() { p.Send(tui.ReloadedMsg{}) })
		if err != nil {
			return err
		}
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			if err := watcher.Run(watchCtx); err != nil {
				slog.Warn("watcher stopped", "error", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
