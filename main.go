// ABOUTME: Entry point for the rolodex contact manager
// ABOUTME: Routes to the web UI, TUI, MCP server, or CLI commands based on arguments
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/adrg/xdg"
	"github.com/harperreed/rolodex/cli"
	"github.com/harperreed/rolodex/config"
	"github.com/harperreed/rolodex/logging"
)

const version = "0.1.0"

func main() {
	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	configPath := flag.String("config", "", "Config file (default: ~/.config/rolodex/config.yaml)")
	filePath := flag.String("file", "", "Snapshot file (default: ~/.local/share/rolodex/contacts.json)")
	theme := flag.String("theme", "", "Theme: light or dark")
	flag.Usage = printUsage

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("rolodex version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	command := args[0]
	commandArgs := args[1:]

	if command == "tui" {
		logFile := filepath.Join(xdg.StateHome, config.AppName, "tui.log")
		closer, err := logging.SetupFile(logFile, logging.LevelFromEnv())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = closer.Close() }()
	} else {
		logging.Setup()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal(err)
	}
	if *filePath != "" {
		cfg.File = *filePath
	}
	if *theme != "" {
		cfg.Theme = *theme
	}

	ws, err := cli.OpenWorkspace(cfg)
	if err != nil {
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, ws, command, commandArgs); err != nil {
		stop()
		fatal(err)
	}
}

func run(ctx context.Context, ws *cli.Workspace, command string, args []string) error {
	switch command {
	case "serve":
		return cli.ServeCommand(ctx, ws, args)
	case "tui":
		return cli.TUICommand(ctx, ws, args)
	case "mcp":
		return cli.MCPCommand(ctx, ws, version)

	// Contact commands
	case "add-contact":
		return cli.AddContactCommand(ws, args)
	case "list-contacts":
		return cli.ListContactsCommand(ws, args)
	case "update-contact":
		return cli.UpdateContactCommand(ws, args)
	case "delete-contact":
		return cli.DeleteContactCommand(ws, args)
	case "move-contact":
		return cli.MoveContactCommand(ws, args)

	// Category commands
	case "list-categories":
		return cli.ListCategoriesCommand(ws, args)
	case "add-category":
		return cli.AddCategoryCommand(ws, args)
	case "rename-category":
		return cli.RenameCategoryCommand(ws, args)
	case "delete-category":
		return cli.DeleteCategoryCommand(ws, args)

	// Rendering
	case "diagram":
		return cli.DiagramCommand(ctx, ws, args)
	case "analytics":
		return cli.AnalyticsCommand(ws, args)

	// Snapshots
	case "export":
		return cli.ExportCommand(ws, args)
	case "import":
		return cli.ImportCommand(ws, args)
	}

	fmt.Printf("Unknown command: %s\n\n", command)
	printUsage()
	os.Exit(1)
	return nil
}

func fatal(err error) {
	slog.Error("command failed", "error", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Printf(`rolodex v%s - Contact map with categories, priorities, and analytics

USAGE:
  rolodex [global flags] <command> [flags] [args]

GLOBAL FLAGS:
  --version              Show version and exit
  --config <path>        Config file (default: ~/.config/rolodex/config.yaml)
  --file <path>          Snapshot file (default: ~/.local/share/rolodex/contacts.json)
  --theme <light|dark>   Theme for rendered output

INTERFACES:
  rolodex serve          Web UI with drag-and-drop diagram
    --port <n>             Port (default: 8080)
    --watch                Reload when the snapshot file changes
  rolodex tui            Full-screen terminal UI
    --watch                Reload when the snapshot file changes
    --export <path>        File the x key exports to
  rolodex mcp            MCP server on stdio

CONTACT COMMANDS:
  rolodex add-contact      Add a contact
    --name <name>            Contact name (required)
    --phone <phone>          Phone number (required)
    --location <place>       Location
    --website <url>          Website
    --category <name>        Category
    --priority <level>       High, Medium, or Low (default: Medium)

  rolodex list-contacts    List contacts
    --query <text>           Search by name
    --category <name>        Filter by category
    --limit <n>              Max results (default: 50)

  rolodex update-contact [flags] <id>   Update a contact (ID prefix ok)
  rolodex delete-contact [--yes] <id>   Delete a contact
  rolodex move-contact <id> <category>  Move a contact to another category

CATEGORY COMMANDS:
  rolodex list-categories
  rolodex add-category <name>
  rolodex rename-category <old> <new>
  rolodex delete-category [--yes] <name>

RENDERING:
  rolodex diagram          Render the diagram
    --format <fmt>           dot, svg, png, or json (default: dot)
    --query <text>           Only contacts whose name contains this
    --output <file>          Output file (default: stdout)
  rolodex analytics        Dashboard of counts
    --format <fmt>           text, json, or svg (default: text)
    --chart <name>           priority or category (svg only)

SNAPSHOTS:
  rolodex export [--output <file>]
  rolodex import <file.json>

ENVIRONMENT:
  ROLODEX_FILE, ROLODEX_PORT, ROLODEX_THEME, ROLODEX_WATCH, LOG_LEVEL

EXAMPLES:
  rolodex add-contact --name "Ann Lee" --phone 555-0100 --category Work --priority High
  rolodex diagram --format svg --output contacts.svg
  rolodex serve --watch

`, version)
}
