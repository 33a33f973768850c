// Package main is the entry point for the Pine Time admin TUI.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kpdgayao/pine-time-tui/internal/api"
	"github.com/kpdgayao/pine-time-tui/internal/config"
	"github.com/kpdgayao/pine-time-tui/internal/logging"
	"github.com/kpdgayao/pine-time-tui/internal/tui"
)

const version = "0.1.0"

const helpText = `pine-time-tui - Terminal admin dashboard for the Pine Time events platform

USAGE:
    pine-time-tui [OPTIONS]

OPTIONS:
    -h, --help        Show this help message
    -v, --version     Show version information
    --init            Create a template config file
    --users           Start on the users tab
    --badges          Start on the badge types tab
    --registrations   Start on the registrations tab

CONFIGURATION:
    Config file: ~/.config/pine-time-tui/config.yaml

    To get started:
    1. Run 'pine-time-tui --init' to create a config template
    2. Set server.base_url to your Pine Time API
    3. Add an admin API token to the config file
    4. Run 'pine-time-tui'

KEYBINDINGS:
    Navigation:
        j/k         Move down/up a row
        h/l         Move across columns
        g/G         Go to top/bottom
        Ctrl+d/u    Page down/up
        Tab, 1-4    Switch resource tabs
        Enter       Open details
        Esc         Go back

    Entity Actions:
        a           Add event or badge type
        e           Edit selected
        d           Delete selected (with confirmation)
        x           Approve registration / toggle user active
        X           Reject registration
        v           Mark registration attended
        y           Copy selected ID to clipboard

    Other:
        /           Search
        r           Refresh
        ?           Show help
        q           Quit
`

const configTemplate = `# Pine Time TUI Configuration
# Location: ~/.config/pine-time-tui/config.yaml

server:
  # Base URL of the Pine Time API.
  base_url: "http://localhost:8000/api/v1"

auth:
  # Admin API token used as a Bearer token on every request.
  api_token: ""

ui:
  # Enable Vim-style keybindings (default: true)
  vim_mode: true

  # Items fetched per page (default: 50)
  page_size: 50

  # Grid columns per width tier. Unset tiers fall back to 1/2/3/4/4.
  # columns:
  #   md: 2
  #   xl: 5

logging:
  # debug, info, warn, error. Empty file disables logging.
  level: "info"
  # file: "~/.config/pine-time-tui/pine-time-tui.log"
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp         bool
		showVersion      bool
		initConfig       bool
		tabUsers         bool
		tabBadges        bool
		tabRegistrations bool
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.BoolVar(&tabUsers, "users", false, "Start on the users tab")
	flag.BoolVar(&tabBadges, "badges", false, "Start on the badge types tab")
	flag.BoolVar(&tabRegistrations, "registrations", false, "Start on the registrations tab")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("pine-time-tui version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	initialTab := ""
	if tabUsers {
		initialTab = "users"
	} else if tabBadges {
		initialTab = "badges"
	} else if tabRegistrations {
		initialTab = "registrations"
	}

	return runApp(initialTab)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if _, err := config.ConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  1. Set server.base_url to your Pine Time API")
	fmt.Println("  2. Add an admin api_token to the config file")
	fmt.Println("  3. Run 'pine-time-tui' to start")

	return nil
}

// runApp starts the main TUI application.
func runApp(initialTab string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if !cfg.HasValidAuth() {
		path, _ := config.ConfigPath()
		fmt.Println("No authentication configured.")
		fmt.Println()
		fmt.Println("To get started:")
		fmt.Printf("  1. Run 'pine-time-tui --init' to create a config file at:\n     %s\n", path)
		fmt.Println("  2. Add an admin API token to the config file")
		fmt.Println("  3. Run 'pine-time-tui' again")
		return nil
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	logPath := ""
	if cfg.Logging.File != "" {
		logPath, err = cfg.LogPath()
		if err != nil {
			return fmt.Errorf("failed to resolve log path: %w", err)
		}
	}
	log, logFile, err := logging.New(cfg.Logging.Level, logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	client := api.NewClient(cfg.Server.BaseURL, cfg.Auth.APIToken)
	client.SetLogger(log)

	app := tui.NewApp(client, cfg, log, initialTab)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
