package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tinytelemetry/salesdash/internal/salesapi"
	"github.com/tinytelemetry/salesdash/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var baseURL string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/salesdash/config.yml)")
	flag.StringVar(&baseURL, "base-url", "", "override the prediction service base URL")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Salesdash - Sales Prediction Dashboard\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	// A missing .env is normal outside development.
	_ = godotenv.Load()

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg cliConfig) error {
	logger, closeLog := configureRuntimeLogger(cfg)
	defer closeLog()

	client, err := salesapi.NewClient(cfg.BaseURL, cfg.RequestTimeout, logger)
	if err != nil {
		return err
	}
	logger.Info("salesdash starting", "version", version, "base_url", client.BaseURL())

	app := tui.NewApp(tui.Deps{
		API:       client,
		BaseURL:   client.BaseURL(),
		Keys:      tui.DefaultKeyMap(),
		Timeout:   cfg.RequestTimeout,
		ExportDir: cfg.ExportDir,
		ItemID:    cfg.DefaultItemID,
		StoreID:   cfg.DefaultStoreID,
		Logger:    logger,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
