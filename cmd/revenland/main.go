package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/revenland/revenland/internal/backend"
	"github.com/revenland/revenland/internal/config"
	"github.com/revenland/revenland/internal/docstore"
	"github.com/revenland/revenland/internal/domain"
	"github.com/revenland/revenland/internal/log"
	"github.com/revenland/revenland/internal/platform"
	"github.com/revenland/revenland/internal/service"
	"github.com/revenland/revenland/internal/store"
	"github.com/revenland/revenland/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                        \r"

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func main() {
	var showVersion, reset, clearCache bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&reset, "reset", false, "forget the store configuration and cached data")
	flag.BoolVar(&clearCache, "clear-cache", false, "delete cached programs")
	flag.Parse()

	if showVersion {
		fmt.Printf("revenland %s\n", Version)
		return
	}

	if err := run(reset, clearCache); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(reset, clearCache bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, closer, err := log.Setup(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	} else {
		defer closer.Close()
	}
	slog.SetDefault(logger)

	session := service.NewSessionService(cfg.Cache.Dir)
	switch {
	case reset:
		if err := session.Reset(); err != nil {
			return err
		}
		fmt.Println("✓ Configuration and cache removed.")
		return nil
	case clearCache:
		if err := session.ClearCache(); err != nil {
			return err
		}
		fmt.Println("✓ Cache cleared.")
		return nil
	}

	logger.Info("starting revenland", "version", Version)

	if !cfg.IsConfigured() {
		return runSetupFlow(cfg, logger)
	}

	client := newClient(cfg.Backend, logger)
	repo := backend.NewRepository(client, backend.Collections{
		Database:    cfg.Backend.Database,
		Programs:    cfg.Backend.ProgramsCollection,
		Subscribers: cfg.Backend.SubscribersCollection,
		Messages:    cfg.Backend.MessagesCollection,
	}, log.Component(logger, "backend"))

	cacheDir := ""
	if cfg.Cache.Enabled {
		cacheDir = cfg.Cache.Dir
	}
	programStore, err := store.NewProgramStore(cacheDir, cfg.Backend.Endpoint, cfg.Backend.Project)
	if err != nil {
		logger.Warn("program cache unavailable, continuing without it", "error", err)
		programStore, _ = store.NewProgramStore("", cfg.Backend.Endpoint, cfg.Backend.Project)
	}
	defer programStore.Close()

	var sharer domain.Sharer
	if cs, err := platform.NewClipboardSharer(log.Component(logger, "share")); err == nil {
		sharer = cs
	} else {
		logger.Warn("sharing disabled", "error", err)
	}
	opener := platform.NewOpener(cfg.Opener.Command, cfg.Opener.Args, log.Component(logger, "opener"))

	svcs := tui.Services{
		Programs:   service.NewProgramService(repo, programStore, sharer, log.Component(logger, "programs")),
		Newsletter: service.NewNewsletterService(repo, log.Component(logger, "newsletter")),
		Contact:    service.NewContactService(repo, log.Component(logger, "contact")),
		Catalog:    service.NewCatalogService(),
		Opener:     opener,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := tui.NewModel(ctx, svcs, cfg.UI, log.Component(logger, "tui"))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

func newClient(b config.BackendConfig, logger *slog.Logger) *docstore.Client {
	var opts []docstore.Option
	if b.APIKey != "" {
		opts = append(opts, docstore.WithAPIKey(b.APIKey))
	}
	if b.Timeout > 0 {
		opts = append(opts, docstore.WithTimeout(b.Timeout))
	}
	return docstore.NewClient(b.Endpoint, b.Project, log.Component(logger, "docstore"), opts...)
}

// runSetupFlow asks for the store coordinates on first launch
func runSetupFlow(cfg *config.Config, logger *slog.Logger) error {
	fmt.Println()
	fmt.Println("Welcome to RevenLand!")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	b := &cfg.Backend

	for {
		endpoint, err := prompt(reader, "Store endpoint", b.Endpoint)
		if err != nil {
			return err
		}
		project, err := prompt(reader, "Project ID", b.Project)
		if err != nil {
			return err
		}
		if endpoint == "" || project == "" {
			fmt.Println("Endpoint and project cannot be empty. Please try again.")
			continue
		}
		b.Endpoint, b.Project = endpoint, project

		key, err := promptSecret(reader, "API key (optional)")
		if err != nil {
			return err
		}
		b.APIKey = key

		fmt.Println()
		if err := pingWithSpinner(newClient(*b, logger)); err != nil {
			fmt.Printf("\n✗ Could not reach the store: %v\n", err)
			fmt.Println("Please check the endpoint and try again.")
			fmt.Println()
			continue
		}
		break
	}

	var err error
	if b.Database, err = prompt(reader, "Database ID", b.Database); err != nil {
		return err
	}
	if b.ProgramsCollection, err = prompt(reader, "Programs collection ID", b.ProgramsCollection); err != nil {
		return err
	}
	if b.SubscribersCollection, err = prompt(reader, "Subscribers collection ID", b.SubscribersCollection); err != nil {
		return err
	}
	if b.MessagesCollection, err = prompt(reader, "Messages collection ID (optional)", b.MessagesCollection); err != nil {
		return err
	}

	if !cfg.IsConfigured() {
		return errors.New("database and collection IDs are required")
	}

	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run revenland again to start the application.")
	return nil
}

func prompt(reader *bufio.Reader, label, current string) (string, error) {
	if current != "" {
		fmt.Printf("%s [%s]: ", label, current)
	} else {
		fmt.Printf("%s: ", label)
	}
	input, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if v := strings.TrimSpace(input); v != "" {
		return v, nil
	}
	return current, nil
}

// promptSecret reads without echo when stdin is a terminal
func promptSecret(reader *bufio.Reader, label string) (string, error) {
	fd := int(syscall.Stdin)
	if !term.IsTerminal(fd) {
		return prompt(reader, label, "")
	}
	fmt.Printf("%s: ", label)
	raw, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// pingWithSpinner checks the endpoint with a visual spinner
func pingWithSpinner(client *docstore.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	type result struct {
		version string
		err     error
	}
	resultCh := make(chan result, 1)

	go func() {
		version, err := client.Ping(ctx)
		resultCh <- result{version, err}
	}()

	frame := 0
	fmt.Printf("\r%s Connecting to %s...", spinnerFrames[frame], client.Endpoint())

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case res := <-resultCh:
			fmt.Print(clearSpinnerLine)
			if res.err != nil {
				return res.err
			}
			fmt.Printf("✓ Connected (server %s)\n", res.version)
			return nil

		case <-ticker.C:
			frame++
			fmt.Printf("\r%s Connecting to %s...", spinnerFrames[frame%len(spinnerFrames)], client.Endpoint())

		case <-ctx.Done():
			fmt.Print(clearSpinnerLine)
			return fmt.Errorf("connection timed out")
		}
	}
}
