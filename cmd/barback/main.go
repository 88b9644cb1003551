package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/barback/internal/adapter"
	"github.com/mmcdole/barback/internal/adapter/source"
	"github.com/mmcdole/barback/internal/domain"
	"github.com/mmcdole/barback/internal/service"
	"github.com/mmcdole/barback/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

type options struct {
	showVersion bool
	writeConfig bool
	configDir   string
	screen      string
	plain       bool
	json        bool
	filter      string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("barback", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.showVersion, "v", false, "print version")
	fs.BoolVar(&opts.showVersion, "version", false, "print version")
	fs.BoolVar(&opts.writeConfig, "write-config", false, "write the effective config to config.yaml and exit")
	fs.StringVar(&opts.configDir, "config", "", "directory holding config.yaml")
	fs.StringVar(&opts.screen, "screen", "", `screen to show: "cocktails" or "meals"`)
	fs.BoolVar(&opts.plain, "plain", false, "print the list instead of starting the TUI")
	fs.BoolVar(&opts.json, "json", false, "print the list as JSON (implies -plain)")
	fs.StringVar(&opts.filter, "filter", "", "fuzzy filter applied to names in plain mode")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if opts.screen != "" && !adapter.ScreenName(opts.screen).Valid() {
		return opts, fmt.Errorf("invalid -screen %q (want %q or %q)", opts.screen, adapter.ScreenCocktails, adapter.ScreenMeals)
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if opts.showVersion {
		fmt.Printf("barback %s\n", Version)
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	// Load configuration
	var dirs []string
	if opts.configDir != "" {
		dirs = append(dirs, opts.configDir)
	}
	cfg, err := adapter.LoadConfig(dirs...)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.screen != "" {
		cfg.UI.DefaultScreen = adapter.ScreenName(opts.screen)
	}

	if opts.writeConfig {
		dir := opts.configDir
		if dir == "" {
			dir = adapter.DefaultConfigDir()
		}
		path, err := adapter.SaveConfig(cfg, dir)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	}

	// Setup logger
	logger, closeLog, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	} else {
		defer closeLog()
	}
	slog.SetDefault(logger)

	logger.Info("starting barback", "version", Version)

	cat, err := newCatalogs(cfg, logger)
	if err != nil {
		return err
	}

	stdoutFd := int(os.Stdout.Fd())
	if opts.plain || opts.json || !term.IsTerminal(stdoutFd) {
		width := 0
		if term.IsTerminal(stdoutFd) {
			if w, _, err := term.GetSize(stdoutFd); err == nil {
				width = w
			}
		}
		return runPlain(context.Background(), os.Stdout, cfg.UI.DefaultScreen, cat, plainOptions{
			JSON:   opts.json,
			Filter: opts.filter,
			Width:  width,
		})
	}

	return runTUI(cfg, cat, logger)
}

// catalogs holds the state of both screens
type catalogs struct {
	cocktails *service.Catalog[domain.Cocktail]
	meals     *service.Catalog[domain.Meal]
}

func newCatalogs(cfg *adapter.Config, logger *slog.Logger) (*catalogs, error) {
	sources, err := source.NewSourcesFromConfig(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create sources: %w", err)
	}
	return &catalogs{
		cocktails: service.NewCocktailCatalog(sources.Cocktails, logger),
		meals:     service.NewMealCatalog(sources.Meals, logger),
	}, nil
}

func runTUI(cfg *adapter.Config, cat *catalogs, logger *slog.Logger) error {
	updates := tui.NewUpdates()
	defer tui.Bind(cat.cocktails, adapter.ScreenCocktails, updates)()
	defer tui.Bind(cat.meals, adapter.ScreenMeals, updates)()

	screens := []*tui.Screen{
		tui.NewScreen(adapter.ScreenCocktails, "Cocktails", "cocktails", cat.cocktails, cfg.UI.ShowThumbnails),
		tui.NewScreen(adapter.ScreenMeals, "Seafood", "meals", cat.meals, cfg.UI.ShowThumbnails),
	}
	model := tui.NewModel(screens, updates, cfg.UI.DefaultScreen)

	viewer, viewerArgs := adapter.SplitCommand(cfg.UI.ImageViewer)
	model.Opener = adapter.NewOpener(viewer, viewerArgs, logger)

	// Run the TUI
	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI", "screen", cfg.UI.DefaultScreen)

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
