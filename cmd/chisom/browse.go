package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/chisom-ui/chisom/internal/components"
	"github.com/chisom-ui/chisom/internal/docs"
	"github.com/chisom-ui/chisom/internal/history"
	"github.com/chisom-ui/chisom/internal/registry"
	"github.com/chisom-ui/chisom/internal/tui/browser"
)

func newBrowseCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Launch the interactive catalog browser",
		Long:  `Launch the interactive TUI to browse components, read install docs and run demos.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}
			return runBrowse(app)
		},
	}

	return cmd
}

func runBrowse(app *AppContext) error {
	log := app.Logger.WithComponent("browser")

	reg, err := registry.NewRegistry(app.Settings.RegistryPath)
	if err != nil {
		return newCommandError("browse", "loading component registry", err, "Check the registry file or run 'chisom sync' to fetch a fresh copy.")
	}

	renderer, err := docs.NewRenderer(components.DefaultTheme())
	if err != nil {
		return newCommandError("browse", "creating docs renderer", err, "This is unexpected; please report it.")
	}

	recentStore, err := history.NewFileStore(app.Settings.HistoryPath())
	if err != nil {
		return newCommandError("browse", "opening recent color history", err, "Check permissions on your state directory.")
	}
	recent := history.NewRecentColors(recentStore, app.Settings.MaxRecentColors, log)

	// Catalog hot reload is best effort; the browser works without it.
	watcher, err := registry.NewWatcher(reg, log)
	if err != nil {
		log.Warn(err, "catalog watcher unavailable, hot reload disabled")
		watcher = nil
	} else {
		defer func() { _ = watcher.Close() }()
	}

	m := browser.NewModel(browser.Options{
		Registry:   reg,
		Docs:       renderer,
		Watcher:    watcher,
		Recent:     recent,
		Presets:    app.Settings.PresetColors,
		Debounce:   time.Duration(app.Settings.DebounceMs) * time.Millisecond,
		Logger:     log,
		UseUnicode: supportsUnicode(os.Stdout),
	})

	log.Info("launching catalog browser")

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}

	log.Info("browser closed")
	return nil
}
