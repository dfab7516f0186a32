package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/chisom-ui/chisom/internal/history"
	"github.com/chisom-ui/chisom/internal/tui/colorpicker"
	"github.com/chisom-ui/chisom/internal/tui/searchbox"
	"github.com/chisom-ui/chisom/internal/tui/taginput"
)

func newDemoCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo <component>",
		Short: "Run a component demo without the browser",
		Long:  `Run the interactive demo of a single component. Components with demos: color-picker, search-input, tag-input.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}
			return runDemo(app, args[0])
		},
	}

	return cmd
}

func runDemo(app *AppContext, name string) error {
	session, err := newDemoSession(app, name)
	if err != nil {
		return err
	}

	p := tea.NewProgram(demoProgram{name: name, session: session}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run demo: %w", err)
	}
	return nil
}

// demoSession adapts one concrete component model to a common shape so a
// single tea program can host any demo.
type demoSession struct {
	init   func() tea.Cmd
	update func(tea.Msg) tea.Cmd
	view   func() string
}

func newDemoSession(app *AppContext, name string) (*demoSession, error) {
	switch name {
	case "color-picker":
		log := app.Logger.WithComponent("demo")
		store, err := history.NewFileStore(app.Settings.HistoryPath())
		if err != nil {
			return nil, newCommandError("demo", "opening recent color history", err, "Check permissions on your state directory.")
		}
		recent := history.NewRecentColors(store, app.Settings.MaxRecentColors, log)
		m := colorpicker.New(app.Settings.PresetColors, recent)
		return &demoSession{
			init: m.Init,
			update: func(msg tea.Msg) tea.Cmd {
				var cmd tea.Cmd
				m, cmd = m.Update(msg)
				return cmd
			},
			view: func() string { return m.View() },
		}, nil

	case "search-input":
		m := searchbox.New(time.Duration(app.Settings.DebounceMs) * time.Millisecond)
		focusCmd := m.Focus()
		return &demoSession{
			init: func() tea.Cmd {
				return tea.Batch(m.Init(), focusCmd)
			},
			update: func(msg tea.Msg) tea.Cmd {
				var cmd tea.Cmd
				m, cmd = m.Update(msg)
				return cmd
			},
			view: func() string { return m.View() },
		}, nil

	case "tag-input":
		m := taginput.New(taginput.DefaultMax)
		return &demoSession{
			init: m.Init,
			update: func(msg tea.Msg) tea.Cmd {
				var cmd tea.Cmd
				m, cmd = m.Update(msg)
				return cmd
			},
			view: func() string { return m.View() },
		}, nil
	}

	return nil, newCommandError("demo", fmt.Sprintf("looking up a demo for %q", name), fmt.Errorf("component has no demo"), "Components with demos: color-picker, search-input, tag-input.")
}

type demoProgram struct {
	name    string
	session *demoSession
}

func (d demoProgram) Init() tea.Cmd {
	return d.session.init()
}

func (d demoProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+c":
			return d, tea.Quit
		}
	}
	return d, d.session.update(msg)
}

func (d demoProgram) View() string {
	return fmt.Sprintf("Demo: %s\n\n%s\n\nesc: quit\n", d.name, d.session.view())
}
