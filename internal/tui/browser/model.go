package browser

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chisom-ui/chisom/internal/components"
	"github.com/chisom-ui/chisom/internal/docs"
	"github.com/chisom-ui/chisom/internal/history"
	"github.com/chisom-ui/chisom/internal/logger"
	"github.com/chisom-ui/chisom/internal/registry"
	"github.com/chisom-ui/chisom/internal/tui/colorpicker"
	"github.com/chisom-ui/chisom/internal/tui/searchbox"
	"github.com/chisom-ui/chisom/internal/tui/taginput"
)

// Options carries the dependencies for a browser model.
type Options struct {
	Registry   *registry.Registry
	Docs       *docs.Renderer
	Watcher    *registry.Watcher
	Recent     *history.RecentColors
	Presets    []string
	Debounce   time.Duration
	Logger     *logger.Logger
	UseUnicode bool
}

// Model is the catalog browser model
type Model struct {
	// Core data
	reg    *registry.Registry
	docs   *docs.Renderer
	events <-chan struct{}
	log    *logger.Logger

	// Catalog view: components after the active search filter
	catalog []registry.Component
	query   string

	// UI state
	viewMode ViewMode
	cursor   int
	selected string

	// Component state
	search searchbox.Model

	// Demo state
	demoName   string
	picker     colorpicker.Model
	demoSearch searchbox.Model
	demoTags   taginput.Model
	demoEvent  string

	// Picker configuration
	recent   *history.RecentColors
	presets  []string
	debounce time.Duration

	// Error banner state
	showError bool
	errorMsg  string

	// Dimensions
	width  int
	height int

	// Configuration
	useUnicode bool
	theme      components.Theme
}

// NewModel creates a new browser model
func NewModel(opts Options) Model {
	m := Model{
		reg:        opts.Registry,
		docs:       opts.Docs,
		log:        opts.Logger,
		recent:     opts.Recent,
		presets:    opts.Presets,
		debounce:   opts.Debounce,
		viewMode:   ViewList,
		search:     searchbox.New(opts.Debounce),
		useUnicode: opts.UseUnicode,
		theme:      components.DefaultTheme(),
		width:      80,
		height:     24,
	}

	if opts.Watcher != nil {
		m.events = opts.Watcher.Events()
	}

	m.catalog = m.reg.List()
	return m
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.search.Init()}
	if m.events != nil {
		cmds = append(cmds, waitForReloadCmd(m.events))
	}
	return tea.Batch(cmds...)
}

// Helper Methods

// CountByType returns counts of catalog components per type.
func (m *Model) CountByType() map[registry.ComponentType]int {
	counts := make(map[registry.ComponentType]int)
	for _, c := range m.catalog {
		counts[c.Type]++
	}
	return counts
}

// GetSelectedComponent returns the component under the cursor
func (m *Model) GetSelectedComponent() (registry.Component, bool) {
	if m.cursor < 0 || m.cursor >= len(m.catalog) {
		return registry.Component{}, false
	}
	return m.catalog[m.cursor], true
}

// MoveCursorUp moves cursor up with wrapping
func (m *Model) MoveCursorUp() {
	if len(m.catalog) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.catalog) - 1
	}
}

// MoveCursorDown moves cursor down with wrapping
func (m *Model) MoveCursorDown() {
	if len(m.catalog) == 0 {
		return
	}
	m.cursor++
	if m.cursor >= len(m.catalog) {
		m.cursor = 0
	}
}

// SetCursor sets cursor to specific index
func (m *Model) SetCursor(index int) {
	if index >= 0 && index < len(m.catalog) {
		m.cursor = index
	}
}

// GetViewMode returns the current view mode
func (m *Model) GetViewMode() ViewMode {
	return m.viewMode
}

// Query returns the active search filter.
func (m *Model) Query() string {
	return m.query
}

// applyFilter recomputes the visible catalog from the active query and
// clamps the cursor.
func (m *Model) applyFilter() {
	if m.query == "" {
		m.catalog = m.reg.List()
	} else {
		m.catalog = m.reg.Search(m.query)
	}
	if m.cursor >= len(m.catalog) {
		m.cursor = len(m.catalog) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// hasDemo reports whether a component ships an interactive demo.
func hasDemo(name string) bool {
	switch name {
	case "color-picker", "search-input", "tag-input":
		return true
	}
	return false
}

// openDemo builds a fresh demo model for the named component.
func (m *Model) openDemo(name string) tea.Cmd {
	m.demoName = name
	m.demoEvent = ""
	m.viewMode = ViewDemo

	switch name {
	case "color-picker":
		m.picker = colorpicker.New(m.presets, m.recent)
		m.picker.SetWidth(m.width - 4)
		return m.picker.Init()
	case "search-input":
		m.demoSearch = searchbox.New(m.debounce)
		cmd := m.demoSearch.Focus()
		return tea.Batch(m.demoSearch.Init(), cmd)
	case "tag-input":
		m.demoTags = taginput.New(taginput.DefaultMax)
		return m.demoTags.Init()
	}
	return nil
}
