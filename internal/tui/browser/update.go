package browser

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chisom-ui/chisom/internal/tui/colorpicker"
	"github.com/chisom-ui/chisom/internal/tui/searchbox"
	"github.com/chisom-ui/chisom/internal/tui/taginput"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		ApplyMaxWidth(m.width)
		m.picker.SetWidth(m.width - 4)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	// Catalog messages
	case CatalogReloadedMsg:
		// The watcher already reloaded the registry; refresh the view and
		// drop any docs rendered from the previous catalog.
		m.docs.Invalidate()
		m.applyFilter()
		if m.events == nil {
			return m, nil
		}
		return m, waitForReloadCmd(m.events)

	case WatcherClosedMsg:
		return m, nil

	// Search messages
	case searchbox.QueryMsg:
		if m.viewMode == ViewDemo && m.demoName == "search-input" {
			m.demoEvent = fmt.Sprintf("query: %q", msg.Query)
			return m, nil
		}
		m.query = msg.Query
		m.applyFilter()
		return m, nil

	// Demo event messages
	case colorpicker.ChangedMsg:
		m.demoEvent = "color: " + msg.Color
		return m, nil

	case taginput.TagsChangedMsg:
		m.demoEvent = "tags: " + strings.Join(msg.Tags, ", ")
		return m, nil

	// Navigation messages
	case ComponentSelectedMsg:
		m.selected = msg.Name
		m.viewMode = ViewDetail
		return m, nil

	case BackToListMsg:
		m.viewMode = ViewList
		m.selected = ""
		return m, nil

	// Error messages
	case ErrorMsg:
		m.showError = true
		m.errorMsg = msg.Message
		return m, nil

	case ClearErrorMsg:
		m.showError = false
		m.errorMsg = ""
		return m, nil
	}

	// Everything else drives component timers (debounce, copy expiry).
	return m.forward(msg)
}

// forward routes non-key messages to the embedded components.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.search, cmd = m.search.Update(msg)
	cmds = append(cmds, cmd)

	if m.viewMode == ViewDemo {
		switch m.demoName {
		case "color-picker":
			m.picker, cmd = m.picker.Update(msg)
		case "search-input":
			m.demoSearch, cmd = m.demoSearch.Update(msg)
		case "tag-input":
			m.demoTags, cmd = m.demoTags.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input based on current view mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewMode {
	case ViewList:
		return m.handleListKeys(msg)
	case ViewDetail:
		return m.handleDetailKeys(msg)
	case ViewDemo:
		return m.handleDemoKeys(msg)
	case ViewHelp:
		return m.handleHelpKeys(msg)
	default:
		return m, nil
	}
}

// handleListKeys handles keys in list view
func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the search box has focus, keys edit the query.
	if m.search.Focused() {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			m.search.Blur()
			cmd := m.search.Reset()
			return m, cmd

		case "enter":
			m.search.Blur()
			return m, nil
		}

		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	// Quit
	case "q", "ctrl+c":
		return m, tea.Quit

	// Focus search
	case "/":
		cmd := m.search.Focus()
		return m, cmd

	// Navigation
	case "up", "k":
		m.MoveCursorUp()
		return m, nil

	case "down", "j":
		m.MoveCursorDown()
		return m, nil

	// Direct selection with number keys
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		index := int(msg.String()[0] - '1')
		if index < len(m.catalog) {
			m.SetCursor(index)
		}
		return m, nil

	// Select component
	case "enter", " ":
		if selected, ok := m.GetSelectedComponent(); ok {
			return m, selectComponentCmd(selected.Name)
		}
		return m, nil

	// Jump straight into the demo
	case "d":
		if selected, ok := m.GetSelectedComponent(); ok && hasDemo(selected.Name) {
			m.selected = selected.Name
			cmd := m.openDemo(selected.Name)
			return m, cmd
		}
		return m, nil

	// Reload the catalog from disk
	case "r":
		if err := m.reg.Load(); err != nil {
			m.showError = true
			m.errorMsg = fmt.Sprintf("Failed to reload catalog: %s", err.Error())
			return m, nil
		}
		m.docs.Invalidate()
		m.applyFilter()
		return m, nil

	// Help
	case "?":
		m.viewMode = ViewHelp
		return m, nil

	// Clear error banner
	case "x", "esc":
		if m.showError {
			return m, clearErrorCmd
		}
		return m, nil
	}

	return m, nil
}

// handleDetailKeys handles keys in detail view
func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	// Quit application
	case "q", "ctrl+c":
		return m, tea.Quit

	// Back to list
	case "esc", "backspace":
		return m, backToListCmd

	// Open the interactive demo
	case "d", "enter":
		if hasDemo(m.selected) {
			cmd := m.openDemo(m.selected)
			return m, cmd
		}
		return m, nil

	// Help
	case "?":
		m.viewMode = ViewHelp
		return m, nil

	// Clear error banner
	case "x":
		if m.showError {
			return m, clearErrorCmd
		}
		return m, nil
	}
	return m, nil
}

// handleDemoKeys handles keys while a demo is running. Only esc leaves the
// demo so that letters still type into its inputs.
func (m Model) handleDemoKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.demoName = ""
		m.demoEvent = ""
		m.viewMode = ViewDetail
		return m, nil
	}

	var cmd tea.Cmd
	switch m.demoName {
	case "color-picker":
		m.picker, cmd = m.picker.Update(msg)
	case "search-input":
		m.demoSearch, cmd = m.demoSearch.Update(msg)
	case "tag-input":
		m.demoTags, cmd = m.demoTags.Update(msg)
	}
	return m, cmd
}

// handleHelpKeys handles keys in help view
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q":
		// Return to previous view
		if m.selected != "" {
			m.viewMode = ViewDetail
		} else {
			m.viewMode = ViewList
		}
		return m, nil
	}
	return m, nil
}
