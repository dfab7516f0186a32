package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chisom-ui/chisom/internal/components"
	"github.com/chisom-ui/chisom/internal/registry"
)

// cardHeight is the rendered height of a catalog card including its border.
const cardHeight = 5

// View renders the current model state
func (m Model) View() string {
	switch m.viewMode {
	case ViewList:
		return m.renderListView()
	case ViewDetail:
		return m.renderDetailView()
	case ViewDemo:
		return m.renderDemoView()
	case ViewHelp:
		return m.renderHelpView()
	default:
		return m.renderListView()
	}
}

// renderListView renders the main catalog view
func (m Model) renderListView() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	if m.showError {
		content.WriteString(m.renderErrorBanner())
		content.WriteString("\n")
	}

	content.WriteString(m.search.View())
	content.WriteString("\n")

	content.WriteString(m.renderCatalog())
	content.WriteString("\n")

	content.WriteString(m.renderFooter())

	return content.String()
}

// renderHeader renders the header with title and type summary
func (m Model) renderHeader() string {
	title := titleStyle.Render("🎨 Chisom UI")
	if !m.useUnicode {
		title = titleStyle.Render("Chisom UI")
	}

	counts := m.CountByType()
	parts := make([]string, 0, 4)
	for _, t := range []registry.ComponentType{registry.TypeUI, registry.TypeHook, registry.TypeLib, registry.TypeBlock} {
		if counts[t] == 0 {
			continue
		}
		icon := t.Icon()
		if !m.useUnicode {
			icon = t.IconFallback()
		}
		parts = append(parts, fmt.Sprintf("%s %d %s", icon, counts[t], t.Label()))
	}
	summary := strings.Join(parts, "  ")
	if m.query != "" {
		summary += fmt.Sprintf("  (filter: %q)", m.query)
	}

	headerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		summary,
	)

	return headerStyle.Render(headerContent)
}

// renderCatalog renders the filtered component cards
func (m Model) renderCatalog() string {
	if len(m.catalog) == 0 {
		return m.renderEmptyState()
	}

	maxVisible := (m.height - 10) / cardHeight
	if maxVisible < 1 {
		maxVisible = 1
	}

	// Keep the cursor inside the scroll window
	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := start + maxVisible
	if end > len(m.catalog) {
		end = len(m.catalog)
	}

	var items []string
	if start > 0 {
		items = append(items, lipgloss.NewStyle().Foreground(mutedColor).Render("▲ More above"))
	}
	for i := start; i < end; i++ {
		items = append(items, m.renderCard(m.catalog[i], i == m.cursor))
	}
	if end < len(m.catalog) {
		items = append(items, lipgloss.NewStyle().Foreground(mutedColor).Render("▼ More below"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// renderCard renders a single catalog card
func (m Model) renderCard(c registry.Component, selected bool) string {
	icon := c.Type.Icon()
	if !m.useUnicode {
		icon = c.Type.IconFallback()
	}

	footer := fmt.Sprintf("%d file(s)", len(c.Files))
	if len(c.Dependencies) > 0 {
		footer += fmt.Sprintf("  •  %d npm dep(s)", len(c.Dependencies))
	}

	card := components.NewCard(components.CardData{
		Title:       fmt.Sprintf("%s %s", icon, c.Name),
		Badge:       c.Type.Label(),
		BadgeColor:  c.Type.Color(),
		Description: c.Description,
		Footer:      footer,
	})

	return card.
		WithTheme(m.theme).
		WithWidth(m.width - 6).
		WithSelected(selected).
		Render()
}

// renderEmptyState renders the empty state when nothing matches
func (m Model) renderEmptyState() string {
	if m.query != "" {
		return emptyStateStyle.Render(fmt.Sprintf("No components match %q.", m.query))
	}

	message := `The catalog is empty.

Run 'chisom sync' to fetch the upstream registry.`

	return emptyStateStyle.Render(message)
}

// renderFooter renders the footer with keyboard shortcuts
func (m Model) renderFooter() string {
	hints := []string{
		"↑/↓: navigate",
		"/: search",
		"enter: details",
		"d: demo",
		"r: reload",
		"?: help",
	}

	if m.showError {
		hints = append(hints, "x: dismiss error")
	}

	hints = append(hints, "q: quit")

	return footerStyle.Render(strings.Join(hints, "  •  "))
}

// renderErrorBanner renders an error message banner
func (m Model) renderErrorBanner() string {
	return errorBannerStyle.Render(m.errorMsg)
}

// renderDetailView renders the detail view for a selected component
func (m Model) renderDetailView() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	selected, err := m.reg.Get(m.selected)
	if err != nil {
		return "Component not found"
	}

	var content strings.Builder

	icon := selected.Type.Icon()
	if !m.useUnicode {
		icon = selected.Type.IconFallback()
	}
	content.WriteString(titleStyle.Render(fmt.Sprintf("%s %s", icon, selected.Name)))
	content.WriteString("\n\n")

	if m.showError {
		content.WriteString(m.renderErrorBanner())
		content.WriteString("\n\n")
	}

	badge := components.NewBadge(selected.Type.Label()).WithColor(selected.Type.Color())
	content.WriteString(badge.RenderInline())
	content.WriteString("\n\n")

	if selected.Description != "" {
		content.WriteString(detailValueStyle.Render(selected.Description))
		content.WriteString("\n\n")
	}

	rows := []struct {
		label string
		value string
	}{
		{"Type", selected.Type.Label()},
		{"npm deps", joinOrNone(selected.Dependencies)},
		{"Registry deps", joinOrNone(selected.RegistryDependencies)},
	}
	for _, row := range rows {
		content.WriteString(detailLabelStyle.Render(row.label))
		content.WriteString(detailValueStyle.Render(row.value))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	content.WriteString(m.docs.Install(selected, m.width-4))
	content.WriteString("\n")

	hints := []string{"esc: back", "?: help", "q: quit"}
	if hasDemo(selected.Name) {
		hints = append([]string{"d: run demo"}, hints...)
	}
	footer := footerStyle.Render(strings.Join(hints, "  •  "))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content.String(),
		footer,
	)
}

// renderDemoView renders the interactive demo for the selected component
func (m Model) renderDemoView() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	title := titleStyle.Render(fmt.Sprintf("Demo: %s", m.demoName))

	var body string
	switch m.demoName {
	case "color-picker":
		body = m.picker.View()
	case "search-input":
		body = m.demoSearch.View()
	case "tag-input":
		body = m.demoTags.View()
	default:
		body = emptyStateStyle.Render("This component has no interactive demo.")
	}

	var event string
	if m.demoEvent != "" {
		event = demoEventStyle.Render("last event  " + m.demoEvent)
	}

	footer := footerStyle.Render("esc: back  •  ctrl+c: quit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		body,
		event,
		footer,
	)
}

// renderHelpView renders the help overlay
func (m Model) renderHelpView() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	title := titleStyle.Render("❓ Chisom UI Help")
	if !m.useUnicode {
		title = titleStyle.Render("Chisom UI Help")
	}

	helpContent := `
List View:
  ↑/↓, j/k      Navigate up/down
  1-9           Jump to component by number
  /             Focus the search box
  Enter         View component details
  d             Run the component demo
  r             Reload the catalog from disk
  ?             Toggle this help
  q, Ctrl+C     Quit application

Search:
  Esc           Clear the filter and leave the search box
  Enter         Keep the filter and leave the search box

Detail View:
  d, Enter      Run the component demo
  Esc           Back to list
  ?             Toggle this help

Demo View:
  Esc           Back to details
  Ctrl+C        Quit application

Tips:
  • The catalog reloads automatically when the registry file changes
  • Search matches component names and descriptions
  • Recent picker colors persist between sessions
`

	helpText := lipgloss.NewStyle().
		Padding(1, 2).
		Render(helpContent)

	footer := footerStyle.Render("Press ? or Esc to close")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		helpText,
		footer,
	)
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}
