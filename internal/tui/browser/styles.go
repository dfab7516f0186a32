package browser

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/chisom-ui/chisom/internal/components"
)

// Shared styles come from the component theme so the browser chrome matches
// the catalog cards.
var (
	browserTheme = components.DefaultTheme()

	mutedColor  = browserTheme.Muted
	accentColor = browserTheme.Accent

	// Title style
	titleStyle = browserTheme.TitleStyle()

	// Header style
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(browserTheme.Primary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(mutedColor).
			PaddingBottom(1).
			MarginBottom(1)

	// Footer style
	footerStyle = browserTheme.FooterStyle()

	// Error banner style
	errorBannerStyle = browserTheme.ErrorBannerStyle().
				Background(lipgloss.Color("52")).
				Padding(1, 2)

	// Detail view styles
	detailLabelStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Bold(true).
				Width(14)

	detailValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	// Demo event line
	demoEventStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			MarginTop(1)

	// Empty state style
	emptyStateStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			Align(lipgloss.Center).
			PaddingTop(4).
			PaddingBottom(4)
)

// ApplyMaxWidth applies a maximum width to all relevant styles
func ApplyMaxWidth(width int) {
	headerStyle = headerStyle.Width(width - 2)
	footerStyle = footerStyle.Width(width - 2)
}
