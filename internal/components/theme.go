package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the semantic color slots shared by every Chisom component.
type Theme struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Danger  lipgloss.Color
	Muted   lipgloss.Color
	Surface lipgloss.Color
}

// DefaultTheme returns the stock Chisom palette.
func DefaultTheme() Theme {
	return Theme{
		Primary: lipgloss.Color("99"),  // purple
		Accent:  lipgloss.Color("212"), // pink
		Success: lipgloss.Color("42"),  // green
		Warning: lipgloss.Color("226"), // yellow
		Danger:  lipgloss.Color("196"), // red
		Muted:   lipgloss.Color("245"), // gray
		Surface: lipgloss.Color("235"), // dark gray
	}
}

// TitleStyle returns the style for view titles.
func (t Theme) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		PaddingLeft(2).
		PaddingRight(2).
		MarginBottom(1)
}

// FooterStyle returns the style for key hints at the bottom of a view.
func (t Theme) FooterStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Muted).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(t.Muted).
		PaddingTop(1).
		MarginTop(1)
}

// ErrorBannerStyle returns the style for non-fatal error banners.
func (t Theme) ErrorBannerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Danger).
		Bold(true).
		Padding(0, 1).
		MarginBottom(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(t.Danger)
}
