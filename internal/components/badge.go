package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Badge is a small inline label, used for component type tags.
type Badge struct {
	text  string
	color lipgloss.Color
	theme Theme
}

// NewBadge creates a badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{
		text:  text,
		color: DefaultTheme().Primary,
		theme: DefaultTheme(),
	}
}

// WithColor sets the badge color.
func (b *Badge) WithColor(color lipgloss.Color) *Badge {
	b.color = color
	return b
}

// WithTheme sets the theme used for rendering.
func (b *Badge) WithTheme(theme Theme) *Badge {
	b.theme = theme
	return b
}

// Render returns the styled badge text.
func (b *Badge) Render() string {
	style := lipgloss.NewStyle().
		Foreground(b.color).
		Bold(true).
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(b.color)
	return style.Render(b.text)
}

// RenderInline returns a compact bracketed form without borders, for rows
// where a boxed badge would break alignment.
func (b *Badge) RenderInline() string {
	style := lipgloss.NewStyle().
		Foreground(b.color).
		Bold(true)
	return style.Render("[" + b.text + "]")
}
