package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CardData represents the content of a component card.
type CardData struct {
	Title       string
	Badge       string
	BadgeColor  lipgloss.Color
	Description string
	Footer      string
}

// Card renders a component entry as a bordered card.
type Card struct {
	data     CardData
	theme    Theme
	width    int
	selected bool
}

// NewCard creates a card with the given data.
func NewCard(data CardData) *Card {
	return &Card{
		data:  data,
		theme: DefaultTheme(),
		width: 60,
	}
}

// WithTheme sets the theme used for rendering.
func (c *Card) WithTheme(theme Theme) *Card {
	c.theme = theme
	return c
}

// WithWidth sets the card width in characters.
func (c *Card) WithWidth(width int) *Card {
	if width > 0 {
		c.width = width
	}
	return c
}

// WithSelected marks the card as the cursor target.
func (c *Card) WithSelected(selected bool) *Card {
	c.selected = selected
	return c
}

// Render returns the styled card.
func (c *Card) Render() string {
	borderColor := c.theme.Muted
	if c.selected {
		borderColor = c.theme.Accent
	}

	border := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(c.width)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(c.theme.Primary)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	footerStyle := lipgloss.NewStyle().Foreground(c.theme.Muted)

	var lines []string

	header := titleStyle.Render(c.data.Title)
	if c.data.Badge != "" {
		badge := NewBadge(c.data.Badge).WithColor(c.data.BadgeColor).WithTheme(c.theme)
		header = lipgloss.JoinHorizontal(lipgloss.Center, header, " ", badge.RenderInline())
	}
	lines = append(lines, header)

	if c.data.Description != "" {
		lines = append(lines, descStyle.Render(truncate(c.data.Description, c.width-4)))
	}
	if c.data.Footer != "" {
		lines = append(lines, footerStyle.Render(c.data.Footer))
	}

	return border.Render(strings.Join(lines, "\n"))
}

func truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
