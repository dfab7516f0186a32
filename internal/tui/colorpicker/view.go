package colorpicker

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/chisom-ui/chisom/internal/hexcolor"
)

// View renders the picker.
func (m Model) View() string {
	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Primary)
	mutedStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)

	var b strings.Builder

	// Current color block with the active display format.
	block := lipgloss.NewStyle().
		Background(lipgloss.Color(m.color)).
		Foreground(contrastFor(m.color)).
		Padding(0, 2).
		Render(hexcolor.Display(m.color, m.format))
	b.WriteString(block)
	if m.copied {
		b.WriteString("  ")
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Success).Render("Copied!"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.presets) > 0 {
		b.WriteString(labelStyle.Render("Presets"))
		b.WriteString("\n")
		b.WriteString(m.renderSwatchRow(m.presets, 0))
		b.WriteString("\n")
	}

	if recent := m.Recent(); len(recent) > 0 {
		b.WriteString(labelStyle.Render("Recent"))
		b.WriteString("\n")
		b.WriteString(m.renderSwatchRow(recent, len(m.presets)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("tab: format • ctrl+y: copy • ctrl+r: surprise • ←/→: swatches • enter: select"))

	return lipgloss.NewStyle().MaxWidth(m.width).Render(b.String())
}

// renderSwatchRow renders a run of swatches; offset maps the row into the
// combined cursor space.
func (m Model) renderSwatchRow(colors []string, offset int) string {
	cells := make([]string, 0, len(colors))
	for i, color := range colors {
		style := lipgloss.NewStyle().
			Background(lipgloss.Color(color)).
			Foreground(contrastFor(color)).
			Padding(0, 1)
		if offset+i == m.cursor {
			style = style.Bold(true).Underline(true)
		}
		cells = append(cells, style.Render("  "))
	}
	return strings.Join(cells, " ")
}

// contrastFor picks a readable foreground for text rendered over the color.
func contrastFor(hex string) lipgloss.Color {
	c, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return lipgloss.Color("15")
	}
	if _, _, l := c.Hsl(); l > 0.6 {
		return lipgloss.Color("0")
	}
	return lipgloss.Color("15")
}
