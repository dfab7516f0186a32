package taginput

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chisom-ui/chisom/internal/components"
)

// DefaultMax bounds the tag list when no limit is configured.
const DefaultMax = 8

// TagsChangedMsg is emitted when the tag list changes.
type TagsChangedMsg struct {
	Tags []string
}

// Model is a free-text tag entry: enter adds the buffer as a tag, backspace
// on an empty buffer removes the last tag. Tags are deduplicated
// case-insensitively and bounded.
type Model struct {
	input textinput.Model
	tags  []string
	max   int
	theme components.Theme
}

// New creates a tag input bounded to max tags; zero or negative uses the default.
func New(max int) Model {
	input := textinput.New()
	input.Placeholder = "Add tag..."
	input.CharLimit = 32
	input.Focus()

	if max <= 0 {
		max = DefaultMax
	}

	return Model{
		input: input,
		max:   max,
		theme: components.DefaultTheme(),
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Tags returns a copy of the current tag list.
func (m Model) Tags() []string {
	result := make([]string, len(m.tags))
	copy(result, m.tags)
	return result
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			return m.addTag()
		case "backspace":
			if m.input.Value() == "" && len(m.tags) > 0 {
				m.tags = m.tags[:len(m.tags)-1]
				return m, m.changed()
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) addTag() (Model, tea.Cmd) {
	tag := strings.TrimSpace(m.input.Value())
	if tag == "" || len(m.tags) >= m.max {
		return m, nil
	}

	for _, existing := range m.tags {
		if strings.EqualFold(existing, tag) {
			// Duplicate entry clears the buffer but changes nothing.
			m.input.SetValue("")
			return m, nil
		}
	}

	m.tags = append(m.tags, tag)
	m.input.SetValue("")
	return m, m.changed()
}

func (m Model) changed() tea.Cmd {
	tags := m.Tags()
	return func() tea.Msg {
		return TagsChangedMsg{Tags: tags}
	}
}

// View renders the tag row and the entry field.
func (m Model) View() string {
	var b strings.Builder

	if len(m.tags) > 0 {
		cells := make([]string, 0, len(m.tags))
		for _, tag := range m.tags {
			cells = append(cells, components.NewBadge(tag).WithColor(m.theme.Accent).Render())
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, cells...))
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())

	if len(m.tags) >= m.max {
		muted := lipgloss.NewStyle().Foreground(m.theme.Muted)
		b.WriteString("\n")
		b.WriteString(muted.Render("Tag limit reached"))
	}

	return b.String()
}
