package searchbox

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDebounce is the settle delay between the last keystroke and the
// emitted query.
const DefaultDebounce = 300 * time.Millisecond

// QueryMsg carries the settled search query.
type QueryMsg struct {
	Query string
}

// debounceMsg fires after the settle delay; stale sequences are ignored.
type debounceMsg struct {
	seq int
}

// Model is a debounced search input. Every keystroke updates the visible text
// immediately, but QueryMsg is only emitted once typing pauses.
type Model struct {
	input     textinput.Model
	debounce  time.Duration
	seq       int
	lastQuery string
}

// New creates a search box with the given debounce delay; zero or negative
// uses the default.
func New(debounce time.Duration) Model {
	input := textinput.New()
	input.Placeholder = "Search components..."
	input.Prompt = "/ "
	input.CharLimit = 64

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return Model{
		input:    input,
		debounce: debounce,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Focus gives the input keyboard focus.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.input.Blur()
}

// Focused reports whether the input has focus.
func (m Model) Focused() bool {
	return m.input.Focused()
}

// Value returns the raw buffer text, which may not have settled yet.
func (m Model) Value() string {
	return m.input.Value()
}

// Reset clears the buffer and immediately emits an empty query.
func (m *Model) Reset() tea.Cmd {
	m.input.SetValue("")
	m.seq++
	m.lastQuery = ""
	return func() tea.Msg {
		return QueryMsg{Query: ""}
	}
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if debounce, ok := msg.(debounceMsg); ok {
		// Only the timer belonging to the latest edit emits a query.
		if debounce.seq != m.seq {
			return m, nil
		}
		if query := m.input.Value(); query != m.lastQuery {
			m.lastQuery = query
			return m, func() tea.Msg {
				return QueryMsg{Query: query}
			}
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != before {
		m.seq++
		seq := m.seq
		return m, tea.Batch(cmd, tea.Tick(m.debounce, func(time.Time) tea.Msg {
			return debounceMsg{seq: seq}
		}))
	}

	return m, cmd
}

// View renders the input.
func (m Model) View() string {
	return m.input.View()
}
