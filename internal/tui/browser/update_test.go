package browser

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chisom-ui/chisom/internal/tui/colorpicker"
	"github.com/chisom-ui/chisom/internal/tui/searchbox"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(key(k))
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

// dispatch runs a command and feeds the resulting message back to the model,
// the way the tea runtime would.
func dispatch(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	updated, _ := m.Update(cmd())
	next, ok := updated.(Model)
	require.True(t, ok)
	return next
}

func TestQueryMsgFiltersCatalog(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	total := len(m.catalog)

	updated, _ := m.Update(searchbox.QueryMsg{Query: "color"})
	m = updated.(Model)

	assert.Less(t, len(m.catalog), total)
	for _, c := range m.catalog {
		assert.Contains(t, c.Name+" "+c.Description, "olor")
	}

	updated, _ = m.Update(searchbox.QueryMsg{Query: ""})
	m = updated.(Model)
	assert.Len(t, m.catalog, total)
}

func TestFilterClampsCursor(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.cursor = len(m.catalog) - 1

	updated, _ := m.Update(searchbox.QueryMsg{Query: "color-picker"})
	m = updated.(Model)

	require.NotEmpty(t, m.catalog)
	assert.Less(t, m.cursor, len(m.catalog))
}

func TestEnterOpensDetailView(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, cmd := press(t, m, "enter")
	m = dispatch(t, m, cmd)

	assert.Equal(t, ViewDetail, m.GetViewMode())
	assert.Equal(t, m.catalog[0].Name, m.selected)
}

func TestEscReturnsToList(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, cmd := press(t, m, "enter")
	m = dispatch(t, m, cmd)

	m, cmd = press(t, m, "esc")
	m = dispatch(t, m, cmd)

	assert.Equal(t, ViewList, m.GetViewMode())
	assert.Empty(t, m.selected)
}

func TestSelectionRoundTripsThroughMessages(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	m, cmd := press(t, m, "enter")
	require.NotNil(t, cmd)
	selected, ok := cmd().(ComponentSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, m.catalog[0].Name, selected.Name)

	m = dispatch(t, m, cmd)
	require.Equal(t, ViewDetail, m.GetViewMode())

	_, cmd = press(t, m, "esc")
	require.NotNil(t, cmd)
	_, ok = cmd().(BackToListMsg)
	require.True(t, ok)
}

func TestSlashFocusesSearch(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	require.False(t, m.search.Focused())

	m, _ = press(t, m, "/")
	assert.True(t, m.search.Focused())

	// Typed runes now edit the query instead of navigating.
	m, _ = press(t, m, "c")
	assert.Equal(t, "c", m.search.Value())
	assert.Equal(t, ViewList, m.GetViewMode())
}

func TestSearchEscClearsFilter(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = press(t, m, "/", "c")

	m, cmd := press(t, m, "esc")
	assert.False(t, m.search.Focused())
	require.NotNil(t, cmd)

	query, ok := cmd().(searchbox.QueryMsg)
	require.True(t, ok)
	assert.Equal(t, "", query.Query)
}

func TestDemoOpensForColorPicker(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	updated, _ := m.Update(searchbox.QueryMsg{Query: "color-picker"})
	m = updated.(Model)
	require.Len(t, m.catalog, 1)

	m, cmd := press(t, m, "d")
	assert.Equal(t, ViewDemo, m.GetViewMode())
	assert.Equal(t, "color-picker", m.demoName)
	assert.NotNil(t, cmd)
}

func TestDemoIgnoredForComponentsWithoutOne(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	updated, _ := m.Update(searchbox.QueryMsg{Query: "use-debounce"})
	m = updated.(Model)
	require.Len(t, m.catalog, 1)

	m, _ = press(t, m, "d")
	assert.Equal(t, ViewList, m.GetViewMode())
}

func TestDemoEscReturnsToDetail(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	updated, _ := m.Update(searchbox.QueryMsg{Query: "color-picker"})
	m = updated.(Model)

	m, cmd := press(t, m, "enter")
	m = dispatch(t, m, cmd)
	m, _ = press(t, m, "d")
	require.Equal(t, ViewDemo, m.GetViewMode())

	m, _ = press(t, m, "esc")
	assert.Equal(t, ViewDetail, m.GetViewMode())
	assert.Empty(t, m.demoName)
}

func TestDemoEventRecorded(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	updated, _ := m.Update(searchbox.QueryMsg{Query: "color-picker"})
	m = updated.(Model)
	m, _ = press(t, m, "d")

	updated, _ = m.Update(colorpicker.ChangedMsg{Color: "#EF4444"})
	m = updated.(Model)
	assert.Equal(t, "color: #EF4444", m.demoEvent)
}

func TestCatalogReloadedRefreshesAndRearms(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	events := make(chan struct{}, 1)
	m.events = events

	updated, cmd := m.Update(CatalogReloadedMsg{})
	m = updated.(Model)
	assert.NotEmpty(t, m.catalog)
	require.NotNil(t, cmd, "reload must re-arm the watcher wait")

	events <- struct{}{}
	assert.Equal(t, CatalogReloadedMsg{}, cmd())
}

func TestErrorBannerLifecycle(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	updated, _ := m.Update(ErrorMsg{Message: "boom"})
	m = updated.(Model)
	assert.True(t, m.showError)

	m, cmd := press(t, m, "x")
	require.NotNil(t, cmd)
	_, ok := cmd().(ClearErrorMsg)
	require.True(t, ok)

	m = dispatch(t, m, cmd)
	assert.False(t, m.showError)
	assert.Empty(t, m.errorMsg)
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	_, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestHelpToggles(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = press(t, m, "?")
	assert.Equal(t, ViewHelp, m.GetViewMode())

	m, _ = press(t, m, "esc")
	assert.Equal(t, ViewList, m.GetViewMode())
}
