package colorpicker

import (
	"errors"
	"io"
	"math/rand"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chisom-ui/chisom/internal/hexcolor"
	"github.com/chisom-ui/chisom/internal/history"
	"github.com/chisom-ui/chisom/internal/logger"
)

func testRecent(t *testing.T) *history.RecentColors {
	t.Helper()
	log, err := logger.New(logger.Options{Level: "error", Writer: io.Discard})
	require.NoError(t, err)
	return history.NewRecentColors(history.NewMemStore(), 6, log)
}

func newPicker(t *testing.T, presets []string) Model {
	t.Helper()
	return New(presets, testRecent(t), WithCopyFunc(func(string) error { return nil }))
}

func typeString(m Model, s string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, r := range s {
		m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m, cmd
}

func keyMsg(s string) tea.Msg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+y":
		return tea.KeyMsg{Type: tea.KeyCtrlY}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNewFiltersInvalidPresets(t *testing.T) {
	t.Parallel()

	m := newPicker(t, []string{"#3B82F6", "red", "#fff", "#ef4444"})
	assert.Equal(t, []string{"#3B82F6", "#EF4444"}, m.presets)
}

func TestPartialTypedHexDoesNotConfirm(t *testing.T) {
	t.Parallel()

	m := newPicker(t, nil)
	m.input.SetValue("")

	m, _ = typeString(m, "#3b82f")

	assert.Equal(t, "#3b82f", m.input.Value())
	assert.Equal(t, DefaultColor, m.Color())
	assert.Empty(t, m.Recent())
}

func TestCompletedTypedHexConfirmsAndRecords(t *testing.T) {
	t.Parallel()

	m := newPicker(t, nil)
	m.input.SetValue("")

	m, _ = typeString(m, "#3b82f")
	m, cmd := typeString(m, "6")

	assert.Equal(t, "#3B82F6", m.Color())
	require.Equal(t, []string{"#3B82F6"}, m.Recent())

	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		found := false
		for _, c := range batch {
			if c == nil {
				continue
			}
			if changed, ok := c().(ChangedMsg); ok {
				assert.Equal(t, "#3B82F6", changed.Color)
				found = true
			}
		}
		assert.True(t, found, "expected a ChangedMsg in the batch")
	} else {
		changed, ok := msg.(ChangedMsg)
		require.True(t, ok)
		assert.Equal(t, "#3B82F6", changed.Color)
	}
}

func TestInvalidTypedTextNeverPropagates(t *testing.T) {
	t.Parallel()

	m := newPicker(t, nil)
	m.input.SetValue("")

	m, _ = typeString(m, "zzzzzz")
	m, _ = m.Update(keyMsg("enter").(tea.KeyMsg))

	assert.Equal(t, "zzzzzz", m.input.Value())
	assert.Equal(t, DefaultColor, m.Color())
	assert.Empty(t, m.Recent())
}

func TestSwatchSelectionConfirms(t *testing.T) {
	t.Parallel()

	m := newPicker(t, []string{"#EF4444", "#10B981"})

	m, _ = m.Update(keyMsg("right").(tea.KeyMsg))
	m, _ = m.Update(keyMsg("right").(tea.KeyMsg))
	m, _ = m.Update(keyMsg("enter").(tea.KeyMsg))

	assert.Equal(t, "#10B981", m.Color())
	assert.Equal(t, []string{"#10B981"}, m.Recent())
}

func TestSurpriseKeyConfirmsValidColor(t *testing.T) {
	t.Parallel()

	m := New(nil, testRecent(t),
		WithCopyFunc(func(string) error { return nil }),
		WithRand(rand.New(rand.NewSource(42))))

	m, _ = m.Update(keyMsg("ctrl+r").(tea.KeyMsg))

	assert.True(t, hexcolor.Valid(m.Color()))
	require.Len(t, m.Recent(), 1)
	assert.Equal(t, m.Color(), m.Recent()[0])
}

func TestFormatCycling(t *testing.T) {
	t.Parallel()

	m := newPicker(t, nil)
	assert.Equal(t, hexcolor.FormatHex, m.Format())

	m, _ = m.Update(keyMsg("tab").(tea.KeyMsg))
	assert.Equal(t, hexcolor.FormatRGB, m.Format())

	m, _ = m.Update(keyMsg("tab").(tea.KeyMsg))
	assert.Equal(t, hexcolor.FormatHSL, m.Format())

	m, _ = m.Update(keyMsg("tab").(tea.KeyMsg))
	assert.Equal(t, hexcolor.FormatHex, m.Format())
}

func TestCopySuccessSetsAcknowledgment(t *testing.T) {
	t.Parallel()

	var copied string
	m := New(nil, testRecent(t), WithCopyFunc(func(text string) error {
		copied = text
		return nil
	}))

	m, cmd := m.Update(keyMsg("ctrl+y").(tea.KeyMsg))
	require.NotNil(t, cmd)

	result, ok := cmd().(copyResultMsg)
	require.True(t, ok)
	require.NoError(t, result.err)
	assert.Equal(t, DefaultColor, copied)

	m, expireCmd := m.Update(result)
	assert.True(t, m.Copied())
	require.NotNil(t, expireCmd)
}

func TestCopyFailureLeavesIndicatorUnset(t *testing.T) {
	t.Parallel()

	m := New(nil, testRecent(t), WithCopyFunc(func(string) error {
		return errors.New("clipboard unavailable")
	}))

	m, cmd := m.Update(keyMsg("ctrl+y").(tea.KeyMsg))
	require.NotNil(t, cmd)

	result := cmd().(copyResultMsg)
	require.Error(t, result.err)

	m, _ = m.Update(result)
	assert.False(t, m.Copied())
}

func TestSecondCopyRestartsDelay(t *testing.T) {
	t.Parallel()

	m := newPicker(t, nil)

	m, cmd := m.Update(keyMsg("ctrl+y").(tea.KeyMsg))
	firstResult := cmd().(copyResultMsg)
	m, _ = m.Update(firstResult)
	require.True(t, m.Copied())

	m, cmd = m.Update(keyMsg("ctrl+y").(tea.KeyMsg))
	secondResult := cmd().(copyResultMsg)
	m, _ = m.Update(secondResult)
	require.True(t, m.Copied())

	// The first timer fires with a stale sequence and must be ignored.
	m, _ = m.Update(copyExpiredMsg{seq: firstResult.seq})
	assert.True(t, m.Copied())

	// The live timer clears the flag.
	m, _ = m.Update(copyExpiredMsg{seq: secondResult.seq})
	assert.False(t, m.Copied())
}

func TestCopyUsesActiveFormat(t *testing.T) {
	t.Parallel()

	var copied string
	m := New(nil, testRecent(t), WithCopyFunc(func(text string) error {
		copied = text
		return nil
	}))

	m, _ = m.Update(keyMsg("tab").(tea.KeyMsg)) // rgb
	_, cmd := m.Update(keyMsg("ctrl+y").(tea.KeyMsg))
	_ = cmd()

	assert.Equal(t, "rgb(59, 130, 246)", copied)
}

func TestReselectingSwatchKeepsHistoryDeduplicated(t *testing.T) {
	t.Parallel()

	m := newPicker(t, []string{"#EF4444"})

	m, _ = m.Update(keyMsg("right").(tea.KeyMsg))
	m, _ = m.Update(keyMsg("enter").(tea.KeyMsg))
	m, _ = m.Update(keyMsg("enter").(tea.KeyMsg))

	assert.Equal(t, []string{"#EF4444"}, m.Recent())
}

func TestViewRendersWithoutPanic(t *testing.T) {
	t.Parallel()

	m := newPicker(t, []string{"#EF4444"})
	m, _ = m.Update(keyMsg("right").(tea.KeyMsg))
	m, _ = m.Update(keyMsg("enter").(tea.KeyMsg))

	out := m.View()
	assert.Contains(t, out, "#EF4444")
}
