package colorpicker

import (
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chisom-ui/chisom/internal/hexcolor"
)

// copiedDuration is how long the copy acknowledgment stays visible.
const copiedDuration = 2000 * time.Millisecond

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case copyResultMsg:
		if msg.seq != m.copySeq {
			return m, nil
		}
		if msg.err != nil {
			// Clipboard is a convenience; the indicator simply stays unset.
			return m, nil
		}
		m.copied = true
		return m, expireCopyCmd(msg.seq)

	case copyExpiredMsg:
		// A newer copy restarted the delay; ignore the stale timer.
		if msg.seq != m.copySeq {
			return m, nil
		}
		m.copied = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.format = nextFormat(m.format)
		return m, nil

	case "ctrl+y":
		return m.startCopy()

	case "ctrl+r":
		// Stand-in for the native picker: it only ever emits valid colors.
		return m.confirm(randomHex(m.rng))

	case "left":
		if m.cursor >= 0 {
			m.cursor--
			if m.cursor < 0 {
				m.input.Focus()
			}
		}
		return m, nil

	case "right":
		if count := len(m.swatches()); m.cursor < count-1 {
			m.cursor++
			m.input.Blur()
		}
		return m, nil

	case "enter", " ":
		if swatches := m.swatches(); m.cursor >= 0 && m.cursor < len(swatches) {
			return m.confirm(swatches[m.cursor])
		}
		if msg.String() == "enter" {
			return m.confirmTyped()
		}
	}

	if m.cursor >= 0 {
		// Swatch row has focus; don't leak keys into the buffer.
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Typing confirms as soon as the buffer holds a complete valid hex.
	// Partial or invalid text stays visible in the buffer and changes nothing.
	if rgb, err := hexcolor.Parse(m.input.Value()); err == nil {
		if next := rgb.Hex(); next != m.color {
			confirmed, confirmCmd := m.confirm(next)
			// Keep the user's raw text while typing continues.
			confirmed.input = m.input
			return confirmed, tea.Batch(cmd, confirmCmd)
		}
	}

	return m, cmd
}

// confirm transitions to a new confirmed color. Invalid input leaves the
// model untouched: there is no externally visible invalid state.
func (m Model) confirm(color string) (Model, tea.Cmd) {
	if !hexcolor.Valid(hexcolor.Normalize(color)) {
		return m, nil
	}

	m.color = hexcolor.Normalize(color)
	m.input.SetValue(m.color)
	if m.recent != nil {
		m.recent.Add(m.color)
	}

	changed := m.color
	return m, func() tea.Msg {
		return ChangedMsg{Color: changed}
	}
}

// confirmTyped applies the buffer on enter, if it parses.
func (m Model) confirmTyped() (Model, tea.Cmd) {
	rgb, err := hexcolor.Parse(m.input.Value())
	if err != nil {
		return m, nil
	}
	return m.confirm(rgb.Hex())
}

// startCopy writes the display string asynchronously and tags the attempt so
// a second copy before expiry restarts the acknowledgment delay.
func (m Model) startCopy() (Model, tea.Cmd) {
	m.copySeq++
	seq := m.copySeq
	text := hexcolor.Display(m.color, m.format)
	copyFn := m.copyFn

	return m, func() tea.Msg {
		return copyResultMsg{seq: seq, err: copyFn(text)}
	}
}

func expireCopyCmd(seq int) tea.Cmd {
	return tea.Tick(copiedDuration, func(time.Time) tea.Msg {
		return copyExpiredMsg{seq: seq}
	})
}

func randomHex(rng *rand.Rand) string {
	n := rand.Intn(1 << 24)
	if rng != nil {
		n = rng.Intn(1 << 24)
	}
	return fmt.Sprintf("#%06X", n)
}

func nextFormat(format hexcolor.Format) hexcolor.Format {
	switch format {
	case hexcolor.FormatHex:
		return hexcolor.FormatRGB
	case hexcolor.FormatRGB:
		return hexcolor.FormatHSL
	default:
		return hexcolor.FormatHex
	}
}
