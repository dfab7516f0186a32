package colorpicker

import (
	"math/rand"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chisom-ui/chisom/internal/components"
	"github.com/chisom-ui/chisom/internal/hexcolor"
	"github.com/chisom-ui/chisom/internal/history"
)

// DefaultColor is the confirmed color before any selection.
const DefaultColor = "#3B82F6"

// CopyFunc writes text to the clipboard. Swappable so tests run without a
// display server.
type CopyFunc func(text string) error

// ChangedMsg is emitted whenever the confirmed color changes. It always
// carries a valid uppercase hex value.
type ChangedMsg struct {
	Color string
}

// copyResultMsg reports the outcome of an asynchronous clipboard write.
type copyResultMsg struct {
	seq int
	err error
}

// copyExpiredMsg clears the copied indicator after the acknowledgment delay.
type copyExpiredMsg struct {
	seq int
}

// Model is the color picker component. The confirmed color is always a valid
// uppercase hex string; the text input may transiently hold anything.
type Model struct {
	input   textinput.Model
	color   string
	format  hexcolor.Format
	presets []string
	recent  *history.RecentColors

	// cursor indexes the combined preset+recent swatch row; -1 means the
	// text input has focus.
	cursor int

	copied  bool
	copySeq int
	copyFn  CopyFunc

	rng   *rand.Rand
	theme components.Theme
	width int
}

// Option customizes a Model at construction time.
type Option func(*Model)

// WithCopyFunc replaces the clipboard writer.
func WithCopyFunc(fn CopyFunc) Option {
	return func(m *Model) {
		m.copyFn = fn
	}
}

// WithRand replaces the randomness source behind the surprise-color key.
func WithRand(rng *rand.Rand) Option {
	return func(m *Model) {
		m.rng = rng
	}
}

// WithTheme sets the rendering theme.
func WithTheme(theme components.Theme) Option {
	return func(m *Model) {
		m.theme = theme
	}
}

// New creates a color picker. Presets that fail hex validation are filtered
// out rather than rendered as broken swatches.
func New(presets []string, recent *history.RecentColors, opts ...Option) Model {
	input := textinput.New()
	input.Placeholder = "#RRGGBB"
	input.CharLimit = 7
	input.Width = 12
	input.Focus()

	var validPresets []string
	for _, preset := range presets {
		if hexcolor.Valid(preset) {
			validPresets = append(validPresets, hexcolor.Normalize(preset))
		}
	}

	m := Model{
		input:   input,
		color:   DefaultColor,
		format:  hexcolor.FormatHex,
		presets: validPresets,
		recent:  recent,
		cursor:  -1,
		copyFn:  clipboard.WriteAll,
		theme:   components.DefaultTheme(),
		width:   60,
	}
	m.input.SetValue(m.color)

	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Color returns the confirmed color as uppercase hex.
func (m Model) Color() string {
	return m.color
}

// Format returns the active display format.
func (m Model) Format() hexcolor.Format {
	return m.format
}

// Copied reports whether the copy acknowledgment is showing.
func (m Model) Copied() bool {
	return m.copied
}

// Recent returns the recent color list, most recent first.
func (m Model) Recent() []string {
	if m.recent == nil {
		return nil
	}
	return m.recent.Colors()
}

// SetWidth adjusts the rendered width.
func (m *Model) SetWidth(width int) {
	if width > 0 {
		m.width = width
	}
}

// swatches returns the selectable swatch row: presets followed by recents.
func (m Model) swatches() []string {
	return append(append([]string{}, m.presets...), m.Recent()...)
}
