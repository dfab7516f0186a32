package history

import (
	"github.com/chisom-ui/chisom/internal/logger"
)

// RecentColors owns the bounded most-recently-used list of confirmed colors.
// History is a convenience: persistence failures are logged and swallowed so
// that loss of history never blocks color selection.
type RecentColors struct {
	store  Store
	log    *logger.Logger
	max    int
	colors []string
}

// NewRecentColors loads the persisted list once and returns the wrapper. A
// missing or unparsable persisted list yields an empty history, never an error.
func NewRecentColors(store Store, max int, log *logger.Logger) *RecentColors {
	if max <= 0 {
		max = DefaultMax
	}

	r := &RecentColors{store: store, log: log, max: max}

	colors, err := store.Load()
	if err != nil {
		log.Warn(err, "starting with empty color history")
		colors = nil
	}

	// Sanitize persisted entries: hand-edited files may carry invalid or
	// duplicate values, and the list invariants must hold regardless.
	for i := len(colors) - 1; i >= 0; i-- {
		r.colors = Record(r.colors, colors[i], max)
	}

	return r
}

// Colors returns a copy of the list, most recent first.
func (r *RecentColors) Colors() []string {
	result := make([]string, len(r.colors))
	copy(result, r.colors)
	return result
}

// Max returns the configured bound.
func (r *RecentColors) Max() int {
	return r.max
}

// Add records a confirmed color and persists the full list. Invalid colors are
// ignored; save failures are logged and swallowed.
func (r *RecentColors) Add(color string) {
	updated := Record(r.colors, color, r.max)
	if equal(updated, r.colors) {
		return
	}

	r.colors = updated
	if err := r.store.Save(r.colors); err != nil {
		r.log.Warn(err, "failed to persist color history")
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
