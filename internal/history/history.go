package history

import (
	"strings"

	"github.com/chisom-ui/chisom/internal/hexcolor"
)

// DefaultMax is the bound on the recent color list when none is configured.
const DefaultMax = 6

// Record applies the most-recently-used policy to list: an invalid color is a
// no-op, an existing entry equal under case-insensitive comparison is removed,
// the normalized color is prepended, and the result is truncated to max.
func Record(list []string, color string, max int) []string {
	if max <= 0 {
		max = DefaultMax
	}
	if !hexcolor.Valid(color) {
		return list
	}

	normalized := hexcolor.Normalize(color)
	result := make([]string, 0, len(list)+1)
	result = append(result, normalized)
	for _, existing := range list {
		if strings.EqualFold(existing, normalized) {
			continue
		}
		result = append(result, existing)
	}

	if len(result) > max {
		result = result[:max]
	}
	return result
}
