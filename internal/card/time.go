package card

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// FormatTime describes how long ago t happened relative to now.
// The buckets are checked from the largest unit to the smallest and the first match wins.
func FormatTime(t time.Time, now time.Time) string {
	if t.IsZero() {
		return "unknown"
	}

	diff := now.Sub(t)
	if diff < 0 {
		diff = 0
	}

	days := int64(diff / day)
	switch {
	case days > 30:
		return fmt.Sprintf("%d.%d.%d", t.Day(), int(t.Month()), t.Year())
	case diff > day:
		return fmt.Sprintf("%d days ago", days)
	case diff > time.Hour:
		return fmt.Sprintf("%d hours ago", int64(diff/time.Hour))
	case diff > time.Minute:
		return fmt.Sprintf("%d minutes ago", int64(diff/time.Minute))
	default:
		return fmt.Sprintf("%d seconds ago", int64(diff/time.Second))
	}
}
