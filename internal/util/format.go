// Package util holds small helpers shared by the operations and the CLI.
package util

import (
	"fmt"
	"time"
)

// FormatDistance renders a restaurant distance for listings. Unknown distances
// render as "-".
func FormatDistance(km *float64) string {
	switch {
	case km == nil:
		return "-"
	case *km < 1:
		return fmt.Sprintf("%d m", int(*km*1000+0.5))
	default:
		return fmt.Sprintf("%.1f km", *km)
	}
}

// FormatRemaining renders how long is left until deadline, to the minute.
func FormatRemaining(deadline, now time.Time) string {
	left := deadline.Sub(now).Truncate(time.Minute)
	if left <= 0 {
		return "expired"
	}
	if left < time.Hour {
		return fmt.Sprintf("%dm", int(left.Minutes()))
	}

	return fmt.Sprintf("%dh%02dm", int(left.Hours()), int(left.Minutes())%60)
}
