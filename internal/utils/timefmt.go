package utils

import (
	"time"
)

const (
	recentTimestampLayout = "Jan _2 15:04"
	olderTimestampLayout  = "Jan _2  2006"
	// recentWindow approximates six months, the cutoff long listings use
	// before switching from clock time to year.
	recentWindow = 365 * 24 * time.Hour / 2
)

// FormatListingTimestamp formats a modification time relative to now the way
// long directory listings do. Times older than six months or in the future
// show the year instead of the clock time.
func FormatListingTimestamp(value time.Time, now time.Time) string {
	if value.IsZero() {
		return ""
	}
	local := value.In(time.Local)
	if local.After(now) || now.Sub(local) > recentWindow {
		return local.Format(olderTimestampLayout)
	}
	return local.Format(recentTimestampLayout)
}
