package domain

import (
	"fmt"
	"time"
)

// FormatDuration renders seconds as m:ss, or h:mm:ss from one hour up.
func FormatDuration(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatViews renders a view counter as a compact label.
func FormatViews(count int) string {
	switch {
	case count >= 1_000_000:
		return fmt.Sprintf("%.1fM views", float64(count)/1_000_000)
	case count >= 1_000:
		return fmt.Sprintf("%.1fK views", float64(count)/1_000)
	default:
		return fmt.Sprintf("%d views", count)
	}
}

// FormatTimeAgo renders t relative to now ("3 hours ago"); dates older
// than a week fall back to the calendar date.
func FormatTimeAgo(t, now time.Time) string {
	diff := now.Sub(t)
	mins := int(diff.Minutes())
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	switch {
	case mins < 1:
		return "just now"
	case mins < 60:
		return plural(mins, "minute") + " ago"
	case hours < 24:
		return plural(hours, "hour") + " ago"
	case days == 1:
		return "yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return t.Format("Jan 2, 2006")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
