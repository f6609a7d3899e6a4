package stats

import (
	"fmt"
	"strings"
	"time"
)

// FormatCurrency renders an amount as USD, e.g. $1,234.56.
func FormatCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := fmt.Sprintf("%.2f", amount)
	dot := strings.Index(s, ".")
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "$" + b.String() + fracPart
}

// FormatDate renders a date for display: "Jan 15" short, or
// "January 15, 2024" long.
func FormatDate(t time.Time, long bool) string {
	t = t.UTC()
	if long {
		return t.Format("January 2, 2006")
	}
	return t.Format("Jan 2")
}

// RelativeDate renders how long ago a date was relative to now:
// Today, Yesterday, N days/weeks/months/years ago.
func RelativeDate(t, now time.Time) string {
	days := int(now.UTC().Sub(t.UTC()).Hours() / 24)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	case days < 365:
		return fmt.Sprintf("%d months ago", days/30)
	default:
		return fmt.Sprintf("%d years ago", days/365)
	}
}
