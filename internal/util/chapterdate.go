package util

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var leadingInt = regexp.MustCompile(`^[+-]?\d+`)

// ParseChapterDate converts a chapter date label such as "5 days ago" or
// "Oct 7, 2023" into milliseconds since the Unix epoch. Labels that are empty
// or cannot be understood yield 0.
func ParseChapterDate(text string) int64 {
	return ParseChapterDateAt(text, time.Now())
}

// ParseChapterDateAt is ParseChapterDate with relative labels measured from now.
func ParseChapterDateAt(text string, now time.Time) int64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	if strings.Contains(text, "ago") {
		parts := strings.Fields(text)
		if len(parts) < 2 {
			return 0
		}
		return subtractUnits(now, leadingValue(parts[0]), parts[1]).UnixMilli()
	}

	parsed, err := dateparse.ParseAny(text)
	if err != nil {
		return 0
	}
	return parsed.UnixMilli()
}

// leadingValue reads the integer prefix of s. Anything unreadable counts as 0,
// which leaves the reference time untouched.
func leadingValue(s string) int {
	n, err := strconv.Atoi(leadingInt.FindString(s))
	if err != nil {
		return 0
	}
	return n
}

// subtractUnits moves now back by n of the unit named in label. Minutes and
// hours are fixed durations; days and longer use calendar arithmetic. An
// unknown unit returns now unchanged.
func subtractUnits(now time.Time, n int, label string) time.Time {
	unit := strings.ToLower(label)
	switch {
	case strings.Contains(unit, "min"):
		return subtractFixed(now, n, time.Minute)
	case strings.Contains(unit, "hour"):
		return subtractFixed(now, n, time.Hour)
	case strings.Contains(unit, "day"):
		return now.AddDate(0, 0, -n)
	case strings.Contains(unit, "week"):
		return now.AddDate(0, 0, -7*n)
	case strings.Contains(unit, "month"):
		return now.AddDate(0, -n, 0)
	case strings.Contains(unit, "year"):
		return now.AddDate(-n, 0, 0)
	}
	return now
}

// subtractFixed moves now back by n steps of d. Magnitudes that do not fit a
// time.Duration are split into whole days plus a remainder.
func subtractFixed(now time.Time, n int, d time.Duration) time.Time {
	limit := int64(math.MaxInt64 / d)
	if int64(n) <= limit && int64(n) >= -limit {
		return now.Add(-time.Duration(n) * d)
	}
	perDay := int(24 * time.Hour / d)
	return now.AddDate(0, 0, -(n / perDay)).Add(-time.Duration(n%perDay) * d)
}
