package reminder

import (
	"errors"
	"time"
)

// Date layouts accepted from stored records. Records are written as
// YYYY-MM-DD by the API, but imported data has shown up in a few other
// shapes; anything unrecognized is treated as "no date".
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
}

var errUnparseableDate = errors.New("unparseable date")

// ParseDate parses a stored date string in the given location.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errUnparseableDate
}

// startOfDay normalizes t to local midnight.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay normalizes t to 23:59:59.999 on its date, so a record expiring
// "today" only counts as expired once the day has fully elapsed.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999e6, t.Location())
}

// daysUntil counts calendar days from now (normalized to midnight) to due,
// rounding partial days up.
func daysUntil(now, due time.Time) int {
	diff := due.Sub(startOfDay(now))
	days := diff / (24 * time.Hour)
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return int(days)
}

// DaysUntil counts calendar days from now to a stored date string. The
// second return is false when the date is missing or unparseable.
func DaysUntil(now time.Time, date string) (int, bool) {
	if date == "" {
		return 0, false
	}
	d, err := ParseDate(date, now.Location())
	if err != nil {
		return 0, false
	}
	return daysUntil(now, d), true
}

// parseAgeYears extracts the leading integer from a free-text age field
// ("40 years" -> 40). The second return is false when no leading digits
// exist, in which case the member is skipped by the birthday rule.
func parseAgeYears(s string) (int, bool) {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	start := i
	years := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		years = years*10 + int(s[i]-'0')
		i++
	}
	return years, i > start
}
