package datemath

import (
	"regexp"
	"time"
)

// relativeDays is scanned in order; the first match wins. "day after tomorrow" is
// listed before "tomorrow" because the longer phrase contains the shorter one.
var relativeDays = []struct {
	pattern *regexp.Regexp
	offset  int
}{
	{regexp.MustCompile(`\btoday\b`), 0},
	{regexp.MustCompile(`\bday after tomorrow\b`), 2},
	{regexp.MustCompile(`\btomorrow\b`), 1},
	{regexp.MustCompile(`\bnext week\b`), 7},
}

var (
	weekdayPattern = regexp.MustCompile(`\b(?:(next|this|on)\s+)?(sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b`)
	clockPattern   = regexp.MustCompile(`(?:\b(at)\s+)?\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// dayParts maps coarse day-part words to a clock time, checked in order. Words
// match whole, so "fortnight" and "noonday" are not day parts.
var dayParts = []struct {
	pattern *regexp.Regexp
	time    TimeOfDay
}{
	{regexp.MustCompile(`\bmornings?\b`), TimeOfDay{Hour: 9}},
	{regexp.MustCompile(`\b(?:afternoons?|noon)\b`), TimeOfDay{Hour: 12}},
	{regexp.MustCompile(`\bevenings?\b`), TimeOfDay{Hour: 18}},
	{regexp.MustCompile(`\b(?:tonight|nights?)\b`), TimeOfDay{Hour: 21}},
}
