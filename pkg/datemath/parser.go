package datemath

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parser resolves relative date and time expressions against a reference time.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Kolkata"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Resolve scans text for a relative day and a clock time. Date and time are
// independent passes; either, both or neither may be found. It never fails.
func (p *Parser) Resolve(text string, now time.Time) Fragment {
	lower := strings.ToLower(text)
	now = now.In(p.location)

	var frag Fragment
	if offset, ok := p.dayOffset(lower, now); ok {
		d := p.StartOfDay(now).AddDate(0, 0, offset)
		frag.Date = &d
		frag.DateMatched = true
	}

	tod, ok := scanClock(lower)
	if !ok {
		tod, ok = scanDayPart(lower)
	}
	if !ok {
		return frag
	}
	frag.Time = &tod

	// A bare time refers to its next occurrence.
	if !frag.DateMatched {
		today := p.StartOfDay(now)
		at := time.Date(today.Year(), today.Month(), today.Day(), tod.Hour, tod.Minute, 0, 0, p.location)
		if at.Before(now) {
			today = today.AddDate(0, 0, 1)
		}
		frag.Date = &today
	}

	return frag
}

// dayOffset returns how many days ahead of now the text points to.
func (p *Parser) dayOffset(lower string, now time.Time) (int, bool) {
	for _, rd := range relativeDays {
		if rd.pattern.MatchString(lower) {
			return rd.offset, true
		}
	}

	m := weekdayPattern.FindStringSubmatch(lower)
	if m == nil {
		return 0, false
	}

	target := weekdays[m[2]]
	daysAhead := int(target - now.Weekday())
	if daysAhead <= 0 {
		daysAhead += 7
	}
	// "next saturday" skips the imminent saturday.
	if m[1] == "next" && daysAhead < 7 {
		daysAhead += 7
	}
	return daysAhead, true
}

// scanClock finds an explicit clock expression. Forms with am/pm or minutes win;
// a bare number only counts when introduced by "at".
func scanClock(lower string) (TimeOfDay, bool) {
	var bare *TimeOfDay
	for _, m := range clockPattern.FindAllStringSubmatch(lower, -1) {
		at, hourStr, minStr, meridiem := m[1], m[2], m[3], m[4]

		hour, err := strconv.Atoi(hourStr)
		if err != nil {
			continue
		}
		minute := 0
		if minStr != "" {
			if minute, err = strconv.Atoi(minStr); err != nil {
				continue
			}
		}

		tod, ok := to24Hour(hour, minute, meridiem)
		if !ok {
			continue
		}
		if meridiem != "" || minStr != "" {
			return tod, true
		}
		if at != "" && bare == nil {
			bare = &tod
		}
	}

	if bare != nil {
		return *bare, true
	}
	return TimeOfDay{}, false
}

// to24Hour applies the 12 to 24 hour rule: pm adds 12 below noon, 12am is midnight.
func to24Hour(hour, minute int, meridiem string) (TimeOfDay, bool) {
	switch meridiem {
	case "am", "pm":
		if hour < 1 || hour > 12 {
			return TimeOfDay{}, false
		}
		if meridiem == "pm" && hour < 12 {
			hour += 12
		}
		if meridiem == "am" && hour == 12 {
			hour = 0
		}
	}

	tod := TimeOfDay{Hour: hour, Minute: minute}
	return tod, tod.Valid()
}

func scanDayPart(lower string) (TimeOfDay, bool) {
	for _, dp := range dayParts {
		if dp.pattern.MatchString(lower) {
			return dp.time, true
		}
	}
	return TimeOfDay{}, false
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
