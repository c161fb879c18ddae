package datemath

import (
	"fmt"
	"time"
)

// TimeOfDay is a 24-hour wall clock time.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// String formats the time as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Valid reports whether the time is within 00:00..23:59.
func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

// Fragment is the (date, time) pair found in a piece of text. Either side may be nil.
type Fragment struct {
	// Date is midnight of the resolved day in the parser's location.
	Date *time.Time
	Time *TimeOfDay

	// DateMatched is true when a relative-day keyword or weekday name was found.
	DateMatched bool
}
