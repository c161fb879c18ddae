package intent

import (
	"fmt"
	"strings"
	"time"
)

// Kind is the intent tag of a Record.
type Kind string

const (
	KindAddTask     Kind = "add_task"
	KindAddEvent    Kind = "add_event"
	KindLogExpense  Kind = "log_expense"
	KindSetReminder Kind = "set_reminder"
	KindSaveMemory  Kind = "save_memory"
	KindShowDaily   Kind = "show_daily"
	KindShowWeekly  Kind = "show_weekly"
	KindGreeting    Kind = "greeting"
	KindHelp        Kind = "help"
	KindGeneral     Kind = "general"
)

// Kinds lists every intent tag in schema order.
var Kinds = []Kind{
	KindAddTask, KindAddEvent, KindLogExpense, KindSetReminder, KindSaveMemory,
	KindShowDaily, KindShowWeekly, KindGreeting, KindHelp, KindGeneral,
}

// ParseKind matches s against the known tags, ignoring case and surrounding space.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// RequiresTitle reports whether records of this kind carry a title.
func (k Kind) RequiresTitle() bool {
	switch k {
	case KindAddTask, KindAddEvent, KindLogExpense, KindSetReminder, KindSaveMemory:
		return true
	}
	return false
}

type Category string

const (
	CategoryFood     Category = "Food"
	CategoryTravel   Category = "Travel"
	CategoryRent     Category = "Rent"
	CategoryShopping Category = "Shopping"
	CategoryHealth   Category = "Health"
	CategoryOther    Category = "Other"
)

var Categories = []Category{
	CategoryFood, CategoryTravel, CategoryRent, CategoryShopping, CategoryHealth, CategoryOther,
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

type MemoryType string

const (
	MemoryGoal       MemoryType = "Goal"
	MemoryPreference MemoryType = "Preference"
	MemoryRule       MemoryType = "Rule"
	MemoryPerson     MemoryType = "Person"
	MemoryGeneral    MemoryType = "General"
)

var MemoryTypes = []MemoryType{
	MemoryGoal, MemoryPreference, MemoryRule, MemoryPerson, MemoryGeneral,
}

// ParseCategory returns the canonical category matching s case-insensitively.
func ParseCategory(s string) (Category, bool) { return matchEnum(s, Categories) }

// ParsePriority returns the canonical priority matching s case-insensitively.
func ParsePriority(s string) (Priority, bool) { return matchEnum(s, Priorities) }

// ParseMemoryType returns the canonical memory type matching s case-insensitively.
func ParseMemoryType(s string) (MemoryType, bool) { return matchEnum(s, MemoryTypes) }

func matchEnum[T ~string](s string, allowed []T) (T, bool) {
	s = strings.TrimSpace(s)
	for _, v := range allowed {
		if strings.EqualFold(string(v), s) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Date is a civil calendar date without a zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

const DateLayout = "2006-01-02"

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses YYYY-MM-DD and rejects dates that do not exist.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// AddDays returns the date n days later.
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// Clock is a 24-hour time of day.
type Clock struct {
	Hour   int
	Minute int
}

const ClockLayout = "15:04"

// NewClock validates hour 0-23 and minute 0-59.
func NewClock(hour, minute int) (Clock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("clock %d:%d out of range", hour, minute)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// ParseClock parses H:MM or HH:MM.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(s))
	if err != nil {
		return Clock{}, err
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
