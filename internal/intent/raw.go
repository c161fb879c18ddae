package intent

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Value holds one loosely typed JSON field from model output.
type Value struct {
	raw json.RawMessage
}

func (v *Value) UnmarshalJSON(b []byte) error {
	v.raw = append(v.raw[:0], b...)
	return nil
}

// Present reports whether the field was sent with a non-null value.
func (v Value) Present() bool {
	b := bytes.TrimSpace(v.raw)
	return len(b) > 0 && !bytes.Equal(b, []byte("null"))
}

// Text returns string values unquoted and numbers as their literal text.
func (v Value) Text() (string, bool) {
	if !v.Present() {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v.raw, &s); err == nil {
		return s, true
	}
	var n json.Number
	if err := json.Unmarshal(v.raw, &n); err == nil {
		return n.String(), true
	}
	return "", false
}

// Number accepts a JSON number or a string holding one. NaN and infinities are
// rejected even though strconv parses them.
func (v Value) Number() (float64, bool) {
	s, ok := v.Text()
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !finite(f) {
		return 0, false
	}
	return f, true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (v Value) literal() string {
	return string(bytes.TrimSpace(v.raw))
}

// Raw is the decode target for model output following the wire schema.
type Raw struct {
	Intent     Value `json:"intent"`
	Title      Value `json:"title"`
	Amount     Value `json:"amount"`
	Category   Value `json:"category"`
	Date       Value `json:"date"`
	Time       Value `json:"time"`
	Priority   Value `json:"priority"`
	MemoryType Value `json:"memoryType"`
	Reply      Value `json:"reply"`
}

// Decode converts raw into a kind and typed fields. Values that do not parse or
// fall outside their enumeration are dropped and reported. An unrecognized or
// missing tag is ErrUnknownIntent.
func Decode(raw Raw) (Kind, Fields, string, []Issue, error) {
	tag, _ := raw.Intent.Text()
	kind, ok := ParseKind(tag)
	if !ok {
		return "", Fields{}, "", nil, ErrUnknownIntent
	}

	var (
		f      Fields
		issues []Issue
	)
	drop := func(field string, v Value, reason string) {
		issues = append(issues, Issue{Field: field, Value: v.literal(), Reason: reason})
	}

	if raw.Title.Present() {
		if s, ok := raw.Title.Text(); ok {
			f.Title = strings.TrimSpace(s)
		} else {
			drop(FieldTitle, raw.Title, ReasonInvalidType)
		}
	}
	if raw.Amount.Present() {
		if n, ok := raw.Amount.Number(); ok {
			f.Amount = &n
		} else {
			drop(FieldAmount, raw.Amount, ReasonUnparsable)
		}
	}
	if raw.Category.Present() {
		if c, ok := ParseCategory(textOf(raw.Category)); ok {
			f.Category = &c
		} else {
			drop(FieldCategory, raw.Category, ReasonNotInEnum)
		}
	}
	if raw.Date.Present() {
		if d, err := ParseDate(textOf(raw.Date)); err == nil {
			f.Date = &d
		} else {
			drop(FieldDate, raw.Date, ReasonUnparsable)
		}
	}
	if raw.Time.Present() {
		if c, err := ParseClock(textOf(raw.Time)); err == nil {
			f.Time = &c
		} else {
			drop(FieldTime, raw.Time, ReasonUnparsable)
		}
	}
	if raw.Priority.Present() {
		if p, ok := ParsePriority(textOf(raw.Priority)); ok {
			f.Priority = &p
		} else {
			drop(FieldPriority, raw.Priority, ReasonNotInEnum)
		}
	}
	if raw.MemoryType.Present() {
		if m, ok := ParseMemoryType(textOf(raw.MemoryType)); ok {
			f.MemoryType = &m
		} else {
			drop(FieldMemoryType, raw.MemoryType, ReasonNotInEnum)
		}
	}

	reply, _ := raw.Reply.Text()
	return kind, f, strings.TrimSpace(reply), issues, nil
}

// Sanitize decodes raw and builds the record in one step.
func Sanitize(raw Raw) (Record, []Issue, error) {
	kind, f, reply, issues, err := Decode(raw)
	if err != nil {
		return Record{}, nil, err
	}
	rec, more := Build(kind, f, reply)
	return rec, append(issues, more...), nil
}

func textOf(v Value) string {
	s, _ := v.Text()
	return s
}
