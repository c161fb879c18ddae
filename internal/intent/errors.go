package intent

import "errors"

var (
	ErrUnknownIntent = errors.New("unknown intent")
)

// Field names as they appear on the wire.
const (
	FieldIntent     = "intent"
	FieldTitle      = "title"
	FieldAmount     = "amount"
	FieldCategory   = "category"
	FieldDate       = "date"
	FieldTime       = "time"
	FieldPriority   = "priority"
	FieldMemoryType = "memoryType"
	FieldReply      = "reply"
)

// Issue reasons.
const (
	ReasonNotInEnum   = "not in enumeration"
	ReasonUnparsable  = "unparsable"
	ReasonNegative    = "negative"
	ReasonNotAllowed  = "not allowed for intent"
	ReasonMissing     = "missing"
	ReasonInvalidType = "invalid type"
)

// Issue describes a field dropped or flagged while building a Record.
type Issue struct {
	Field  string `json:"field"`
	Value  string `json:"value,omitempty"`
	Reason string `json:"reason"`
}

func (i Issue) String() string {
	if i.Value == "" {
		return i.Field + ": " + i.Reason
	}
	return i.Field + "=" + i.Value + ": " + i.Reason
}
