package observability

import "context"

// Stage names the point in the parser pipeline where a failure happened.
type Stage string

const (
	StageNetwork Stage = "network"
	StageDecode  Stage = "decode"
	StageSchema  Stage = "schema"
)

// MaxRawLength caps the raw payload carried on a FailureEvent.
const MaxRawLength = 512

// FailureEvent describes one absorbed failure of the external parser.
type FailureEvent struct {
	Stage Stage
	Code  int // upstream HTTP status, 0 when none
	Err   string
	Raw   string
}

// Reporter receives failures and interpretation outcomes.
type Reporter interface {
	ReportFailure(ctx context.Context, ev FailureEvent)
	RecordOutcome(ctx context.Context, source string)
}

// Truncate shortens raw to MaxRawLength bytes without splitting a UTF-8 sequence.
func Truncate(raw string) string {
	if len(raw) <= MaxRawLength {
		return raw
	}
	cut := MaxRawLength
	for cut > 0 && raw[cut]&0xC0 == 0x80 {
		cut--
	}
	return raw[:cut]
}
