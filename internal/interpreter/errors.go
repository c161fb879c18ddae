package interpreter

import "errors"

var (
	// ErrMalformedResponse means the parser text did not decode or violated the schema.
	ErrMalformedResponse = errors.New("malformed parser response")

	// ErrUnsupportedUtterance means the fallback could not classify the utterance.
	// It folds into the general intent and never reaches callers of Interpret.
	ErrUnsupportedUtterance = errors.New("unsupported utterance")

	ErrInvalidSummaryKind = errors.New("summary kind must be daily or weekly")
)
