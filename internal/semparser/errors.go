package semparser

import "errors"

var (
	// ErrUnavailable means the parser is disabled or has no credential. It is a
	// gate, not a failure: no request is made.
	ErrUnavailable = errors.New("semantic parser unavailable")

	// ErrNetwork covers transport errors, non-2xx responses and timeouts.
	ErrNetwork = errors.New("semantic parser network failure")

	// ErrNoText means the response decoded but carried no candidate text.
	ErrNoText = errors.New("semantic parser returned no text")
)
