package semparser

import "strings"

// Settings is the per-call configuration snapshot for the parser.
type Settings struct {
	Credential string
	Enabled    bool
}

// Available is true only when the parser is enabled and the credential is
// non-blank.
func (s Settings) Available() bool {
	return s.Enabled && strings.TrimSpace(s.Credential) != ""
}

// Generation parameters for every parser request.
const (
	Temperature     = 0.2
	MaxOutputTokens = 1024
)
