package usecase

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"friday-assistant/internal/intent"
)

// ParseFailure carries the raw model text that could not be decoded.
type ParseFailure struct {
	Raw string
	Err error
}

func (f *ParseFailure) Error() string {
	return fmt.Sprintf("parse failure: %v", f.Err)
}

func (f *ParseFailure) Unwrap() error {
	return f.Err
}

var (
	openFence  = regexp.MustCompile("^```[A-Za-z0-9_-]*[ \t]*\r?\n?")
	closeFence = regexp.MustCompile("\r?\n?```$")
)

// stripFence removes one optional leading and trailing code fence.
func stripFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = openFence.ReplaceAllString(text, "")
	text = closeFence.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// normalize decodes model text into the loose wire record. Text that does not
// decode gets one repair pass before a *ParseFailure is returned.
func normalize(text string) (intent.Raw, error) {
	cleaned := stripFence(text)

	var raw intent.Raw
	err := json.Unmarshal([]byte(cleaned), &raw)
	if err == nil {
		return raw, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(cleaned)
	if repairErr == nil {
		var fixed intent.Raw
		if json.Unmarshal([]byte(repaired), &fixed) == nil {
			return fixed, nil
		}
	}

	return intent.Raw{}, &ParseFailure{Raw: text, Err: err}
}
