package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"friday-assistant/internal/intent"
)

// Turn is one prior message of the conversation.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// SystemInstruction grounds the model in now and fixes the output schema.
func SystemInstruction(now time.Time) string {
	return fmt.Sprintf(intentSystemTemplate,
		now.Format(time.RFC3339),
		now.Weekday().String(),
		alternatives(intent.Kinds),
		alternatives(intent.Categories),
		alternatives(intent.Priorities),
		alternatives(intent.MemoryTypes),
	)
}

// IntentPayload is the user part sent alongside SystemInstruction. Without
// turns it is the bare utterance; with turns the last MaxChatTurns precede it as
// context.
func IntentPayload(utterance string, turns []Turn) string {
	utterance = strings.TrimSpace(utterance)
	if len(turns) == 0 {
		return utterance
	}

	var b strings.Builder
	writeHistory(&b, turns)
	fmt.Fprintf(&b, "Message to parse: %s", utterance)
	return b.String()
}

// ChatPrompt renders at most the last MaxChatTurns turns, oldest first, followed by
// the new utterance.
func ChatPrompt(utterance string, turns []Turn) string {
	var b strings.Builder
	writeHistory(&b, turns)
	fmt.Fprintf(&b, "%s: %s\n\n%s:", speakerUser, strings.TrimSpace(utterance), speakerAssistant)
	return b.String()
}

func writeHistory(b *strings.Builder, turns []Turn) {
	if len(turns) > MaxChatTurns {
		turns = turns[len(turns)-MaxChatTurns:]
	}
	if len(turns) == 0 {
		return
	}
	b.WriteString("Recent conversation:\n")
	for _, t := range turns {
		fmt.Fprintf(b, "%s: %s\n", speaker(t.Role), t.Text)
	}
	b.WriteString("\n")
}

// SummarySystemInstruction asks for a short prose summary of the given kind
// ("daily" or "weekly").
func SummarySystemInstruction(kind string) string {
	return fmt.Sprintf(summarySystemTemplate, kind)
}

// SummaryPayload embeds data as indented JSON.
func SummaryPayload(kind string, data any) (string, error) {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("prompt: marshal summary data: %w", err)
	}
	return fmt.Sprintf(summaryPayloadTemplate, kind, b), nil
}

func speaker(role string) string {
	if role == RoleUser {
		return speakerUser
	}
	return speakerAssistant
}

func alternatives[T ~string](values []T) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + string(v) + `"`
	}
	return strings.Join(quoted, " | ")
}
