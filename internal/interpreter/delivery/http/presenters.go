package http

import (
	"strings"
	"time"

	"friday-assistant/internal/intent"
	"friday-assistant/internal/interpreter"
	"friday-assistant/internal/prompt"
	"friday-assistant/internal/semparser"
)

// --- Request DTOs ---

type turnReq struct {
	Role string `json:"role" binding:"required,oneof=user assistant"`
	Text string `json:"text" binding:"max=4000"`
}

func toTurns(reqs []turnReq, limit int) []prompt.Turn {
	if limit > 0 && len(reqs) > limit {
		reqs = reqs[len(reqs)-limit:]
	}
	turns := make([]prompt.Turn, len(reqs))
	for i, t := range reqs {
		turns[i] = prompt.Turn{Role: t.Role, Text: t.Text}
	}
	return turns
}

type interpretReq struct {
	Utterance string     `json:"utterance" binding:"required,max=2000"`
	Now       *time.Time `json:"now"`
	Turns     []turnReq  `json:"turns" binding:"max=50,dive"`
}

func (r interpretReq) validate() error {
	if strings.TrimSpace(r.Utterance) == "" {
		return errBlankUtterance
	}
	return nil
}

func (r interpretReq) toInput(s semparser.Settings, historyLimit int) interpreter.InterpretInput {
	in := interpreter.InterpretInput{
		Utterance: r.Utterance,
		Turns:     toTurns(r.Turns, historyLimit),
		Settings:  s,
	}
	if r.Now != nil {
		in.Now = *r.Now
	}
	return in
}

type chatReq struct {
	Utterance string    `json:"utterance" binding:"required,max=2000"`
	Turns     []turnReq `json:"turns" binding:"max=50,dive"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Utterance) == "" {
		return errBlankUtterance
	}
	return nil
}

func (r chatReq) toInput(s semparser.Settings, historyLimit int) interpreter.ChatInput {
	return interpreter.ChatInput{
		Utterance: r.Utterance,
		Turns:     toTurns(r.Turns, historyLimit),
		Settings:  s,
	}
}

type statsReq struct {
	TasksCompleted  int     `json:"tasksCompleted" binding:"min=0"`
	TasksPending    int     `json:"tasksPending" binding:"min=0"`
	TotalTasks      int     `json:"totalTasks" binding:"min=0"`
	TotalSpent      float64 `json:"totalSpent" binding:"min=0"`
	UpcomingEvents  int     `json:"upcomingEvents" binding:"min=0"`
	MissedReminders int     `json:"missedReminders" binding:"min=0"`
	TopCategory     string  `json:"topCategory"`
}

type summaryReq struct {
	Kind  string     `json:"kind" binding:"required,oneof=daily weekly"`
	Now   *time.Time `json:"now"`
	Stats statsReq   `json:"stats"`
}

func (r summaryReq) toInput(s semparser.Settings) interpreter.SummarizeInput {
	in := interpreter.SummarizeInput{
		Kind:     interpreter.SummaryKind(r.Kind),
		Stats:    interpreter.SummaryStats(r.Stats),
		Settings: s,
	}
	if r.Now != nil {
		in.Now = *r.Now
	}
	return in
}

// --- Response DTOs ---

// interpretResp wraps the record, which encodes itself in the flat wire schema.
type interpretResp struct {
	Record         intent.Record  `json:"record" swaggertype:"object"`
	Source         string         `json:"source" example:"fallback"`
	FallbackReason string         `json:"fallback_reason,omitempty" example:"unavailable"`
	Issues         []intent.Issue `json:"issues,omitempty"`
	RequestID      string         `json:"request_id"`
}

func (h *handler) newInterpretResp(out interpreter.InterpretOutput) interpretResp {
	return interpretResp{
		Record:         out.Record,
		Source:         string(out.Source),
		FallbackReason: out.FallbackReason,
		Issues:         out.Issues,
		RequestID:      out.RequestID,
	}
}

type chatResp struct {
	Reply  string `json:"reply"`
	Source string `json:"source"`
}

func (h *handler) newChatResp(out interpreter.ChatOutput) chatResp {
	return chatResp{Reply: out.Reply, Source: string(out.Source)}
}

type summaryResp struct {
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Source string `json:"source"`
}

func (h *handler) newSummaryResp(kind string, out interpreter.SummarizeOutput) summaryResp {
	return summaryResp{Kind: kind, Text: out.Text, Source: string(out.Source)}
}
