package interpreter

import (
	"time"

	"friday-assistant/internal/intent"
	"friday-assistant/internal/prompt"
	"friday-assistant/internal/semparser"
)

// Source tells where a result came from.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// Reasons for taking the fallback path.
const (
	ReasonUnavailable = "unavailable"
	ReasonNetwork     = "network"
	ReasonEmpty       = "empty_response"
	ReasonMalformed   = "malformed_response"
)

// InterpretInput is the input for Interpret. A zero Now means the current time.
type InterpretInput struct {
	Utterance string
	Now       time.Time
	Turns     []prompt.Turn
	Settings  semparser.Settings
}

// InterpretOutput carries the record plus diagnostics about how it was built.
type InterpretOutput struct {
	Record         intent.Record
	Source         Source
	FallbackReason string
	Issues         []intent.Issue
	RequestID      string
}

type ChatInput struct {
	Utterance string
	Turns     []prompt.Turn
	Settings  semparser.Settings
}

type ChatOutput struct {
	Reply  string
	Source Source
}

// SummaryKind selects the summary period.
type SummaryKind string

const (
	SummaryDaily  SummaryKind = "daily"
	SummaryWeekly SummaryKind = "weekly"
)

// SummaryStats are the aggregates supplied by the storage side.
type SummaryStats struct {
	TasksCompleted  int     `json:"tasksCompleted"`
	TasksPending    int     `json:"tasksPending"`
	TotalTasks      int     `json:"totalTasks"`
	TotalSpent      float64 `json:"totalSpent"`
	UpcomingEvents  int     `json:"upcomingEvents"`
	MissedReminders int     `json:"missedReminders"`
	TopCategory     string  `json:"topCategory,omitempty"`
}

type SummarizeInput struct {
	Kind     SummaryKind
	Stats    SummaryStats
	Now      time.Time
	Settings semparser.Settings
}

type SummarizeOutput struct {
	Text   string
	Source Source
}
