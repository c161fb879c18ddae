package usecase

import (
	"context"
	"fmt"
	"strings"

	"friday-assistant/internal/interpreter"
	"friday-assistant/internal/prompt"
)

// Summarize renders stats as prose, through the external parser when available
// and from a fixed template otherwise.
func (uc *implUseCase) Summarize(ctx context.Context, input interpreter.SummarizeInput) (interpreter.SummarizeOutput, error) {
	if input.Kind != interpreter.SummaryDaily && input.Kind != interpreter.SummaryWeekly {
		return interpreter.SummarizeOutput{}, interpreter.ErrInvalidSummaryKind
	}
	now := uc.now(input.Now)

	if uc.parser != nil && uc.parser.Available(input.Settings) {
		payload, err := prompt.SummaryPayload(string(input.Kind), input.Stats)
		if err != nil {
			return interpreter.SummarizeOutput{}, fmt.Errorf("%s: %w", LogPrefixSummarize, err)
		}
		text, err := uc.parser.Call(ctx, input.Settings, payload, prompt.SummarySystemInstruction(string(input.Kind)))
		if err == nil && strings.TrimSpace(text) != "" {
			uc.reporter.RecordOutcome(ctx, string(interpreter.SourceAI))
			return interpreter.SummarizeOutput{Text: strings.TrimSpace(text), Source: interpreter.SourceAI}, nil
		}
		if err != nil {
			uc.l.Warnf(ctx, "%s: parser call: %v", LogPrefixSummarize, err)
		}
	}

	var text string
	if input.Kind == interpreter.SummaryDaily {
		text = dailyText(input.Stats, now.Format(summaryDateLayout))
	} else {
		text = weeklyText(input.Stats, now.Format(summaryDateLayout))
	}
	uc.reporter.RecordOutcome(ctx, string(interpreter.SourceFallback))
	return interpreter.SummarizeOutput{Text: text, Source: interpreter.SourceFallback}, nil
}

func dailyText(s interpreter.SummaryStats, date string) string {
	parts := []string{fmt.Sprintf("Here's your daily summary for %s.", date)}

	if s.TasksCompleted > 0 {
		parts = append(parts, fmt.Sprintf("You completed %s today. Great work! 🎉", plural(s.TasksCompleted, "task")))
	}
	if s.TasksPending > 0 {
		parts = append(parts, fmt.Sprintf("You have %s still pending.", plural(s.TasksPending, "task")))
	}
	if s.TotalSpent > 0 {
		parts = append(parts, fmt.Sprintf("Today's spending: $%.2f.", s.TotalSpent))
	}
	if s.UpcomingEvents > 0 {
		parts = append(parts, fmt.Sprintf("%s today.", plural(s.UpcomingEvents, "upcoming event")))
	}
	if s.MissedReminders > 0 {
		parts = append(parts, fmt.Sprintf("⚠️ %s.", plural(s.MissedReminders, "missed reminder")))
	}

	if len(parts) == 1 {
		parts = append(parts, "No major activity recorded yet today. Start by adding some tasks or logging expenses!")
	}
	return strings.Join(parts, " ")
}

func weeklyText(s interpreter.SummaryStats, date string) string {
	parts := []string{fmt.Sprintf("Here's your weekly summary up to %s.", date)}

	if s.TotalTasks > 0 {
		parts = append(parts, fmt.Sprintf("You completed %d of %s this week.", s.TasksCompleted, plural(s.TotalTasks, "task")))
	}
	if s.TotalSpent > 0 {
		parts = append(parts, fmt.Sprintf("This week's spending: $%.2f.", s.TotalSpent))
	}
	if s.TopCategory != "" && s.TopCategory != "N/A" {
		parts = append(parts, fmt.Sprintf("Most of it went to %s.", s.TopCategory))
	}
	if s.MissedReminders > 0 {
		parts = append(parts, fmt.Sprintf("⚠️ %s.", plural(s.MissedReminders, "missed reminder")))
	}

	if len(parts) == 1 {
		parts = append(parts, "A quiet week. Add a few tasks or log your expenses to see them here!")
	}
	return strings.Join(parts, " ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
