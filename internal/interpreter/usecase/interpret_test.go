package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friday-assistant/internal/intent"
	"friday-assistant/internal/interpreter"
	"friday-assistant/internal/observability"
	"friday-assistant/internal/prompt"
	"friday-assistant/pkg/log"
)

func TestInterpret_TotalFallback(t *testing.T) {
	uc, reporter := newTestUseCase(t, nil)

	utterances := []string{
		"", "   ", "hello", "help", "add task buy milk", "meeting with Sam on Friday at 3pm",
		"spent 20 on taxi", "remind me to stretch", "remember that I prefer tea",
		"show today", "weekly summary", "asdf qwer", "12345", "at 99", "??", "日本語のテキスト",
	}

	for _, u := range utterances {
		out := uc.Interpret(context.Background(), interpreter.InterpretInput{Utterance: u, Now: wednesday})

		assert.NotEmpty(t, out.Record.Reply, u)
		assert.Contains(t, intent.Kinds, out.Record.Kind, u)
		assert.Equal(t, interpreter.SourceFallback, out.Source, u)
		assert.Equal(t, interpreter.ReasonUnavailable, out.FallbackReason, u)
		assert.Empty(t, out.Issues, u)
		assert.NotEmpty(t, out.RequestID, u)
	}
	assert.Len(t, reporter.outcomes, len(utterances))
	assert.Empty(t, reporter.failures)
}

func TestInterpret_ReminderScenario(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)

	out := uc.Interpret(context.Background(), interpreter.InterpretInput{
		Utterance: "remind me to call mom tomorrow at 6pm",
		Now:       wednesday,
	})

	assert.Equal(t, intent.KindSetReminder, out.Record.Kind)
	rem, ok := out.Record.Payload.(intent.Reminder)
	require.True(t, ok)
	assert.Contains(t, rem.Title, "call mom")
	require.NotNil(t, rem.Date)
	assert.Equal(t, "2026-10-15", rem.Date.String())
	require.NotNil(t, rem.Time)
	assert.Equal(t, intent.Clock{Hour: 18, Minute: 0}, *rem.Time)
	assert.NotEmpty(t, out.Record.Reply)
}

func TestInterpret_AddressFormIsNotAWeekday(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)

	out := uc.Interpret(context.Background(), interpreter.InterpretInput{
		Utterance: "Hey Friday, remind me to stretch at 6pm",
		Now:       wednesday,
	})

	assert.Equal(t, intent.KindSetReminder, out.Record.Kind)
	rem, ok := out.Record.Payload.(intent.Reminder)
	require.True(t, ok)
	assert.Equal(t, "stretch", rem.Title)
	require.NotNil(t, rem.Date)
	assert.Equal(t, "2026-10-14", rem.Date.String())
	require.NotNil(t, rem.Time)
	assert.Equal(t, intent.Clock{Hour: 18, Minute: 0}, *rem.Time)
}

func TestInterpret_ExpenseScenario(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)

	out := uc.Interpret(context.Background(), interpreter.InterpretInput{
		Utterance: "spent 450 on groceries",
		Now:       wednesday,
	})

	assert.Equal(t, intent.KindLogExpense, out.Record.Kind)
	exp, ok := out.Record.Payload.(intent.Expense)
	require.True(t, ok)
	require.NotNil(t, exp.Amount)
	assert.Equal(t, 450.0, *exp.Amount)
	assert.Nil(t, exp.Category)
	assert.Nil(t, exp.Date)
	assert.Equal(t, "groceries", exp.Title)
	assert.NotEmpty(t, out.Record.Reply)
}

func TestInterpret_AIRecordIsSanitized(t *testing.T) {
	parser := &fakeParser{available: true, text: `{"intent":"log_expense","title":"Weekly shop","amount":450,
		"category":"Groceries","date":"2026-10-14","time":null,"priority":null,"memoryType":null,"reply":"Logged 450."}`}
	uc, reporter := newTestUseCase(t, parser)

	out := uc.Interpret(context.Background(), interpreter.InterpretInput{
		Utterance: "spent 450 on groceries",
		Now:       wednesday,
		Settings:  enabled,
	})

	assert.Equal(t, interpreter.SourceAI, out.Source)
	assert.Empty(t, out.FallbackReason)
	exp := out.Record.Payload.(intent.Expense)
	assert.Nil(t, exp.Category)
	assert.Equal(t, "Weekly shop", exp.Title)
	assert.Equal(t, 450.0, *exp.Amount)
	assert.Equal(t, "2026-10-14", exp.Date.String())
	assert.Equal(t, "Logged 450.", out.Record.Reply)
	require.Len(t, out.Issues, 1)
	assert.Equal(t, intent.FieldCategory, out.Issues[0].Field)
	assert.Equal(t, []string{"ai"}, reporter.outcomes)

	require.Len(t, parser.calls, 1)
	assert.Equal(t, "spent 450 on groceries", parser.calls[0].payload)
	assert.Equal(t, prompt.SystemInstruction(wednesday), parser.calls[0].system)
}

func TestInterpret_AINonFiniteAmountDropped(t *testing.T) {
	for _, amount := range []string{`"NaN"`, `"Inf"`, `"Infinity"`} {
		t.Run(amount, func(t *testing.T) {
			parser := &fakeParser{available: true, text: `{"intent":"log_expense","title":"x","amount":` + amount + `}`}
			uc, _ := newTestUseCase(t, parser)

			out := uc.Interpret(context.Background(), interpreter.InterpretInput{
				Utterance: "spent some money",
				Now:       wednesday,
				Settings:  enabled,
			})

			assert.Equal(t, interpreter.SourceAI, out.Source)
			assert.Nil(t, out.Record.Payload.(intent.Expense).Amount)
			require.Len(t, out.Issues, 1)
			assert.Equal(t, intent.FieldAmount, out.Issues[0].Field)
			assert.Equal(t, intent.ReasonUnparsable, out.Issues[0].Reason)

			_, err := json.Marshal(out.Record)
			assert.NoError(t, err)
		})
	}
}

func TestInterpret_AIFillsMissingTitleAndReply(t *testing.T) {
	parser := &fakeParser{available: true, text: "```json\n{\"intent\":\"set_reminder\",\"time\":\"18:00\"}\n```"}
	uc, _ := newTestUseCase(t, parser)

	out := uc.Interpret(context.Background(), interpreter.InterpretInput{
		Utterance: "remind me to call mom tomorrow at 6pm",
		Now:       wednesday,
		Settings:  enabled,
	})

	assert.Equal(t, interpreter.SourceAI, out.Source)
	rem := out.Record.Payload.(intent.Reminder)
	assert.Equal(t, "call mom", rem.Title)
	assert.Nil(t, rem.Date, "AI temporal fields are not invented")
	assert.Equal(t, "18:00", rem.Time.String())
	assert.Equal(t, "I'll remind you to call mom at 18:00.", out.Record.Reply)
	assert.Empty(t, out.Issues)
}

func TestInterpret_FallsBack(t *testing.T) {
	tests := []struct {
		name   string
		parser *fakeParser
		reason string
		stage  observability.Stage
	}{
		{"network failure", &fakeParser{available: true, err: errBoom}, interpreter.ReasonNetwork, ""},
		{"undecodable text", &fakeParser{available: true, text: "Sure! I'll add that."}, interpreter.ReasonMalformed, observability.StageDecode},
		{"unknown intent", &fakeParser{available: true, text: `{"intent":"book_flight","title":"x"}`}, interpreter.ReasonMalformed, observability.StageSchema},
		{"disabled", &fakeParser{available: false}, interpreter.ReasonUnavailable, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, reporter := newTestUseCase(t, tt.parser)

			out := uc.Interpret(context.Background(), interpreter.InterpretInput{
				Utterance: "remind me to call mom tomorrow at 6pm",
				Now:       wednesday,
				Settings:  enabled,
			})

			assert.Equal(t, interpreter.SourceFallback, out.Source)
			assert.Equal(t, tt.reason, out.FallbackReason)
			assert.Equal(t, intent.KindSetReminder, out.Record.Kind)
			if tt.stage == "" {
				assert.Empty(t, reporter.failures)
			} else {
				require.Len(t, reporter.failures, 1)
				assert.Equal(t, tt.stage, reporter.failures[0].Stage)
				assert.NotEmpty(t, reporter.failures[0].Raw)
			}
		})
	}
}

func TestInterpret_UnavailableSettingsSkipParser(t *testing.T) {
	parser := &fakeParser{available: true, text: `{"intent":"help"}`}
	uc, _ := newTestUseCase(t, parser)

	out := uc.Interpret(context.Background(), interpreter.InterpretInput{Utterance: "hi", Now: wednesday, Settings: disabled})

	assert.Equal(t, interpreter.ReasonUnavailable, out.FallbackReason)
	assert.Empty(t, parser.calls)
}

func TestInterpret_TurnsReachPayload(t *testing.T) {
	parser := &fakeParser{available: true, text: `{"intent":"general","reply":"ok"}`}
	uc, _ := newTestUseCase(t, parser)

	uc.Interpret(context.Background(), interpreter.InterpretInput{
		Utterance: "make it 7pm",
		Now:       wednesday,
		Turns:     []prompt.Turn{{Role: prompt.RoleUser, Text: "remind me to call mom"}},
		Settings:  enabled,
	})

	require.Len(t, parser.calls, 1)
	assert.True(t, strings.HasSuffix(parser.calls[0].payload, "Message to parse: make it 7pm"))
}

func TestInterpret_RequestIDFromContext(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)
	ctx := log.WithRequestID(context.Background(), "req-123")

	out := uc.Interpret(ctx, interpreter.InterpretInput{Utterance: "hello", Now: wednesday})

	assert.Equal(t, "req-123", out.RequestID)
	assert.Equal(t, intent.KindGreeting, out.Record.Kind)
}

func TestInterpret_ZeroNowUsesClock(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)

	out := uc.Interpret(context.Background(), interpreter.InterpretInput{Utterance: "add task water plants today"})

	task := out.Record.Payload.(intent.Task)
	require.NotNil(t, task.Date)
	assert.Equal(t, "water plants", task.Title)
}
