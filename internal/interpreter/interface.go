package interpreter

import "context"

// UseCase turns utterances into intent records and assistant text. Interpret and
// Chat never fail: every internal failure degrades to the local fallback.
type UseCase interface {
	// Interpret converts one utterance into an intent record.
	Interpret(ctx context.Context, input InterpretInput) InterpretOutput

	// Chat produces a free-form conversational reply.
	Chat(ctx context.Context, input ChatInput) ChatOutput

	// Summarize renders a daily or weekly summary from aggregated stats.
	Summarize(ctx context.Context, input SummarizeInput) (SummarizeOutput, error)
}
