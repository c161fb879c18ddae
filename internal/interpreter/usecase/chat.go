package usecase

import (
	"context"
	"strings"

	"friday-assistant/internal/intent"
	"friday-assistant/internal/interpreter"
	"friday-assistant/internal/prompt"
)

// Chat asks the external parser for a conversational reply and answers with a
// canned suggestion when it cannot.
func (uc *implUseCase) Chat(ctx context.Context, input interpreter.ChatInput) interpreter.ChatOutput {
	if uc.parser != nil && uc.parser.Available(input.Settings) {
		text, err := uc.parser.Call(ctx, input.Settings,
			prompt.ChatPrompt(input.Utterance, input.Turns),
			prompt.ChatSystemInstruction,
		)
		if err == nil && strings.TrimSpace(text) != "" {
			uc.reporter.RecordOutcome(ctx, string(interpreter.SourceAI))
			return interpreter.ChatOutput{Reply: strings.TrimSpace(text), Source: interpreter.SourceAI}
		}
		if err != nil {
			uc.l.Warnf(ctx, "%s: parser call: %v", LogPrefixChat, err)
		}
	}

	uc.reporter.RecordOutcome(ctx, string(interpreter.SourceFallback))
	return interpreter.ChatOutput{Reply: chatFallbackReply(input.Utterance), Source: interpreter.SourceFallback}
}

func chatFallbackReply(utterance string) string {
	kind, _ := classify(utterance)
	switch kind {
	case intent.KindGreeting:
		return replyGreeting
	case intent.KindHelp:
		return replyHelp
	}
	return replyChatOffline
}
