package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"friday-assistant/internal/intent"
	"friday-assistant/internal/interpreter"
	"friday-assistant/internal/observability"
	"friday-assistant/internal/prompt"
	"friday-assistant/internal/semparser"
	"friday-assistant/pkg/log"
)

// Interpret runs the external parser when it is available and falls back to the
// keyword classifier otherwise. It always returns a valid record.
func (uc *implUseCase) Interpret(ctx context.Context, input interpreter.InterpretInput) interpreter.InterpretOutput {
	now := uc.now(input.Now)
	out := interpreter.InterpretOutput{RequestID: requestID(ctx)}

	rec, issues, reason := uc.interpretWithParser(ctx, input, now)
	if reason == "" {
		out.Record, out.Issues, out.Source = rec, issues, interpreter.SourceAI
	} else {
		out.Record, out.Issues = uc.fallback(input.Utterance, now)
		out.Source, out.FallbackReason = interpreter.SourceFallback, reason
	}

	uc.reporter.RecordOutcome(ctx, string(out.Source))
	for _, issue := range out.Issues {
		uc.l.Warnf(ctx, "%s: dropped field %s", LogPrefixInterpret, issue)
	}
	uc.l.Infof(ctx, "%s: intent=%s source=%s reason=%s", LogPrefixInterpret, out.Record.Kind, out.Source, out.FallbackReason)

	return out
}

// interpretWithParser returns a non-empty reason when the fallback must be used.
func (uc *implUseCase) interpretWithParser(ctx context.Context, input interpreter.InterpretInput, now time.Time) (intent.Record, []intent.Issue, string) {
	if uc.parser == nil || !uc.parser.Available(input.Settings) {
		return intent.Record{}, nil, interpreter.ReasonUnavailable
	}

	text, err := uc.parser.Call(ctx, input.Settings,
		prompt.IntentPayload(input.Utterance, input.Turns),
		prompt.SystemInstruction(now),
	)
	if err != nil {
		uc.l.Debugf(ctx, "%s: parser call: %v", LogPrefixInterpret, err)
		switch {
		case errors.Is(err, semparser.ErrUnavailable):
			return intent.Record{}, nil, interpreter.ReasonUnavailable
		case errors.Is(err, semparser.ErrNoText):
			return intent.Record{}, nil, interpreter.ReasonEmpty
		default:
			return intent.Record{}, nil, interpreter.ReasonNetwork
		}
	}

	raw, err := normalize(text)
	if err != nil {
		var pf *ParseFailure
		if errors.As(err, &pf) {
			uc.reporter.ReportFailure(ctx, observability.FailureEvent{
				Stage: observability.StageDecode,
				Err:   pf.Err.Error(),
				Raw:   observability.Truncate(pf.Raw),
			})
		}
		return intent.Record{}, nil, interpreter.ReasonMalformed
	}

	kind, fields, reply, issues, err := intent.Decode(raw)
	if err != nil {
		uc.reporter.ReportFailure(ctx, observability.FailureEvent{
			Stage: observability.StageSchema,
			Err:   errors.Join(interpreter.ErrMalformedResponse, err).Error(),
			Raw:   observability.Truncate(text),
		})
		return intent.Record{}, nil, interpreter.ReasonMalformed
	}

	if kind.RequiresTitle() && fields.Title == "" {
		fields.Title = extractTitle(input.Utterance, kind)
	}
	if reply == "" {
		reply = synthesizeReply(kind, fields)
	}

	rec, more := intent.Build(kind, fields, reply)
	return rec, append(issues, more...), ""
}

// fallback classifies locally. Fields are built per kind, so Build reports no
// issues for them.
func (uc *implUseCase) fallback(utterance string, now time.Time) (intent.Record, []intent.Issue) {
	utterance = stripAddress(utterance)
	kind, _ := classify(utterance)
	frag := uc.dates.Resolve(utterance, now)
	fields := fallbackFields(kind, utterance, frag)
	return intent.Build(kind, fields, synthesizeReply(kind, fields))
}

func (uc *implUseCase) now(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	return t.In(uc.dates.Location())
}

func requestID(ctx context.Context) string {
	if id := log.RequestIDFromContext(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
