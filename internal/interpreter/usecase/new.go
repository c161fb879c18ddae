package usecase

import (
	"context"

	"friday-assistant/internal/interpreter"
	"friday-assistant/internal/observability"
	"friday-assistant/internal/semparser"
	"friday-assistant/pkg/datemath"
	"friday-assistant/pkg/log"
)

// SemanticParser is the slice of semparser.Client the use case depends on.
type SemanticParser interface {
	Available(s semparser.Settings) bool
	Call(ctx context.Context, s semparser.Settings, payload, system string) (string, error)
}

// implUseCase is the private implementation of interpreter.UseCase. It holds no
// mutable state, so one instance serves concurrent calls.
type implUseCase struct {
	l        log.Logger
	parser   SemanticParser
	dates    *datemath.Parser
	reporter observability.Reporter
}

var _ interpreter.UseCase = (*implUseCase)(nil)

// New creates a new interpreter UseCase implementation.
func New(l log.Logger, parser SemanticParser, dates *datemath.Parser, reporter observability.Reporter) *implUseCase {
	if reporter == nil {
		reporter = observability.Nop{}
	}
	return &implUseCase{
		l:        l,
		parser:   parser,
		dates:    dates,
		reporter: reporter,
	}
}
