package observability

import (
	"context"

	"friday-assistant/pkg/log"
)

type logReporter struct {
	l       log.Logger
	metrics *Metrics
}

var _ Reporter = (*logReporter)(nil)

// New returns a Reporter that logs through l and counts on metrics. metrics may
// be nil when metrics are disabled.
func New(l log.Logger, metrics *Metrics) Reporter {
	return &logReporter{l: l, metrics: metrics}
}

func (r *logReporter) ReportFailure(ctx context.Context, ev FailureEvent) {
	r.metrics.IncFailure(ev.Stage)
	r.l.Warnf(ctx, "observability.ReportFailure: stage=%s code=%d err=%s raw=%q",
		ev.Stage, ev.Code, ev.Err, Truncate(ev.Raw))
}

func (r *logReporter) RecordOutcome(ctx context.Context, source string) {
	r.metrics.IncRequest(source)
	r.l.Debugf(ctx, "observability.RecordOutcome: source=%s", source)
}

// Nop discards everything.
type Nop struct{}

func (Nop) ReportFailure(context.Context, FailureEvent) {}
func (Nop) RecordOutcome(context.Context, string)       {}
