package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"friday-assistant/internal/observability"
	"friday-assistant/internal/semparser"
	"friday-assistant/pkg/datemath"
	"friday-assistant/pkg/log"
)

type parserCall struct {
	payload string
	system  string
}

type fakeParser struct {
	available bool
	text      string
	err       error

	mu    sync.Mutex
	calls []parserCall
}

func (f *fakeParser) Available(s semparser.Settings) bool {
	return f.available && s.Available()
}

func (f *fakeParser) Call(ctx context.Context, s semparser.Settings, payload, system string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, parserCall{payload: payload, system: system})
	if !f.Available(s) {
		return "", semparser.ErrUnavailable
	}
	return f.text, f.err
}

type recordingReporter struct {
	mu       sync.Mutex
	failures []observability.FailureEvent
	outcomes []string
}

func (r *recordingReporter) ReportFailure(ctx context.Context, ev observability.FailureEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, ev)
}

func (r *recordingReporter) RecordOutcome(ctx context.Context, source string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, source)
}

var (
	// Wednesday 2026-10-14 10:00 UTC
	wednesday = time.Date(2026, time.October, 14, 10, 0, 0, 0, time.UTC)

	enabled  = semparser.Settings{Credential: "test-key", Enabled: true}
	disabled = semparser.Settings{}

	errBoom = errors.New("boom")
)

func newTestUseCase(t *testing.T, parser *fakeParser) (*implUseCase, *recordingReporter) {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	reporter := &recordingReporter{}
	l := log.Init(log.ZapConfig{Level: "error", Mode: "production", Encoding: "json"})
	if parser == nil {
		parser = &fakeParser{}
	}
	return New(l, parser, dates, reporter), reporter
}
