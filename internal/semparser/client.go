package semparser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"friday-assistant/internal/observability"
	"friday-assistant/pkg/gemini"
	"friday-assistant/pkg/llmprovider"
	"friday-assistant/pkg/log"
)

// DefaultTimeout bounds a call when none is configured.
const DefaultTimeout = 15 * time.Second

// Client is the external semantic parser. It never retries; wrap the provider in
// an llmprovider.Manager for that.
type Client struct {
	provider llmprovider.Provider
	reporter observability.Reporter
	timeout  time.Duration
	l        log.Logger
}

// New creates a Client. A non-positive timeout falls back to DefaultTimeout.
func New(provider llmprovider.Provider, reporter observability.Reporter, timeout time.Duration, l log.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if reporter == nil {
		reporter = observability.Nop{}
	}
	return &Client{
		provider: provider,
		reporter: reporter,
		timeout:  timeout,
		l:        l,
	}
}

// Available reports whether Invoke would reach the network under s.
func (c *Client) Available(s Settings) bool {
	return c != nil && c.provider != nil && s.Available()
}

// Invoke returns the model text, or ok=false when the parser is unavailable or
// the call failed for any reason.
func (c *Client) Invoke(ctx context.Context, s Settings, payload, system string) (string, bool) {
	text, err := c.Call(ctx, s, payload, system)
	return text, err == nil
}

// Call is Invoke with the failure kind preserved: ErrUnavailable, ErrNetwork or
// ErrNoText. Failures other than ErrUnavailable are reported before returning.
func (c *Client) Call(ctx context.Context, s Settings, payload, system string) (string, error) {
	if !c.Available(s) {
		return "", ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.provider.GenerateContent(ctx, &llmprovider.Request{
		APIKey:            strings.TrimSpace(s.Credential),
		SystemInstruction: system,
		Prompt:            payload,
		Temperature:       Temperature,
		MaxTokens:         MaxOutputTokens,
	})
	if err != nil {
		ev := failureEvent(err)
		c.reporter.ReportFailure(ctx, ev)
		c.l.Debugf(ctx, "semparser.Client.Call: provider=%s err=%v", c.provider.Name(), err)
		if ev.Stage == observability.StageDecode {
			return "", fmt.Errorf("%w: %w", ErrNoText, err)
		}
		return "", fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	if resp == nil || resp.Text == "" {
		c.reporter.ReportFailure(ctx, observability.FailureEvent{
			Stage: observability.StageDecode,
			Err:   llmprovider.ErrEmptyResponse.Error(),
		})
		return "", ErrNoText
	}

	return resp.Text, nil
}

type httpCoder interface {
	HTTPCode() int
}

func failureEvent(err error) observability.FailureEvent {
	ev := observability.FailureEvent{
		Stage: observability.StageNetwork,
		Err:   err.Error(),
	}

	if errors.Is(err, llmprovider.ErrEmptyResponse) || errors.Is(err, gemini.ErrDecodeResponse) {
		ev.Stage = observability.StageDecode
	}

	var coder httpCoder
	if errors.As(err, &coder) {
		ev.Code = coder.HTTPCode()
	}

	var apiErr *gemini.APIError
	if errors.As(err, &apiErr) {
		ev.Raw = observability.Truncate(apiErr.Body)
	}

	return ev
}
