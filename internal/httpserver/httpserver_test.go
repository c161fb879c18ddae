package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friday-assistant/config"
	"friday-assistant/internal/interpreter"
	"friday-assistant/internal/interpreter/usecase"
	"friday-assistant/internal/observability"
	"friday-assistant/internal/semparser"
	"friday-assistant/internal/settings"
	"friday-assistant/pkg/datemath"
	"friday-assistant/pkg/log"
)

// offlineParser never reaches a model, so every request takes the local path.
type offlineParser struct{}

func (offlineParser) Available(semparser.Settings) bool { return false }
func (offlineParser) Call(context.Context, semparser.Settings, string, string) (string, error) {
	return "", semparser.ErrUnavailable
}

func newTestServer(t *testing.T, rl config.RateLimitConfig) (*HTTPServer, *prometheus.Registry) {
	t.Helper()
	l := log.Init(log.ZapConfig{Level: "error", Mode: "production", Encoding: "json"})
	dates, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	reporter := observability.New(l, observability.MustNewMetrics(reg))
	uc := usecase.New(l, offlineParser{}, dates, reporter)

	srv, err := New(l, Config{
		Logger:        l,
		Port:          8080,
		Mode:          gin.TestMode,
		Environment:   "test",
		InterpreterUC: uc,
		Settings:      settings.NewStore(semparser.Settings{}),
		HistoryLimit:  6,
		RateLimit:     rl,
		Gatherer:      reg,
	})
	require.NoError(t, err)
	return srv, reg
}

func serve(srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "10.1.1.1:5555"
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNew_Validate(t *testing.T) {
	l := log.Init(log.ZapConfig{Level: "error", Mode: "production", Encoding: "json"})

	_, err := New(l, Config{Mode: gin.TestMode, Port: 8080})
	assert.Error(t, err)

	_, err = New(nil, Config{Mode: gin.TestMode, Port: 8080})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv, _ := newTestServer(t, config.RateLimitConfig{})

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := serve(srv, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}
}

func TestInterpret_EndToEndFallback(t *testing.T) {
	srv, _ := newTestServer(t, config.RateLimitConfig{})

	w := serve(srv, http.MethodPost, "/api/v1/interpret", `{"utterance": "remind me to call mom tomorrow at 5pm", "now": "2026-10-14T10:00:00Z"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var env struct {
		Data struct {
			Record    map[string]any `json:"record"`
			Source    string         `json:"source"`
			RequestID string         `json:"request_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	assert.Equal(t, string(interpreter.SourceFallback), env.Data.Source)
	assert.Equal(t, "set_reminder", env.Data.Record["intent"])
	assert.Equal(t, "2026-10-15", env.Data.Record["date"])
	assert.Equal(t, "17:00", env.Data.Record["time"])
	assert.Equal(t, w.Header().Get("X-Request-ID"), env.Data.RequestID)
}

func TestMetricsRoute(t *testing.T) {
	srv, _ := newTestServer(t, config.RateLimitConfig{})

	serve(srv, http.MethodPost, "/api/v1/interpret", `{"utterance": "hello"}`)
	w := serve(srv, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `friday_interpreter_requests_total{source="fallback"} 1`)
}

func TestRateLimitOnlyOnInterpreterRoutes(t *testing.T) {
	srv, _ := newTestServer(t, config.RateLimitConfig{PerMinute: 1, Burst: 1, CacheSize: 4})

	assert.Equal(t, http.StatusOK, serve(srv, http.MethodPost, "/api/v1/chat", `{"utterance": "hi"}`).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(srv, http.MethodPost, "/api/v1/chat", `{"utterance": "hi"}`).Code)
	assert.Equal(t, http.StatusOK, serve(srv, http.MethodGet, "/api/v1/settings", "").Code)
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	srv, _ := newTestServer(t, config.RateLimitConfig{})
	srv.port = 18089

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	assert.NoError(t, <-done)
}
