package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friday-assistant/internal/intent"
	"friday-assistant/internal/interpreter"
	"friday-assistant/internal/semparser"
	"friday-assistant/internal/settings"
	"friday-assistant/pkg/log"
)

type fakeUseCase struct {
	interpretIn interpreter.InterpretInput
	chatIn      interpreter.ChatInput
	summaryIn   interpreter.SummarizeInput

	interpretOut interpreter.InterpretOutput
	summaryOut   interpreter.SummarizeOutput
	summaryErr   error
}

func (f *fakeUseCase) Interpret(ctx context.Context, in interpreter.InterpretInput) interpreter.InterpretOutput {
	f.interpretIn = in
	return f.interpretOut
}

func (f *fakeUseCase) Chat(ctx context.Context, in interpreter.ChatInput) interpreter.ChatOutput {
	f.chatIn = in
	return interpreter.ChatOutput{Reply: "hi there", Source: interpreter.SourceFallback}
}

func (f *fakeUseCase) Summarize(ctx context.Context, in interpreter.SummarizeInput) (interpreter.SummarizeOutput, error) {
	f.summaryIn = in
	return f.summaryOut, f.summaryErr
}

func newTestRouter(uc interpreter.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := log.Init(log.ZapConfig{Level: "error", Mode: "production", Encoding: "json"})
	store := settings.NewStore(semparser.Settings{Credential: "k", Enabled: true})
	RegisterRoutes(r.Group("/api/v1"), New(l, uc, store, 2))
	return r
}

func post(t *testing.T, r *gin.Engine, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1"+path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func TestInterpret(t *testing.T) {
	record, issues := intent.Build(intent.KindAddTask, intent.Fields{Title: "water plants"}, "Added.")
	require.Empty(t, issues)
	uc := &fakeUseCase{interpretOut: interpreter.InterpretOutput{
		Record:    record,
		Source:    interpreter.SourceAI,
		RequestID: "req-1",
	}}
	r := newTestRouter(uc)

	code, env := post(t, r, "/interpret", `{
		"utterance": "add task water plants",
		"now": "2026-10-14T10:00:00Z",
		"turns": [
			{"role": "user", "text": "earlier"},
			{"role": "user", "text": "hello"},
			{"role": "assistant", "text": "hi"}
		]
	}`)

	require.Equal(t, http.StatusOK, code)
	data := env["data"].(map[string]any)
	rec := data["record"].(map[string]any)
	assert.Equal(t, "add_task", rec["intent"])
	assert.Equal(t, "water plants", rec["title"])
	assert.Equal(t, "ai", data["source"])
	assert.Equal(t, "req-1", data["request_id"])

	assert.Equal(t, "add task water plants", uc.interpretIn.Utterance)
	assert.True(t, uc.interpretIn.Now.Equal(time.Date(2026, time.October, 14, 10, 0, 0, 0, time.UTC)))
	require.Len(t, uc.interpretIn.Turns, 2)
	assert.Equal(t, "hello", uc.interpretIn.Turns[0].Text)
	assert.True(t, uc.interpretIn.Settings.Available())
}

func TestInterpret_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing_utterance", body: `{}`},
		{name: "blank_utterance", body: `{"utterance": "   "}`},
		{name: "bad_role", body: `{"utterance": "x", "turns": [{"role": "system", "text": "y"}]}`},
		{name: "not_json", body: `utterance`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := post(t, newTestRouter(&fakeUseCase{}), "/interpret", tt.body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.NotEmpty(t, env["message"])
		})
	}
}

func TestChat(t *testing.T) {
	uc := &fakeUseCase{}
	code, env := post(t, newTestRouter(uc), "/chat", `{"utterance": "hey"}`)

	require.Equal(t, http.StatusOK, code)
	data := env["data"].(map[string]any)
	assert.Equal(t, "hi there", data["reply"])
	assert.Equal(t, "fallback", data["source"])
	assert.Equal(t, "hey", uc.chatIn.Utterance)
}

func TestSummary(t *testing.T) {
	uc := &fakeUseCase{summaryOut: interpreter.SummarizeOutput{Text: "Good day.", Source: interpreter.SourceFallback}}
	code, env := post(t, newTestRouter(uc), "/summary", `{
		"kind": "daily",
		"stats": {"tasksCompleted": 2, "tasksPending": 1, "totalTasks": 3, "totalSpent": 12.5, "topCategory": "work"}
	}`)

	require.Equal(t, http.StatusOK, code)
	data := env["data"].(map[string]any)
	assert.Equal(t, "daily", data["kind"])
	assert.Equal(t, "Good day.", data["text"])
	assert.Equal(t, interpreter.SummaryDaily, uc.summaryIn.Kind)
	assert.Equal(t, 2, uc.summaryIn.Stats.TasksCompleted)
	assert.Equal(t, 12.5, uc.summaryIn.Stats.TotalSpent)
	assert.Equal(t, "work", uc.summaryIn.Stats.TopCategory)
}

func TestSummary_Errors(t *testing.T) {
	code, _ := post(t, newTestRouter(&fakeUseCase{}), "/summary", `{"kind": "monthly"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	uc := &fakeUseCase{summaryErr: interpreter.ErrInvalidSummaryKind}
	code, _ = post(t, newTestRouter(uc), "/summary", `{"kind": "weekly"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	uc = &fakeUseCase{summaryErr: assert.AnError}
	code, _ = post(t, newTestRouter(uc), "/summary", `{"kind": "weekly"}`)
	assert.Equal(t, http.StatusInternalServerError, code)
}
