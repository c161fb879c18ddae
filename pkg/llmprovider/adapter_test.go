package llmprovider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friday-assistant/config"
	"friday-assistant/pkg/gemini"
)

func TestGeminiAdapter_GenerateContent(t *testing.T) {
	var got gemini.GenerateRequest
	var gotKey string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		json.NewDecoder(r.Body).Decode(&got)
		if got.Contents[0].Parts[0].Text == "empty" {
			w.Write([]byte(`{"candidates":[{"content":{"parts":[]}}]}`))
			return
		}
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"intent\":\"greeting\"}"}]}}],
			"usageMetadata":{"promptTokenCount":10,"candidatesTokenCount":5,"totalTokenCount":15}}`))
	}))
	defer ts.Close()

	client := gemini.NewClient("")
	client.SetAPIURL(ts.URL)
	adapter := NewGeminiAdapter(client)

	t.Run("request shape", func(t *testing.T) {
		resp, err := adapter.GenerateContent(context.Background(), &Request{
			APIKey:            "per-call-key",
			SystemInstruction: "schema",
			Prompt:            "hi",
			Temperature:       0.2,
			MaxTokens:         1024,
		})
		require.NoError(t, err)

		assert.Equal(t, "per-call-key", gotKey)
		require.NotNil(t, got.SystemInstruction)
		assert.Equal(t, "schema", got.SystemInstruction.Parts[0].Text)
		assert.Equal(t, "hi", got.Contents[0].Parts[0].Text)
		require.NotNil(t, got.GenerationConfig)
		assert.Equal(t, 0.2, got.GenerationConfig.Temperature)
		assert.Equal(t, 1024, got.GenerationConfig.MaxOutputTokens)

		assert.Equal(t, `{"intent":"greeting"}`, resp.Text)
		assert.Equal(t, ProviderGemini, resp.ProviderName)
		assert.Equal(t, 15, resp.Usage.TotalTokens)
	})

	t.Run("missing text path", func(t *testing.T) {
		_, err := adapter.GenerateContent(context.Background(), &Request{APIKey: "k", Prompt: "empty"})
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("missing credential", func(t *testing.T) {
		_, err := adapter.GenerateContent(context.Background(), &Request{Prompt: "hi"})
		assert.ErrorIs(t, err, ErrMissingCredential)
	})
}

func TestGenAIAdapter_MissingCredential(t *testing.T) {
	adapter := NewGenAIAdapter("", "")
	assert.Equal(t, gemini.DefaultModel, adapter.Model())
	assert.Equal(t, ProviderGeminiSDK, adapter.Name())

	_, err := adapter.GenerateContent(context.Background(), &Request{Prompt: "hi"})
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestInitializeProviders(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini-sdk", Enabled: true, Priority: 2, Model: "gemini-2.0-flash"},
			{Name: "gemini", Enabled: true, Priority: 1, Model: "gemini-2.0-flash", Timeout: "10s"},
			{Name: "gemini", Enabled: false, Priority: 3},
			{Name: "unknown", Enabled: true, Priority: 4},
		},
	}

	providers, err := InitializeProviders(cfg)
	require.NoError(t, err)
	require.Len(t, providers, 2)
	assert.Equal(t, ProviderGemini, providers[0].Name())
	assert.Equal(t, ProviderGeminiSDK, providers[1].Name())
}

func TestInitializeProviders_Errors(t *testing.T) {
	_, err := InitializeProviders(nil)
	assert.Error(t, err)

	_, err = InitializeProviders(&config.LLMConfig{})
	assert.ErrorIs(t, err, ErrNoProvidersConfigured)

	_, err = InitializeProviders(&config.LLMConfig{Providers: []config.ProviderConfig{
		{Name: "gemini", Enabled: true, Priority: 1, Timeout: "soon"},
	}})
	assert.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	single := config.ProviderConfig{Name: "gemini", Enabled: true, Priority: 1, Model: "gemini-2.0-flash"}

	p, err := NewFromConfig(&config.LLMConfig{Providers: []config.ProviderConfig{single}, RetryAttempts: 1}, &mockLogger{})
	require.NoError(t, err)
	assert.IsType(t, &GeminiAdapter{}, p)

	p, err = NewFromConfig(&config.LLMConfig{
		Providers:       []config.ProviderConfig{single},
		RetryAttempts:   3,
		RetryDelay:      "10ms",
		MaxTotalTimeout: "5s",
	}, &mockLogger{})
	require.NoError(t, err)
	m, ok := p.(*Manager)
	require.True(t, ok)
	assert.Equal(t, 3, m.config.RetryAttempts)
	assert.Equal(t, ProviderGemini, m.Name())

	_, err = NewFromConfig(&config.LLMConfig{Providers: []config.ProviderConfig{single}, RetryDelay: "later"}, &mockLogger{})
	assert.Error(t, err)
}
