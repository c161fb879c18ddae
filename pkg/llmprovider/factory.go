package llmprovider

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"friday-assistant/config"
	"friday-assistant/pkg/gemini"
	"friday-assistant/pkg/log"
)

// NewFromConfig initializes the configured providers. A single provider with a
// single attempt is returned as is; anything else is wrapped in a Manager.
func NewFromConfig(cfg *config.LLMConfig, logger log.Logger) (Provider, error) {
	providers, err := InitializeProviders(cfg)
	if err != nil {
		return nil, err
	}

	mcfg := &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   max(cfg.RetryAttempts, 1),
	}
	if mcfg.RetryDelay, err = parseOptionalDuration(cfg.RetryDelay); err != nil {
		return nil, fmt.Errorf("llm.retry_delay: %w", err)
	}
	if mcfg.MaxTotalTimeout, err = parseOptionalDuration(cfg.MaxTotalTimeout); err != nil {
		return nil, fmt.Errorf("llm.max_total_timeout: %w", err)
	}

	if len(providers) == 1 && mcfg.RetryAttempts == 1 {
		return providers[0], nil
	}
	return NewManager(providers, mcfg, logger), nil
}

func parseOptionalDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Providers that fail to initialize are skipped.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var initErrors []string
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors, fmt.Sprintf("%s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance. The API key is optional here:
// the credential normally travels on each Request.
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	switch cfg.Name {
	case ProviderGemini:
		httpClient := &http.Client{Timeout: gemini.DefaultTimeout}
		if cfg.Timeout != "" {
			d, err := time.ParseDuration(cfg.Timeout)
			if err != nil {
				return nil, fmt.Errorf("invalid timeout %q: %w", cfg.Timeout, err)
			}
			httpClient.Timeout = d
		}
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case ProviderGeminiSDK:
		return NewGenAIAdapter(cfg.APIKey, cfg.Model), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
