package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"friday-assistant/config"
	"friday-assistant/internal/interpreter"
	"friday-assistant/internal/interpreter/usecase"
	"friday-assistant/internal/observability"
	"friday-assistant/internal/semparser"
	"friday-assistant/pkg/datemath"
	"friday-assistant/pkg/llmprovider"
	"friday-assistant/pkg/log"
)

// app carries what every subcommand needs.
type app struct {
	uc       interpreter.UseCase
	settings semparser.Settings
}

// newRootCmd builds the command tree. A nil app is assembled from config.Load on
// first use; tests pass their own.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "friday",
		Short:         "FRIDAY natural-language assistant",
		Long:          "Interpret utterances into intent records, chat, and render summaries from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a != nil {
				return nil
			}
			built, err := buildApp()
			if err != nil {
				return err
			}
			a = built
			return nil
		},
	}

	get := func() *app { return a }
	root.AddCommand(
		newInterpretCmd(get),
		newChatCmd(get),
		newSummaryCmd(get),
	)
	return root
}

func buildApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// The CLI keeps stdout for results; logs go to stderr at warn and above.
	logger := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	dates, err := datemath.NewParser(cfg.Gemini.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone: %w", err)
	}

	provider, err := llmprovider.NewFromConfig(&cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("llm providers: %w", err)
	}

	reporter := observability.New(logger, nil)
	parser := semparser.New(provider, reporter, cfg.Gemini.Timeout, logger)

	return &app{
		uc: usecase.New(logger, parser, dates, reporter),
		settings: semparser.Settings{
			Credential: cfg.Gemini.APIKey,
			Enabled:    cfg.Gemini.Enabled,
		},
	}, nil
}
