package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"friday-assistant/config"
	_ "friday-assistant/docs" // Swagger docs
	"friday-assistant/internal/httpserver"
	"friday-assistant/internal/interpreter/usecase"
	"friday-assistant/internal/observability"
	"friday-assistant/internal/semparser"
	"friday-assistant/internal/settings"
	"friday-assistant/pkg/datemath"
	"friday-assistant/pkg/llmprovider"
	"friday-assistant/pkg/log"
)

// @title       FRIDAY Assistant API
// @description Natural-language interpretation for a personal assistant: intents, chat and summaries.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting FRIDAY...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Metrics
	var (
		gatherer prometheus.Gatherer
		metrics  *observability.Metrics
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics = observability.MustNewMetrics(reg)
		gatherer = reg
	}
	reporter := observability.New(logger, metrics)

	// 4. Interpreter domain
	dates, err := datemath.NewParser(cfg.Gemini.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Gemini.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	provider, err := llmprovider.NewFromConfig(&cfg.LLM, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Semantic parser: %s (%s), timeout %s", provider.Name(), provider.Model(), cfg.Gemini.Timeout)

	parser := semparser.New(provider, reporter, cfg.Gemini.Timeout, logger)
	interpreterUC := usecase.New(logger, parser, dates, reporter)

	store := settings.NewStore(semparser.Settings{
		Credential: cfg.Gemini.APIKey,
		Enabled:    cfg.Gemini.Enabled,
	})
	if !store.Current().Available() {
		logger.Warn(ctx, "Semantic parser unavailable: GEMINI_API_KEY is empty or gemini.enabled is false; using local parsing")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		InterpreterUC: interpreterUC,
		Settings:      store,
		HistoryLimit:  cfg.Interpreter.HistoryLimit,
		RateLimit:     cfg.RateLimit,
		Gatherer:      gatherer,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
