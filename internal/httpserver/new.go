package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"friday-assistant/config"
	"friday-assistant/internal/interpreter"
	"friday-assistant/internal/settings"
	"friday-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	srv         *http.Server
	l           log.Logger
	port        int
	mode        string
	environment string

	// Interpreter domain
	interpreterUC interpreter.UseCase
	settings      settings.Updater
	historyLimit  int

	// Inbound protection and telemetry
	rateLimit config.RateLimitConfig
	gatherer  prometheus.Gatherer
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	InterpreterUC interpreter.UseCase
	Settings      settings.Updater
	HistoryLimit  int

	RateLimit config.RateLimitConfig
	// Gatherer backs GET /metrics; nil leaves the route unregistered.
	Gatherer prometheus.Gatherer
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		interpreterUC: cfg.InterpreterUC,
		settings:      cfg.Settings,
		historyLimit:  cfg.HistoryLimit,
		rateLimit:     cfg.RateLimit,
		gatherer:      cfg.Gatherer,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.interpreterUC == nil {
		return errors.New("interpreter usecase is required")
	}
	if srv.settings == nil {
		return errors.New("settings store is required")
	}
	return nil
}

// Handler exposes the routed engine, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}
